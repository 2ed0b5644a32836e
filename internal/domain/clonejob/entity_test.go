//go:build unit

package clonejob_test

import (
	"testing"

	"storefront/internal/domain/clonejob"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	t.Run("accepts all lifecycle statuses", func(t *testing.T) {
		for _, s := range []string{"pending", "processing", "completed", "failed"} {
			status, err := clonejob.NewStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := clonejob.NewStatus("cancelled")
		assert.ErrorIs(t, err, clonejob.ErrInvalidStatus)
	})
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    clonejob.Status
		to      clonejob.Status
		allowed bool
	}{
		{clonejob.StatusPending, clonejob.StatusProcessing, true},
		{clonejob.StatusPending, clonejob.StatusCompleted, true},
		{clonejob.StatusPending, clonejob.StatusFailed, true},
		{clonejob.StatusProcessing, clonejob.StatusCompleted, true},
		{clonejob.StatusProcessing, clonejob.StatusFailed, true},
		{clonejob.StatusProcessing, clonejob.StatusPending, false},
		{clonejob.StatusCompleted, clonejob.StatusProcessing, false},
		{clonejob.StatusCompleted, clonejob.StatusFailed, false},
		{clonejob.StatusFailed, clonejob.StatusProcessing, false},
		{clonejob.StatusFailed, clonejob.StatusCompleted, false},
		// idempotent restatement of a non-terminal state
		{clonejob.StatusPending, clonejob.StatusPending, true},
		{clonejob.StatusProcessing, clonejob.StatusProcessing, true},
		{clonejob.StatusCompleted, clonejob.StatusCompleted, false},
		{clonejob.StatusFailed, clonejob.StatusFailed, false},
	}

	for _, tc := range cases {
		t.Run(tc.from.String()+" -> "+tc.to.String(), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, clonejob.StatusPending.IsTerminal())
	assert.False(t, clonejob.StatusProcessing.IsTerminal())
	assert.True(t, clonejob.StatusCompleted.IsTerminal())
	assert.True(t, clonejob.StatusFailed.IsTerminal())
}

func TestNew(t *testing.T) {
	source := uuid.New()
	target := uuid.New()

	job := clonejob.New(source, target, 42)

	assert.NotEqual(t, uuid.Nil, job.ID)
	assert.Equal(t, source, job.SourceAccountID)
	assert.Equal(t, target, job.TargetAccountID)
	assert.Equal(t, clonejob.StatusPending, job.Status)
	assert.Equal(t, int32(42), job.TotalItems)
	assert.Equal(t, int32(0), job.ProcessedCount)
	assert.Nil(t, job.ErrorMessage)
	assert.Nil(t, job.CompletedAt)
}

func TestProgressPercent(t *testing.T) {
	cases := []struct {
		name      string
		total     int32
		processed int32
		expect    int
	}{
		{"zero total", 0, 0, 0},
		{"negative total", -1, 5, 0},
		{"nothing processed", 10, 0, 0},
		{"half processed", 10, 5, 50},
		{"all processed", 10, 10, 100},
		{"rounds up", 3, 2, 67},
		{"rounds down", 3, 1, 33},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			job := clonejob.New(uuid.New(), uuid.New(), tc.total)
			job.ProcessedCount = tc.processed
			assert.Equal(t, tc.expect, job.ProgressPercent())
		})
	}
}
