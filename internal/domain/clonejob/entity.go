// Package clonejob models the persisted record tracking one account-clone run.
package clonejob

import (
	"time"

	"github.com/google/uuid"

	"storefront/internal/pkg/errs"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

var ErrInvalidStatus = errs.New("invalid clone job status")

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransitionTo enforces the monotonic lifecycle
// pending -> processing -> {completed, failed}. Terminal states accept
// nothing; a state may restate itself (idempotent writes).
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return !s.IsTerminal()
	}
	switch s {
	case StatusPending:
		return next == StatusProcessing || next == StatusCompleted || next == StatusFailed
	case StatusProcessing:
		return next == StatusCompleted || next == StatusFailed
	}
	return false
}

// CloneJob is the single source of truth about one clone run. It is created
// once by the orchestrator and mutated only by batch invocations, which
// never overlap for the same job.
type CloneJob struct {
	ID              uuid.UUID
	SourceAccountID uuid.UUID
	TargetAccountID uuid.UUID
	Status          Status
	TotalItems      int32
	ProcessedCount  int32
	ErrorMessage    *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CompletedAt     *time.Time
}

func New(sourceAccountID, targetAccountID uuid.UUID, totalItems int32) *CloneJob {
	return &CloneJob{
		ID:              uuid.New(),
		SourceAccountID: sourceAccountID,
		TargetAccountID: targetAccountID,
		Status:          StatusPending,
		TotalItems:      totalItems,
	}
}

// ProgressPercent reports rounded progress; 0 when there is nothing to count.
func (j *CloneJob) ProgressPercent() int {
	if j.TotalItems <= 0 {
		return 0
	}
	return int(float64(j.ProcessedCount)/float64(j.TotalItems)*100 + 0.5)
}
