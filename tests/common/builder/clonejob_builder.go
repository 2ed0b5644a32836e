//go:build unit || e2e

package builder

import (
	"time"

	"storefront/internal/domain/clonejob"

	"github.com/google/uuid"
)

type CloneJobBuilder struct {
	ID              uuid.UUID
	SourceAccountID uuid.UUID
	TargetAccountID uuid.UUID
	Status          clonejob.Status
	TotalItems      int32
	ProcessedCount  int32
	ErrorMessage    *string
	CreatedAt       time.Time
}

func NewCloneJobBuilder() *CloneJobBuilder {
	return &CloneJobBuilder{
		ID:              uuid.New(),
		SourceAccountID: uuid.New(),
		TargetAccountID: uuid.New(),
		Status:          clonejob.StatusPending,
		TotalItems:      12,
		CreatedAt:       time.Now(),
	}
}

func (b *CloneJobBuilder) With(mutate func(*CloneJobBuilder)) *CloneJobBuilder {
	mutate(b)
	return b
}

func (b *CloneJobBuilder) BuildDomain() *clonejob.CloneJob {
	return &clonejob.CloneJob{
		ID:              b.ID,
		SourceAccountID: b.SourceAccountID,
		TargetAccountID: b.TargetAccountID,
		Status:          b.Status,
		TotalItems:      b.TotalItems,
		ProcessedCount:  b.ProcessedCount,
		ErrorMessage:    b.ErrorMessage,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}
