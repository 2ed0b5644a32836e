package response

import (
	"time"

	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type CloneAcceptedResponse struct {
	NewAccountID uuid.UUID  `json:"new_account_id"`
	JobID        *uuid.UUID `json:"job_id,omitempty"`
	TotalItems   int32      `json:"total_items"`
}

func FromCloneResult(r *usecase.CloneResult) CloneAcceptedResponse {
	return CloneAcceptedResponse{
		NewAccountID: r.NewAccountID,
		JobID:        r.JobID,
		TotalItems:   r.TotalItems,
	}
}

type JobStatusResponse struct {
	JobID           uuid.UUID  `json:"job_id"`
	Status          string     `json:"status"`
	TotalItems      int32      `json:"total_items"`
	ProcessedCount  int32      `json:"processed_count"`
	ProgressPercent int        `json:"progress_percent"`
	ErrorMessage    *string    `json:"error_message,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

func FromJobStatusView(v *usecase.JobStatusView) JobStatusResponse {
	return JobStatusResponse{
		JobID:           v.JobID,
		Status:          v.Status,
		TotalItems:      v.TotalItems,
		ProcessedCount:  v.ProcessedCount,
		ProgressPercent: v.ProgressPercent,
		ErrorMessage:    v.ErrorMessage,
		CompletedAt:     v.CompletedAt,
	}
}
