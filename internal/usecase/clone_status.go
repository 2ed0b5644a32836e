package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"storefront/internal/domain/clonejob"
	"storefront/internal/infra"

	"github.com/google/uuid"
)

// JobStatusView is the normalized, poll-friendly shape of a clone job.
type JobStatusView struct {
	JobID           uuid.UUID  `json:"job_id"`
	Status          string     `json:"status"`
	TotalItems      int32      `json:"total_items"`
	ProcessedCount  int32      `json:"processed_count"`
	ProgressPercent int        `json:"progress_percent"`
	ErrorMessage    *string    `json:"error_message,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

func (v *JobStatusView) IsTerminal() bool {
	return clonejob.Status(v.Status).IsTerminal()
}

type CloneStatusUseCase interface {
	// GetStatus returns nil without error when the job record does not exist
	// yet; the instant after orchestration is "no status", not a failure.
	GetStatus(ctx context.Context, jobID uuid.UUID) (*JobStatusView, error)
}

type cloneStatusUseCaseImpl struct {
	jobRepo CloneJobRepository
}

func NewCloneStatusUseCase(jobRepo CloneJobRepository) CloneStatusUseCase {
	return &cloneStatusUseCaseImpl{jobRepo: jobRepo}
}

func (u *cloneStatusUseCaseImpl) GetStatus(ctx context.Context, jobID uuid.UUID) (*JobStatusView, error) {
	job, err := u.jobRepo.Get(ctx, jobID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &JobStatusView{
		JobID:           job.ID,
		Status:          job.Status.String(),
		TotalItems:      job.TotalItems,
		ProcessedCount:  job.ProcessedCount,
		ProgressPercent: job.ProgressPercent(),
		ErrorMessage:    job.ErrorMessage,
		CompletedAt:     job.CompletedAt,
	}, nil
}

// DefaultPollInterval is the cadence clients poll job status at.
const DefaultPollInterval = 2 * time.Second

var ErrPollAborted = errors.New("status polling aborted")

// PollUntilTerminal reads the job status every interval until a terminal
// status is observed, reporting each observation to onStatus (nil views mean
// "no status yet"). It returns the terminal view, or ErrPollAborted when ctx
// ends first.
func PollUntilTerminal(ctx context.Context, statusUC CloneStatusUseCase, jobID uuid.UUID, interval time.Duration, logger *slog.Logger, onStatus func(*JobStatusView)) (*JobStatusView, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		view, err := statusUC.GetStatus(ctx, jobID)
		if err != nil {
			logger.Warn("clone status poll failed", "job_id", jobID, "error", err)
		} else {
			if onStatus != nil {
				onStatus(view)
			}
			if view != nil && view.IsTerminal() {
				return view, nil
			}
		}

		select {
		case <-ctx.Done():
			return nil, ErrPollAborted
		case <-ticker.C:
		}
	}
}
