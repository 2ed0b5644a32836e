package repository

import (
	"context"

	"storefront/internal/domain/clonejob"
	"storefront/internal/infra"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// CloneJobRepository is the job record store. There is no locking here:
// batch invocations for one job never run concurrently, and the progress
// counter is advanced with an atomic SQL increment rather than a
// read-modify-write cycle.
type CloneJobRepository struct {
	db infra.DBTX
}

func NewCloneJobRepository(db infra.DBTX) *CloneJobRepository {
	return &CloneJobRepository{db: db}
}

func (r *CloneJobRepository) Create(ctx context.Context, job *clonejob.CloneJob) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO clone_jobs (id, source_account_id, target_account_id, status,
		                         total_items, processed_count, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, now(), now())`,
		job.ID, job.SourceAccountID, job.TargetAccountID, job.Status.String(),
		job.TotalItems, job.ProcessedCount,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create clone job", err)
	}
	return nil
}

func (r *CloneJobRepository) Get(ctx context.Context, id uuid.UUID) (*clonejob.CloneJob, error) {
	var (
		job       clonejob.CloneJob
		rawStatus string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, source_account_id, target_account_id, status, total_items,
		        processed_count, error_message, created_at, updated_at, completed_at
		 FROM clone_jobs WHERE id = $1`,
		id,
	).Scan(
		&job.ID, &job.SourceAccountID, &job.TargetAccountID, &rawStatus,
		&job.TotalItems, &job.ProcessedCount, &job.ErrorMessage,
		&job.CreatedAt, &job.UpdatedAt, &job.CompletedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("clone job not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get clone job", err)
	}

	status, err := clonejob.NewStatus(rawStatus)
	if err != nil {
		return nil, infra.WrapRepoErr("stored clone job status is invalid", err)
	}
	job.Status = status
	return &job, nil
}

// AddProcessed adds delta successes to the progress counter and keeps the job
// in processing. The increment happens inside the database so a batch never
// has to read the counter first.
func (r *CloneJobRepository) AddProcessed(ctx context.Context, id uuid.UUID, delta int32) error {
	_, err := r.db.Exec(ctx,
		`UPDATE clone_jobs
		 SET processed_count = processed_count + $2,
		     status = $3,
		     updated_at = now()
		 WHERE id = $1`,
		id, delta, clonejob.StatusProcessing.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to add processed count", err)
	}
	return nil
}

func (r *CloneJobRepository) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE clone_jobs
		 SET status = $2, completed_at = now(), updated_at = now()
		 WHERE id = $1`,
		id, clonejob.StatusCompleted.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark clone job completed", err)
	}
	return nil
}

// MarkFailed records a terminal failure. Jobs already completed are left
// alone so a late failure report cannot regress the status.
func (r *CloneJobRepository) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE clone_jobs
		 SET status = $2, error_message = $3, updated_at = now()
		 WHERE id = $1 AND status NOT IN ($4, $2)`,
		id, clonejob.StatusFailed.String(), message, clonejob.StatusCompleted.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark clone job failed", err)
	}
	return nil
}
