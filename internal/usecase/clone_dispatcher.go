package usecase

import (
	"context"
	"fmt"
	"log/slog"
)

type batchProcessor interface {
	ProcessBatch(ctx context.Context, req BatchRequest) (BatchResult, error)
}

// chainDispatcher runs each batch on its own goroutine, detached from the
// caller. It never runs two invocations of the same job at once because the
// only thing that schedules batch N+1 is the tail of batch N.
//
// It also closes the failure gap: an error or panic escaping a batch
// invocation is written to the job record as a terminal failed status, so a
// crashing chain is observable instead of stuck in processing forever.
type chainDispatcher struct {
	base   context.Context
	proc   batchProcessor
	jobs   CloneJobRepository
	logger *slog.Logger
}

func newChainDispatcher(base context.Context, proc batchProcessor, jobs CloneJobRepository, logger *slog.Logger) *chainDispatcher {
	return &chainDispatcher{
		base:   base,
		proc:   proc,
		jobs:   jobs,
		logger: logger,
	}
}

func (d *chainDispatcher) Dispatch(req BatchRequest) error {
	go d.run(req)
	return nil
}

func (d *chainDispatcher) run(req BatchRequest) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("clone batch panicked",
				"job_id", req.JobID, "offset", req.Offset, "panic", r)
			d.markFailed(req, fmt.Sprintf("batch at offset %d panicked: %v", req.Offset, r))
		}
	}()

	if _, err := d.proc.ProcessBatch(d.base, req); err != nil {
		d.logger.Error("clone batch failed",
			"job_id", req.JobID, "offset", req.Offset, "error", err)
		d.markFailed(req, err.Error())
	}
}

func (d *chainDispatcher) markFailed(req BatchRequest, message string) {
	// The failure write must land even when the chain died because base was
	// cancelled at shutdown.
	ctx := context.WithoutCancel(d.base)
	if err := d.jobs.MarkFailed(ctx, req.JobID, message); err != nil {
		d.logger.Error("failed to record clone job failure",
			"job_id", req.JobID, "error", err)
	}
}
