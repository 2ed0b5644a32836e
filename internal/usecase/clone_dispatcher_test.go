//go:build unit

package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/clonejob"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProcessor struct {
	err   error
	panic any
}

func (p *stubProcessor) ProcessBatch(context.Context, BatchRequest) (BatchResult, error) {
	if p.panic != nil {
		panic(p.panic)
	}
	return BatchResult{}, p.err
}

// ctxEchoProcessor fails the way a real batch does once its chain context
// is gone.
type ctxEchoProcessor struct{}

func (ctxEchoProcessor) ProcessBatch(ctx context.Context, _ BatchRequest) (BatchResult, error) {
	return BatchResult{}, ctx.Err()
}

type failureRecorder struct {
	mu       sync.Mutex
	failures map[uuid.UUID]string
	ctxErrs  map[uuid.UUID]error
	done     chan struct{}
}

func newFailureRecorder() *failureRecorder {
	return &failureRecorder{
		failures: make(map[uuid.UUID]string),
		ctxErrs:  make(map[uuid.UUID]error),
		done:     make(chan struct{}, 1),
	}
}

func (r *failureRecorder) Create(context.Context, *clonejob.CloneJob) error { return nil }
func (r *failureRecorder) Get(context.Context, uuid.UUID) (*clonejob.CloneJob, error) {
	return nil, nil
}
func (r *failureRecorder) AddProcessed(context.Context, uuid.UUID, int32) error { return nil }
func (r *failureRecorder) MarkCompleted(context.Context, uuid.UUID) error       { return nil }

func (r *failureRecorder) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	r.mu.Lock()
	r.failures[id] = message
	r.ctxErrs[id] = ctx.Err()
	r.mu.Unlock()
	r.done <- struct{}{}
	return nil
}

func (r *failureRecorder) get(id uuid.UUID) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg, ok := r.failures[id]
	return msg, ok
}

func (r *failureRecorder) writeCtxErr(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ctxErrs[id]
}

func waitDone(t *testing.T, done chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for failure write")
	}
}

func TestChainDispatcher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	req := BatchRequest{JobID: uuid.New(), Offset: 10, Limit: 5}

	t.Run("batch error marks the job failed", func(t *testing.T) {
		jobs := newFailureRecorder()
		proc := &stubProcessor{err: errors.New("source page unreadable")}
		d := newChainDispatcher(context.Background(), proc, jobs, logger)

		require.NoError(t, d.Dispatch(req))
		waitDone(t, jobs.done)

		msg, ok := jobs.get(req.JobID)
		require.True(t, ok)
		assert.Contains(t, msg, "source page unreadable")
	})

	t.Run("batch panic marks the job failed", func(t *testing.T) {
		jobs := newFailureRecorder()
		proc := &stubProcessor{panic: "index out of range"}
		d := newChainDispatcher(context.Background(), proc, jobs, logger)

		require.NoError(t, d.Dispatch(req))
		waitDone(t, jobs.done)

		msg, ok := jobs.get(req.JobID)
		require.True(t, ok)
		assert.Contains(t, msg, "panicked")
		assert.Contains(t, msg, "offset 10")
	})

	t.Run("cancelled base context fails the job with a live write", func(t *testing.T) {
		jobs := newFailureRecorder()
		base, cancel := context.WithCancel(context.Background())
		cancel()
		d := newChainDispatcher(base, ctxEchoProcessor{}, jobs, logger)

		require.NoError(t, d.Dispatch(req))
		waitDone(t, jobs.done)

		msg, ok := jobs.get(req.JobID)
		require.True(t, ok)
		assert.Contains(t, msg, "canceled")
		// The terminal write must not itself run under the dead context.
		assert.NoError(t, jobs.writeCtxErr(req.JobID))
	})

	t.Run("successful batch writes nothing", func(t *testing.T) {
		jobs := newFailureRecorder()
		d := newChainDispatcher(context.Background(), &stubProcessor{}, jobs, logger)

		require.NoError(t, d.Dispatch(req))

		// Give the goroutine a moment; no failure must appear.
		time.Sleep(20 * time.Millisecond)
		_, ok := jobs.get(req.JobID)
		assert.False(t, ok)
	})
}
