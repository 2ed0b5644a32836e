//go:build unit

package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/clonejob"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/usecase"
	"storefront/tests/common/builder"
	usecasemock "storefront/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// syncDispatcher runs every dispatched batch inline, which makes the whole
// self-chaining run observable from a single synchronous call.
type syncDispatcher struct {
	uc       usecase.CloneUseCase
	requests []usecase.BatchRequest
}

func (d *syncDispatcher) Dispatch(req usecase.BatchRequest) error {
	d.requests = append(d.requests, req)
	_, err := d.uc.ProcessBatch(context.Background(), req)
	return err
}

// recordingDispatcher only records, so a single ProcessBatch call can be
// inspected without the chain advancing.
type recordingDispatcher struct {
	requests []usecase.BatchRequest
	err      error
}

func (d *recordingDispatcher) Dispatch(req usecase.BatchRequest) error {
	d.requests = append(d.requests, req)
	return d.err
}

type CloneUseCaseTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	accountRepo *usecasemock.MockAccountRepository
	productRepo *usecasemock.MockProductRepository
	jobRepo     *usecasemock.MockCloneJobRepository
	assets      *usecasemock.MockAssetStore
	clk         *clock.MockClock
	logger      *slog.Logger
}

func (s *CloneUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.accountRepo = usecasemock.NewMockAccountRepository(s.ctrl)
	s.productRepo = usecasemock.NewMockProductRepository(s.ctrl)
	s.jobRepo = usecasemock.NewMockCloneJobRepository(s.ctrl)
	s.assets = usecasemock.NewMockAssetStore(s.ctrl)
	s.clk = clock.NewMockClock(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *CloneUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCloneUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CloneUseCaseTestSuite))
}

func (s *CloneUseCaseTestSuite) newUseCase(dispatcher usecase.BatchDispatcher, batchLimit int32) usecase.CloneUseCase {
	return usecase.NewCloneUseCase(
		context.Background(), s.accountRepo, s.productRepo, s.jobRepo, s.assets,
		dispatcher, s.clk, s.logger, batchLimit, 5,
	)
}

// ================================================================================
// Clone
// ================================================================================

func (s *CloneUseCaseTestSuite) TestClone() {
	ctx := context.Background()
	source := builder.NewAccountBuilder().BuildDomain()
	attrs := builder.NewAccountBuilder().With(func(b *builder.AccountBuilder) {
		b.Email = "copy@example.com"
		b.Slug = "acme-copy"
	}).BuildCloneAttributes()

	s.Run("invalid attributes are rejected before any write", func() {
		uc := s.newUseCase(&recordingDispatcher{}, 5)

		for _, bad := range []usecase.NewAccountAttributes{
			{Email: "copy@example.com", Name: "n", Slug: "s"},             // no password
			{Email: "copy@example.com", Password: "p", Slug: "s"},        // no name
			{Email: "copy@example.com", Password: "p", Name: "n"},        // no slug
			{Email: "not-an-email", Password: "p", Name: "n", Slug: "s"}, // bad email
		} {
			_, err := uc.Clone(ctx, source.ID(), bad)
			s.ErrorIs(err, usecase.ErrInvalidAccountAttributes)
		}
	})

	s.Run("unknown source account", func() {
		uc := s.newUseCase(&recordingDispatcher{}, 5)
		s.accountRepo.EXPECT().FindByID(gomock.Any(), source.ID()).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound)).Times(1)

		_, err := uc.Clone(ctx, source.ID(), attrs)
		s.ErrorIs(err, usecase.ErrSourceAccountNotFound)
	})

	s.Run("duplicate email or slug", func() {
		uc := s.newUseCase(&recordingDispatcher{}, 5)
		s.accountRepo.EXPECT().FindByID(gomock.Any(), source.ID()).Return(source, nil).Times(1)
		s.accountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey)).Times(1)

		_, err := uc.Clone(ctx, source.ID(), attrs)
		s.ErrorIs(err, usecase.ErrAccountAlreadyExists)
	})

	s.Run("empty catalog creates no job and dispatches nothing", func() {
		dispatcher := &recordingDispatcher{}
		uc := s.newUseCase(dispatcher, 5)
		newID := uuid.New()

		s.accountRepo.EXPECT().FindByID(gomock.Any(), source.ID()).Return(source, nil).Times(1)
		s.accountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(newID, nil).Times(1)
		s.productRepo.EXPECT().CountByAccount(gomock.Any(), source.ID()).Return(int32(0), nil).Times(1)

		result, err := uc.Clone(ctx, source.ID(), attrs)
		s.NoError(err)
		s.Equal(newID, result.NewAccountID)
		s.Nil(result.JobID)
		s.Equal(int32(0), result.TotalItems)
		s.Empty(dispatcher.requests)
	})

	s.Run("unreadable catalog degrades to account-only success", func() {
		dispatcher := &recordingDispatcher{}
		uc := s.newUseCase(dispatcher, 5)
		newID := uuid.New()

		s.accountRepo.EXPECT().FindByID(gomock.Any(), source.ID()).Return(source, nil).Times(1)
		s.accountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(newID, nil).Times(1)
		s.productRepo.EXPECT().CountByAccount(gomock.Any(), source.ID()).
			Return(int32(0), errors.New("connection reset")).Times(1)

		result, err := uc.Clone(ctx, source.ID(), attrs)
		s.NoError(err)
		s.Equal(newID, result.NewAccountID)
		s.Nil(result.JobID)
		s.Empty(dispatcher.requests)
	})

	s.Run("job persistence failure still reports the new account", func() {
		dispatcher := &recordingDispatcher{}
		uc := s.newUseCase(dispatcher, 5)
		newID := uuid.New()

		s.accountRepo.EXPECT().FindByID(gomock.Any(), source.ID()).Return(source, nil).Times(1)
		s.accountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(newID, nil).Times(1)
		s.productRepo.EXPECT().CountByAccount(gomock.Any(), source.ID()).Return(int32(7), nil).Times(1)
		s.jobRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed")).Times(1)

		result, err := uc.Clone(ctx, source.ID(), attrs)
		s.NoError(err)
		s.Equal(newID, result.NewAccountID)
		s.Nil(result.JobID)
		s.Equal(int32(7), result.TotalItems)
		s.Empty(dispatcher.requests)
	})

	s.Run("first batch is dispatched with the configured limit", func() {
		dispatcher := &recordingDispatcher{}
		uc := s.newUseCase(dispatcher, 5)
		newID := uuid.New()

		s.accountRepo.EXPECT().FindByID(gomock.Any(), source.ID()).Return(source, nil).Times(1)
		s.accountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(newID, nil).Times(1)
		s.productRepo.EXPECT().CountByAccount(gomock.Any(), source.ID()).Return(int32(12), nil).Times(1)

		var persisted *clonejob.CloneJob
		s.jobRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, job *clonejob.CloneJob) error {
				persisted = job
				return nil
			}).Times(1)

		result, err := uc.Clone(ctx, source.ID(), attrs)
		s.NoError(err)
		s.Require().NotNil(result.JobID)
		s.Require().NotNil(persisted)
		s.Equal(persisted.ID, *result.JobID)
		s.Equal(clonejob.StatusPending, persisted.Status)
		s.Equal(int32(12), persisted.TotalItems)
		s.Equal(int32(12), result.TotalItems)

		s.Require().Len(dispatcher.requests, 1)
		first := dispatcher.requests[0]
		s.Equal(persisted.ID, first.JobID)
		s.Equal(source.ID(), first.SourceAccountID)
		s.Equal(newID, first.TargetAccountID)
		s.Equal(int32(0), first.Offset)
		s.Equal(int32(5), first.Limit)
	})

	s.Run("dispatch failure leaves the job pending but the call succeeds", func() {
		dispatcher := &recordingDispatcher{err: errors.New("queue full")}
		uc := s.newUseCase(dispatcher, 5)
		newID := uuid.New()

		s.accountRepo.EXPECT().FindByID(gomock.Any(), source.ID()).Return(source, nil).Times(1)
		s.accountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(newID, nil).Times(1)
		s.productRepo.EXPECT().CountByAccount(gomock.Any(), source.ID()).Return(int32(3), nil).Times(1)
		s.jobRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		result, err := uc.Clone(ctx, source.ID(), attrs)
		s.NoError(err)
		s.NotNil(result.JobID)
	})
}

// ================================================================================
// ProcessBatch
// ================================================================================

func (s *CloneUseCaseTestSuite) TestProcessBatch() {
	jobID := uuid.New()
	sourceID := uuid.New()
	targetID := uuid.New()

	req := usecase.BatchRequest{
		JobID:           jobID,
		SourceAccountID: sourceID,
		TargetAccountID: targetID,
		Offset:          0,
		Limit:           5,
	}

	noExtras := func(times int) {
		s.productRepo.EXPECT().ListTiers(gomock.Any(), gomock.Any()).Return(nil, nil).Times(times)
		s.productRepo.EXPECT().ListImages(gomock.Any(), gomock.Any()).Return(nil, nil).Times(times)
	}

	s.Run("cancelled context stops before any read", func() {
		uc := s.newUseCase(&recordingDispatcher{}, 5)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := uc.ProcessBatch(ctx, req)
		s.ErrorIs(err, context.Canceled)
	})

	s.Run("full page chains the next batch", func() {
		dispatcher := &recordingDispatcher{}
		uc := s.newUseCase(dispatcher, 5)
		page := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.AccountID = sourceID
		}).BuildPage(5)

		s.productRepo.EXPECT().ListPage(gomock.Any(), sourceID, int32(0), int32(5)).Return(page, nil).Times(1)
		s.productRepo.EXPECT().ListSlugs(gomock.Any(), targetID).Return(nil, nil).Times(1)
		s.productRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(5)
		noExtras(5)
		s.jobRepo.EXPECT().AddProcessed(gomock.Any(), jobID, int32(5)).Return(nil).Times(1)

		result, err := uc.ProcessBatch(context.Background(), req)
		s.NoError(err)
		s.Equal(5, result.Processed)
		s.Equal(0, result.Errors)
		s.True(result.HasMore)

		s.Require().Len(dispatcher.requests, 1)
		s.Equal(int32(5), dispatcher.requests[0].Offset)
		s.Equal(jobID, dispatcher.requests[0].JobID)
	})

	s.Run("continuation dispatch failure stalls without a terminal write", func() {
		dispatcher := &recordingDispatcher{err: errors.New("scheduler unavailable")}
		uc := s.newUseCase(dispatcher, 5)
		page := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.AccountID = sourceID
		}).BuildPage(5)

		s.productRepo.EXPECT().ListPage(gomock.Any(), sourceID, int32(0), int32(5)).Return(page, nil).Times(1)
		s.productRepo.EXPECT().ListSlugs(gomock.Any(), targetID).Return(nil, nil).Times(1)
		s.productRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(5)
		noExtras(5)
		s.jobRepo.EXPECT().AddProcessed(gomock.Any(), jobID, int32(5)).Return(nil).Times(1)
		// No MarkCompleted and no MarkFailed: the job stays in processing,
		// visible to pollers as stalled progress.

		result, err := uc.ProcessBatch(context.Background(), req)
		s.NoError(err)
		s.Equal(5, result.Processed)
		s.True(result.HasMore)
		s.Require().Len(dispatcher.requests, 1)
		s.Equal(int32(5), dispatcher.requests[0].Offset)
	})

	s.Run("short page completes the job", func() {
		dispatcher := &recordingDispatcher{}
		uc := s.newUseCase(dispatcher, 5)
		page := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.AccountID = sourceID
		}).BuildPage(2)

		s.productRepo.EXPECT().ListPage(gomock.Any(), sourceID, int32(0), int32(5)).Return(page, nil).Times(1)
		s.productRepo.EXPECT().ListSlugs(gomock.Any(), targetID).Return(nil, nil).Times(1)
		s.productRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		noExtras(2)
		s.jobRepo.EXPECT().AddProcessed(gomock.Any(), jobID, int32(2)).Return(nil).Times(1)
		s.jobRepo.EXPECT().MarkCompleted(gomock.Any(), jobID).Return(nil).Times(1)

		result, err := uc.ProcessBatch(context.Background(), req)
		s.NoError(err)
		s.Equal(2, result.Processed)
		s.False(result.HasMore)
		s.Empty(dispatcher.requests)
	})

	s.Run("empty page completes without progress write", func() {
		uc := s.newUseCase(&recordingDispatcher{}, 5)

		s.productRepo.EXPECT().ListPage(gomock.Any(), sourceID, int32(0), int32(5)).Return(nil, nil).Times(1)
		s.productRepo.EXPECT().ListSlugs(gomock.Any(), targetID).Return(nil, nil).Times(1)
		s.jobRepo.EXPECT().MarkCompleted(gomock.Any(), jobID).Return(nil).Times(1)

		result, err := uc.ProcessBatch(context.Background(), req)
		s.NoError(err)
		s.Equal(0, result.Processed)
		s.False(result.HasMore)
	})

	s.Run("page read failure is terminal", func() {
		uc := s.newUseCase(&recordingDispatcher{}, 5)

		s.productRepo.EXPECT().ListPage(gomock.Any(), sourceID, int32(0), int32(5)).
			Return(nil, errors.New("read timeout")).Times(1)

		_, err := uc.ProcessBatch(context.Background(), req)
		s.ErrorContains(err, "failed to read source page")
	})

	s.Run("item insert failure is counted and skipped", func() {
		uc := s.newUseCase(&recordingDispatcher{}, 5)
		page := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.AccountID = sourceID
		}).BuildPage(3)

		s.productRepo.EXPECT().ListPage(gomock.Any(), sourceID, int32(0), int32(5)).Return(page, nil).Times(1)
		s.productRepo.EXPECT().ListSlugs(gomock.Any(), targetID).Return(nil, nil).Times(1)
		gomock.InOrder(
			s.productRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil),
			s.productRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("constraint violated")),
			s.productRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil),
		)
		noExtras(2)
		s.jobRepo.EXPECT().AddProcessed(gomock.Any(), jobID, int32(2)).Return(nil).Times(1)
		s.jobRepo.EXPECT().MarkCompleted(gomock.Any(), jobID).Return(nil).Times(1)

		result, err := uc.ProcessBatch(context.Background(), req)
		s.NoError(err)
		s.Equal(2, result.Processed)
		s.Equal(1, result.Errors)
	})

	s.Run("clone slugs avoid the target namespace", func() {
		uc := s.newUseCase(&recordingDispatcher{}, 5)
		page := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.AccountID = sourceID
			b.Slug = "walnut-chair"
		}).BuildDomain()

		s.productRepo.EXPECT().ListPage(gomock.Any(), sourceID, int32(0), int32(5)).
			Return([]catalog.Product{page}, nil).Times(1)
		s.productRepo.EXPECT().ListSlugs(gomock.Any(), targetID).
			Return([]string{"walnut-chair"}, nil).Times(1)

		var inserted *catalog.Product
		s.productRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *catalog.Product) error {
				inserted = p
				return nil
			}).Times(1)
		noExtras(1)
		s.jobRepo.EXPECT().AddProcessed(gomock.Any(), jobID, int32(1)).Return(nil).Times(1)
		s.jobRepo.EXPECT().MarkCompleted(gomock.Any(), jobID).Return(nil).Times(1)

		_, err := uc.ProcessBatch(context.Background(), req)
		s.NoError(err)
		s.Require().NotNil(inserted)
		s.Equal("walnut-chair-1", inserted.Slug)
		s.Equal(targetID, inserted.AccountID)
		s.NotEqual(page.ID, inserted.ID)
		s.Nil(inserted.PrimaryImageURL)
		s.Equal(s.clk.Now(), inserted.CreatedAt)
	})

	s.Run("completion write failure is terminal", func() {
		uc := s.newUseCase(&recordingDispatcher{}, 5)

		s.productRepo.EXPECT().ListPage(gomock.Any(), sourceID, int32(0), int32(5)).Return(nil, nil).Times(1)
		s.productRepo.EXPECT().ListSlugs(gomock.Any(), targetID).Return(nil, nil).Times(1)
		s.jobRepo.EXPECT().MarkCompleted(gomock.Any(), jobID).Return(errors.New("write failed")).Times(1)

		_, err := uc.ProcessBatch(context.Background(), req)
		s.ErrorContains(err, "failed to mark clone job completed")
	})
}

// ================================================================================
// Asset replication
// ================================================================================

func (s *CloneUseCaseTestSuite) TestProcessBatchAssets() {
	jobID := uuid.New()
	sourceID := uuid.New()
	targetID := uuid.New()

	req := usecase.BatchRequest{
		JobID:           jobID,
		SourceAccountID: sourceID,
		TargetAccountID: targetID,
		Offset:          0,
		Limit:           5,
	}

	pb := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
		b.AccountID = sourceID
	})
	product := pb.BuildDomain()

	setupPage := func() {
		s.productRepo.EXPECT().ListPage(gomock.Any(), sourceID, int32(0), int32(5)).
			Return([]catalog.Product{product}, nil).Times(1)
		s.productRepo.EXPECT().ListSlugs(gomock.Any(), targetID).Return(nil, nil).Times(1)
		s.productRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		s.productRepo.EXPECT().ListTiers(gomock.Any(), product.ID).Return(nil, nil).Times(1)
		s.jobRepo.EXPECT().AddProcessed(gomock.Any(), jobID, int32(1)).Return(nil).Times(1)
		s.jobRepo.EXPECT().MarkCompleted(gomock.Any(), jobID).Return(nil).Times(1)
	}

	s.Run("replicated primary image repoints the clone", func() {
		uc := s.newUseCase(&recordingDispatcher{}, 5)
		primary := pb.BuildImage(product.ID, 0, true)
		secondary := pb.BuildImage(product.ID, 1, false)

		setupPage()
		s.productRepo.EXPECT().ListImages(gomock.Any(), product.ID).
			Return([]catalog.ProductImage{primary, secondary}, nil).Times(1)

		s.assets.EXPECT().Fetch(gomock.Any(), primary.URL).
			Return([]byte("primary-bytes"), "image/jpeg", nil).Times(1)
		s.assets.EXPECT().Fetch(gomock.Any(), secondary.URL).
			Return([]byte("secondary-bytes"), "image/jpeg", nil).Times(1)
		s.assets.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), "image/jpeg").
			DoAndReturn(func(_ context.Context, key string, _ []byte, _ string) (string, error) {
				return "https://cdn.example.com/" + key, nil
			}).Times(2)

		var insertedPrimary bool
		s.productRepo.EXPECT().InsertImage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, img *catalog.ProductImage) error {
				if img.IsPrimary {
					insertedPrimary = true
				}
				s.NotEqual(product.ID, img.ProductID)
				return nil
			}).Times(2)
		s.productRepo.EXPECT().SetPrimaryImageURL(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, url string) error {
				s.Contains(url, "https://cdn.example.com/products/")
				return nil
			}).Times(1)

		result, err := uc.ProcessBatch(context.Background(), req)
		s.NoError(err)
		s.Equal(1, result.Processed)
		s.True(insertedPrimary)
	})

	s.Run("cancellation mid-replication truncates remaining transfers", func() {
		var logBuf bytes.Buffer
		uc := usecase.NewCloneUseCase(
			context.Background(), s.accountRepo, s.productRepo, s.jobRepo, s.assets,
			&recordingDispatcher{}, s.clk,
			slog.New(slog.NewTextHandler(&logBuf, nil)), 5, 1,
		)
		ctx, cancel := context.WithCancel(context.Background())
		first := pb.BuildImage(product.ID, 0, false)
		second := pb.BuildImage(product.ID, 1, true)

		setupPage()
		s.productRepo.EXPECT().ListImages(gomock.Any(), product.ID).
			Return([]catalog.ProductImage{first, second}, nil).Times(1)
		// The only transfer that starts: it kills the context and holds its
		// slot so the second image is never admitted.
		s.assets.EXPECT().Fetch(gomock.Any(), first.URL).
			DoAndReturn(func(ctx context.Context, _ string) ([]byte, string, error) {
				cancel()
				time.Sleep(20 * time.Millisecond)
				return nil, "", ctx.Err()
			}).Times(1)

		result, err := uc.ProcessBatch(ctx, req)
		s.NoError(err)
		s.Equal(1, result.Processed)
		s.Equal(0, result.Errors)
		s.Contains(logBuf.String(), "asset replication truncated")
	})

	s.Run("unreachable image never fails the item", func() {
		uc := s.newUseCase(&recordingDispatcher{}, 5)
		primary := pb.BuildImage(product.ID, 0, true)

		setupPage()
		s.productRepo.EXPECT().ListImages(gomock.Any(), product.ID).
			Return([]catalog.ProductImage{primary}, nil).Times(1)
		s.assets.EXPECT().Fetch(gomock.Any(), primary.URL).
			Return(nil, "", errors.New("404 not found")).Times(1)

		result, err := uc.ProcessBatch(context.Background(), req)
		s.NoError(err)
		s.Equal(1, result.Processed)
		s.Equal(0, result.Errors)
	})
}

// ================================================================================
// Self-chaining end to end
// ================================================================================

func (s *CloneUseCaseTestSuite) TestCloneChain() {
	s.Run("twelve items with limit five run as three batches", func() {
		source := builder.NewAccountBuilder().BuildDomain()
		attrs := builder.NewAccountBuilder().With(func(b *builder.AccountBuilder) {
			b.Email = "copy@example.com"
			b.Slug = "acme-copy"
		}).BuildCloneAttributes()
		newID := uuid.New()

		dispatcher := &syncDispatcher{}
		uc := s.newUseCase(dispatcher, 5)
		dispatcher.uc = uc

		all := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.AccountID = source.ID()
		}).BuildPage(12)

		s.accountRepo.EXPECT().FindByID(gomock.Any(), source.ID()).Return(source, nil).Times(1)
		s.accountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(newID, nil).Times(1)
		s.productRepo.EXPECT().CountByAccount(gomock.Any(), source.ID()).Return(int32(12), nil).Times(1)
		s.jobRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		s.productRepo.EXPECT().ListPage(gomock.Any(), source.ID(), int32(0), int32(5)).Return(all[0:5], nil).Times(1)
		s.productRepo.EXPECT().ListPage(gomock.Any(), source.ID(), int32(5), int32(5)).Return(all[5:10], nil).Times(1)
		s.productRepo.EXPECT().ListPage(gomock.Any(), source.ID(), int32(10), int32(5)).Return(all[10:12], nil).Times(1)
		s.productRepo.EXPECT().ListSlugs(gomock.Any(), newID).Return(nil, nil).Times(3)
		s.productRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(12)
		s.productRepo.EXPECT().ListTiers(gomock.Any(), gomock.Any()).Return(nil, nil).Times(12)
		s.productRepo.EXPECT().ListImages(gomock.Any(), gomock.Any()).Return(nil, nil).Times(12)

		gomock.InOrder(
			s.jobRepo.EXPECT().AddProcessed(gomock.Any(), gomock.Any(), int32(5)).Return(nil),
			s.jobRepo.EXPECT().AddProcessed(gomock.Any(), gomock.Any(), int32(5)).Return(nil),
			s.jobRepo.EXPECT().AddProcessed(gomock.Any(), gomock.Any(), int32(2)).Return(nil),
			s.jobRepo.EXPECT().MarkCompleted(gomock.Any(), gomock.Any()).Return(nil),
		)

		result, err := uc.Clone(context.Background(), source.ID(), attrs)
		s.NoError(err)
		s.NotNil(result.JobID)

		s.Require().Len(dispatcher.requests, 3)
		s.Equal(int32(0), dispatcher.requests[0].Offset)
		s.Equal(int32(5), dispatcher.requests[1].Offset)
		s.Equal(int32(10), dispatcher.requests[2].Offset)
	})
}
