package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"storefront/internal/domain/account"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/clonejob"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/password"
	"storefront/internal/pkg/pool"
	"storefront/internal/pkg/slugs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	ErrSourceAccountNotFound    = errs.New("source account not found")
	ErrInvalidAccountAttributes = errs.New("invalid new account attributes")
	ErrAccountAlreadyExists     = errs.New("account email or slug already taken")
)

// AccountRepository is the account persistence surface the clone pipeline needs.
type AccountRepository interface {
	Create(ctx context.Context, acc *account.Account) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error)
}

type ProductRepository interface {
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int32, error)
	ListPage(ctx context.Context, accountID uuid.UUID, offset, limit int32) ([]catalog.Product, error)
	ListSlugs(ctx context.Context, accountID uuid.UUID) ([]string, error)
	Insert(ctx context.Context, p *catalog.Product) error
	SetPrimaryImageURL(ctx context.Context, productID uuid.UUID, url string) error
	ListImages(ctx context.Context, productID uuid.UUID) ([]catalog.ProductImage, error)
	InsertImage(ctx context.Context, img *catalog.ProductImage) error
	ListTiers(ctx context.Context, productID uuid.UUID) ([]catalog.PriceTier, error)
	InsertTier(ctx context.Context, t *catalog.PriceTier) error
}

// CloneJobRepository is the job record store: the only state shared across
// batch invocation boundaries.
type CloneJobRepository interface {
	Create(ctx context.Context, job *clonejob.CloneJob) error
	Get(ctx context.Context, id uuid.UUID) (*clonejob.CloneJob, error)
	AddProcessed(ctx context.Context, id uuid.UUID, delta int32) error
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
}

// AssetStore duplicates one binary asset: fetch from its source URL, write
// under a new key, report the stored copy's public URL.
type AssetStore interface {
	Fetch(ctx context.Context, sourceURL string) (data []byte, contentType string, err error)
	Put(ctx context.Context, key string, data []byte, contentType string) (url string, err error)
}

// BatchRequest identifies one page of source items to clone.
type BatchRequest struct {
	JobID           uuid.UUID
	SourceAccountID uuid.UUID
	TargetAccountID uuid.UUID
	Offset          int32
	Limit           int32
}

type BatchResult struct {
	Processed int
	Errors    int
	HasMore   bool
}

// BatchDispatcher schedules one batch invocation without waiting for it.
// Invocations for the same job must never be issued concurrently: the
// job record is written without locks on the strength of that invariant.
type BatchDispatcher interface {
	Dispatch(req BatchRequest) error
}

type NewAccountAttributes struct {
	Email    string
	Password string
	Name     string
	Slug     string
}

// CloneResult is what the synchronous entry point reports. JobID is nil when
// the source account has nothing to clone, or when the job record could not
// be persisted after the account was already created (degraded success).
type CloneResult struct {
	NewAccountID uuid.UUID
	JobID        *uuid.UUID
	TotalItems   int32
}

type CloneUseCase interface {
	Clone(ctx context.Context, sourceAccountID uuid.UUID, attrs NewAccountAttributes) (*CloneResult, error)
	ProcessBatch(ctx context.Context, req BatchRequest) (BatchResult, error)
}

type cloneUseCaseImpl struct {
	accountRepo AccountRepository
	productRepo ProductRepository
	jobRepo     CloneJobRepository
	assets      AssetStore
	dispatcher  BatchDispatcher
	clock       clock.Clock
	logger      *slog.Logger
	batchLimit  int32
	maxInFlight int
}

// NewCloneUseCase wires the clone pipeline. Passing a nil dispatcher installs
// the default in-process self-chaining dispatcher, whose batches run under
// baseCtx: cancelling it stops every chain at its next batch boundary.
func NewCloneUseCase(
	baseCtx context.Context,
	accountRepo AccountRepository,
	productRepo ProductRepository,
	jobRepo CloneJobRepository,
	assets AssetStore,
	dispatcher BatchDispatcher,
	clk clock.Clock,
	logger *slog.Logger,
	batchLimit int32,
	maxInFlight int,
) CloneUseCase {
	uc := &cloneUseCaseImpl{
		accountRepo: accountRepo,
		productRepo: productRepo,
		jobRepo:     jobRepo,
		assets:      assets,
		dispatcher:  dispatcher,
		clock:       clk,
		logger:      logger,
		batchLimit:  batchLimit,
		maxInFlight: maxInFlight,
	}
	if uc.dispatcher == nil {
		if baseCtx == nil {
			baseCtx = context.Background()
		}
		uc.dispatcher = newChainDispatcher(baseCtx, uc, jobRepo, logger)
	}
	return uc
}

// Clone creates the target account and, when the source owns any products,
// a clone job whose first batch is dispatched fire-and-forget. The call
// returns before any item is copied.
func (u *cloneUseCaseImpl) Clone(ctx context.Context, sourceAccountID uuid.UUID, attrs NewAccountAttributes) (*CloneResult, error) {
	newAccount, err := u.buildAccount(attrs)
	if err != nil {
		return nil, err
	}

	if _, err := u.accountRepo.FindByID(ctx, sourceAccountID); err != nil {
		return nil, errs.Mark(err, ErrSourceAccountNotFound)
	}

	newAccountID, err := u.accountRepo.Create(ctx, newAccount)
	if err != nil {
		return nil, errs.Mark(err, ErrAccountAlreadyExists)
	}

	total, err := u.productRepo.CountByAccount(ctx, sourceAccountID)
	if err != nil {
		// Account exists but the catalog is unreadable; report the degraded
		// success rather than failing a half-done call.
		u.logger.Error("failed to count source products", "source_account_id", sourceAccountID, "error", err)
		return &CloneResult{NewAccountID: newAccountID}, nil
	}
	if total == 0 {
		return &CloneResult{NewAccountID: newAccountID}, nil
	}

	job := clonejob.New(sourceAccountID, newAccountID, total)
	if err := u.jobRepo.Create(ctx, job); err != nil {
		u.logger.Error("failed to persist clone job", "source_account_id", sourceAccountID, "target_account_id", newAccountID, "error", err)
		return &CloneResult{NewAccountID: newAccountID, TotalItems: total}, nil
	}

	req := BatchRequest{
		JobID:           job.ID,
		SourceAccountID: sourceAccountID,
		TargetAccountID: newAccountID,
		Offset:          0,
		Limit:           u.batchLimit,
	}
	if err := u.dispatcher.Dispatch(req); err != nil {
		// The job stays pending; pollers see it never advancing.
		u.logger.Error("failed to dispatch first clone batch", "job_id", job.ID, "error", err)
	}

	jobID := job.ID
	return &CloneResult{NewAccountID: newAccountID, JobID: &jobID, TotalItems: total}, nil
}

func (u *cloneUseCaseImpl) buildAccount(attrs NewAccountAttributes) (*account.Account, error) {
	if attrs.Password == "" || attrs.Name == "" || attrs.Slug == "" {
		return nil, ErrInvalidAccountAttributes
	}
	email, err := account.NewEmail(attrs.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAccountAttributes)
	}
	hash, err := password.HashPassword(attrs.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAccountAttributes)
	}
	acc, err := account.NewAccount(email, hash, attrs.Name, slugs.Slugify(attrs.Slug))
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAccountAttributes)
	}
	return acc, nil
}

// ProcessBatch clones the page [Offset, Offset+Limit) of the source catalog.
// Item failures are isolated: one bad record is counted and skipped, never
// aborting the batch. An error returned from here is terminal for the whole
// invocation and is turned into a failed job by the dispatcher.
func (u *cloneUseCaseImpl) ProcessBatch(ctx context.Context, req BatchRequest) (BatchResult, error) {
	if err := ctx.Err(); err != nil {
		return BatchResult{}, errs.Wrap(err, "batch canceled before start")
	}

	page, err := u.productRepo.ListPage(ctx, req.SourceAccountID, req.Offset, req.Limit)
	if err != nil {
		return BatchResult{}, errs.Wrap(err, "failed to read source page")
	}

	taken, err := u.productRepo.ListSlugs(ctx, req.TargetAccountID)
	if err != nil {
		return BatchResult{}, errs.Wrap(err, "failed to seed slug registry")
	}
	registry := slugs.NewRegistry(taken)

	// Fresh identity map per batch; re-parents nested records onto clones.
	identity := make(map[uuid.UUID]uuid.UUID, len(page))

	result := BatchResult{}
	for i := range page {
		item := &page[i]
		newID, err := u.cloneItem(ctx, item, req.TargetAccountID, registry)
		if err != nil {
			result.Errors++
			u.logger.Warn("failed to clone product",
				"job_id", req.JobID, "product_id", item.ID, "error", err)
			continue
		}
		identity[item.ID] = newID
		result.Processed++

		u.cloneTiers(ctx, req.JobID, item.ID, identity[item.ID])

		if primaryURL := u.replicateAssets(ctx, req.JobID, item.ID, newID); primaryURL != "" {
			if err := u.productRepo.SetPrimaryImageURL(ctx, newID, primaryURL); err != nil {
				u.logger.Warn("failed to set primary image on clone",
					"job_id", req.JobID, "product_id", newID, "error", err)
			}
		}
	}

	if len(page) > 0 {
		if err := u.jobRepo.AddProcessed(ctx, req.JobID, int32(result.Processed)); err != nil {
			u.logger.Error("failed to persist clone progress", "job_id", req.JobID, "error", err)
		}
	}

	result.HasMore = int32(len(page)) == req.Limit
	if !result.HasMore {
		if err := u.jobRepo.MarkCompleted(ctx, req.JobID); err != nil {
			return result, errs.Wrap(err, "failed to mark clone job completed")
		}
		u.logger.Info("clone job completed", "job_id", req.JobID)
		return result, nil
	}

	next := req
	next.Offset += req.Limit
	if err := u.dispatcher.Dispatch(next); err != nil {
		// Not retried: the job stays in processing, visible to pollers as
		// stalled progress.
		u.logger.Error("failed to dispatch clone continuation",
			"job_id", req.JobID, "next_offset", next.Offset, "error", err)
	}
	return result, nil
}

// cloneItem copies the item's business fields, regenerates identity and
// ownership, and mints a collision-free slug before inserting.
func (u *cloneUseCaseImpl) cloneItem(ctx context.Context, item *catalog.Product, targetAccountID uuid.UUID, registry slugs.Registry) (uuid.UUID, error) {
	var clone catalog.Product
	if err := copier.Copy(&clone, item); err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to copy product fields")
	}

	clone.ID = uuid.New()
	clone.AccountID = targetAccountID
	clone.Slug = slugs.GenerateUnique(item.Slug, registry)
	clone.PrimaryImageURL = nil // repointed after asset replication
	clone.CreatedAt = u.clock.Now()
	clone.UpdatedAt = clone.CreatedAt

	if err := u.productRepo.Insert(ctx, &clone); err != nil {
		return uuid.Nil, err
	}
	return clone.ID, nil
}

func (u *cloneUseCaseImpl) cloneTiers(ctx context.Context, jobID, sourceProductID, newProductID uuid.UUID) {
	tiers, err := u.productRepo.ListTiers(ctx, sourceProductID)
	if err != nil {
		u.logger.Warn("failed to list source price tiers",
			"job_id", jobID, "product_id", sourceProductID, "error", err)
		return
	}
	for i := range tiers {
		tier := tiers[i]
		tier.ID = uuid.New()
		tier.ProductID = newProductID
		tier.CreatedAt = u.clock.Now()
		if err := u.productRepo.InsertTier(ctx, &tier); err != nil {
			u.logger.Warn("failed to clone price tier",
				"job_id", jobID, "product_id", newProductID, "error", err)
		}
	}
}

type assetOutcome struct {
	primaryURL string
	err        error
}

// replicateAssets copies every image of the source item under keys scoped to
// the new item, at most maxInFlight transfers at a time. Per-asset failures
// are swallowed and logged; whatever primary URL succeeded is returned, or "".
func (u *cloneUseCaseImpl) replicateAssets(ctx context.Context, jobID, sourceProductID, newProductID uuid.UUID) string {
	images, err := u.productRepo.ListImages(ctx, sourceProductID)
	if err != nil {
		u.logger.Warn("failed to list source images",
			"job_id", jobID, "product_id", sourceProductID, "error", err)
		return ""
	}
	if len(images) == 0 {
		return ""
	}

	outcomes, err := pool.ForEach(ctx, images, u.maxInFlight, func(ctx context.Context, img catalog.ProductImage) assetOutcome {
		return u.replicateOne(ctx, img, newProductID)
	})
	if err != nil {
		// Remaining images never started; their zero outcomes carry no URL
		// and no error, so only the truncation itself is worth a line.
		u.logger.Warn("asset replication truncated",
			"job_id", jobID, "product_id", newProductID, "error", err)
	}

	primaryURL := ""
	for i, out := range outcomes {
		if out.err != nil {
			u.logger.Warn("failed to replicate asset",
				"job_id", jobID, "product_id", newProductID, "source_url", images[i].URL, "error", out.err)
			continue
		}
		if out.primaryURL != "" {
			primaryURL = out.primaryURL
		}
	}
	return primaryURL
}

func (u *cloneUseCaseImpl) replicateOne(ctx context.Context, img catalog.ProductImage, newProductID uuid.UUID) assetOutcome {
	data, contentType, err := u.assets.Fetch(ctx, img.URL)
	if err != nil {
		return assetOutcome{err: err}
	}

	key := assetKey(newProductID, img.URL)
	url, err := u.assets.Put(ctx, key, data, contentType)
	if err != nil {
		return assetOutcome{err: err}
	}

	clone := catalog.ProductImage{
		ID:        uuid.New(),
		ProductID: newProductID,
		URL:       url,
		StoreKey:  key,
		Position:  img.Position,
		IsPrimary: img.IsPrimary,
		CreatedAt: u.clock.Now(),
	}
	if err := u.productRepo.InsertImage(ctx, &clone); err != nil {
		return assetOutcome{err: err}
	}

	if img.IsPrimary {
		return assetOutcome{primaryURL: url}
	}
	return assetOutcome{}
}

// assetKey scopes the stored copy to the new item so concurrent clones can
// never collide on object keys.
func assetKey(newProductID uuid.UUID, sourceURL string) string {
	ext := path.Ext(sourceURL)
	if i := strings.IndexByte(ext, '?'); i >= 0 {
		ext = ext[:i]
	}
	return fmt.Sprintf("products/%s/%s%s", newProductID, uuid.New(), ext)
}
