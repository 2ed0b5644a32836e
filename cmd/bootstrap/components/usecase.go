package components

import (
	"context"
	"log/slog"

	"storefront/internal/infra/blobstore"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			func(store *blobstore.Store) *blobstore.Store { return store },
			fx.As(new(usecase.AssetStore)),
		),
		NewCloneUseCase,
		usecase.NewCloneStatusUseCase,
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)

func NewCloneUseCase(
	lc fx.Lifecycle,
	accountRepo usecase.AccountRepository,
	productRepo usecase.ProductRepository,
	jobRepo usecase.CloneJobRepository,
	assets usecase.AssetStore,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.Config,
) usecase.CloneUseCase {
	// Batch chains run under this context; cancelling it on shutdown stops
	// every in-flight chain at its next batch boundary.
	chainCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})

	return usecase.NewCloneUseCase(
		chainCtx,
		accountRepo,
		productRepo,
		jobRepo,
		assets,
		nil, // default self-chaining dispatcher
		clk,
		logger,
		int32(cfg.Clone.BatchLimit),
		cfg.Assets.MaxInFlight,
	)
}
