package bootstrap

import (
	"context"

	"storefront/internal/infra/blobstore"
	"storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var BlobModule = fx.Module("blob",
	fx.Provide(
		NewBlobStore,
	),
)

func NewBlobStore(lc fx.Lifecycle, cfg config.Config) (*blobstore.Store, error) {
	store, cleanup, err := blobstore.NewStore(
		context.Background(),
		cfg.Assets.BucketURL,
		cfg.Assets.PublicBaseURL,
		cfg.Assets.FetchTimeout,
	)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return store, nil
}
