package components

import (
	"storefront/internal/infra/readstore"
	repo_impl "storefront/internal/infra/repository"
	"storefront/internal/usecase"
	"storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewAccountRepository,
			fx.As(new(usecase.AccountRepository)),
			fx.As(new(usecase.AuthAccountRepository)),
		),
		fx.Annotate(
			repo_impl.NewProductRepository,
			fx.As(new(usecase.ProductRepository)),
		),
		fx.Annotate(
			repo_impl.NewCloneJobRepository,
			fx.As(new(usecase.CloneJobRepository)),
		),
		// Read-side store for the public catalog
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.CatalogQueries)),
		),
	),
)
