package components

import (
	"campus-tickets/internal/infra/intent"
	"campus-tickets/internal/infra/readstore"
	"campus-tickets/internal/infra/repository"
	"campus-tickets/internal/pkg/config"
	"campus-tickets/internal/usecase"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(usecase.EventReads)),
		),
		fx.Annotate(
			repository.NewInventoryRepository,
			fx.As(new(usecase.InventoryWrites)),
		),
		fx.Annotate(
			NewIntentClient,
			fx.As(new(usecase.IntentResolver)),
		),
	),
)

func NewIntentClient(cfg config.Config) *intent.Client {
	return intent.NewClient(cfg.Resolver)
}
