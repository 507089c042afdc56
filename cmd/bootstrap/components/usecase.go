package components

import (
	"campus-tickets/internal/domain/booking"
	"campus-tickets/internal/pkg/clock"
	"campus-tickets/internal/pkg/config"
	"campus-tickets/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewSessionStore,
		usecase.NewInventoryUseCase,
		usecase.NewAssistantUseCase,
		usecase.NewAuthUseCase,
	),
)

func NewSessionStore(cfg config.Config) *booking.SessionStore {
	return booking.NewSessionStore(cfg.Assistant.PendingTTL)
}
