package components

import (
	"campus-tickets/internal/handler"
	"campus-tickets/internal/handler/api"
	"campus-tickets/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewEventHandler,
		api.NewAssistantHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
