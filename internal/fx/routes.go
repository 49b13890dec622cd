package fx

import (
	"Cofrinho/internal/domain/goal"
	"Cofrinho/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece os handlers HTTP
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
	),
)

func newHandler(goalSvc *goal.Service) *routes.Handler {
	return routes.NewHandler(goalSvc)
}
