package fx

import (
	"Cofrinho/internal/domain/goal"
	"Cofrinho/internal/infrastructure"
	"Cofrinho/internal/metrics"

	"go.uber.org/fx"
	"k8s.io/utils/clock"
)

// DomainModule fornece os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newClock,
		newMetrics,
		newGoalService,
	),
)

func newClock() clock.PassiveClock {
	return clock.RealClock{}
}

func newMetrics() *metrics.Metrics {
	return metrics.New()
}

func newGoalService(
	repo *infrastructure.GoalRepository,
	clk clock.PassiveClock,
	m *metrics.Metrics,
) *goal.Service {
	return goal.NewService(repo, clk, m)
}
