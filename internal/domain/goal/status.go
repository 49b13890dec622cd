package goal

import (
	"time"

	"k8s.io/utils/clock"
)

// StatusAt deriva o status de uma meta no instante now. Meta atingida tem prioridade
// sobre prazo vencido; alvo zerado nunca conta como atingido. O prazo vence apenas
// quando a data final e anterior ao dia de hoje (UTC), nunca no proprio dia.
func StatusAt(g *Goal, now time.Time) GoalStatus {
	if g == nil {
		return Active
	}

	if g.TargetAmount.IsPositive() && g.SavedAmount.GreaterThanOrEqual(g.TargetAmount) {
		return Achieved
	}

	if g.EndDate != nil && civilDate(*g.EndDate).Before(civilDate(now)) {
		return Expired
	}

	return Active
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type StatusResolver struct {
	Clock clock.PassiveClock
}

func NewStatusResolver(clk clock.PassiveClock) *StatusResolver {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &StatusResolver{Clock: clk}
}

func (r *StatusResolver) Resolve(g *Goal) GoalStatus {
	return StatusAt(g, r.Clock.Now())
}
