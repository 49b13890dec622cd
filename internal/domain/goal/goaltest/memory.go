// Package goaltest fornece um repositorio de metas em memoria para testes.
package goaltest

import (
	"context"
	"sort"
	"sync"
	"time"

	"Cofrinho/internal/domain/goal"
	appErrors "Cofrinho/internal/errors"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type MemoryRepository struct {
	mu            sync.Mutex
	goals         []*goal.Goal
	contributions []*goal.Contribution

	// StatusWrites conta as chamadas a UpdateStatus que alteraram uma meta.
	StatusWrites int
	// FailUpdateStatus, quando definido, e devolvido por UpdateStatus.
	FailUpdateStatus error
}

var _ goal.Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Seed grava uma meta diretamente, sem passar pelo Service.
func (r *MemoryRepository) Seed(g *goal.Goal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.goals = append(r.goals, cloneGoal(g))
}

func (r *MemoryRepository) Stored(id ulid.ULID) *goal.Goal {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.goals {
		if g.Id == id {
			return cloneGoal(g)
		}
	}
	return nil
}

func (r *MemoryRepository) Create(_ context.Context, g *goal.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.goals = append(r.goals, cloneGoal(g))
	return nil
}

func (r *MemoryRepository) GetByUserID(_ context.Context, userID ulid.ULID) ([]*goal.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*goal.Goal, 0)
	for _, g := range r.goals {
		if g.UserId == userID {
			out = append(out, cloneGoal(g))
		}
	}
	return out, nil
}

func (r *MemoryRepository) GetByIDAndUser(_ context.Context, id, userID ulid.ULID) (*goal.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g := r.find(id, userID)
	if g == nil {
		return nil, appErrors.ErrGoalNotFound
	}
	return cloneGoal(g), nil
}

func (r *MemoryRepository) UpdateFields(_ context.Context, id, userID ulid.ULID, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g := r.find(id, userID)
	if g == nil {
		return appErrors.ErrGoalNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			g.Name = value.(string)
		case "description":
			g.Description = value.(string)
		case "target_amount":
			g.TargetAmount = value.(decimal.Decimal)
		case "end_date":
			g.EndDate = value.(*time.Time)
		case "status":
			g.Status = value.(goal.GoalStatus)
		case "updated_at":
			g.UpdatedAt = value.(time.Time)
		}
	}
	return nil
}

func (r *MemoryRepository) UpdateStatus(_ context.Context, id, userID ulid.ULID, status goal.GoalStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailUpdateStatus != nil {
		return r.FailUpdateStatus
	}
	g := r.find(id, userID)
	if g == nil {
		return appErrors.ErrGoalNotFound
	}
	g.Status = status
	r.StatusWrites++
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id, userID ulid.ULID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, g := range r.goals {
		if g.Id == id && g.UserId == userID {
			r.goals = append(r.goals[:i], r.goals[i+1:]...)
			kept := r.contributions[:0]
			for _, c := range r.contributions {
				if c.GoalId != id {
					kept = append(kept, c)
				}
			}
			r.contributions = kept
			return nil
		}
	}
	return appErrors.ErrGoalNotFound
}

func (r *MemoryRepository) CreateContribution(_ context.Context, c *goal.Contribution) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g := r.find(c.GoalId, c.UserId)
	if g == nil {
		return appErrors.ErrGoalNotFound
	}
	clone := *c
	r.contributions = append(r.contributions, &clone)
	g.SavedAmount = g.SavedAmount.Add(c.Amount)
	return nil
}

func (r *MemoryRepository) GetContributionsByGoalID(_ context.Context, goalID, userID ulid.ULID) ([]*goal.Contribution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*goal.Contribution, 0)
	for _, c := range r.contributions {
		if c.GoalId == goalID && c.UserId == userID {
			clone := *c
			out = append(out, &clone)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ContributionDate.Before(out[j].ContributionDate)
	})
	return out, nil
}

func (r *MemoryRepository) find(id, userID ulid.ULID) *goal.Goal {
	for _, g := range r.goals {
		if g.Id == id && g.UserId == userID {
			return g
		}
	}
	return nil
}

func cloneGoal(g *goal.Goal) *goal.Goal {
	return g.WithStatus(g.Status)
}
