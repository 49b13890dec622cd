package goal

import (
	"context"

	"github.com/oklog/ulid/v2"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=repository.go Repository

// Repository e a camada de persistencia das metas. Toda operacao e limitada ao dono;
// metas de outro usuario se comportam como inexistentes (ErrGoalNotFound).
type Repository interface {
	Create(ctx context.Context, goal *Goal) error
	GetByUserID(ctx context.Context, userID ulid.ULID) ([]*Goal, error)
	GetByIDAndUser(ctx context.Context, id, userID ulid.ULID) (*Goal, error)
	UpdateFields(ctx context.Context, id, userID ulid.ULID, fields map[string]interface{}) error
	UpdateStatus(ctx context.Context, id, userID ulid.ULID, status GoalStatus) error
	Delete(ctx context.Context, id, userID ulid.ULID) error
	CreateContribution(ctx context.Context, contribution *Contribution) error
	GetContributionsByGoalID(ctx context.Context, goalID, userID ulid.ULID) ([]*Contribution, error)
}
