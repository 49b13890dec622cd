package contracts

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type GoalCreateRequest struct {
	UserId       ulid.ULID
	Name         string
	TargetAmount decimal.Decimal
	Description  string
	EndDate      *time.Time
}

// GoalUpdateRequest carrega apenas os campos enviados; nil significa "manter".
// ClearEndDate remove o prazo e prevalece sobre EndDate.
type GoalUpdateRequest struct {
	Id           ulid.ULID
	UserId       ulid.ULID
	Name         *string
	TargetAmount *decimal.Decimal
	Description  *string
	EndDate      *time.Time
	ClearEndDate bool
	Status       *string
}

type GoalContributionRequest struct {
	GoalId           ulid.ULID
	UserId           ulid.ULID
	Amount           decimal.Decimal
	ContributionDate *time.Time
}
