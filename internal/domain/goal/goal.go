package goal

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type GoalStatus string

const (
	Active   GoalStatus = "active"
	Achieved GoalStatus = "achieved"
	Expired  GoalStatus = "expired"
)

func (s GoalStatus) IsValid() bool {
	switch s {
	case Active, Achieved, Expired:
		return true
	}
	return false
}

type Goal struct {
	Id           ulid.ULID       `json:"id"`
	UserId       ulid.ULID       `json:"userId"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	SavedAmount  decimal.Decimal `json:"savedAmount"`
	EndDate      *time.Time      `json:"endDate,omitempty"`
	Status       GoalStatus      `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// WithStatus devolve uma copia da meta com o status informado.
func (g *Goal) WithStatus(status GoalStatus) *Goal {
	clone := *g
	if g.EndDate != nil {
		endDate := *g.EndDate
		clone.EndDate = &endDate
	}
	clone.Status = status
	return &clone
}
