package contracts

import (
	"time"

	domainGoal "Cofrinho/internal/domain/goal"

	"github.com/shopspring/decimal"
)

// DateLayout e o formato de data aceito e devolvido pela API.
const DateLayout = "2006-01-02"

// Valores monetarios aceitam numero ou string numerica ("150.00") e cabem em
// decimal(15,2).
type GoalCreateRequest struct {
	Name         string           `json:"name" binding:"required,max=100"`
	TargetAmount *decimal.Decimal `json:"targetAmount" binding:"required,gte=0,lt=10000000000000" swaggertype:"number"`
	Description  string           `json:"description" binding:"omitempty,max=500"`
	EndDate      *string          `json:"endDate" binding:"omitempty,datetime=2006-01-02" example:"2025-12-31"`
}

// Em GoalUpdateRequest, endDate "" remove o prazo; ausente ou null mantem o atual.
type GoalUpdateRequest struct {
	Name         *string          `json:"name" binding:"omitempty,max=100"`
	TargetAmount *decimal.Decimal `json:"targetAmount" binding:"omitempty,gte=0,lt=10000000000000" swaggertype:"number"`
	Description  *string          `json:"description" binding:"omitempty,max=500"`
	EndDate      *string          `json:"endDate" example:"2025-12-31"`
	Status       *string          `json:"status" binding:"omitempty,oneof=active achieved expired" enums:"active,achieved,expired"`
}

type GoalContributionRequest struct {
	Amount           *decimal.Decimal `json:"amount" binding:"required,gt=0,lt=10000000000000" swaggertype:"number"`
	ContributionDate *string          `json:"contributionDate" binding:"omitempty,datetime=2006-01-02" example:"2025-01-15"`
}

type GoalPayload struct {
	Id           string    `json:"id"`
	UserId       string    `json:"userId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	TargetAmount float64   `json:"targetAmount"`
	SavedAmount  float64   `json:"savedAmount"`
	EndDate      *string   `json:"endDate"`
	Status       string    `json:"status" enums:"active,achieved,expired"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ContributionPayload struct {
	Id               string    `json:"id"`
	GoalId           string    `json:"goalId"`
	Amount           float64   `json:"amount"`
	ContributionDate time.Time `json:"contributionDate"`
	CreatedAt        time.Time `json:"createdAt"`
}

type GoalResponse struct {
	Goal GoalPayload `json:"goal"`
}

type GoalListResponse struct {
	Goals []GoalPayload `json:"goals"`
}

type GoalContributionListResponse struct {
	Contributions []ContributionPayload `json:"contributions"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string                 `json:"error"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func NewGoalPayload(g *domainGoal.Goal) GoalPayload {
	var endDate *string
	if g.EndDate != nil {
		d := g.EndDate.UTC().Format(DateLayout)
		endDate = &d
	}
	return GoalPayload{
		Id:           g.Id.String(),
		UserId:       g.UserId.String(),
		Name:         g.Name,
		Description:  g.Description,
		TargetAmount: toCents(g.TargetAmount),
		SavedAmount:  toCents(g.SavedAmount),
		EndDate:      endDate,
		Status:       string(g.Status),
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

func NewGoalPayloads(goals []*domainGoal.Goal) []GoalPayload {
	out := make([]GoalPayload, 0, len(goals))
	for _, g := range goals {
		out = append(out, NewGoalPayload(g))
	}
	return out
}

func NewContributionPayloads(contributions []*domainGoal.Contribution) []ContributionPayload {
	out := make([]ContributionPayload, 0, len(contributions))
	for _, c := range contributions {
		out = append(out, ContributionPayload{
			Id:               c.Id.String(),
			GoalId:           c.GoalId.String(),
			Amount:           toCents(c.Amount),
			ContributionDate: c.ContributionDate,
			CreatedAt:        c.CreatedAt,
		})
	}
	return out
}

func toCents(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
