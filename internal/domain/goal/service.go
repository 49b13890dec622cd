package goal

import (
	"context"
	"strings"
	"time"

	domaincontracts "Cofrinho/internal/domain/contracts"
	appErrors "Cofrinho/internal/errors"
	"Cofrinho/internal/pkg"

	"github.com/oklog/ulid/v2"
	"k8s.io/utils/clock"
)

type Service struct {
	Repository   Repository
	Synchronizer *Synchronizer
	Clock        clock.PassiveClock
}

func NewService(repo Repository, clk clock.PassiveClock, recorder TransitionRecorder) *Service {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Service{
		Repository:   repo,
		Synchronizer: NewSynchronizer(repo, NewStatusResolver(clk), recorder),
		Clock:        clk,
	}
}

func (s *Service) ListGoals(ctx context.Context, userID ulid.ULID) ([]*Goal, error) {
	goals, err := s.Repository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Synchronizer.SyncAll(ctx, goals)
}

func (s *Service) GetGoal(ctx context.Context, goalID, userID ulid.ULID) (*Goal, error) {
	goal, err := s.Repository.GetByIDAndUser(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}
	return s.Synchronizer.Sync(ctx, goal)
}

func (s *Service) CreateGoal(ctx context.Context, request *domaincontracts.GoalCreateRequest) (*Goal, error) {
	if err := Validate(*request); err != nil {
		return nil, err
	}

	now := s.Clock.Now()
	entity := &Goal{
		Id:           pkg.GenerateULIDObject(),
		UserId:       request.UserId,
		Name:         strings.TrimSpace(request.Name),
		Description:  strings.TrimSpace(request.Description),
		TargetAmount: request.TargetAmount.Round(2),
		EndDate:      normalizeDate(request.EndDate),
		Status:       Active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}

	return s.Synchronizer.Sync(ctx, entity)
}

// UpdateGoal aplica somente os campos enviados e ressincroniza. Um status explicito
// que contradiz o status derivado e sobrescrito logo em seguida.
func (s *Service) UpdateGoal(ctx context.Context, request *domaincontracts.GoalUpdateRequest) (*Goal, error) {
	if err := ValidateUpdateGoal(*request); err != nil {
		return nil, err
	}

	if _, err := s.Repository.GetByIDAndUser(ctx, request.Id, request.UserId); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if request.Name != nil {
		fields["name"] = strings.TrimSpace(*request.Name)
	}
	if request.TargetAmount != nil {
		fields["target_amount"] = request.TargetAmount.Round(2)
	}
	if request.Description != nil {
		fields["description"] = strings.TrimSpace(*request.Description)
	}
	switch {
	case request.ClearEndDate:
		fields["end_date"] = (*time.Time)(nil)
	case request.EndDate != nil:
		fields["end_date"] = normalizeDate(request.EndDate)
	}
	if request.Status != nil {
		fields["status"] = GoalStatus(*request.Status)
	}

	if len(fields) > 0 {
		fields["updated_at"] = s.Clock.Now()
		if err := s.Repository.UpdateFields(ctx, request.Id, request.UserId, fields); err != nil {
			return nil, err
		}
	}

	return s.GetGoal(ctx, request.Id, request.UserId)
}

// DeleteGoal remove a meta e, em cascata, suas contribuicoes.
func (s *Service) DeleteGoal(ctx context.Context, goalID, userID ulid.ULID) error {
	if _, err := s.Repository.GetByIDAndUser(ctx, goalID, userID); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, goalID, userID)
}

func (s *Service) AddContribution(ctx context.Context, request *domaincontracts.GoalContributionRequest) (*Goal, error) {
	amount := request.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, appErrors.NewValidationError("amount", "deve ser maior que zero")
	}

	goal, err := s.Repository.GetByIDAndUser(ctx, request.GoalId, request.UserId)
	if err != nil {
		return nil, err
	}

	now := s.Clock.Now()
	contributionDate := now
	if request.ContributionDate != nil {
		contributionDate = *request.ContributionDate
	}

	contribution := &Contribution{
		Id:               pkg.GenerateULIDObject(),
		GoalId:           goal.Id,
		UserId:           goal.UserId,
		Amount:           amount,
		ContributionDate: contributionDate,
		CreatedAt:        now,
	}

	if err := s.Repository.CreateContribution(ctx, contribution); err != nil {
		return nil, err
	}

	return s.GetGoal(ctx, goal.Id, goal.UserId)
}

func (s *Service) ListContributions(ctx context.Context, goalID, userID ulid.ULID) ([]*Contribution, error) {
	if _, err := s.Repository.GetByIDAndUser(ctx, goalID, userID); err != nil {
		return nil, err
	}
	return s.Repository.GetContributionsByGoalID(ctx, goalID, userID)
}

func normalizeDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := civilDate(*t)
	return &d
}

func Validate(request domaincontracts.GoalCreateRequest) error {
	if strings.TrimSpace(request.Name) == "" {
		return appErrors.NewValidationError("name", "é obrigatório")
	}
	if request.TargetAmount.IsNegative() {
		return appErrors.NewValidationError("targetAmount", "não pode ser negativo")
	}
	return nil
}

func ValidateUpdateGoal(request domaincontracts.GoalUpdateRequest) error {
	if request.Name != nil && strings.TrimSpace(*request.Name) == "" {
		return appErrors.NewValidationError("name", "não pode ser vazio")
	}
	if request.TargetAmount != nil && request.TargetAmount.IsNegative() {
		return appErrors.NewValidationError("targetAmount", "não pode ser negativo")
	}
	if request.Status != nil && !GoalStatus(*request.Status).IsValid() {
		return appErrors.NewValidationError("status", "deve ser active, achieved ou expired")
	}
	return nil
}
