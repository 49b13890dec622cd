package infrastructure

import (
	"context"
	"errors"
	"time"

	"Cofrinho/internal/domain/goal"
	appErrors "Cofrinho/internal/errors"
	"Cofrinho/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	goalsTable         = "goals"
	contributionsTable = "goal_contributions"
)

type GoalRepository struct {
	DB *gorm.DB
}

var _ goal.Repository = (*GoalRepository)(nil)

type goalDB struct {
	Id           string          `gorm:"type:varchar(26);primaryKey"`
	UserId       string          `gorm:"type:varchar(26);index:idx_goals_user_id;not null"`
	Name         string          `gorm:"type:varchar(100);not null"`
	Description  string          `gorm:"type:varchar(500)"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SavedAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	EndDate      *time.Time      `gorm:"type:date"`
	Status       string          `gorm:"type:varchar(20);not null;default:'active';index:idx_goals_status"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

func (goalDB) TableName() string {
	return goalsTable
}

type contributionDB struct {
	Id               string          `gorm:"type:varchar(26);primaryKey"`
	GoalId           string          `gorm:"type:varchar(26);index:idx_contributions_goal_id;not null"`
	UserId           string          `gorm:"type:varchar(26);index:idx_contributions_user_id;not null"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ContributionDate time.Time       `gorm:"type:timestamp;not null"`
	CreatedAt        time.Time       `gorm:"not null"`
}

func (contributionDB) TableName() string {
	return contributionsTable
}

// SQLite guarda decimal(15,2) com afinidade NUMERIC, ou seja como REAL, e a soma de
// saved_amount acontece em ponto flutuante. Os valores lidos sao arredondados para
// centavos antes de chegar ao dominio.
func toDomainGoal(gdb *goalDB) (*goal.Goal, error) {
	id, err := pkg.ParseULID(gdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(gdb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	var endDate *time.Time
	if gdb.EndDate != nil {
		d := gdb.EndDate.UTC()
		endDate = &d
	}
	return &goal.Goal{
		Id:           id,
		UserId:       uid,
		Name:         gdb.Name,
		Description:  gdb.Description,
		TargetAmount: gdb.TargetAmount.Round(2),
		SavedAmount:  gdb.SavedAmount.Round(2),
		EndDate:      endDate,
		Status:       goal.GoalStatus(gdb.Status),
		CreatedAt:    gdb.CreatedAt,
		UpdatedAt:    gdb.UpdatedAt,
	}, nil
}

func toDBGoal(g *goal.Goal) *goalDB {
	return &goalDB{
		Id:           g.Id.String(),
		UserId:       g.UserId.String(),
		Name:         g.Name,
		Description:  g.Description,
		TargetAmount: g.TargetAmount,
		SavedAmount:  g.SavedAmount,
		EndDate:      g.EndDate,
		Status:       string(g.Status),
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

func (r *GoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	gdb := toDBGoal(g)
	if err := r.DB.WithContext(ctx).Create(gdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *GoalRepository) GetByIDAndUser(ctx context.Context, id, userID ulid.ULID) (*goal.Goal, error) {
	var gdb goalDB
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id.String(), userID.String()).
		First(&gdb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrGoalNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainGoal(&gdb)
}

func (r *GoalRepository) GetByUserID(ctx context.Context, userID ulid.ULID) ([]*goal.Goal, error) {
	var rows []goalDB
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	out := make([]*goal.Goal, 0, len(rows))
	for i := range rows {
		g, err := toDomainGoal(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

func (r *GoalRepository) UpdateFields(ctx context.Context, id, userID ulid.ULID, fields map[string]interface{}) error {
	columns := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if status, ok := v.(goal.GoalStatus); ok {
			v = string(status)
		}
		columns[k] = v
	}

	result := r.DB.WithContext(ctx).
		Model(&goalDB{}).
		Where("id = ? AND user_id = ?", id.String(), userID.String()).
		Updates(columns)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrGoalNotFound
	}
	return nil
}

func (r *GoalRepository) UpdateStatus(ctx context.Context, id, userID ulid.ULID, status goal.GoalStatus) error {
	return r.UpdateFields(ctx, id, userID, map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
}

// Delete remove a meta e suas contribuicoes na mesma transacao.
func (r *GoalRepository) Delete(ctx context.Context, id, userID ulid.ULID) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goal_id = ? AND user_id = ?", id.String(), userID.String()).
			Delete(&contributionDB{}).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}

		result := tx.Where("id = ? AND user_id = ?", id.String(), userID.String()).Delete(&goalDB{})
		if result.Error != nil {
			return appErrors.NewDatabaseError(result.Error)
		}
		if result.RowsAffected == 0 {
			return appErrors.ErrGoalNotFound
		}
		return nil
	})
	return err
}

func toDomainContribution(cdb *contributionDB) (*goal.Contribution, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	gid, err := pkg.ParseULID(cdb.GoalId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(cdb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &goal.Contribution{
		Id:               id,
		GoalId:           gid,
		UserId:           uid,
		Amount:           cdb.Amount.Round(2),
		ContributionDate: cdb.ContributionDate,
		CreatedAt:        cdb.CreatedAt,
	}, nil
}

func toDBContribution(c *goal.Contribution) *contributionDB {
	return &contributionDB{
		Id:               c.Id.String(),
		GoalId:           c.GoalId.String(),
		UserId:           c.UserId.String(),
		Amount:           c.Amount,
		ContributionDate: c.ContributionDate,
		CreatedAt:        c.CreatedAt,
	}
}

// CreateContribution grava a contribuicao e incrementa saved_amount da meta na mesma
// transacao. O status nao e tocado aqui; quem chama ressincroniza.
func (r *GoalRepository) CreateContribution(ctx context.Context, c *goal.Contribution) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&goalDB{}).
			Where("id = ? AND user_id = ?", c.GoalId.String(), c.UserId.String()).
			Updates(map[string]interface{}{
				"saved_amount": gorm.Expr("saved_amount + ?", c.Amount),
				"updated_at":   time.Now(),
			})
		if result.Error != nil {
			return appErrors.NewDatabaseError(result.Error)
		}
		if result.RowsAffected == 0 {
			return appErrors.ErrGoalNotFound
		}

		if err := tx.Create(toDBContribution(c)).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}
		return nil
	})
}

func (r *GoalRepository) GetContributionsByGoalID(ctx context.Context, goalID, userID ulid.ULID) ([]*goal.Contribution, error) {
	var rows []contributionDB
	if err := r.DB.WithContext(ctx).
		Where("goal_id = ? AND user_id = ?", goalID.String(), userID.String()).
		Order("contribution_date ASC, created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	out := make([]*goal.Contribution, 0, len(rows))
	for i := range rows {
		c, err := toDomainContribution(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
