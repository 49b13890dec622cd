package fx

import (
	"context"

	"Cofrinho/config"
	"Cofrinho/internal/infrastructure"
	"Cofrinho/internal/logger"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newGoalRepository,
	),
)

func newDatabase(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := infrastructure.NewDb(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Fechando conexão com banco de dados")
			return infrastructure.CloseDb(db)
		},
	})
	return db, nil
}

func newGoalRepository(db *gorm.DB) *infrastructure.GoalRepository {
	return &infrastructure.GoalRepository{DB: db}
}
