package infrastructure

import (
	"Cofrinho/config"
	"Cofrinho/internal/logger"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func NewDb(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(dialector(cfg.Database), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Error().
			Err(err).
			Str("driver", cfg.Database.Driver).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("Falha ao conectar ao banco de dados")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("Falha ao obter instância do banco de dados")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	if cfg.Database.Driver == config.DriverSQLite {
		// SQLite aceita um unico escritor; uma conexao evita SQLITE_BUSY entre transacoes.
		sqlDB.SetMaxOpenConns(1)
	}

	logger.Info().
		Str("driver", cfg.Database.Driver).
		Str("database", cfg.Database.DBName).
		Msg("Conexão com banco de dados estabelecida com sucesso")

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func dialector(cfg config.DatabaseConfig) gorm.Dialector {
	if cfg.Driver == config.DriverSQLite {
		return sqlite.Open(cfg.DSN)
	}
	return postgres.Open(cfg.DSN)
}

func runMigrations(db *gorm.DB) error {
	logger.Info().Msg("Executando migrations...")

	entities := []interface{}{
		&goalDB{},
		&contributionDB{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			logger.Error().
				Err(err).
				Str("entity", getEntityName(entity)).
				Msg("Erro ao migrar entidade")
			return err
		}
	}

	logger.Info().Msg("Migrations executadas com sucesso!")
	return nil
}

func getEntityName(entity interface{}) string {
	switch entity.(type) {
	case *goalDB:
		return "Goal"
	case *contributionDB:
		return "GoalContribution"
	default:
		return "Unknown"
	}
}

func CloseDb(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
