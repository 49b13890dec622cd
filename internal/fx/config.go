package fx

import (
	"log"

	"Cofrinho/config"
	"Cofrinho/internal/logger"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		loadConfig,
	),
	fx.Invoke(
		initLogger,
	),
)

// loadConfig le o .env antes de config.Load para que as variaveis do arquivo
// participem do parse. Variaveis ja exportadas no ambiente tem precedencia.
func loadConfig() (*config.Config, error) {
	loadEnvFiles()
	return config.Load()
}

func loadEnvFiles() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: não foi possível carregar .env do diretório atual: %v", err)
	}
	if err := godotenv.Load("../../.env"); err != nil {
		log.Printf("Aviso: não foi possível carregar ../../.env: %v", err)
	}
}

func initLogger(cfg *config.Config) {
	logger.Init(cfg)
}
