package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"Cofrinho/config"

	"github.com/rs/zerolog"
)

var log = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init configura o logger global: console legivel em desenvolvimento, JSON em producao.
func Init(cfg *config.Config) {
	var out io.Writer = os.Stdout
	if !cfg.IsProduction() {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.App.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	log = zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("app", cfg.App.Name).
		Str("environment", cfg.App.Environment).
		Logger()
}

// SetOutput troca o destino do logger global. Usado em testes.
func SetOutput(w io.Writer) {
	log = log.Output(w)
}

func Get() *zerolog.Logger {
	return &log
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
