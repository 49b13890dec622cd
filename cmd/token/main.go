// Command token emite um JWT de desenvolvimento aceito pela API.
package main

import (
	"fmt"
	"os"
	"time"

	"Cofrinho/config"
	"Cofrinho/internal/middleware"
	"Cofrinho/internal/pkg"

	"github.com/joho/godotenv"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
)

var (
	userID string
	ttl    time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "token",
		Short: "Emite um token JWT de desenvolvimento",
		Long: `Assina um token HS256 com JWT_SECRET e JWT_ISSUER do ambiente (ou do .env).
Sem --user, um ULID novo é gerado e impresso em stderr.`,
		SilenceUsage: true,
		RunE:         runToken,
	}

	rootCmd.Flags().StringVar(&userID, "user", "", "ID do usuário (ULID)")
	rootCmd.Flags().DurationVar(&ttl, "ttl", 0, "Validade do token (padrão: JWT_TTL)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runToken(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	cfg, err := config.LoadJWT()
	if err != nil {
		return err
	}
	if ttl > 0 {
		cfg.TTL = ttl
	}

	id, err := resolveUserID(userID)
	if err != nil {
		return err
	}
	if userID == "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "user_id: %s\n", id)
	}

	jwtSvc, err := middleware.NewJwtService(cfg)
	if err != nil {
		return err
	}

	token, err := jwtSvc.GenerateToken(id)
	if err != nil {
		return fmt.Errorf("assinar token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

func resolveUserID(raw string) (ulid.ULID, error) {
	if raw == "" {
		return pkg.GenerateULIDObject(), nil
	}
	id, err := pkg.ParseULID(raw)
	if err != nil {
		return ulid.ULID{}, fmt.Errorf("--user inválido: %w", err)
	}
	return id, nil
}
