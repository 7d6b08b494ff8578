package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/swaggo/swag"

	"github.com/jhoicas/Restaurante-api/docs"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Restaurante-api/pkg/config"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "restoctl",
		Short:         "Herramientas operativas de Restaurante API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd(), newGrantRoleCmd(), newOpenAPICmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones SQL pendientes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				log.Info().Msg("esquema al día, sin migraciones pendientes")
				return nil
			}
			log.Info().Strs("versions", applied).Msg("migraciones aplicadas")
			return nil
		},
	}
}

func newGrantRoleCmd() *cobra.Command {
	var email, role string
	cmd := &cobra.Command{
		Use:   "grant-role",
		Short: "Asigna un rol (GERENTE, GARCOM, COZINHA, BAR) a un usuario existente",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, ok := entity.ParseRole(role)
			if !ok {
				return fmt.Errorf("rol desconocido %q", role)
			}
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			user, err := grantRole(ctx, postgres.NewUserRepository(pool), email, r)
			if err != nil {
				return err
			}
			log.Info().Int64("user_id", user.ID).Str("email", user.Email).Str("role", string(r)).Msg("rol asignado")
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email del usuario")
	cmd.Flags().StringVar(&role, "role", "", "Rol a asignar")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

// grantRole busca el usuario por email exacto y le agrega el rol.
func grantRole(ctx context.Context, users repository.UserRepository, email string, role entity.Role) (*entity.User, error) {
	email = strings.TrimSpace(email)
	user, err := users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%s: %w", email, domain.ErrUserNotFound)
	}
	if err := users.AssignRole(ctx, user.ID, role); err != nil {
		return nil, err
	}
	return user, nil
}

func newOpenAPICmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Imprime la documentación OpenAPI (swagger 2.0)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
			if err != nil {
				return fmt.Errorf("leer documentación: %w", err)
			}
			if output == "" {
				_, err = io.WriteString(cmd.OutOrStdout(), doc)
				return err
			}
			return os.WriteFile(output, []byte(doc), 0o644)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Archivo de salida (default: stdout)")
	return cmd
}

func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, File: cfg.Log.File, Service: "restoctl", Version: cfg.App.Version})
	return cfg, log, nil
}
