package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/neryad/piki-backend/internal/infrastructure/migrations"
	"github.com/neryad/piki-backend/pkg/config"
	"github.com/neryad/piki-backend/pkg/logger"
)

const dbURLFlag = "db-url"

var flags = map[string]cobraflags.Flag{
	dbURLFlag: &cobraflags.StringFlag{
		Name:  dbURLFlag,
		Value: "",
		Usage: "Connection string de PostgreSQL. Si está vacío se usa DATABASE_URL o DB_*",
	},
}

func main() {
	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Aplica o revierte el esquema de piki-backend",
		SilenceUsage: true,
	}
	cobraflags.RegisterMap(root, flags)

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Aplica todas las migraciones pendientes",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withRunner(cmd.Context(), func(ctx context.Context, r *migrations.Runner) error {
					return r.Up(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Revierte la última migración aplicada",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withRunner(cmd.Context(), func(ctx context.Context, r *migrations.Runner) error {
					return r.Down(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Muestra la versión actual y las migraciones pendientes",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withRunner(cmd.Context(), func(ctx context.Context, r *migrations.Runner) error {
					st, err := r.Status(ctx)
					if err != nil {
						return err
					}
					fmt.Printf("Versión actual: %d\n", st.CurrentVersion)
					fmt.Printf("Total: %d\n", st.TotalMigrations)
					fmt.Printf("Pendientes: %v\n", st.PendingMigrations)
					return nil
				})
			},
		},
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func withRunner(ctx context.Context, fn func(context.Context, *migrations.Runner) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	dbURL := flags[dbURLFlag].GetString()
	if dbURL == "" {
		if err := cfg.DB.Validate(); err != nil {
			return err
		}
		dbURL = cfg.DB.ConnectionString()
	}

	r, err := migrations.Open(dbURL)
	if err != nil {
		log.Error().Err(err).Msg("abrir migrador")
		return err
	}
	defer r.Close()

	if err := fn(ctx, r); err != nil {
		log.Error().Err(err).Msg("migración fallida")
		return err
	}
	log.Info().Msg("migración completada")
	return nil
}
