package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ganadoboy/ganadoboy-api/internal/infrastructure/postgres"
	"github.com/ganadoboy/ganadoboy-api/pkg/config"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica o revierte las migraciones embebidas",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Aplica las migraciones pendientes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(m *postgres.Migrator) error {
				changed, err := m.Up()
				if err != nil {
					return err
				}
				if !changed {
					fmt.Fprintln(cmd.OutOrStdout(), "sin cambios")
					return nil
				}
				return printVersion(cmd, m)
			})
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Revierte migraciones (por defecto una)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(m *postgres.Migrator) error {
				if err := m.Down(steps); err != nil {
					return err
				}
				return printVersion(cmd, m)
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "número de migraciones a revertir")

	version := &cobra.Command{
		Use:   "version",
		Short: "Muestra la versión aplicada",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(m *postgres.Migrator) error {
				return printVersion(cmd, m)
			})
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Lista las migraciones embebidas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := postgres.MigrationFiles()
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}

	cmd.AddCommand(up, down, version, list)
	return cmd
}

func withMigrator(fn func(m *postgres.Migrator) error) error {
	db, err := config.LoadDB()
	if err != nil {
		return err
	}
	dbURL, err := postgres.MigrateURL(db)
	if err != nil {
		return err
	}
	m, err := postgres.NewMigrator(dbURL)
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(m)
}

func printVersion(cmd *cobra.Command, m *postgres.Migrator) error {
	v, dirty, err := m.Version()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "versión %d", v)
	if dirty {
		fmt.Fprint(cmd.OutOrStdout(), " (dirty)")
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
