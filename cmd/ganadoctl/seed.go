package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ganadoboy/ganadoboy-api/internal/infrastructure/dane"
	"github.com/ganadoboy/ganadoboy-api/internal/infrastructure/postgres"
	"github.com/ganadoboy/ganadoboy-api/pkg/config"
)

func newSeedCmd() *cobra.Command {
	var (
		departamento string
		out          string
	)
	cmd := &cobra.Command{
		Use:   "seed-ubicaciones <Municipios.xml>",
		Short: "Carga departamentos y municipios DANE desde el XML oficial",
		Long: `Lee Municipios.xml (ISO-8859-1) y hace upsert en las tablas departamentos y municipios.
Con --out escribe el script SQL en lugar de conectarse a la base de datos.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("abrir XML: %w", err)
			}
			defer f.Close()

			cat, err := dane.Parse(f, departamento)
			if err != nil {
				return err
			}

			if out != "" {
				return writeSQL(cat, out)
			}
			if err := upsert(cmd.Context(), cat); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d departamentos y %d municipios cargados\n", len(cat.Departamentos), len(cat.Municipios))
			return nil
		},
	}
	cmd.Flags().StringVar(&departamento, "departamento", "", "código DANE del departamento a cargar (vacío = todos)")
	cmd.Flags().StringVar(&out, "out", "", "ruta del script SQL a generar")
	return cmd
}

func writeSQL(cat *dane.Catalogo, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crear %s: %w", path, err)
	}
	if err := cat.WriteSQL(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func upsert(ctx context.Context, cat *dane.Catalogo) error {
	db, err := config.LoadDB()
	if err != nil {
		return err
	}
	pool, err := postgres.NewPool(ctx, db)
	if err != nil {
		return err
	}
	defer pool.Close()
	return postgres.NewUbicacionRepository(pool).Upsert(ctx, cat.Departamentos, cat.Municipios)
}
