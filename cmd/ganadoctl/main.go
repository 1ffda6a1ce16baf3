// ganadoctl herramientas de operación: migraciones y carga del catálogo de ubicaciones.
//
// Uso:
//
//	ganadoctl migrate up|down|version
//	ganadoctl seed-ubicaciones Municipios.xml [--departamento 15] [--out archivo.sql]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ganadoctl",
		Short:         "Herramientas de operación de GanadoBoy",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newSeedCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
