package repository

import (
	"context"

	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
)

// UbicacionRepository catálogo DANE de departamentos y municipios (solo lectura).
type UbicacionRepository interface {
	ListDepartamentos(ctx context.Context) ([]entity.Departamento, error)
	ListMunicipios(ctx context.Context, codigoDepartamento string) ([]entity.Municipio, error)
}
