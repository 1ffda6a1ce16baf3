package ubicacion

import (
	"context"
	"strings"

	"github.com/ganadoboy/ganadoboy-api/internal/application/dto"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/repository"
)

// UbicacionUseCase consulta del catálogo DANE para los formularios de registro.
type UbicacionUseCase struct {
	repo repository.UbicacionRepository
}

// NewUbicacionUseCase construye el caso de uso.
func NewUbicacionUseCase(repo repository.UbicacionRepository) *UbicacionUseCase {
	return &UbicacionUseCase{repo: repo}
}

// ListDepartamentos departamentos ordenados por nombre.
func (uc *UbicacionUseCase) ListDepartamentos(ctx context.Context) ([]dto.DepartamentoResponse, error) {
	deps, err := uc.repo.ListDepartamentos(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepartamentoResponse, 0, len(deps))
	for _, d := range deps {
		out = append(out, dto.DepartamentoResponse{Codigo: d.Codigo, Nombre: d.Nombre})
	}
	return out, nil
}

// ListMunicipios municipios de un departamento; lista vacía si el código no existe.
func (uc *UbicacionUseCase) ListMunicipios(ctx context.Context, codigoDepartamento string) ([]dto.MunicipioResponse, error) {
	muns, err := uc.repo.ListMunicipios(ctx, strings.TrimSpace(codigoDepartamento))
	if err != nil {
		return nil, err
	}
	return toMunicipios(muns), nil
}

func toMunicipios(muns []entity.Municipio) []dto.MunicipioResponse {
	out := make([]dto.MunicipioResponse, 0, len(muns))
	for _, m := range muns {
		out = append(out, dto.MunicipioResponse{Codigo: m.Codigo, Nombre: m.Nombre, CodigoDepartamento: m.CodigoDepartamento})
	}
	return out
}
