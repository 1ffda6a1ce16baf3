package memory

import (
	"context"
	"sort"

	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
)

type ubicacionRepo Store

func (r *ubicacionRepo) ListDepartamentos(ctx context.Context) ([]entity.Departamento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]entity.Departamento(nil), r.departamentos...)
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *ubicacionRepo) ListMunicipios(ctx context.Context, codigoDepartamento string) ([]entity.Municipio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Municipio, 0)
	for _, m := range r.municipios {
		if m.CodigoDepartamento == codigoDepartamento {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}
