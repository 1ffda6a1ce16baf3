package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/repository"
)

var _ repository.UbicacionRepository = (*UbicacionRepo)(nil)

// UbicacionRepo catálogo DANE sobre PostgreSQL.
type UbicacionRepo struct {
	q Querier
}

// NewUbicacionRepository construye el adaptador.
func NewUbicacionRepository(q Querier) *UbicacionRepo {
	return &UbicacionRepo{q: q}
}

// ListDepartamentos ordenados por nombre.
func (r *UbicacionRepo) ListDepartamentos(ctx context.Context) ([]entity.Departamento, error) {
	rows, err := conn(ctx, r.q).Query(ctx, `SELECT codigo, nombre FROM departamentos ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list departamentos: %w", err)
	}
	defer rows.Close()
	list := make([]entity.Departamento, 0)
	for rows.Next() {
		var d entity.Departamento
		if err := rows.Scan(&d.Codigo, &d.Nombre); err != nil {
			return nil, fmt.Errorf("scan departamento: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// ListMunicipios municipios del departamento ordenados por nombre.
func (r *UbicacionRepo) ListMunicipios(ctx context.Context, codigoDepartamento string) ([]entity.Municipio, error) {
	rows, err := conn(ctx, r.q).Query(ctx, `
		SELECT codigo, nombre, codigo_departamento FROM municipios
		WHERE codigo_departamento = $1 ORDER BY nombre`, codigoDepartamento)
	if err != nil {
		return nil, fmt.Errorf("list municipios: %w", err)
	}
	defer rows.Close()
	list := make([]entity.Municipio, 0)
	for rows.Next() {
		var m entity.Municipio
		if err := rows.Scan(&m.Codigo, &m.Nombre, &m.CodigoDepartamento); err != nil {
			return nil, fmt.Errorf("scan municipio: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Upsert carga departamentos y municipios en un solo batch (usado por ganadoctl seed-ubicaciones).
func (r *UbicacionRepo) Upsert(ctx context.Context, deps []entity.Departamento, muns []entity.Municipio) error {
	batch := &pgx.Batch{}
	for _, d := range deps {
		batch.Queue(`INSERT INTO departamentos (codigo, nombre) VALUES ($1, $2)
			ON CONFLICT (codigo) DO UPDATE SET nombre = EXCLUDED.nombre`, d.Codigo, d.Nombre)
	}
	for _, m := range muns {
		batch.Queue(`INSERT INTO municipios (codigo, nombre, codigo_departamento) VALUES ($1, $2, $3)
			ON CONFLICT (codigo) DO UPDATE SET nombre = EXCLUDED.nombre, codigo_departamento = EXCLUDED.codigo_departamento`,
			m.Codigo, m.Nombre, m.CodigoDepartamento)
	}
	sender, ok := conn(ctx, r.q).(interface {
		SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	})
	if !ok {
		return fmt.Errorf("upsert ubicaciones: el querier no soporta batch")
	}
	br := sender.SendBatch(ctx, batch)
	defer br.Close()
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("upsert ubicaciones: %w", err)
		}
	}
	return nil
}
