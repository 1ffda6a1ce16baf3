package postgres

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
)

const vacunasAlDiaPattern = "%vacunas al día%"

// Columnas del detalle de publicación, en el orden que espera scanDetalle.
var detalleColumns = []string{
	"p.id", "p.bovino_id", "p.vendedor_id", "p.titulo", "p.descripcion", "p.precio", "p.activo", "p.fecha_creacion",
	"b.nombre", "b.raza", "b.sexo", "b.edad", "b.peso", "b.descripcion", "b.foto_principal",
	"b.ubicacion_municipio", "b.ubicacion_departamento", "b.estado_sanitario",
	"u.nombre", "u.apellidos", "u.email", "u.telefono", "u.municipio", "u.departamento", "u.foto_perfil",
}

var ordenColumnas = map[string]string{
	entity.OrdenPrecio:        "p.precio",
	entity.OrdenFechaCreacion: "p.fecha_creacion",
}

func detalleFrom(b sq.SelectBuilder) sq.SelectBuilder {
	return b.From("publicaciones p").
		Join("bovinos b ON b.id = p.bovino_id").
		Join("usuarios u ON u.id = p.vendedor_id")
}

// searchPredicates predicado compartido por la consulta de filas y la de conteo.
func searchPredicates(f entity.FiltrosMarketplace) sq.And {
	where := sq.And{sq.Eq{"p.activo": true}}
	if f.Raza != nil {
		where = append(where, sq.Eq{"b.raza": *f.Raza})
	}
	if f.Sexo != nil {
		where = append(where, sq.Eq{"b.sexo": *f.Sexo})
	}
	if f.EdadMin != nil {
		where = append(where, sq.GtOrEq{"b.edad": *f.EdadMin})
	}
	if f.EdadMax != nil {
		where = append(where, sq.LtOrEq{"b.edad": *f.EdadMax})
	}
	if f.PesoMin != nil {
		where = append(where, sq.GtOrEq{"b.peso": *f.PesoMin})
	}
	if f.PesoMax != nil {
		where = append(where, sq.LtOrEq{"b.peso": *f.PesoMax})
	}
	if f.PrecioMin != nil {
		where = append(where, sq.GtOrEq{"p.precio": *f.PrecioMin})
	}
	if f.PrecioMax != nil {
		where = append(where, sq.LtOrEq{"p.precio": *f.PrecioMax})
	}
	if f.Municipio != nil {
		where = append(where, sq.Eq{"b.ubicacion_municipio": *f.Municipio})
	}
	if f.Departamento != nil {
		where = append(where, sq.Eq{"b.ubicacion_departamento": *f.Departamento})
	}
	if f.VacunasAlDia {
		where = append(where, sq.ILike{"b.estado_sanitario": vacunasAlDiaPattern})
	}
	if f.Busqueda != nil && *f.Busqueda != "" {
		pattern := containsPattern(*f.Busqueda)
		where = append(where, sq.Or{
			sq.ILike{"p.titulo": pattern},
			sq.ILike{"p.descripcion": pattern},
			sq.ILike{"b.raza": pattern},
			sq.ILike{"b.nombre": pattern},
		})
	}
	return where
}

type searchQuery struct {
	rowsSQL   string
	rowsArgs  []any
	countSQL  string
	countArgs []any
}

// buildSearch arma la consulta paginada y su conteo a partir de filtros ya normalizados.
func buildSearch(f entity.FiltrosMarketplace) (searchQuery, error) {
	where := searchPredicates(f)

	col, ok := ordenColumnas[f.OrdenarPor]
	if !ok {
		col = ordenColumnas[entity.OrdenFechaCreacion]
	}
	dir := "DESC"
	if f.Ascendente {
		dir = "ASC"
	}

	rows := detalleFrom(psql.Select(detalleColumns...)).
		Where(where).
		OrderBy(col+" "+dir, "p.id DESC").
		Limit(uint64(f.PorPagina)).
		Offset(uint64(f.Offset()))

	var q searchQuery
	var err error
	if q.rowsSQL, q.rowsArgs, err = rows.ToSql(); err != nil {
		return q, fmt.Errorf("build search: %w", err)
	}
	count := detalleFrom(psql.Select("COUNT(*)")).Where(where)
	if q.countSQL, q.countArgs, err = count.ToSql(); err != nil {
		return q, fmt.Errorf("build search count: %w", err)
	}
	return q, nil
}
