package postgres

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/ganadoboy/ganadoboy-api/internal/domain"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// column par columna/valor de un UPDATE parcial, en el orden en que se escribe.
type column struct {
	name  string
	value any
}

type setList []column

func (s setList) add(name string, value any) setList {
	return append(s, column{name: name, value: value})
}

// buildUpdate genera UPDATE table SET ... WHERE where con solo las columnas de sets.
// Sin columnas retorna domain.ErrNoFieldsToUpdate.
func buildUpdate(table string, sets setList, where sq.Sqlizer) (string, []any, error) {
	if len(sets) == 0 {
		return "", nil, domain.ErrNoFieldsToUpdate
	}
	ub := psql.Update(table)
	for _, c := range sets {
		ub = ub.Set(c.name, c.value)
	}
	sql, args, err := ub.Where(where).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build update %s: %w", table, err)
	}
	return sql, args, nil
}

func bovinoSets(p entity.BovinoPatch) setList {
	var s setList
	if p.Nombre != nil {
		s = s.add("nombre", *p.Nombre)
	}
	if p.CodigoInterno != nil {
		s = s.add("codigo_interno", *p.CodigoInterno)
	}
	if p.Raza != nil {
		s = s.add("raza", *p.Raza)
	}
	if p.Sexo != nil {
		s = s.add("sexo", *p.Sexo)
	}
	if p.Edad != nil {
		s = s.add("edad", *p.Edad)
	}
	if p.Peso != nil {
		s = s.add("peso", *p.Peso)
	}
	if p.UbicacionMunicipio != nil {
		s = s.add("ubicacion_municipio", *p.UbicacionMunicipio)
	}
	if p.UbicacionDepartamento != nil {
		s = s.add("ubicacion_departamento", *p.UbicacionDepartamento)
	}
	if p.EstadoSanitario != nil {
		s = s.add("estado_sanitario", *p.EstadoSanitario)
	}
	if p.ValorEstimado != nil {
		s = s.add("valor_estimado", *p.ValorEstimado)
	}
	if p.Descripcion != nil {
		s = s.add("descripcion", *p.Descripcion)
	}
	return s
}

func publicacionSets(p entity.PublicacionPatch) setList {
	var s setList
	if p.Titulo != nil {
		s = s.add("titulo", *p.Titulo)
	}
	if p.Descripcion != nil {
		s = s.add("descripcion", *p.Descripcion)
	}
	if p.Precio != nil {
		s = s.add("precio", *p.Precio)
	}
	if p.Activo != nil {
		s = s.add("activo", *p.Activo)
	}
	return s
}
