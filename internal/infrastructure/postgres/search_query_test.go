package postgres

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
)

func normalized(f entity.FiltrosMarketplace) entity.FiltrosMarketplace {
	f.Normalize()
	return f
}

func TestBuildSearch_SinFiltros(t *testing.T) {
	q, err := buildSearch(normalized(entity.FiltrosMarketplace{}))
	require.NoError(t, err)

	assert.Contains(t, q.rowsSQL, "FROM publicaciones p JOIN bovinos b ON b.id = p.bovino_id JOIN usuarios u ON u.id = p.vendedor_id")
	assert.Contains(t, q.rowsSQL, "WHERE (p.activo = $1)")
	assert.Contains(t, q.rowsSQL, "ORDER BY p.fecha_creacion DESC, p.id DESC LIMIT 12 OFFSET 0")
	assert.Equal(t, []any{true}, q.rowsArgs)

	assert.True(t, strings.HasPrefix(q.countSQL, "SELECT COUNT(*) FROM publicaciones p"))
	assert.NotContains(t, q.countSQL, "ORDER BY")
	assert.NotContains(t, q.countSQL, "LIMIT")
	assert.Equal(t, q.rowsArgs, q.countArgs)
}

func TestBuildSearch_RangoDePrecioYPaginacion(t *testing.T) {
	min := decimal.NewFromInt(1_000_000)
	max := decimal.NewFromInt(5_000_000)
	q, err := buildSearch(normalized(entity.FiltrosMarketplace{
		PrecioMin:  &min,
		PrecioMax:  &max,
		OrdenarPor: entity.OrdenPrecio,
		Ascendente: true,
		Pagina:     2,
		PorPagina:  5,
	}))
	require.NoError(t, err)

	assert.Contains(t, q.rowsSQL, "p.precio >= $2")
	assert.Contains(t, q.rowsSQL, "p.precio <= $3")
	assert.Contains(t, q.rowsSQL, "ORDER BY p.precio ASC, p.id DESC LIMIT 5 OFFSET 5")
	assert.Equal(t, []any{true, min, max}, q.rowsArgs)
	assert.Equal(t, q.rowsArgs, q.countArgs)
	assert.NotContains(t, q.rowsSQL, "b.raza")
}

func TestBuildSearch_BusquedaYVacunas(t *testing.T) {
	texto := "holstein"
	raza := "Holstein"
	q, err := buildSearch(normalized(entity.FiltrosMarketplace{
		Raza:         &raza,
		VacunasAlDia: true,
		Busqueda:     &texto,
	}))
	require.NoError(t, err)

	assert.Contains(t, q.rowsSQL, "b.raza = $2")
	assert.Contains(t, q.rowsSQL, "b.estado_sanitario ILIKE $3")
	assert.Contains(t, q.rowsSQL, "(p.titulo ILIKE $4 OR p.descripcion ILIKE $5 OR b.raza ILIKE $6 OR b.nombre ILIKE $7)")
	assert.Equal(t, []any{true, "Holstein", vacunasAlDiaPattern, "%holstein%", "%holstein%", "%holstein%", "%holstein%"}, q.rowsArgs)
}

func TestBuildSearch_EdadYUbicacion(t *testing.T) {
	edadMin, edadMax := 2, 6
	dep := "Boyacá"
	q, err := buildSearch(normalized(entity.FiltrosMarketplace{EdadMin: &edadMin, EdadMax: &edadMax, Departamento: &dep}))
	require.NoError(t, err)

	assert.Contains(t, q.rowsSQL, "b.edad >= $2")
	assert.Contains(t, q.rowsSQL, "b.edad <= $3")
	assert.Contains(t, q.rowsSQL, "b.ubicacion_departamento = $4")
	assert.Equal(t, []any{true, 2, 6, "Boyacá"}, q.rowsArgs)
}

func TestBuildSearch_PaginaEnormeNoDesborda(t *testing.T) {
	f := normalized(entity.FiltrosMarketplace{Pagina: math.MaxInt, PorPagina: 12})
	q, err := buildSearch(f)
	require.NoError(t, err)

	assert.Contains(t, q.rowsSQL, fmt.Sprintf("LIMIT 12 OFFSET %d", f.Offset()))
	assert.Positive(t, f.Offset())
}
