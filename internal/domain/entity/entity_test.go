package entity

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBovinoPatch_IsEmptyYApply(t *testing.T) {
	assert.True(t, BovinoPatch{}.IsEmpty())

	raza := "Normando"
	peso := decimal.NewFromInt(420)
	p := BovinoPatch{Raza: &raza, Peso: &peso}
	assert.False(t, p.IsEmpty())

	nombre := "Lucera"
	b := Bovino{Nombre: &nombre, Raza: "Holstein", Sexo: SexoHembra}
	p.Apply(&b)
	assert.Equal(t, "Normando", b.Raza)
	assert.True(t, b.Peso.Equal(peso))
	assert.Equal(t, "Lucera", *b.Nombre, "campos ausentes no se tocan")
	assert.Equal(t, SexoHembra, b.Sexo)
}

func TestPublicacionPatch_Activates(t *testing.T) {
	on, off := true, false
	assert.True(t, PublicacionPatch{Activo: &on}.Activates())
	assert.False(t, PublicacionPatch{Activo: &off}.Activates())
	assert.False(t, PublicacionPatch{}.Activates())
}

func TestFiltrosMarketplace_Normalize(t *testing.T) {
	f := FiltrosMarketplace{OrdenarPor: "relevancia", Ascendente: true, PorPagina: 500}
	f.Normalize()
	assert.Equal(t, OrdenFechaCreacion, f.OrdenarPor)
	assert.True(t, f.Ascendente)
	assert.Equal(t, 1, f.Pagina)
	assert.Equal(t, PorPaginaMax, f.PorPagina)

	f = FiltrosMarketplace{OrdenarPor: "DROP TABLE", Ascendente: true, Pagina: 3}
	f.Normalize()
	assert.Equal(t, OrdenFechaCreacion, f.OrdenarPor)
	assert.False(t, f.Ascendente)
	assert.Equal(t, 12, f.PorPagina)
	assert.Equal(t, 24, f.Offset())
}

func TestFiltrosMarketplace_NormalizePaginaEnorme(t *testing.T) {
	f := FiltrosMarketplace{Pagina: math.MaxInt, PorPagina: 12}
	f.Normalize()
	assert.Equal(t, math.MaxInt/12, f.Pagina)
	assert.Positive(t, f.Offset())

	f = FiltrosMarketplace{Pagina: math.MaxInt, PorPagina: 1}
	f.Normalize()
	assert.Equal(t, math.MaxInt-1, f.Offset())
}

func TestTotalPaginas(t *testing.T) {
	assert.Equal(t, 0, TotalPaginas(0, 12))
	assert.Equal(t, 1, TotalPaginas(12, 12))
	assert.Equal(t, 2, TotalPaginas(13, 12))
	assert.Equal(t, 0, TotalPaginas(5, 0))
}

func TestValidaciones(t *testing.T) {
	assert.True(t, ValidSexo("M"))
	assert.False(t, ValidSexo("m"))
	assert.True(t, ValidTipoSanitario(TipoDesparasitacion))
	assert.False(t, ValidTipoSanitario("desparasitación"))
	assert.True(t, ValidEventoReproductivo(EventoInseminacion))
}
