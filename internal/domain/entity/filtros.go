package entity

import (
	"math"

	"github.com/shopspring/decimal"
)

// Claves de ordenamiento del marketplace.
const (
	OrdenPrecio        = "precio"
	OrdenFechaCreacion = "fecha_creacion"
	OrdenRelevancia    = "relevancia" // por ahora equivale a fecha_creacion
)

// Paginación por defecto y máxima.
const (
	PaginaDefault    = 1
	PorPaginaDefault = 12
	PorPaginaMax     = 100
)

// FiltrosMarketplace filtros opcionales y combinables de la búsqueda pública.
type FiltrosMarketplace struct {
	Raza         *string
	Sexo         *string
	EdadMin      *int
	EdadMax      *int
	PesoMin      *decimal.Decimal
	PesoMax      *decimal.Decimal
	PrecioMin    *decimal.Decimal
	PrecioMax    *decimal.Decimal
	Municipio    *string
	Departamento *string
	VacunasAlDia bool
	Busqueda     *string

	OrdenarPor string // precio | fecha_creacion | relevancia
	Ascendente bool
	Pagina     int
	PorPagina  int
}

// Normalize aplica valores por defecto y límites de paginación y orden.
func (f *FiltrosMarketplace) Normalize() {
	switch f.OrdenarPor {
	case OrdenPrecio, OrdenFechaCreacion:
	case OrdenRelevancia:
		f.OrdenarPor = OrdenFechaCreacion
	default:
		f.OrdenarPor = OrdenFechaCreacion
		f.Ascendente = false
	}
	if f.Pagina < 1 {
		f.Pagina = PaginaDefault
	}
	if f.PorPagina < 1 {
		f.PorPagina = PorPaginaDefault
	}
	if f.PorPagina > PorPaginaMax {
		f.PorPagina = PorPaginaMax
	}
	// Offset no debe desbordar int.
	if f.Pagina > math.MaxInt/f.PorPagina {
		f.Pagina = math.MaxInt / f.PorPagina
	}
}

// Offset filas a saltar para la página actual.
func (f FiltrosMarketplace) Offset() int {
	return (f.Pagina - 1) * f.PorPagina
}

// TotalPaginas ceil(total / porPagina).
func TotalPaginas(total, porPagina int) int {
	if porPagina <= 0 || total <= 0 {
		return 0
	}
	return (total + porPagina - 1) / porPagina
}
