package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Publicacion oferta de venta de un bovino. Un bovino tiene a lo sumo una publicación activa.
type Publicacion struct {
	ID            int64
	BovinoID      int64
	VendedorID    int64
	Titulo        string
	Descripcion   *string
	Precio        decimal.Decimal
	Activo        bool
	FechaCreacion time.Time
}

// PublicacionDetalle publicación con los datos del bovino y del vendedor (join).
type PublicacionDetalle struct {
	Publicacion
	Bovino   Bovino
	Vendedor User
}
