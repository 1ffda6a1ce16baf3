package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePublicacionRequest entrada para publicar un bovino propio.
type CreatePublicacionRequest struct {
	BovinoID    int64           `json:"bovino_id" validate:"required,gt=0"`
	Titulo      string          `json:"titulo" validate:"required,notblank,max=200"`
	Descripcion string          `json:"descripcion" validate:"required,notblank"`
	Precio      decimal.Decimal `json:"precio" validate:"required,gt=0"`
}

// UpdatePublicacionRequest actualización parcial de una publicación.
type UpdatePublicacionRequest struct {
	Titulo      *string          `json:"titulo" validate:"omitempty,notblank,max=200"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio" validate:"omitempty,gt=0"`
	Activo      *bool            `json:"activo"`
}

// SearchRequest filtros de GET /api/marketplace (query string).
type SearchRequest struct {
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
	OrdenarPor   string
	Direccion    string // asc | desc
	Pagina       int
	PorPagina    int
}

// BovinoResumen datos del bovino anidados en una publicación.
type BovinoResumen struct {
	ID                    int64            `json:"id"`
	Nombre                *string          `json:"nombre"`
	Raza                  string           `json:"raza"`
	Sexo                  string           `json:"sexo"`
	Edad                  *int             `json:"edad"`
	Peso                  *decimal.Decimal `json:"peso"`
	Descripcion           *string          `json:"descripcion"`
	FotoPrincipal         *string          `json:"foto_principal"`
	UbicacionMunicipio    *string          `json:"ubicacion_municipio"`
	UbicacionDepartamento string           `json:"ubicacion_departamento"`
	EstadoSanitario       *string          `json:"estado_sanitario"`
}

// VendedorResumen datos públicos del vendedor.
type VendedorResumen struct {
	ID           int64   `json:"id"`
	Nombre       string  `json:"nombre"`
	Apellidos    string  `json:"apellidos"`
	Email        string  `json:"email"`
	Telefono     *string `json:"telefono"`
	Municipio    string  `json:"municipio"`
	Departamento string  `json:"departamento"`
	FotoPerfil   *string `json:"foto_perfil"`
}

// PublicacionResponse publicación con bovino y vendedor anidados.
type PublicacionResponse struct {
	ID            int64           `json:"id"`
	VendedorID    int64           `json:"vendedor_id"`
	BovinoID      int64           `json:"bovino_id"`
	Titulo        string          `json:"titulo"`
	Descripcion   *string         `json:"descripcion"`
	Precio        decimal.Decimal `json:"precio"`
	FechaCreacion time.Time       `json:"fecha_creacion"`
	Activo        bool            `json:"activo"`
	Bovino        BovinoResumen   `json:"bovino"`
	Vendedor      VendedorResumen `json:"vendedor"`
}

// PaginacionResponse metadatos de página del marketplace.
type PaginacionResponse struct {
	Pagina       int `json:"pagina"`
	PorPagina    int `json:"porPagina"`
	Total        int `json:"total"`
	TotalPaginas int `json:"totalPaginas"`
}

// SearchResponse data de GET /api/marketplace.
type SearchResponse struct {
	Publicaciones []PublicacionResponse `json:"publicaciones"`
	Paginacion    PaginacionResponse    `json:"paginacion"`
}
