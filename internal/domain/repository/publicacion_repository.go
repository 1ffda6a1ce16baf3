package repository

import (
	"context"

	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
)

// PublicacionRepository define el puerto de persistencia del marketplace.
type PublicacionRepository interface {
	// Search aplica los filtros (ya normalizados) y devuelve la página pedida y el total.
	Search(ctx context.Context, f entity.FiltrosMarketplace) ([]*entity.PublicacionDetalle, int, error)
	// FindDetalle publicación con bovino y vendedor; (nil, nil) si no existe.
	FindDetalle(ctx context.Context, id int64) (*entity.PublicacionDetalle, error)
	// FindOwned publicación del vendedor (activa o no) con bovino y vendedor; (nil, nil) si no existe.
	FindOwned(ctx context.Context, id, vendedorID int64) (*entity.PublicacionDetalle, error)
	// HasActiveForBovino true si hay otra publicación activa del bovino distinta de excludeID (0 = ninguna).
	HasActiveForBovino(ctx context.Context, bovinoID, excludeID int64) (bool, error)
	Create(ctx context.Context, p *entity.Publicacion) error
	Update(ctx context.Context, id, vendedorID int64, patch entity.PublicacionPatch) error
	Delete(ctx context.Context, id, vendedorID int64) error
	ListBySeller(ctx context.Context, vendedorID int64) ([]*entity.PublicacionDetalle, error)
}
