package repository

import (
	"context"

	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
)

// BovinoRepository define el puerto de persistencia para bovinos, fotos e historiales.
// La propiedad se verifica en el predicado de la consulta (id + propietario_id + activo).
type BovinoRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Bovino, error)
	// FindOwned retorna (nil, nil) si no existe, está inactivo o es de otro propietario.
	FindOwned(ctx context.Context, id, ownerID int64) (*entity.Bovino, error)
	Create(ctx context.Context, b *entity.Bovino) error
	Update(ctx context.Context, id, ownerID int64, patch entity.BovinoPatch) error
	SoftDelete(ctx context.Context, id, ownerID int64) error

	// AddFotos inserta una fila por ruta; si setPrincipal, la primera queda como principal.
	AddFotos(ctx context.Context, bovinoID int64, rutas []string, setPrincipal bool) ([]*entity.BovinoFoto, error)
	// AddFotoPrincipal inserta la foto, limpia la principal anterior y actualiza foto_principal.
	AddFotoPrincipal(ctx context.Context, bovinoID int64, ruta string) (*entity.BovinoFoto, error)
	ListFotos(ctx context.Context, bovinoID int64) ([]*entity.BovinoFoto, error)

	AddRegistroSanitario(ctx context.Context, r *entity.RegistroSanitario) error
	ListRegistrosSanitarios(ctx context.Context, bovinoID int64) ([]*entity.RegistroSanitario, error)
	AddRegistroReproductivo(ctx context.Context, r *entity.RegistroReproductivo) error
	ListRegistrosReproductivos(ctx context.Context, bovinoID int64) ([]*entity.RegistroReproductivo, error)
}
