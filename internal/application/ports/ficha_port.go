package ports

import (
	"context"
	"time"

	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
)

// FichaData datos de la ficha técnica de un bovino.
type FichaData struct {
	Bovino        *entity.Bovino
	Propietario   *entity.User
	Sanitarios    []*entity.RegistroSanitario
	Reproductivos []*entity.RegistroReproductivo
	GeneradaEn    time.Time
}

// FichaGenerator genera el PDF de la ficha técnica.
type FichaGenerator interface {
	GenerateFicha(ctx context.Context, data FichaData) ([]byte, error)
}
