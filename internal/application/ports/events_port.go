package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de evento del marketplace.
const (
	EventPublicacionCreada         = "publicacion.creada"
	EventPublicacionActualizada    = "publicacion.actualizada"
	EventPublicacionEstadoCambiado = "publicacion.estado_cambiado"
	EventPublicacionEliminada      = "publicacion.eliminada"
)

// ListingEvent cambio en una publicación, serializado como JSON y usado como routing key por Type.
type ListingEvent struct {
	Type          string          `json:"type"`
	PublicacionID int64           `json:"publicacion_id"`
	BovinoID      int64           `json:"bovino_id"`
	VendedorID    int64           `json:"vendedor_id"`
	Precio        decimal.Decimal `json:"precio"`
	Activo        bool            `json:"activo"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

// EventPublisher define el puerto de salida hacia el broker de mensajes.
type EventPublisher interface {
	Publish(ctx context.Context, evt ListingEvent) error
	Close() error
}
