// Package events publica los eventos del marketplace (RabbitMQ o no-op).
package events

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ganadoboy/ganadoboy-api/internal/application/ports"
)

var _ ports.EventPublisher = (*Noop)(nil)

// Noop descarta los eventos; se usa cuando RABBITMQ_URL está vacío.
type Noop struct {
	log zerolog.Logger
}

// NewNoop publisher que solo registra el evento a nivel debug.
func NewNoop(log zerolog.Logger) *Noop {
	return &Noop{log: log}
}

func (n *Noop) Publish(_ context.Context, evt ports.ListingEvent) error {
	n.log.Debug().Str("type", evt.Type).Int64("publicacion_id", evt.PublicacionID).Msg("evento descartado (sin broker)")
	return nil
}

func (n *Noop) Close() error { return nil }
