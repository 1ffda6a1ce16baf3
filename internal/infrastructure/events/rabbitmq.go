package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/ganadoboy/ganadoboy-api/internal/application/ports"
	"github.com/ganadoboy/ganadoboy-api/pkg/config"
)

var _ ports.EventPublisher = (*RabbitMQ)(nil)

const publishTimeout = 5 * time.Second

// RabbitMQ publica en un exchange topic; la routing key es el tipo de evento.
type RabbitMQ struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      zerolog.Logger
}

// NewRabbitMQ conecta, abre un canal y declara el exchange (idempotente).
func NewRabbitMQ(cfg config.EventsConfig, log zerolog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return nil, fmt.Errorf("events: conectar RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("events: abrir canal: %w", err)
	}
	err = ch.ExchangeDeclare(
		cfg.Exchange, // name
		"topic",      // kind
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("events: declarar exchange %s: %w", cfg.Exchange, err)
	}
	log.Info().Str("exchange", cfg.Exchange).Msg("RabbitMQ conectado")
	return &RabbitMQ{conn: conn, channel: ch, exchange: cfg.Exchange, log: log}, nil
}

func encode(evt ports.ListingEvent) (amqp.Publishing, error) {
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now().UTC()
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("events: serializar: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    evt.OccurredAt,
		Type:         evt.Type,
		Body:         body,
	}, nil
}

// Publish envía el evento. El canal no admite publicaciones concurrentes.
func (r *RabbitMQ) Publish(ctx context.Context, evt ports.ListingEvent) error {
	msg, err := encode(evt)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.channel.PublishWithContext(ctx, r.exchange, evt.Type, false, false, msg); err != nil {
		return fmt.Errorf("events: publicar %s: %w", evt.Type, err)
	}
	r.log.Debug().Str("type", evt.Type).Int64("publicacion_id", evt.PublicacionID).Msg("evento publicado")
	return nil
}

// Close cierra canal y conexión.
func (r *RabbitMQ) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var firstErr error
	if r.channel != nil {
		if err := r.channel.Close(); err != nil {
			firstErr = err
		}
	}
	if r.conn != nil {
		if err := r.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
