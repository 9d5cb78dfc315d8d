package ports

import (
	"context"
	"time"
)

// Tipos de evento de orden.
const (
	OrderEventPlaced        = "order.placed"
	OrderEventStatusUpdated = "order.status_updated"
	OrderEventDeleted       = "order.deleted"
)

// OrderEvent mensaje publicado al broker cuando cambia una orden.
type OrderEvent struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	Email      string    `json:"email"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderEventPublisher puerto de salida para eventos de órdenes (best-effort).
type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event OrderEvent) error
}
