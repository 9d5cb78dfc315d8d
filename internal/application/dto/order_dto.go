package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProcessOrderRequest entrada para colocar una orden.
type ProcessOrderRequest struct {
	Email  string           `json:"email" validate:"required"`
	Orders []interface{}    `json:"orders"`
	Total  *decimal.Decimal `json:"total" validate:"required" swaggertype:"number"`
}

// UpdateOrderStatusRequest parámetros de query para actualizar el estado.
type UpdateOrderStatusRequest struct {
	Email  string `query:"email" validate:"required"`
	Status string `query:"status" validate:"required"`
	ID     string `query:"id" validate:"required"`
}

// PlacedOrder resultado de colocar una orden con su payment intent.
type PlacedOrder struct {
	OrderID      string
	ClientSecret string
	Amount       int64
	Currency     string
	Created      time.Time
}

// ProcessOrderResponse sobre de respuesta de /api/process-order.
type ProcessOrderResponse struct {
	Envelope
	ClientSecret string `json:"client_secret"`
	Created      int64  `json:"created"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	OrderID      string `json:"orderId"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID        string          `json:"_id"`
	Email     string          `json:"email"`
	Orders    []interface{}   `json:"orders"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total" swaggertype:"string" example:"10.50"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// OrderEnvelope sobre con una orden.
type OrderEnvelope struct {
	Envelope
	Order OrderResponse `json:"order"`
}

// OrderListResponse sobre con todas las órdenes.
type OrderListResponse struct {
	Envelope
	Orders []OrderResponse `json:"orders"`
}
