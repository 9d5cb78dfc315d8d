package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados conocidos de una orden. Cualquier otro string puede ser asignado por el caller.
const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
)

// Order representa una orden de compra. Items es opaco para el sistema.
type Order struct {
	ID        string
	Email     string
	Items     []interface{}
	Status    string
	Total     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPaid indica si la orden está pagada; una orden pagada no se puede eliminar.
func (o *Order) IsPaid() bool {
	return o.Status == OrderStatusPaid
}
