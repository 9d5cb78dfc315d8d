package repository

import (
	"context"

	"github.com/jhoicas/ronix-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
// Los IDs mal formados producen domain.ErrInvalidID.
type OrderRepository interface {
	// Create asigna order.ID.
	Create(ctx context.Context, order *entity.Order) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// FirstByEmail devuelve la orden más antigua del email o (nil, nil).
	FirstByEmail(ctx context.Context, email string) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
	// UpdateStatus filtra por email + id y devuelve la cantidad de coincidencias.
	UpdateStatus(ctx context.Context, email, id, status string) (int64, error)
	// DeleteUnpaid elimina la orden solo si su estado no es "paid"; devuelve la cantidad eliminada.
	DeleteUnpaid(ctx context.Context, id string) (int64, error)
}
