package repository

import (
	"context"

	"github.com/jhoicas/ronix-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los IDs mal formados producen domain.ErrInvalidID.
type ProductRepository interface {
	// Create asigna product.ID.
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	// Merge aplica los campos sobre el documento existente ($set).
	Merge(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}
