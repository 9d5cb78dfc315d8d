package ports

import (
	"context"

	"github.com/jhoicas/ronix-api/internal/domain/entity"
)

// ReceiptGenerator genera la representación PDF de una orden.
type ReceiptGenerator interface {
	GenerateOrderReceipt(ctx context.Context, order *entity.Order) ([]byte, error)
}
