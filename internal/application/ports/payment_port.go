package ports

import (
	"context"
	"time"
)

// PaymentIntentRequest datos para solicitar un cobro al proveedor.
// Amount va en unidades menores (centavos).
type PaymentIntentRequest struct {
	Amount             int64
	Currency           string
	PaymentMethodTypes []string
}

// PaymentIntent respuesta del proveedor; ClientSecret lo usa el frontend para confirmar el pago.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
	Created      time.Time
}

// PaymentGateway puerto de salida hacia el proveedor de pagos (Stripe, mock).
// La llamada es bloqueante y no se reintenta.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntent, error)
}
