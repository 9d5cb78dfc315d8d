// Package payment adapta el proveedor de pagos (Stripe) al puerto ports.PaymentGateway.
package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/jhoicas/ronix-api/internal/application/ports"
)

// Verificar en tiempo de compilación que StripeGateway implementa PaymentGateway.
var _ ports.PaymentGateway = (*StripeGateway)(nil)

// StripeConfig opciones del cliente. BackendURL y HTTPClient solo se usan en tests.
type StripeConfig struct {
	SecretKey  string
	BackendURL string
	HTTPClient *http.Client
	Logger     stripe.LeveledLoggerInterface
}

// StripeGateway crea payment intents con el SDK oficial. Un cliente por proceso,
// seguro para uso concurrente. Sin reintentos de red.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway construye el adaptador.
func NewStripeGateway(cfg StripeConfig) *StripeGateway {
	backends := &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig(cfg)),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, backendConfig(cfg)),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, backendConfig(cfg)),
	}
	return &StripeGateway{api: client.New(cfg.SecretKey, backends)}
}

// backendConfig devuelve una configuración nueva por backend: el SDK completa la URL
// por defecto sobre la estructura recibida.
func backendConfig(cfg StripeConfig) *stripe.BackendConfig {
	bc := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
		HTTPClient:        cfg.HTTPClient,
	}
	if cfg.Logger != nil {
		bc.LeveledLogger = cfg.Logger
	}
	if cfg.BackendURL != "" {
		bc.URL = stripe.String(cfg.BackendURL)
	}
	return bc
}

// CreatePaymentIntent solicita el intent. La llamada bloquea hasta que Stripe responde
// o el contexto se cancela.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, req ports.PaymentIntentRequest) (*ports.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(req.Amount),
		Currency:           stripe.String(req.Currency),
		PaymentMethodTypes: stripe.StringSlice(req.PaymentMethodTypes),
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		var serr *stripe.Error
		if errors.As(err, &serr) {
			return nil, fmt.Errorf("stripe %s/%s: %w", serr.Type, serr.Code, err)
		}
		return nil, fmt.Errorf("stripe: %w", err)
	}

	return &ports.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Created:      time.Unix(pi.Created, 0).UTC(),
	}, nil
}
