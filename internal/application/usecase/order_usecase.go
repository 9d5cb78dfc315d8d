package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ronix-api/internal/application/dto"
	"github.com/jhoicas/ronix-api/internal/application/ports"
	"github.com/jhoicas/ronix-api/internal/domain"
	"github.com/jhoicas/ronix-api/internal/domain/entity"
	"github.com/jhoicas/ronix-api/internal/domain/repository"
	"github.com/jhoicas/ronix-api/pkg/logger"
)

// cardOnly restringe los payment intents a tarjeta.
var cardOnly = []string{"card"}

const eventPublishTimeout = 3 * time.Second

// OrderUseCase ciclo de vida de la orden: pending → (cualquier estado), con borrado
// bloqueado cuando está pagada.
type OrderUseCase struct {
	repo     repository.OrderRepository
	payments ports.PaymentGateway
	events   ports.OrderEventPublisher
	receipts ports.ReceiptGenerator
	currency string
	log      *logger.Logger
	inflight sync.WaitGroup
}

// OrderUseCaseConfig dependencias del caso de uso. Events y Receipts son opcionales.
type OrderUseCaseConfig struct {
	Repo     repository.OrderRepository
	Payments ports.PaymentGateway
	Events   ports.OrderEventPublisher
	Receipts ports.ReceiptGenerator
	Currency string
	Log      *logger.Logger
}

// NewOrderUseCase construye el caso de uso inyectando sus puertos.
func NewOrderUseCase(cfg OrderUseCaseConfig) *OrderUseCase {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	currency := cfg.Currency
	if currency == "" {
		currency = "usd"
	}
	return &OrderUseCase{
		repo:     cfg.Repo,
		payments: cfg.Payments,
		events:   cfg.Events,
		receipts: cfg.Receipts,
		currency: currency,
		log:      log.Named("orders"),
	}
}

// Place inserta la orden en estado pending y luego solicita el payment intent por
// total*100 unidades menores. Si el proveedor falla la orden queda pending (sin compensación)
// y se devuelve domain.ErrPaymentFailed.
func (uc *OrderUseCase) Place(ctx context.Context, in dto.ProcessOrderRequest) (*dto.PlacedOrder, error) {
	if in.Total == nil {
		return nil, domain.ErrInvalidInput
	}
	items := in.Orders
	if items == nil {
		items = []interface{}{}
	}
	now := time.Now().UTC()
	order := &entity.Order{
		Email:     in.Email,
		Items:     items,
		Status:    entity.OrderStatusPending,
		Total:     *in.Total,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("insertar orden: %w", err)
	}

	intent, err := uc.payments.CreatePaymentIntent(ctx, ports.PaymentIntentRequest{
		Amount:             ToMinorUnits(order.Total),
		Currency:           uc.currency,
		PaymentMethodTypes: cardOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: orden %s: %w", domain.ErrPaymentFailed, order.ID, err)
	}

	uc.publish(ctx, ports.OrderEventPlaced, order.ID, order.Email, order.Status)

	return &dto.PlacedOrder{
		OrderID:      order.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     intent.Currency,
		Created:      intent.Created,
	}, nil
}

// UpdateStatus asigna el estado a la orden (email + id). Cero coincidencias no es error.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, in dto.UpdateOrderStatusRequest) error {
	matched, err := uc.repo.UpdateStatus(ctx, in.Email, in.ID, in.Status)
	if err != nil {
		return fmt.Errorf("actualizar estado: %w", err)
	}
	if matched > 0 {
		uc.publish(ctx, ports.OrderEventStatusUpdated, in.ID, in.Email, in.Status)
	}
	return nil
}

// List devuelve todas las órdenes.
func (uc *OrderUseCase) List(ctx context.Context) ([]dto.OrderResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar órdenes: %w", err)
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// GetByEmail devuelve la primera orden del email; domain.ErrNotFound si no hay.
func (uc *OrderUseCase) GetByEmail(ctx context.Context, email string) (*dto.OrderResponse, error) {
	order, err := uc.repo.FirstByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("buscar orden: %w", err)
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	out := toOrderResponse(order)
	return &out, nil
}

// Delete elimina la orden salvo que esté pagada (domain.ErrOrderAlreadyPaid). El store vuelve a
// filtrar por estado al borrar, así una orden pagada entre la lectura y el borrado no se elimina.
// Un conteo cero no es error: solo se registra y no se publica el evento.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.IsPaid() {
		return domain.ErrOrderAlreadyPaid
	}
	deleted, err := uc.repo.DeleteUnpaid(ctx, id)
	if err != nil {
		return fmt.Errorf("eliminar orden: %w", err)
	}
	if deleted == 0 {
		uc.log.Warn().Str("order_id", id).Msg("delete sin documentos eliminados")
		return nil
	}
	uc.publish(ctx, ports.OrderEventDeleted, order.ID, order.Email, order.Status)
	return nil
}

// Receipt genera el PDF de la orden y el nombre de archivo sugerido.
func (uc *OrderUseCase) Receipt(ctx context.Context, id string) ([]byte, string, error) {
	if uc.receipts == nil {
		return nil, "", fmt.Errorf("generador de recibos no configurado")
	}
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	pdf, err := uc.receipts.GenerateOrderReceipt(ctx, order)
	if err != nil {
		return nil, "", fmt.Errorf("generar recibo: %w", err)
	}
	return pdf, fmt.Sprintf("orden_%s.pdf", order.ID), nil
}

// publish envía el evento en segundo plano sin afectar la respuesta: los errores solo se registran.
func (uc *OrderUseCase) publish(ctx context.Context, eventType, orderID, email, status string) {
	if uc.events == nil {
		return
	}
	event := ports.OrderEvent{
		Type:       eventType,
		OrderID:    orderID,
		Email:      email,
		Status:     status,
		OccurredAt: time.Now().UTC(),
	}
	ctx = context.WithoutCancel(ctx)

	uc.inflight.Add(1)
	go func() {
		defer uc.inflight.Done()
		ctx, cancel := context.WithTimeout(ctx, eventPublishTimeout)
		defer cancel()

		if err := uc.events.PublishOrderEvent(ctx, event); err != nil {
			uc.log.Error().Err(err).Str("event", eventType).Str("order_id", orderID).Msg("publicar evento de orden")
		}
	}()
}

// Wait bloquea hasta que terminen las publicaciones de eventos en curso.
// Se llama en el apagado, antes de cerrar el publisher.
func (uc *OrderUseCase) Wait() {
	uc.inflight.Wait()
}

// ToMinorUnits convierte un total decimal a unidades menores (x100) redondeando al entero.
func ToMinorUnits(total decimal.Decimal) int64 {
	return total.Shift(2).Round(0).IntPart()
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	items := o.Items
	if items == nil {
		items = []interface{}{}
	}
	return dto.OrderResponse{
		ID:        o.ID,
		Email:     o.Email,
		Orders:    items,
		Status:    o.Status,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
