package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ronix-api/internal/application/dto"
	"github.com/jhoicas/ronix-api/internal/application/usecase"
	"github.com/jhoicas/ronix-api/pkg/logger"
)

// OrderHandler maneja órdenes, pagos y comprobantes.
type OrderHandler struct {
	uc  *usecase.OrderUseCase
	log *logger.Logger
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase, log *logger.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, log: log}
}

// Process godoc
// @Summary      Colocar orden
// @Description  Guarda la orden en estado pending y crea un payment intent por total*100 unidades menores.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProcessOrderRequest  true  "Orden"
// @Success      201   {object}  dto.ProcessOrderResponse
// @Failure      400   {object}  dto.Envelope
// @Failure      500   {object}  dto.Envelope
// @Failure      502   {object}  dto.Envelope
// @Router       /api/process-order [post]
func (h *OrderHandler) Process(c *fiber.Ctx) error {
	var in dto.ProcessOrderRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	placed, err := h.uc.Place(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err, MsgOrderNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProcessOrderResponse{
		Envelope:     success(MsgOrderPlaced),
		ClientSecret: placed.ClientSecret,
		Created:      placed.Created.Unix(),
		Amount:       placed.Amount,
		Currency:     placed.Currency,
		OrderID:      placed.OrderID,
	})
}

// UpdateStatus godoc
// @Summary      Actualizar estado de la orden
// @Tags         orders
// @Produce      json
// @Param        email   query  string  true  "Email del comprador"
// @Param        status  query  string  true  "Nuevo estado"
// @Param        id      query  string  true  "ID de la orden"
// @Success      201     {object}  dto.Envelope
// @Failure      400     {object}  dto.Envelope
// @Failure      500     {object}  dto.Envelope
// @Router       /api/update-order-status [post]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if ok, err := parseQuery(c, &in); !ok {
		return err
	}
	if err := h.uc.UpdateStatus(c.UserContext(), in); err != nil {
		return writeError(c, h.log, err, MsgOrderNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(success(MsgOrderStatusUpdated))
}

// List godoc
// @Summary      Listar órdenes
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Failure      500  {object}  dto.Envelope
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err, MsgOrderNotFound)
	}
	return c.JSON(dto.OrderListResponse{Envelope: success(MsgOrdersFound), Orders: orders})
}

// GetByEmail godoc
// @Summary      Obtener la primera orden de un email
// @Tags         orders
// @Produce      json
// @Param        email  query  string  true  "Email del comprador"
// @Success      200    {object}  dto.OrderEnvelope
// @Failure      400    {object}  dto.Envelope
// @Failure      404    {object}  dto.Envelope
// @Router       /api/get-order [get]
func (h *OrderHandler) GetByEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return fail(c, fiber.StatusBadRequest, MsgMissingFields)
	}
	order, err := h.uc.GetByEmail(c.UserContext(), email)
	if err != nil {
		return writeError(c, h.log, err, MsgOrderNotFound)
	}
	return c.JSON(dto.OrderEnvelope{Envelope: success(MsgOrderFound), Order: *order})
}

// Delete godoc
// @Summary      Eliminar orden
// @Description  Rechaza el borrado si la orden está pagada.
// @Tags         orders
// @Produce      json
// @Param        id   query  string  true  "ID de la orden"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/delete-order [post]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return fail(c, fiber.StatusBadRequest, MsgMissingFields)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, h.log, err, MsgOrderNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(success(MsgOrderDeleted))
}

// Receipt godoc
// @Summary      Comprobante PDF de la orden
// @Tags         orders
// @Produce      application/pdf
// @Param        id   query  string  true  "ID de la orden"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/order-receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return fail(c, fiber.StatusBadRequest, MsgMissingFields)
	}
	pdf, filename, err := h.uc.Receipt(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err, MsgOrderNotFound)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	return c.Status(fiber.StatusOK).Send(pdf)
}
