package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ronix-api/internal/application/dto"
	"github.com/jhoicas/ronix-api/internal/application/usecase"
	"github.com/jhoicas/ronix-api/pkg/logger"
)

// ProductHandler maneja el catálogo de productos (documentos libres).
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/product/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err, MsgProductNotFound)
	}
	return c.JSON(dto.ProductResponse{Envelope: success(MsgProductFound), Product: product})
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Failure      500  {object}  dto.Envelope
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err, MsgProductNotFound)
	}
	return c.JSON(dto.ProductListResponse{Envelope: success(MsgProductsFound), Products: products})
}

// Add godoc
// @Summary      Crear producto
// @Description  Guarda el documento tal cual; el _id lo asigna el servidor.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductDocument  true  "Documento del producto"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      500   {object}  dto.Envelope
// @Router       /api/add-product [post]
func (h *ProductHandler) Add(c *fiber.Ctx) error {
	var in dto.ProductDocument
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, MsgInvalidBody)
	}
	if _, err := h.uc.Add(c.UserContext(), in); err != nil {
		return writeError(c, h.log, err, MsgProductNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(success(MsgProductAdded))
}

// Update godoc
// @Summary      Actualizar producto
// @Description  Mezcla los campos enviados; las claves ausentes conservan su valor.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    query  string               true  "ID del producto"
// @Param        body  body   dto.ProductDocument  true  "Campos a actualizar"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/update-product [post]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return fail(c, fiber.StatusBadRequest, MsgMissingFields)
	}
	var in dto.ProductDocument
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, MsgInvalidBody)
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return writeError(c, h.log, err, MsgProductNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(success(MsgProductUpdated))
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Produce      json
// @Param        id   query  string  true  "ID del producto"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Router       /api/delete-product [post]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return fail(c, fiber.StatusBadRequest, MsgMissingFields)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, h.log, err, MsgProductNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(success(MsgProductDeleted))
}
