package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ronix-api/internal/application/dto"
	"github.com/jhoicas/ronix-api/internal/domain"
	"github.com/jhoicas/ronix-api/pkg/logger"
)

// Mensajes del sobre de respuesta.
const (
	MsgAccountCreated     = "Account Created Successfully"
	MsgAccountExists      = "Account Already Exists"
	MsgUserPromoted       = "User Promoted Successfully"
	MsgProductFound       = "Product Found"
	MsgProductNotFound    = "Product Not Found"
	MsgProductsFound      = "Products Found"
	MsgProductAdded       = "Product Added Successfully"
	MsgProductUpdated     = "Product Updated Successfully"
	MsgProductDeleted     = "Product Deleted Successfully"
	MsgOrderPlaced        = "Order Placed Successfully"
	MsgOrderStatusUpdated = "Order Status Updated Successfully"
	MsgOrdersFound        = "Orders Found"
	MsgOrderFound         = "Order Found"
	MsgOrderNotFound      = "Order Not Found"
	MsgOrderAlreadyPaid   = "Order Already Paid"
	MsgOrderDeleted       = "Order Deleted Successfully"
	MsgErrorOccured       = "Error Occured"
	MsgInvalidBody        = "Invalid Request Body"
	MsgMissingFields      = "Missing Required Fields"
	MsgInvalidID          = "Invalid Identifier"
	MsgPaymentFailed      = "Payment Processing Failed"
)

var validate = validator.New()

func success(message string) dto.Envelope {
	return dto.Envelope{Status: dto.StatusSuccess, Message: message}
}

func fail(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(dto.Envelope{Status: dto.StatusFail, Message: message})
}

// parseBody decodifica el JSON y valida los campos requeridos. Devuelve false si ya respondió.
func parseBody(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, fail(c, fiber.StatusBadRequest, MsgInvalidBody)
	}
	if err := validate.Struct(out); err != nil {
		return false, fail(c, fiber.StatusBadRequest, MsgMissingFields)
	}
	return true, nil
}

// parseQuery igual que parseBody pero sobre el query string.
func parseQuery(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := c.QueryParser(out); err != nil {
		return false, fail(c, fiber.StatusBadRequest, MsgInvalidBody)
	}
	if err := validate.Struct(out); err != nil {
		return false, fail(c, fiber.StatusBadRequest, MsgMissingFields)
	}
	return true, nil
}

// writeError traduce errores de dominio a códigos HTTP. La causa interna solo se registra.
func writeError(c *fiber.Ctx, log *logger.Logger, err error, notFound string) error {
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		return fail(c, fiber.StatusBadRequest, MsgAccountExists)
	case errors.Is(err, domain.ErrOrderAlreadyPaid):
		return fail(c, fiber.StatusBadRequest, MsgOrderAlreadyPaid)
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, notFound)
	case errors.Is(err, domain.ErrInvalidID):
		return fail(c, fiber.StatusBadRequest, MsgInvalidID)
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, MsgMissingFields)
	case errors.Is(err, domain.ErrPaymentFailed):
		log.Error().Err(err).Str("path", c.Path()).Str("request_id", requestID(c)).Msg("pago rechazado")
		return fail(c, fiber.StatusBadGateway, MsgPaymentFailed)
	default:
		log.Error().Err(err).Str("path", c.Path()).Str("request_id", requestID(c)).Msg("error interno")
		return fail(c, fiber.StatusInternalServerError, MsgErrorOccured)
	}
}

func requestID(c *fiber.Ctx) string {
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
