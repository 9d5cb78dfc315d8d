package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ronix-api/internal/application/dto"
	"github.com/jhoicas/ronix-api/internal/application/usecase"
	"github.com/jhoicas/ronix-api/pkg/logger"
)

// AccountHandler maneja alta de cuentas y cambio de rol.
type AccountHandler struct {
	uc  *usecase.AccountUseCase
	log *logger.Logger
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc *usecase.AccountUseCase, log *logger.Logger) *AccountHandler {
	return &AccountHandler{uc: uc, log: log}
}

// CreateAccount godoc
// @Summary      Crear cuenta
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccountRequest  true  "Datos de la cuenta"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      500   {object}  dto.Envelope
// @Router       /api/create-account [post]
func (h *AccountHandler) CreateAccount(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	if err := h.uc.CreateAccount(c.UserContext(), in); err != nil {
		return writeError(c, h.log, err, MsgErrorOccured)
	}
	return c.Status(fiber.StatusCreated).JSON(success(MsgAccountCreated))
}

// PromoteUser godoc
// @Summary      Cambiar rol de usuario
// @Description  Asigna el rol indicado (admin si se omite). No falla si el email no existe.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PromoteUserRequest  true  "Email y rol"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      500   {object}  dto.Envelope
// @Router       /api/promote-user [post]
func (h *AccountHandler) PromoteUser(c *fiber.Ctx) error {
	var in dto.PromoteUserRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	if err := h.uc.PromoteUser(c.UserContext(), in); err != nil {
		return writeError(c, h.log, err, MsgErrorOccured)
	}
	return c.Status(fiber.StatusCreated).JSON(success(MsgUserPromoted))
}
