package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ronix-api/internal/application/usecase"
	"github.com/jhoicas/ronix-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName   string
	AccountUC *usecase.AccountUseCase
	ProductUC *usecase.ProductUseCase
	OrderUC   *usecase.OrderUseCase
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	// Liveness
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello World")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")

	// Accounts
	accountHandler := NewAccountHandler(deps.AccountUC, log.Named("accounts"))
	api.Post("/create-account", accountHandler.CreateAccount)
	api.Post("/promote-user", accountHandler.PromoteUser)

	// Products
	productHandler := NewProductHandler(deps.ProductUC, log.Named("products"))
	api.Get("/product/:id", productHandler.GetByID)
	api.Get("/products", productHandler.List)
	api.Post("/add-product", productHandler.Add)
	api.Post("/update-product", productHandler.Update)
	api.Post("/delete-product", productHandler.Delete)

	// Orders
	orderHandler := NewOrderHandler(deps.OrderUC, log.Named("orders"))
	api.Post("/process-order", orderHandler.Process)
	api.Post("/update-order-status", orderHandler.UpdateStatus)
	api.Get("/orders", orderHandler.List)
	api.Get("/get-order", orderHandler.GetByEmail)
	api.Post("/delete-order", orderHandler.Delete)
	api.Get("/order-receipt", orderHandler.Receipt)
}
