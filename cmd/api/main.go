package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/ronix-api/docs"
	"github.com/jhoicas/ronix-api/internal/application/ports"
	"github.com/jhoicas/ronix-api/internal/application/usecase"
	"github.com/jhoicas/ronix-api/internal/domain/repository"
	"github.com/jhoicas/ronix-api/internal/infrastructure/events"
	"github.com/jhoicas/ronix-api/internal/infrastructure/mongo"
	"github.com/jhoicas/ronix-api/internal/infrastructure/payment"
	infrapdf "github.com/jhoicas/ronix-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ronix-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/ronix-api/internal/interfaces/http"
	"github.com/jhoicas/ronix-api/pkg/config"
	"github.com/jhoicas/ronix-api/pkg/logger"
)

// repositories agrupa los adaptadores del store elegido por DB_DRIVER.
type repositories struct {
	users    repository.UserRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
	close    func()
}

func openStore(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		return &repositories{
			users:    postgres.NewUserRepository(pool),
			products: postgres.NewProductRepository(pool),
			orders:   postgres.NewOrderRepository(pool),
			close:    pool.Close,
		}, nil
	default:
		store, err := mongo.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		return &repositories{
			users:    mongo.NewUserRepository(store),
			products: mongo.NewProductRepository(store),
			orders:   mongo.NewOrderRepository(store),
			close: func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = store.Close(ctx)
			},
		}, nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	repos, err := openStore(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("conexión al store")
	}
	defer repos.close()

	if cfg.Payment.SecretKey == "" {
		log.Warn().Msg("STRIPE_SECRET_KEY vacío: los pagos serán rechazados por el proveedor")
	}
	gateway := payment.NewStripeGateway(payment.StripeConfig{
		SecretKey: cfg.Payment.SecretKey,
		Logger:    log.Named("stripe").Leveled(),
	})

	// Eventos de órdenes: solo si hay broker configurado.
	var publisher ports.OrderEventPublisher
	if cfg.AMQP.Enabled() {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQP)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a RabbitMQ")
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
		log.Info().Str("queue", cfg.AMQP.OrderQueue).Msg("eventos de órdenes habilitados")
	}

	accountUC := usecase.NewAccountUseCase(repos.users)
	productUC := usecase.NewProductUseCase(repos.products)
	orderUC := usecase.NewOrderUseCase(usecase.OrderUseCaseConfig{
		Repo:     repos.orders,
		Payments: gateway,
		Events:   publisher,
		Receipts: infrapdf.NewMarotoReceiptGenerator(cfg.App.Name),
		Currency: cfg.Payment.Currency,
		Log:      log,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(httpRouter.RequestLogger(log.Named("http")))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.HTTP.CORSOrigins}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: docs.SwaggerJSON,
		Path:        "docs",
		Title:       "Ronix API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:   cfg.App.Name,
		AccountUC: accountUC,
		ProductUC: productUC,
		OrderUC:   orderUC,
		Log:       log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	// Eventos pendientes antes de cerrar el publisher (defer).
	orderUC.Wait()

	log.Info().Msg("aplicación detenida")
}
