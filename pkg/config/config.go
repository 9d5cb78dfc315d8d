package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Store   StoreConfig
	Mongo   MongoConfig
	DB      DBConfig
	Payment PaymentConfig
	AMQP    AMQPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig selecciona el backend de documentos.
type StoreConfig struct {
	Driver string // mongo | postgres
}

// MongoConfig conexión al document store principal.
type MongoConfig struct {
	URL      string
	Database string
}

// DBConfig configuración de PostgreSQL (backend alternativo con documentos JSONB).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// PaymentConfig proveedor de pagos (Stripe).
type PaymentConfig struct {
	SecretKey string
	Currency  string
}

// AMQPConfig publicación de eventos de órdenes. URL vacía = eventos deshabilitados.
type AMQPConfig struct {
	URL        string
	OrderQueue string
}

// Enabled indica si hay broker configurado.
func (c AMQPConfig) Enabled() bool {
	return c.URL != ""
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Se respetan los nombres históricos PORT, MONGODB_URL y STRIPE_SECRET_KEY.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env en el directorio de trabajo
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "ronix-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "PORT", 8080),
			CORSOrigins: getString(v, "CORS_ALLOW_ORIGINS", "*"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getString(v, "DB_DRIVER", DriverMongo)),
		},
		Mongo: MongoConfig{
			URL:      getString(v, "MONGODB_URL", "mongodb://localhost:27017"),
			Database: getString(v, "MONGODB_DATABASE", "Ronix"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "ronix"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Payment: PaymentConfig{
			SecretKey: getString(v, "STRIPE_SECRET_KEY", ""),
			Currency:  strings.ToLower(getString(v, "PAYMENT_CURRENCY", "usd")),
		},
		AMQP: AMQPConfig{
			URL:        getString(v, "AMQP_URL", ""),
			OrderQueue: getString(v, "AMQP_ORDER_QUEUE", "order_events"),
		},
	}

	switch cfg.Store.Driver {
	case DriverMongo, DriverPostgres:
	default:
		return nil, fmt.Errorf("DB_DRIVER desconocido: %q (use %s o %s)", cfg.Store.Driver, DriverMongo, DriverPostgres)
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
