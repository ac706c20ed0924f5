package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Config contiene toda la configuración del servicio, cargada del entorno
type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"sales_db"`

	PrometheusEnabled bool `envconfig:"PROMETHEUS_ENABLED" default:"false"`

	// Gateway de WhatsApp para avisos de ventas a crédito
	// Si la URL está vacía, el aviso solo se registra en el log
	WhatsAppGatewayURL string `envconfig:"WHATSAPP_GATEWAY_URL" default:""`
	WhatsAppAdminPhone string `envconfig:"WHATSAPP_ADMIN_PHONE" default:""`

	// Tamaño de la cola de avisos pendientes
	NotificationQueueSize int `envconfig:"NOTIFICATION_QUEUE_SIZE" default:"64"`
}

// Load carga la configuración desde variables de entorno
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error loading config from environment: %w", err)
	}
	return &cfg, nil
}

// DatabaseDSN construye el string de conexión a PostgreSQL
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// SetupLogger configura el nivel y formato del logger global
func (c *Config) SetupLogger() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
