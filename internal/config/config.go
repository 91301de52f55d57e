package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Database DatabaseConfig `envPrefix:"DATABASE_"`
	WhatsApp WhatsAppConfig `envPrefix:"WHATSAPP_"`
	Auth     AuthConfig     `envPrefix:"AUTH_"`
	Kafka    KafkaConfig    `envPrefix:"KAFKA_"`
}

type ServerConfig struct {
	Port       string `env:"PORT" envDefault:"8080"`
	Host       string `env:"HOST" envDefault:"0.0.0.0"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"^https?://localhost(:\\d+)?$"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type DatabaseConfig struct {
	Hosts    []string `env:"HOSTS" envDefault:"localhost:27017"`
	Database string   `env:"DATABASE" envDefault:"littleforest"`
	Username string   `env:"USERNAME"`
	Password string   `env:"PASSWORD"`
	AuthDB   string   `env:"AUTH_DB" envDefault:"admin"`
	Direct   bool     `env:"DIRECT" envDefault:"true"`
}

type WhatsAppConfig struct {
	// Recipient is the nursery's WhatsApp number in international format
	// without the plus sign, e.g. 2547XXXXXXXX.
	Recipient string `env:"RECIPIENT,required"`
	BaseURL   string `env:"BASE_URL" envDefault:"https://wa.me"`
}

type AuthConfig struct {
	JWTSecret   string        `env:"JWT_SECRET,required"`
	AdminEmails []string      `env:"ADMIN_EMAILS,required"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	// AdminPassword bootstraps the first back-office account when the
	// admin collection is empty. Ignored afterwards.
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

type KafkaConfig struct {
	Enabled bool     `env:"ENABLED" envDefault:"false"`
	Brokers []string `env:"BROKERS" envDefault:"localhost:9092"`
	Topic   string   `env:"TOPIC" envDefault:"storefront.orders"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
