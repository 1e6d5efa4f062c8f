package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	Postgres Postgres
	Kafka    Kafka
	Mailer   Mailer
	Auth     Auth
	Company  Company
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey        string `env:"HTTP_API_KEY" envDefault:"dev"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Enabled            bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers            []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	InvoiceEventsTopic string   `env:"KAFKA_INVOICE_EVENTS_TOPIC" envDefault:"invoice-events"`
}

type Mailer struct {
	Host     string `env:"MAILER_HOST" envDefault:"localhost"`
	Port     int    `env:"MAILER_PORT" envDefault:"587"`
	Login    string `env:"MAILER_LOGIN" envDefault:""`
	Password string `env:"MAILER_PASSWORD" envDefault:""`
	From     string `env:"MAILER_FROM" envDefault:"billing@knllogistics.ng"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"KNL Logistics Billing"`
}

type Auth struct {
	JWTSecret string `env:"AUTH_JWT_SECRET"`
}

// Company is the letterhead printed on rendered invoices.
type Company struct {
	Name        string `env:"COMPANY_NAME" envDefault:"KNL Logistics Ltd"`
	Address     string `env:"COMPANY_ADDRESS" envDefault:""`
	Phone       string `env:"COMPANY_PHONE" envDefault:""`
	Email       string `env:"COMPANY_EMAIL" envDefault:""`
	BankDetails string `env:"COMPANY_BANK_DETAILS" envDefault:""`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
