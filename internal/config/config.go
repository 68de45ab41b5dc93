package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
)

type Config struct {
	ServerPort  string
	StoreDriver string
	DBDSN       string
	LogLevel    string
	LogPretty   bool

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	OrdersTable        string
	CatalogTable       string
	PaymentsTable      string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
	TestPayerEmail         string
	TestPayerUserID        string
}

// Load reads the environment, loading .env first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:  getenvDefault("SERVER_PORT", "8080"),
		StoreDriver: strings.ToLower(getenvDefault("STORE_DRIVER", StoreMemory)),
		DBDSN:       os.Getenv("DB_DSN"),
		LogLevel:    getenvDefault("LOG_LEVEL", "info"),
		LogPretty:   getenvBool("LOG_PRETTY"),

		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		OrdersTable:        getenvDefault("ORDERS_TABLE", "repair_orders"),
		CatalogTable:       getenvDefault("CATALOG_TABLE", "catalog_items"),
		PaymentsTable:      getenvDefault("PAYMENTS_TABLE", "payments"),

		MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		PaymentGatewayMock:     getenvBool("PAYMENT_GATEWAY_MOCK") || getenvBool("MERCADOPAGO_MOCK"),
		TestPayerEmail:         strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
		TestPayerUserID:        strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID")),
	}

	switch cfg.StoreDriver {
	case StoreMemory, StoreDynamoDB:
	case StorePostgres:
		if cfg.DBDSN == "" {
			return nil, fmt.Errorf("DB_DSN is not set")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT %q", cfg.ServerPort)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvBool(key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return err == nil && v
}
