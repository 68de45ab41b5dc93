package main

import (
	_ "repair_orders/docs"
	"repair_orders/internal/adapter/http/routes"
	"repair_orders/internal/config"
	"repair_orders/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           Repair Orders API
// @version         1.0
// @description     Work-order lifecycle and cost aggregation for repair instructions.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("[main] invalid configuration")
	}
	logger.Setup(cfg.LogLevel, cfg.LogPretty)

	if err := routes.Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("[main] server stopped")
	}
}
