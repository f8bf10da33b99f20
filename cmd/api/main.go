package main

import (
	"context"
	"flag"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	_ "pipecrm/docs"
	"pipecrm/internal/adapter/http/routes"
	"pipecrm/internal/config"
	"pipecrm/internal/logger"
)

// @title           Pipeline CRM API
// @version         1.0
// @description     Sales pipeline aggregation and forecasting engine for small-business CRM data.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	envOnly := flag.Bool("env-only", false, "skip the config file and read PIPECRM_* env vars only")
	flag.Parse()

	cfg, err := config.Load(*configPath, *envOnly)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	if err := routes.Run(context.Background(), cfg, zl); err != nil {
		zl.Error("server exited with error", zap.Error(err))
		os.Exit(1)
	}
}
