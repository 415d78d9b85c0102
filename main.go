package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"foodigo/configs"
	"foodigo/routes"
)

func main() {
	cfg := configs.LoadConfig()

	logger := configs.NewLogger()
	defer logger.Sync()

	// DB
	configs.ConnectionDB(cfg)

	if cfg.AutoMigrate {
		if err := configs.SetupDatabase(); err != nil {
			log.Fatalf("migrate failed: %v", err)
		}
	}

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedDefaults(); err != nil {
		log.Fatalf("seed defaults failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	zap.L().Info("server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
