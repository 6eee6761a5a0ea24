package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Ostroner/smartCarproject/internal/auth"
	"github.com/Ostroner/smartCarproject/internal/cars"
	"github.com/Ostroner/smartCarproject/internal/config"
	"github.com/Ostroner/smartCarproject/internal/customers"
	"github.com/Ostroner/smartCarproject/internal/logging"
	"github.com/Ostroner/smartCarproject/internal/payments"
	"github.com/Ostroner/smartCarproject/internal/records"
	"github.com/Ostroner/smartCarproject/internal/reports"
	"github.com/Ostroner/smartCarproject/internal/services"
	"github.com/Ostroner/smartCarproject/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, continuing with environment variables")
	}

	if m := os.Getenv("GIN_MODE"); m != "" {
		gin.SetMode(m)
	}

	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// Backend selection is a blocking step: the listener does not start
	// until a store is active and seeded.
	st, err := store.Select(cfg, sugar)
	if err != nil {
		sugar.Fatalw("store initialization failed", "error", err)
	}

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	auth.NewHandler(st).Routes(api.Group("/auth"))
	customers.NewHandler(st).Routes(api.Group("/customers"))
	cars.NewHandler(st).Routes(api.Group("/cars"))
	services.NewHandler().Routes(api.Group("/services"))
	records.NewHandler(st).Routes(api.Group("/service-records"))
	payments.NewHandler(st).Routes(api.Group("/payments"))
	reports.NewHandler().Routes(api.Group("/reports"))

	sugar.Infow("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		sugar.Fatalw("server stopped", "error", err)
	}
}
