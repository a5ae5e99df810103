package main

import (
	"log"
	"net/http"
	"time"

	"pet-adoption-api/internal/platform/config"
	"pet-adoption-api/internal/platform/logger"
	"pet-adoption-api/internal/router"

	"github.com/joho/godotenv"
)

// @title        Pet Adoption API
// @version      1.0
// @description  Backend del juego de adopción de mascotas: usuarios, mascotas, tienda y acciones.
// @BasePath     /
func main() {
	_ = godotenv.Load() // .env opcional en dev

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	r := router.New(router.Options{
		DataDir: cfg.DataDir,
		DSN:     cfg.DBDSN,
		Logger:  lg,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	lg.Info("starting server", map[string]any{"addr": srv.Addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
