package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fullwoodjoz/visitus/internal/config"
	"fullwoodjoz/visitus/internal/logging"
	"fullwoodjoz/visitus/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Visitus starting up",
		"environment", cfg.AppEnv,
		"data_dir", cfg.DataDir,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	if cfg.JWTSecret == "" {
		logging.Warn("JWT_SECRET is empty; bearer tokens are unusable, session cookies still work")
	}

	upSince := time.Now()

	router := routes.RegisterRoutes(cfg, upSince)

	// Metrics endpoint lives outside the Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	logging.Info("Server starting",
		"port", cfg.Port,
		"environment", cfg.AppEnv,
	)

	log.Fatal(http.ListenAndServe(":"+cfg.Port, mux))
}
