package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"farmmate/pkg/api/farm"
	"farmmate/pkg/core/store"
)

// ServerConfig is the yaml config for the API server.
type ServerConfig struct {
	Port int `yaml:"port"`
}

func main() {
	// Load environment variables
	godotenv.Load()

	cfg := ServerConfig{Port: 8080}
	if configData, err := os.ReadFile("config/server.yaml"); err == nil {
		if err := yaml.Unmarshal(configData, &cfg); err != nil {
			fmt.Printf("[WARNING] Invalid config/server.yaml: %v\n", err)
		}
	}

	// Database is optional: runs are persisted when DATABASE_URL is set.
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(context.Background()); err != nil {
			fmt.Printf("[WARNING] Database unavailable, runs will not be persisted: %v\n", err)
		} else {
			defer store.Close()
			fmt.Println("[STORE] Database pool initialized")
		}
	}

	farmHandler := farm.NewHandler()
	http.HandleFunc("/api/farm/scenario", farmHandler.HandleScenario)
	http.HandleFunc("/api/farm/run", farmHandler.HandleRun)
	http.HandleFunc("/api/farm/results", farmHandler.HandleResults)
	http.HandleFunc("/api/farm/reconciliation", farmHandler.HandleReconciliation)
	http.HandleFunc("/api/farm/report", farmHandler.HandleReport)
	http.HandleFunc("/api/farm/validate", farmHandler.HandleValidate)

	addr := fmt.Sprintf(":%d", cfg.Port)
	fmt.Printf("API server starting on %s...\n", addr)
	fmt.Println("  - GET/POST /api/farm/scenario")
	fmt.Println("  - POST /api/farm/run")
	fmt.Println("  - GET  /api/farm/results")
	fmt.Println("  - GET  /api/farm/reconciliation")
	fmt.Println("  - GET  /api/farm/report  (?format=html)")
	fmt.Println("  - GET  /api/farm/validate")

	if err := http.ListenAndServe(addr, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
