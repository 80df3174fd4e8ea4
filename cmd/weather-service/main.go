package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/kmorisaki/tenkijp-weather-service/internal/api"
	"github.com/kmorisaki/tenkijp-weather-service/internal/fetcher"
	"github.com/kmorisaki/tenkijp-weather-service/internal/logger"
	"github.com/kmorisaki/tenkijp-weather-service/internal/repository"
	"github.com/kmorisaki/tenkijp-weather-service/internal/scheduler"
	"github.com/kmorisaki/tenkijp-weather-service/internal/service"
	"github.com/kmorisaki/tenkijp-weather-service/internal/transport/rest/handler"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Info(fmt.Sprintf("No .env file loaded: %v", err))
	}

	repo, err := repository.New()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to create repository: %v", err))
	}

	baseURL := os.Getenv("TENKI_BASE_URL")
	if baseURL == "" {
		baseURL = fetcher.DefaultBaseURL
	}
	f := fetcher.NewWithBaseURL(&http.Client{}, baseURL)

	svc := service.New(repo, f)

	interval := scheduler.DefaultInterval
	if v := os.Getenv("FETCH_INTERVAL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			logger.Fatal(fmt.Errorf("invalid FETCH_INTERVAL: %v", err))
		}
		interval = parsed
	}

	sched := scheduler.New(svc, interval)
	if err := sched.Start(); err != nil {
		logger.Fatal(fmt.Errorf("failed to start scheduler: %v", err))
	}
	defer sched.Stop()

	server := handler.NewWeatherServer(svc)
	if err := api.Run(server); err != nil {
		logger.Fatal(fmt.Errorf("failed to run weather api: %v", err))
	}
}
