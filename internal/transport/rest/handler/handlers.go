package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kmorisaki/tenkijp-weather-service/internal/classify"
	"github.com/kmorisaki/tenkijp-weather-service/internal/logger"
	"github.com/kmorisaki/tenkijp-weather-service/internal/model"
	"github.com/kmorisaki/tenkijp-weather-service/internal/repository"
	"github.com/kmorisaki/tenkijp-weather-service/internal/service"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go WeatherService

// WeatherService provides weather service methods.
type WeatherService interface {
	RegisterLocation(ctx context.Context, urlPath string) (*model.Location, error)
	Latest(urlPath string) (*model.ForecastRecord, error)
}

// WeatherServer is a server for forecast requests.
type WeatherServer struct {
	service WeatherService
}

// NewWeatherServer creates new WeatherServer.
func NewWeatherServer(service WeatherService) *WeatherServer {
	return &WeatherServer{service}
}

type registerLocationRequest struct {
	URLPath string `json:"url_path"`
}

// RegisterLocationHandler handles the one-time location setup: the path is
// validated against the live site before anything is persisted.
func (s *WeatherServer) RegisterLocationHandler(w http.ResponseWriter, r *http.Request) {
	var req registerLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErr(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if req.URLPath == "" {
		respondErr(w, http.StatusBadRequest, errors.New("url_path not provided in request body"))
		return
	}

	loc, err := s.service.RegisterLocation(r.Context(), req.URLPath)
	switch {
	case errors.Is(err, service.ErrCannotConnect):
		logger.Error(err)
		respondErr(w, http.StatusBadGateway, err)
		return
	case errors.Is(err, service.ErrInvalidLocation):
		logger.Error(err)
		respondErr(w, http.StatusBadRequest, err)
		return
	case errors.Is(err, repository.ErrLocationExists):
		respondErr(w, http.StatusConflict, err)
		return
	case err != nil:
		logger.Error(fmt.Errorf("failed to register location: %v", err))
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	respond(w, http.StatusCreated, loc)
}

// CurrentConditionsHandler handles current conditions requests.
func (s *WeatherServer) CurrentConditionsHandler(w http.ResponseWriter, r *http.Request) {
	record, ok := s.latestRecord(w, r)
	if !ok {
		return
	}

	hour := time.Now().Hour()
	current := record.Current
	respond(w, http.StatusOK, currentResponse{
		Temperature: current.Temperature,
		WindSpeed:   current.WindSpeed,
		WindBearing: classify.Bearing(current.WindDirection),
		Pressure:    current.Pressure,
		Humidity:    current.Humidity,
		Condition:   classify.ConditionFor(record.Daily.Today.Weather, &hour),
	})
}

// DailyForecastHandler handles ten-day forecast requests.
func (s *WeatherServer) DailyForecastHandler(w http.ResponseWriter, r *http.Request) {
	record, ok := s.latestRecord(w, r)
	if !ok {
		return
	}

	respond(w, http.StatusOK, dailyForecast(record))
}

// HourlyForecastHandler handles hourly forecast requests; only hours after
// the current one are returned.
func (s *WeatherServer) HourlyForecastHandler(w http.ResponseWriter, r *http.Request) {
	record, ok := s.latestRecord(w, r)
	if !ok {
		return
	}

	respond(w, http.StatusOK, futureHourly(record, time.Now()))
}

func (s *WeatherServer) latestRecord(w http.ResponseWriter, r *http.Request) (*model.ForecastRecord, bool) {
	urlPath := r.URL.Query().Get("path")
	if urlPath == "" {
		respondErr(w, http.StatusBadRequest, errors.New("path parameter not provided in query"))
		return nil, false
	}

	record, err := s.service.Latest(urlPath)
	if errors.Is(err, service.ErrNoForecast) {
		respondErr(w, http.StatusNotFound, err)
		return nil, false
	}
	if err != nil {
		logger.Error(fmt.Errorf("failed to get forecast record: %v", err))
		respondErr(w, http.StatusInternalServerError, err)
		return nil, false
	}

	return record, true
}
