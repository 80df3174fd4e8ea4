// Package service orchestrates the refresh cycle: fetch the three pages,
// build a forecast record, and keep the latest record per location for
// consumers. A failed cycle leaves the previous record in place.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kmorisaki/tenkijp-weather-service/internal/fetcher"
	"github.com/kmorisaki/tenkijp-weather-service/internal/logger"
	"github.com/kmorisaki/tenkijp-weather-service/internal/model"
	"github.com/kmorisaki/tenkijp-weather-service/internal/scrape"
)

var (
	ErrCannotConnect   = errors.New("cannot connect to the weather site")
	ErrInvalidLocation = errors.New("could not derive a location name for the given path")
	ErrNoForecast      = errors.New("no forecast has been fetched for this location yet")
)

// displayNameSuffix is appended to the derived location name, e.g.
// "さいたま市大宮区 天気".
const displayNameSuffix = " 天気"

// Repository provides necessary repo methods.
type Repository interface {
	InsertLocation(ctx context.Context, loc *model.Location) error
	GetLocations(ctx context.Context) ([]*model.Location, error)
}

// WeatherService provides forecast refresh and lookup functionality.
type WeatherService struct {
	repo    Repository
	fetcher *fetcher.Fetcher
	log     logrus.FieldLogger

	mu      sync.RWMutex
	records map[string]*model.ForecastRecord
}

// New creates new WeatherService.
func New(repo Repository, f *fetcher.Fetcher) *WeatherService {
	return &WeatherService{
		repo:    repo,
		fetcher: f,
		log:     logger.Default(),
		records: make(map[string]*model.ForecastRecord),
	}
}

// Refresh runs one fetch-and-parse cycle for a location and stores the
// resulting record as the latest one. Each cycle builds its record from
// scratch, so concurrent refreshes of different locations are safe.
func (ws *WeatherService) Refresh(ctx context.Context, urlPath string) (*model.ForecastRecord, error) {
	pages, err := ws.fetcher.FetchAll(ctx, urlPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast pages: %w", err)
	}

	record, err := scrape.BuildRecord(pages, time.Now(), ws.log)
	if err != nil {
		return nil, fmt.Errorf("failed to build forecast record: %w", err)
	}

	ws.mu.Lock()
	ws.records[urlPath] = record
	ws.mu.Unlock()

	return record, nil
}

// Latest returns the last successfully built record for a location.
func (ws *WeatherService) Latest(urlPath string) (*model.ForecastRecord, error) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()

	record, ok := ws.records[urlPath]
	if !ok {
		return nil, ErrNoForecast
	}
	return record, nil
}

// RegisterLocation validates a location path by fetching its base page,
// derives the display name from the page title, persists the location and
// runs the first refresh. Nothing is persisted when validation fails.
func (ws *WeatherService) RegisterLocation(ctx context.Context, urlPath string) (*model.Location, error) {
	body, err := ws.fetcher.FetchBase(ctx, urlPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCannotConnect, err)
	}

	name, err := scrape.LocationName(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
	}

	loc := &model.Location{
		URLPath: urlPath,
		Name:    name + displayNameSuffix,
	}
	if err := ws.repo.InsertLocation(ctx, loc); err != nil {
		return nil, err
	}

	// First refresh; a failure here is not fatal to the registration, the
	// scheduler retries on the next cycle.
	if _, err := ws.Refresh(ctx, urlPath); err != nil {
		ws.log.Warnf("initial refresh failed for %s: %v", urlPath, err)
	}

	return loc, nil
}

// Locations returns every configured location for the scheduler.
func (ws *WeatherService) Locations(ctx context.Context) ([]*model.Location, error) {
	return ws.repo.GetLocations(ctx)
}
