// Package scrape extracts a forecast record from the fetched tenki.jp pages.
// Field-level problems degrade to nil values or skipped rows with a warning
// on the injected log; only an unparseable document fails a cycle.
package scrape

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kmorisaki/tenkijp-weather-service/internal/fetcher"
	"github.com/kmorisaki/tenkijp-weather-service/internal/markup"
	"github.com/kmorisaki/tenkijp-weather-service/internal/model"
)

// titleSuffix is the fixed page-title phrase following the location name.
const titleSuffix = "の今日明日の天気"

var (
	ErrTitleNotFound = errors.New("title tag not found on page")
	ErrEmptyLocation = errors.New("could not parse location name from title")
)

// BuildRecord turns one fetch batch into a forecast record. The caller's now
// is the single timestamp used for year inference and the humidity
// cross-references, keeping one pass internally consistent.
func BuildRecord(pages *fetcher.Pages, now time.Time, log logrus.FieldLogger) (*model.ForecastRecord, error) {
	baseDoc, err := markup.Parse(strings.NewReader(pages.Base))
	if err != nil {
		return nil, fmt.Errorf("failed to parse base page: %w", err)
	}
	hourlyDoc, err := markup.Parse(strings.NewReader(pages.Hourly))
	if err != nil {
		return nil, fmt.Errorf("failed to parse hourly page: %w", err)
	}
	tenDayDoc, err := markup.Parse(strings.NewReader(pages.TenDay))
	if err != nil {
		return nil, fmt.Errorf("failed to parse tenday page: %w", err)
	}

	hourly := parseHourlyForecast(hourlyDoc, log)
	current := parseCurrentConditions(baseDoc)
	daily := parseDailyForecast(baseDoc, tenDayDoc, hourly.Today, now, log)

	// The live box has no humidity; take it from the hourly entry for the
	// current hour when one exists.
	found := false
	for _, entry := range hourly.Today {
		if entry.Time == now.Hour() {
			current.Humidity = entry.HumidityPercent
			found = true
			break
		}
	}
	if !found {
		log.Warn("could not determine current humidity from hourly forecast")
	}

	return &model.ForecastRecord{
		Current: current,
		Daily:   daily,
		Hourly:  hourly,
	}, nil
}

// LocationName derives a display name from the base page title, e.g.
// "さいたま市大宮区の今日明日の天気 - tenki.jp" yields "さいたま市大宮区".
func LocationName(body string) (string, error) {
	doc, err := markup.Parse(strings.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse base page: %w", err)
	}

	title := doc.Locate("title")
	if title == nil || title.Text() == "" {
		return "", ErrTitleNotFound
	}

	name := strings.TrimSpace(strings.SplitN(title.Text(), titleSuffix, 2)[0])
	if name == "" {
		return "", ErrEmptyLocation
	}
	return name, nil
}
