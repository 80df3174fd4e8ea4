package handler

import (
	"fmt"
	"time"

	"github.com/kmorisaki/tenkijp-weather-service/internal/classify"
	"github.com/kmorisaki/tenkijp-weather-service/internal/model"
)

type currentResponse struct {
	Temperature *float64           `json:"temperature"`
	WindSpeed   *float64           `json:"wind_speed"`
	WindBearing *float64           `json:"wind_bearing"`
	Pressure    *float64           `json:"pressure"`
	Humidity    *float64           `json:"humidity"`
	Condition   classify.Condition `json:"condition"`
}

type dailyForecastEntry struct {
	Date       string             `json:"date"`
	Condition  classify.Condition `json:"condition"`
	HighTemp   *float64           `json:"high_temp"`
	LowTemp    *float64           `json:"low_temp"`
	ProbPrecip *int               `json:"prob_precip"`
	Humidity   *float64           `json:"humidity,omitempty"`
}

type hourlyForecastEntry struct {
	Datetime      string             `json:"datetime"`
	Condition     classify.Condition `json:"condition"`
	Temperature   *float64           `json:"temperature"`
	ProbPrecip    *int               `json:"prob_precip"`
	Precipitation *float64           `json:"precipitation"`
	Humidity      *float64           `json:"humidity"`
	WindBearing   *float64           `json:"wind_bearing"`
	WindSpeed     *float64           `json:"wind_speed"`
}

// dailyForecast maps the ten-day list for consumers; the first entry is
// augmented with the today-summary humidity.
func dailyForecast(record *model.ForecastRecord) []dailyForecastEntry {
	entries := make([]dailyForecastEntry, 0, len(record.Daily.TenDay))
	for i, day := range record.Daily.TenDay {
		entry := dailyForecastEntry{
			Date:       day.Date,
			Condition:  classify.ConditionFor(day.Weather, nil),
			HighTemp:   day.HighTemp,
			LowTemp:    day.LowTemp,
			ProbPrecip: day.ProbPrecip,
		}
		if i == 0 {
			entry.Humidity = record.Daily.Today.Humidity
		}
		entries = append(entries, entry)
	}
	return entries
}

// futureHourly flattens the today and tomorrow buckets into the consumer
// list, keeping only hours after now. The 24 end-of-day slot of today is
// kept only when the current hour is 23; tomorrow's is always dropped.
func futureHourly(record *model.ForecastRecord, now time.Time) []hourlyForecastEntry {
	var entries []hourlyForecastEntry

	todayDate := now.Format("2006-01-02")
	for _, e := range record.Hourly.Today {
		if e.Time <= now.Hour() {
			continue
		}
		if e.Time == 24 && now.Hour() != 23 {
			continue
		}
		entries = append(entries, hourlyEntry(todayDate, e))
	}

	tomorrowDate := now.AddDate(0, 0, 1).Format("2006-01-02")
	for _, e := range record.Hourly.Tomorrow {
		if e.Time == 24 {
			continue
		}
		entries = append(entries, hourlyEntry(tomorrowDate, e))
	}

	return entries
}

func hourlyEntry(date string, e model.HourlyEntry) hourlyForecastEntry {
	hour := e.Time
	return hourlyForecastEntry{
		Datetime:      fmt.Sprintf("%sT%02d:00:00", date, e.Time),
		Condition:     classify.ConditionFor(e.Weather, &hour),
		Temperature:   e.Temperature,
		ProbPrecip:    e.ProbPrecip,
		Precipitation: e.Precipitation,
		Humidity:      e.HumidityPercent,
		WindBearing:   classify.Bearing(e.WindDirection),
		WindSpeed:     e.WindSpeed,
	}
}
