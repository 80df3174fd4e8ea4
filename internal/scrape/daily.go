package scrape

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kmorisaki/tenkijp-weather-service/internal/markup"
	"github.com/kmorisaki/tenkijp-weather-service/internal/model"
	"github.com/kmorisaki/tenkijp-weather-service/internal/normalize"
)

// datePattern matches the ten-day row date label, e.g. "12月31日". The rows
// carry no year.
var datePattern = regexp.MustCompile(`(\d{1,2})月(\d{1,2})日`)

// maxHumidityDistance caps the hour distance of the nearest-humidity search
// for the today summary.
const maxHumidityDistance = 25

// parseDailyForecast reads the today summary from the base page and the
// ten-day list from the ten-day page. Years are inferred from now: a month
// that decreases relative to the previous row marks the December-January
// rollover, so the working year only moves forward within one pass.
func parseDailyForecast(base, tenDay markup.Document, todayHourly []model.HourlyEntry, now time.Time, log logrus.FieldLogger) model.DailyForecast {
	daily := model.DailyForecast{
		Today: parseTodaySummary(base, todayHourly, now),
	}

	year := now.Year()
	lastMonth := 0
	for _, row := range tenDay.List(".forecast10days-list .forecast10days-actab") {
		days := row.Locate(".days")
		if days == nil {
			continue
		}
		match := datePattern.FindStringSubmatch(days.Text())
		if match == nil {
			log.Warnf("skipping ten-day row with unparseable date %q", days.Text())
			continue
		}
		month, _ := strconv.Atoi(match[1])
		day, _ := strconv.Atoi(match[2])

		if month < lastMonth {
			year++
		}
		lastMonth = month

		entry := model.DailyEntry{
			Date: fmt.Sprintf("%d-%02d-%02d", year, month, day),
		}
		if telop := row.Locate(".forecast-telop"); telop != nil {
			text := telop.Text()
			entry.Weather = &text
		}
		if high := row.Locate(".high-temp"); high != nil {
			entry.HighTemp = normalize.ParseNumber(high.Text())
		}
		if low := row.Locate(".low-temp"); low != nil {
			entry.LowTemp = normalize.ParseNumber(low.Text())
		}
		if prob := row.Locate(".prob-precip"); prob != nil {
			entry.ProbPrecip = normalize.ParsePercent(prob.Text())
		}
		daily.TenDay = append(daily.TenDay, entry)
	}

	return daily
}

func parseTodaySummary(base markup.Document, todayHourly []model.HourlyEntry, now time.Time) model.DailySummary {
	summary := model.DailySummary{}

	if section := base.Locate(".today-weather"); section != nil {
		if telop := section.Locate(".weather-telop"); telop != nil {
			text := telop.Text()
			summary.Weather = &text
		}
		if value := section.Locate(".high-temp .value"); value != nil {
			summary.HighTemp = normalize.ParseNumber(value.Text())
		}
		if value := section.Locate(".low-temp .value"); value != nil {
			summary.LowTemp = normalize.ParseNumber(value.Text())
		}
	}

	summary.Humidity = closestHumidity(todayHourly, now.Hour())
	return summary
}

// closestHumidity picks the humidity of the hourly entry nearest to the
// given hour among entries that have one. Ties keep the first-encountered
// entry.
func closestHumidity(entries []model.HourlyEntry, hour int) *float64 {
	var humidity *float64
	minDiff := maxHumidityDistance
	for _, e := range entries {
		diff := e.Time - hour
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff && e.HumidityPercent != nil {
			minDiff = diff
			humidity = e.HumidityPercent
		}
	}
	return humidity
}
