package scrape

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/kmorisaki/tenkijp-weather-service/internal/markup"
	"github.com/kmorisaki/tenkijp-weather-service/internal/model"
	"github.com/kmorisaki/tenkijp-weather-service/internal/normalize"
)

// parseHourlyForecast reads the three day-bucket tables of the hourly page.
// A structurally absent table yields an empty bucket, not an error.
func parseHourlyForecast(doc markup.Document, log logrus.FieldLogger) model.HourlyForecast {
	return model.HourlyForecast{
		Today:            parseHourlyTable(doc, "today", log),
		Tomorrow:         parseHourlyTable(doc, "tomorrow", log),
		DayAfterTomorrow: parseHourlyTable(doc, "dayaftertomorrow", log),
	}
}

func parseHourlyTable(doc markup.Document, bucket string, log logrus.FieldLogger) []model.HourlyEntry {
	table := doc.Locate("#forecast-point-1h-" + bucket)
	if table == nil {
		return nil
	}

	hours := table.List(".hour td")

	// Seven parallel column rows, aligned with the hour row by position.
	weather := texts(table.List(".weather td p"))
	temperature := texts(table.List(".temperature td"))
	probPrecip := texts(table.List(".prob-precip td"))
	precipitation := texts(table.List(".precipitation td"))
	humidity := texts(table.List(".humidity td"))
	windDirection := texts(table.List(".wind-blow td p"))
	windSpeed := texts(table.List(".wind-speed td"))

	entries := make([]model.HourlyEntry, 0, len(hours))
	for i, hourCell := range hours {
		hour, err := strconv.Atoi(hourCell.Text())
		if err != nil || hour < 0 || hour > 24 {
			log.Warnf("skipping hourly slot %d in %s table: bad hour label %q", i, bucket, hourCell.Text())
			continue
		}

		if i >= len(weather) || i >= len(temperature) || i >= len(probPrecip) ||
			i >= len(precipitation) || i >= len(humidity) ||
			i >= len(windDirection) || i >= len(windSpeed) {
			log.Warnf("skipping hourly slot %d in %s table: incomplete columns", i, bucket)
			continue
		}

		weatherText := weather[i]
		directionText := windDirection[i]
		entries = append(entries, model.HourlyEntry{
			Time:            hour,
			Weather:         &weatherText,
			Temperature:     normalize.ParseNumber(temperature[i]),
			ProbPrecip:      normalize.ParsePercent(probPrecip[i]),
			Precipitation:   normalize.ParseNumber(precipitation[i]),
			HumidityPercent: normalize.ParseNumber(humidity[i]),
			WindDirection:   &directionText,
			WindSpeed:       normalize.ParseNumber(windSpeed[i]),
		})
	}

	return entries
}

func texts(regions []markup.Region) []string {
	out := make([]string, 0, len(regions))
	for _, r := range regions {
		out = append(out, r.Text())
	}
	return out
}
