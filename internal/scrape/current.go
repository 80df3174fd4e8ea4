package scrape

import (
	"regexp"
	"strconv"

	"github.com/kmorisaki/tenkijp-weather-service/internal/markup"
	"github.com/kmorisaki/tenkijp-weather-service/internal/model"
)

// numberPattern matches the first run of digits, optionally with one decimal
// point, inside a label like "13.5℃" or "1013hPa".
var numberPattern = regexp.MustCompile(`\d+\.\d+|\d+`)

func firstNumber(text string) *float64 {
	match := numberPattern.FindString(text)
	if match == "" {
		return nil
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseCurrentConditions reads the live observation box of the base page.
// Humidity is absent there and gets back-filled by the aggregator from the
// hourly table.
func parseCurrentConditions(doc markup.Document) model.CurrentConditions {
	current := model.CurrentConditions{}

	liveBox := doc.Locate(".live-box")
	if liveBox == nil {
		return current
	}

	if temp := liveBox.Locate(".temp a"); temp != nil {
		current.Temperature = firstNumber(temp.Text())
	}
	if pressure := liveBox.Locate(".pressure a"); pressure != nil {
		current.Pressure = firstNumber(pressure.Text())
	}
	if wind := liveBox.Locate(".wind a"); wind != nil {
		current.WindSpeed = firstNumber(wind.Text())
		// The compass label shares its element with the numeric speed;
		// only a direct child text node is the label itself.
		if label := wind.DirectText(); label != "" {
			current.WindDirection = &label
		}
	}

	return current
}
