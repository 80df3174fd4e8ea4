// Package classify maps scraped Japanese weather phrases and compass labels
// onto the fixed vocabulary exposed to forecast consumers.
package classify

import "strings"

// Condition is a normalized sky condition.
type Condition string

const (
	ConditionClearNight   Condition = "clear-night"
	ConditionSunny        Condition = "sunny"
	ConditionCloudy       Condition = "cloudy"
	ConditionRainy        Condition = "rainy"
	ConditionSnowy        Condition = "snowy"
	ConditionPartlyCloudy Condition = "partlycloudy"
)

// DefaultCondition is used when a phrase is empty or matches nothing.
const DefaultCondition = ConditionSunny

// bearings is the 16-point compass rose used by tenki.jp wind labels.
var bearings = map[string]float64{
	"北":   0.0,
	"北北東": 22.5,
	"北東":  45.0,
	"東北東": 67.5,
	"東":   90.0,
	"東南東": 112.5,
	"南東":  135.0,
	"南南東": 157.5,
	"南":   180.0,
	"南南西": 202.5,
	"南西":  225.0,
	"西南西": 247.5,
	"西":   270.0,
	"西北西": 292.5,
	"北西":  315.0,
	"北北西": 337.5,
}

// ConditionFor classifies a weather phrase. Precedence is snow, rain, mixed
// sun and cloud, cloud, sun; the hour only matters for sun-only phrases,
// where it separates daytime sun from a clear night. A nil hour is treated
// as daytime.
func ConditionFor(phrase *string, hour *int) Condition {
	if phrase == nil || *phrase == "" {
		return DefaultCondition
	}
	text := *phrase
	isNight := hour != nil && (*hour >= 18 || *hour < 6)
	switch {
	case strings.Contains(text, "雪"):
		return ConditionSnowy
	case strings.Contains(text, "雨"):
		return ConditionRainy
	case strings.Contains(text, "晴") && strings.Contains(text, "曇"):
		return ConditionPartlyCloudy
	case strings.Contains(text, "曇"):
		return ConditionCloudy
	case strings.Contains(text, "晴"):
		if isNight {
			return ConditionClearNight
		}
		return ConditionSunny
	default:
		return DefaultCondition
	}
}

// Bearing maps a compass label to degrees. Unknown or missing labels map to
// nil rather than an arbitrary direction.
func Bearing(label *string) *float64 {
	if label == nil {
		return nil
	}
	deg, ok := bearings[*label]
	if !ok {
		return nil
	}
	return &deg
}
