// Package model defines the forecast data types shared across the service.
package model

// Absent values are represented as nil pointers: the source pages routinely
// omit or mangle individual fields and a zero would be indistinguishable from
// real data.

// Location is a configured forecast point: the tenki.jp URL path chosen by
// the user plus the display name derived from the page title.
type Location struct {
	URLPath string `bson:"urlPath" json:"url_path"`
	Name    string `bson:"name" json:"name"`
}

// CurrentConditions holds the live observations from the base page. Humidity
// is back-filled from the hourly table for the current hour, since the live
// box does not carry it.
type CurrentConditions struct {
	Temperature   *float64 `json:"temperature"`
	WindSpeed     *float64 `json:"wind_speed"`
	WindDirection *string  `json:"wind_direction"`
	Pressure      *float64 `json:"pressure"`
	Humidity      *float64 `json:"humidity"`
}

// DailySummary is the "today" block of the base page.
type DailySummary struct {
	Weather  *string  `json:"weather"`
	HighTemp *float64 `json:"high_temp"`
	LowTemp  *float64 `json:"low_temp"`
	Humidity *float64 `json:"humidity"`
}

// DailyEntry is one row of the ten-day forecast list.
type DailyEntry struct {
	// Date is an ISO-8601 calendar date; the year is inferred because the
	// source rows only carry month and day.
	Date       string   `json:"date"`
	Weather    *string  `json:"weather"`
	HighTemp   *float64 `json:"high_temp"`
	LowTemp    *float64 `json:"low_temp"`
	ProbPrecip *int     `json:"prob_precip"`
}

// HourlyEntry is one column of a per-hour forecast table. Time runs 0-24;
// 24 marks the end-of-day slot.
type HourlyEntry struct {
	Time            int      `json:"time"`
	Weather         *string  `json:"weather"`
	Temperature     *float64 `json:"temperature"`
	ProbPrecip      *int     `json:"prob_precip"`
	Precipitation   *float64 `json:"precipitation"`
	HumidityPercent *float64 `json:"humidity_percent"`
	WindDirection   *string  `json:"wind_direction"`
	WindSpeed       *float64 `json:"wind_speed"`
}

// DailyForecast groups the today summary with the ten-day list.
type DailyForecast struct {
	Today  DailySummary `json:"today"`
	TenDay []DailyEntry `json:"ten_day"`
}

// HourlyForecast holds the three day-buckets of the hourly page, each in
// source order.
type HourlyForecast struct {
	Today            []HourlyEntry `json:"today"`
	Tomorrow         []HourlyEntry `json:"tomorrow"`
	DayAfterTomorrow []HourlyEntry `json:"dayaftertomorrow"`
}

// ForecastRecord is the result of one refresh cycle. It is immutable once
// built; the next cycle replaces it wholesale.
type ForecastRecord struct {
	Current CurrentConditions `json:"current"`
	Daily   DailyForecast     `json:"daily"`
	Hourly  HourlyForecast    `json:"hourly"`
}
