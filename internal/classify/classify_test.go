package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionFor(t *testing.T) {
	cases := []struct {
		name     string
		phrase   *string
		hour     *int
		expected Condition
	}{
		{name: "sun and cloud is partly cloudy", phrase: strPtr("晴れ時々曇り"), hour: intPtr(10), expected: ConditionPartlyCloudy},
		{name: "sun at night is clear night", phrase: strPtr("晴れ"), hour: intPtr(20), expected: ConditionClearNight},
		{name: "sun before dawn is clear night", phrase: strPtr("晴れ"), hour: intPtr(5), expected: ConditionClearNight},
		{name: "sun during the day", phrase: strPtr("晴れ"), hour: intPtr(10), expected: ConditionSunny},
		{name: "sun without hour", phrase: strPtr("晴れ"), hour: nil, expected: ConditionSunny},
		{name: "snow wins over sun and cloud", phrase: strPtr("雪のち晴れ時々曇り"), hour: intPtr(10), expected: ConditionSnowy},
		{name: "rain wins over cloud", phrase: strPtr("曇り一時雨"), hour: intPtr(10), expected: ConditionRainy},
		{name: "cloud alone", phrase: strPtr("曇り"), hour: intPtr(10), expected: ConditionCloudy},
		{name: "night does not affect cloud", phrase: strPtr("曇り"), hour: intPtr(22), expected: ConditionCloudy},
		{name: "unknown phrase defaults", phrase: strPtr("霧"), hour: intPtr(10), expected: ConditionSunny},
		{name: "nil phrase defaults", phrase: nil, hour: intPtr(10), expected: ConditionSunny},
		{name: "empty phrase defaults", phrase: strPtr(""), hour: nil, expected: ConditionSunny},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ConditionFor(tc.phrase, tc.hour))
		})
	}
}

func TestBearing(t *testing.T) {
	northEast := Bearing(strPtr("北東"))
	assert.NotNil(t, northEast)
	assert.Equal(t, 45.0, *northEast)

	north := Bearing(strPtr("北"))
	assert.NotNil(t, north)
	assert.Equal(t, 0.0, *north)

	nnw := Bearing(strPtr("北北西"))
	assert.NotNil(t, nnw)
	assert.Equal(t, 337.5, *nnw)

	assert.Nil(t, Bearing(strPtr("unknown")))
	assert.Nil(t, Bearing(nil))
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }
