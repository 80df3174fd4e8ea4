package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/tj/assert"

	"github.com/kmorisaki/tenkijp-weather-service/internal/model"
	"github.com/kmorisaki/tenkijp-weather-service/internal/repository"
	"github.com/kmorisaki/tenkijp-weather-service/internal/service"
	mock "github.com/kmorisaki/tenkijp-weather-service/internal/transport/rest/handler/mock"
)

var errTest = errors.New("test error")

func TestRegisterLocationHandler(t *testing.T) {
	cases := []struct {
		name           string
		urlPath        string
		serviceError   error
		expectedStatus int
		isMockCalled   bool
	}{
		{
			name:           "missing url path",
			urlPath:        "",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "cannot connect",
			urlPath:        "/forecast/3/14/4310/11103/",
			serviceError:   service.ErrCannotConnect,
			expectedStatus: http.StatusBadGateway,
			isMockCalled:   true,
		},
		{
			name:           "invalid location",
			urlPath:        "/forecast/3/14/4310/11103/",
			serviceError:   service.ErrInvalidLocation,
			expectedStatus: http.StatusBadRequest,
			isMockCalled:   true,
		},
		{
			name:           "already configured",
			urlPath:        "/forecast/3/14/4310/11103/",
			serviceError:   repository.ErrLocationExists,
			expectedStatus: http.StatusConflict,
			isMockCalled:   true,
		},
		{
			name:           "service error",
			urlPath:        "/forecast/3/14/4310/11103/",
			serviceError:   errTest,
			expectedStatus: http.StatusInternalServerError,
			isMockCalled:   true,
		},
		{
			name:           "ok",
			urlPath:        "/forecast/3/14/4310/11103/",
			expectedStatus: http.StatusCreated,
			isMockCalled:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockWeatherService := mock.NewMockWeatherService(ctrl)
			s := NewWeatherServer(mockWeatherService)

			reqBody, err := json.Marshal(registerLocationRequest{URLPath: tc.urlPath})
			assert.Nil(t, err)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/locations", bytes.NewReader(reqBody))

			if tc.isMockCalled {
				var loc *model.Location
				if tc.serviceError == nil {
					loc = &model.Location{URLPath: tc.urlPath, Name: "さいたま市大宮区 天気"}
				}
				mockWeatherService.EXPECT().
					RegisterLocation(gomock.Any(), tc.urlPath).
					Return(loc, tc.serviceError)
			}

			s.RegisterLocationHandler(w, r)

			assert.Equal(t, tc.expectedStatus, w.Result().StatusCode)
		})
	}
}

func TestCurrentConditionsHandler(t *testing.T) {
	weather := "曇り"
	direction := "北東"
	temperature := 13.5
	record := &model.ForecastRecord{
		Current: model.CurrentConditions{
			Temperature:   &temperature,
			WindDirection: &direction,
		},
		Daily: model.DailyForecast{
			Today: model.DailySummary{Weather: &weather},
		},
	}

	cases := []struct {
		name           string
		query          string
		record         *model.ForecastRecord
		serviceError   error
		expectedStatus int
		isMockCalled   bool
	}{
		{
			name:           "missing path parameter",
			query:          "",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "no forecast yet",
			query:          "?path=/forecast/3/14/4310/11103/",
			serviceError:   service.ErrNoForecast,
			expectedStatus: http.StatusNotFound,
			isMockCalled:   true,
		},
		{
			name:           "ok",
			query:          "?path=/forecast/3/14/4310/11103/",
			record:         record,
			expectedStatus: http.StatusOK,
			isMockCalled:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockWeatherService := mock.NewMockWeatherService(ctrl)
			s := NewWeatherServer(mockWeatherService)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/weather/current"+tc.query, nil)

			if tc.isMockCalled {
				mockWeatherService.EXPECT().
					Latest("/forecast/3/14/4310/11103/").
					Return(tc.record, tc.serviceError)
			}

			s.CurrentConditionsHandler(w, r)

			assert.Equal(t, tc.expectedStatus, w.Result().StatusCode)

			if tc.expectedStatus == http.StatusOK {
				var resBody currentResponse
				err := json.NewDecoder(w.Result().Body).Decode(&resBody)
				assert.Nil(t, err)
				assert.Equal(t, "cloudy", string(resBody.Condition))
				assert.NotNil(t, resBody.WindBearing)
				assert.Equal(t, 45.0, *resBody.WindBearing)
				assert.NotNil(t, resBody.Temperature)
				assert.Equal(t, 13.5, *resBody.Temperature)
			}
		})
	}
}

func TestHourlyForecastHandlerNoForecast(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWeatherService := mock.NewMockWeatherService(ctrl)
	s := NewWeatherServer(mockWeatherService)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/forecast/hourly?path=/forecast/3/14/4310/11103/", nil)

	mockWeatherService.EXPECT().
		Latest("/forecast/3/14/4310/11103/").
		Return(nil, service.ErrNoForecast)

	s.HourlyForecastHandler(w, r)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestDailyForecastHandler(t *testing.T) {
	weather := "晴れ"
	record := &model.ForecastRecord{
		Daily: model.DailyForecast{
			TenDay: []model.DailyEntry{{Date: "2023-11-20", Weather: &weather}},
		},
	}

	ctrl := gomock.NewController(t)
	mockWeatherService := mock.NewMockWeatherService(ctrl)
	s := NewWeatherServer(mockWeatherService)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/forecast/daily?path=/forecast/3/14/4310/11103/", nil)

	mockWeatherService.EXPECT().
		Latest("/forecast/3/14/4310/11103/").
		Return(record, nil)

	s.DailyForecastHandler(w, r)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var resBody []dailyForecastEntry
	err := json.NewDecoder(w.Result().Body).Decode(&resBody)
	assert.Nil(t, err)
	assert.Len(t, resBody, 1)
	assert.Equal(t, "2023-11-20", resBody[0].Date)
	assert.Equal(t, "sunny", string(resBody[0].Condition))
}
