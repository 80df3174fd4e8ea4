package api

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/kmorisaki/tenkijp-weather-service/internal/logger"
	"github.com/kmorisaki/tenkijp-weather-service/internal/transport/rest/handler"
)

// Run runs the forecast read API.
func Run(server *handler.WeatherServer) error {
	r := mux.NewRouter()

	r.HandleFunc("/locations", server.RegisterLocationHandler).Methods("POST")
	r.HandleFunc("/weather/current", server.CurrentConditionsHandler).Methods("GET")
	r.HandleFunc("/forecast/daily", server.DailyForecastHandler).Methods("GET")
	r.HandleFunc("/forecast/hourly", server.HourlyForecastHandler).Methods("GET")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		logger.Info(fmt.Sprintf("Defaulting to port %s", port))
	}

	logger.Info(fmt.Sprintf("Starting weather service api at port %s", port))

	options := setupCorsOptions()
	return http.ListenAndServe(":"+port, handlers.CORS(options...)(r))
}
