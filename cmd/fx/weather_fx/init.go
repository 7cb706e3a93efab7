package weather_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"guidebot/pkg/utils"
)

var Module = fx.Provide(provideWeatherClient)

// provideWeatherClient builds the OpenWeather client. A missing key only
// degrades weather answers at request time, so it is a warning here.
func provideWeatherClient() utils.WeatherClientInterface {
	apiKey := os.Getenv("OPENWEATHER_API_KEY")
	if apiKey == "" {
		log.Println("OPENWEATHER_API_KEY is not set, weather answers will be unavailable")
	}
	return utils.NewOpenWeatherClient(apiKey)
}
