package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const (
	openWeatherBaseURL = "https://api.openweathermap.org/data/2.5"
	weatherTimeout     = 5 * time.Second
)

type WeatherClientInterface interface {
	CurrentWeather(ctx context.Context, city string) (string, error)
	Forecast(ctx context.Context, city string, days int) (string, error)
}

// OpenWeatherClient talks to the OpenWeather REST API. It returns short
// human-readable Russian summaries; every failure collapses into
// ErrWeatherUnavailable so callers only branch on success/failure.
type OpenWeatherClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewOpenWeatherClient(apiKey string) WeatherClientInterface {
	return &OpenWeatherClient{
		apiKey:     apiKey,
		baseURL:    openWeatherBaseURL,
		httpClient: &http.Client{Timeout: weatherTimeout},
	}
}

type weatherEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

func (c *OpenWeatherClient) CurrentWeather(ctx context.Context, city string) (string, error) {
	if c.apiKey == "" {
		log.Println("OPENWEATHER_API_KEY is not set, weather is unavailable")
		return "", ErrWeatherUnavailable
	}

	var entry weatherEntry
	if err := c.get(ctx, "/weather", city, &entry); err != nil {
		return "", err
	}

	if len(entry.Weather) == 0 {
		return "", ErrWeatherUnavailable
	}

	return fmt.Sprintf("Сейчас в %s %.1f°C, %s.", city, entry.Main.Temp, entry.Weather[0].Description), nil
}

func (c *OpenWeatherClient) Forecast(ctx context.Context, city string, days int) (string, error) {
	if c.apiKey == "" {
		log.Println("OPENWEATHER_API_KEY is not set, forecast is unavailable")
		return "", ErrWeatherUnavailable
	}

	var payload struct {
		List []weatherEntry `json:"list"`
	}
	if err := c.get(ctx, "/forecast", city, &payload); err != nil {
		return "", err
	}
	if len(payload.List) == 0 {
		return "", ErrWeatherUnavailable
	}

	// The API returns 3-hour slices; fold them into per-day averages.
	byDay := make(map[string][]weatherEntry)
	for _, entry := range payload.List {
		day := DayKey(entry.Dt)
		byDay[day] = append(byDay[day], entry)
	}

	dayKeys := make([]string, 0, len(byDay))
	for day := range byDay {
		dayKeys = append(dayKeys, day)
	}
	sort.Strings(dayKeys)

	var lines []string
	for i, day := range dayKeys {
		if i >= days {
			break
		}
		entries := byDay[day]
		sum := 0.0
		for _, e := range entries {
			sum += e.Main.Temp
		}
		desc := ""
		if len(entries[0].Weather) > 0 {
			desc = entries[0].Weather[0].Description
		}
		lines = append(lines, fmt.Sprintf("%s: %.1f°C, %s", day, sum/float64(len(entries)), desc))
	}

	if len(lines) == 0 {
		return "", ErrWeatherUnavailable
	}
	return strings.Join(lines, "\n"), nil
}

func (c *OpenWeatherClient) get(ctx context.Context, path, city string, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, weatherTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	params.Set("lang", "ru")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		log.Printf("Weather request build failed for %s: %v", city, err)
		return ErrWeatherUnavailable
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("Weather request failed for %s: %v", city, err)
		return ErrWeatherUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Weather API error: status=%d, city=%s", resp.StatusCode, city)
		return ErrWeatherUnavailable
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Printf("Weather response decode failed for %s: %v", city, err)
		return ErrWeatherUnavailable
	}

	return nil
}
