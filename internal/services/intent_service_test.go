package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guidebot/internal/models/kb_models"
	"guidebot/internal/repositories"
)

func intentFixture() IntentServiceInterface {
	repo := repositories.NewKnowledgeRepository(kb_models.KnowledgeBase{
		Places: []kb_models.Place{
			{Name: "Галатская башня", District: "Каракёй"},
			{Name: "Айя-София", District: "Фатих"},
		},
		Eateries: []kb_models.Eatery{
			{Name: "Karaköy Lokantası", District: "Каракёй"},
		},
	})
	return NewIntentService(repo)
}

func TestClassifyWeatherNow(t *testing.T) {
	svc := intentFixture()

	intent := svc.Classify("какая погода в Стамбуле?")

	assert.Equal(t, IntentWeatherNow, intent.Kind)
	assert.Equal(t, "Istanbul", intent.City)
}

func TestClassifyWeatherForecast(t *testing.T) {
	svc := intentFixture()

	intent := svc.Classify("прогноз погоды в Москве на 3 дня")

	assert.Equal(t, IntentWeatherForecast, intent.Kind)
	assert.Equal(t, "Москва", intent.City)
	assert.Equal(t, 3, intent.Days)
}

func TestClassifyWeatherWinsOverLookup(t *testing.T) {
	svc := intentFixture()

	// Mentions a known district, but the weather pattern takes priority.
	intent := svc.Classify("погода в Стамбуле, потом посмотреть Фатих")

	assert.Equal(t, IntentWeatherNow, intent.Kind)
}

func TestClassifyKnowledgeLookup(t *testing.T) {
	svc := intentFixture()

	intent := svc.Classify("что посмотреть в районе Фатих в Стамбуле")

	require.Equal(t, IntentKnowledgeLookup, intent.Kind)
	assert.Equal(t, []string{"Фатих"}, intent.Districts)
	assert.Equal(t, repositories.KindSights, intent.Lookup)
}

func TestClassifyLookupKindRestaurants(t *testing.T) {
	svc := intentFixture()

	intent := svc.Classify("где поесть в Каракёй, Стамбул")

	require.Equal(t, IntentKnowledgeLookup, intent.Kind)
	assert.Equal(t, []string{"Каракёй"}, intent.Districts)
	assert.Equal(t, repositories.KindRestaurants, intent.Lookup)
}

func TestClassifyDistrictWithoutGuideKeyword(t *testing.T) {
	svc := intentFixture()

	// A district mention alone is not enough to short-circuit the model.
	intent := svc.Classify("расскажи про Фатих")

	assert.Equal(t, IntentOpenEnded, intent.Kind)
}

func TestClassifyOpenEnded(t *testing.T) {
	svc := intentFixture()

	assert.Equal(t, IntentOpenEnded, svc.Classify("привет, как дела?").Kind)
	assert.Equal(t, IntentOpenEnded, svc.Classify("").Kind)

	// Weather words without a city phrase stay conversational.
	assert.Equal(t, IntentOpenEnded, svc.Classify("какая сейчас погода?").Kind)
}

func TestClassifyWithUnavailableKnowledgeBase(t *testing.T) {
	svc := NewIntentService(repositories.NewUnavailableKnowledgeRepository())

	// No known districts means guide questions degrade to the model.
	intent := svc.Classify("что посмотреть в районе Фатих в Стамбуле")

	assert.Equal(t, IntentOpenEnded, intent.Kind)
}
