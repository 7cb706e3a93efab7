package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guidebot/internal/models/kb_models"
)

func TestAdaptFlatDropsUnusableRecords(t *testing.T) {
	doc := kb_models.FlatDocument{
		Sights: []kb_models.FlatSight{
			{Name: "Галатская башня", District: "Каракёй"},
			{Name: "", District: "Фатих"},
			{Name: "Безымянный музей"},
		},
	}

	kb, diags := AdaptFlat(doc)

	require.Len(t, kb.Places, 1)
	assert.Equal(t, "Галатская башня", kb.Places[0].Name)
	require.Len(t, diags, 2)
	assert.Equal(t, "missing name", diags[0].Reason)
	assert.Equal(t, "missing district", diags[1].Reason)
}

func TestAdaptFlatAppliesDefaults(t *testing.T) {
	doc := kb_models.FlatDocument{
		Sights: []kb_models.FlatSight{
			{Name: "Галатская башня", District: "каракёй"},
		},
	}

	kb, _ := AdaptFlat(doc)

	require.Len(t, kb.Places, 1)
	place := kb.Places[0]
	assert.Equal(t, "Каракёй", place.District)
	assert.Equal(t, "Уточняйте на месте", place.OpeningHours)
	assert.Equal(t, "Уточняйте на месте", place.Price)
	assert.Equal(t, "Район Каракёй", place.Transport)
}

func TestAdaptFlatHonorsLegacyHoursField(t *testing.T) {
	doc := kb_models.FlatDocument{
		Sights: []kb_models.FlatSight{
			{Name: "Цистерна Базилика", District: "Фатих", OpenHours: "09:00-18:00"},
		},
	}

	kb, _ := AdaptFlat(doc)

	require.Len(t, kb.Places, 1)
	assert.Equal(t, "09:00-18:00", kb.Places[0].OpeningHours)
}

func TestAdaptFlatDropsRoutesWithoutSteps(t *testing.T) {
	doc := kb_models.FlatDocument{
		Routes: []kb_models.FlatRoute{
			{Title: "Пустой маршрут"},
			{Title: "Нормальный маршрут", Steps: []kb_models.FlatRouteStep{
				{Time: "Утро", Activities: []string{"Завтрак"}},
			}},
		},
	}

	kb, diags := AdaptFlat(doc)

	require.Len(t, kb.Routes, 1)
	assert.Equal(t, "Нормальный маршрут", kb.Routes[0].Title)
	require.Len(t, diags, 1)
	assert.Equal(t, "no usable steps", diags[0].Reason)
}

func relationalFixture() kb_models.RelationalDocument {
	return kb_models.RelationalDocument{
		Places: []kb_models.RelationalPlace{
			{
				ID: "hagia", Name: "Hagia Sophia", NameRU: "Айя-София",
				District: "Фатих", Category: "мечеть",
				Highlights: []string{"Византийские мозаики", "Купол"},
			},
		},
		Food: []kb_models.RelationalFood{
			{ID: "lokanta", Name: "Karaköy Lokantası", District: "Каракёй", Cuisine: "турецкая"},
		},
		RouteTemplates: []kb_models.RouteTemplate{
			{
				ID: "classic", Title: "Стамбул за 1 день",
				Steps: []kb_models.TemplateStep{
					{
						Day: 1, TimeBlock: "Утро",
						StopIDs: []string{"hagia", "ghost"},
						FoodIDs: []string{"lokanta"},
						Notes:   []string{"Берите воду"},
					},
				},
			},
		},
	}
}

func TestAdaptRelational(t *testing.T) {
	kb, diags := AdaptRelational(relationalFixture())

	require.Len(t, kb.Places, 1)
	place := kb.Places[0]
	assert.Equal(t, "Айя-София", place.Name)
	assert.Equal(t, "Бесплатно", place.Price)
	assert.Equal(t, "Византийские мозаики. Купол", place.Description)

	require.Len(t, kb.Routes, 1)
	route := kb.Routes[0]
	require.Len(t, route.Steps, 1)
	assert.Equal(t, "День 1 — Утро", route.Steps[0].Time)
	assert.Equal(t, []string{
		"Посещение Айя-София",
		"🍽 Обед/ужин в Karaköy Lokantası (нужно проехать в район Каракёй)",
		"💡 Берите воду",
	}, route.Steps[0].Activities)

	// The dangling stop id is reported, not fatal.
	require.Len(t, diags, 1)
	assert.Equal(t, "unknown place id", diags[0].Reason)
}

func TestAdaptRelationalOmitsQualifierWithinDistrict(t *testing.T) {
	doc := relationalFixture()
	doc.Food[0].District = "Фатих"

	kb, _ := AdaptRelational(doc)

	require.Len(t, kb.Routes, 1)
	assert.Contains(t, kb.Routes[0].Steps[0].Activities, "🍽 Обед/ужин в Karaköy Lokantası")
}

func TestAdaptRelationalQualifierChecksAllStopDistricts(t *testing.T) {
	doc := relationalFixture()
	doc.Places = append(doc.Places, kb_models.RelationalPlace{
		ID: "tower", Name: "Galata Tower", NameRU: "Галатская башня", District: "Каракёй",
	})
	doc.RouteTemplates[0].Steps = []kb_models.TemplateStep{
		{
			Day: 1, TimeBlock: "Утро",
			StopIDs: []string{"hagia", "tower"},
			FoodIDs: []string{"lokanta"},
		},
	}

	kb, _ := AdaptRelational(doc)

	// The eatery's district is among the step's stops, so eating there
	// requires no extra travel even though the first stop is elsewhere.
	require.Len(t, kb.Routes, 1)
	assert.Contains(t, kb.Routes[0].Steps[0].Activities, "🍽 Обед/ужин в Karaköy Lokantası")
}

func TestAdaptRelationalNoQualifierWithoutStops(t *testing.T) {
	doc := relationalFixture()
	doc.RouteTemplates[0].Steps = []kb_models.TemplateStep{
		{Day: 1, TimeBlock: "Обед", FoodIDs: []string{"lokanta"}},
	}

	kb, _ := AdaptRelational(doc)

	require.Len(t, kb.Routes, 1)
	assert.Equal(t, []string{"🍽 Обед/ужин в Karaköy Lokantası"}, kb.Routes[0].Steps[0].Activities)
}

func TestAdaptRelationalDropsRouteWithOnlyDanglingRefs(t *testing.T) {
	doc := relationalFixture()
	doc.RouteTemplates[0].Steps = []kb_models.TemplateStep{
		{Day: 1, TimeBlock: "Утро", StopIDs: []string{"ghost"}},
	}

	kb, diags := AdaptRelational(doc)

	assert.Empty(t, kb.Routes)
	reasons := make([]string, 0, len(diags))
	for _, d := range diags {
		reasons = append(reasons, d.Reason)
	}
	assert.Contains(t, reasons, "unknown place id")
	assert.Contains(t, reasons, "no resolvable steps")
}
