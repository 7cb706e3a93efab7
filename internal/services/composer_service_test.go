package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guidebot/internal/models/kb_models"
)

func TestFormatPlaces(t *testing.T) {
	svc := NewComposerService()

	out := svc.FormatPlaces("Каракёй", []kb_models.Place{
		{
			Name:         "Галатская башня",
			Description:  "Смотровая площадка над Босфором",
			OpeningHours: "09:00-20:00",
			Price:        "30 евро",
			Transport:    "Район Каракёй",
		},
	})

	assert.True(t, strings.HasPrefix(out, "**🏛 Достопримечательности в районе Каракёй:**"))
	assert.Contains(t, out, "**Галатская башня**")
	assert.Contains(t, out, "🕒 09:00-20:00")
	assert.Contains(t, out, "💰 30 евро")
	assert.Contains(t, out, "🚇 Район Каракёй")
}

func TestFormatEateriesSkipsEmptyFieldsAndTags(t *testing.T) {
	svc := NewComposerService()

	out := svc.FormatEateries("Каракёй", []kb_models.Eatery{
		{
			Name:         "Karaköy Lokantası",
			Cuisine:      "турецкая",
			OpeningHours: "12:00-23:00",
			Tags:         []string{"морепродукты", "вид на Босфор"},
		},
	})

	assert.Contains(t, out, "**Karaköy Lokantası**")
	assert.Contains(t, out, "🍳 турецкая")
	assert.Contains(t, out, "#морепродукты #вид_на_Босфор")
	assert.NotContains(t, out, "📍")
	assert.NotContains(t, out, "💰")
}

func TestFormatRoute(t *testing.T) {
	svc := NewComposerService()

	out := svc.FormatRoute(kb_models.Route{
		Title: "Стамбул за 1 день",
		Steps: []kb_models.RouteStep{
			{Time: "Утро", Activities: []string{"Посещение Айя-София", "💡 Берите воду"}},
		},
	})

	assert.True(t, strings.HasPrefix(out, "**Стамбул за 1 день**"))
	assert.Contains(t, out, "**Утро**")
	assert.Contains(t, out, "• Посещение Айя-София")
	assert.Contains(t, out, "• 💡 Берите воду")
}

func TestChunkForTransportSplitsOnLines(t *testing.T) {
	svc := NewComposerService()

	chunks := svc.ChunkForTransport("aaaa\nbbbb\ncccc", 9)

	require.Equal(t, []string{"aaaa\nbbbb", "cccc"}, chunks)
}

func TestChunkForTransportShortTextIsSingleChunk(t *testing.T) {
	svc := NewComposerService()

	assert.Equal(t, []string{"короткий текст"}, svc.ChunkForTransport("короткий текст", 3500))
	assert.Nil(t, svc.ChunkForTransport("   ", 3500))
}

func TestChunkForTransportOversizedLineKeptWhole(t *testing.T) {
	svc := NewComposerService()

	long := strings.Repeat("я", 20)
	chunks := svc.ChunkForTransport("раз\n"+long+"\nдва", 10)

	require.Equal(t, []string{"раз", long, "два"}, chunks)
}

func TestChunkForTransportPreservesContent(t *testing.T) {
	svc := NewComposerService()

	text := strings.TrimSpace(strings.Repeat("строка текста\n", 40))
	chunks := svc.ChunkForTransport(text, 100)

	require.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len([]rune(chunk)), 100)
	}
	assert.Equal(t, text, strings.Join(chunks, "\n"))
}

func TestKeepAnswer(t *testing.T) {
	svc := NewComposerService()

	assert.False(t, svc.KeepAnswer("ответ", "ответ"))
	assert.False(t, svc.KeepAnswer("  ответ  ", "ответ"))
	assert.True(t, svc.KeepAnswer("другой ответ", "ответ"))
	assert.True(t, svc.KeepAnswer("ответ", ""))
}
