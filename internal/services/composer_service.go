package services

import (
	"fmt"
	"strings"

	"guidebot/internal/models/kb_models"
	"guidebot/pkg/utils"
)

type ComposerServiceInterface interface {
	FormatPlaces(district string, places []kb_models.Place) string
	FormatEateries(district string, eateries []kb_models.Eatery) string
	FormatRoute(route kb_models.Route) string

	// ChunkForTransport splits text on line boundaries so no chunk exceeds
	// limit runes. A single oversized line becomes its own chunk.
	ChunkForTransport(text string, limit int) []string

	// KeepAnswer reports whether candidate should be sent given the last
	// assistant reply. An exact repeat is suppressed.
	KeepAnswer(candidate, last string) bool
}

type composerService struct{}

func NewComposerService() ComposerServiceInterface {
	return &composerService{}
}

func (s *composerService) FormatPlaces(district string, places []kb_models.Place) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**🏛 Достопримечательности в районе %s:**\n", district)
	for _, p := range places {
		fmt.Fprintf(&b, "\n**%s**\n", p.Name)
		if p.Description != "" {
			fmt.Fprintf(&b, "%s\n", p.Description)
		}
		fmt.Fprintf(&b, "🕒 %s\n", p.OpeningHours)
		fmt.Fprintf(&b, "💰 %s\n", p.Price)
		fmt.Fprintf(&b, "🚇 %s\n", p.Transport)
	}
	return utils.FormatMarkdown(b.String())
}

func (s *composerService) FormatEateries(district string, eateries []kb_models.Eatery) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**🍽 Где поесть в районе %s:**\n", district)
	for _, e := range eateries {
		fmt.Fprintf(&b, "\n**%s**\n", e.Name)
		if e.Cuisine != "" {
			fmt.Fprintf(&b, "🍳 %s\n", e.Cuisine)
		}
		if e.PriceLevel != "" {
			fmt.Fprintf(&b, "💰 %s\n", e.PriceLevel)
		}
		if e.Description != "" {
			fmt.Fprintf(&b, "%s\n", e.Description)
		}
		fmt.Fprintf(&b, "🕒 %s\n", e.OpeningHours)
		if e.Address != "" {
			fmt.Fprintf(&b, "📍 %s\n", e.Address)
		}
		fmt.Fprintf(&b, "🚇 %s\n", e.Transport)
		if len(e.Tags) > 0 {
			fmt.Fprintf(&b, "%s\n", formatTags(e.Tags))
		}
	}
	return utils.FormatMarkdown(b.String())
}

func (s *composerService) FormatRoute(route kb_models.Route) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n", route.Title)
	for _, step := range route.Steps {
		fmt.Fprintf(&b, "\n**%s**\n", step.Time)
		for _, activity := range step.Activities {
			fmt.Fprintf(&b, "• %s\n", activity)
		}
	}
	return utils.FormatMarkdown(b.String())
}

func (s *composerService) ChunkForTransport(text string, limit int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if limit <= 0 || len([]rune(text)) <= limit {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if chunk := strings.TrimSpace(current.String()); chunk != "" {
			chunks = append(chunks, chunk)
		}
		current.Reset()
		currentLen = 0
	}

	for _, line := range strings.Split(text, "\n") {
		lineLen := len([]rune(line))
		added := lineLen
		if currentLen > 0 {
			added++ // newline joining the line to the chunk
		}
		if currentLen+added > limit {
			flush()
		}
		if currentLen > 0 {
			current.WriteByte('\n')
			currentLen++
		}
		current.WriteString(line)
		currentLen += lineLen
	}
	flush()

	return chunks
}

func (s *composerService) KeepAnswer(candidate, last string) bool {
	return strings.TrimSpace(candidate) != strings.TrimSpace(last)
}

func formatTags(tags []string) string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		out = append(out, "#"+strings.ReplaceAll(tag, " ", "_"))
	}
	return strings.Join(out, " ")
}
