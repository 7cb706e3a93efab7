package repositories

import (
	"fmt"
	"strings"

	"guidebot/internal/models/kb_models"
	"guidebot/pkg/utils"
)

const (
	defaultHours = "Уточняйте на месте"
	defaultPrice = "Уточняйте на месте"
)

// Diagnostic reports a source record dropped or patched during adaptation.
// Collected instead of logged so the loader decides how noisy to be.
type Diagnostic struct {
	Record string
	Reason string
}

// AdaptFlat converts the flat schema into the normalized knowledge base.
// Records without a usable name are dropped, missing districts are dropped
// too since every lookup is district-keyed.
func AdaptFlat(doc kb_models.FlatDocument) (kb_models.KnowledgeBase, []Diagnostic) {
	var kb kb_models.KnowledgeBase
	var diags []Diagnostic

	for i, s := range doc.Sights {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			diags = append(diags, Diagnostic{Record: fmt.Sprintf("sights[%d]", i), Reason: "missing name"})
			continue
		}
		district := utils.NormalizeDistrict(s.District)
		if district == "" {
			diags = append(diags, Diagnostic{Record: fmt.Sprintf("sights[%d] %q", i, name), Reason: "missing district"})
			continue
		}
		hours := firstNonEmpty(s.OpeningHours, s.OpenHours, defaultHours)
		kb.Places = append(kb.Places, kb_models.Place{
			Name:         name,
			District:     district,
			Description:  strings.TrimSpace(s.Description),
			OpeningHours: hours,
			Price:        firstNonEmpty(s.Price, defaultPrice),
			Transport:    firstNonEmpty(s.Transport, "Район "+district),
		})
	}

	for i, r := range doc.Restaurants {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			diags = append(diags, Diagnostic{Record: fmt.Sprintf("restaurants[%d]", i), Reason: "missing name"})
			continue
		}
		district := utils.NormalizeDistrict(r.District)
		if district == "" {
			diags = append(diags, Diagnostic{Record: fmt.Sprintf("restaurants[%d] %q", i, name), Reason: "missing district"})
			continue
		}
		kb.Eateries = append(kb.Eateries, kb_models.Eatery{
			Name:         name,
			District:     district,
			Cuisine:      strings.TrimSpace(r.Cuisine),
			PriceLevel:   strings.TrimSpace(r.PriceLevel),
			Description:  strings.TrimSpace(r.Description),
			OpeningHours: firstNonEmpty(r.OpeningHours, defaultHours),
			Address:      strings.TrimSpace(r.Address),
			Transport:    firstNonEmpty(r.Transport, "Район "+district),
			Tags:         r.Tags,
		})
	}

	for i, route := range doc.Routes {
		title := strings.TrimSpace(route.Title)
		if title == "" {
			diags = append(diags, Diagnostic{Record: fmt.Sprintf("routes[%d]", i), Reason: "missing title"})
			continue
		}
		var steps []kb_models.RouteStep
		for _, step := range route.Steps {
			if len(step.Activities) == 0 {
				continue
			}
			steps = append(steps, kb_models.RouteStep{
				Time:       strings.TrimSpace(step.Time),
				Activities: step.Activities,
			})
		}
		if len(steps) == 0 {
			diags = append(diags, Diagnostic{Record: fmt.Sprintf("routes[%d] %q", i, title), Reason: "no usable steps"})
			continue
		}
		kb.Routes = append(kb.Routes, kb_models.Route{Title: title, Steps: steps})
	}

	return kb, diags
}

// AdaptRelational converts the id-referenced schema. Route templates are
// flattened into presentation-ready activity lines; steps referencing only
// unknown ids collapse and routes left with no steps are dropped.
func AdaptRelational(doc kb_models.RelationalDocument) (kb_models.KnowledgeBase, []Diagnostic) {
	var kb kb_models.KnowledgeBase
	var diags []Diagnostic

	placesByID := make(map[string]kb_models.Place)
	for i, p := range doc.Places {
		name := strings.TrimSpace(firstNonEmpty(p.NameRU, p.Name))
		if name == "" {
			diags = append(diags, Diagnostic{Record: fmt.Sprintf("places[%d] id=%s", i, p.ID), Reason: "missing name"})
			continue
		}
		district := utils.NormalizeDistrict(p.District)
		if district == "" {
			diags = append(diags, Diagnostic{Record: fmt.Sprintf("places[%d] %q", i, name), Reason: "missing district"})
			continue
		}
		description := strings.TrimSpace(p.Description)
		if description == "" && len(p.Highlights) > 0 {
			description = strings.Join(p.Highlights, ". ")
		}
		price := defaultPrice
		if strings.EqualFold(strings.TrimSpace(p.Category), "мечеть") {
			price = "Бесплатно"
		}
		place := kb_models.Place{
			ID:           p.ID,
			Name:         name,
			District:     district,
			Description:  description,
			OpeningHours: firstNonEmpty(p.Visiting.Hours, defaultHours),
			Price:        price,
			Transport:    "Район " + district,
		}
		kb.Places = append(kb.Places, place)
		if p.ID != "" {
			placesByID[p.ID] = place
		}
	}

	eateriesByID := make(map[string]kb_models.Eatery)
	for i, f := range doc.Food {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			diags = append(diags, Diagnostic{Record: fmt.Sprintf("food[%d] id=%s", i, f.ID), Reason: "missing name"})
			continue
		}
		district := utils.NormalizeDistrict(f.District)
		if district == "" {
			diags = append(diags, Diagnostic{Record: fmt.Sprintf("food[%d] %q", i, name), Reason: "missing district"})
			continue
		}
		eatery := kb_models.Eatery{
			ID:           f.ID,
			Name:         name,
			District:     district,
			Cuisine:      strings.TrimSpace(f.Cuisine),
			PriceLevel:   strings.TrimSpace(f.PriceLevel),
			Description:  strings.TrimSpace(f.Description),
			OpeningHours: firstNonEmpty(f.OpeningHours, defaultHours),
			Address:      strings.TrimSpace(f.Address),
			Transport:    "Район " + district,
			Tags:         f.Tags,
		}
		kb.Eateries = append(kb.Eateries, eatery)
		if f.ID != "" {
			eateriesByID[f.ID] = eatery
		}
	}

	for i, tpl := range doc.RouteTemplates {
		title := strings.TrimSpace(tpl.Title)
		if title == "" {
			diags = append(diags, Diagnostic{Record: fmt.Sprintf("route_templates[%d] id=%s", i, tpl.ID), Reason: "missing title"})
			continue
		}
		route, stepDiags := expandRouteTemplate(tpl, placesByID, eateriesByID)
		diags = append(diags, stepDiags...)
		if len(route.Steps) == 0 {
			diags = append(diags, Diagnostic{Record: fmt.Sprintf("route_templates[%d] %q", i, title), Reason: "no resolvable steps"})
			continue
		}
		kb.Routes = append(kb.Routes, route)
	}

	return kb, diags
}

func expandRouteTemplate(tpl kb_models.RouteTemplate, places map[string]kb_models.Place, eateries map[string]kb_models.Eatery) (kb_models.Route, []Diagnostic) {
	var diags []Diagnostic
	route := kb_models.Route{Title: strings.TrimSpace(tpl.Title)}

	// The districts of all resolved stops anchor the eatery qualifier below:
	// an eatery only gets the travel note when the step never visits its
	// district at all.
	for _, step := range tpl.Steps {
		var activities []string
		stepDistricts := make(map[string]struct{})

		for _, id := range step.StopIDs {
			place, ok := places[id]
			if !ok {
				diags = append(diags, Diagnostic{Record: fmt.Sprintf("route %q stop %q", tpl.Title, id), Reason: "unknown place id"})
				continue
			}
			stepDistricts[place.District] = struct{}{}
			activities = append(activities, "Посещение "+place.Name)
		}

		for _, id := range step.FoodIDs {
			eatery, ok := eateries[id]
			if !ok {
				diags = append(diags, Diagnostic{Record: fmt.Sprintf("route %q food %q", tpl.Title, id), Reason: "unknown eatery id"})
				continue
			}
			line := "🍽 Обед/ужин в " + eatery.Name
			if _, visited := stepDistricts[eatery.District]; len(stepDistricts) > 0 && !visited {
				line += fmt.Sprintf(" (нужно проехать в район %s)", eatery.District)
			}
			activities = append(activities, line)
		}

		for _, note := range step.Notes {
			if note = strings.TrimSpace(note); note != "" {
				activities = append(activities, "💡 "+note)
			}
		}

		if len(activities) == 0 {
			continue
		}

		timeLabel := strings.TrimSpace(step.TimeBlock)
		if step.Day > 0 {
			timeLabel = fmt.Sprintf("День %d — %s", step.Day, timeLabel)
		}
		route.Steps = append(route.Steps, kb_models.RouteStep{
			Time:       timeLabel,
			Activities: activities,
		})
	}

	return route, diags
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
