package repositories

import (
	"sort"
	"strings"

	"guidebot/internal/models/kb_models"
	"guidebot/pkg/utils"
)

const (
	KindSights      = "sights"
	KindRestaurants = "restaurants"
)

// routeDurationVocab maps a day count to the title fragments that identify it.
// A title matches a duration when it contains any fragment, case-insensitive.
var routeDurationVocab = map[int][]string{
	1: {"1 день", "один день", "классика"},
	2: {"2 дня", "два дня"},
	3: {"3 дня", "три дня"},
}

type KnowledgeRepository interface {
	// Available reports whether the knowledge base loaded with any content.
	// Callers must check it before lookups; an unavailable repository
	// returns empty results, not errors.
	Available() bool

	FindPlacesByDistrict(district string) []kb_models.Place
	FindEateriesByDistrict(district string) []kb_models.Eatery

	// Districts returns the sorted distinct districts carrying records of
	// the given kind, or of any kind when kind is empty.
	Districts(kind string) []string

	FindRouteByDuration(days int) (kb_models.Route, error)
}

type inMemoryKnowledgeRepository struct {
	kb        kb_models.KnowledgeBase
	available bool
}

func NewKnowledgeRepository(kb kb_models.KnowledgeBase) KnowledgeRepository {
	return &inMemoryKnowledgeRepository{
		kb:        kb,
		available: len(kb.Places) > 0 || len(kb.Eateries) > 0,
	}
}

// NewUnavailableKnowledgeRepository stands in when no source document could
// be loaded, so the rest of the app degrades instead of crashing.
func NewUnavailableKnowledgeRepository() KnowledgeRepository {
	return &inMemoryKnowledgeRepository{}
}

func (r *inMemoryKnowledgeRepository) Available() bool {
	return r.available
}

func (r *inMemoryKnowledgeRepository) FindPlacesByDistrict(district string) []kb_models.Place {
	key := utils.NormalizeDistrict(district)
	var out []kb_models.Place
	for _, p := range r.kb.Places {
		if strings.EqualFold(p.District, key) {
			out = append(out, p)
		}
	}
	return out
}

func (r *inMemoryKnowledgeRepository) FindEateriesByDistrict(district string) []kb_models.Eatery {
	key := utils.NormalizeDistrict(district)
	var out []kb_models.Eatery
	for _, e := range r.kb.Eateries {
		if strings.EqualFold(e.District, key) {
			out = append(out, e)
		}
	}
	return out
}

func (r *inMemoryKnowledgeRepository) Districts(kind string) []string {
	seen := make(map[string]struct{})
	if kind == "" || kind == KindSights {
		for _, p := range r.kb.Places {
			seen[p.District] = struct{}{}
		}
	}
	if kind == "" || kind == KindRestaurants {
		for _, e := range r.kb.Eateries {
			seen[e.District] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

func (r *inMemoryKnowledgeRepository) FindRouteByDuration(days int) (kb_models.Route, error) {
	fragments, ok := routeDurationVocab[days]
	if !ok {
		return kb_models.Route{}, utils.ErrRouteNotFound
	}

	// Among matching routes prefer the full variant over a "лайтовый" one;
	// the light route is only returned when nothing else matches.
	var fallback *kb_models.Route
	for i := range r.kb.Routes {
		route := r.kb.Routes[i]
		title := strings.ToLower(route.Title)
		if !containsAny(title, fragments) {
			continue
		}
		if strings.Contains(title, "лайтовый") {
			if fallback == nil {
				fallback = &route
			}
			continue
		}
		return route, nil
	}
	if fallback != nil {
		return *fallback, nil
	}
	return kb_models.Route{}, utils.ErrRouteNotFound
}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}
