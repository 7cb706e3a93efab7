package services

import (
	"regexp"
	"strings"

	"guidebot/internal/repositories"
	"guidebot/pkg/utils"
)

type IntentKind int

const (
	IntentOpenEnded IntentKind = iota
	IntentWeatherNow
	IntentWeatherForecast
	IntentKnowledgeLookup
)

// Intent is the classifier's verdict for one user message. Fields beyond
// Kind are only meaningful for the kind that sets them.
type Intent struct {
	Kind      IntentKind
	City      string   // weather intents
	Days      int      // forecast horizon
	Districts []string // knowledge lookups, normalized
	Lookup    string   // repositories.KindSights, KindRestaurants or "" for both
}

var (
	weatherTriggerRe  = regexp.MustCompile(`(?i)(температура|погода|прогноз).*?(?:в|по|для)\s+[а-яА-ЯёЁa-zA-Z]`)
	forecastTriggerRe = regexp.MustCompile(`(?i)(на\s*3\s*дня|на\s*три\s*дня|прогноз)`)
)

// Domain keywords that mark a message as guide territory. A lookup intent
// additionally needs at least one known district mentioned; keywords alone
// fall through to the conversational model.
var guideKeywords = []string{
	"стамбул",
	"istanbul",
	"гид по стамбулу",
	"маршрут",
	"турция",
	"что посмотреть",
}

var restaurantKeywords = []string{"ресторан", "поесть", "еда", "кафе", "завтрак", "обед", "ужин"}

var sightKeywords = []string{"достопримечательност", "посмотреть", "музе", "дворец", "мечет"}

type IntentServiceInterface interface {
	Classify(text string) Intent
}

type intentService struct {
	knowledgeRepo repositories.KnowledgeRepository
}

func NewIntentService(knowledgeRepo repositories.KnowledgeRepository) IntentServiceInterface {
	return &intentService{knowledgeRepo: knowledgeRepo}
}

// Classify picks exactly one intent. Weather wins over knowledge lookups
// when both patterns match, so "погода в Стамбуле" never turns into a
// district listing.
func (s *intentService) Classify(text string) Intent {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return Intent{Kind: IntentOpenEnded}
	}

	if weatherTriggerRe.MatchString(lower) {
		if city := utils.ExtractCityMention(text); city != "" {
			intent := Intent{Kind: IntentWeatherNow, City: utils.NormalizeCityName(city)}
			if forecastTriggerRe.MatchString(lower) {
				intent.Kind = IntentWeatherForecast
				intent.Days = 3
			}
			return intent
		}
	}

	if districts := s.mentionedDistricts(lower); len(districts) > 0 && containsAnyKeyword(lower, guideKeywords) {
		return Intent{
			Kind:      IntentKnowledgeLookup,
			Districts: districts,
			Lookup:    lookupKind(lower),
		}
	}

	return Intent{Kind: IntentOpenEnded}
}

// mentionedDistricts scans the message for district names known to the
// knowledge base. With the base unavailable the list is empty and every
// message classifies as open-ended, which is the intended degradation.
func (s *intentService) mentionedDistricts(lower string) []string {
	var out []string
	for _, district := range s.knowledgeRepo.Districts("") {
		if strings.Contains(lower, strings.ToLower(district)) {
			out = append(out, district)
		}
	}
	return out
}

func lookupKind(lower string) string {
	wantsFood := containsAnyKeyword(lower, restaurantKeywords)
	wantsSights := containsAnyKeyword(lower, sightKeywords)
	switch {
	case wantsFood && !wantsSights:
		return repositories.KindRestaurants
	case wantsSights && !wantsFood:
		return repositories.KindSights
	default:
		return ""
	}
}

func containsAnyKeyword(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
