package utils

import (
	"regexp"
	"strings"
	"unicode"
)

// Colloquial and foreign city forms that the suffix rules below cannot
// recover. Keys are lower-cased user input, values are canonical names.
var citySpecialCases = map[string]string{
	"нижнем":           "Нижний Новгород",
	"нижнем новгороде": "Нижний Новгород",
	"нижний новгород":  "Нижний Новгород",
	"санкт-петербурге": "Санкт-Петербург",
	"санкт-петербург":  "Санкт-Петербург",
	"питере":           "Санкт-Петербург",
	"питер":            "Санкт-Петербург",
	"ростове-на-дону":  "Ростов-на-Дону",
	"ростов-на-дону":   "Ростов-на-Дону",
	"нью-йорке":        "New York",
	"мюнхене":          "Munich",
	"лондоне":          "London",
	"париже":           "Paris",
	"берлине":          "Berlin",
	"варшаве":          "Warsaw",
	"барселоне":        "Barcelona",
	"istanbul":         "Istanbul",
	"стамбуле":         "Istanbul",
	"стамбул":          "Istanbul",
}

// Prepositions and fillers skipped during city lemmatization.
var cityFunctionWords = map[string]bool{
	"на": true, "в": true, "по": true, "для": true, "-": true,
}

// Best-effort rewrite of a prepositional-case ending back to nominative.
// Tried in order, first match wins. This is a heuristic, not a grammar:
// unknown forms fall through to title-casing in NormalizeCityName.
var cityLemmaRules = []struct {
	suffix string
	repl   string
}{
	{"ии", "ия"}, // Турции -> Турция
	{"ве", "ва"}, // Москве -> Москва
	{"ре", "ра"}, // Анкаре -> Анкара
	{"ни", "нь"}, // Казани -> Казань
	{"е", ""},    // Белграде -> Белград
}

var (
	cityMentionRe       = regexp.MustCompile(`(?i)(?:^|[\s,])(?:в|по|для)\s+([а-яА-ЯёЁa-zA-Z\- ]+)`)
	// \b is ASCII-only in RE2 and never fires after a Cyrillic word, so the
	// word end is guarded with an explicit space-or-end alternative.
	trailingQualifierRe = regexp.MustCompile(`(?i)\s+(сегодня|завтра|сейчас|погода|температура|прогноз)(?:\s.*)?$`)
	trailingDaySpanRe   = regexp.MustCompile(`(?i)\s+на\s+(\d+|три|ближайшие)(?:\s.*)?$`)
	trailingFunctionRe  = regexp.MustCompile(`(?i)\s+(на|в|по|для)\s*$`)
)

// NormalizeDistrict canonicalizes a district name into its lookup key:
// trimmed, internal whitespace collapsed, every word title-cased.
// Idempotent, so it is safe to apply both at load time and on user input.
func NormalizeDistrict(district string) string {
	district = strings.TrimSpace(district)
	if district == "" {
		return ""
	}
	words := strings.Fields(district)
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

// NormalizeCityName resolves a free-text city mention to a canonical display
// form: special-case table first, then per-word suffix lemmatization for
// Cyrillic input, then plain title-casing. Never fails.
func NormalizeCityName(city string) string {
	city = strings.TrimSpace(city)
	if city == "" {
		return city
	}

	if canonical, ok := citySpecialCases[strings.ToLower(city)]; ok {
		return canonical
	}

	if containsCyrillic(city) {
		var normalized []string
		for _, word := range strings.Fields(city) {
			if cityFunctionWords[strings.ToLower(word)] {
				continue
			}
			lemma := lemmatizeCityWord(strings.ToLower(word))
			if isUpperRune(word) {
				lemma = titleWord(lemma)
			}
			normalized = append(normalized, lemma)
		}
		if len(normalized) > 0 {
			return strings.Join(normalized, " ")
		}
	}

	return titlePhrase(city)
}

// ExtractCityMention pulls the city name out of a phrase already known to be
// weather-related: prepositional capture first, last-tokens fallback second.
func ExtractCityMention(phrase string) string {
	phrase = strings.TrimSpace(phrase)

	if m := cityMentionRe.FindStringSubmatch(phrase); m != nil {
		city := strings.TrimSpace(m[1])
		city = trailingDaySpanRe.ReplaceAllString(city, "")
		city = trailingQualifierRe.ReplaceAllString(city, "")
		city = trailingFunctionRe.ReplaceAllString(city, "")
		city = strings.TrimSpace(city)
		if city != "" {
			return city
		}
	}

	words := strings.Fields(phrase)
	if len(words) >= 2 {
		return strings.Join(words[len(words)-2:], " ")
	}
	return phrase
}

func lemmatizeCityWord(word string) string {
	for _, rule := range cityLemmaRules {
		if strings.HasSuffix(word, rule.suffix) && len([]rune(word)) > len([]rune(rule.suffix))+1 {
			return strings.TrimSuffix(word, rule.suffix) + rule.repl
		}
	}
	return word
}

func containsCyrillic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Cyrillic, r) {
			return true
		}
	}
	return false
}

func isUpperRune(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

func titleWord(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func titlePhrase(phrase string) string {
	words := strings.Fields(phrase)
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}
