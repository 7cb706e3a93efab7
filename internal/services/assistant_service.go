package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"guidebot/internal/repositories"
	mem "guidebot/pkg/memcache"
	"guidebot/pkg/utils"
)

const (
	// historyWindow is how many recent turns accompany a completion request.
	historyWindow = 4

	// transportChunkLimit is the per-message size ceiling of the delivery
	// channel the answers are written for.
	transportChunkLimit = 3500
)

const (
	msgKnowledgeUnavailable = "База данных гида временно недоступна. Попробуйте позже."
	msgWeatherFailed        = "Не удалось получить данные о погоде. Проверьте название города."
	msgForecastFailed       = "Не удалось получить прогноз погоды. Проверьте название города."
	msgCompletionFailed     = "⚠️ Произошла ошибка при обработке запроса."
)

type AssistantServiceInterface interface {
	// Answer resolves one user message into zero or more reply chunks.
	// A suppressed duplicate reply yields an empty slice and no error.
	Answer(ctx context.Context, userID, text string) ([]string, error)

	RouteByDuration(days int) (string, error)
	PlacesByDistrict(district string) (string, error)
	EateriesByDistrict(district string) (string, error)
	Districts(kind string) ([]string, error)

	Reset(userID string)
}

type assistantService struct {
	intents       IntentServiceInterface
	composer      ComposerServiceInterface
	knowledgeRepo repositories.KnowledgeRepository
	conversations mem.ConversationStore
	weather       utils.WeatherClientInterface
	completions   utils.CompletionClientInterface
}

func NewAssistantService(
	intents IntentServiceInterface,
	composer ComposerServiceInterface,
	knowledgeRepo repositories.KnowledgeRepository,
	conversations mem.ConversationStore,
	weather utils.WeatherClientInterface,
	completions utils.CompletionClientInterface,
) AssistantServiceInterface {
	return &assistantService{
		intents:       intents,
		composer:      composer,
		knowledgeRepo: knowledgeRepo,
		conversations: conversations,
		weather:       weather,
		completions:   completions,
	}
}

func (s *assistantService) Answer(ctx context.Context, userID, text string) ([]string, error) {
	userID = strings.TrimSpace(userID)
	text = strings.TrimSpace(text)
	if userID == "" || text == "" {
		return nil, utils.ErrInvalidInput
	}

	intent := s.intents.Classify(text)

	var reply string
	switch intent.Kind {
	case IntentWeatherNow:
		reply = s.answerWeatherNow(ctx, intent.City)
	case IntentWeatherForecast:
		reply = s.answerWeatherForecast(ctx, intent.City, intent.Days)
	case IntentKnowledgeLookup:
		reply = s.answerLookup(intent)
	default:
		return s.answerConversational(ctx, userID, text)
	}

	// Deterministic answers skip the conversation window and the repetition
	// guard: they are legitimately repeatable and only model turns belong in
	// the prompt context.
	return s.composer.ChunkForTransport(reply, transportChunkLimit), nil
}

func (s *assistantService) answerWeatherNow(ctx context.Context, city string) string {
	report, err := s.weather.CurrentWeather(ctx, city)
	if err != nil {
		log.Printf("Current weather for %q failed: %v", city, err)
		return msgWeatherFailed
	}
	return report
}

func (s *assistantService) answerWeatherForecast(ctx context.Context, city string, days int) string {
	report, err := s.weather.Forecast(ctx, city, days)
	if err != nil {
		log.Printf("Forecast for %q failed: %v", city, err)
		return msgForecastFailed
	}
	return fmt.Sprintf("Прогноз погоды в %s на ближайшие 3 дня:\n%s", city, report)
}

func (s *assistantService) answerLookup(intent Intent) string {
	if !s.knowledgeRepo.Available() {
		return msgKnowledgeUnavailable
	}

	var sections []string
	for _, district := range intent.Districts {
		if intent.Lookup == "" || intent.Lookup == repositories.KindSights {
			if places := s.knowledgeRepo.FindPlacesByDistrict(district); len(places) > 0 {
				sections = append(sections, s.composer.FormatPlaces(district, places))
			}
		}
		if intent.Lookup == "" || intent.Lookup == repositories.KindRestaurants {
			if eateries := s.knowledgeRepo.FindEateriesByDistrict(district); len(eateries) > 0 {
				sections = append(sections, s.composer.FormatEateries(district, eateries))
			}
		}
	}

	if len(sections) == 0 {
		return s.emptyLookupReply(intent)
	}
	return strings.Join(sections, "\n\n")
}

func (s *assistantService) emptyLookupReply(intent Intent) string {
	district := ""
	if len(intent.Districts) > 0 {
		district = intent.Districts[0]
	}

	var b strings.Builder
	for _, d := range s.knowledgeRepo.Districts(intent.Lookup) {
		fmt.Fprintf(&b, "• %s\n", d)
	}
	return fmt.Sprintf(
		"В районе %s ничего не найдено в базе данных.\n\nПопробуйте другой район из списка:\n%s",
		district, strings.TrimRight(b.String(), "\n"))
}

func (s *assistantService) answerConversational(ctx context.Context, userID, text string) ([]string, error) {
	s.conversations.Append(userID, mem.Turn{Role: mem.RoleUser, Text: text})

	history := s.conversations.RecentWindow(userID, historyWindow)
	turns := make([]utils.ChatTurn, 0, len(history))
	for _, t := range history {
		turns = append(turns, utils.ChatTurn{Role: t.Role, Content: t.Text})
	}

	reply, err := s.completions.Complete(ctx, systemPromptFor(text), turns)
	if err != nil {
		log.Printf("Completion for user %s failed: %v", userID, err)
		// The apology is not recorded as an assistant turn; the user's turn
		// stays so a retry carries the question as context.
		return s.composer.ChunkForTransport(msgCompletionFailed, transportChunkLimit), nil
	}

	reply = utils.FormatMarkdown(utils.FlattenHeadings(reply))

	if last, ok := s.conversations.LastAssistantTurn(userID); ok && !s.composer.KeepAnswer(reply, last) {
		log.Printf("Suppressed repeated reply for user %s", userID)
		return nil, nil
	}

	s.conversations.Append(userID, mem.Turn{Role: mem.RoleAssistant, Text: reply})
	return s.composer.ChunkForTransport(reply, transportChunkLimit), nil
}

func (s *assistantService) RouteByDuration(days int) (string, error) {
	if !s.knowledgeRepo.Available() {
		return "", utils.ErrKnowledgeBaseUnavailable
	}
	route, err := s.knowledgeRepo.FindRouteByDuration(days)
	if err != nil {
		return "", err
	}
	return s.composer.FormatRoute(route), nil
}

func (s *assistantService) PlacesByDistrict(district string) (string, error) {
	if !s.knowledgeRepo.Available() {
		return "", utils.ErrKnowledgeBaseUnavailable
	}
	key := utils.NormalizeDistrict(district)
	if key == "" {
		return "", utils.ErrInvalidInput
	}
	places := s.knowledgeRepo.FindPlacesByDistrict(key)
	if len(places) == 0 {
		return s.emptyLookupReply(Intent{
			Districts: []string{key},
			Lookup:    repositories.KindSights,
		}), nil
	}
	return s.composer.FormatPlaces(key, places), nil
}

func (s *assistantService) EateriesByDistrict(district string) (string, error) {
	if !s.knowledgeRepo.Available() {
		return "", utils.ErrKnowledgeBaseUnavailable
	}
	key := utils.NormalizeDistrict(district)
	if key == "" {
		return "", utils.ErrInvalidInput
	}
	eateries := s.knowledgeRepo.FindEateriesByDistrict(key)
	if len(eateries) == 0 {
		return s.emptyLookupReply(Intent{
			Districts: []string{key},
			Lookup:    repositories.KindRestaurants,
		}), nil
	}
	return s.composer.FormatEateries(key, eateries), nil
}

func (s *assistantService) Districts(kind string) ([]string, error) {
	if !s.knowledgeRepo.Available() {
		return nil, utils.ErrKnowledgeBaseUnavailable
	}
	switch kind {
	case "", repositories.KindSights, repositories.KindRestaurants:
		return s.knowledgeRepo.Districts(kind), nil
	default:
		return nil, utils.ErrInvalidInput
	}
}

func (s *assistantService) Reset(userID string) {
	s.conversations.Clear(userID)
}

func systemPromptFor(text string) string {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "стамбул") || strings.Contains(lower, "istanbul") {
		return guideSystemPrompt
	}
	return defaultSystemPrompt
}
