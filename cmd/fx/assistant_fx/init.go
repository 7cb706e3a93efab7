// cmd/fx/assistant_fx/module.go
package assistant_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"guidebot/internal/api/controllers"
	"guidebot/internal/repositories"
	"guidebot/internal/services"
	mem "guidebot/pkg/memcache"
	"guidebot/pkg/utils"
)

var Module = fx.Provide(
	ProvideCompletionClient,
	ProvideIntentService,
	ProvideComposerService,
	ProvideAssistantService,
	ProvideAssistantController,
	ProvideGuideController)

// CompletionConfig holds configuration for completion clients
type CompletionConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideCompletionClient creates a completion client based on environment variables
func ProvideCompletionClient() (utils.CompletionClientInterface, error) {
	config := getCompletionConfig()

	log.Printf("Initializing %s completion client with model: %s", config.Provider, config.Model)

	return utils.NewCompletionClient(config.Provider, config.APIKey, config.Model)
}

func ProvideIntentService(knowledgeRepo repositories.KnowledgeRepository) services.IntentServiceInterface {
	return services.NewIntentService(knowledgeRepo)
}

func ProvideComposerService() services.ComposerServiceInterface {
	return services.NewComposerService()
}

func ProvideAssistantService(
	intents services.IntentServiceInterface,
	composer services.ComposerServiceInterface,
	knowledgeRepo repositories.KnowledgeRepository,
	conversations mem.ConversationStore,
	weather utils.WeatherClientInterface,
	completions utils.CompletionClientInterface,
) services.AssistantServiceInterface {
	return services.NewAssistantService(
		intents,
		composer,
		knowledgeRepo,
		conversations,
		weather,
		completions,
	)
}

func ProvideAssistantController(
	assistantService services.AssistantServiceInterface,
) *controllers.AssistantController {
	return controllers.NewAssistantController(assistantService)
}

func ProvideGuideController(
	assistantService services.AssistantServiceInterface,
) *controllers.GuideController {
	return controllers.NewGuideController(assistantService)
}

// getCompletionConfig reads configuration from environment variables
func getCompletionConfig() CompletionConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "openrouter")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openrouter", "openai", "":
		apiKey = os.Getenv("OPENROUTER_API_KEY")
		model = getEnvWithDefault("OPENROUTER_MODEL", "openai/gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENROUTER_API_KEY is required when using OpenRouter provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return CompletionConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
