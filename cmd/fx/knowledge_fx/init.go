package knowledge_fx

import (
	"go.uber.org/fx"

	"guidebot/internal/infra"
	"guidebot/internal/repositories"
)

var Module = fx.Provide(
	provideKnowledgeRepository)

func provideKnowledgeRepository() repositories.KnowledgeRepository {
	return infra.InitKnowledgeRepository()
}
