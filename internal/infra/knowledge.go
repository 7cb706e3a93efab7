package infra

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"guidebot/internal/models/kb_models"
	"guidebot/internal/repositories"
)

const (
	defaultRelationalPath = "istanbul_db_v2.yaml"
	defaultFlatPath       = "istanbul_guide.yaml"

	maxLoggedDiagnostics = 5
)

// InitKnowledgeRepository loads the city knowledge base from YAML. The
// relational schema is tried first, then the older flat schema. A missing or
// empty database is not fatal: the app keeps serving with an unavailable
// repository and degrades at the answer layer.
func InitKnowledgeRepository() repositories.KnowledgeRepository {
	if kb, ok := loadRelational(envOr("KNOWLEDGE_DB_V2_PATH", defaultRelationalPath)); ok {
		return repositories.NewKnowledgeRepository(kb)
	}
	if kb, ok := loadFlat(envOr("KNOWLEDGE_DB_PATH", defaultFlatPath)); ok {
		return repositories.NewKnowledgeRepository(kb)
	}

	log.Println("No knowledge base loaded, guide lookups are disabled")
	return repositories.NewUnavailableKnowledgeRepository()
}

func loadRelational(path string) (kb_models.KnowledgeBase, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Knowledge base %s not readable: %v", path, err)
		return kb_models.KnowledgeBase{}, false
	}

	var doc kb_models.RelationalDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		log.Printf("Knowledge base %s not parseable: %v", path, err)
		return kb_models.KnowledgeBase{}, false
	}

	kb, diags := repositories.AdaptRelational(doc)
	logLoadResult(path, kb, diags)
	return kb, len(kb.Places) > 0 || len(kb.Eateries) > 0
}

func loadFlat(path string) (kb_models.KnowledgeBase, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Knowledge base %s not readable: %v", path, err)
		return kb_models.KnowledgeBase{}, false
	}

	var doc kb_models.FlatDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		log.Printf("Knowledge base %s not parseable: %v", path, err)
		return kb_models.KnowledgeBase{}, false
	}

	kb, diags := repositories.AdaptFlat(doc)
	logLoadResult(path, kb, diags)
	return kb, len(kb.Places) > 0 || len(kb.Eateries) > 0
}

func logLoadResult(path string, kb kb_models.KnowledgeBase, diags []repositories.Diagnostic) {
	log.Printf("Loaded knowledge base %s: %d places, %d eateries, %d routes",
		path, len(kb.Places), len(kb.Eateries), len(kb.Routes))

	for i, d := range diags {
		if i == maxLoggedDiagnostics {
			log.Printf("... and %d more skipped records", len(diags)-maxLoggedDiagnostics)
			break
		}
		log.Printf("Skipped %s: %s", d.Record, d.Reason)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
