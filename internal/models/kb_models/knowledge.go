package kb_models

// Normalized knowledge base model. Built once by the adapter at load time and
// never mutated afterwards; all district fields hold normalized keys.

type Place struct {
	ID           string
	Name         string
	District     string
	Description  string
	OpeningHours string
	Price        string
	Transport    string
}

type Eatery struct {
	ID           string
	Name         string
	District     string
	Cuisine      string
	PriceLevel   string
	Description  string
	OpeningHours string
	Address      string
	Transport    string
	Tags         []string
}

type RouteStep struct {
	Time       string
	Activities []string
}

// Route titles double as the lookup key for duration matching ("1 день",
// "классика", ...).
type Route struct {
	Title string
	Steps []RouteStep
}

type KnowledgeBase struct {
	Places   []Place
	Eateries []Eatery
	Routes   []Route
}
