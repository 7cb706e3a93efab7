package kb_models

// Raw source document shapes. Two incompatible schema versions are accepted;
// each has its own parse path in the adapter and nothing downstream ever sees
// these types.

// FlatDocument is the older schema: flat records keyed by district strings.
type FlatDocument struct {
	Sights      []FlatSight      `yaml:"sights"`
	Restaurants []FlatRestaurant `yaml:"restaurants"`
	Routes      []FlatRoute      `yaml:"routes"`
}

type FlatSight struct {
	Name         string `yaml:"name"`
	District     string `yaml:"district"`
	Description  string `yaml:"description"`
	OpeningHours string `yaml:"opening_hours"`
	OpenHours    string `yaml:"open_hours"` // legacy spelling seen in old dumps
	Price        string `yaml:"price"`
	Transport    string `yaml:"transport"`
}

type FlatRestaurant struct {
	Name         string   `yaml:"name"`
	District     string   `yaml:"district"`
	Cuisine      string   `yaml:"cuisine"`
	PriceLevel   string   `yaml:"price_level"`
	Description  string   `yaml:"description"`
	OpeningHours string   `yaml:"opening_hours"`
	Address      string   `yaml:"address"`
	Transport    string   `yaml:"transport"`
	Tags         []string `yaml:"tags"`
}

type FlatRoute struct {
	Title string          `yaml:"title"`
	Steps []FlatRouteStep `yaml:"steps"`
}

type FlatRouteStep struct {
	Time       string   `yaml:"time"`
	Activities []string `yaml:"activities"`
}

// RelationalDocument is the newer schema: records carry ids and routes
// reference places and eateries by id.
type RelationalDocument struct {
	Places         []RelationalPlace `yaml:"places"`
	Food           []RelationalFood  `yaml:"food"`
	RouteTemplates []RouteTemplate   `yaml:"route_templates"`
}

type RelationalPlace struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	NameRU     string   `yaml:"name_ru"`
	District   string   `yaml:"district"`
	Category   string   `yaml:"category"`
	Highlights []string `yaml:"highlights"`
	Visiting   struct {
		Hours string `yaml:"hours"`
	} `yaml:"visiting"`
	Description string `yaml:"description"`
}

type RelationalFood struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	District     string   `yaml:"district"`
	Cuisine      string   `yaml:"cuisine"`
	PriceLevel   string   `yaml:"price_level"`
	Description  string   `yaml:"description"`
	OpeningHours string   `yaml:"opening_hours"`
	Address      string   `yaml:"address"`
	Tags         []string `yaml:"tags"`
}

type RouteTemplate struct {
	ID    string         `yaml:"id"`
	Title string         `yaml:"title"`
	Steps []TemplateStep `yaml:"steps"`
}

type TemplateStep struct {
	Day       int      `yaml:"day"`
	TimeBlock string   `yaml:"time_block"`
	StopIDs   []string `yaml:"stop_ids"`
	FoodIDs   []string `yaml:"food_ids"`
	Notes     []string `yaml:"notes"`
}
