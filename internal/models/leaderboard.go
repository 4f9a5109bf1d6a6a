package models

// platformNames são os rótulos dos botões do console
var platformNames = map[Platform]string{
	PlatformTikTok:    "TikTok",
	PlatformInstagram: "Instagram",
	PlatformYouTube:   "YouTube",
	PlatformX:         "X",
	PlatformThreads:   "Threads",
}

// Name retorna o rótulo de exibição da plataforma
func (p Platform) Name() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return string(p)
}

// LeaderboardRow é uma linha pronta para o renderer
type LeaderboardRow struct {
	Rank         int      `json:"rank"`
	Badge        string   `json:"badge,omitempty"`
	Region       string   `json:"region"`
	Slug         string   `json:"slug"`
	Tagline      string   `json:"tagline"`
	Logo         string   `json:"logo"`
	Link         string   `json:"link,omitempty"`
	Clickable    bool     `json:"clickable"`
	Value        float64  `json:"value"`
	Delta        float64  `json:"delta"`
	DisplayValue string   `json:"display_value"`
	DisplayDelta string   `json:"display_delta"`
	Trend        string   `json:"trend"`
	Tier         TierName `json:"tier"`
}

// LeaderboardResponse é o leaderboard completo para uma métrica
type LeaderboardResponse struct {
	Metric           Metric           `json:"metric"`
	MetricLabel      string           `json:"metric_label"`
	LastUpdated      string           `json:"last_updated,omitempty"`
	FollowersAllZero bool             `json:"followers_all_zero"`
	Total            int              `json:"total"`
	Rows             []LeaderboardRow `json:"rows"`
}

// RegionTier é a faixa resolvida para uma página/região
type RegionTier struct {
	Key     string     `json:"key"`
	Region  string     `json:"region,omitempty"`
	Matched bool       `json:"matched"`
	Rank    int        `json:"rank,omitempty"`
	Policy  TierPolicy `json:"policy"`
}

// PlatformConsole é o slider de uma plataforma no console de conteúdo
type PlatformConsole struct {
	Platform  Platform `json:"platform"`
	Name      string   `json:"name"`
	ItemCount int      `json:"item_count"`
	Slots     []Slot   `json:"slots"`
}

// ConsoleResponse é o layout do console de conteúdo de uma região
type ConsoleResponse struct {
	Region          string            `json:"region"`
	Tier            RegionTier        `json:"tier"`
	Empty           bool              `json:"empty"`
	DefaultPlatform Platform          `json:"default_platform,omitempty"`
	Platforms       []PlatformConsole `json:"platforms"`
}
