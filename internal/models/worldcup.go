package models

// Platform identifica uma rede social acompanhada pelos hubs
type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformX         Platform = "x"
	PlatformThreads   Platform = "threads"
)

// ContentPlatforms são as plataformas renderizadas pelo console de conteúdo, na ordem dos botões
var ContentPlatforms = []Platform{PlatformTikTok, PlatformInstagram, PlatformYouTube, PlatformX, PlatformThreads}

// Followers contém a contagem de seguidores por plataforma (nunca negativa)
type Followers struct {
	TikTok    float64 `json:"tiktok"`
	Instagram float64 `json:"instagram"`
	YouTube   float64 `json:"youtube"`
	X         float64 `json:"x"`
}

// Total soma as quatro plataformas
func (f Followers) Total() float64 {
	return f.TikTok + f.Instagram + f.YouTube + f.X
}

// RegionRecord representa um hub regional do leaderboard
type RegionRecord struct {
	Region    string    `json:"region"`
	Followers Followers `json:"followers"`
	Previous  Followers `json:"previous"`
	// Points é nil quando o dataset não traz o campo; nesse caso ele é derivado do TikTok
	Points  *float64 `json:"points,omitempty"`
	Logo    string   `json:"logo,omitempty"`
	Tagline string   `json:"tagline,omitempty"`
}

// HasPoints indica se o registro trouxe points explícito
func (r RegionRecord) HasPoints() bool {
	return r.Points != nil
}

// Dataset é o snapshot imutável carregado de worldcup.json
type Dataset struct {
	Records     []RegionRecord `json:"regions"`
	LastUpdated string         `json:"last_updated,omitempty"`
}

// Metric define o critério de ordenação do leaderboard
type Metric string

const (
	MetricPoints    Metric = "points"
	MetricFollowers Metric = "followers"
	MetricTikTok    Metric = "tiktok"
	MetricInstagram Metric = "instagram"
	MetricYouTube   Metric = "youtube"
	MetricX         Metric = "x"
)

// Metrics lista as métricas na ordem do seletor
var Metrics = []Metric{MetricPoints, MetricFollowers, MetricTikTok, MetricInstagram, MetricYouTube, MetricX}

var metricLabels = map[Metric]string{
	MetricPoints:    "Points",
	MetricFollowers: "Followers",
	MetricTikTok:    "TikTok",
	MetricInstagram: "Instagram",
	MetricYouTube:   "YouTube",
	MetricX:         "X (Twitter)",
}

// IsValid verifica se a métrica é conhecida
func (m Metric) IsValid() bool {
	_, ok := metricLabels[m]
	return ok
}

// Label retorna o rótulo de exibição; métricas desconhecidas usam "Points"
func (m Metric) Label() string {
	if label, ok := metricLabels[m]; ok {
		return label
	}
	return metricLabels[MetricPoints]
}

// ParseMetric converte uma string em Metric, com fallback para points
func ParseMetric(s string) Metric {
	m := Metric(s)
	if m.IsValid() {
		return m
	}
	return MetricPoints
}

// RankedEntry é uma linha do ranking: (record, rank, value, delta)
type RankedEntry struct {
	Record RegionRecord `json:"record"`
	Rank   int          `json:"rank"`
	Value  float64      `json:"value"`
	Delta  float64      `json:"delta"`
}
