package models

// TierName identifica a faixa de ranking
type TierName string

const (
	TierS TierName = "S"
	TierA TierName = "A"
	TierB TierName = "B"
	TierC TierName = "C"
)

// PlatformSlots define o layout de slots de uma plataforma no console de conteúdo
type PlatformSlots struct {
	// Limit é o total de caixas (conteúdo + anúncios)
	Limit        int   `json:"limit"`
	ContentCount int   `json:"content_count"`
	AdPositions  []int `json:"ad_positions"` // posições 1-based
	PreloadCount int   `json:"preload_count"`
	// FillPlaceholders preenche posições vazias com placeholders (grade fixa)
	FillPlaceholders bool `json:"fill_placeholders"`
}

// IsAdPosition verifica se a posição (1-based) é reservada para anúncio
func (s PlatformSlots) IsAdPosition(pos int) bool {
	for _, p := range s.AdPositions {
		if p == pos {
			return true
		}
	}
	return false
}

// TierPolicy é a configuração de conteúdo derivada do rank
type TierPolicy struct {
	Tier    TierName `json:"tier"`
	MinRank int      `json:"min_rank"`
	// MaxRank 0 significa faixa aberta (17+)
	MaxRank   int                        `json:"max_rank"`
	Platforms map[Platform]PlatformSlots `json:"platforms"`
}

// SlotKind é o tipo de caixa renderizada
type SlotKind string

const (
	SlotContent     SlotKind = "content"
	SlotAd          SlotKind = "ad"
	SlotPlaceholder SlotKind = "placeholder"
)

// ContentItem é um embed de conteúdo dos feeds regionais
type ContentItem struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Caption     string `json:"caption,omitempty"`
	// VideoID é extraído da URL para embeds do TikTok
	VideoID string `json:"video_id,omitempty"`
}

// Slot é uma caixa posicionada no slider de uma plataforma
type Slot struct {
	Position int          `json:"position"`
	Kind     SlotKind     `json:"kind"`
	Item     *ContentItem `json:"item,omitempty"`
	Preload  bool         `json:"preload,omitempty"`
}
