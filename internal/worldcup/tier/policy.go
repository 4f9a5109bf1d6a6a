// Package tier mapeia o rank de um hub para a configuração de conteúdo da sua página.
//
// # Faixas
//   - S: ranks 1-3
//   - A: ranks 4-8
//   - B: ranks 9-16
//   - C: rank 17 em diante (e qualquer rank inválido)
//
// As faixas e as tabelas de slots são constantes de produto, mantidas como estão.
package tier

import "github.com/watchthefall/wtf-worldcup/internal/models"

// Limites superiores das faixas S, A e B
const (
	MaxRankS = 3
	MaxRankA = 8
	MaxRankB = 16
)

type band struct {
	tier    models.TierName
	minRank int
	maxRank int
}

var bands = []band{
	{models.TierS, 1, MaxRankS},
	{models.TierA, MaxRankS + 1, MaxRankA},
	{models.TierB, MaxRankA + 1, MaxRankB},
	{models.TierC, MaxRankB + 1, 0},
}

// gridSlots monta o layout das plataformas em grade (TikTok/Instagram)
func gridSlots(limit int, ads ...int) models.PlatformSlots {
	return models.PlatformSlots{
		Limit:            limit,
		ContentCount:     limit - len(ads),
		AdPositions:      ads,
		PreloadCount:     3,
		FillPlaceholders: true,
	}
}

// listSlots monta o layout das plataformas em lista (YouTube/X/Threads)
func listSlots(count int) models.PlatformSlots {
	return models.PlatformSlots{
		Limit:        count,
		ContentCount: count,
		AdPositions:  []int{},
		PreloadCount: 2,
	}
}

func slotTable(tier models.TierName) map[models.Platform]models.PlatformSlots {
	switch tier {
	case models.TierS:
		return map[models.Platform]models.PlatformSlots{
			models.PlatformTikTok:    gridSlots(15, 6, 13),
			models.PlatformInstagram: gridSlots(15, 6, 13),
			models.PlatformYouTube:   listSlots(8),
			models.PlatformX:         listSlots(5),
			models.PlatformThreads:   listSlots(5),
		}
	case models.TierA:
		return map[models.Platform]models.PlatformSlots{
			models.PlatformTikTok:    gridSlots(12, 5, 12),
			models.PlatformInstagram: gridSlots(12, 5, 12),
			models.PlatformYouTube:   listSlots(6),
			models.PlatformX:         listSlots(4),
			models.PlatformThreads:   listSlots(4),
		}
	case models.TierB:
		return map[models.Platform]models.PlatformSlots{
			models.PlatformTikTok:    gridSlots(9, 5),
			models.PlatformInstagram: gridSlots(9, 5),
			models.PlatformYouTube:   listSlots(4),
			models.PlatformX:         listSlots(3),
			models.PlatformThreads:   listSlots(3),
		}
	default:
		return map[models.Platform]models.PlatformSlots{
			models.PlatformTikTok:    gridSlots(6, 4),
			models.PlatformInstagram: gridSlots(6, 4),
			models.PlatformYouTube:   listSlots(3),
			models.PlatformX:         listSlots(2),
			models.PlatformThreads:   listSlots(2),
		}
	}
}

// NameFor retorna apenas o nome da faixa do rank
func NameFor(rank int) models.TierName {
	for _, b := range bands[:len(bands)-1] {
		if rank >= b.minRank && rank <= b.maxRank {
			return b.tier
		}
	}
	// rank < 1 não tem faixa: usa a mais conservadora
	return models.TierC
}

// For retorna a política de conteúdo do rank. Cada chamada monta uma política
// nova, então o chamador pode alterá-la sem afetar outras páginas.
func For(rank int) models.TierPolicy {
	name := NameFor(rank)
	for _, b := range bands {
		if b.tier == name {
			return models.TierPolicy{
				Tier:      b.tier,
				MinRank:   b.minRank,
				MaxRank:   b.maxRank,
				Platforms: slotTable(b.tier),
			}
		}
	}
	return models.TierPolicy{}
}

// Fallback é a política usada quando a região não tem rank
func Fallback() models.TierPolicy {
	return For(0)
}
