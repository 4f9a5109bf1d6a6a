package tier

import "github.com/watchthefall/wtf-worldcup/internal/models"

// Allocate distribui os itens de uma plataforma nos slots da faixa.
//
// Em plataformas de grade as posições 1..Limit são percorridas: posições de
// anúncio recebem ad, as demais recebem o próximo item e, acabando os itens,
// placeholders. Nas demais plataformas só os itens são emitidos.
// Os primeiros PreloadCount itens são marcados para carregamento imediato.
func Allocate(items []models.ContentItem, slots models.PlatformSlots) []models.Slot {
	if slots.ContentCount < 0 {
		slots.ContentCount = 0
	}
	if len(items) > slots.ContentCount {
		items = items[:slots.ContentCount]
	}

	if !slots.FillPlaceholders {
		out := make([]models.Slot, 0, len(items))
		for i := range items {
			out = append(out, contentSlot(i+1, items[i], i < slots.PreloadCount))
		}
		return out
	}

	out := make([]models.Slot, 0, slots.Limit)
	next := 0
	for pos := 1; pos <= slots.Limit; pos++ {
		switch {
		case slots.IsAdPosition(pos):
			out = append(out, models.Slot{Position: pos, Kind: models.SlotAd})
		case next < len(items):
			out = append(out, contentSlot(pos, items[next], next < slots.PreloadCount))
			next++
		default:
			out = append(out, models.Slot{Position: pos, Kind: models.SlotPlaceholder})
		}
	}
	return out
}

func contentSlot(pos int, item models.ContentItem, preload bool) models.Slot {
	it := item
	return models.Slot{
		Position: pos,
		Kind:     models.SlotContent,
		Item:     &it,
		Preload:  preload,
	}
}
