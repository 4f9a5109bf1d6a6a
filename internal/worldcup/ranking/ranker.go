package ranking

import (
	"sort"

	"github.com/watchthefall/wtf-worldcup/internal/models"
)

// Rank ordena os registros de forma decrescente pela métrica.
// Empates preservam a ordem de entrada e os ranks são 1..N sem repetição.
// A fatia de entrada não é modificada.
func Rank(records []models.RegionRecord, metric models.Metric) []models.RankedEntry {
	entries := make([]models.RankedEntry, len(records))
	for i, r := range records {
		entries[i] = models.RankedEntry{
			Record: r,
			Value:  ComputeMetricValue(r, metric),
			Delta:  ComputeDelta(r, metric),
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// Top retorna os primeiros n entries (todos quando n <= 0)
func Top(entries []models.RankedEntry, n int) []models.RankedEntry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}
