package ranking

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/watchthefall/wtf-worldcup/internal/models"
)

// Decode converte o documento worldcup.json em um Dataset normalizado.
// JSON inválido resulta em um dataset vazio: o widget degrada em vez de falhar.
func Decode(data []byte) models.Dataset {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return models.Dataset{Records: []models.RegionRecord{}}
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.Dataset{Records: []models.RegionRecord{}}
	}

	dataset := models.Dataset{Records: LoadRecords(raw)}
	if obj, ok := raw.(map[string]any); ok {
		if lastUpdated, ok := obj["last_updated"].(string); ok {
			dataset.LastUpdated = lastUpdated
		}
	}
	return dataset
}

// LoadRecords normaliza uma coleção já decodificada de registros.
// Aceita um array no topo ou um objeto com o campo "regions"; qualquer outra
// forma vira uma sequência vazia.
func LoadRecords(raw any) []models.RegionRecord {
	items := recordArray(raw)
	records := make([]models.RegionRecord, 0, len(items))
	seen := make(map[string]struct{}, len(items))

	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		record, ok := normalizeRecord(obj)
		if !ok {
			continue
		}
		// region é chave: a primeira ocorrência prevalece
		if _, dup := seen[record.Region]; dup {
			continue
		}
		seen[record.Region] = struct{}{}
		records = append(records, record)
	}
	return records
}

func recordArray(raw any) []any {
	switch v := raw.(type) {
	case []any:
		return v
	case []map[string]any:
		items := make([]any, len(v))
		for i := range v {
			items[i] = v[i]
		}
		return items
	case map[string]any:
		if regions, ok := v["regions"].([]any); ok {
			return regions
		}
	}
	return nil
}

func normalizeRecord(obj map[string]any) (models.RegionRecord, bool) {
	region, _ := obj["region"].(string)
	if strings.TrimSpace(region) == "" {
		return models.RegionRecord{}, false
	}

	record := models.RegionRecord{
		Region:    region,
		Followers: coerceFollowers(obj["followers"]),
		Previous:  coerceFollowers(obj["previous"]),
	}
	record.Logo, _ = obj["logo"].(string)
	record.Tagline, _ = obj["tagline"].(string)

	// Só um número JSON conta como points explícito; sem ele o valor é
	// derivado do TikTok em ComputeMetricValue
	if p, ok := obj["points"].(float64); ok {
		points := nonNegative(p)
		record.Points = &points
	}

	return record, true
}

func coerceFollowers(raw any) models.Followers {
	obj, ok := raw.(map[string]any)
	if !ok {
		return models.Followers{}
	}
	return models.Followers{
		TikTok:    coerceNumber(obj[string(models.PlatformTikTok)]),
		Instagram: coerceNumber(obj[string(models.PlatformInstagram)]),
		YouTube:   coerceNumber(obj[string(models.PlatformYouTube)]),
		X:         coerceNumber(obj[string(models.PlatformX)]),
	}
}

// coerceNumber converte qualquer valor em um número não negativo, com 0 como recuperação
func coerceNumber(v any) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	return nonNegative(f)
}

func nonNegative(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}
