package ranking

import "github.com/watchthefall/wtf-worldcup/internal/models"

// PointsFactor é o peso dos seguidores do TikTok quando o dataset não traz points.
// Constante de produto, sem derivação documentada.
const PointsFactor = 0.4

// Points retorna o points explícito do registro ou o fallback derivado do TikTok
func Points(r models.RegionRecord) float64 {
	if r.Points != nil {
		return *r.Points
	}
	return r.Followers.TikTok * PointsFactor
}

// previousPoints é sempre re-derivado de previous.tiktok: não existe points anterior no dataset
func previousPoints(r models.RegionRecord) float64 {
	return r.Previous.TikTok * PointsFactor
}

// ComputeMetricValue calcula o valor de um registro para a métrica.
// Métricas desconhecidas usam points.
func ComputeMetricValue(r models.RegionRecord, metric models.Metric) float64 {
	return metricValue(r.Followers, Points(r), metric)
}

// ComputeDelta retorna current - previous para a métrica (positivo = crescimento).
// Sem previous, o delta é o valor atual inteiro.
func ComputeDelta(r models.RegionRecord, metric models.Metric) float64 {
	current := ComputeMetricValue(r, metric)
	previous := metricValue(r.Previous, previousPoints(r), metric)
	return current - previous
}

func metricValue(f models.Followers, points float64, metric models.Metric) float64 {
	switch metric {
	case models.MetricFollowers:
		return f.Total()
	case models.MetricTikTok:
		return f.TikTok
	case models.MetricInstagram:
		return f.Instagram
	case models.MetricYouTube:
		return f.YouTube
	case models.MetricX:
		return f.X
	default:
		return points
	}
}

// FollowersAllZero indica se nenhum hub tem seguidores em nenhuma plataforma.
// O renderer usa isso para cair de volta em points quando o ranking por seguidores seria vazio.
func FollowersAllZero(records []models.RegionRecord) bool {
	for _, r := range records {
		if r.Followers.Total() != 0 {
			return false
		}
	}
	return true
}
