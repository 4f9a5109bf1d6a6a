package utils

import (
	"math"
	"strconv"
)

// FormatNumber abrevia contagens para exibição: 1234 -> "1.2K", 2500000 -> "2.5M".
// O valor é arredondado antes para evitar ruído de ponto flutuante.
func FormatNumber(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "0"
	}
	v := math.Round(n)
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return strconv.FormatFloat(v/1_000_000, 'f', 1, 64) + "M"
	case abs >= 1_000:
		return strconv.FormatFloat(v/1_000, 'f', 1, 64) + "K"
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}

// Trend classifica o delta em up, down ou flat
func Trend(delta float64) string {
	switch {
	case delta > 0:
		return "up"
	case delta < 0:
		return "down"
	}
	return "flat"
}

// TrendSymbol retorna o símbolo usado na coluna Change
func TrendSymbol(delta float64) string {
	switch Trend(delta) {
	case "up":
		return "▲"
	case "down":
		return "▼"
	}
	return "—"
}

// RankBadge retorna a medalha dos três primeiros colocados
func RankBadge(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return ""
}
