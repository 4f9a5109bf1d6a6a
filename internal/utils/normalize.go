package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizarTexto remove acentos e converte para minúsculas
// Exemplo: "Réunion" -> "reunion", "ScotlandWTF" -> "scotlandwtf"
func NormalizarTexto(texto string) string {
	if texto == "" {
		return texto
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, texto)

	return strings.ToLower(strings.TrimSpace(normalized))
}
