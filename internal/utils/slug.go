package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const MaxSlugLength = 50

var slugSeparator = regexp.MustCompile(`[^a-z0-9]+`)

// camelBoundary separa "ScotlandWTF" em "Scotland-WTF" antes do slug
var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// GenerateSlug cria um slug kebab-case a partir do nome do hub.
// Exemplo: "NorthernIrelandWTF" -> "northern-ireland-wtf"
func GenerateSlug(name string) string {
	if name == "" {
		return ""
	}

	text := camelBoundary.ReplaceAllString(name, "$1-$2")

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, text)
	normalized = strings.ToLower(normalized)

	slug := slugSeparator.ReplaceAllString(normalized, "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > MaxSlugLength {
		slug = slug[:MaxSlugLength]
		if lastHyphen := strings.LastIndex(slug, "-"); lastHyphen > 0 {
			slug = slug[:lastHyphen]
		}
	}

	return slug
}
