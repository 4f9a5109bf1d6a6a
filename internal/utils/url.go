package utils

import (
	"net/url"
	"strings"
)

// ResolveSiteURL transforma um caminho relativo do site (logo, página do hub)
// em URL absoluta usando a base configurada. Âncoras ("#directory") e URLs
// absolutas são mantidas.
func ResolveSiteURL(ref, baseURL string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || baseURL == "" || strings.HasPrefix(ref, "#") {
		return ref
	}

	parsedRef, err := url.Parse(ref)
	if err != nil || parsedRef.IsAbs() {
		return ref
	}

	base, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil || !base.IsAbs() {
		return ref
	}

	return base.ResolveReference(parsedRef).String()
}
