// Package region resolve a página do site para a chave de região e o hub ranqueado correspondente.
package region

import (
	"path"
	"regexp"
	"strings"

	"github.com/watchthefall/wtf-worldcup/internal/models"
	"github.com/watchthefall/wtf-worldcup/internal/utils"
)

// Global é a região usada quando a página não é reconhecida
const Global = "global"

var pagePattern = regexp.MustCompile(`^([^/]+)\.html$`)

// aliases mapeia o nome do arquivo da página para a chave de conteúdo
var aliases = map[string]string{
	"scotland":          "scotland",
	"britain":           "britain",
	"britain-directory": "britain",
	"england":           "england",
	"wales":             "wales",
	"ireland":           "ireland",
	"france":            "france",
	"germany":           "germany",
	"spain":             "spain",
	"italy":             "italy",
	"netherlands":       "netherlands",
	"poland":            "poland",
	"sweden":            "sweden",
	"europe":            "europe",
	"europe-directory":  "europe",
	"usamerica":         "usamerica",
	"usa":               "usamerica",
	"canada":            "canada",
	"australia":         "australia",
	"ai":                "ai",
	"ai-directory":      "ai",
	"global-directory":  Global,
}

// DetectRegion extrai a região do caminho da página
// Exemplo: "/regional/pages/scotland.html" -> "scotland", "/usa.html" -> "usamerica"
func DetectRegion(pagePath string) string {
	m := pagePattern.FindStringSubmatch(path.Base(pagePath))
	if m == nil {
		return Global
	}
	if key, ok := aliases[strings.ToLower(m[1])]; ok {
		return key
	}
	return Global
}

// Resolve aceita tanto um caminho de página ("scotland.html") quanto uma chave
// ou nome de hub ("usa", "ScotlandWTF") e retorna a chave de região
func Resolve(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasSuffix(strings.ToLower(name), ".html") {
		return DetectRegion(name)
	}
	if key, ok := aliases[strings.ToLower(name)]; ok {
		return key
	}
	return name
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Key normaliza um nome de hub ou de página para comparação
// Exemplo: "ScotlandWTF" -> "scotland", "Northern Ireland" -> "northernireland"
func Key(name string) string {
	k := nonAlnum.ReplaceAllString(utils.NormalizarTexto(name), "")
	if k != "wtf" {
		k = strings.TrimSuffix(k, "wtf")
	}
	return k
}

// Match procura o hub ranqueado correspondente à chave. Sem correspondência, o
// chamador deve usar a faixa mais conservadora.
func Match(entries []models.RankedEntry, key string) (models.RankedEntry, bool) {
	want := Key(key)
	if want == "" {
		return models.RankedEntry{}, false
	}
	for _, e := range entries {
		if Key(e.Record.Region) == want {
			return e, true
		}
	}
	return models.RankedEntry{}, false
}
