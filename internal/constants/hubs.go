package constants

// DefaultLogo é usado por hubs sem logo no dataset nem no catálogo
const DefaultLogo = "assets/watermark/wtfman.png"

// HubLinks mapeia a região para a página do hub no site estático.
// Hubs sem página dedicada apontam para o diretório.
var HubLinks = map[string]string{
	"ScotlandWTF":     "regional/pages/scotland.html",
	"WatchTheFallWTF": "index.html",
	"AIWTF":           "ai.html",
	"AITechWTF":       "ai.html",

	// UK
	"BritainWTF":         "regional/pages/britain.html",
	"EnglandWTF":         "regional/pages/england.html",
	"WalesWTF":           "regional/pages/wales.html",
	"NorthernIrelandWTF": "#directory-britain",

	// Europa
	"EuropeWTF":      "regional/pages/europe.html",
	"IrelandWTF":     "regional/pages/ireland.html",
	"FranceWTF":      "regional/pages/france.html",
	"GermanyWTF":     "regional/pages/germany.html",
	"SpainWTF":       "regional/pages/spain.html",
	"ItalyWTF":       "regional/pages/italy.html",
	"NetherlandsWTF": "regional/pages/netherlands.html",
	"PolandWTF":      "regional/pages/poland.html",
	"SwedenWTF":      "regional/pages/sweden.html",

	// Américas e Oceania
	"TheWestWTF":   "#directory-thewest",
	"USAmericaWTF": "regional/pages/usa.html",
	"CanadaWTF":    "regional/pages/canada.html",
	"AustraliaWTF": "regional/pages/australia.html",

	// Hubs de conteúdo
	"GadgetsWTF":    "index.html#directory",
	"ComedyWTF":     "index.html#directory",
	"DarkHumourWTF": "index.html#directory",
	"ConceptsWTF":   "index.html#directory",
}

// HubLogos mapeia a região para o logo padrão
var HubLogos = map[string]string{
	"ScotlandWTF":     "assets/logos/scotland-wtf-logo.png",
	"WatchTheFallWTF": "assets/watermark/wtfman.png",

	"BritainWTF":         "assets/logos/britain-wtf-logo.png",
	"EnglandWTF":         "assets/logos/england-wtf-logo.png",
	"WalesWTF":           "assets/logos/wales-wtf-logo.png",
	"NorthernIrelandWTF": "assets/logos/northern-ireland-wtf-logo.png",

	"EuropeWTF":      "assets/logos/europe-wtf-logo.png",
	"IrelandWTF":     "assets/logos/ireland-wtf-logo.png",
	"FranceWTF":      "assets/logos/france-wtf-logo.png",
	"GermanyWTF":     "assets/logos/germany-wtf-logo.png",
	"SpainWTF":       "assets/logos/spain-wtf-logo.png",
	"ItalyWTF":       "assets/logos/italy-wtf-logo.png",
	"NetherlandsWTF": "assets/logos/netherlands-wtf-logo.png",
	"PolandWTF":      "assets/logos/poland-wtf-logo.png",
	"SwedenWTF":      "assets/logos/sweden-wtf-logo.png",

	"TheWestWTF":   "assets/logos/the-west-wtf.png",
	"USAmericaWTF": "assets/logos/usa-wtf-logo.png",
	"CanadaWTF":    "assets/logos/canada-wtf-logo.png",
	"AustraliaWTF": "assets/logos/australia-wtf-logo.png",

	"AIWTF":         "assets/logos/ai-wtf-logo.webp",
	"AITechWTF":     "assets/logos/ai-tech-wtf-logo.jpg",
	"GadgetsWTF":    "assets/logos/gadgets-wtf-logo.png",
	"ComedyWTF":     "assets/logos/c0medy-wtf-logo.jpg",
	"DarkHumourWTF": "assets/logos/dark-humour-wtf-logo.png",
	"ConceptsWTF":   "assets/logos/concepts-wtf-logo.png",
}

// LogoFor retorna o logo do registro, do catálogo ou o padrão, nessa ordem
func LogoFor(region, recordLogo string) string {
	if recordLogo != "" {
		return recordLogo
	}
	if logo, ok := HubLogos[region]; ok {
		return logo
	}
	return DefaultLogo
}

// LinkFor retorna a página do hub; ok é false quando o hub não é clicável
func LinkFor(region string) (string, bool) {
	link, ok := HubLinks[region]
	return link, ok
}
