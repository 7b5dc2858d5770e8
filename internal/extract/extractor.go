// Package extract recovers structured listing fields from free-form ad
// text. Heuristics only; a field the text does not clearly state stays
// at its zero value.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/venatus57/autoanalyseur/internal/model"
)

var (
	pricePattern      = regexp.MustCompile(`(\d{1,3}[\s.,]?\d{3})\s*€`)
	priceLabelPattern = regexp.MustCompile(`(?i)prix\s*:?\s*(\d{1,3}[\s.,]?\d{3})`)
	mileagePattern    = regexp.MustCompile(`(?i)(\d{1,3}[\s.]?\d{3})\s*km`)
	mileageShortcut   = regexp.MustCompile(`(?i)(\d{2,3})\s*000\s*km`)
	year2000Pattern   = regexp.MustCompile(`\b(20[0-2][0-9])\b`)
	year1900Pattern   = regexp.MustCompile(`\b(19[89][0-9])\b`)

	numericSeparators = strings.NewReplacer(" ", "", ".", "", ",", "", " ", "")
)

const (
	minPlausibleYear = 1990
	maxPlausibleYear = 2025
)

// makes is scanned in order, first match wins. Multi-word names come
// before their prefixes would shadow them; "vw" maps back to Volkswagen.
var makes = []string{
	"volkswagen", "vw", "audi", "bmw", "mercedes", "peugeot", "renault", "citroen", "citroën",
	"toyota", "honda", "nissan", "mazda", "subaru", "mitsubishi", "ford", "opel", "fiat",
	"seat", "skoda", "hyundai", "kia", "volvo", "porsche", "alfa romeo", "mini", "suzuki",
	"dacia", "jaguar", "land rover", "lexus", "infiniti", "tesla", "chevrolet", "jeep", "dodge",
}

var modelsByMake = map[string][]string{
	"volkswagen": {"golf", "polo", "passat", "tiguan", "touran", "scirocco", "arteon", "t-roc", "t-cross", "touareg", "sharan", "up", "eos", "jetta", "beetle", "cc", "phaeton", "corrado"},
	"vw":         {"golf", "polo", "passat", "tiguan", "touran", "scirocco", "arteon", "t-roc", "gti", "gtd", "r"},
	"bmw":        {"serie 1", "serie 2", "serie 3", "serie 4", "serie 5", "serie 6", "serie 7", "serie 8", "m2", "m3", "m4", "m5", "m6", "m8", "x1", "x2", "x3", "x4", "x5", "x6", "x7", "z3", "z4", "i3", "i4", "i8", "ix"},
	"audi":       {"a1", "a3", "a4", "a5", "a6", "a7", "a8", "s1", "s3", "s4", "s5", "s6", "s7", "s8", "rs3", "rs4", "rs5", "rs6", "rs7", "tt", "tts", "ttrs", "r8", "q2", "q3", "q5", "q7", "q8", "e-tron", "sq5", "sq7", "sq8", "rsq8"},
	"mercedes":   {"classe a", "classe b", "classe c", "classe e", "classe s", "classe g", "cla", "clk", "cls", "glc", "gle", "gls", "gla", "glb", "amg gt", "sl", "slc", "slk", "ml", "eqc", "eqs", "eqe", "a35", "a45", "c43", "c63", "e53", "e63"},
	"peugeot":    {"106", "107", "108", "205", "206", "207", "208", "306", "307", "308", "309", "405", "406", "407", "508", "605", "607", "806", "807", "1007", "2008", "3008", "4008", "5008", "rcz", "partner", "expert", "traveller", "rifter"},
	"renault":    {"clio", "megane", "scenic", "twingo", "captur", "kadjar", "koleos", "talisman", "laguna", "espace", "zoe", "arkana", "austral", "kangoo", "trafic", "master", "r5", "r19", "r21", "safrane", "vel satis", "wind", "fluence", "latitude"},
	"citroen":    {"c1", "c2", "c3", "c4", "c5", "c6", "c8", "ds3", "ds4", "ds5", "ds7", "c3 aircross", "c4 cactus", "c5 aircross", "berlingo", "xsara", "saxo", "ax", "bx", "cx", "xm", "zx", "picasso", "spacetourer"},
	"citroën":    {"c1", "c2", "c3", "c4", "c5", "c6", "c8", "ds3", "ds4", "ds5", "ds7", "c3 aircross", "c4 cactus", "c5 aircross", "berlingo", "xsara", "saxo", "ax", "bx", "cx", "xm", "zx", "picasso", "spacetourer"},
	"toyota":     {"yaris", "corolla", "auris", "avensis", "camry", "prius", "chr", "c-hr", "rav4", "land cruiser", "hilux", "supra", "gt86", "gr86", "gr yaris", "celica", "mr2", "mr-2", "aygo", "verso", "proace"},
	"honda":      {"civic", "accord", "jazz", "fit", "cr-v", "hr-v", "type r", "type-r", "s2000", "nsx", "integra", "prelude", "crx", "cr-x", "legend", "insight", "e", "city"},
	"nissan":     {"micra", "note", "juke", "qashqai", "x-trail", "navara", "pathfinder", "murano", "leaf", "370z", "350z", "300zx", "gtr", "gt-r", "skyline", "silvia", "200sx", "180sx", "primera", "almera", "pulsar"},
	"mazda":      {"mazda2", "mazda3", "mazda6", "cx-3", "cx-30", "cx-5", "cx-60", "mx5", "mx-5", "miata", "rx7", "rx-7", "rx8", "rx-8", "323", "626", "xedos", "bt-50"},
	"subaru":     {"impreza", "wrx", "sti", "brz", "forester", "outback", "legacy", "levorg", "xv", "crosstrek", "tribeca", "svx", "justy"},
	"mitsubishi": {"lancer", "evo", "evolution", "outlander", "asx", "eclipse", "eclipse cross", "pajero", "l200", "3000gt", "gto", "colt", "galant", "space star", "carisma"},
	"ford":       {"fiesta", "focus", "mondeo", "mustang", "kuga", "puma", "ecosport", "edge", "explorer", "ranger", "transit", "galaxy", "s-max", "c-max", "ka", "escort", "sierra", "capri", "gt", "bronco"},
	"opel":       {"corsa", "astra", "insignia", "mokka", "crossland", "grandland", "zafira", "meriva", "adam", "karl", "combo", "vivaro", "movano", "vectra", "omega", "calibra", "tigra", "speedster", "gt"},
	"fiat":       {"500", "panda", "punto", "tipo", "500x", "500l", "bravo", "stilo", "grande punto", "doblo", "ducato", "freemont", "multipla", "barchetta", "coupe", "seicento", "uno", "croma"},
	"seat":       {"leon", "ibiza", "ateca", "arona", "tarraco", "alhambra", "altea", "toledo", "exeo", "mii", "cupra"},
	"skoda":      {"fabia", "octavia", "superb", "kodiaq", "karoq", "kamiq", "scala", "rapid", "yeti", "roomster", "citigo", "enyaq"},
	"hyundai":    {"i10", "i20", "i30", "i40", "tucson", "kona", "santa fe", "nexo", "ioniq", "veloster", "genesis", "coupe", "n"},
	"kia":        {"picanto", "rio", "ceed", "proceed", "sportage", "sorento", "stinger", "niro", "soul", "ev6", "stonic", "xceed", "optima", "carnival", "telluride"},
	"volvo":      {"v40", "v60", "v90", "s40", "s60", "s90", "xc40", "xc60", "xc90", "c30", "c70", "850", "940", "polestar"},
	"porsche":    {"911", "carrera", "turbo", "gt3", "gt2", "cayman", "boxster", "cayenne", "macan", "panamera", "taycan", "718", "944", "928", "968", "356"},
	"alfa romeo": {"giulia", "stelvio", "giulietta", "mito", "159", "156", "147", "166", "brera", "spider", "gtv", "4c", "tonale", "quadrifoglio"},
	"mini":       {"cooper", "one", "clubman", "countryman", "paceman", "cabrio", "jcw", "john cooper works", "s"},
	"dacia":      {"sandero", "duster", "logan", "spring", "jogger", "lodgy", "dokker"},
	"tesla":      {"model 3", "model s", "model x", "model y", "roadster", "cybertruck"},
	"lexus":      {"is", "es", "gs", "ls", "ct", "rc", "lc", "ux", "nx", "rx", "gx", "lx", "lfa"},
	"jaguar":     {"xe", "xf", "xj", "f-type", "f-pace", "e-pace", "i-pace", "x-type", "s-type"},
	"land rover": {"defender", "discovery", "range rover", "evoque", "velar", "sport", "freelander"},
	"jeep":       {"wrangler", "cherokee", "grand cherokee", "renegade", "compass", "gladiator"},
}

// sportVariants are trim suffixes appended to the extracted model when the
// text mentions one that the model name does not already contain.
var sportVariants = []string{"gti", "gtd", "rs", "type r", "sti", "wrx", "amg", "n", "m sport", "s line", "fr", "vrs"}

// Extract pulls price, mileage, year, make and model out of ad text.
func Extract(text string) model.PartialListing {
	var out model.PartialListing
	lower := strings.ToLower(text)

	if m := pricePattern.FindStringSubmatch(text); m != nil {
		out.PriceEUR = parseAmount(m[1])
	} else if m := priceLabelPattern.FindStringSubmatch(text); m != nil {
		out.PriceEUR = parseAmount(m[1])
	}

	if m := mileagePattern.FindStringSubmatch(text); m != nil {
		out.MileageKm = parseMileage(m[1])
	} else if m := mileageShortcut.FindStringSubmatch(text); m != nil {
		out.MileageKm = parseMileage(m[1])
	}

	if m := year2000Pattern.FindStringSubmatch(text); m != nil {
		out.Year = plausibleYear(m[1])
	}
	if out.Year == 0 {
		if m := year1900Pattern.FindStringSubmatch(text); m != nil {
			out.Year = plausibleYear(m[1])
		}
	}

	for _, mk := range makes {
		if !strings.Contains(lower, mk) {
			continue
		}
		out.Make = displayMake(mk)
		for _, mdl := range modelsByMake[mk] {
			if strings.Contains(lower, mdl) {
				out.Model = strings.ToUpper(mdl)
				break
			}
		}
		break
	}

	if out.Model != "" {
		modelLower := strings.ToLower(out.Model)
		for _, v := range sportVariants {
			if strings.Contains(lower, v) && !strings.Contains(modelLower, v) {
				out.Model += " " + strings.ToUpper(v)
				break
			}
		}
	}

	return out
}

func parseAmount(raw string) int {
	n, err := strconv.Atoi(numericSeparators.Replace(raw))
	if err != nil {
		return 0
	}
	return n
}

// parseMileage handles the French shorthand where "95" followed by "000 km"
// means 95000 km.
func parseMileage(raw string) int {
	cleaned := numericSeparators.Replace(raw)
	if len(cleaned) <= 3 {
		cleaned += "000"
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return n
}

func plausibleYear(raw string) int {
	y, err := strconv.Atoi(raw)
	if err != nil || y < minPlausibleYear || y > maxPlausibleYear {
		return 0
	}
	return y
}

func displayMake(mk string) string {
	if mk == "vw" {
		return "Volkswagen"
	}
	return strings.ToUpper(mk[:1]) + mk[1:]
}
