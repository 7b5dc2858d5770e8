package refdata

import (
	"strings"

	"github.com/venatus57/autoanalyseur/internal/common"
)

// ReliabilityModel carries the known weak points of a model line.
type ReliabilityModel struct {
	Key                string
	Name               string
	Generations        []string
	WatchPoints        []string
	ReliableEngines    []string
	ProblematicEngines []string
}

// ReliabilityMake groups model notes under a manufacturer with its
// overall reliability reputation.
type ReliabilityMake struct {
	Name        string
	Reliability string
	Models      []ReliabilityModel
}

// ModelInfo is the flattened lookup result for one make/model pair.
type ModelInfo struct {
	Make               string
	MakeReliability    string
	Model              string
	WatchPoints        []string
	ReliableEngines    []string
	ProblematicEngines []string
}

// FindModelInfo resolves reliability notes for a make/model pair. Model
// matching is a bidirectional containment on normalized keys so "Clio 4"
// matches the "clio" entry.
func FindModelInfo(make, mdl string) (ModelInfo, bool) {
	makeKey := common.NormalizeKey(make)
	modelKey := common.NormalizeKey(mdl)
	if makeKey == "" || modelKey == "" {
		return ModelInfo{}, false
	}
	for _, mk := range Reliability {
		if common.NormalizeKey(mk.Name) != makeKey {
			continue
		}
		for _, m := range mk.Models {
			key := common.NormalizeKey(m.Key)
			if strings.Contains(modelKey, key) || strings.Contains(key, modelKey) {
				return ModelInfo{
					Make:               mk.Name,
					MakeReliability:    mk.Reliability,
					Model:              m.Name,
					WatchPoints:        m.WatchPoints,
					ReliableEngines:    m.ReliableEngines,
					ProblematicEngines: m.ProblematicEngines,
				}, true
			}
		}
	}
	return ModelInfo{}, false
}

// Reliability holds indicative per-model reliability notes for common
// vehicles on the French market.
var Reliability = []ReliabilityMake{
	{Name: "Renault", Reliability: "moyenne", Models: []ReliabilityModel{
		{
			Key: "clio", Name: "Clio",
			Generations:        []string{"Clio 4 (2012-2019)", "Clio 5 (2019+)"},
			WatchPoints:        []string{"Turbo (TCe)", "Boîte EDC", "Électronique"},
			ReliableEngines:    []string{"1.5 dCi", "1.0 SCe"},
			ProblematicEngines: []string{"1.2 TCe (chaîne distribution)"},
		},
		{
			Key: "megane", Name: "Mégane",
			Generations:        []string{"Mégane 3 (2008-2016)", "Mégane 4 (2016+)"},
			WatchPoints:        []string{"Boîte EDC", "Électronique", "Injecteurs diesel"},
			ReliableEngines:    []string{"1.5 dCi", "1.6 dCi"},
			ProblematicEngines: []string{"1.2 TCe", "1.3 TCe (early)"},
		},
		{
			Key: "captur", Name: "Captur",
			Generations:        []string{"Captur 1 (2013-2019)", "Captur 2 (2019+)"},
			WatchPoints:        []string{"Mêmes que Clio", "Suspension"},
			ReliableEngines:    []string{"1.5 dCi"},
			ProblematicEngines: []string{"1.2 TCe"},
		},
	}},
	{Name: "Peugeot", Reliability: "moyenne_bonne", Models: []ReliabilityModel{
		{
			Key: "208", Name: "208",
			Generations:        []string{"208 I (2012-2019)", "208 II (2019+)"},
			WatchPoints:        []string{"Boîte EAT6/EAT8", "Courroie de distribution"},
			ReliableEngines:    []string{"1.2 PureTech 3 cylindres (récents)", "1.5 BlueHDi"},
			ProblematicEngines: []string{"1.2 PureTech (early - courroie)"},
		},
		{
			Key: "308", Name: "308",
			Generations:        []string{"308 II (2013-2021)", "308 III (2021+)"},
			WatchPoints:        []string{"1.2 PureTech courroie", "Boîte EAT"},
			ReliableEngines:    []string{"1.5 BlueHDi", "1.6 BlueHDi"},
			ProblematicEngines: []string{"1.2 PureTech (distribution)"},
		},
		{
			Key: "3008", Name: "3008",
			Generations:        []string{"3008 II (2016+)"},
			WatchPoints:        []string{"Boîte EAT8", "Électronique"},
			ReliableEngines:    []string{"1.5 BlueHDi", "1.6 BlueHDi"},
			ProblematicEngines: []string{"1.6 THP (early)"},
		},
	}},
	{Name: "Citroën", Reliability: "moyenne", Models: []ReliabilityModel{
		{
			Key: "c3", Name: "C3",
			Generations:        []string{"C3 III (2016+)"},
			WatchPoints:        []string{"BVA EAT6", "Suspension"},
			ReliableEngines:    []string{"1.5 BlueHDi"},
			ProblematicEngines: []string{"1.2 PureTech (distribution)"},
		},
	}},
	{Name: "Volkswagen", Reliability: "bonne", Models: []ReliabilityModel{
		{
			Key: "golf", Name: "Golf",
			Generations:        []string{"Golf 7 (2012-2020)", "Golf 8 (2020+)"},
			WatchPoints:        []string{"Boîte DSG", "Chaîne distribution (TSI)", "Turbo"},
			ReliableEngines:    []string{"2.0 TDI", "1.5 TSI"},
			ProblematicEngines: []string{"1.4 TSI (early)", "1.2 TSI"},
		},
		{
			Key: "polo", Name: "Polo",
			Generations:     []string{"Polo 6 (2017+)"},
			WatchPoints:     []string{"DSG", "Coûts d'entretien"},
			ReliableEngines: []string{"1.0 TSI", "1.6 TDI"},
		},
		{
			Key: "tiguan", Name: "Tiguan",
			Generations:        []string{"Tiguan II (2016+)"},
			WatchPoints:        []string{"DSG", "Consommation AdBlue"},
			ReliableEngines:    []string{"2.0 TDI"},
			ProblematicEngines: []string{"1.4 TSI (early)"},
		},
	}},
	{Name: "BMW", Reliability: "bonne", Models: []ReliabilityModel{
		{
			Key: "serie3", Name: "Série 3",
			Generations:        []string{"F30/F31 (2012-2019)", "G20/G21 (2019+)"},
			WatchPoints:        []string{"Chaîne distribution (N47)", "Turbo", "Coûts d'entretien"},
			ReliableEngines:    []string{"320d (B47)", "330d"},
			ProblematicEngines: []string{"318d/320d N47 (chaîne)"},
		},
		{
			Key: "serie1", Name: "Série 1",
			Generations:        []string{"F20/F21 (2011-2019)", "F40 (2019+)"},
			WatchPoints:        []string{"Chaîne distribution", "Coûts d'entretien"},
			ReliableEngines:    []string{"118d (B47)", "120d"},
			ProblematicEngines: []string{"N47 diesel (chaîne)"},
		},
	}},
	{Name: "Audi", Reliability: "bonne", Models: []ReliabilityModel{
		{
			Key: "a3", Name: "A3",
			Generations:        []string{"8V (2012-2020)", "8Y (2020+)"},
			WatchPoints:        []string{"DSG", "Chaîne distribution", "Électronique"},
			ReliableEngines:    []string{"2.0 TDI", "1.5 TFSI"},
			ProblematicEngines: []string{"1.4 TFSI (early)", "1.8 TFSI"},
		},
		{
			Key: "a4", Name: "A4",
			Generations:        []string{"B8 (2007-2015)", "B9 (2015+)"},
			WatchPoints:        []string{"Consommation huile (TFSI)", "Mechatronique DSG"},
			ReliableEngines:    []string{"2.0 TDI"},
			ProblematicEngines: []string{"2.0 TFSI (consommation huile)"},
		},
	}},
	{Name: "Mercedes", Reliability: "bonne", Models: []ReliabilityModel{
		{
			Key: "classea", Name: "Classe A",
			Generations:     []string{"W176 (2012-2018)", "W177 (2018+)"},
			WatchPoints:     []string{"Boîte DCT", "Électronique complexe"},
			ReliableEngines: []string{"A180d", "A200d"},
		},
		{
			Key: "classec", Name: "Classe C",
			Generations:     []string{"W205 (2014-2021)", "W206 (2021+)"},
			WatchPoints:     []string{"Coûts d'entretien", "Électronique"},
			ReliableEngines: []string{"C220d", "C300d"},
		},
	}},
	{Name: "Toyota", Reliability: "excellente", Models: []ReliabilityModel{
		{
			Key: "yaris", Name: "Yaris",
			Generations:     []string{"Yaris 3 (2011-2020)", "Yaris 4 (2020+)"},
			WatchPoints:     []string{"Peu de points faibles"},
			ReliableEngines: []string{"1.5 Hybrid", "1.0 VVT-i", "1.5 VVT-i"},
		},
		{
			Key: "corolla", Name: "Corolla",
			Generations:     []string{"E210 (2019+)"},
			WatchPoints:     []string{"Très peu"},
			ReliableEngines: []string{"1.8 Hybrid", "2.0 Hybrid"},
		},
		{
			Key: "chr", Name: "C-HR",
			Generations:     []string{"AX10 (2016+)"},
			WatchPoints:     []string{"Visibilité arrière"},
			ReliableEngines: []string{"1.8 Hybrid", "2.0 Hybrid"},
		},
	}},
	{Name: "Honda", Reliability: "excellente", Models: []ReliabilityModel{
		{
			Key: "civic", Name: "Civic",
			Generations:     []string{"10e gen (2017-2022)", "11e gen (2022+)"},
			WatchPoints:     []string{"Moteur 1.5 VTEC Turbo (dilution huile - corrigé)"},
			ReliableEngines: []string{"1.0 VTEC Turbo", "2.0 i-VTEC"},
		},
	}},
}
