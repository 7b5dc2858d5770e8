// Package refdata holds the immutable reference tables the analyzers run
// against: market price curves, the modification catalog, dangerous
// combination rules, reliability notes, red flags, urgency signals and
// scoring weights. Data only; no I/O.
package refdata

import "github.com/venatus57/autoanalyseur/internal/common"

// Variant is one engine/trim entry of a generation. DepreciationRate is
// the annual loss rate; negative rates model appreciating collector cars.
type Variant struct {
	Name             string
	NewPriceEUR      int
	DepreciationRate float64
	Collector        bool
}

// Generation covers a production run with its expected yearly mileage.
type Generation struct {
	Code         string
	FirstYear    int
	LastYear     int
	AvgKmPerYear int
	Variants     []Variant
}

// PriceModel is a model line with its generations in release order.
type PriceModel struct {
	Name        string
	Generations []Generation
}

// PriceMake groups the model lines of one manufacturer.
type PriceMake struct {
	Name   string
	Models []PriceModel
}

// FindMake returns the price table of a make, matched on normalized key.
func FindMake(make string) (PriceMake, bool) {
	key := common.NormalizeKey(make)
	if key == "" {
		return PriceMake{}, false
	}
	for _, m := range MarketPrices {
		if common.NormalizeKey(m.Name) == key {
			return m, true
		}
	}
	return PriceMake{}, false
}

// Makes returns the referenced manufacturer names.
func Makes() []string {
	out := make([]string, 0, len(MarketPrices))
	for _, m := range MarketPrices {
		out = append(out, m.Name)
	}
	return out
}

// Models returns the model line names known for a make, or nil when the
// make is not referenced.
func Models(makeName string) []string {
	m, ok := FindMake(makeName)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(m.Models))
	for _, mod := range m.Models {
		out = append(out, mod.Name)
	}
	return out
}

// MarketPrices is the static price reference. New prices are launch-era
// French list prices; depreciation rates are per-segment estimates
// (city cars 12-15%, compacts 10-12%, premium 8-10%, cult JDM 0-5% or
// appreciating).
var MarketPrices = []PriceMake{
	{Name: "volkswagen", Models: []PriceModel{
		{Name: "golf", Generations: []Generation{
			{Code: "7", FirstYear: 2012, LastYear: 2019, AvgKmPerYear: 15000, Variants: []Variant{
				{Name: "1.4 TSI 125", NewPriceEUR: 25000, DepreciationRate: 0.11},
				{Name: "2.0 TSI GTI 230", NewPriceEUR: 38000, DepreciationRate: 0.09},
				{Name: "2.0 TSI GTI 245", NewPriceEUR: 42000, DepreciationRate: 0.08},
				{Name: "2.0 TSI R 300", NewPriceEUR: 45000, DepreciationRate: 0.07, Collector: true},
				{Name: "2.0 TDI 150", NewPriceEUR: 30000, DepreciationRate: 0.10},
				{Name: "2.0 TDI GTD 184", NewPriceEUR: 38000, DepreciationRate: 0.09},
			}},
			{Code: "8", FirstYear: 2019, LastYear: 2025, AvgKmPerYear: 12000, Variants: []Variant{
				{Name: "1.5 TSI 130", NewPriceEUR: 33000, DepreciationRate: 0.11},
				{Name: "2.0 TSI GTI 245", NewPriceEUR: 48000, DepreciationRate: 0.09},
				{Name: "2.0 TSI R 320", NewPriceEUR: 55000, DepreciationRate: 0.07},
				{Name: "2.0 TDI 150", NewPriceEUR: 38000, DepreciationRate: 0.10},
			}},
		}},
		{Name: "polo", Generations: []Generation{
			{Code: "6", FirstYear: 2017, LastYear: 2025, AvgKmPerYear: 12000, Variants: []Variant{
				{Name: "1.0 TSI 95", NewPriceEUR: 20000, DepreciationRate: 0.13},
				{Name: "2.0 TSI GTI 200", NewPriceEUR: 32000, DepreciationRate: 0.10},
			}},
		}},
		{Name: "scirocco", Generations: []Generation{
			{Code: "3", FirstYear: 2008, LastYear: 2017, AvgKmPerYear: 12000, Variants: []Variant{
				{Name: "1.4 TSI 160", NewPriceEUR: 28000, DepreciationRate: 0.10},
				{Name: "2.0 TSI 200", NewPriceEUR: 35000, DepreciationRate: 0.09},
				{Name: "2.0 TSI R 265", NewPriceEUR: 42000, DepreciationRate: 0.07, Collector: true},
			}},
		}},
	}},
	{Name: "bmw", Models: []PriceModel{
		{Name: "serie 1", Generations: []Generation{
			{Code: "f20", FirstYear: 2011, LastYear: 2019, AvgKmPerYear: 15000, Variants: []Variant{
				{Name: "118i 136", NewPriceEUR: 32000, DepreciationRate: 0.11},
				{Name: "M135i 326", NewPriceEUR: 48000, DepreciationRate: 0.08},
				{Name: "M140i 340", NewPriceEUR: 52000, DepreciationRate: 0.07, Collector: true},
				{Name: "118d 150", NewPriceEUR: 34000, DepreciationRate: 0.10},
			}},
		}},
		{Name: "serie 3", Generations: []Generation{
			{Code: "e90", FirstYear: 2005, LastYear: 2012, AvgKmPerYear: 18000, Variants: []Variant{
				{Name: "320i 170", NewPriceEUR: 35000, DepreciationRate: 0.10},
				{Name: "325i 218", NewPriceEUR: 42000, DepreciationRate: 0.09},
				{Name: "335i 306", NewPriceEUR: 52000, DepreciationRate: 0.08},
				{Name: "M3 420", NewPriceEUR: 75000, DepreciationRate: 0.05, Collector: true},
				{Name: "320d 177", NewPriceEUR: 38000, DepreciationRate: 0.10},
			}},
			{Code: "f30", FirstYear: 2012, LastYear: 2019, AvgKmPerYear: 18000, Variants: []Variant{
				{Name: "320i 184", NewPriceEUR: 40000, DepreciationRate: 0.10},
				{Name: "340i 326", NewPriceEUR: 55000, DepreciationRate: 0.08},
				{Name: "M3 431", NewPriceEUR: 80000, DepreciationRate: 0.06, Collector: true},
				{Name: "320d 190", NewPriceEUR: 42000, DepreciationRate: 0.10},
			}},
		}},
		{Name: "serie 5", Generations: []Generation{
			{Code: "f10", FirstYear: 2010, LastYear: 2017, AvgKmPerYear: 25000, Variants: []Variant{
				{Name: "520i 184", NewPriceEUR: 48000, DepreciationRate: 0.11},
				{Name: "535i 306", NewPriceEUR: 62000, DepreciationRate: 0.10},
				{Name: "M5 560", NewPriceEUR: 110000, DepreciationRate: 0.08, Collector: true},
				{Name: "520d 184", NewPriceEUR: 50000, DepreciationRate: 0.10},
			}},
		}},
		{Name: "m2", Generations: []Generation{
			{Code: "f87", FirstYear: 2016, LastYear: 2021, AvgKmPerYear: 8000, Variants: []Variant{
				{Name: "M2 370", NewPriceEUR: 62000, DepreciationRate: 0.06, Collector: true},
				{Name: "M2 Competition 410", NewPriceEUR: 68000, DepreciationRate: 0.05, Collector: true},
				{Name: "M2 CS 450", NewPriceEUR: 95000, DepreciationRate: 0.03, Collector: true},
			}},
		}},
	}},
	{Name: "audi", Models: []PriceModel{
		{Name: "a3", Generations: []Generation{
			{Code: "8v", FirstYear: 2012, LastYear: 2020, AvgKmPerYear: 15000, Variants: []Variant{
				{Name: "1.4 TFSI 150", NewPriceEUR: 32000, DepreciationRate: 0.11},
				{Name: "S3 310", NewPriceEUR: 48000, DepreciationRate: 0.08},
				{Name: "RS3 400", NewPriceEUR: 62000, DepreciationRate: 0.06, Collector: true},
				{Name: "2.0 TDI 150", NewPriceEUR: 35000, DepreciationRate: 0.10},
			}},
		}},
		{Name: "a4", Generations: []Generation{
			{Code: "b9", FirstYear: 2015, LastYear: 2025, AvgKmPerYear: 20000, Variants: []Variant{
				{Name: "2.0 TFSI 190", NewPriceEUR: 45000, DepreciationRate: 0.10},
				{Name: "S4 354", NewPriceEUR: 68000, DepreciationRate: 0.08},
				{Name: "RS4 450", NewPriceEUR: 85000, DepreciationRate: 0.06, Collector: true},
				{Name: "2.0 TDI 190", NewPriceEUR: 48000, DepreciationRate: 0.10},
			}},
		}},
		{Name: "tt", Generations: []Generation{
			{Code: "8s", FirstYear: 2014, LastYear: 2023, AvgKmPerYear: 10000, Variants: []Variant{
				{Name: "2.0 TFSI 230", NewPriceEUR: 45000, DepreciationRate: 0.09},
				{Name: "TTS 310", NewPriceEUR: 55000, DepreciationRate: 0.08},
				{Name: "TTRS 400", NewPriceEUR: 72000, DepreciationRate: 0.06, Collector: true},
			}},
		}},
		{Name: "r8", Generations: []Generation{
			{Code: "1", FirstYear: 2007, LastYear: 2015, AvgKmPerYear: 5000, Variants: []Variant{
				{Name: "4.2 V8 420", NewPriceEUR: 130000, DepreciationRate: 0.05, Collector: true},
				{Name: "5.2 V10 525", NewPriceEUR: 170000, DepreciationRate: 0.04, Collector: true},
			}},
		}},
	}},
	{Name: "mercedes", Models: []PriceModel{
		{Name: "classe a", Generations: []Generation{
			{Code: "w177", FirstYear: 2018, LastYear: 2025, AvgKmPerYear: 15000, Variants: []Variant{
				{Name: "A200 163", NewPriceEUR: 40000, DepreciationRate: 0.11},
				{Name: "A35 AMG 306", NewPriceEUR: 55000, DepreciationRate: 0.09},
				{Name: "A45 AMG 421", NewPriceEUR: 68000, DepreciationRate: 0.07, Collector: true},
			}},
		}},
		{Name: "classe c", Generations: []Generation{
			{Code: "w205", FirstYear: 2014, LastYear: 2021, AvgKmPerYear: 20000, Variants: []Variant{
				{Name: "C200 184", NewPriceEUR: 45000, DepreciationRate: 0.10},
				{Name: "C43 AMG 390", NewPriceEUR: 70000, DepreciationRate: 0.08},
				{Name: "C63 AMG 476", NewPriceEUR: 90000, DepreciationRate: 0.06, Collector: true},
			}},
		}},
		{Name: "classe e", Generations: []Generation{
			{Code: "w213", FirstYear: 2016, LastYear: 2023, AvgKmPerYear: 25000, Variants: []Variant{
				{Name: "E200 184", NewPriceEUR: 55000, DepreciationRate: 0.10},
				{Name: "E53 AMG 435", NewPriceEUR: 85000, DepreciationRate: 0.08},
				{Name: "E63 AMG 612", NewPriceEUR: 120000, DepreciationRate: 0.06, Collector: true},
			}},
		}},
	}},
	{Name: "peugeot", Models: []PriceModel{
		{Name: "208", Generations: []Generation{
			{Code: "2", FirstYear: 2019, LastYear: 2025, AvgKmPerYear: 12000, Variants: []Variant{
				{Name: "1.2 PureTech 100", NewPriceEUR: 22000, DepreciationRate: 0.13},
				{Name: "1.2 PureTech 130", NewPriceEUR: 26000, DepreciationRate: 0.12},
			}},
		}},
		{Name: "308", Generations: []Generation{
			{Code: "2", FirstYear: 2013, LastYear: 2021, AvgKmPerYear: 15000, Variants: []Variant{
				{Name: "1.2 PureTech 130", NewPriceEUR: 27000, DepreciationRate: 0.11},
				{Name: "1.6 THP GTi 270", NewPriceEUR: 40000, DepreciationRate: 0.09},
			}},
			{Code: "3", FirstYear: 2021, LastYear: 2025, AvgKmPerYear: 12000, Variants: []Variant{
				{Name: "1.2 PureTech 130", NewPriceEUR: 32000, DepreciationRate: 0.11},
				{Name: "1.6 Hybrid 225 PSE", NewPriceEUR: 52000, DepreciationRate: 0.09},
			}},
		}},
		{Name: "508", Generations: []Generation{
			{Code: "2", FirstYear: 2018, LastYear: 2025, AvgKmPerYear: 20000, Variants: []Variant{
				{Name: "1.6 PureTech 180", NewPriceEUR: 42000, DepreciationRate: 0.11},
				{Name: "1.6 Hybrid 360 PSE", NewPriceEUR: 65000, DepreciationRate: 0.09},
			}},
		}},
	}},
	{Name: "renault", Models: []PriceModel{
		{Name: "clio", Generations: []Generation{
			{Code: "4", FirstYear: 2012, LastYear: 2019, AvgKmPerYear: 12000, Variants: []Variant{
				{Name: "1.2 TCe 120", NewPriceEUR: 20000, DepreciationRate: 0.13},
				{Name: "1.6 RS 200", NewPriceEUR: 28000, DepreciationRate: 0.09},
				{Name: "1.6 RS 220 Trophy", NewPriceEUR: 32000, DepreciationRate: 0.07, Collector: true},
			}},
			{Code: "5", FirstYear: 2019, LastYear: 2025, AvgKmPerYear: 12000, Variants: []Variant{
				{Name: "1.0 TCe 100", NewPriceEUR: 22000, DepreciationRate: 0.12},
				{Name: "1.3 TCe 130", NewPriceEUR: 26000, DepreciationRate: 0.11},
			}},
		}},
		{Name: "megane", Generations: []Generation{
			{Code: "4", FirstYear: 2015, LastYear: 2024, AvgKmPerYear: 15000, Variants: []Variant{
				{Name: "1.3 TCe 140", NewPriceEUR: 29000, DepreciationRate: 0.11},
				{Name: "1.8 RS 280", NewPriceEUR: 42000, DepreciationRate: 0.08},
				{Name: "1.8 RS Trophy 300", NewPriceEUR: 48000, DepreciationRate: 0.06, Collector: true},
			}},
		}},
	}},
	{Name: "toyota", Models: []PriceModel{
		{Name: "yaris", Generations: []Generation{
			{Code: "4", FirstYear: 2020, LastYear: 2025, AvgKmPerYear: 12000, Variants: []Variant{
				{Name: "1.5 Hybrid 116", NewPriceEUR: 24000, DepreciationRate: 0.10},
				{Name: "1.6 GR 261", NewPriceEUR: 42000, DepreciationRate: 0.05, Collector: true},
			}},
		}},
		{Name: "gt86", Generations: []Generation{
			{Code: "1", FirstYear: 2012, LastYear: 2021, AvgKmPerYear: 8000, Variants: []Variant{
				{Name: "2.0 200", NewPriceEUR: 32000, DepreciationRate: 0.06, Collector: true},
			}},
		}},
		{Name: "gr86", Generations: []Generation{
			{Code: "1", FirstYear: 2021, LastYear: 2025, AvgKmPerYear: 6000, Variants: []Variant{
				{Name: "2.4 234", NewPriceEUR: 35000, DepreciationRate: 0.05, Collector: true},
			}},
		}},
		{Name: "supra", Generations: []Generation{
			{Code: "a80", FirstYear: 1993, LastYear: 2002, AvgKmPerYear: 3000, Variants: []Variant{
				{Name: "3.0 Twin Turbo 330", NewPriceEUR: 55000, DepreciationRate: -0.08, Collector: true},
			}},
			{Code: "a90", FirstYear: 2019, LastYear: 2025, AvgKmPerYear: 6000, Variants: []Variant{
				{Name: "2.0 258", NewPriceEUR: 52000, DepreciationRate: 0.07},
				{Name: "3.0 340", NewPriceEUR: 62000, DepreciationRate: 0.05, Collector: true},
				{Name: "3.0 GRMN 500", NewPriceEUR: 85000, DepreciationRate: 0.02, Collector: true},
			}},
		}},
		{Name: "celica", Generations: []Generation{
			{Code: "t23", FirstYear: 1999, LastYear: 2006, AvgKmPerYear: 8000, Variants: []Variant{
				{Name: "1.8 143", NewPriceEUR: 25000, DepreciationRate: 0.08},
				{Name: "1.8 TS 192", NewPriceEUR: 30000, DepreciationRate: 0.06, Collector: true},
			}},
		}},
		{Name: "mr2", Generations: []Generation{
			{Code: "w30", FirstYear: 1999, LastYear: 2007, AvgKmPerYear: 5000, Variants: []Variant{
				{Name: "1.8 140", NewPriceEUR: 28000, DepreciationRate: 0.04, Collector: true},
			}},
		}},
	}},
	{Name: "honda", Models: []PriceModel{
		{Name: "civic", Generations: []Generation{
			{Code: "fk2", FirstYear: 2015, LastYear: 2017, AvgKmPerYear: 10000, Variants: []Variant{
				{Name: "2.0 Type R 310", NewPriceEUR: 42000, DepreciationRate: 0.04, Collector: true},
			}},
			{Code: "fk8", FirstYear: 2017, LastYear: 2022, AvgKmPerYear: 10000, Variants: []Variant{
				{Name: "2.0 Type R 320", NewPriceEUR: 45000, DepreciationRate: 0.04, Collector: true},
			}},
			{Code: "fl5", FirstYear: 2022, LastYear: 2025, AvgKmPerYear: 8000, Variants: []Variant{
				{Name: "2.0 Type R 329", NewPriceEUR: 52000, DepreciationRate: 0.03, Collector: true},
			}},
			{Code: "10", FirstYear: 2017, LastYear: 2022, AvgKmPerYear: 12000, Variants: []Variant{
				{Name: "1.0 VTEC 126", NewPriceEUR: 25000, DepreciationRate: 0.11},
				{Name: "1.5 VTEC 182", NewPriceEUR: 30000, DepreciationRate: 0.10},
			}},
		}},
		{Name: "s2000", Generations: []Generation{
			{Code: "ap1", FirstYear: 1999, LastYear: 2009, AvgKmPerYear: 5000, Variants: []Variant{
				{Name: "2.0 VTEC 240", NewPriceEUR: 38000, DepreciationRate: -0.05, Collector: true},
			}},
		}},
		{Name: "nsx", Generations: []Generation{
			{Code: "na1", FirstYear: 1990, LastYear: 2005, AvgKmPerYear: 3000, Variants: []Variant{
				{Name: "3.0 VTEC 274", NewPriceEUR: 85000, DepreciationRate: -0.10, Collector: true},
				{Name: "3.2 VTEC 290", NewPriceEUR: 95000, DepreciationRate: -0.10, Collector: true},
			}},
		}},
		{Name: "integra", Generations: []Generation{
			{Code: "dc2", FirstYear: 1994, LastYear: 2001, AvgKmPerYear: 5000, Variants: []Variant{
				{Name: "1.8 Type R 190", NewPriceEUR: 28000, DepreciationRate: -0.03, Collector: true},
			}},
		}},
		{Name: "prelude", Generations: []Generation{
			{Code: "bb", FirstYear: 1996, LastYear: 2001, AvgKmPerYear: 6000, Variants: []Variant{
				{Name: "2.2 VTEC 185", NewPriceEUR: 30000, DepreciationRate: 0.02, Collector: true},
			}},
		}},
	}},
	{Name: "nissan", Models: []PriceModel{
		{Name: "370z", Generations: []Generation{
			{Code: "z34", FirstYear: 2009, LastYear: 2020, AvgKmPerYear: 8000, Variants: []Variant{
				{Name: "3.7 V6 328", NewPriceEUR: 42000, DepreciationRate: 0.06, Collector: true},
				{Name: "3.7 V6 Nismo 344", NewPriceEUR: 55000, DepreciationRate: 0.04, Collector: true},
			}},
		}},
		{Name: "350z", Generations: []Generation{
			{Code: "z33", FirstYear: 2003, LastYear: 2009, AvgKmPerYear: 8000, Variants: []Variant{
				{Name: "3.5 V6 280", NewPriceEUR: 38000, DepreciationRate: 0.05, Collector: true},
				{Name: "3.5 V6 313", NewPriceEUR: 45000, DepreciationRate: 0.04, Collector: true},
			}},
		}},
		{Name: "gtr", Generations: []Generation{
			{Code: "r35", FirstYear: 2009, LastYear: 2024, AvgKmPerYear: 5000, Variants: []Variant{
				{Name: "3.8 V6 BiTurbo 485", NewPriceEUR: 95000, DepreciationRate: 0.05, Collector: true},
				{Name: "3.8 V6 Nismo 600", NewPriceEUR: 180000, DepreciationRate: 0.03, Collector: true},
			}},
		}},
		{Name: "skyline", Generations: []Generation{
			{Code: "r32", FirstYear: 1989, LastYear: 1994, AvgKmPerYear: 2000, Variants: []Variant{
				{Name: "2.6 GTR 280", NewPriceEUR: 45000, DepreciationRate: -0.15, Collector: true},
			}},
			{Code: "r33", FirstYear: 1995, LastYear: 1998, AvgKmPerYear: 2000, Variants: []Variant{
				{Name: "2.6 GTR 280", NewPriceEUR: 50000, DepreciationRate: -0.12, Collector: true},
			}},
			{Code: "r34", FirstYear: 1999, LastYear: 2002, AvgKmPerYear: 2000, Variants: []Variant{
				{Name: "2.6 GTR 280", NewPriceEUR: 55000, DepreciationRate: -0.20, Collector: true},
			}},
		}},
		{Name: "silvia", Generations: []Generation{
			{Code: "s15", FirstYear: 1999, LastYear: 2002, AvgKmPerYear: 5000, Variants: []Variant{
				{Name: "2.0 Turbo 250", NewPriceEUR: 32000, DepreciationRate: -0.10, Collector: true},
			}},
		}},
		{Name: "200sx", Generations: []Generation{
			{Code: "s14", FirstYear: 1994, LastYear: 2000, AvgKmPerYear: 6000, Variants: []Variant{
				{Name: "2.0 Turbo 200", NewPriceEUR: 28000, DepreciationRate: -0.05, Collector: true},
			}},
		}},
	}},
	{Name: "mazda", Models: []PriceModel{
		{Name: "mx5", Generations: []Generation{
			{Code: "na", FirstYear: 1989, LastYear: 1998, AvgKmPerYear: 5000, Variants: []Variant{
				{Name: "1.6 115", NewPriceEUR: 20000, DepreciationRate: -0.02, Collector: true},
				{Name: "1.8 131", NewPriceEUR: 22000, DepreciationRate: -0.03, Collector: true},
			}},
			{Code: "nb", FirstYear: 1998, LastYear: 2005, AvgKmPerYear: 6000, Variants: []Variant{
				{Name: "1.6 110", NewPriceEUR: 22000, DepreciationRate: 0.02, Collector: true},
				{Name: "1.8 146", NewPriceEUR: 25000, DepreciationRate: 0.01, Collector: true},
			}},
			{Code: "nc", FirstYear: 2005, LastYear: 2015, AvgKmPerYear: 8000, Variants: []Variant{
				{Name: "1.8 126", NewPriceEUR: 26000, DepreciationRate: 0.05},
				{Name: "2.0 160", NewPriceEUR: 30000, DepreciationRate: 0.04, Collector: true},
			}},
			{Code: "nd", FirstYear: 2015, LastYear: 2025, AvgKmPerYear: 6000, Variants: []Variant{
				{Name: "1.5 132", NewPriceEUR: 30000, DepreciationRate: 0.06},
				{Name: "2.0 184", NewPriceEUR: 35000, DepreciationRate: 0.05, Collector: true},
			}},
		}},
		{Name: "rx7", Generations: []Generation{
			{Code: "fd", FirstYear: 1992, LastYear: 2002, AvgKmPerYear: 3000, Variants: []Variant{
				{Name: "1.3 Biturbo 255", NewPriceEUR: 45000, DepreciationRate: -0.10, Collector: true},
			}},
		}},
		{Name: "rx8", Generations: []Generation{
			{Code: "1", FirstYear: 2003, LastYear: 2012, AvgKmPerYear: 8000, Variants: []Variant{
				{Name: "1.3 Renesis 192", NewPriceEUR: 35000, DepreciationRate: 0.08},
				{Name: "1.3 Renesis 231", NewPriceEUR: 40000, DepreciationRate: 0.07},
			}},
		}},
		{Name: "3", Generations: []Generation{
			{Code: "4", FirstYear: 2019, LastYear: 2025, AvgKmPerYear: 12000, Variants: []Variant{
				{Name: "2.0 SkyActiv-G 122", NewPriceEUR: 26000, DepreciationRate: 0.10},
				{Name: "2.0 SkyActiv-X 180", NewPriceEUR: 32000, DepreciationRate: 0.09},
			}},
		}},
	}},
	{Name: "subaru", Models: []PriceModel{
		{Name: "impreza", Generations: []Generation{
			{Code: "gc8", FirstYear: 1993, LastYear: 2000, AvgKmPerYear: 5000, Variants: []Variant{
				{Name: "2.0 Turbo WRX 218", NewPriceEUR: 32000, DepreciationRate: -0.02, Collector: true},
				{Name: "2.0 Turbo STI 280", NewPriceEUR: 42000, DepreciationRate: -0.05, Collector: true},
			}},
			{Code: "gdb", FirstYear: 2000, LastYear: 2007, AvgKmPerYear: 8000, Variants: []Variant{
				{Name: "2.0 Turbo WRX 225", NewPriceEUR: 35000, DepreciationRate: 0.03, Collector: true},
				{Name: "2.0 Turbo STI 280", NewPriceEUR: 45000, DepreciationRate: 0.02, Collector: true},
			}},
		}},
		{Name: "wrx", Generations: []Generation{
			{Code: "va", FirstYear: 2014, LastYear: 2021, AvgKmPerYear: 10000, Variants: []Variant{
				{Name: "2.0 Turbo WRX 268", NewPriceEUR: 42000, DepreciationRate: 0.06},
				{Name: "2.5 Turbo STI 300", NewPriceEUR: 52000, DepreciationRate: 0.04, Collector: true},
			}},
		}},
		{Name: "brz", Generations: []Generation{
			{Code: "1", FirstYear: 2012, LastYear: 2021, AvgKmPerYear: 8000, Variants: []Variant{
				{Name: "2.0 200", NewPriceEUR: 32000, DepreciationRate: 0.06, Collector: true},
			}},
		}},
	}},
	{Name: "mitsubishi", Models: []PriceModel{
		{Name: "lancer evolution", Generations: []Generation{
			{Code: "9", FirstYear: 2005, LastYear: 2007, AvgKmPerYear: 5000, Variants: []Variant{
				{Name: "2.0 Turbo 280", NewPriceEUR: 45000, DepreciationRate: -0.03, Collector: true},
			}},
			{Code: "10", FirstYear: 2007, LastYear: 2016, AvgKmPerYear: 6000, Variants: []Variant{
				{Name: "2.0 Turbo 295", NewPriceEUR: 50000, DepreciationRate: 0.02, Collector: true},
				{Name: "2.0 Turbo FQ400 409", NewPriceEUR: 65000, DepreciationRate: -0.02, Collector: true},
			}},
		}},
		{Name: "3000gt", Generations: []Generation{
			{Code: "1", FirstYear: 1990, LastYear: 2000, AvgKmPerYear: 4000, Variants: []Variant{
				{Name: "3.0 V6 BiTurbo 320", NewPriceEUR: 55000, DepreciationRate: -0.05, Collector: true},
			}},
		}},
		{Name: "eclipse", Generations: []Generation{
			{Code: "2g", FirstYear: 1995, LastYear: 1999, AvgKmPerYear: 6000, Variants: []Variant{
				{Name: "2.0 Turbo GSX 210", NewPriceEUR: 32000, DepreciationRate: 0.03, Collector: true},
			}},
		}},
	}},
	{Name: "ford", Models: []PriceModel{
		{Name: "fiesta", Generations: []Generation{
			{Code: "7", FirstYear: 2017, LastYear: 2023, AvgKmPerYear: 12000, Variants: []Variant{
				{Name: "1.0 EcoBoost 125", NewPriceEUR: 23000, DepreciationRate: 0.11},
				{Name: "1.5 EcoBoost ST 200", NewPriceEUR: 32000, DepreciationRate: 0.08},
			}},
		}},
		{Name: "focus", Generations: []Generation{
			{Code: "3", FirstYear: 2011, LastYear: 2018, AvgKmPerYear: 15000, Variants: []Variant{
				{Name: "1.0 EcoBoost 125", NewPriceEUR: 25000, DepreciationRate: 0.11},
				{Name: "2.0 EcoBoost ST 250", NewPriceEUR: 35000, DepreciationRate: 0.08},
				{Name: "2.3 EcoBoost RS 350", NewPriceEUR: 45000, DepreciationRate: 0.05, Collector: true},
			}},
			{Code: "4", FirstYear: 2018, LastYear: 2025, AvgKmPerYear: 15000, Variants: []Variant{
				{Name: "1.0 EcoBoost 125", NewPriceEUR: 28000, DepreciationRate: 0.11},
				{Name: "2.3 EcoBoost ST 280", NewPriceEUR: 42000, DepreciationRate: 0.08},
			}},
		}},
		{Name: "mustang", Generations: []Generation{
			{Code: "s550", FirstYear: 2015, LastYear: 2024, AvgKmPerYear: 8000, Variants: []Variant{
				{Name: "2.3 EcoBoost 317", NewPriceEUR: 48000, DepreciationRate: 0.08},
				{Name: "5.0 V8 GT 450", NewPriceEUR: 58000, DepreciationRate: 0.06, Collector: true},
				{Name: "5.2 V8 Shelby GT350 526", NewPriceEUR: 85000, DepreciationRate: 0.04, Collector: true},
			}},
		}},
	}},
	{Name: "hyundai", Models: []PriceModel{
		{Name: "i30", Generations: []Generation{
			{Code: "3", FirstYear: 2017, LastYear: 2025, AvgKmPerYear: 15000, Variants: []Variant{
				{Name: "1.0 T-GDi 120", NewPriceEUR: 25000, DepreciationRate: 0.12},
				{Name: "2.0 T-GDi N 275", NewPriceEUR: 42000, DepreciationRate: 0.08, Collector: true},
			}},
		}},
		{Name: "i20", Generations: []Generation{
			{Code: "n", FirstYear: 2021, LastYear: 2025, AvgKmPerYear: 10000, Variants: []Variant{
				{Name: "1.6 T-GDi N 204", NewPriceEUR: 35000, DepreciationRate: 0.08, Collector: true},
			}},
		}},
	}},
	{Name: "kia", Models: []PriceModel{
		{Name: "stinger", Generations: []Generation{
			{Code: "1", FirstYear: 2017, LastYear: 2023, AvgKmPerYear: 15000, Variants: []Variant{
				{Name: "2.0 T-GDi 255", NewPriceEUR: 48000, DepreciationRate: 0.10},
				{Name: "3.3 V6 BiTurbo 370", NewPriceEUR: 58000, DepreciationRate: 0.08},
			}},
		}},
	}},
	{Name: "alfa romeo", Models: []PriceModel{
		{Name: "giulia", Generations: []Generation{
			{Code: "952", FirstYear: 2016, LastYear: 2025, AvgKmPerYear: 15000, Variants: []Variant{
				{Name: "2.0 Turbo 200", NewPriceEUR: 42000, DepreciationRate: 0.11},
				{Name: "2.0 Turbo Veloce 280", NewPriceEUR: 55000, DepreciationRate: 0.09},
				{Name: "2.9 V6 Quadrifoglio 510", NewPriceEUR: 85000, DepreciationRate: 0.07, Collector: true},
			}},
		}},
		{Name: "4c", Generations: []Generation{
			{Code: "1", FirstYear: 2013, LastYear: 2020, AvgKmPerYear: 4000, Variants: []Variant{
				{Name: "1.75 TBi 240", NewPriceEUR: 60000, DepreciationRate: 0.06, Collector: true},
			}},
		}},
	}},
	{Name: "porsche", Models: []PriceModel{
		{Name: "911", Generations: []Generation{
			{Code: "991", FirstYear: 2011, LastYear: 2019, AvgKmPerYear: 8000, Variants: []Variant{
				{Name: "3.0 Carrera 370", NewPriceEUR: 105000, DepreciationRate: 0.05},
				{Name: "3.0 Carrera S 420", NewPriceEUR: 125000, DepreciationRate: 0.04, Collector: true},
				{Name: "3.8 GT3 500", NewPriceEUR: 180000, DepreciationRate: 0.02, Collector: true},
				{Name: "4.0 GT3 RS 520", NewPriceEUR: 220000, DepreciationRate: -0.02, Collector: true},
			}},
			{Code: "992", FirstYear: 2019, LastYear: 2025, AvgKmPerYear: 6000, Variants: []Variant{
				{Name: "3.0 Carrera 385", NewPriceEUR: 115000, DepreciationRate: 0.05},
				{Name: "3.0 Carrera S 450", NewPriceEUR: 140000, DepreciationRate: 0.04, Collector: true},
				{Name: "4.0 GT3 510", NewPriceEUR: 195000, DepreciationRate: 0.01, Collector: true},
			}},
		}},
		{Name: "cayman", Generations: []Generation{
			{Code: "982", FirstYear: 2016, LastYear: 2024, AvgKmPerYear: 8000, Variants: []Variant{
				{Name: "2.0 300", NewPriceEUR: 58000, DepreciationRate: 0.06},
				{Name: "2.5 GTS 365", NewPriceEUR: 78000, DepreciationRate: 0.05},
				{Name: "4.0 GT4 420", NewPriceEUR: 105000, DepreciationRate: 0.03, Collector: true},
			}},
		}},
		{Name: "boxster", Generations: []Generation{
			{Code: "982", FirstYear: 2016, LastYear: 2024, AvgKmPerYear: 8000, Variants: []Variant{
				{Name: "2.0 300", NewPriceEUR: 55000, DepreciationRate: 0.06},
				{Name: "2.5 GTS 365", NewPriceEUR: 75000, DepreciationRate: 0.05},
				{Name: "4.0 Spyder 420", NewPriceEUR: 105000, DepreciationRate: 0.03, Collector: true},
			}},
		}},
	}},
	{Name: "seat", Models: []PriceModel{
		{Name: "leon", Generations: []Generation{
			{Code: "3", FirstYear: 2012, LastYear: 2020, AvgKmPerYear: 15000, Variants: []Variant{
				{Name: "1.4 TSI 150", NewPriceEUR: 26000, DepreciationRate: 0.11},
				{Name: "2.0 TSI Cupra 290", NewPriceEUR: 40000, DepreciationRate: 0.08},
				{Name: "2.0 TSI Cupra R 310", NewPriceEUR: 48000, DepreciationRate: 0.06, Collector: true},
			}},
		}},
		{Name: "ibiza", Generations: []Generation{
			{Code: "5", FirstYear: 2017, LastYear: 2025, AvgKmPerYear: 12000, Variants: []Variant{
				{Name: "1.0 TSI 95", NewPriceEUR: 18000, DepreciationRate: 0.13},
				{Name: "1.0 TSI 115", NewPriceEUR: 22000, DepreciationRate: 0.12},
			}},
		}},
	}},
	{Name: "cupra", Models: []PriceModel{
		{Name: "formentor", Generations: []Generation{
			{Code: "1", FirstYear: 2020, LastYear: 2025, AvgKmPerYear: 15000, Variants: []Variant{
				{Name: "1.5 TSI 150", NewPriceEUR: 38000, DepreciationRate: 0.10},
				{Name: "2.0 TSI 310", NewPriceEUR: 52000, DepreciationRate: 0.08},
				{Name: "2.5 TSI VZ5 390", NewPriceEUR: 65000, DepreciationRate: 0.06, Collector: true},
			}},
		}},
	}},
}
