package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantMake    string
		wantModel   string
		wantYear    int
		wantMileage int
		wantPrice   int
	}{
		{
			name:        "full listing",
			text:        "Volkswagen Golf 7 GTI de 2015, 120 000 km, très bon état, 18 500 €",
			wantMake:    "Volkswagen",
			wantModel:   "GOLF GTI",
			wantYear:    2015,
			wantMileage: 120000,
			wantPrice:   18500,
		},
		{
			name:        "mileage shorthand",
			text:        "Renault Clio essence, 95 000 km au compteur",
			wantMake:    "Renault",
			wantModel:   "CLIO",
			wantMileage: 95000,
		},
		{
			name:      "price with label and no euro sign",
			text:      "Peugeot 208 - Prix : 9 500",
			wantMake:  "Peugeot",
			wantModel: "208",
			wantPrice: 9500,
		},
		{
			name:      "price with dot separator",
			text:      "BMW serie 3 vendue 15.900 €",
			wantMake:  "Bmw",
			wantModel: "SERIE 3",
			wantPrice: 15900,
		},
		{
			name:      "vw shorthand maps to Volkswagen",
			text:      "VW Polo de 2019",
			wantMake:  "Volkswagen",
			wantModel: "POLO",
			wantYear:  2019,
		},
		{
			name:     "nineties year",
			text:     "Nissan Skyline de 1999, import Japon",
			wantMake: "Nissan",
			// "skyline" appears after "micra"-less scan
			wantModel: "SKYLINE",
			wantYear:  1999,
		},
		{
			name: "implausible year ignored",
			text: "Toyota Yaris de 2030",
			// 2030 is outside the plausible window
			wantMake:  "Toyota",
			wantModel: "YARIS",
		},
		{
			name:      "sport variant appended",
			text:      "Honda Civic Type R, suivi complet",
			wantMake:  "Honda",
			wantModel: "CIVIC TYPE R",
		},
		{
			name: "empty text",
			text: "",
		},
		{
			name: "no recognizable fields",
			text: "très belle voiture, peu servi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			assert.Equal(t, tt.wantMake, got.Make)
			assert.Equal(t, tt.wantModel, got.Model)
			assert.Equal(t, tt.wantYear, got.Year)
			assert.Equal(t, tt.wantMileage, got.MileageKm)
			assert.Equal(t, tt.wantPrice, got.PriceEUR)
		})
	}
}

func TestParseMileage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "plain", raw: "120000", want: 120000},
		{name: "space separated", raw: "95 000", want: 95000},
		{name: "shorthand thousands", raw: "95", want: 95000},
		{name: "dot separated", raw: "120.000", want: 120000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseMileage(tt.raw))
		})
	}
}

func TestPlausibleYear(t *testing.T) {
	assert.Equal(t, 2015, plausibleYear("2015"))
	assert.Equal(t, 1998, plausibleYear("1998"))
	assert.Equal(t, 0, plausibleYear("1985"))
	assert.Equal(t, 0, plausibleYear("2030"))
}
