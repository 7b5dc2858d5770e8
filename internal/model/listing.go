// Package model defines the core domain types shared across the application.
package model

import (
	"strings"
	"time"
)

// Listing is a candidate vehicle ad under evaluation. Numeric fields use
// zero as "not provided": a price of 0 is never a valid asking price, so
// the analyzers treat it as absent rather than as a free car.
type Listing struct {
	Make           string `json:"make,omitempty"`
	Model          string `json:"model,omitempty"`
	Year           int    `json:"year,omitempty"`
	MileageKm      int    `json:"mileageKm,omitempty"`
	PriceEUR       int    `json:"priceEur,omitempty"`
	EngineVariant  string `json:"engineVariant,omitempty"`
	Description    string `json:"description,omitempty"`
	ReferencePrice int    `json:"referencePrice,omitempty"`
}

// HasPrice reports whether an asking price was provided.
func (l Listing) HasPrice() bool { return l.PriceEUR > 0 }

// HasMileage reports whether a mileage was provided.
func (l Listing) HasMileage() bool { return l.MileageKm > 0 }

// HasYear reports whether a plausible model year was provided.
func (l Listing) HasYear() bool { return l.Year > 0 }

// HasVehicleIdentity reports whether both make and model are known.
func (l Listing) HasVehicleIdentity() bool {
	return strings.TrimSpace(l.Make) != "" && strings.TrimSpace(l.Model) != ""
}

// HasReferencePrice reports whether the user supplied their own market
// reference, which takes priority over any estimate.
func (l Listing) HasReferencePrice() bool { return l.ReferencePrice > 0 }

// Age returns the vehicle age in years relative to currentYear. May be
// negative for next-year models; callers short-circuit on age <= 0.
func (l Listing) Age(currentYear int) int { return currentYear - l.Year }

// IsEmpty reports whether the listing carries nothing to analyze at all.
func (l Listing) IsEmpty() bool {
	return strings.TrimSpace(l.Description) == "" &&
		!l.HasPrice() && !l.HasMileage() && !l.HasYear() && !l.HasVehicleIdentity()
}

// PartialListing holds fields recovered from free text by the extractor.
// Every field is independently optional; zero means "not found".
type PartialListing struct {
	Make      string `json:"make,omitempty"`
	Model     string `json:"model,omitempty"`
	Year      int    `json:"year,omitempty"`
	MileageKm int    `json:"mileageKm,omitempty"`
	PriceEUR  int    `json:"priceEur,omitempty"`
}

// MergeInto fills the blank fields of dst from the extraction without
// overwriting anything the caller supplied explicitly.
func (p PartialListing) MergeInto(dst *Listing) {
	if dst.Make == "" {
		dst.Make = p.Make
	}
	if dst.Model == "" {
		dst.Model = p.Model
	}
	if dst.Year == 0 {
		dst.Year = p.Year
	}
	if dst.MileageKm == 0 {
		dst.MileageKm = p.MileageKm
	}
	if dst.PriceEUR == 0 {
		dst.PriceEUR = p.PriceEUR
	}
}

// HistoricalListing is a persisted record of a previously analyzed, priced
// listing, used for crowd-sourced price averaging. Make and model are
// stored lowercased; the description is truncated on save.
type HistoricalListing struct {
	SavedAt       time.Time `json:"savedAt"`
	ID            string    `json:"id"`
	Make          string    `json:"make"`
	Model         string    `json:"model"`
	EngineVariant string    `json:"engineVariant,omitempty"`
	Description   string    `json:"description,omitempty"`
	Year          int       `json:"year"`
	MileageKm     int       `json:"mileageKm"`
	PriceEUR      int       `json:"priceEur"`
}

// SameVehicle reports full-field equality on the dedup key: make, model,
// year, price and mileage must all match, never a subset.
func (h HistoricalListing) SameVehicle(other HistoricalListing) bool {
	return h.Make == other.Make &&
		h.Model == other.Model &&
		h.Year == other.Year &&
		h.PriceEUR == other.PriceEUR &&
		h.MileageKm == other.MileageKm
}
