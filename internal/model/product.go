package model

import "strings"

// Installation categories (physical form factor of a filter product)
const (
	InstallUnderSink  = "under_sink"
	InstallCountertop = "countertop"
	InstallPitcher    = "pitcher"
	InstallPortable   = "portable"
	InstallShower     = "shower"
	InstallWholeHouse = "whole_house"
)

// RemovalRating is the tri-state effectiveness of a product against one
// contaminant class.
type RemovalRating string

const (
	RemovalYes     RemovalRating = "yes"
	RemovalPartial RemovalRating = "partial"
	RemovalNo      RemovalRating = "no"
)

// Satisfies reports whether the rating is good enough for an explicit
// removal request. "partial" counts by policy.
func (r RemovalRating) Satisfies() bool {
	return r == RemovalYes || r == RemovalPartial
}

// Product represents one row of the filter catalog
type Product struct {
	Name                 string        `json:"name" db:"name"`
	Type                 string        `json:"type" db:"type"`
	Installation         string        `json:"installation" db:"installation"`
	PriceGBP             float64       `json:"price_gbp" db:"price_gbp"`
	FiltrationType       string        `json:"filtration_type" db:"filtration_type"`
	CapacityLiters       float64       `json:"capacity_liters" db:"capacity_liters"`
	Remineralization     string        `json:"remineralization" db:"remineralization"`
	RemovesChlorine      RemovalRating `json:"removes_chlorine" db:"removes_chlorine"`
	RemovesLead          RemovalRating `json:"removes_lead" db:"removes_lead"`
	RemovesFluoride      RemovalRating `json:"removes_fluoride" db:"removes_fluoride"`
	RemovesBacteria      RemovalRating `json:"removes_bacteria" db:"removes_bacteria"`
	FilterLifespanMonths int           `json:"filter_lifespan_months" db:"filter_lifespan_months"`
	MaintenanceCostGBP   float64       `json:"maintenance_cost_yearly_gbp" db:"maintenance_cost_yearly_gbp"`
	WarrantyYears        int           `json:"warranty_years" db:"warranty_years"`
	EcoRating            int           `json:"ecofriendly_rating" db:"ecofriendly_rating"`
}

// Remineralizes reports whether the product adds minerals back after filtration.
func (p Product) Remineralizes() bool {
	return p.Remineralization == "yes"
}

// MatchResult is a catalog row that survived filtering, augmented with its
// ranking score. The score is recomputed on every match call, never persisted.
type MatchResult struct {
	Product
	MatchScore float64 `json:"match_score"`
}

// HumanLabel turns a categorical value like "under_sink" into "Under Sink".
func HumanLabel(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
