// Package matcher narrows the product catalog against a requirements record
// and ranks the survivors by a priority-driven additive score.
package matcher

import (
	"sort"

	"core/internal/model"
)

// Scoring weights for the health priority. Lead, fluoride and bacteria
// removal count double; chlorine and remineralization count once.
const (
	healthWeightChlorine = 1
	healthWeightLead     = 2
	healthWeightFluoride = 2
	healthWeightBacteria = 2
	healthWeightRemin    = 1
)

// Match filters the catalog by the requirements and returns the survivors
// ranked by descending match score. Filters are a strict conjunction, each
// applied only when its requirement field is set; an empty result is valid
// and no fallback is attempted. Equal scores keep catalog order.
func Match(catalog []model.Product, req *model.Requirements) []model.MatchResult {
	results := make([]model.MatchResult, 0, len(catalog))
	for _, p := range catalog {
		if !passes(p, req) {
			continue
		}
		results = append(results, model.MatchResult{
			Product:    p,
			MatchScore: score(p, req),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
	return results
}

// passes applies the conjunction of optional filters. Note that "partial"
// removal satisfies an explicit removal request; this leniency is policy.
func passes(p model.Product, req *model.Requirements) bool {
	if len(req.Installation) > 0 && !req.WantsInstallation(p.Installation) {
		return false
	}
	if req.MaxPrice > 0 && p.PriceGBP > req.MaxPrice {
		return false
	}
	if req.RemoveChlorine && !p.RemovesChlorine.Satisfies() {
		return false
	}
	if req.RemoveLead && !p.RemovesLead.Satisfies() {
		return false
	}
	if req.RemoveFluoride && !p.RemovesFluoride.Satisfies() {
		return false
	}
	if req.RemoveBacteria && !p.RemovesBacteria.Satisfies() {
		return false
	}
	if req.EcoFriendly && p.EcoRating < 4 {
		return false
	}
	if req.Remineralization && !p.Remineralizes() {
		return false
	}
	return true
}

// score sums one independent contribution per active priority. Multiple
// priorities compound; nothing is averaged or clamped.
func score(p model.Product, req *model.Requirements) float64 {
	var s float64
	if req.HasPriority(model.PriorityHealth) {
		s += healthScore(p)
	}
	if req.HasPriority(model.PriorityEco) {
		s += float64(p.EcoRating)
	}
	if req.HasPriority(model.PriorityPrice) {
		s += (500 - p.PriceGBP) / 100
	}
	if req.HasPriority(model.PriorityMaintenance) {
		s += float64(p.FilterLifespanMonths) / 2
		s += (200 - p.MaintenanceCostGBP) / 40
	}
	return s
}

// healthScore rewards full removal only; "partial" earns nothing here even
// though it passes the filter.
func healthScore(p model.Product) float64 {
	var s float64
	if p.RemovesChlorine == model.RemovalYes {
		s += healthWeightChlorine
	}
	if p.RemovesLead == model.RemovalYes {
		s += healthWeightLead
	}
	if p.RemovesFluoride == model.RemovalYes {
		s += healthWeightFluoride
	}
	if p.RemovesBacteria == model.RemovalYes {
		s += healthWeightBacteria
	}
	if p.Remineralizes() {
		s += healthWeightRemin
	}
	return s
}
