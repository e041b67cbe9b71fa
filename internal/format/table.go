// Package format renders match results as markdown comparison artifacts.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"core/internal/model"
)

// NoMatchMessage is returned instead of a table when nothing survived the
// filters.
const NoMatchMessage = "No products found matching your requirements."

// DefaultTopN is the number of alternatives shown when the caller does not
// ask for a specific count.
const DefaultTopN = 3

// Icons for the tri-state removal ratings
const (
	iconYes     = "✅"
	iconPartial = "⚠️"
	iconNo      = "❌"
)

func removalIcon(r model.RemovalRating) string {
	switch r {
	case model.RemovalYes:
		return iconYes
	case model.RemovalPartial:
		return iconPartial
	default:
		return iconNo
	}
}

// gbp renders a price without trailing zeros, "£80" not "£80.00".
func gbp(v float64) string {
	return "£" + strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatTable renders the first topN results as a markdown comparison table
// with a legend. topN <= 0 falls back to DefaultTopN; an empty result set
// yields NoMatchMessage rather than a headerless table.
func FormatTable(results []model.MatchResult, topN int) string {
	if len(results) == 0 {
		return NoMatchMessage
	}
	if topN <= 0 {
		topN = DefaultTopN
	}
	if topN > len(results) {
		topN = len(results)
	}

	var sb strings.Builder
	sb.WriteString("| Product | Type | Price (£) | Installation | Filtration | Removes Chlorine | Removes Lead | Removes Bacteria | Filter Life | Maintenance Cost | Eco Rating |\n")
	sb.WriteString("|---------|------|-----------|-------------|------------|-----------------|-------------|-----------------|-------------|------------------|------------|\n")

	for _, r := range results[:topN] {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s | %s | %s | %d months | %s/year | %d/5 |\n",
			r.Name,
			model.HumanLabel(r.Type),
			gbp(r.PriceGBP),
			model.HumanLabel(r.Installation),
			model.HumanLabel(r.FiltrationType),
			removalIcon(r.RemovesChlorine),
			removalIcon(r.RemovesLead),
			removalIcon(r.RemovesBacteria),
			r.FilterLifespanMonths,
			gbp(r.MaintenanceCostGBP),
			r.EcoRating,
		))
	}

	sb.WriteString("\n**Legend**: ✅ Yes | ⚠️ Partial | ❌ No\n")
	return sb.String()
}
