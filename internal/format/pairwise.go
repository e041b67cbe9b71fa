package format

import (
	"fmt"
	"strings"

	"core/internal/model"
)

func yesNo(remineralizes bool) string {
	if remineralizes {
		return "Yes"
	}
	return "No"
}

// FormatPairwise renders a full feature-by-feature comparison of exactly two
// products, followed by a per-product advantages section. Each advantage is
// an independent field check; ties produce no entry on either side, and a
// product with no advantages says so explicitly.
func FormatPairwise(a, b model.Product) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Detailed Comparison: %s vs %s\n\n", a.Name, b.Name))

	sb.WriteString(fmt.Sprintf("| Feature | %s | %s |\n", a.Name, b.Name))
	sb.WriteString("|---------|" + strings.Repeat("-", len(a.Name)) + "|" + strings.Repeat("-", len(b.Name)) + "|\n")

	features := [][3]string{
		{"Price", gbp(a.PriceGBP), gbp(b.PriceGBP)},
		{"Type", model.HumanLabel(a.Type), model.HumanLabel(b.Type)},
		{"Installation", model.HumanLabel(a.Installation), model.HumanLabel(b.Installation)},
		{"Filtration", model.HumanLabel(a.FiltrationType), model.HumanLabel(b.FiltrationType)},
		{"Capacity", fmt.Sprintf("%g liters", a.CapacityLiters), fmt.Sprintf("%g liters", b.CapacityLiters)},
		{"Removes Chlorine", model.HumanLabel(string(a.RemovesChlorine)), model.HumanLabel(string(b.RemovesChlorine))},
		{"Removes Lead", model.HumanLabel(string(a.RemovesLead)), model.HumanLabel(string(b.RemovesLead))},
		{"Removes Fluoride", model.HumanLabel(string(a.RemovesFluoride)), model.HumanLabel(string(b.RemovesFluoride))},
		{"Removes Bacteria", model.HumanLabel(string(a.RemovesBacteria)), model.HumanLabel(string(b.RemovesBacteria))},
		{"Remineralization", yesNo(a.Remineralizes()), yesNo(b.Remineralizes())},
		{"Filter Lifespan", fmt.Sprintf("%d months", a.FilterLifespanMonths), fmt.Sprintf("%d months", b.FilterLifespanMonths)},
		{"Yearly Maintenance", gbp(a.MaintenanceCostGBP), gbp(b.MaintenanceCostGBP)},
		{"Eco-friendly Rating", fmt.Sprintf("%d/5", a.EcoRating), fmt.Sprintf("%d/5", b.EcoRating)},
		{"Warranty", fmt.Sprintf("%d years", a.WarrantyYears), fmt.Sprintf("%d years", b.WarrantyYears)},
	}
	for _, f := range features {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", f[0], f[1], f[2]))
	}

	sb.WriteString("\n### Key Advantages\n\n")
	sb.WriteString(advantageSection(a, b))
	sb.WriteString("\n")
	sb.WriteString(advantageSection(b, a))
	return sb.String()
}

// advantageSection lists where p beats rival on direct field comparison.
func advantageSection(p, rival model.Product) string {
	var advantages []string
	if p.PriceGBP < rival.PriceGBP {
		advantages = append(advantages, fmt.Sprintf("Lower price (%s vs %s)", gbp(p.PriceGBP), gbp(rival.PriceGBP)))
	}
	if p.FilterLifespanMonths > rival.FilterLifespanMonths {
		advantages = append(advantages, fmt.Sprintf("Longer filter life (%d months vs %d months)", p.FilterLifespanMonths, rival.FilterLifespanMonths))
	}
	if p.MaintenanceCostGBP < rival.MaintenanceCostGBP {
		advantages = append(advantages, fmt.Sprintf("Lower maintenance cost (%s/year vs %s/year)", gbp(p.MaintenanceCostGBP), gbp(rival.MaintenanceCostGBP)))
	}
	if p.EcoRating > rival.EcoRating {
		advantages = append(advantages, fmt.Sprintf("More eco-friendly (%d/5 vs %d/5)", p.EcoRating, rival.EcoRating))
	}
	if p.WarrantyYears > rival.WarrantyYears {
		advantages = append(advantages, fmt.Sprintf("Longer warranty (%d years vs %d years)", p.WarrantyYears, rival.WarrantyYears))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**%s advantages:**\n", p.Name))
	if len(advantages) == 0 {
		sb.WriteString("- No significant advantages identified\n")
		return sb.String()
	}
	for _, adv := range advantages {
		sb.WriteString("- " + adv + "\n")
	}
	return sb.String()
}
