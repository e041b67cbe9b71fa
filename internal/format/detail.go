package format

import (
	"fmt"
	"strings"

	"core/internal/model"
)

// installationGuides maps product types to hosted installation tutorials.
// TODO: move these into the product catalog once the data source carries them.
var installationGuides = map[string]string{
	"reverse_osmosis": "https://www.youtube.com/watch?v=_w-hpBq_Cbo",
	"under_sink":      "https://www.youtube.com/watch?v=NDMXLYEv0jU",
	"countertop":      "https://www.youtube.com/watch?v=t90RQMKMv3s",
	"pitcher":         "https://www.youtube.com/watch?v=ja0ioX6GSz0",
	"portable":        "https://www.youtube.com/watch?v=t-c9WjUxLg8",
	"shower":          "https://www.youtube.com/watch?v=OaG2RyDxQlk",
	"whole_house":     "https://www.youtube.com/watch?v=5DTMfz-MP-k",
}

const guideFallback = "https://www.youtube.com/results?search_query=water+filter+installation"

// InstallationGuide returns a tutorial link for the product type, or a
// search-page fallback for unknown types.
func InstallationGuide(productType string) string {
	if url, ok := installationGuides[productType]; ok {
		return url
	}
	return guideFallback
}

func removalWord(r model.RemovalRating) string {
	switch r {
	case model.RemovalYes:
		return "Yes"
	case model.RemovalPartial:
		return "Partially"
	default:
		return "No"
	}
}

// FormatTopPick renders the full detail block for the highest-ranked product:
// every catalog field, the installation guide link, and a refinement prompt.
func FormatTopPick(p model.Product) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("### Top Recommendation: %s\n\n", p.Name))
	sb.WriteString(fmt.Sprintf("* Price: %s\n", gbp(p.PriceGBP)))
	sb.WriteString(fmt.Sprintf("* Type: %s\n", model.HumanLabel(p.Type)))
	sb.WriteString(fmt.Sprintf("* Installation: %s\n", model.HumanLabel(p.Installation)))
	sb.WriteString(fmt.Sprintf("* Capacity: %g liters\n", p.CapacityLiters))
	sb.WriteString(fmt.Sprintf("* Filtration: %s\n", model.HumanLabel(p.FiltrationType)))
	sb.WriteString(fmt.Sprintf("* Remineralization: %s\n", yesNo(p.Remineralizes())))
	sb.WriteString(fmt.Sprintf("* Removes Chlorine: %s\n", removalWord(p.RemovesChlorine)))
	sb.WriteString(fmt.Sprintf("* Removes Lead: %s\n", removalWord(p.RemovesLead)))
	sb.WriteString(fmt.Sprintf("* Removes Fluoride: %s\n", removalWord(p.RemovesFluoride)))
	sb.WriteString(fmt.Sprintf("* Removes Bacteria: %s\n", removalWord(p.RemovesBacteria)))
	sb.WriteString(fmt.Sprintf("* Filter Lifespan: %d months\n", p.FilterLifespanMonths))
	sb.WriteString(fmt.Sprintf("* Annual Maintenance Cost: %s\n", gbp(p.MaintenanceCostGBP)))
	sb.WriteString(fmt.Sprintf("* Warranty: %d years\n", p.WarrantyYears))

	sb.WriteString("\n\n### Installation Guide\n\n")
	sb.WriteString(fmt.Sprintf("[Watch Installation Tutorial on YouTube](%s)\n", InstallationGuide(p.Type)))

	sb.WriteString("\n\n### Need To Refine Further?\n\n")
	sb.WriteString("You can ask me more specific questions about these products or tell me if you have additional requirements or constraints.")
	return sb.String()
}
