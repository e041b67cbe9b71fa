package dialog

import (
	"regexp"
	"strings"

	"core/internal/model"
)

// Extraction is intentionally simple keyword matching, not NLU. Each state's
// heuristics live here as ordered rule lists so the defaulting behavior can
// be audited and tested apart from the state transitions.

var digitPattern = regexp.MustCompile(`(\d+)`)

// firstInt returns the first integer substring of the input, or 0 and false.
func firstInt(input string) (int, bool) {
	m := digitPattern.FindString(input)
	if m == "" {
		return 0, false
	}
	n := 0
	for _, r := range m {
		n = n*10 + int(r-'0')
	}
	return n, true
}

func containsAny(input string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(input, t) {
			return true
		}
	}
	return false
}

func containsAll(input string, terms ...string) bool {
	for _, t := range terms {
		if !strings.Contains(input, t) {
			return false
		}
	}
	return true
}

// installationRule maps a synonym set to an installation category. AllOf
// rules require every keyword ("under" and "sink"), the rest match on any.
type installationRule struct {
	category string
	allOf    []string
	anyOf    []string
}

var installationRules = []installationRule{
	{category: model.InstallUnderSink, allOf: []string{"under", "sink"}},
	{category: model.InstallCountertop, anyOf: []string{"counter", "top"}},
	{category: model.InstallPitcher, anyOf: []string{"pitcher", "jug"}},
	{category: model.InstallPortable, anyOf: []string{"portable"}},
	{category: model.InstallShower, anyOf: []string{"shower"}},
	{category: model.InstallWholeHouse, allOf: []string{"whole", "house"}},
}

// contextRules infer installation categories from the setting the user
// mentions when no category matched directly.
var contextRules = []struct {
	keyword    string
	categories []string
}{
	{"kitchen", []string{model.InstallCountertop, model.InstallUnderSink}},
	{"travel", []string{model.InstallPortable}},
	{"bathroom", []string{model.InstallShower}},
}

// defaultInstallations covers the major categories when the user gives no
// usable answer.
var defaultInstallations = []string{
	model.InstallUnderSink,
	model.InstallCountertop,
	model.InstallPitcher,
	model.InstallPortable,
}

// extractInstallation matches the utterance against each category's synonym
// set, falls back to contextual inference, then to the default set. Input
// must already be lowercased.
func extractInstallation(input string) []string {
	var installations []string
	for _, rule := range installationRules {
		switch {
		case len(rule.allOf) > 0 && containsAll(input, rule.allOf...):
			installations = append(installations, rule.category)
		case len(rule.anyOf) > 0 && containsAny(input, rule.anyOf...):
			installations = append(installations, rule.category)
		}
	}

	// Contextual inference only applies when the user tried to answer.
	if len(installations) == 0 && !containsAny(input, "don't know", "not sure") {
		for _, rule := range contextRules {
			if strings.Contains(input, rule.keyword) {
				installations = append(installations, rule.categories...)
				break
			}
		}
	}

	if len(installations) == 0 {
		installations = append(installations, defaultInstallations...)
	}
	return installations
}

// cueRule resolves a vague answer to a concrete numeric value.
type cueRule struct {
	terms []string
	value int
}

var budgetCues = []cueRule{
	{terms: []string{"cheap", "low", "budget"}, value: 50},
	{terms: []string{"mid", "reasonable"}, value: 150},
	{terms: []string{"expensive", "high", "premium"}, value: 350},
}

const defaultBudget = 200

// usdToGBP is the rough conversion applied when the user quotes dollars.
const usdToGBP = 0.8

// extractBudget takes the first integer in the input as the budget, applying
// currency cues. Without digits it resolves vague wording through budgetCues,
// defaulting to 200. GBP is assumed when no currency is named.
func extractBudget(input string) float64 {
	if n, ok := firstInt(input); ok {
		switch {
		case containsAny(input, "£", "pound", "gbp"):
			return float64(n)
		case containsAny(input, "$", "dollar", "usd"):
			return float64(int(float64(n) * usdToGBP))
		default:
			return float64(n)
		}
	}
	for _, cue := range budgetCues {
		if containsAny(input, cue.terms...) {
			return float64(cue.value)
		}
	}
	return defaultBudget
}

// extractContaminants runs four independent keyword checks, then resolves
// general concerns ("everything", "taste", "health") when nothing specific
// matched. Absence of any cue leaves all flags false.
func extractContaminants(input string) Contaminants {
	c := Contaminants{
		Chlorine: strings.Contains(input, "chlorine"),
		Lead:     strings.Contains(input, "lead"),
		Fluoride: strings.Contains(input, "fluoride"),
		Bacteria: containsAny(input, "bacteria", "germs", "microbes"),
	}
	if c.Any() {
		return c
	}
	switch {
	case containsAny(input, "everything", "all", "maximum"):
		return Contaminants{Chlorine: true, Lead: true, Fluoride: true, Bacteria: true}
	case containsAny(input, "taste", "smell", "odor"):
		return Contaminants{Chlorine: true}
	case containsAny(input, "health", "safety"):
		return Contaminants{Chlorine: true, Lead: true, Bacteria: true}
	}
	return c
}

func extractEcoFriendly(input string) bool {
	return containsAny(input, "eco", "environment", "planet", "green", "sustainable", "yes")
}

func extractRemineralization(input string) bool {
	return containsAny(input, "mineral", "yes", "important", "health", "taste", "alkaline")
}

var householdCues = []cueRule{
	{terms: []string{"just me", "only me", "myself", "alone", "single"}, value: 1},
	{terms: []string{"couple", "two", "2"}, value: 2},
	{terms: []string{"family", "several", "many"}, value: 4},
}

const defaultHouseholdSize = 3

// extractHouseholdSize takes the first integer, falls back to phrase cues,
// then to the default of 3.
func extractHouseholdSize(input string) int {
	if n, ok := firstInt(input); ok {
		return n
	}
	for _, cue := range householdCues {
		if containsAny(input, cue.terms...) {
			return cue.value
		}
	}
	return defaultHouseholdSize
}

// derivePriorities infers scoring priorities from the gathered answers.
// The user never states these directly.
func derivePriorities(g Gathered) []string {
	var priorities []string
	if g.Contaminants.Lead || g.Contaminants.Bacteria {
		priorities = append(priorities, model.PriorityHealth)
	}
	if g.EcoFriendly {
		priorities = append(priorities, model.PriorityEco)
	}
	if g.Budget < 100 {
		priorities = append(priorities, model.PriorityPrice)
	}
	if g.HouseholdSize > 2 {
		priorities = append(priorities, model.PriorityMaintenance)
	}
	if len(priorities) == 0 {
		priorities = append(priorities, model.PriorityHealth)
	}
	return priorities
}
