package model

// Priority names used by the matching engine's scoring function
const (
	PriorityHealth      = "health"
	PriorityEco         = "eco"
	PriorityPrice       = "price"
	PriorityMaintenance = "maintenance"
)

// Requirements is the structured record produced by one completed dialogue
// cycle. Every field has a documented default, so a record is always complete.
type Requirements struct {
	Installation     []string `json:"installation"`
	MaxPrice         float64  `json:"max_price"`
	RemoveChlorine   bool     `json:"remove_chlorine"`
	RemoveLead       bool     `json:"remove_lead"`
	RemoveFluoride   bool     `json:"remove_fluoride"`
	RemoveBacteria   bool     `json:"remove_bacteria"`
	EcoFriendly      bool     `json:"eco_friendly"`
	Remineralization bool     `json:"remineralization"`
	HouseholdSize    int      `json:"household_size"`
	Priorities       []string `json:"priorities"`
}

// HasPriority reports whether the named priority is active. Order of the
// priorities slice carries no meaning for scoring.
func (r *Requirements) HasPriority(name string) bool {
	for _, p := range r.Priorities {
		if p == name {
			return true
		}
	}
	return false
}

// WantsInstallation reports whether the product's installation category is in
// the requested set. An empty set means no installation filter.
func (r *Requirements) WantsInstallation(installation string) bool {
	for _, inst := range r.Installation {
		if inst == installation {
			return true
		}
	}
	return false
}
