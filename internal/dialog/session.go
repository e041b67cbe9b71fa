package dialog

import "core/internal/model"

// State is the dialogue controller's position in the question sequence.
type State string

const (
	StateGreeting            State = "greeting"
	StateAskInstallation     State = "ask_installation"
	StateAskBudget           State = "ask_budget"
	StateAskContaminants     State = "ask_contaminants"
	StateAskEco              State = "ask_eco"
	StateAskRemineralization State = "ask_remineralization"
	StateAskHousehold        State = "ask_household"
)

// Contaminants holds the four removal flags gathered at ask_contaminants.
type Contaminants struct {
	Chlorine bool `json:"chlorine"`
	Lead     bool `json:"lead"`
	Fluoride bool `json:"fluoride"`
	Bacteria bool `json:"bacteria"`
}

// Any reports whether at least one flag is set.
func (c Contaminants) Any() bool {
	return c.Chlorine || c.Lead || c.Fluoride || c.Bacteria
}

// Gathered is the accumulator of fields collected so far in one cycle.
// It is cleared on reset and on completion.
type Gathered struct {
	Installation     []string     `json:"installation,omitempty"`
	Budget           float64      `json:"budget,omitempty"`
	Contaminants     Contaminants `json:"contaminants"`
	EcoFriendly      bool         `json:"eco_friendly"`
	Remineralization bool         `json:"remineralization"`
	HouseholdSize    int          `json:"household_size,omitempty"`
}

// Session is the per-conversation dialogue state. One session serves one
// conversation serially; it is owned by the caller and passed on every turn,
// never shared process-wide.
type Session struct {
	ID       string              `json:"id"`
	State    State               `json:"state"`
	Gathered Gathered            `json:"gathered"`
	Current  *model.Requirements `json:"current,omitempty"`
	Previous *model.Requirements `json:"previous,omitempty"`
}

// NewSession creates a fresh session at the greeting state.
func NewSession(id string) *Session {
	return &Session{
		ID:    id,
		State: StateGreeting,
	}
}

// Reset returns the session to the greeting state with an empty accumulator.
// Completed requirements records are kept for display.
func (s *Session) Reset() {
	s.State = StateGreeting
	s.Gathered = Gathered{}
}
