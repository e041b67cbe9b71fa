package dialog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"core/internal/model"
)

// Prompts emitted on each transition
const (
	replyReset = "Let's start over. How can I help you find the right water filter today?"

	promptInstallation = "Hello! I'm your water filter shopping assistant. I'll help you find the perfect water filtration solution for your needs. " +
		"Where would you like to install your water filter? (under sink, countertop, pitcher, portable, shower, whole house)"
	promptBudget       = "Thanks! What's your budget for the water filter? Do you have a maximum price in mind?"
	promptContaminants = "Got it. What contaminants are you most concerned about removing from your water? (e.g., chlorine, lead, fluoride, bacteria)"
	promptEco          = "Is eco-friendliness important to you? Would you prefer a filter with minimal environmental impact or longer filter life to reduce waste?"
	promptRemin        = "Some filters add minerals back into the water after filtration. Is remineralization important to you for taste or health benefits?"
	promptHousehold    = "How many people will be using this water filter? This helps determine the capacity needed."
)

// Result is the outcome of one dialogue turn. Requirements is non-nil only
// when Completed is true.
type Result struct {
	Reply        string
	Completed    bool
	Requirements *model.Requirements
}

// Controller advances a dialogue session one turn at a time. It holds no
// per-conversation state of its own; all mutable state lives in the session
// the caller passes in.
type Controller struct{}

// NewController creates a dialogue controller.
func NewController() *Controller {
	return &Controller{}
}

// Advance consumes one utterance, mutates the session, and returns the next
// prompt. Extraction never fails: every unparseable answer resolves to a
// documented default. On the terminal turn the result carries the assembled
// requirements record and the reply embeds it as a fenced json block.
func (c *Controller) Advance(sess *Session, utterance string) *Result {
	input := strings.ToLower(utterance)

	// Reset overrides the normal transition in any state.
	if containsAny(input, "start over", "reset") {
		sess.Reset()
		return &Result{Reply: replyReset}
	}

	switch sess.State {
	case StateGreeting:
		sess.State = StateAskInstallation
		return &Result{Reply: promptInstallation}

	case StateAskInstallation:
		sess.Gathered.Installation = extractInstallation(input)
		sess.State = StateAskBudget
		return &Result{Reply: promptBudget}

	case StateAskBudget:
		sess.Gathered.Budget = extractBudget(input)
		sess.State = StateAskContaminants
		return &Result{Reply: promptContaminants}

	case StateAskContaminants:
		sess.Gathered.Contaminants = extractContaminants(input)
		sess.State = StateAskEco
		return &Result{Reply: promptEco}

	case StateAskEco:
		sess.Gathered.EcoFriendly = extractEcoFriendly(input)
		sess.State = StateAskRemineralization
		return &Result{Reply: promptRemin}

	case StateAskRemineralization:
		sess.Gathered.Remineralization = extractRemineralization(input)
		sess.State = StateAskHousehold
		return &Result{Reply: promptHousehold}

	case StateAskHousehold:
		sess.Gathered.HouseholdSize = extractHouseholdSize(input)
		return c.complete(sess)

	default:
		// Unknown state in a deserialized session; recover by restarting.
		sess.Reset()
		sess.State = StateAskInstallation
		return &Result{Reply: promptInstallation}
	}
}

// complete assembles the requirements record from the accumulator, supersedes
// the previous record, and resets the session for the next cycle.
func (c *Controller) complete(sess *Session) *Result {
	g := sess.Gathered
	req := &model.Requirements{
		Installation:     g.Installation,
		MaxPrice:         g.Budget,
		RemoveChlorine:   g.Contaminants.Chlorine,
		RemoveLead:       g.Contaminants.Lead,
		RemoveFluoride:   g.Contaminants.Fluoride,
		RemoveBacteria:   g.Contaminants.Bacteria,
		EcoFriendly:      g.EcoFriendly,
		Remineralization: g.Remineralization,
		HouseholdSize:    g.HouseholdSize,
		Priorities:       derivePriorities(g),
	}

	sess.Previous = sess.Current
	sess.Current = req
	sess.Reset()

	return &Result{
		Reply:        summaryReply(req),
		Completed:    true,
		Requirements: req,
	}
}

// summaryReply renders the terminal response: a short summary of what was
// understood plus the serialized requirements in a fenced json block.
func summaryReply(req *model.Requirements) string {
	var sb strings.Builder
	sb.WriteString("Thank you for providing all that information! Based on what you've told me, I understand you're looking for:\n\n")
	sb.WriteString("- Installation type: " + strings.Join(req.Installation, ", ") + "\n")
	sb.WriteString(fmt.Sprintf("- Budget: £%s\n", strconv.FormatFloat(req.MaxPrice, 'f', -1, 64)))
	sb.WriteString("- Priorities: " + strings.Join(req.Priorities, ", ") + "\n\n")
	sb.WriteString("I've analyzed your requirements and here are my recommendations:\n\n")

	encoded, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		// Requirements is a plain struct; this cannot happen in practice.
		return sb.String()
	}
	sb.WriteString("```json\n")
	sb.Write(encoded)
	sb.WriteString("\n```")
	return sb.String()
}

// ExtractRequirements locates and parses the fenced json block embedded in a
// terminal reply. Callers that only see the reply text use this; a malformed
// or absent block yields nil, meaning "no requirements yet".
func ExtractRequirements(reply string) *model.Requirements {
	start := strings.Index(reply, "```json")
	if start < 0 {
		return nil
	}
	rest := reply[start+len("```json"):]
	end := strings.Index(rest, "```")
	if end < 0 {
		return nil
	}
	var req model.Requirements
	if err := json.Unmarshal([]byte(strings.TrimSpace(rest[:end])), &req); err != nil {
		return nil
	}
	return &req
}
