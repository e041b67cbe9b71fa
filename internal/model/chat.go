package model

// ChatRequest represents one user turn
type ChatRequest struct {
	ConversationID string `json:"conversation_id,omitempty"`
	Message        string `json:"message" binding:"required"`
}

// ChatResponse represents the assistant's reply for one turn. Completed is
// true only on the terminal turn of a dialogue cycle, in which case
// Requirements and Results are populated and the reply text also embeds the
// requirements as a fenced json block for callers that scan text.
type ChatResponse struct {
	ConversationID string        `json:"conversation_id"`
	Reply          string        `json:"reply"`
	Completed      bool          `json:"completed"`
	Requirements   *Requirements `json:"requirements,omitempty"`
	Results        []MatchResult `json:"results,omitempty"`
	Took           int64         `json:"took_ms"`
}

// RequirementsResponse exposes the session's current and immediately-previous
// completed requirements for sidebar-style callers.
type RequirementsResponse struct {
	ConversationID string        `json:"conversation_id"`
	Current        *Requirements `json:"current,omitempty"`
	Previous       *Requirements `json:"previous,omitempty"`
}

// RecommendRequest represents a direct recommendation request with an already
// assembled requirements record
type RecommendRequest struct {
	Requirements Requirements `json:"requirements" binding:"required"`
	TopN         int          `json:"top_n,omitempty"`
}

// RecommendResponse represents ranked recommendations plus the rendered table
type RecommendResponse struct {
	Results []MatchResult `json:"results"`
	Total   int           `json:"total"`
	Table   string        `json:"table"`
}

// CompareRequest names two catalog products for a pairwise comparison
type CompareRequest struct {
	ProductA string `json:"product_a" binding:"required"`
	ProductB string `json:"product_b" binding:"required"`
}

// CompareResponse carries the rendered pairwise comparison
type CompareResponse struct {
	Comparison string `json:"comparison"`
}
