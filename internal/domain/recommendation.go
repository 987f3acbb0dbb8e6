package domain

// Recommendation is a single rule-triggered, actionable suggestion.
// Recommendations are derived fresh on every request and carry no
// persisted identity.
type Recommendation struct {
	Type        RecommendationType
	Priority    RecommendationPriority
	Title       string
	Description string
	Action      string
}
