package contract

import "github.com/avermeer/lectio/internal/domain"

// Recommendation is the wire shape of a derived recommendation.
type Recommendation struct {
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// RecommendationsResponse wraps the derived list.
type RecommendationsResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}

// NewRecommendationsResponse maps domain recommendations onto the wire
// shape, keeping the engine's ordering. The list is never null in JSON.
func NewRecommendationsResponse(recs []domain.Recommendation) RecommendationsResponse {
	out := make([]Recommendation, 0, len(recs))
	for _, r := range recs {
		out = append(out, Recommendation{
			Type:        string(r.Type),
			Priority:    string(r.Priority),
			Title:       r.Title,
			Description: r.Description,
			Action:      r.Action,
		})
	}
	return RecommendationsResponse{Recommendations: out}
}
