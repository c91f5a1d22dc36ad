package types

// MatchScore is the result of comparing a resume record against a job record.
type MatchScore struct {
	// Overall is the weighted match score in [0, 100].
	Overall float64 `json:"overall"`

	// FieldScores holds the per-field sub-scores in [0, 1], keyed by field
	// name (Skills, Certifications, Education, Experience, Languages).
	FieldScores map[string]float64 `json:"field_scores"`

	// Feedback maps field names to human-readable gap descriptions, e.g.
	// "Missing skills: Docker" or "All required skills present."
	Feedback map[string]string `json:"feedback"`
}
