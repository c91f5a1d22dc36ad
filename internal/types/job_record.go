package types

// JobRecord is the structured requirement profile parsed from one job
// description. As with ResumeRecord, all fields are always present and the
// record is immutable after construction.
type JobRecord struct {
	Skills         []string `json:"skills"`
	Certifications []string `json:"certifications"`
	Education      []string `json:"education"`
	Experience     []string `json:"experience"`
	Languages      []string `json:"languages"`
}

// JobFields lists the field names of a JobRecord in their canonical order.
func JobFields() []string {
	return []string{"skills", "certifications", "education", "experience", "languages"}
}
