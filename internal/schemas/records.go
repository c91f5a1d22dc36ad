package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-matcher/internal/types"
)

//go:embed resume_record.schema.json
var resumeRecordSchema string

//go:embed job_record.schema.json
var jobRecordSchema string

//go:embed match_score.schema.json
var matchScoreSchema string

// ValidateResumeRecord checks a parsed resume record against its schema.
// A failure indicates a bug in the extractors, not bad user input.
func ValidateResumeRecord(record *types.ResumeRecord) error {
	return validateRecord("resume_record", resumeRecordSchema, record)
}

// ValidateJobRecord checks a parsed job record against its schema.
func ValidateJobRecord(record *types.JobRecord) error {
	return validateRecord("job_record", jobRecordSchema, record)
}

// ValidateMatchScore checks a computed match score against its schema.
func ValidateMatchScore(score *types.MatchScore) error {
	return validateRecord("match_score", matchScoreSchema, score)
}

func validateRecord(name, schema string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	return validate(name, schema, string(data))
}
