package extract

import (
	"regexp"
	"sort"
	"strings"
)

var (
	certAcronymPattern = regexp.MustCompile(`\b(AZ-\d{3}|CKA|CKAD|CSM|PMP|CCNA|OCI|CKS|ITIL|CISSP)\b`)
	certFallbackPattern = regexp.MustCompile(
		`(?i)(cert(ification|ified)|cert\.|badge|exam|track|specialization|credential|training|academy|licensed)`)
	certLineNoisePattern = regexp.MustCompile(`[^\w\s\-#@.:/()]`)
)

// CertificationExtractor finds professional certifications line by line.
// Each line is tried against three tiers: known certification names (the
// first matching canonical name is emitted), common acronyms (all hits are
// emitted), and a fallback keyword pattern. A fallback hit contributes the
// source line itself, and only when neither stronger tier fired for that
// line.
type CertificationExtractor struct {
	knownCerts []string

	// ReturnLines emits the full matching line instead of the canonical name
	// for known-certification and acronym hits.
	ReturnLines bool
}

// NewCertificationExtractor creates a CertificationExtractor. A nil or empty
// list selects the default known-certification table; a custom list is
// validated for blank entries.
func NewCertificationExtractor(knownCerts []string) (*CertificationExtractor, error) {
	if len(knownCerts) == 0 {
		knownCerts = DefaultKnownCertifications()
	}
	for _, cert := range knownCerts {
		if strings.TrimSpace(cert) == "" {
			return nil, &ConfigurationError{Field: "known_certs", Message: "certification name is empty"}
		}
	}
	return &CertificationExtractor{knownCerts: knownCerts}, nil
}

// Extract returns the sorted, deduplicated certifications found in the text.
func (e *CertificationExtractor) Extract(text string) []string {
	if text == "" {
		return []string{}
	}

	results := make(map[string]bool)

	for _, line := range splitLines(text) {
		line = trimBullet(line)
		if line == "" {
			continue
		}
		normalized := strings.TrimSpace(certLineNoisePattern.ReplaceAllString(line, ""))
		matched := false

		lower := strings.ToLower(normalized)
		for _, cert := range e.knownCerts {
			if strings.Contains(lower, strings.ToLower(cert)) {
				if e.ReturnLines {
					results[line] = true
				} else {
					results[cert] = true
				}
				matched = true
				break
			}
		}

		for _, acr := range certAcronymPattern.FindAllString(normalized, -1) {
			if e.ReturnLines {
				results[line] = true
			} else {
				results[acr] = true
			}
			matched = true
		}

		// Weakest signal: a line that merely talks about certification or
		// training contributes itself verbatim.
		if !matched && certFallbackPattern.MatchString(normalized) {
			results[line] = true
		}
	}

	out := make([]string, 0, len(results))
	for r := range results {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}
