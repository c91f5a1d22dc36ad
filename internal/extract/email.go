package extract

import (
	"regexp"
	"sort"
	"strings"
)

var (
	emailTokenPattern  = regexp.MustCompile(`[\w.@%+-]+`)
	emailLocalPattern  = regexp.MustCompile(`^[\w.%+-]+$`)
	emailDomainPattern = regexp.MustCompile(`^[\w-]+(\.[\w-]+)*\.\w+$`)
)

// EmailExtractor finds email addresses in unstructured text, including the
// common obfuscated spellings ("john [at] example [dot] com"). Output is
// lowercased with trailing punctuation stripped.
type EmailExtractor struct{}

// NewEmailExtractor creates an EmailExtractor.
func NewEmailExtractor() *EmailExtractor {
	return &EmailExtractor{}
}

// Extract returns the lexicographically first email address found, or the
// empty string when the text contains none.
func (e *EmailExtractor) Extract(text string) string {
	all := e.ExtractAll(text)
	if len(all) == 0 {
		return ""
	}
	return all[0]
}

// ExtractAll returns every email address found, sorted and deduplicated.
//
// Deobfuscating a phrase like "reach me at john[dot]doe[at]example[dot]com"
// produces a token with two "@" signs. The address is recovered from the
// rightmost "@"-chain: the last segment is the domain, the one before it the
// local part.
func (e *EmailExtractor) ExtractAll(text string) []string {
	if text == "" {
		return []string{}
	}

	cleaned := deobfuscate(strings.ToLower(text))

	found := make(map[string]bool)
	for _, token := range emailTokenPattern.FindAllString(cleaned, -1) {
		if email := parseEmailToken(token); email != "" {
			found[email] = true
		}
	}

	matches := make([]string, 0, len(found))
	for m := range found {
		matches = append(matches, m)
	}
	sort.Strings(matches)
	return matches
}

// parseEmailToken extracts a valid address from a token, or returns "".
func parseEmailToken(token string) string {
	token = strings.Trim(token, ".,;:")
	if !strings.Contains(token, "@") {
		return ""
	}

	parts := strings.Split(token, "@")
	local := parts[len(parts)-2]
	domain := parts[len(parts)-1]
	if local == "" || domain == "" {
		return ""
	}
	if !emailLocalPattern.MatchString(local) || !emailDomainPattern.MatchString(domain) {
		return ""
	}
	return local + "@" + domain
}
