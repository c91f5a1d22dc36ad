package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// digitWordReplacer turns spelled-out digits and obfuscation tokens back into
// literal characters before the phone pattern runs.
var digitWordReplacer = strings.NewReplacer(
	"[dot]", ".", "[at]", "@", " at ", "@", "(at)", "@",
	"zero", "0", "one", "1", "two", "2", "three", "3",
	"four", "4", "five", "5", "six", "6", "seven", "7",
	"eight", "8", "nine", "9",
)

var (
	phoneCandidatePattern = regexp.MustCompile(`\+?\d[\d\s().-]{8,}\d`)
	nonDigitPattern       = regexp.MustCompile(`[^\d]`)
)

// PhoneExtractor finds phone numbers of ten or more digits, optionally
// "+"-prefixed for international numbers. Spelled-out digits ("five five
// five") are normalized before matching.
type PhoneExtractor struct {
	// FormatOutput renders bare 10-digit domestic numbers as (XXX) XXX-XXXX.
	// International numbers (leading "+") are never reformatted.
	FormatOutput bool
}

// NewPhoneExtractor creates a PhoneExtractor with formatting disabled.
func NewPhoneExtractor() *PhoneExtractor {
	return &PhoneExtractor{}
}

// Extract returns the first phone number in sorted order, or the empty string
// when the text contains none.
func (e *PhoneExtractor) Extract(text string) string {
	all := e.ExtractAll(text)
	if len(all) == 0 {
		return ""
	}
	return all[0]
}

// ExtractAll returns every phone number found, sorted and deduplicated. All
// characters except digits and a leading "+" are stripped.
func (e *PhoneExtractor) ExtractAll(text string) []string {
	if text == "" {
		return []string{}
	}

	cleaned := digitWordReplacer.Replace(strings.ToLower(text))

	found := make(map[string]bool)
	for _, raw := range phoneCandidatePattern.FindAllString(cleaned, -1) {
		number := normalizeNumber(raw)
		if len(strings.TrimPrefix(number, "+")) < 10 {
			continue
		}
		found[e.render(number)] = true
	}

	numbers := make([]string, 0, len(found))
	for n := range found {
		numbers = append(numbers, n)
	}
	sort.Strings(numbers)
	return numbers
}

// normalizeNumber strips every non-digit character, keeping a leading "+".
func normalizeNumber(raw string) string {
	plus := strings.HasPrefix(raw, "+")
	digits := nonDigitPattern.ReplaceAllString(raw, "")
	if plus {
		return "+" + digits
	}
	return digits
}

func (e *PhoneExtractor) render(number string) string {
	if !e.FormatOutput || strings.HasPrefix(number, "+") {
		return number
	}
	return fmt.Sprintf("(%s) %s-%s", number[:3], number[3:6], number[6:10])
}
