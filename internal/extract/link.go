package extract

import (
	"regexp"
	"sort"
	"strings"
)

var (
	fullLinkPattern   = regexp.MustCompile(`https?://[^\s)\].,;>]+`)
	wwwLinkPattern    = regexp.MustCompile(`www\.[\w.-]+\.\w+`)
	bareDomainPattern = regexp.MustCompile(`(?i)\b(?:[\w-]+\.)+(?:com|org|io|net|co|ai|dev|info)\b`)
)

// Link category labels used by Classify. Buckets are tried in this order and
// the first match wins.
const (
	LinkCategoryLinkedIn  = "LinkedIn"
	LinkCategoryGitHub    = "GitHub"
	LinkCategoryPortfolio = "Portfolio"
	LinkCategoryOther     = "Other"
)

var portfolioHints = []string{"about.me", "portfolio", "my.site", "personal", "me."}

// LinkExtractor finds hyperlinks in three tiers: full http(s) URLs,
// www-prefixed domains and, unless StrictMode is set, bare domains ending in
// a known TLD. Every match is canonicalized to an https:// form.
type LinkExtractor struct {
	// CustomDomains maps extra classification labels to domain substrings.
	// They are consulted after the built-in buckets.
	CustomDomains map[string][]string

	// StrictMode excludes bare domains such as "linkedin.com/in/x" that carry
	// no scheme or www prefix.
	StrictMode bool
}

// NewLinkExtractor creates a LinkExtractor with no custom domains.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// Extract returns the sorted, deduplicated links found in the text.
func (e *LinkExtractor) Extract(text string) []string {
	if text == "" {
		return []string{}
	}

	text = deobfuscate(text)
	found := make(map[string]bool)

	for _, link := range fullLinkPattern.FindAllString(text, -1) {
		link = strings.Trim(link, ".,);>]")
		found[canonicalizeLink(link)] = true
	}
	for _, link := range wwwLinkPattern.FindAllString(text, -1) {
		link = strings.Trim(link, ".,);>]")
		found["https://"+link] = true
	}
	if !e.StrictMode {
		for _, domain := range bareDomainPattern.FindAllString(text, -1) {
			domain = strings.Trim(domain, ".,);>]")
			found["https://"+domain] = true
		}
	}

	links := make([]string, 0, len(found))
	for l := range found {
		links = append(links, l)
	}
	sort.Strings(links)
	return links
}

// Classify extracts links and groups them into labeled buckets. Each link
// lands in exactly one bucket; the priority order is LinkedIn, GitHub,
// Portfolio, custom domains, Other. Empty buckets are omitted.
func (e *LinkExtractor) Classify(text string) map[string][]string {
	categories := make(map[string][]string)

	for _, link := range e.Extract(text) {
		bucket := e.classifyOne(link)
		categories[bucket] = append(categories[bucket], link)
	}

	return categories
}

func (e *LinkExtractor) classifyOne(link string) string {
	l := strings.ToLower(link)

	switch {
	case strings.Contains(l, "linkedin.com"):
		return LinkCategoryLinkedIn
	case strings.Contains(l, "github.com"):
		return LinkCategoryGitHub
	}
	for _, hint := range portfolioHints {
		if strings.Contains(l, hint) {
			return LinkCategoryPortfolio
		}
	}
	// Custom labels are consulted in sorted order so classification is
	// deterministic when a link matches more than one custom group.
	for _, label := range sortedLabels(e.CustomDomains) {
		for _, domain := range e.CustomDomains[label] {
			if strings.Contains(l, strings.ToLower(domain)) {
				return label
			}
		}
	}
	return LinkCategoryOther
}

func sortedLabels(m map[string][]string) []string {
	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// canonicalizeLink rewrites http:// links to https://.
func canonicalizeLink(link string) string {
	if strings.HasPrefix(link, "http://") {
		return "https://" + strings.TrimPrefix(link, "http://")
	}
	return link
}
