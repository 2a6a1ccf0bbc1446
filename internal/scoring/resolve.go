package scoring

import (
	"strings"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// Canonical career domains. Everything downstream of the resolver (default
// roadmaps, resources, college matching) is keyed by one of these labels.
const (
	DomainTechnology = "Technology"
	DomainBusiness   = "Business"
	DomainArt        = "Art"
	DomainMusic      = "Music"
	DomainEducation  = "Education"
)

// profileKeyword pairs a canonical domain with the profile substrings that
// signal it. The scan order of this slice is the precedence order: the first
// domain with any keyword hit wins, overriding the score ranking. A slice
// (not a map) keeps that contract reproducible.
type profileKeyword struct {
	domain   string
	triggers []string
}

var profileKeywords = []profileKeyword{
	// "IT" stays upper-case on purpose: the scan text is lower-cased, and a
	// lower-cased "it" would fire inside ordinary words ("with", "quite").
	{DomainTechnology, []string{"programming", "coding", "tech", "software", "computer", "IT", "developer", "engineer"}},
	{DomainBusiness, []string{"business", "entrepreneur", "management", "finance", "marketing", "sales", "startup"}},
	{DomainArt, []string{"art", "design", "creative", "painting", "drawing", "visual", "graphic"}},
	{DomainMusic, []string{"music", "singing", "instrument", "composer", "producer", "audio"}},
	{DomainEducation, []string{"teaching", "education", "tutor", "trainer", "professor", "instructor"}},
}

// domainMapping maps raw assessment-domain tags (lower-cased) to canonical
// career domains. Tags without an entry pass through unchanged; they are
// treated as already canonical.
var domainMapping = map[string]string{
	"analytical": DomainTechnology,
	"technical":  DomainTechnology,
	"technology": DomainTechnology,
	"creativity": DomainArt,
	"artistic":   DomainArt,
	"arts":       DomainArt,
	"musical":    DomainMusic,
	"music":      DomainMusic,
	"business":   DomainBusiness,
	"management": DomainBusiness,
	"leadership": DomainBusiness,
	"education":  DomainEducation,
	"teaching":   DomainEducation,
	"social":     DomainEducation,
}

// ResolveDominant picks exactly one canonical career domain for a user.
//
// It ranks the breakdown (mutating scores into descending order), takes the
// top domain tag as the initial dominant, lets profile keywords override it
// (first matching canonical domain wins), and finally canonicalizes raw
// assessment tags through the mapping table.
//
// profileText is the user's free-text profile fields concatenated and
// lower-cased (see ProfileText). An empty profileText simply skips the
// override. scores must be non-empty; the pipeline guards against zero
// answers before calling.
func ResolveDominant(scores []domain.DomainScore, profileText string) string {
	RankScores(scores)
	dominant := scores[0].Domain

	for _, pk := range profileKeywords {
		if containsAny(profileText, pk.triggers) {
			dominant = pk.domain
			break
		}
	}

	if mapped, ok := domainMapping[strings.ToLower(dominant)]; ok {
		return mapped
	}
	return dominant
}

// ProfileText concatenates the keyword-bearing profile fields and lower-cases
// the result for substring scanning.
func ProfileText(p *domain.Profile) string {
	if p == nil {
		return ""
	}
	return strings.ToLower(strings.Join([]string{
		p.MainSkill, p.InterestArea, p.Goals, p.Hobbies, p.DailyHabits,
	}, " "))
}

// IsCanonical reports whether d is one of the fixed canonical career domains.
func IsCanonical(d string) bool {
	switch d {
	case DomainTechnology, DomainBusiness, DomainArt, DomainMusic, DomainEducation:
		return true
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
