// Package narrative extracts structured career guidance from the free-text
// response of the completion service.
//
// The parser is best-effort by contract: the model is asked for an exact
// section layout (see the prompt package) but may deviate, so every field is
// extracted independently and falls back to a declared default when its
// section is missing or malformed. Parse never fails — any input string,
// including the empty string, produces a fully populated Analysis.
package narrative

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// DefaultPrimaryCareer is the placeholder career title used when the model
// response carries no recognizable primary recommendation heading.
const DefaultPrimaryCareer = "AI-Generated Career Path"

// Generic fallbacks for list sections the model failed to produce.
var (
	defaultAlternatives = []string{
		"Explore related fields",
		"Consider interdisciplinary roles",
		"Look into emerging careers",
	}
	defaultSkillGaps = []string{
		"Technical proficiency",
		"Industry knowledge",
		"Practical experience",
	}
)

// Extraction limits per field.
const (
	maxAlternatives   = 5
	maxSkillGaps      = 5
	maxRoadmapSteps   = 6
	maxResources      = 10
	maxStepDescrRunes = 300
)

var (
	primaryRE = regexp.MustCompile(`(?i)Primary Career Recommendation:\s*\*\*(.+?)\*\*`)

	// Section bodies run from the heading to the next "###" heading (or end
	// of text). RE2 has no lookahead, so section helpers bound them by index.
	altHeadingRE       = regexp.MustCompile(`(?i)Alternative Career Paths?:`)
	skillHeadingRE     = regexp.MustCompile(`(?i)Skill Gaps?`)
	roadmapHeadingRE   = regexp.MustCompile(`(?i)Roadmap for Career Development:`)
	resourcesHeadingRE = regexp.MustCompile(`(?i)Recommended Resources:`)

	numberedBoldRE = regexp.MustCompile(`\d+\.\s*\*\*(.+?)\*\*`)
	bulletBoldRE   = regexp.MustCompile(`[*-]\s*\*\*(.+?)\*\*`)
	stepStartRE    = regexp.MustCompile(`(?i)\*\*Step \d+:`)
	stepTitleRE    = regexp.MustCompile(`(?i)\*\*Step \d+:\s*(.+?)\*\*`)
)

// Defaulted records, per field, whether extraction failed and the declared
// default was substituted. Useful for observability; not persisted.
type Defaulted struct {
	PrimaryCareer bool `json:"primary_career"`
	Alternatives  bool `json:"alternatives"`
	SkillGaps     bool `json:"skill_gaps"`
	Roadmap       bool `json:"roadmap"`
	Resources     bool `json:"resources"`
}

// Analysis is the structured form of one model response.
type Analysis struct {
	PrimaryCareer        string
	AlternativeCareers   []string
	SkillGaps            []string
	RoadmapSteps         []domain.RoadmapStep
	RecommendedResources []string

	Defaulted Defaulted
}

// Parse extracts structured fields from raw model output. careerDomain is the
// resolved canonical domain, used only to pick the fallback roadmap when no
// "Step N" blocks are found. Failure to extract one field never aborts the
// others.
func Parse(text, careerDomain string) Analysis {
	a := Analysis{
		PrimaryCareer:        DefaultPrimaryCareer,
		AlternativeCareers:   append([]string(nil), defaultAlternatives...),
		SkillGaps:            append([]string(nil), defaultSkillGaps...),
		RecommendedResources: []string{},
	}

	if m := primaryRE.FindStringSubmatch(text); m != nil {
		a.PrimaryCareer = strings.TrimSpace(m[1])
	} else {
		a.Defaulted.PrimaryCareer = true
	}

	if alts := parseNumberedTitles(section(text, altHeadingRE), maxAlternatives, false); len(alts) > 0 {
		a.AlternativeCareers = alts
	} else {
		a.Defaulted.Alternatives = true
	}

	if gaps := parseNumberedTitles(section(text, skillHeadingRE), maxSkillGaps, true); len(gaps) > 0 {
		a.SkillGaps = gaps
	} else {
		a.Defaulted.SkillGaps = true
	}

	if steps := parseRoadmap(section(text, roadmapHeadingRE)); len(steps) > 0 {
		a.RoadmapSteps = steps
	} else {
		a.RoadmapSteps = DefaultRoadmap(careerDomain)
		a.Defaulted.Roadmap = true
	}

	if res := parseResources(sectionToEnd(text, resourcesHeadingRE)); len(res) > 0 {
		a.RecommendedResources = res
	} else {
		a.Defaulted.Resources = true
	}

	return a
}

// section returns the text between the first match of heading and the next
// "###" top-level heading, or "" when the heading is absent.
func section(text string, heading *regexp.Regexp) string {
	loc := heading.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	body := text[loc[1]:]
	if next := strings.Index(body, "###"); next >= 0 {
		body = body[:next]
	}
	return body
}

// sectionToEnd returns everything after the first match of heading. The
// resources section is specified to run to end of text.
func sectionToEnd(text string, heading *regexp.Regexp) string {
	loc := heading.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	return text[loc[1]:]
}

// parseNumberedTitles pulls up to limit bold titles from numbered list
// entries ("1. **Title**"). When beforeColon is set, only the text preceding
// the first colon is kept (skill gap entries carry a how-to-develop tail).
func parseNumberedTitles(body string, limit int, beforeColon bool) []string {
	if body == "" {
		return nil
	}
	out := make([]string, 0, limit)
	for _, m := range numberedBoldRE.FindAllStringSubmatch(body, -1) {
		title := strings.TrimSpace(m[1])
		if beforeColon {
			if i := strings.Index(title, ":"); i >= 0 {
				title = strings.TrimSpace(title[:i])
			}
		}
		if title == "" {
			continue
		}
		out = append(out, title)
		if len(out) == limit {
			break
		}
	}
	return out
}

// parseRoadmap splits the roadmap section into "**Step N: ...**" blocks. Each
// block contributes a title (text between "Step N:" and the closing bold
// marker) and a description (the remainder of the block, truncated). Step
// numbers are reassigned contiguously from 1 regardless of what the model
// emitted.
func parseRoadmap(body string) []domain.RoadmapStep {
	if body == "" {
		return nil
	}
	starts := stepStartRE.FindAllStringIndex(body, -1)
	if len(starts) == 0 {
		return nil
	}

	steps := make([]domain.RoadmapStep, 0, maxRoadmapSteps)
	for i, loc := range starts {
		end := len(body)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		block := body[loc[0]:end]

		title := ""
		rest := block
		if tm := stepTitleRE.FindStringSubmatchIndex(block); tm != nil {
			title = strings.TrimSpace(block[tm[2]:tm[3]])
			rest = block[tm[1]:]
		}
		if title == "" {
			title = "Phase " + strconv.Itoa(len(steps)+1)
		}

		steps = append(steps, domain.RoadmapStep{
			Step:        len(steps) + 1,
			Title:       title,
			Description: truncateRunes(strings.TrimSpace(rest), maxStepDescrRunes),
		})
		if len(steps) == maxRoadmapSteps {
			break
		}
	}
	return steps
}

// parseResources pulls up to maxResources bold bullet entries from the
// resources section.
func parseResources(body string) []string {
	if body == "" {
		return nil
	}
	out := make([]string, 0, maxResources)
	for _, m := range bulletBoldRE.FindAllStringSubmatch(body, -1) {
		r := strings.TrimSpace(m[1])
		if r == "" {
			continue
		}
		out = append(out, r)
		if len(out) == maxResources {
			break
		}
	}
	return out
}

func truncateRunes(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}
