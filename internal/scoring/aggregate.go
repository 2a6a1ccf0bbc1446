// Package scoring turns raw assessment answers into per-domain aptitude
// scores and resolves the single dominant career domain for a user.
//
// The package is pure: no I/O, no clock, no randomness. Aggregate and
// ResolveDominant are deterministic for identical inputs, which the analysis
// pipeline relies on for reproducible recommendations.
package scoring

import (
	"sort"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// Answer is one Likert response together with the domain tag inherited from
// its source question. Value is expected in [1,5]; Aggregate does not clamp.
type Answer struct {
	QuestionID string
	Domain     string
	Value      int
}

// Aggregate groups answers by domain tag and computes, per domain, the raw
// 1–5 average and its 0–100 normalization (rawAverage/5*100).
//
// The output order is the encounter order of domain tags in the input; the
// caller applies ranking (see ResolveDominant / RankScores). Empty input
// yields an empty slice — the pipeline treats "no answers" as a hard failure
// upstream, not here.
func Aggregate(answers []Answer) []domain.DomainScore {
	type acc struct {
		total int
		count int
	}
	byDomain := make(map[string]*acc)
	order := make([]string, 0, 8)

	for _, a := range answers {
		g, ok := byDomain[a.Domain]
		if !ok {
			g = &acc{}
			byDomain[a.Domain] = g
			order = append(order, a.Domain)
		}
		g.total += a.Value
		g.count++
	}

	out := make([]domain.DomainScore, 0, len(order))
	for _, d := range order {
		g := byDomain[d]
		raw := float64(g.total) / float64(g.count)
		out = append(out, domain.DomainScore{
			Domain:     d,
			RawAverage: raw,
			Score:      raw / 5 * 100,
		})
	}
	return out
}

// RankScores sorts a score breakdown in place by raw average descending.
// Domains whose raw averages differ by less than 0.1 are treated as tied and
// ordered by domain name ascending, keeping the ranking stable across runs
// when the instrument produces near-identical averages.
func RankScores(scores []domain.DomainScore) {
	sort.SliceStable(scores, func(i, j int) bool {
		a, b := scores[i], scores[j]
		if diff := a.RawAverage - b.RawAverage; diff < 0.1 && diff > -0.1 {
			return a.Domain < b.Domain
		}
		return a.RawAverage > b.RawAverage
	})
}
