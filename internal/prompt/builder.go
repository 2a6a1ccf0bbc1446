// Package prompt renders the deterministic career-counselor prompt sent to
// the completion service.
//
// The required output layout embedded in the template (exact section
// headings, numbered bold list entries, "**Step N:" markers) is a contract
// with the narrative parser: changing a heading here breaks extraction there.
// Building the prompt is pure templating — no network, no side effects.
package prompt

import (
	"fmt"
	"strings"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// SystemPrompt is the fixed system message accompanying every analysis
// request.
const SystemPrompt = "You are an expert career counselor. Provide detailed, actionable career guidance in a structured format."

const header = `You are an expert career counselor. Analyze this assessment and provide HIGHLY SPECIFIC career guidance.

Profile Information:
- Name: %s
- Main Skill: %s
- Interest Area: %s
- Goals: %s
- Academic Performance: %s%%

Assessment Domain Scores (0-100 scale):
%s

CRITICAL: Even if scores are similar, you MUST identify ONE dominant strength based on:
1. The highest scoring domain
2. The user's stated interests and goals
3. Create clear differentiation in your analysis

Provide your response in this EXACT format:
`

const layout = `
### Primary Career Recommendation: **[Specific Job Title]**

[2-3 paragraphs explaining this specific career and why it fits]

### Alternative Career Paths:

1. **[Job Title 1]** - [One sentence why this fits]
2. **[Job Title 2]** - [One sentence why this fits]
3. **[Job Title 3]** - [One sentence why this fits]
4. **[Job Title 4]** - [One sentence why this fits]
5. **[Job Title 5]** - [One sentence why this fits]

### Skill Gaps to Address:

1. **[Skill 1]**: [How to develop it]
2. **[Skill 2]**: [How to develop it]
3. **[Skill 3]**: [How to develop it]
4. **[Skill 4]**: [How to develop it]
5. **[Skill 5]**: [How to develop it]

### Roadmap for Career Development:

**Step 1: [Months 1-6] - [Foundation Phase Name]**
Provide 5-7 specific action items with clear deliverables. Include:
- Exact courses or certifications to pursue
- Specific skills to develop with practice hours
- Projects to complete with detailed descriptions
- Communities or networks to join
- Expected outcomes and milestones

**Step 2: [Months 7-12] - [Growth Phase Name]**
Provide 5-7 specific action items focusing on practical application. Include:
- Internship or entry-level job targets
- Portfolio pieces to create with specifications
- Industry events or conferences to attend
- Mentor relationships to establish
- Measurable skill improvements

**Step 3: [Year 2] - [Specialization Phase Name]**
Provide 5-7 specific action items for deepening expertise. Include:
- Advanced certifications or specialized training
- Complex projects with industry relevance
- Leadership opportunities to pursue
- Professional contributions (articles, talks, workshops)
- Career milestone targets

**Step 4: [Year 3-4] - [Professional Advancement Phase Name]**
Provide 5-7 specific action items for career growth. Include:
- Target job roles and companies
- Industry recognition goals (awards, publications)
- Mentorship and teaching opportunities
- Personal brand development strategies
- Income and responsibility milestones

**Step 5: [Year 5+] - [Mastery & Leadership Phase Name]**
Provide 5-7 specific action items for senior career development. Include:
- Leadership position targets
- Industry influence strategies
- Business or venture opportunities
- Legacy building activities
- Long-term career vision milestones

### Recommended Resources:

- **[Resource 1]** - [Platform/Provider]
- **[Resource 2]** - [Platform/Provider]
- **[Resource 3]** - [Platform/Provider]
- **[Resource 4]** - [Platform/Provider]
- **[Resource 5]** - [Platform/Provider]

IMPORTANT: Be specific, actionable, and create clear distinctions even when scores are similar.`

// Build renders the analysis prompt from the user's profile and the ranked
// score breakdown (all domains, highest first). Missing profile fields are
// rendered as "N/A"; scores are formatted to one decimal place.
func Build(p *domain.Profile, scores []domain.DomainScore) string {
	lines := make([]string, 0, len(scores))
	for _, s := range scores {
		lines = append(lines, fmt.Sprintf("- %s: %.1f", s.Domain, s.Score))
	}

	return fmt.Sprintf(header,
		orNA(profileField(p, func(p *domain.Profile) string { return p.FullName })),
		orNA(profileField(p, func(p *domain.Profile) string { return p.MainSkill })),
		orNA(profileField(p, func(p *domain.Profile) string { return p.InterestArea })),
		orNA(profileField(p, func(p *domain.Profile) string { return p.Goals })),
		marksOrNA(p),
		strings.Join(lines, "\n"),
	) + layout
}

func profileField(p *domain.Profile, get func(*domain.Profile) string) string {
	if p == nil {
		return ""
	}
	return get(p)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func marksOrNA(p *domain.Profile) string {
	if p == nil || p.MarksPercentage == nil {
		return "N/A"
	}
	return fmt.Sprintf("%g", *p.MarksPercentage)
}
