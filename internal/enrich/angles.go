package enrich

import (
	"fmt"

	"github.com/sells-group/cohort-intel/internal/extract"
	"github.com/sells-group/cohort-intel/internal/model"
)

// Research angle indices. Each angle settles independently into its own
// EnrichmentResult field.
const (
	angleWebsite = iota
	angleSocial
	angleCompetitive
	angleFounder
	angleCount
)

type researchAngle struct {
	label   string
	request extract.Request
}

// researchAngles builds the four independent extraction requests for one
// company. The website angle targets the site directly; the others use
// search-style target references.
func researchAngles(c model.CompanyRecord) [angleCount]researchAngle {
	return [angleCount]researchAngle{
		angleWebsite: {
			label: "website_analysis",
			request: extract.Request{
				Target: c.Website,
				Instruction: fmt.Sprintf(
					"Analyze the website of %s and extract what the company builds and sells.", c.Name),
				Schema: map[string]string{
					"products":      "main products or services offered",
					"value_prop":    "the core value proposition in one sentence",
					"target_market": "who the company sells to",
					"tech_signals":  "notable technologies or platforms mentioned",
				},
			},
		},
		angleSocial: {
			label: "social_presence",
			request: extract.Request{
				Target: fmt.Sprintf("%s social media presence", c.Name),
				Instruction: fmt.Sprintf(
					"Find the social media footprint of %s (%s).", c.Name, c.Website),
				Schema: map[string]string{
					"linkedin_url":    "company LinkedIn page URL",
					"twitter_handle":  "company X/Twitter handle",
					"follower_signal": "rough audience size across platforms",
					"activity_level":  "how actively the company posts",
				},
			},
		},
		angleCompetitive: {
			label: "competitive_intel",
			request: extract.Request{
				Target: fmt.Sprintf("%s competitors", c.Name),
				Instruction: fmt.Sprintf(
					"Identify the competitive landscape around %s: %s", c.Name, c.Description),
				Schema: map[string]string{
					"competitors":     "named direct competitors",
					"differentiators": "how the company stands apart",
					"market_position": "challenger, leader, or niche player",
				},
			},
		},
		angleFounder: {
			label: "founder_intel",
			request: extract.Request{
				Target: fmt.Sprintf("%s founders", c.Name),
				Instruction: fmt.Sprintf(
					"Research the founding team of %s (%s).", c.Name, c.Website),
				Schema: map[string]string{
					"founders":           "founder names and titles",
					"backgrounds":        "prior roles and education highlights",
					"previous_companies": "companies the founders built or worked at before",
				},
			},
		},
	}
}
