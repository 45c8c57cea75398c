package analyze

import "strings"

// Industry bucket names. The classifier assigns exactly one per company.
const (
	IndustryAIML           = "AI/ML"
	IndustryFintech        = "Fintech"
	IndustryHealthcare     = "Healthcare"
	IndustryDevTools       = "Developer Tools"
	IndustryEcommerce      = "E-commerce"
	IndustryEducation      = "Education"
	IndustryEnterprise     = "Enterprise/B2B"
	IndustryConsumer       = "Consumer/B2C"
	IndustryClimate        = "Climate/Sustainability"
	IndustryRealEstate     = "Real Estate"
	IndustryTransportation = "Transportation"
	IndustryFoodAg         = "Food & Agriculture"
	IndustryOther          = "Other"
)

// LocationNotSpecified is the bucket for companies with no location text.
const LocationNotSpecified = "Not Specified"

// IndustryRule maps one industry bucket to its lowercase keyword triggers.
type IndustryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// defaultIndustryTable is evaluated in order; the first rule with any keyword
// present in the lowercased description wins. The order is a deliberate
// tie-break for multi-domain descriptions (e.g. "AI-powered fintech" is
// AI/ML, not Fintech). Changing the order changes classification outcomes,
// so treat the table as frozen.
var defaultIndustryTable = []IndustryRule{
	{IndustryAIML, []string{"ai", "artificial intelligence", "machine learning", "deep learning", "llm", "neural"}},
	{IndustryFintech, []string{"fintech", "payments", "banking", "financial", "lending", "insurance", "crypto"}},
	{IndustryHealthcare, []string{"health", "medical", "biotech", "telemedicine", "clinical", "patient"}},
	{IndustryDevTools, []string{"developer", "api", "devops", "sdk", "open source", "infrastructure", "observability"}},
	{IndustryEcommerce, []string{"e-commerce", "ecommerce", "marketplace", "retail", "shopping", "merchants"}},
	{IndustryEducation, []string{"education", "edtech", "learning platform", "students", "teachers", "tutoring"}},
	{IndustryEnterprise, []string{"enterprise", "b2b", "saas", "workflow", "procurement", "compliance"}},
	{IndustryConsumer, []string{"consumer", "b2c", "social app", "mobile app", "subscription", "creators"}},
	{IndustryClimate, []string{"climate", "sustainability", "carbon", "renewable", "clean energy", "emissions"}},
	{IndustryRealEstate, []string{"real estate", "property", "housing", "proptech", "landlord"}},
	{IndustryTransportation, []string{"transportation", "logistics", "delivery", "mobility", "fleet", "freight"}},
	{IndustryFoodAg, []string{"food", "agriculture", "farming", "restaurant", "agtech", "grocery"}},
}

// locationRule folds raw location text onto a canonical bucket. Alias
// matching is case-sensitive substring containment on the canonical forms,
// which keeps "LA" from matching "Atlanta".
type locationRule struct {
	aliases   []string
	canonical string
}

var locationTable = []locationRule{
	{[]string{"San Francisco", "SF", "Bay Area", "Palo Alto", "Mountain View"}, "San Francisco Bay Area"},
	{[]string{"New York", "NYC", "Brooklyn", "Manhattan"}, "New York"},
	{[]string{"Los Angeles", "LA", "Santa Monica"}, "Los Angeles"},
	{[]string{"London"}, "London"},
	{[]string{"Remote", "remote", "Distributed", "distributed"}, "Remote"},
}

// DefaultIndustryTable returns a copy of the built-in industry keyword table.
func DefaultIndustryTable() []IndustryRule {
	out := make([]IndustryRule, len(defaultIndustryTable))
	copy(out, defaultIndustryTable)
	return out
}

// ClassifyIndustry assigns exactly one industry bucket from a free-text
// description using the default table. Empty or unmatched descriptions map
// to "Other".
func ClassifyIndustry(description string) string {
	return ClassifyIndustryWith(defaultIndustryTable, description)
}

// ClassifyIndustryWith classifies against a caller-supplied ordered table.
func ClassifyIndustryWith(table []IndustryRule, description string) string {
	lower := strings.ToLower(description)
	for _, rule := range table {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Name
			}
		}
	}
	return IndustryOther
}

// NormalizeLocation folds raw location text onto a canonical bucket. First
// matching alias rule wins. Text matching no rule becomes its own bucket
// (trimmed), so every company still lands in exactly one bucket. Empty text
// maps to "Not Specified".
func NormalizeLocation(location string) string {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return LocationNotSpecified
	}
	for _, rule := range locationTable {
		for _, alias := range rule.aliases {
			if strings.Contains(trimmed, alias) {
				return rule.canonical
			}
		}
	}
	return trimmed
}
