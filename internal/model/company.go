package model

// CompanyRecord is a single company as supplied by the caller. Records are
// treated as immutable inputs: enrichment returns a new record layered on a
// copy, never a mutation of the original.
type CompanyRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website,omitempty"`
	Location    string `json:"location,omitempty"`
	TeamSize    string `json:"team_size,omitempty"`
	Batch       string `json:"batch,omitempty"`

	// DeepAnalysis is populated by the enrichment orchestrator and is
	// read-only afterward.
	DeepAnalysis *EnrichmentResult `json:"deep_analysis,omitempty"`
}

// EnrichmentResult holds the four research-angle payloads for one company.
// Each field is all-or-nothing: a full schema-shaped object on provider
// success, an empty (non-nil) map when that sub-task failed or timed out.
// An empty map means the research attempt did not settle with data, not that
// the company lacks the attribute.
type EnrichmentResult struct {
	WebsiteAnalysis  map[string]any `json:"website_analysis"`
	SocialPresence   map[string]any `json:"social_presence"`
	CompetitiveIntel map[string]any `json:"competitive_intel"`
	FounderIntel     map[string]any `json:"founder_intel"`
}

// NewEnrichmentResult returns a result with all four angles initialized to
// empty maps, so a total provider outage still yields a well-formed value.
func NewEnrichmentResult() *EnrichmentResult {
	return &EnrichmentResult{
		WebsiteAnalysis:  map[string]any{},
		SocialPresence:   map[string]any{},
		CompetitiveIntel: map[string]any{},
		FounderIntel:     map[string]any{},
	}
}
