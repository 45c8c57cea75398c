package analyze

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sells-group/cohort-intel/internal/model"
)

// maxTrends bounds the trend list in a BatchAnalysis.
const maxTrends = 5

// dominanceShare is the minimum industry share that produces a dominance line.
const dominanceShare = 0.15

// concentrationShare is the minimum single-location share that produces a
// geographic concentration line.
const concentrationShare = 0.30

// trendBuzzwords is scanned against concatenated descriptions, in this order.
var trendBuzzwords = []string{
	"automation", "platform", "analytics", "optimization", "integration",
	"scalable", "real-time", "data-driven", "personalized", "efficient",
}

// DetectTrends produces at most 5 human-readable trend statements for a
// collection: industry dominance lines first (in industry-count order), then
// buzzword frequency lines (in fixed list order), then a geographic
// concentration line.
func DetectTrends(companies []model.CompanyRecord) []string {
	return detectTrendsWith(defaultIndustryTable, companies)
}

func detectTrendsWith(table []IndustryRule, companies []model.CompanyRecord) []string {
	trends := []string{}
	n := len(companies)
	if n == 0 {
		return trends
	}

	// Industry dominance: top 3 industries by count, at or above 15% share.
	counts := make(map[string]int)
	for _, c := range companies {
		counts[ClassifyIndustryWith(table, c.Description)]++
	}
	for _, industry := range topIndustries(table, counts, 3) {
		share := float64(counts[industry]) / float64(n)
		if share >= dominanceShare {
			pct := int(math.Round(share * 100))
			trends = append(trends, fmt.Sprintf("%s dominance: %d%% of companies", industry, pct))
		}
	}

	// Buzzword frequency over concatenated descriptions.
	var b strings.Builder
	for _, c := range companies {
		b.WriteString(strings.ToLower(c.Description))
		b.WriteString(" ")
	}
	allText := b.String()

	threshold := n / 10
	if threshold < 3 {
		threshold = 3
	}
	for _, term := range trendBuzzwords {
		if count := strings.Count(allText, term); count >= threshold {
			trends = append(trends, fmt.Sprintf("%q is a recurring theme (%d mentions)", term, count))
		}
	}

	// Geographic concentration: any single location bucket at or above 30%.
	locations := make(map[string]int)
	for _, c := range companies {
		locations[NormalizeLocation(c.Location)]++
	}
	for _, bucket := range sortedByCount(locations) {
		share := float64(locations[bucket]) / float64(n)
		if share >= concentrationShare {
			pct := int(math.Round(share * 100))
			trends = append(trends, fmt.Sprintf("Geographic concentration: %d%% of companies in %s", pct, bucket))
			break
		}
	}

	if len(trends) > maxTrends {
		trends = trends[:maxTrends]
	}
	return trends
}

// topIndustries returns up to n industry names ordered by descending count.
// Ties resolve by table order, with "Other" last.
func topIndustries(table []IndustryRule, counts map[string]int, n int) []string {
	tableIdx := make(map[string]int, len(table))
	for i, rule := range table {
		tableIdx[rule.Name] = i
	}
	rank := func(name string) int {
		if i, ok := tableIdx[name]; ok {
			return i
		}
		return len(table)
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(a, b int) bool {
		if counts[names[a]] != counts[names[b]] {
			return counts[names[a]] > counts[names[b]]
		}
		return rank(names[a]) < rank(names[b])
	})

	if n > len(names) {
		n = len(names)
	}
	return names[:n]
}

// sortedByCount orders bucket names by descending count, alphabetical on ties
// so the output is deterministic.
func sortedByCount(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(a, b int) bool {
		if counts[names[a]] != counts[names[b]] {
			return counts[names[a]] > counts[names[b]]
		}
		return names[a] < names[b]
	})
	return names
}
