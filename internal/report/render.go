// Package report renders a BatchAnalysis as a human-readable text report.
package report

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/cohort-intel/internal/model"
)

// Render produces the plain-text report for a batch analysis.
func Render(a *model.BatchAnalysis) string {
	p := message.NewPrinter(language.English)
	var b strings.Builder

	title := a.BatchName
	if title == "" {
		title = "Batch Analysis"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "Companies analyzed: %d\n", a.TotalCompanies)
	if a.AvgTeamSize != nil {
		fmt.Fprintf(&b, "Average team size: %d\n", *a.AvgTeamSize)
	}
	if a.FundedCompanies > 0 {
		fmt.Fprintf(&b, "Funding signals: %d companies (estimated %s total, order-of-magnitude)\n",
			a.FundedCompanies, p.Sprintf("$%d", a.EstimatedFunding))
	}

	if len(a.IndustryBreakdown) > 0 {
		b.WriteString("\n## Industries\n")
		writeBreakdown(&b, a.IndustryBreakdown)
	}
	if len(a.LocationBreakdown) > 0 {
		b.WriteString("\n## Locations\n")
		writeBreakdown(&b, a.LocationBreakdown)
	}

	if len(a.TopPerformers) > 0 {
		b.WriteString("\n## Top Performers\n")
		for i, c := range a.TopPerformers {
			fmt.Fprintf(&b, "%d. %s", i+1, c.Name)
			if c.Location != "" {
				fmt.Fprintf(&b, " (%s)", c.Location)
			}
			b.WriteString("\n")
		}
	}

	if len(a.Trends) > 0 {
		b.WriteString("\n## Trends\n")
		for _, t := range a.Trends {
			fmt.Fprintf(&b, "- %s\n", t)
		}
	}

	for _, m := range a.CompetitiveMatrix {
		fmt.Fprintf(&b, "\n## Competitive Landscape: %s\n", m.Industry)
		fmt.Fprintf(&b, "Market leader: %s\n", m.MarketLeader)
		if len(m.EmergingPlayers) > 0 {
			fmt.Fprintf(&b, "Emerging players: %s\n", strings.Join(m.EmergingPlayers, ", "))
		}
		for _, o := range m.Opportunities {
			fmt.Fprintf(&b, "- %s\n", o)
		}
	}

	return b.String()
}

// writeBreakdown emits "name: count" lines sorted by descending count,
// alphabetical on ties.
func writeBreakdown(b *strings.Builder, counts map[string]int) {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		fmt.Fprintf(b, "- %s: %d\n", name, counts[name])
	}
}
