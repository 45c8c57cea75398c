// Package enrich fans one company out to the structured-extraction provider
// across four research angles and gathers whatever settles in time.
package enrich

import (
	"context"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/cohort-intel/internal/extract"
	"github.com/sells-group/cohort-intel/internal/model"
)

// Orchestrator runs the four research extraction tasks for a company.
type Orchestrator struct {
	task *extract.Task
}

// New creates an orchestrator backed by the given extraction task.
func New(task *extract.Task) *Orchestrator {
	return &Orchestrator{task: task}
}

// Enrich runs the four research angles concurrently and returns a copy of
// the company with DeepAnalysis attached. The join is settle-all: every
// angle runs to completion or its own deadline, and sub-task failures are
// absorbed into empty sub-objects rather than surfaced. The only error is
// validation: a company without a website has no extraction target.
func (o *Orchestrator) Enrich(ctx context.Context, company model.CompanyRecord) (model.CompanyRecord, error) {
	if strings.TrimSpace(company.Website) == "" {
		return model.CompanyRecord{}, eris.Errorf("enrich: company %q has no website", company.Name)
	}

	angles := researchAngles(company)

	// Each goroutine owns one slot; no cross-task state is shared.
	var settled [angleCount]map[string]any
	var wg sync.WaitGroup
	for i := range angles {
		wg.Add(1)
		go func() {
			defer wg.Done()
			settled[i] = o.task.Run(ctx, angles[i].label, angles[i].request)
		}()
	}
	wg.Wait()

	result := model.NewEnrichmentResult()
	result.WebsiteAnalysis = settled[angleWebsite]
	result.SocialPresence = settled[angleSocial]
	result.CompetitiveIntel = settled[angleCompetitive]
	result.FounderIntel = settled[angleFounder]

	zap.L().Info("enrich: company settled",
		zap.String("company", company.Name),
		zap.String("website", company.Website),
		zap.Int("angles_with_data", countNonEmpty(settled[:])),
	)

	enriched := company
	enriched.DeepAnalysis = result
	return enriched, nil
}

// All enriches a collection with a caller-supplied concurrency ceiling, the
// pool the orchestrator itself deliberately does not impose. Companies that
// fail validation pass through unenriched; output order matches input order.
func (o *Orchestrator) All(ctx context.Context, companies []model.CompanyRecord, concurrency int) []model.CompanyRecord {
	if concurrency < 1 {
		concurrency = 1
	}

	out := make([]model.CompanyRecord, len(companies))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, company := range companies {
		g.Go(func() error {
			enriched, err := o.Enrich(gctx, company)
			if err != nil {
				zap.L().Warn("enrich: skipping company",
					zap.String("company", company.Name),
					zap.Error(err),
				)
				out[i] = company
				return nil // individual failures never abort the batch
			}
			out[i] = enriched
			return nil
		})
	}

	_ = g.Wait()
	return out
}

func countNonEmpty(settled []map[string]any) int {
	n := 0
	for _, m := range settled {
		if len(m) > 0 {
			n++
		}
	}
	return n
}
