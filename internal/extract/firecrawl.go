package extract

import (
	"context"
	"errors"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/cohort-intel/internal/resilience"
	"github.com/sells-group/cohort-intel/pkg/firecrawl"
)

// extractPollInterval is how often a pending extraction job is polled.
const extractPollInterval = 2 * time.Second

// FirecrawlProvider runs structured extraction through the Firecrawl extract
// API: start a job, then poll until it settles or the context deadline wins.
// An abandoned job may still complete server-side; its result is ignored.
type FirecrawlProvider struct {
	client firecrawl.Client
}

// NewFirecrawlProvider wraps a Firecrawl client as an extraction provider.
func NewFirecrawlProvider(client firecrawl.Client) *FirecrawlProvider {
	return &FirecrawlProvider{client: client}
}

// Name implements Provider.
func (p *FirecrawlProvider) Name() string { return "firecrawl" }

// Extract implements Provider.
func (p *FirecrawlProvider) Extract(ctx context.Context, req Request) (map[string]any, error) {
	started, err := p.client.StartExtract(ctx, firecrawl.ExtractRequest{
		URLs:   []string{req.Target},
		Prompt: req.Instruction,
		Schema: jsonSchema(req.Schema),
	})
	if err != nil {
		return nil, markTransient(err)
	}
	if !started.Success || started.ID == "" {
		return nil, eris.New("firecrawl: extract job not accepted")
	}

	ticker := time.NewTicker(extractPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, eris.Wrap(ctx.Err(), "firecrawl: extract deadline")
		case <-ticker.C:
		}

		status, err := p.client.GetExtractStatus(ctx, started.ID)
		if err != nil {
			return nil, markTransient(err)
		}

		switch status.Status {
		case firecrawl.StatusCompleted:
			if status.Data == nil {
				return nil, eris.New("firecrawl: extract completed with no data")
			}
			return status.Data, nil
		case firecrawl.StatusFailed, firecrawl.StatusCancelled:
			return nil, eris.Errorf("firecrawl: extract %s: %s", status.Status, status.Error)
		}
	}
}

// markTransient tags retryable Firecrawl API errors so the task's retry
// policy recognizes them.
func markTransient(err error) error {
	var apiErr *firecrawl.APIError
	if errors.As(err, &apiErr) && resilience.IsTransientHTTPStatus(apiErr.StatusCode) {
		return resilience.NewTransientError(err, apiErr.StatusCode)
	}
	return err
}
