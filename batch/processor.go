// Package batch reconstructs many pages concurrently, one independent
// pipeline run per page, and summarizes the outcomes.
package batch

import (
	"context"
	"sync"

	"github.com/gridform/tablature"
	"github.com/gridform/tablature/model"
	"github.com/gridform/tablature/validate"
)

// Source supplies the input of one page.
type Source interface {
	// PageID identifies the page in results and diagnostics.
	PageID() string

	// Fragments returns the recognized fragments of the page.
	Fragments() ([]model.Fragment, error)

	// Rulings returns detected ruling lines, or nil when none were detected.
	Rulings() []model.Ruling
}

// Outcome classifies how a page fared.
type Outcome int

const (
	// OutcomeOK means the page produced records with no validation issues.
	OutcomeOK Outcome = iota
	// OutcomeWarned means records carry warnings but none are invalid.
	OutcomeWarned
	// OutcomeInvalid means at least one record failed validation.
	OutcomeInvalid
	// OutcomeRejected means reconstruction failed with a structural error
	// and no records were produced.
	OutcomeRejected
)

// String returns a human-readable representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeWarned:
		return "warned"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// PageResult holds the outcome of one page.
type PageResult struct {
	PageID  string
	Outcome Outcome

	// Result is the reconstruction output; nil when the page was rejected.
	Result *tablature.Result

	// Err is the structural error for rejected pages.
	Err error
}

// Summary aggregates a batch run.
type Summary struct {
	Pages []PageResult

	OK       int
	Warned   int
	Invalid  int
	Rejected int
}

// Config holds configuration for batch processing
type Config struct {
	// Workers is the number of pages processed concurrently.
	Workers int

	// Pipeline holds the reconstruction thresholds applied to every page.
	Pipeline tablature.Config

	// Rules is an optional rule set applied to every page's records.
	Rules *validate.RuleSet
}

// DefaultConfig returns sensible defaults for batch processing
func DefaultConfig() Config {
	return Config{
		Workers:  4,
		Pipeline: tablature.DefaultConfig(),
	}
}

// Processor runs reconstruction over many pages.
type Processor struct {
	config Config
}

// New creates a processor with default configuration
func New() *Processor {
	return &Processor{config: DefaultConfig()}
}

// NewWithConfig creates a processor with custom configuration
func NewWithConfig(config Config) *Processor {
	return &Processor{config: config}
}

// Process reconstructs every source page. Pages run independently and
// failures never abort the batch: a page that cannot be reconstructed is
// recorded as rejected and the rest proceed. Cancelling the context
// abandons pages that have not started; they are recorded as rejected with
// the context's error.
func (p *Processor) Process(ctx context.Context, sources []Source) *Summary {
	results := make([]PageResult, len(sources))

	workers := p.config.Workers
	if workers <= 0 {
		workers = 4
	}
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup

	for i, src := range sources {
		wg.Add(1)
		go func(idx int, src Source) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			if err := ctx.Err(); err != nil {
				results[idx] = PageResult{PageID: src.PageID(), Outcome: OutcomeRejected, Err: err}
				return
			}

			results[idx] = p.processPage(src)
		}(i, src)
	}

	wg.Wait()

	summary := &Summary{Pages: results}
	for _, pr := range results {
		switch pr.Outcome {
		case OutcomeOK:
			summary.OK++
		case OutcomeWarned:
			summary.Warned++
		case OutcomeInvalid:
			summary.Invalid++
		case OutcomeRejected:
			summary.Rejected++
		}
	}
	return summary
}

// processPage runs the pipeline for a single page.
func (p *Processor) processPage(src Source) PageResult {
	pageID := src.PageID()

	frags, err := src.Fragments()
	if err != nil {
		return PageResult{PageID: pageID, Outcome: OutcomeRejected, Err: err}
	}

	rec := tablature.FromFragments(pageID, frags).
		WithConfig(p.config.Pipeline).
		Rulings(src.Rulings())
	if p.config.Rules != nil {
		rec = rec.Validate(p.config.Rules)
	}

	res, err := rec.Result()
	if err != nil {
		return PageResult{PageID: pageID, Outcome: OutcomeRejected, Err: err}
	}

	return PageResult{PageID: pageID, Outcome: classify(res), Result: res}
}

// classify derives a page outcome from its records and warnings.
func classify(res *tablature.Result) Outcome {
	outcome := OutcomeOK
	if len(res.Warnings) > 0 {
		outcome = OutcomeWarned
	}
	for _, r := range res.Records {
		switch r.Status {
		case model.StatusInvalid:
			return OutcomeInvalid
		case model.StatusWarning:
			outcome = OutcomeWarned
		}
	}
	return outcome
}
