package engine

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dm/eia-go/internal/client"
	"github.com/dm/eia-go/internal/model"
)

// Data-quality outcomes: the cluster answered, but the invocation cannot
// produce a usable report.
var (
	// ErrNoMatches means no index matched the grouping pattern.
	ErrNoMatches = errors.New("no indices matched the grouping pattern")
	// ErrNoCapacity means both capacity denominators are unknown, so
	// normalized scoring cannot proceed at all.
	ErrNoCapacity = errors.New("cluster capacity totals are unavailable; normalized scoring requires node stats")
)

// InvalidPatternError reports a grouping pattern that failed to compile.
// It is raised before any fetch.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid index pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error { return e.Err }

// Options configures one analysis run.
type Options struct {
	Pattern string
	Mode    model.ScoreMode
	Weights model.Weights
}

// Analyzer runs the fetch → collect → group → score pipeline against one
// cluster. Each Run is independent and stateless.
type Analyzer struct {
	Client client.ESClient
}

// Run executes a single analysis pass and returns the ranked report.
// Partial-data conditions are accumulated as warnings on the report; terminal
// conditions are returned as errors (see the package sentinels and
// InvalidPatternError for the cases the caller may want to distinguish).
func (a *Analyzer) Run(ctx context.Context, opts Options) (*model.Report, error) {
	matcher, err := NewPatternMatcher(opts.Pattern)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: opts.Pattern, Err: err}
	}

	// Stats and settings have no ordering dependency; fetch them together.
	var (
		stats    *client.IndexStatsResponse
		settings client.IndexSettingsResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = a.Client.GetIndexStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		settings, err = a.Client.GetIndexSettings(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch cluster data: %w", err)
	}

	report := &model.Report{Mode: opts.Mode, Weights: opts.Weights}

	// The node-stats fetch is needed for normalized denominators, and also
	// whenever any replica setting resolves against the data-node count.
	var capacity model.CapacityInfo
	if opts.Mode == model.ScoreModeNormalized || NeedsNodeStats(settings) {
		nodeStats, err := a.Client.GetNodeStats(ctx)
		if err != nil {
			if opts.Mode == model.ScoreModeNormalized {
				return nil, fmt.Errorf("fetch cluster capacity: %w", err)
			}
			// Resolution degrades to the auto-expand lower bound.
			report.Warn("failed to fetch node stats: %v; auto-expand replica counts may be inaccurate", err)
		} else {
			capacity = DataNodeCapacity(nodeStats)
			report.Capacity = &capacity
		}
	}

	if opts.Mode == model.ScoreModeNormalized {
		disk, heap := capacity.DiskTotalGB(), capacity.HeapMaxMB()
		if disk == 0 && heap == 0 {
			return nil, ErrNoCapacity
		}
		if disk == 0 {
			report.Warn("normalized scoring will skip missing capacity metric: disk total")
		}
		if heap == 0 {
			report.Warn("normalized scoring will skip missing capacity metric: heap max")
		}
	}

	metrics, missingSettings := CollectIndexMetrics(stats, settings, capacity.DataNodes)
	if len(missingSettings) > 0 {
		report.Warn("no settings for %d indices; their shard counts are recorded as zero", len(missingSettings))
	}

	if !matcher.HasCaptureGroups() {
		report.Warn("index pattern has no capture groups; grouping by full index name")
	}

	groups, unmatched := GroupStreams(metrics, matcher)
	if len(unmatched) > 0 {
		report.Warn("skipped %d indices that do not match pattern %s", len(unmatched), opts.Pattern)
	}
	if len(groups) == 0 {
		return nil, ErrNoMatches
	}

	ScoreGroups(groups, opts.Mode, opts.Weights, capacity)
	report.Groups = groups
	report.Unmatched = unmatched
	report.TotalImpact = TotalImpact(groups)
	return report, nil
}
