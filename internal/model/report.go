package model

import "fmt"

// ScoreMode selects the impact-scoring policy for a run.
type ScoreMode string

const (
	// ScoreModeNormalized scores groups as fractions of cluster capacity.
	ScoreModeNormalized ScoreMode = "normalized"
	// ScoreModeWeighted scores groups as a weighted sum of raw metrics.
	ScoreModeWeighted ScoreMode = "weighted"
)

// Report holds the outcome of one analysis run: the ranked groups plus the
// run-level figures and warnings the renderers need.
type Report struct {
	Mode        ScoreMode
	Weights     Weights
	Capacity    *CapacityInfo // nil when the node-stats fetch was skipped or failed
	Groups      []*StreamGroup
	TotalImpact float64
	Unmatched   []string // index names excluded from all groups
	Warnings    []string
}

// Warn records a partial-data or data-quality warning on the report.
func (r *Report) Warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// GroupRow holds display-ready data for a single group in the interactive
// browser table.
type GroupRow struct {
	LogName       string
	ImpactScore   float64
	ImpactPercent float64
	StorageGB     float64
	TotalShards   int
	TotalSegments int64
	DocCount      int64
	IndexCount    int
	MonthlyCost   float64
}
