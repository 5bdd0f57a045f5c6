package report

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/dm/eia-go/internal/model"
)

type jsonMetrics struct {
	PrimaryStorageGB float64 `json:"primary_storage_gb"`
	TotalStorageGB   float64 `json:"total_storage_gb"`
	DocCount         int64   `json:"doc_count"`
	TotalShards      int     `json:"total_shards"`
	TotalSegments    int64   `json:"total_segments"`
	SegmentMemoryMB  float64 `json:"segment_memory_mb"`
	FielddataMB      float64 `json:"fielddata_mb"`
	QueryCacheMB     float64 `json:"query_cache_mb"`
	RequestCacheMB   float64 `json:"request_cache_mb"`
}

type jsonGroup struct {
	LogName     string      `json:"log_name"`
	IndexCount  int         `json:"index_count"`
	ImpactScore float64     `json:"impact_score"`
	Metrics     jsonMetrics `json:"metrics"`
	Indices     []string    `json:"indices"`
}

type jsonSummary struct {
	TotalGroups         int     `json:"total_groups"`
	TotalImpactScore    float64 `json:"total_impact_score"`
	UnmatchedIndexCount int     `json:"unmatched_index_count"`
}

type jsonReport struct {
	Summary jsonSummary `json:"summary"`
	Groups  []jsonGroup `json:"groups"`
}

// roundTo rounds v to the given number of decimal places. Scores round to
// 6 places, GB metrics to 3, MB metrics to 2; the engine supplies
// full-precision floats and rounding happens only here.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// RenderJSON renders the structured report: the run summary plus the ranked
// group list, limited to the top entries.
func RenderJSON(r *model.Report, top int) (string, error) {
	display := TopGroups(r, top)

	out := jsonReport{
		Summary: jsonSummary{
			TotalGroups:         len(r.Groups),
			TotalImpactScore:    roundTo(r.TotalImpact, 6),
			UnmatchedIndexCount: len(r.Unmatched),
		},
		Groups: make([]jsonGroup, 0, len(display)),
	}
	for _, g := range display {
		out.Groups = append(out.Groups, jsonGroup{
			LogName:     g.LogName,
			IndexCount:  g.IndexCount,
			ImpactScore: roundTo(g.ImpactScore, 6),
			Metrics: jsonMetrics{
				PrimaryStorageGB: roundTo(g.Metrics.PrimaryStorageGB, 3),
				TotalStorageGB:   roundTo(g.Metrics.TotalStorageGB, 3),
				DocCount:         g.Metrics.DocCount,
				TotalShards:      g.Metrics.TotalShards,
				TotalSegments:    g.Metrics.TotalSegments,
				SegmentMemoryMB:  roundTo(g.Metrics.SegmentMemoryMB, 2),
				FielddataMB:      roundTo(g.Metrics.FielddataMB, 2),
				QueryCacheMB:     roundTo(g.Metrics.QueryCacheMB, 2),
				RequestCacheMB:   roundTo(g.Metrics.RequestCacheMB, 2),
			},
			Indices: g.Indices,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("RenderJSON: %w", err)
	}
	return string(data), nil
}
