package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dm/eia-go/internal/engine"
	"github.com/dm/eia-go/internal/format"
	"github.com/dm/eia-go/internal/model"
)

const (
	reportWidth = 80
	nameWidth   = 40
)

// TopGroups returns the first top entries of the ranked group list, or all
// groups when top <= 0 or exceeds the list. Run-level totals always cover
// all groups; the limit is a display concern.
func TopGroups(r *model.Report, top int) []*model.StreamGroup {
	if top <= 0 || top >= len(r.Groups) {
		return r.Groups
	}
	return r.Groups[:top]
}

// RenderText renders the human-readable billing report: a ranked impact
// table followed by the billing percentage breakdown.
func RenderText(r *model.Report, top int, clusterCost float64) string {
	display := TopGroups(r, top)
	rule := strings.Repeat("=", reportWidth)
	dash := strings.Repeat("-", reportWidth)

	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	line(rule)
	line("ELASTICSEARCH INDEX IMPACT ANALYSIS FOR BILLING")
	line(rule)
	line("")
	if r.Mode == model.ScoreModeNormalized {
		line("Scoring mode: normalized (cluster capacity)")
		if r.Capacity != nil {
			line(fmt.Sprintf("Cluster totals: disk %.2fG, heap %.0fMB (data nodes)",
				r.Capacity.DiskTotalGB(), r.Capacity.HeapMaxMB()))
		}
	} else {
		line("Scoring mode: weighted")
		weights, _ := json.MarshalIndent(r.Weights, "", "  ")
		line("Weights used: " + string(weights))
	}
	line("")
	line(fmt.Sprintf("Total log groups analyzed: %d", len(r.Groups)))
	if r.Mode == model.ScoreModeNormalized {
		line(fmt.Sprintf("Total impact score: %.4f", r.TotalImpact))
		line(fmt.Sprintf("Matched indices share of cluster: %s", format.FormatPercent(r.TotalImpact*100)))
	} else {
		line(fmt.Sprintf("Total impact score: %.2f", r.TotalImpact))
	}
	line("Storage column uses total store size (primaries + replicas).")
	line("")
	line(dash)
	line(fmt.Sprintf("%-*s %10s %10s %8s %8s", nameWidth, "Log Name", "Impact", "Storage", "Shards", "Indices"))
	line(dash)

	impactFormat := "%10.2f"
	if r.Mode == model.ScoreModeNormalized {
		impactFormat = "%10.4f"
	}
	for _, g := range display {
		line(fmt.Sprintf("%-*s "+impactFormat+" %10s %8d %8d",
			nameWidth, g.LogName,
			g.ImpactScore,
			format.FormatGB(g.Metrics.TotalStorageGB),
			g.Metrics.TotalShards,
			g.IndexCount))
	}

	line("")
	line(rule)
	line("BILLING PERCENTAGE BREAKDOWN")
	line(rule)
	line("")
	line(fmt.Sprintf("%-*s %9s %20s", nameWidth, "Log Name", "Impact %", "Estimated Monthly $"))
	line(dash)

	for _, g := range display {
		pct := engine.ImpactPercent(g.ImpactScore, r.TotalImpact, r.Mode)
		cost := engine.EstimatedCost(g.ImpactScore, r.TotalImpact, clusterCost, r.Mode)
		line(fmt.Sprintf("%-*s %8.2f%% %20.2f", nameWidth, g.LogName, pct, cost))
	}

	line("...")
	b.WriteString(fmt.Sprintf("(Based on example cluster cost of $%.0f/month)", clusterCost))
	return b.String()
}
