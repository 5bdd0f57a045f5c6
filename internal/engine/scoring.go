package engine

import (
	"sort"

	"github.com/dm/eia-go/internal/model"
)

// WeightedImpact computes the weighted-sum score for one group's aggregate
// metrics.
func WeightedImpact(m model.GroupMetrics, w model.Weights) float64 {
	return m.TotalStorageGB*w.StorageGB +
		float64(m.TotalShards)*w.ShardCount +
		float64(m.TotalSegments)*w.SegmentCount +
		m.FielddataMB*w.FielddataMB +
		m.QueryCacheMB*w.QueryCacheMB
}

// CapacityImpact computes the capacity-normalized score: storage share of
// cluster disk plus heap-resident share of cluster heap. A zero denominator
// contributes 0 to its term rather than dividing by zero; the caller is
// responsible for warning about missing denominators.
func CapacityImpact(m model.GroupMetrics, capacity model.CapacityInfo) float64 {
	var score float64
	if disk := capacity.DiskTotalGB(); disk != 0 {
		score += m.TotalStorageGB / disk
	}
	if heap := capacity.HeapMaxMB(); heap != 0 {
		heapUsageMB := m.SegmentMemoryMB + m.FielddataMB + m.QueryCacheMB + m.RequestCacheMB
		score += heapUsageMB / heap
	}
	return score
}

// ScoreGroups assigns an impact score to every group under the selected mode
// and sorts groups by descending score in place. Ties keep first-appearance
// order.
func ScoreGroups(groups []*model.StreamGroup, mode model.ScoreMode, w model.Weights, capacity model.CapacityInfo) {
	for _, g := range groups {
		if mode == model.ScoreModeNormalized {
			g.ImpactScore = CapacityImpact(g.Metrics, capacity)
		} else {
			g.ImpactScore = WeightedImpact(g.Metrics, w)
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].ImpactScore > groups[j].ImpactScore
	})
}

// TotalImpact sums the scores of all groups.
func TotalImpact(groups []*model.StreamGroup) float64 {
	var total float64
	for _, g := range groups {
		total += g.ImpactScore
	}
	return total
}

// ImpactPercent returns a group's share of impact as a percentage.
// Normalized scores are already cluster fractions; weighted scores are
// renormalized by the run's total impact.
func ImpactPercent(score, totalImpact float64, mode model.ScoreMode) float64 {
	if mode == model.ScoreModeNormalized {
		return score * 100.0
	}
	if totalImpact == 0 {
		return 0
	}
	return score / totalImpact * 100.0
}

// EstimatedCost returns a group's monthly dollar share of clusterCost.
// Normalized mode multiplies the cost by the capacity-fraction score
// directly; weighted mode renormalizes by the run's total impact.
func EstimatedCost(score, totalImpact, clusterCost float64, mode model.ScoreMode) float64 {
	if mode == model.ScoreModeNormalized {
		return clusterCost * score
	}
	if totalImpact == 0 {
		return 0
	}
	return clusterCost * score / totalImpact
}
