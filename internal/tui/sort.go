package tui

import (
	"sort"
	"strings"

	"github.com/dm/eia-go/internal/model"
)

// sortGroupRows returns a sorted copy of rows.
// Column mapping:
//
//	0=LogName, 1=ImpactScore, 2=ImpactPercent, 3=StorageGB, 4=TotalShards,
//	5=TotalSegments, 6=DocCount, 7=IndexCount, 8=MonthlyCost
//
// col -1 means no sort (preserve rank order). Ties are broken by LogName
// ascending.
func sortGroupRows(rows []model.GroupRow, col int, desc bool) []model.GroupRow {
	out := make([]model.GroupRow, len(rows))
	copy(out, rows)

	if col < 0 {
		return out
	}

	byName := func(a, b model.GroupRow) bool {
		return strings.ToLower(a.LogName) < strings.ToLower(b.LogName)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		var less bool
		switch col {
		case 0:
			less = byName(a, b)
		case 1:
			if a.ImpactScore == b.ImpactScore {
				return byName(a, b)
			}
			less = a.ImpactScore < b.ImpactScore
		case 2:
			if a.ImpactPercent == b.ImpactPercent {
				return byName(a, b)
			}
			less = a.ImpactPercent < b.ImpactPercent
		case 3:
			if a.StorageGB == b.StorageGB {
				return byName(a, b)
			}
			less = a.StorageGB < b.StorageGB
		case 4:
			if a.TotalShards == b.TotalShards {
				return byName(a, b)
			}
			less = a.TotalShards < b.TotalShards
		case 5:
			if a.TotalSegments == b.TotalSegments {
				return byName(a, b)
			}
			less = a.TotalSegments < b.TotalSegments
		case 6:
			if a.DocCount == b.DocCount {
				return byName(a, b)
			}
			less = a.DocCount < b.DocCount
		case 7:
			if a.IndexCount == b.IndexCount {
				return byName(a, b)
			}
			less = a.IndexCount < b.IndexCount
		case 8:
			if a.MonthlyCost == b.MonthlyCost {
				return byName(a, b)
			}
			less = a.MonthlyCost < b.MonthlyCost
		default:
			return false
		}
		if desc {
			return !less
		}
		return less
	})
	return out
}

// filterGroupRows returns the rows whose log name contains the query,
// case-insensitively. An empty query keeps everything.
func filterGroupRows(rows []model.GroupRow, query string) []model.GroupRow {
	if query == "" {
		return rows
	}
	q := strings.ToLower(query)
	var out []model.GroupRow
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.LogName), q) {
			out = append(out, r)
		}
	}
	return out
}
