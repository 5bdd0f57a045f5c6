package engine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dm/eia-go/internal/client"
	"github.com/dm/eia-go/internal/model"
)

const (
	bytesPerGB = 1 << 30
	bytesPerMB = 1 << 20
)

func bytesToGB(b int64) float64 { return float64(b) / bytesPerGB }
func bytesToMB(b int64) float64 { return float64(b) / bytesPerMB }

// toInt parses an Elasticsearch string-typed setting, returning 0 for
// anything non-numeric (including absent values decoded as "").
func toInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// CollectIndexMetrics builds one IndexMetric per index present in the stats
// payload, in lexical index-name order. Storage converts to binary GB,
// memory and cache figures to binary MB.
//
// Indices present in stats but absent from settings get numShards = 0 and
// are returned in missingSettings — a data-quality condition for the caller
// to surface, not a failure.
func CollectIndexMetrics(stats *client.IndexStatsResponse, settings client.IndexSettingsResponse, dataNodes int) (metrics []model.IndexMetric, missingSettings []string) {
	names := make([]string, 0, len(stats.Indices))
	for name := range stats.Indices {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entry := stats.Indices[name]
		m := model.IndexMetric{Name: name}

		if p := entry.Primaries; p != nil {
			m.PrimaryStorageGB = bytesToGB(p.Store.SizeInBytes)
			m.DocCount = p.Docs.Count
		}
		if t := entry.Total; t != nil {
			m.TotalStorageGB = bytesToGB(t.Store.SizeInBytes)
			m.TotalSegments = t.Segments.Count
			m.SegmentMemoryMB = bytesToMB(t.Segments.MemoryInBytes)
			m.FielddataMB = bytesToMB(t.Fielddata.MemorySizeInBytes)
			m.QueryCacheMB = bytesToMB(t.QueryCache.MemorySizeInBytes)
			m.RequestCacheMB = bytesToMB(t.RequestCache.MemorySizeInBytes)
		}

		idx, ok := settings[name]
		if !ok {
			missingSettings = append(missingSettings, name)
		}
		s := idx.Settings.Index
		numShards := toInt(s.NumberOfShards)
		replicas := ParseReplicas(s.NumberOfReplicas, s.AutoExpandReplicas, dataNodes)
		m.TotalShards = numShards * (1 + replicas)

		metrics = append(metrics, m)
	}
	return metrics, missingSettings
}

// isDataNode reports whether a node's role list marks it data-capable.
// An empty role list counts as data-capable for backward compatibility with
// deployments that never set roles.
func isDataNode(roles []string) bool {
	if len(roles) == 0 {
		return true
	}
	for _, role := range roles {
		if role == "data" || strings.HasPrefix(role, "data_") {
			return true
		}
	}
	return false
}

// DataNodeCapacity sums disk and heap capacity over the data-capable nodes
// in a node-stats response.
func DataNodeCapacity(stats *client.NodeStatsResponse) model.CapacityInfo {
	var info model.CapacityInfo
	for _, node := range stats.Nodes {
		if !isDataNode(node.Roles) {
			continue
		}
		info.DataNodes++
		if node.JVM != nil {
			info.HeapMaxBytes += node.JVM.Mem.HeapMaxInBytes
		}
		if node.FS != nil {
			info.DiskTotalBytes += node.FS.Total.TotalInBytes
		}
	}
	return info
}
