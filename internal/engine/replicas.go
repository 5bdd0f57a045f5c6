package engine

import (
	"strconv"
	"strings"

	"github.com/dm/eia-go/internal/client"
)

// parseAutoExpand splits an auto-expand expression of form "min-max" or
// "min-all". "all" and malformed expressions yield no upper bound; a
// non-numeric min parses as 0.
func parseAutoExpand(value string) (minReplicas, maxReplicas int, hasMax bool) {
	left, right, found := strings.Cut(value, "-")
	if !found {
		return 0, 0, false
	}
	minReplicas = toInt(left)
	if right == "all" {
		return minReplicas, 0, false
	}
	return minReplicas, toInt(right), true
}

// ParseReplicas resolves the effective replica count for an index.
//
// An integer replica setting wins outright. Otherwise the auto-expand
// expression is taken from autoExpand unless it is empty or the literal
// "false", in which case the replica setting itself is reinterpreted as the
// expression. With a known data-node count the result is
// max(min, dataNodes-1) clamped to the expression's upper bound; with an
// unknown count (0) only the conservative lower bound can be returned.
func ParseReplicas(replicas, autoExpand string, dataNodes int) int {
	if n, err := strconv.Atoi(replicas); err == nil {
		return n
	}

	expr := autoExpand
	if expr == "" || expr == "false" {
		expr = replicas
	}
	if expr == "" || expr == "false" {
		return 0
	}

	minReplicas, maxReplicas, hasMax := parseAutoExpand(expr)
	if dataNodes > 0 {
		n := dataNodes - 1
		if minReplicas > n {
			n = minReplicas
		}
		if hasMax && n > maxReplicas {
			n = maxReplicas
		}
		return n
	}
	return minReplicas
}

// NeedsNodeStats reports whether any index setting requires the data-node
// count to resolve its replica policy. When it returns true the node-stats
// fetch must happen even in weighted mode.
func NeedsNodeStats(settings client.IndexSettingsResponse) bool {
	for _, entry := range settings {
		s := entry.Settings.Index
		if s.AutoExpandReplicas != "" && s.AutoExpandReplicas != "false" {
			return true
		}
		if strings.Contains(s.NumberOfReplicas, "-") || s.NumberOfReplicas == "all" {
			return true
		}
	}
	return false
}
