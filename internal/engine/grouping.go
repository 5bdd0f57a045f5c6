package engine

import (
	"regexp"

	"github.com/dm/eia-go/internal/model"
)

// MatchResult is the outcome of classifying one index name: either unmatched,
// or matched with the stream key it maps to.
type MatchResult struct {
	Matched bool
	Key     string
}

// Matcher classifies index names into logical stream keys. The grouping
// engine only depends on this interface, so the regex strategy below can be
// swapped for prefix rules or similar without touching the aggregation.
type Matcher interface {
	Match(indexName string) MatchResult
	// HasCaptureGroups reports whether the matcher can extract a stream key
	// at all. Without one, every matched index becomes its own group.
	HasCaptureGroups() bool
}

// PatternMatcher implements Matcher on a compiled regular expression,
// preferring a capture group named "log_name", then the first positional
// capture, then the full index name.
type PatternMatcher struct {
	re         *regexp.Regexp
	logNameIdx int
}

// NewPatternMatcher compiles pattern anchored at the start of the index name.
func NewPatternMatcher(pattern string) (*PatternMatcher, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")")
	if err != nil {
		return nil, err
	}
	logNameIdx := -1
	for i, name := range re.SubexpNames() {
		if name == "log_name" {
			logNameIdx = i
			break
		}
	}
	return &PatternMatcher{re: re, logNameIdx: logNameIdx}, nil
}

// HasCaptureGroups reports whether the pattern has at least one capture group.
func (m *PatternMatcher) HasCaptureGroups() bool {
	return m.re.NumSubexp() > 0
}

// Match classifies indexName. An empty captured value falls back to the full
// index name (malformed capture).
func (m *PatternMatcher) Match(indexName string) MatchResult {
	sub := m.re.FindStringSubmatch(indexName)
	if sub == nil {
		return MatchResult{}
	}
	var key string
	switch {
	case m.logNameIdx > 0:
		key = sub[m.logNameIdx]
	case len(sub) > 1:
		key = sub[1]
	}
	if key == "" {
		key = indexName
	}
	return MatchResult{Matched: true, Key: key}
}

// GroupStreams partitions metrics into stream groups using matcher. Groups
// are created lazily in first-appearance order; unmatched index names are
// returned separately and excluded from every group and total.
func GroupStreams(metrics []model.IndexMetric, matcher Matcher) (groups []*model.StreamGroup, unmatched []string) {
	byKey := make(map[string]*model.StreamGroup)

	for _, m := range metrics {
		res := matcher.Match(m.Name)
		if !res.Matched {
			unmatched = append(unmatched, m.Name)
			continue
		}

		g, ok := byKey[res.Key]
		if !ok {
			g = &model.StreamGroup{LogName: res.Key}
			byKey[res.Key] = g
			groups = append(groups, g)
		}
		g.IndexCount++
		g.Indices = append(g.Indices, m.Name)
		g.Metrics.Add(m)
	}
	return groups, unmatched
}
