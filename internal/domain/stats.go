package domain

import (
	"maps"
	"sort"
)

// SentimentDistribution holds aggregate article counts per sentiment label.
type SentimentDistribution struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Total returns the sum of the three counts.
func (d SentimentDistribution) Total() int {
	return d.Positive + d.Neutral + d.Negative
}

// IsEmpty reports whether every count is zero.
func (d SentimentDistribution) IsEmpty() bool {
	return d.Positive == 0 && d.Neutral == 0 && d.Negative == 0
}

// Count returns the count for s; unknown has no bucket and yields 0.
func (d SentimentDistribution) Count(s Sentiment) int {
	switch s {
	case SentimentPositive:
		return d.Positive
	case SentimentNeutral:
		return d.Neutral
	case SentimentNegative:
		return d.Negative
	default:
		return 0
	}
}

// Percent returns the share of s in percent, or 0 when the distribution is empty.
func (d SentimentDistribution) Percent(s Sentiment) float64 {
	total := d.Total()
	if total == 0 {
		return 0
	}
	return float64(d.Count(s)) / float64(total) * 100
}

// Stats is the aggregate object served by the stats endpoint.
type Stats struct {
	TotalArticles         int                   `json:"total_articles"`
	SentimentDistribution SentimentDistribution `json:"sentiment_distribution"`
	SourceDistribution    map[string]int        `json:"source_distribution,omitempty"`
}

// Clone returns a copy of s that shares no map with it.
func (s *Stats) Clone() *Stats {
	if s == nil {
		return nil
	}
	c := *s
	c.SourceDistribution = maps.Clone(s.SourceDistribution)
	return &c
}

// SourceCount is one row of the source distribution.
type SourceCount struct {
	Name  string
	Count int
}

// RankedSources returns the source distribution ordered by count descending, then name.
func (s Stats) RankedSources() []SourceCount {
	ranked := make([]SourceCount, 0, len(s.SourceDistribution))
	for name, count := range s.SourceDistribution {
		ranked = append(ranked, SourceCount{Name: name, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}
