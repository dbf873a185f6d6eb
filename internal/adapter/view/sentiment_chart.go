package view

import (
	"fmt"
	"html/template"
	"strings"

	"news-dashboard/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NoSentimentData is shown when there is nothing to chart.
const NoSentimentData = "No sentiment data available"

var titleCaser = cases.Title(language.English)

// ChartSlice is one sentiment share of the chart.
type ChartSlice struct {
	Label   string
	Count   int
	Percent string
	Color   string
	Swatch  template.CSS
}

// SentimentChart is the render model of the sentiment distribution.
type SentimentChart struct {
	Empty   string
	Slices  []ChartSlice
	Total   int
	PieCSS  template.CSS
	Sources []domain.SourceCount
}

// NewSentimentChart builds the chart; nil or all-zero stats render the placeholder.
func NewSentimentChart(stats *domain.Stats) SentimentChart {
	if stats == nil || stats.SentimentDistribution.IsEmpty() {
		return SentimentChart{Empty: NoSentimentData}
	}

	dist := stats.SentimentDistribution
	chart := SentimentChart{
		Total:   dist.Total(),
		Sources: stats.RankedSources(),
	}

	stops := make([]string, 0, 3)
	var start float64
	for _, s := range domain.SelectableSentiments() {
		pct := dist.Percent(s)
		color := SentimentStyleFor(s).Color
		chart.Slices = append(chart.Slices, ChartSlice{
			Label:   titleCaser.String(string(s)),
			Count:   dist.Count(s),
			Percent: FormatPercent(pct),
			Color:   color,
			Swatch:  template.CSS("background-color: " + color),
		})
		stops = append(stops, fmt.Sprintf("%s %.4f%% %.4f%%", color, start, start+pct))
		start += pct
	}
	chart.PieCSS = template.CSS("background: conic-gradient(" + strings.Join(stops, ", ") + ")")
	return chart
}

// IsEmpty reports whether the chart renders the placeholder.
func (c SentimentChart) IsEmpty() bool {
	return len(c.Slices) == 0
}

// FormatPercent formats a percentage with one decimal, e.g. "60.0%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
