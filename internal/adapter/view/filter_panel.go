package view

import "news-dashboard/internal/domain"

// Filter panel labels.
const (
	AllSourcesLabel    = "All Sources"
	AllSentimentsLabel = "All Sentiments"
	SearchPlaceholder  = "Enter keywords..."
)

// Option is one entry of a dropdown.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// FilterPanel is the render model of the filter controls. It reflects the
// current selection and holds no state of its own.
type FilterPanel struct {
	Sources     []Option
	Sentiments  []Option
	Search      string
	Placeholder string
}

// NewFilterPanel builds the panel from the available sources and the current selection.
func NewFilterPanel(sources []string, sel domain.FilterSelection) FilterPanel {
	panel := FilterPanel{
		Sources:     make([]Option, 0, len(sources)+1),
		Sentiments:  make([]Option, 0, 4),
		Search:      sel.Search,
		Placeholder: SearchPlaceholder,
	}

	panel.Sources = append(panel.Sources, Option{Label: AllSourcesLabel, Selected: sel.Source == ""})
	for _, src := range sources {
		panel.Sources = append(panel.Sources, Option{Value: src, Label: src, Selected: sel.Source == src})
	}

	panel.Sentiments = append(panel.Sentiments, Option{Label: AllSentimentsLabel, Selected: sel.Sentiment == ""})
	for _, s := range domain.SelectableSentiments() {
		value := string(s)
		panel.Sentiments = append(panel.Sentiments, Option{
			Value:    value,
			Label:    titleCaser.String(value),
			Selected: sel.Sentiment == value,
		})
	}
	return panel
}
