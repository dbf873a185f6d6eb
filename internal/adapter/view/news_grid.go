package view

import (
	"fmt"

	"news-dashboard/internal/domain"
)

// EmptyGridMessage is shown when the filtered collection is empty.
const EmptyGridMessage = "No news articles found. Try adjusting your filters."

// NewsGrid is the render model of the filtered article list.
type NewsGrid struct {
	Heading string
	Empty   string
	Cards   []NewsCard
}

// NewNewsGrid builds the grid for the filtered articles, in order.
func NewNewsGrid(articles []domain.Article) NewsGrid {
	if len(articles) == 0 {
		return NewsGrid{Empty: EmptyGridMessage}
	}

	cards := make([]NewsCard, 0, len(articles))
	for i, a := range articles {
		cards = append(cards, NewNewsCard(a, i))
	}
	return NewsGrid{
		Heading: fmt.Sprintf("News Articles (%d)", len(articles)),
		Cards:   cards,
	}
}

// IsEmpty reports whether the grid renders the empty message.
func (g NewsGrid) IsEmpty() bool {
	return len(g.Cards) == 0
}
