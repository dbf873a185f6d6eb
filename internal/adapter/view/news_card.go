package view

import (
	"html"
	"regexp"
	"strings"

	"news-dashboard/internal/domain"

	"github.com/araddon/dateparse"
	"github.com/microcosm-cc/bluemonday"
)

// Card fallbacks for missing article fields.
const (
	UnknownSource       = "Unknown source"
	UnknownSentiment    = "Unknown"
	NoDescription       = "No description available"
	UnknownDate         = "Unknown date"
	PublishedDateLayout = "1/2/2006, 3:04:05 PM"
)

var (
	descriptionPolicy = bluemonday.StrictPolicy()
	spaceCollapseRe   = regexp.MustCompile(`\s+`)
)

// NewsCard is the render model of a single article.
type NewsCard struct {
	Key         string
	Title       string
	Source      string
	Sentiment   string
	Style       SentimentStyle
	Description string
	Published   string
	URL         string
}

// NewNewsCard builds the card for the article at position index.
func NewNewsCard(a domain.Article, index int) NewsCard {
	card := NewsCard{
		Key:         a.Key(index),
		Title:       a.Title,
		Source:      a.SourceName(),
		Sentiment:   a.SentimentLabel(),
		Style:       SentimentStyleFor(a.SentimentValue()),
		Description: sanitizeDescription(a.Description),
		Published:   formatPublished(a.PublishedAt),
		URL:         a.URL,
	}
	if card.Source == "" {
		card.Source = UnknownSource
	}
	if card.Sentiment == "" {
		card.Sentiment = UnknownSentiment
	}
	if card.Description == "" {
		card.Description = NoDescription
	}
	return card
}

// HasLink reports whether the card has a target for its Read More action.
func (c NewsCard) HasLink() bool {
	return strings.TrimSpace(c.URL) != ""
}

// sanitizeDescription strips markup and returns collapsed plain text.
func sanitizeDescription(raw string) string {
	if raw == "" {
		return ""
	}

	text := descriptionPolicy.Sanitize(raw)
	text = html.UnescapeString(text)
	text = strings.TrimSpace(text)
	return spaceCollapseRe.ReplaceAllString(text, " ")
}

// formatPublished renders a published timestamp; input that does not parse is shown as-is.
func formatPublished(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return UnknownDate
	}

	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return raw
	}
	return t.Format(PublishedDateLayout)
}
