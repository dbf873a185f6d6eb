package domain

import "strconv"

// ArticleSource is the source reference embedded in an article.
type ArticleSource struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// ArticleSentiment is the sentiment annotation attached by the news API.
// Score is decoded for completeness; the dashboard only reads Label.
type ArticleSentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score,omitempty"`
}

// Article is a read-only snapshot of a news article as served by the news API.
type Article struct {
	ID          string            `json:"id,omitempty"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	PublishedAt string            `json:"publishedAt,omitempty"`
	URL         string            `json:"url,omitempty"`
	Source      *ArticleSource    `json:"source,omitempty"`
	Sentiment   *ArticleSentiment `json:"sentiment,omitempty"`
}

// Clone returns a copy of a whose source and sentiment are not shared with a.
func (a Article) Clone() Article {
	if a.Source != nil {
		src := *a.Source
		a.Source = &src
	}
	if a.Sentiment != nil {
		sent := *a.Sentiment
		a.Sentiment = &sent
	}
	return a
}

// Key returns the article ID, or the positional index when the ID is missing.
func (a Article) Key(index int) string {
	if a.ID != "" {
		return a.ID
	}
	return strconv.Itoa(index)
}

// SourceName returns the source name, or "" when the article has no source.
func (a Article) SourceName() string {
	if a.Source == nil {
		return ""
	}
	return a.Source.Name
}

// SentimentLabel returns the raw sentiment label, or "" when absent.
func (a Article) SentimentLabel() string {
	if a.Sentiment == nil {
		return ""
	}
	return a.Sentiment.Label
}

// SentimentValue maps the article's label onto the closed enumeration.
func (a Article) SentimentValue() Sentiment {
	return ParseSentiment(a.SentimentLabel())
}
