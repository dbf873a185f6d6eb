package domain

import "strings"

// Filter selection field names, as used by the filter panel.
const (
	FilterFieldSource    = "source"
	FilterFieldSentiment = "sentiment"
	FilterFieldSearch    = "search"
)

// FilterSelection is the user's source/sentiment/search constraint triple.
// An empty field places no constraint.
type FilterSelection struct {
	Source    string `json:"source"`
	Sentiment string `json:"sentiment"`
	Search    string `json:"search"`
}

// IsFilterField reports whether name is one of the selection's fields.
func IsFilterField(name string) bool {
	switch name {
	case FilterFieldSource, FilterFieldSentiment, FilterFieldSearch:
		return true
	default:
		return false
	}
}

// IsEmpty reports whether no field constrains the result.
func (f FilterSelection) IsEmpty() bool {
	return f.Source == "" && f.Sentiment == "" && f.Search == ""
}

// With returns a copy of f with the named field set to value.
// Unknown field names leave the selection unchanged.
func (f FilterSelection) With(name, value string) FilterSelection {
	switch name {
	case FilterFieldSource:
		f.Source = value
	case FilterFieldSentiment:
		f.Sentiment = value
	case FilterFieldSearch:
		f.Search = value
	}
	return f
}

// ArticlePredicate decides whether an article is kept.
type ArticlePredicate func(Article) bool

// Predicates returns the active predicates of the selection in application order:
// source, sentiment, search.
func (f FilterSelection) Predicates() []ArticlePredicate {
	var preds []ArticlePredicate
	if f.Source != "" {
		preds = append(preds, MatchSource(f.Source))
	}
	if f.Sentiment != "" {
		preds = append(preds, MatchSentiment(f.Sentiment))
	}
	if f.Search != "" {
		preds = append(preds, MatchSearch(f.Search))
	}
	return preds
}

// MatchSource keeps articles whose source name equals source exactly.
func MatchSource(source string) ArticlePredicate {
	return func(a Article) bool {
		return a.Source != nil && a.Source.Name == source
	}
}

// MatchSentiment keeps articles whose sentiment label equals label exactly.
func MatchSentiment(label string) ArticlePredicate {
	return func(a Article) bool {
		return a.Sentiment != nil && a.Sentiment.Label == label
	}
}

// MatchSearch keeps articles whose title or description contains term, ignoring case.
// Empty fields never match.
func MatchSearch(term string) ArticlePredicate {
	needle := strings.ToLower(term)
	return func(a Article) bool {
		if a.Title != "" && strings.Contains(strings.ToLower(a.Title), needle) {
			return true
		}
		return a.Description != "" && strings.Contains(strings.ToLower(a.Description), needle)
	}
}

// ApplyFilter returns a new slice holding the articles that satisfy every active
// predicate of sel. The canonical slice is never modified.
func ApplyFilter(articles []Article, sel FilterSelection) []Article {
	result := make([]Article, len(articles))
	copy(result, articles)

	for _, keep := range sel.Predicates() {
		result = filterArticles(result, keep)
	}
	return result
}

func filterArticles(articles []Article, keep ArticlePredicate) []Article {
	kept := make([]Article, 0, len(articles))
	for _, a := range articles {
		if keep(a) {
			kept = append(kept, a)
		}
	}
	return kept
}
