package domain

// Sentiment is the closed set of sentiment labels the dashboard understands.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
	// SentimentUnknown covers a missing label as well as any label outside the set.
	SentimentUnknown Sentiment = ""
)

// AllSentiments returns every member of the enumeration, unknown last.
func AllSentiments() []Sentiment {
	return []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative, SentimentUnknown}
}

// SelectableSentiments returns the labels offered by the sentiment filter, in display order.
func SelectableSentiments() []Sentiment {
	return []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}
}

// ParseSentiment maps a raw label onto the enumeration.
func ParseSentiment(label string) Sentiment {
	switch Sentiment(label) {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return Sentiment(label)
	default:
		return SentimentUnknown
	}
}

// String returns the wire label, or "unknown" for SentimentUnknown.
func (s Sentiment) String() string {
	if s == SentimentUnknown {
		return "unknown"
	}
	return string(s)
}
