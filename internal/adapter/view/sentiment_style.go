package view

import "news-dashboard/internal/domain"

// SentimentStyle is the visual encoding of one sentiment label.
type SentimentStyle struct {
	Color string
	Icon  string
	Title string
}

// Sentiment colors shared by the chip and the chart.
const (
	ColorPositive = "#4caf50"
	ColorNegative = "#f44336"
	ColorNeutral  = "#ffb74d"
	ColorUnknown  = "#757575"
)

// SentimentStyleFor maps every member of the sentiment enumeration to its style.
func SentimentStyleFor(s domain.Sentiment) SentimentStyle {
	switch s {
	case domain.SentimentPositive:
		return SentimentStyle{Color: ColorPositive, Icon: "\U0001F44D", Title: "positive"}
	case domain.SentimentNegative:
		return SentimentStyle{Color: ColorNegative, Icon: "\U0001F44E", Title: "negative"}
	case domain.SentimentNeutral:
		return SentimentStyle{Color: ColorNeutral, Icon: "➖", Title: "neutral"}
	case domain.SentimentUnknown:
		return SentimentStyle{Color: ColorUnknown, Icon: "➖", Title: "no info"}
	default:
		// Unreachable while Sentiment values come from ParseSentiment.
		return SentimentStyle{Color: ColorUnknown, Icon: "➖", Title: "no info"}
	}
}
