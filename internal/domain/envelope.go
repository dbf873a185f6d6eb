package domain

// Envelope is the {status, count, data} wrapper the news API puts around every payload.
type Envelope[T any] struct {
	Status string `json:"status,omitempty"`
	Count  int    `json:"count,omitempty"`
	Data   T      `json:"data"`
}

type (
	ArticlesEnvelope = Envelope[[]Article]
	SourcesEnvelope  = Envelope[[]string]
	// StatsEnvelope keeps Data nil when the API omits it.
	StatsEnvelope = Envelope[*Stats]
)
