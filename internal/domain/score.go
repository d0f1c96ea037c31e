package domain

import (
	"fmt"
	"time"
)

type Recommendation string

const (
	Recommendation_StrongBuy  Recommendation = "STRONG_BUY"
	Recommendation_Buy        Recommendation = "BUY"
	Recommendation_Hold       Recommendation = "HOLD"
	Recommendation_Sell       Recommendation = "SELL"
	Recommendation_StrongSell Recommendation = "STRONG_SELL"
)

func NewRecommendation(s string) (*Recommendation, error) {
	m := map[string]Recommendation{
		"STRONG_BUY":  Recommendation_StrongBuy,
		"BUY":         Recommendation_Buy,
		"HOLD":        Recommendation_Hold,
		"SELL":        Recommendation_Sell,
		"STRONG_SELL": Recommendation_StrongSell,
	}
	if value, ok := m[s]; ok {
		return &value, nil
	}

	return nil, fmt.Errorf("invalid recommendation: %s", s)
}

// ScoreRecord is the full scoring output for one fund on one as-of
// date. Records are immutable values - re-scoring the same (fund, asOf)
// produces a new record that supersedes the old one at the write path,
// the scorer itself never mutates.
type ScoreRecord struct {
	FundID string
	AsOf   time.Time

	HistoricalReturnsTotal float64
	RiskGradeTotal         float64
	FundamentalsTotal      float64
	OtherMetricsTotal      float64

	Return3mScore float64
	Return6mScore float64
	Return1yScore float64
	Return3yScore float64
	Return5yScore float64

	TotalScore float64

	// filled in by the ranking pass; zero until then
	Rank       int
	Population int
	Percentile float64
	Quartile   int

	Recommendation Recommendation
}
