package scorer

import (
	"fmt"

	"fundrank/internal/calculator"
	"fundrank/internal/domain"

	"github.com/montanaflynn/stats"
)

// VolatilityQuartiles holds the 25/50/75 percentile cut-offs of a
// subcategory's volatility distribution. Lower volatility lands in a
// better quartile.
type VolatilityQuartiles struct {
	P25 float64
	P50 float64
	P75 float64
}

func NewVolatilityQuartiles(volatilities []float64) (*VolatilityQuartiles, error) {
	if len(volatilities) < 4 {
		return nil, fmt.Errorf("need at least 4 peer volatilities to form quartiles, got %d", len(volatilities))
	}

	p25, err := stats.Percentile(volatilities, 25)
	if err != nil {
		return nil, err
	}
	p50, err := stats.Percentile(volatilities, 50)
	if err != nil {
		return nil, err
	}
	p75, err := stats.Percentile(volatilities, 75)
	if err != nil {
		return nil, err
	}

	return &VolatilityQuartiles{P25: p25, P50: p50, P75: p75}, nil
}

// Classify returns 1 (least volatile quarter of the peer group)
// through 4.
func (q VolatilityQuartiles) Classify(volatility float64) int {
	switch {
	case volatility <= q.P25:
		return 1
	case volatility <= q.P50:
		return 2
	case volatility <= q.P75:
		return 3
	}
	return 4
}

// RiskGradeScorer builds the 30-point risk component from volatility
// peer quartiles, capture-ratio placeholders and max drawdown.
type RiskGradeScorer struct{}

type RiskGradeInput struct {
	Series []domain.NavPoint

	// peer volatility distributions; nil when the subcategory could
	// not form quartiles
	Peer1y *VolatilityQuartiles
	Peer3y *VolatilityQuartiles
}

type RiskGradeScore struct {
	Volatility1y *float64
	Volatility3y *float64

	Volatility1yScore float64
	Volatility3yScore float64
	UpCaptureScore    float64
	DownCaptureScore  float64
	DrawdownScore     float64

	MaxDrawdownPct float64
	Total          float64
}

// Score requires the 1-year volatility window; a fund without 250
// trailing points is not scorable and the insufficient-data error
// propagates. The 3-year window degrades to a zero sub-score.
func (s RiskGradeScorer) Score(in RiskGradeInput) (*RiskGradeScore, error) {
	vol1y, err := calculator.AnnualizedVolatility(in.Series, 365, calculator.MinObservations1yVolatility)
	if err != nil {
		return nil, fmt.Errorf("risk grade not scorable: %w", err)
	}

	out := &RiskGradeScore{
		Volatility1y:   &vol1y,
		UpCaptureScore: UpCaptureNeutralScore,
		// benchmark capture ratios are neutral constants until real
		// benchmark series are wired in
		DownCaptureScore: DownCaptureNeutralScore,
	}

	out.Volatility1yScore = volatilityQuartileScore(vol1y, in.Peer1y)

	if vol3y, err := calculator.AnnualizedVolatility(in.Series, 1095, calculator.MinObservations3yVolatility); err == nil {
		out.Volatility3y = &vol3y
		out.Volatility3yScore = volatilityQuartileScore(vol3y, in.Peer3y)
	}

	out.MaxDrawdownPct = calculator.MaxDrawdown(in.Series)
	out.DrawdownScore = drawdownLadder(out.MaxDrawdownPct)

	sum := out.Volatility1yScore +
		out.Volatility3yScore +
		out.UpCaptureScore +
		out.DownCaptureScore +
		out.DrawdownScore
	out.Total = clamp(sum, RiskGradeFloor, RiskGradeCap)

	return out, nil
}

func volatilityQuartileScore(volatility float64, peers *VolatilityQuartiles) float64 {
	if peers == nil {
		return 0
	}
	switch peers.Classify(volatility) {
	case 1:
		return 8
	case 2:
		return 6
	case 3:
		return 4
	case 4:
		return 2
	}
	return 0
}

func drawdownLadder(drawdownPct float64) float64 {
	switch {
	case drawdownPct <= 5:
		return 8
	case drawdownPct <= 10:
		return 6
	case drawdownPct <= 15:
		return 4
	case drawdownPct <= 25:
		return 2
	}
	return 0
}
