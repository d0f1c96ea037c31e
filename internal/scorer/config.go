package scorer

import "fundrank/internal/calculator"

// Component score bands. Totals are computed as sum-then-clamp against
// these; the overall floor of 34 is applied after summation and is
// deliberately higher than the component floors add up to.
const (
	HistoricalReturnsCap   = 32.00
	HistoricalReturnsFloor = -0.70

	RiskGradeCap   = 30.00
	RiskGradeFloor = 13.00

	FundamentalsCap   = 30.00
	FundamentalsFloor = 0.00

	OtherMetricsCap   = 30.00
	OtherMetricsFloor = 0.00

	TotalScoreCap   = 100.00
	TotalScoreFloor = 34.00
)

// Neutral placeholder sub-scores. These stand in for benchmark-relative
// metrics (capture ratios) and forward-looking metrics that are not
// wired to real data yet. They are fixed constants on purpose: every
// fund gets the same value, so rankings are unaffected, and swapping in
// a real computation later is a change local to this file.
const (
	UpCaptureNeutralScore   = 4.0
	DownCaptureNeutralScore = 4.0

	ForwardNeutralScore     = 4.0
	MomentumNeutralScore    = 4.0
	ConsistencyNeutralScore = 4.0
)

// negative period returns score a small proportional penalty, floored
const (
	NegativeReturnPenaltyRate  = 0.02
	NegativeReturnPenaltyFloor = -0.30
)

// periodScoreCaps are hard clamps applied after the return ladder. The
// per-period weighting sums to exactly the 32-point component cap.
var periodScoreCaps = map[calculator.Period]float64{
	calculator.Period_3M: 8.0,
	calculator.Period_6M: 8.0,
	calculator.Period_1Y: 5.9,
	calculator.Period_3Y: 5.4,
	calculator.Period_5Y: 4.7,
}

func clamp(v, floor, cap float64) float64 {
	if v < floor {
		return floor
	}
	if v > cap {
		return cap
	}
	return v
}
