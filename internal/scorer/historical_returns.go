package scorer

import (
	"errors"
	"fmt"

	"fundrank/internal/calculator"
	"fundrank/internal/domain"
)

// HistoricalReturnsScorer maps period returns through the fixed
// threshold ladder into the 32-point historical-returns component.
type HistoricalReturnsScorer struct{}

type HistoricalReturnsScore struct {
	PeriodReturns map[calculator.Period]float64
	PeriodScores  map[calculator.Period]float64
	Total         float64
}

// Score computes the five period sub-scores for an ascending NAV
// series. The 3m/6m/1y windows are prerequisites - a fund that cannot
// cover those has no business in the ranking and the error propagates
// so the caller omits it. The 3y/5y windows are optional: young funds
// simply earn no points there.
func (s HistoricalReturnsScorer) Score(series []domain.NavPoint) (*HistoricalReturnsScore, error) {
	out := &HistoricalReturnsScore{
		PeriodReturns: map[calculator.Period]float64{},
		PeriodScores:  map[calculator.Period]float64{},
	}

	total := 0.0
	for _, period := range calculator.ScoredPeriods {
		ret, err := calculator.PeriodReturn(series, period)
		if err != nil {
			var insufficient calculator.InsufficientDataError
			if errors.As(err, &insufficient) && isOptionalPeriod(period) {
				continue
			}
			return nil, fmt.Errorf("historical returns not scorable: %w", err)
		}

		score := returnLadder(ret)
		if cap, ok := periodScoreCaps[period]; ok && score > cap {
			score = cap
		}

		out.PeriodReturns[period] = ret
		out.PeriodScores[period] = score
		total += score
	}

	if ytd, err := calculator.PeriodReturn(series, calculator.Period_YTD); err == nil {
		out.PeriodReturns[calculator.Period_YTD] = ytd
	}

	out.Total = clamp(total, HistoricalReturnsFloor, HistoricalReturnsCap)
	return out, nil
}

func isOptionalPeriod(period calculator.Period) bool {
	return period == calculator.Period_3Y || period == calculator.Period_5Y
}

// returnLadder converts a percent return into ladder points. Negative
// returns earn a penalty proportional to magnitude, floored so a deep
// crash cannot sink the component by itself.
func returnLadder(returnPct float64) float64 {
	switch {
	case returnPct >= 15:
		return 8.0
	case returnPct >= 12:
		return 6.4
	case returnPct >= 8:
		return 4.8
	case returnPct >= 5:
		return 3.2
	case returnPct >= 0:
		return 1.6
	}

	penalty := returnPct * NegativeReturnPenaltyRate
	if penalty < NegativeReturnPenaltyFloor {
		penalty = NegativeReturnPenaltyFloor
	}
	return penalty
}
