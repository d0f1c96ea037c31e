package calculator

import (
	"fmt"
	"math"
	"time"

	"fundrank/internal/domain"

	"github.com/montanaflynn/stats"
)

const (
	// observation floors for the volatility windows
	MinObservations1yVolatility = 250
	MinObservations3yVolatility = 750
)

// DailyReturns converts an ascending NAV series into day-over-day
// percent changes. Non-positive NAVs break the chain rather than
// producing a fake -100% day.
func DailyReturns(series []domain.NavPoint) []float64 {
	returns := make([]float64, 0, len(series))
	for i := 1; i < len(series); i++ {
		if !series[i].Usable() || !series[i-1].Usable() {
			continue
		}
		prev := series[i-1].Value.InexactFloat64()
		curr := series[i].Value.InexactFloat64()
		returns = append(returns, (curr-prev)/prev*100)
	}
	return returns
}

// AnnualizedVolatility is the sample stdev of daily returns over the
// trailing window, scaled by sqrt(252).
func AnnualizedVolatility(series []domain.NavPoint, windowDays int, minObservations int) (float64, error) {
	if len(series) == 0 {
		return 0, InsufficientDataError{fmt.Errorf("empty nav series")}
	}

	latest := series[len(series)-1]
	windowStart := latest.Date.AddDate(0, 0, -windowDays)
	window := make([]domain.NavPoint, 0, len(series))
	for _, p := range series {
		if !p.Date.Before(windowStart) {
			window = append(window, p)
		}
	}

	if len(window) < minObservations {
		return 0, InsufficientDataError{fmt.Errorf(
			"%s has %d nav points in trailing %d days, need %d",
			latest.FundID, len(window), windowDays, minObservations,
		)}
	}

	stdev, err := stats.StandardDeviationSample(DailyReturns(window))
	if err != nil {
		return 0, err
	}

	return stdev * math.Sqrt(252), nil
}

// MaxDrawdown returns the largest peak-to-trough percent decline over
// the whole series. A series that never declines reports 0.
func MaxDrawdown(series []domain.NavPoint) float64 {
	peak := 0.0
	maxDrawdown := 0.0
	for _, p := range series {
		if !p.Usable() {
			continue
		}
		v := p.Value.InexactFloat64()
		if v > peak {
			peak = v
		}
		if peak > 0 {
			drawdown := (peak - v) / peak * 100
			if drawdown > maxDrawdown {
				maxDrawdown = drawdown
			}
		}
	}
	return maxDrawdown
}

// YearsSince is the fractional number of years between two dates, used
// for fund age and annualization spans.
func YearsSince(t time.Time, asOf time.Time) float64 {
	return asOf.Sub(t).Hours() / 24 / 365
}
