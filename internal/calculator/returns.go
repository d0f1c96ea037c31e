package calculator

import (
	"fmt"
	"math"
	"time"

	"fundrank/internal/domain"
	"fundrank/internal/util"
)

// InsufficientDataError signals that a fund's NAV history does not
// cover the requested window. Callers skip the fund rather than score
// it with filler values.
type InsufficientDataError struct {
	Err error
}

func (e InsufficientDataError) Error() string {
	return e.Err.Error()
}

func (e InsufficientDataError) Unwrap() error {
	return e.Err
}

type Period string

const (
	Period_3M  Period = "3m"
	Period_6M  Period = "6m"
	Period_1Y  Period = "1y"
	Period_3Y  Period = "3y"
	Period_5Y  Period = "5y"
	Period_YTD Period = "ytd"
)

// ScoredPeriods are the five windows that feed the historical-returns
// component, in scoring order. YTD is computed for display but carries
// no sub-score.
var ScoredPeriods = []Period{Period_3M, Period_6M, Period_1Y, Period_3Y, Period_5Y}

// LookbackDays returns the calendar-day window for the period. YTD
// depends on the as-of date, hence the argument.
func (p Period) LookbackDays(asOf time.Time) int {
	switch p {
	case Period_3M:
		return 90
	case Period_6M:
		return 180
	case Period_1Y:
		return 365
	case Period_3Y:
		return 1095
	case Period_5Y:
		return 1825
	case Period_YTD:
		yearStart := time.Date(asOf.Year(), 1, 1, 0, 0, 0, 0, asOf.Location())
		return int(asOf.Sub(yearStart).Hours() / 24)
	}
	return 0
}

// MinObservations is the fewest NAV points the window must contain for
// the return to be trusted. A full year of trading has ~252 points;
// shorter windows scale down proportionally, longer windows still only
// require a year's worth since the endpoint math is the same.
func (p Period) MinObservations(asOf time.Time) int {
	days := p.LookbackDays(asOf)
	if days >= 365 {
		return 252
	}
	return days * 252 / 365
}

// PeriodReturn computes the percent return for one lookback window of
// an ascending NAV series. Windows of a year or less use simple percent
// change; longer windows use the annualized compound rate so multi-year
// gains are not overstated.
func PeriodReturn(series []domain.NavPoint, period Period) (float64, error) {
	if len(series) == 0 {
		return 0, InsufficientDataError{fmt.Errorf("empty nav series")}
	}

	latest := series[len(series)-1]
	if !latest.Usable() {
		return 0, InsufficientDataError{fmt.Errorf("latest nav for %s is not positive", latest.FundID)}
	}

	lookbackDays := period.LookbackDays(latest.Date)
	if lookbackDays <= 0 {
		return 0, InsufficientDataError{fmt.Errorf("zero-length %s window on %s", period, latest.Date.Format(time.DateOnly))}
	}
	target := latest.Date.AddDate(0, 0, -lookbackDays)

	if series[0].Date.After(target) {
		return 0, InsufficientDataError{fmt.Errorf(
			"%s history starts %s, after %s window start %s",
			latest.FundID,
			series[0].Date.Format(time.DateOnly),
			period,
			target.Format(time.DateOnly),
		)}
	}

	historical := latestOnOrBefore(series, target)
	if !historical.Usable() {
		return 0, InsufficientDataError{fmt.Errorf(
			"%s nav on %s is not positive", latest.FundID, historical.Date.Format(time.DateOnly),
		)}
	}

	observed := countBetween(series, historical.Date, latest.Date)
	if minObs := period.MinObservations(latest.Date); observed < minObs {
		return 0, InsufficientDataError{fmt.Errorf(
			"%s has %d nav points in %s window, need %d",
			latest.FundID, observed, period, minObs,
		)}
	}

	growth := latest.Value.Div(historical.Value).InexactFloat64()
	if lookbackDays <= 365 {
		return (growth - 1) * 100, nil
	}

	elapsedDays := latest.Date.Sub(historical.Date).Hours() / 24
	if elapsedDays <= 0 {
		return 0, InsufficientDataError{fmt.Errorf("%s window collapsed to a single day", period)}
	}
	return (math.Pow(growth, 365/elapsedDays) - 1) * 100, nil
}

// latestOnOrBefore returns the last observation dated on or before the
// target, so a weekend target resolves to the prior published NAV. The
// caller has already checked that the series reaches back far enough.
func latestOnOrBefore(series []domain.NavPoint, target time.Time) domain.NavPoint {
	lo, hi := 0, len(series)
	for lo < hi {
		mid := (lo + hi) / 2
		if util.DateLte(series[mid].Date, target) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return series[lo-1]
}

func countBetween(series []domain.NavPoint, start, end time.Time) int {
	count := 0
	for _, p := range series {
		if util.DateGte(p.Date, start) && util.DateLte(p.Date, end) {
			count++
		}
	}
	return count
}
