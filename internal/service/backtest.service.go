package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"fundrank/internal/domain"
	"fundrank/internal/logger"
	"fundrank/internal/repository"
	"fundrank/internal/util"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

const (
	// annual constants for sharpe and benchmark comparison
	RiskFreeRatePct       = 5.0
	BenchmarkAnnualRetPct = 10.0
)

type ValidationError struct {
	Err error
}

func (e ValidationError) Error() string {
	return e.Err.Error()
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

type BacktestInput struct {
	// Portfolio holds inline allocations. PortfolioName instead refers
	// to a stored portfolio definition; exactly one of the two applies.
	Portfolio     domain.Portfolio
	PortfolioName string

	StartDate          time.Time
	EndDate            time.Time
	InitialAmount      decimal.Decimal
	RebalanceFrequency domain.RebalanceFrequency
}

type BacktestService interface {
	Run(ctx context.Context, in BacktestInput) (*domain.BacktestResult, error)
}

func NewBacktestService(
	navRepository repository.NavRepository,
	portfolioRepository repository.PortfolioRepository,
) BacktestService {
	return backtestServiceHandler{
		NavRepository:       navRepository,
		PortfolioRepository: portfolioRepository,
	}
}

type backtestServiceHandler struct {
	NavRepository       repository.NavRepository
	PortfolioRepository repository.PortfolioRepository
}

// holding is one fund's position between rebalance boundaries. Units
// stay fixed until the next boundary resets every holding back to its
// target weight.
type holding struct {
	fundID    string
	weightPct int

	units decimal.Decimal

	// funds with no nav coverage at a boundary hold their slice of the
	// portfolio as a flat amount instead of units
	staticAmount *decimal.Decimal
}

// Run simulates the portfolio from start to end, resetting holdings to
// their target weights at every rebalance boundary. Inputs are
// validated before any nav is fetched; the same input always produces
// the same result.
func (h backtestServiceHandler) Run(ctx context.Context, in BacktestInput) (*domain.BacktestResult, error) {
	log := logger.FromContext(ctx)

	if err := validateBacktestInput(in); err != nil {
		return nil, err
	}

	portfolio, err := h.resolvePortfolio(in)
	if err != nil {
		return nil, err
	}

	boundaries := rebalanceBoundaries(in.StartDate, in.EndDate, in.RebalanceFrequency)

	value := in.InitialAmount
	valueSeries := []domain.PortfolioValuePoint{}
	boundaryReturns := []float64{}

	var holdings []holding
	for i, boundary := range boundaries {
		if i > 0 {
			next, err := h.valueHoldings(holdings, boundary)
			if err != nil {
				return nil, err
			}
			if value.IsPositive() {
				ret, _ := next.Sub(value).Div(value).Float64()
				boundaryReturns = append(boundaryReturns, ret*100)
			}
			value = next
		}

		valueSeries = append(valueSeries, domain.PortfolioValuePoint{
			Date:  boundary,
			Value: value,
		})

		if i == len(boundaries)-1 {
			break
		}

		rebalanced, err := h.rebalance(portfolio, value, boundary)
		if err != nil {
			return nil, err
		}
		holdings = rebalanced

		for _, hld := range holdings {
			if hld.staticAmount != nil {
				log.Warnf("no nav coverage for %s on %s, holding allocation flat", hld.fundID, boundary.Format("2006-01-02"))
			}
		}
	}

	result := &domain.BacktestResult{
		BacktestID:    uuid.New(),
		Status:        domain.BacktestStatus_Completed,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		InitialAmount: in.InitialAmount,
		FinalAmount:   value,
		ValueSeries:   valueSeries,
	}

	fillBacktestMetrics(result, boundaryReturns)

	return result, nil
}

// rebalance converts the current portfolio value back into target-weight
// positions. A fund whose nav cannot be resolved at the boundary keeps
// its slice as a flat amount.
func (h backtestServiceHandler) rebalance(portfolio domain.Portfolio, value decimal.Decimal, boundary time.Time) ([]holding, error) {
	holdings := make([]holding, 0, len(portfolio.Allocations))
	for _, fundID := range portfolio.FundIDs() {
		weightPct := portfolio.Allocations[fundID]
		amount := value.Mul(decimal.NewFromInt(int64(weightPct))).Div(decimal.NewFromInt(100))

		nav, err := h.NavRepository.Get(fundID, boundary)
		if err != nil || !nav.IsPositive() {
			holdings = append(holdings, holding{
				fundID:       fundID,
				weightPct:    weightPct,
				staticAmount: &amount,
			})
			continue
		}

		holdings = append(holdings, holding{
			fundID:    fundID,
			weightPct: weightPct,
			units:     amount.Div(nav),
		})
	}

	return holdings, nil
}

func (h backtestServiceHandler) valueHoldings(holdings []holding, date time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, hld := range holdings {
		if hld.staticAmount != nil {
			total = total.Add(*hld.staticAmount)
			continue
		}

		nav, err := h.NavRepository.Get(hld.fundID, date)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to value %s on %v: %w", hld.fundID, date, err)
		}
		total = total.Add(hld.units.Mul(nav))
	}

	return total, nil
}

// rebalanceBoundaries returns start, every rebalance date strictly
// inside the window, and end, ascending.
func rebalanceBoundaries(start, end time.Time, frequency domain.RebalanceFrequency) []time.Time {
	boundaries := []time.Time{start}
	for t := frequency.Next(start); t.Before(end); t = frequency.Next(t) {
		boundaries = append(boundaries, t)
	}
	boundaries = append(boundaries, end)
	return boundaries
}

func fillBacktestMetrics(result *domain.BacktestResult, boundaryReturns []float64) {
	initial := result.InitialAmount.InexactFloat64()
	final := result.FinalAmount.InexactFloat64()
	if initial > 0 {
		result.TotalReturnPct = (final - initial) / initial * 100
	}

	elapsedDays := float64(util.DaysBetween(result.StartDate, result.EndDate))
	years := elapsedDays / 365

	result.AnnualizedReturnPct = result.TotalReturnPct
	if elapsedDays > 365 && initial > 0 && final > 0 {
		result.AnnualizedReturnPct = (math.Pow(final/initial, 1/years) - 1) * 100
	}

	if len(boundaryReturns) >= 2 {
		if stdev, err := stats.StandardDeviationSample(boundaryReturns); err == nil {
			result.Volatility = stdev
		}
	}

	if result.Volatility > 0 {
		result.SharpeRatio = (result.AnnualizedReturnPct - RiskFreeRatePct) / result.Volatility
	}

	result.MaxDrawdownPct = valueSeriesDrawdown(result.ValueSeries)
	result.BenchmarkReturnPct = (math.Pow(1+BenchmarkAnnualRetPct/100, years) - 1) * 100
}

func valueSeriesDrawdown(series []domain.PortfolioValuePoint) float64 {
	peak := 0.0
	maxDrawdown := 0.0
	for _, p := range series {
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

// resolvePortfolio picks between the inline allocations and a stored
// portfolio definition. Happens before any nav fetch so a bad request
// fails fast.
func (h backtestServiceHandler) resolvePortfolio(in BacktestInput) (domain.Portfolio, error) {
	portfolio := in.Portfolio
	if len(in.Portfolio.Allocations) == 0 && in.PortfolioName != "" {
		stored, err := h.PortfolioRepository.GetByName(in.PortfolioName)
		if err != nil {
			return domain.Portfolio{}, ValidationError{fmt.Errorf("unknown portfolio %q: %w", in.PortfolioName, err)}
		}
		portfolio = *stored
	}

	if err := portfolio.Validate(); err != nil {
		return domain.Portfolio{}, ValidationError{err}
	}

	return portfolio, nil
}

func validateBacktestInput(in BacktestInput) error {
	if !in.StartDate.Before(in.EndDate) {
		return ValidationError{fmt.Errorf("start date %v is not before end date %v", in.StartDate, in.EndDate)}
	}
	if !in.InitialAmount.IsPositive() {
		return ValidationError{fmt.Errorf("initial amount must be positive, got %s", in.InitialAmount.String())}
	}
	if _, err := domain.NewRebalanceFrequency(string(in.RebalanceFrequency)); err != nil {
		return ValidationError{err}
	}

	return nil
}
