package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fundrank/internal/domain"
	mock_repository "fundrank/internal/repository/mocks"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Backtest_validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	navRepository := mock_repository.NewMockNavRepository(ctrl)
	handler := backtestServiceHandler{NavRepository: navRepository}

	base := BacktestInput{
		Portfolio: domain.Portfolio{
			Name:        "test",
			Allocations: map[string]int{"F1": 100},
		},
		StartDate:          time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:            time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC),
		InitialAmount:      decimal.NewFromInt(10000),
		RebalanceFrequency: domain.RebalanceFrequency_Annually,
	}

	t.Run("allocations must sum to 100", func(t *testing.T) {
		in := base
		in.Portfolio.Allocations = map[string]int{"F1": 50}

		_, err := handler.Run(context.Background(), in)
		require.Error(t, err)

		var validation ValidationError
		require.True(t, errors.As(err, &validation))
	})

	t.Run("either allocations or a portfolio name", func(t *testing.T) {
		in := base
		in.Portfolio = domain.Portfolio{}
		in.PortfolioName = ""

		_, err := handler.Run(context.Background(), in)
		require.Error(t, err)

		var validation ValidationError
		require.True(t, errors.As(err, &validation))
	})

	t.Run("start must precede end", func(t *testing.T) {
		in := base
		in.StartDate, in.EndDate = in.EndDate, in.StartDate

		_, err := handler.Run(context.Background(), in)
		require.Error(t, err)

		var validation ValidationError
		require.True(t, errors.As(err, &validation))
	})

	t.Run("initial amount must be positive", func(t *testing.T) {
		in := base
		in.InitialAmount = decimal.Zero

		_, err := handler.Run(context.Background(), in)
		require.Error(t, err)

		var validation ValidationError
		require.True(t, errors.As(err, &validation))
	})

	t.Run("frequency must be recognized", func(t *testing.T) {
		in := base
		in.RebalanceFrequency = domain.RebalanceFrequency("weekly")

		_, err := handler.Run(context.Background(), in)
		require.Error(t, err)

		var validation ValidationError
		require.True(t, errors.As(err, &validation))
	})
}

func Test_Backtest_singleFund(t *testing.T) {
	ctrl := gomock.NewController(t)
	navRepository := mock_repository.NewMockNavRepository(ctrl)
	handler := backtestServiceHandler{NavRepository: navRepository}

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)

	navRepository.EXPECT().Get("F1", start).Return(decimal.NewFromInt(100), nil)
	navRepository.EXPECT().Get("F1", end).Return(decimal.NewFromInt(110), nil)

	result, err := handler.Run(context.Background(), BacktestInput{
		Portfolio: domain.Portfolio{
			Name:        "single",
			Allocations: map[string]int{"F1": 100},
		},
		StartDate:          start,
		EndDate:            end,
		InitialAmount:      decimal.NewFromInt(10000),
		RebalanceFrequency: domain.RebalanceFrequency_Annually,
	})
	require.NoError(t, err)

	require.Equal(t, domain.BacktestStatus_Completed, result.Status)
	require.True(t, result.FinalAmount.Equal(decimal.NewFromInt(11000)), result.FinalAmount.String())
	require.InDelta(t, 10.0, result.TotalReturnPct, 1e-9)

	// under a year, annualized equals the simple return
	require.InDelta(t, 10.0, result.AnnualizedReturnPct, 1e-9)
	require.InDelta(t, 0.0, result.MaxDrawdownPct, 1e-9)

	require.Len(t, result.ValueSeries, 2)
	require.Equal(t, start, result.ValueSeries[0].Date)
	require.Equal(t, end, result.ValueSeries[1].Date)
}

func Test_Backtest_navGapHoldsAllocationFlat(t *testing.T) {
	ctrl := gomock.NewController(t)
	navRepository := mock_repository.NewMockNavRepository(ctrl)
	handler := backtestServiceHandler{NavRepository: navRepository}

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)

	navRepository.EXPECT().Get("F1", start).Return(decimal.NewFromInt(100), nil)
	navRepository.EXPECT().Get("F2", start).Return(decimal.Zero, errors.New("no nav found"))
	navRepository.EXPECT().Get("F1", end).Return(decimal.NewFromInt(110), nil)

	result, err := handler.Run(context.Background(), BacktestInput{
		Portfolio: domain.Portfolio{
			Name:        "partial coverage",
			Allocations: map[string]int{"F1": 60, "F2": 40},
		},
		StartDate:          start,
		EndDate:            end,
		InitialAmount:      decimal.NewFromInt(1000),
		RebalanceFrequency: domain.RebalanceFrequency_Annually,
	})
	require.NoError(t, err)

	// F1's 600 grows 10% to 660, F2's 400 stays flat
	require.True(t, result.FinalAmount.Equal(decimal.NewFromInt(1060)), result.FinalAmount.String())
	require.InDelta(t, 6.0, result.TotalReturnPct, 1e-9)
}

func Test_Backtest_quarterlyRebalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	navRepository := mock_repository.NewMockNavRepository(ctrl)
	handler := backtestServiceHandler{NavRepository: navRepository}

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)

	// boundaries: start, apr, jul, oct, end
	navRepository.EXPECT().Get("F1", gomock.Any()).Return(decimal.NewFromInt(100), nil).AnyTimes()
	navRepository.EXPECT().Get("F2", gomock.Any()).Return(decimal.NewFromInt(50), nil).AnyTimes()

	result, err := handler.Run(context.Background(), BacktestInput{
		Portfolio: domain.Portfolio{
			Name:        "quarterly",
			Allocations: map[string]int{"F1": 50, "F2": 50},
		},
		StartDate:          start,
		EndDate:            end,
		InitialAmount:      decimal.NewFromInt(10000),
		RebalanceFrequency: domain.RebalanceFrequency_Quarterly,
	})
	require.NoError(t, err)

	require.Len(t, result.ValueSeries, 5)
	require.True(t, result.FinalAmount.Equal(decimal.NewFromInt(10000)), result.FinalAmount.String())
	require.InDelta(t, 0.0, result.TotalReturnPct, 1e-9)
	require.InDelta(t, 0.0, result.Volatility, 1e-9)
	require.InDelta(t, 0.0, result.SharpeRatio, 1e-9)
}

func Test_Backtest_storedPortfolio(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)

	t.Run("resolves allocations by name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		navRepository := mock_repository.NewMockNavRepository(ctrl)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		handler := backtestServiceHandler{
			NavRepository:       navRepository,
			PortfolioRepository: portfolioRepository,
		}

		portfolioRepository.EXPECT().GetByName("growth").Return(&domain.Portfolio{
			Name:        "growth",
			Allocations: map[string]int{"F1": 100},
		}, nil)
		navRepository.EXPECT().Get("F1", start).Return(decimal.NewFromInt(100), nil)
		navRepository.EXPECT().Get("F1", end).Return(decimal.NewFromInt(110), nil)

		result, err := handler.Run(context.Background(), BacktestInput{
			PortfolioName:      "growth",
			StartDate:          start,
			EndDate:            end,
			InitialAmount:      decimal.NewFromInt(10000),
			RebalanceFrequency: domain.RebalanceFrequency_Annually,
		})
		require.NoError(t, err)
		require.True(t, result.FinalAmount.Equal(decimal.NewFromInt(11000)), result.FinalAmount.String())
	})

	t.Run("unknown name fails validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		navRepository := mock_repository.NewMockNavRepository(ctrl)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		handler := backtestServiceHandler{
			NavRepository:       navRepository,
			PortfolioRepository: portfolioRepository,
		}

		portfolioRepository.EXPECT().GetByName("missing").Return(nil, errors.New("not found"))

		_, err := handler.Run(context.Background(), BacktestInput{
			PortfolioName:      "missing",
			StartDate:          start,
			EndDate:            end,
			InitialAmount:      decimal.NewFromInt(10000),
			RebalanceFrequency: domain.RebalanceFrequency_Annually,
		})
		require.Error(t, err)

		var validation ValidationError
		require.True(t, errors.As(err, &validation))
	})

	t.Run("inline allocations win over the name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		navRepository := mock_repository.NewMockNavRepository(ctrl)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		handler := backtestServiceHandler{
			NavRepository:       navRepository,
			PortfolioRepository: portfolioRepository,
		}

		navRepository.EXPECT().Get("F1", start).Return(decimal.NewFromInt(100), nil)
		navRepository.EXPECT().Get("F1", end).Return(decimal.NewFromInt(100), nil)

		_, err := handler.Run(context.Background(), BacktestInput{
			Portfolio: domain.Portfolio{
				Name:        "inline",
				Allocations: map[string]int{"F1": 100},
			},
			PortfolioName:      "growth",
			StartDate:          start,
			EndDate:            end,
			InitialAmount:      decimal.NewFromInt(10000),
			RebalanceFrequency: domain.RebalanceFrequency_Annually,
		})
		require.NoError(t, err)
	})
}

func Test_Backtest_idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	navRepository := mock_repository.NewMockNavRepository(ctrl)
	handler := backtestServiceHandler{NavRepository: navRepository}

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)

	navRepository.EXPECT().Get("F1", start).Return(decimal.NewFromInt(100), nil).Times(2)
	navRepository.EXPECT().Get("F1", end).Return(decimal.NewFromInt(120), nil).Times(2)

	in := BacktestInput{
		Portfolio: domain.Portfolio{
			Name:        "repeatable",
			Allocations: map[string]int{"F1": 100},
		},
		StartDate:          start,
		EndDate:            end,
		InitialAmount:      decimal.NewFromInt(5000),
		RebalanceFrequency: domain.RebalanceFrequency_Annually,
	}

	first, err := handler.Run(context.Background(), in)
	require.NoError(t, err)
	second, err := handler.Run(context.Background(), in)
	require.NoError(t, err)

	diff := cmp.Diff(
		first, second,
		cmpopts.IgnoreFields(domain.BacktestResult{}, "BacktestID"),
		cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	)
	require.Empty(t, diff)
}
