package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fundrank/internal/domain"
	mock_repository "fundrank/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_BuildPortfolio(t *testing.T) {
	asOf := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	t.Run("balanced profile spreads across asset classes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fundScoreRepository := mock_repository.NewMockFundScoreRepository(ctrl)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		handler := portfolioBuilderServiceHandler{
			FundScoreRepository: fundScoreRepository,
			PortfolioRepository: portfolioRepository,
		}

		fundScoreRepository.EXPECT().
			TopByCategory("Equity", asOf, FundsPerAssetClass).
			Return([]domain.ScoreRecord{
				{FundID: "EQ1", TotalScore: 80},
				{FundID: "EQ2", TotalScore: 70},
			}, nil)
		fundScoreRepository.EXPECT().
			TopByCategory("Debt", asOf, FundsPerAssetClass).
			Return([]domain.ScoreRecord{
				{FundID: "DT1", TotalScore: 60},
			}, nil)
		fundScoreRepository.EXPECT().
			TopByCategory("Hybrid", asOf, FundsPerAssetClass).
			Return([]domain.ScoreRecord{
				{FundID: "HY1", TotalScore: 55},
			}, nil)

		portfolioID := uuid.New()
		portfolioRepository.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(p domain.Portfolio, riskProfile *domain.RiskProfile) (*uuid.UUID, error) {
				require.Equal(t, "balanced test", p.Name)
				require.Equal(t, domain.RiskProfile_Balanced, *riskProfile)
				require.NoError(t, p.Validate())
				return &portfolioID, nil
			})

		portfolio, err := handler.Build(context.Background(), BuildPortfolioInput{
			Name:        "balanced test",
			RiskProfile: domain.RiskProfile_Balanced,
			AsOf:        &asOf,
		})
		require.NoError(t, err)
		require.NoError(t, portfolio.Validate())

		require.Contains(t, portfolio.Allocations, "EQ1")
		require.Contains(t, portfolio.Allocations, "DT1")
		require.Contains(t, portfolio.Allocations, "HY1")

		// higher-scored equity fund gets the larger equity slice
		require.Greater(t, portfolio.Allocations["EQ1"], portfolio.Allocations["EQ2"])
	})

	t.Run("empty asset class redistributes its budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fundScoreRepository := mock_repository.NewMockFundScoreRepository(ctrl)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		handler := portfolioBuilderServiceHandler{
			FundScoreRepository: fundScoreRepository,
			PortfolioRepository: portfolioRepository,
		}

		portfolioID := uuid.New()
		portfolioRepository.EXPECT().Add(gomock.Any(), gomock.Any()).Return(&portfolioID, nil)

		fundScoreRepository.EXPECT().
			TopByCategory("Equity", asOf, FundsPerAssetClass).
			Return([]domain.ScoreRecord{{FundID: "EQ1", TotalScore: 80}}, nil)
		fundScoreRepository.EXPECT().
			TopByCategory("Debt", asOf, FundsPerAssetClass).
			Return([]domain.ScoreRecord{{FundID: "DT1", TotalScore: 60}}, nil)
		fundScoreRepository.EXPECT().
			TopByCategory("Hybrid", asOf, FundsPerAssetClass).
			Return([]domain.ScoreRecord{}, nil)

		portfolio, err := handler.Build(context.Background(), BuildPortfolioInput{
			Name:        "aggressive test",
			RiskProfile: domain.RiskProfile_Aggressive,
			AsOf:        &asOf,
		})
		require.NoError(t, err)

		// allocations still total 100 even with hybrid missing
		require.NoError(t, portfolio.Validate())
		require.NotContains(t, portfolio.Allocations, "HY1")
	})

	t.Run("no scored funds at all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fundScoreRepository := mock_repository.NewMockFundScoreRepository(ctrl)
		handler := portfolioBuilderServiceHandler{FundScoreRepository: fundScoreRepository}

		fundScoreRepository.EXPECT().
			TopByCategory(gomock.Any(), asOf, FundsPerAssetClass).
			Return([]domain.ScoreRecord{}, nil).
			Times(3)

		_, err := handler.Build(context.Background(), BuildPortfolioInput{
			Name:        "empty",
			RiskProfile: domain.RiskProfile_Conservative,
			AsOf:        &asOf,
		})
		require.Error(t, err)
	})

	t.Run("unknown risk profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fundScoreRepository := mock_repository.NewMockFundScoreRepository(ctrl)
		handler := portfolioBuilderServiceHandler{FundScoreRepository: fundScoreRepository}

		_, err := handler.Build(context.Background(), BuildPortfolioInput{
			Name:        "bad",
			RiskProfile: domain.RiskProfile("YOLO"),
		})
		require.Error(t, err)

		var validation ValidationError
		require.True(t, errors.As(err, &validation))
	})

	t.Run("defaults to the latest scoring run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fundScoreRepository := mock_repository.NewMockFundScoreRepository(ctrl)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		handler := portfolioBuilderServiceHandler{
			FundScoreRepository: fundScoreRepository,
			PortfolioRepository: portfolioRepository,
		}

		portfolioID := uuid.New()
		portfolioRepository.EXPECT().Add(gomock.Any(), gomock.Any()).Return(&portfolioID, nil)

		fundScoreRepository.EXPECT().LatestAsOf().Return(&asOf, nil)
		fundScoreRepository.EXPECT().
			TopByCategory(gomock.Any(), asOf, FundsPerAssetClass).
			Return([]domain.ScoreRecord{{FundID: "F1", TotalScore: 70}}, nil).
			Times(3)

		portfolio, err := handler.Build(context.Background(), BuildPortfolioInput{
			Name:        "latest",
			RiskProfile: domain.RiskProfile_Balanced,
		})
		require.NoError(t, err)
		require.Equal(t, map[string]int{"F1": 100}, portfolio.Allocations)
	})
}
