package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"fundrank/internal/db/models/postgres/public/model"
	"fundrank/internal/domain"
	mock_repository "fundrank/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func dailySeries(fundID string, start, end time.Time, value float64) []domain.NavPoint {
	series := []domain.NavPoint{}
	for t := start; !t.After(end); t = t.AddDate(0, 0, 1) {
		series = append(series, domain.NavPoint{
			FundID: fundID,
			Date:   t,
			Value:  decimal.NewFromFloat(value),
		})
	}
	return series
}

func testFund(fundID, subcategory string) domain.Fund {
	return domain.Fund{
		FundID:      fundID,
		Name:        fundID + " fund",
		Category:    "Equity",
		Subcategory: subcategory,
	}
}

func Test_RunScoring(t *testing.T) {
	asOf := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	historyStart := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("funds without enough history are omitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fundRepository := mock_repository.NewMockFundRepository(ctrl)
		navRepository := mock_repository.NewMockNavRepository(ctrl)
		fundScoreRepository := mock_repository.NewMockFundScoreRepository(ctrl)
		scoringRunRepository := mock_repository.NewMockScoringRunRepository(ctrl)

		handler := scoringServiceHandler{
			FundRepository:       fundRepository,
			NavRepository:        navRepository,
			FundScoreRepository:  fundScoreRepository,
			ScoringRunRepository: scoringRunRepository,
		}

		funds := []domain.Fund{}
		for i := 1; i <= 5; i++ {
			funds = append(funds, testFund(fmt.Sprintf("F%d", i), "Large Cap"))
		}
		fundRepository.EXPECT().List().Return(funds, nil)

		for i := 1; i <= 4; i++ {
			fundID := fmt.Sprintf("F%d", i)
			navRepository.EXPECT().
				ListAsOf(fundID, asOf).
				Return(dailySeries(fundID, historyStart, asOf, 100+float64(i)), nil)
		}

		// F5 only has 50 nav points, nowhere near a year
		navRepository.EXPECT().
			ListAsOf("F5", asOf).
			Return(dailySeries("F5", asOf.AddDate(0, 0, -49), asOf, 100), nil)

		var saved []*model.FundScore
		fundScoreRepository.EXPECT().
			AddMany(gomock.Any()).
			DoAndReturn(func(in []*model.FundScore) error {
				saved = in
				return nil
			})

		scoringRunRepository.EXPECT().
			Add(gomock.Any()).
			DoAndReturn(func(run model.ScoringRun) (*model.ScoringRun, error) {
				run.ScoringRunID = uuid.New()
				return &run, nil
			})

		summary, err := handler.RunScoring(context.Background(), asOf)
		require.NoError(t, err)

		require.Equal(t, 4, summary.FundsScored)
		require.Equal(t, 1, summary.FundsSkipped)

		require.Len(t, saved, 4)
		for _, record := range saved {
			require.NotEqual(t, "F5", record.FundID)
			require.Equal(t, int32(4), record.Population)
			require.NotZero(t, record.SubcategoryRank)
			require.NotZero(t, record.Quartile)
			require.NotEmpty(t, record.Recommendation)
		}
	})

	t.Run("subcategory below minimum population is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fundRepository := mock_repository.NewMockFundRepository(ctrl)
		navRepository := mock_repository.NewMockNavRepository(ctrl)
		fundScoreRepository := mock_repository.NewMockFundScoreRepository(ctrl)
		scoringRunRepository := mock_repository.NewMockScoringRunRepository(ctrl)

		handler := scoringServiceHandler{
			FundRepository:       fundRepository,
			NavRepository:        navRepository,
			FundScoreRepository:  fundScoreRepository,
			ScoringRunRepository: scoringRunRepository,
		}

		funds := []domain.Fund{
			testFund("F1", "Thematic"),
			testFund("F2", "Thematic"),
		}
		fundRepository.EXPECT().List().Return(funds, nil)

		for _, fund := range funds {
			navRepository.EXPECT().
				ListAsOf(fund.FundID, asOf).
				Return(dailySeries(fund.FundID, historyStart, asOf, 100), nil)
		}

		fundScoreRepository.EXPECT().AddMany(gomock.Len(0)).Return(nil)
		scoringRunRepository.EXPECT().
			Add(gomock.Any()).
			DoAndReturn(func(run model.ScoringRun) (*model.ScoringRun, error) {
				run.ScoringRunID = uuid.New()
				return &run, nil
			})

		summary, err := handler.RunScoring(context.Background(), asOf)
		require.NoError(t, err)
		require.Equal(t, 0, summary.FundsScored)
		require.Equal(t, 2, summary.FundsSkipped)
	})

	t.Run("fund with missing metadata is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fundRepository := mock_repository.NewMockFundRepository(ctrl)
		navRepository := mock_repository.NewMockNavRepository(ctrl)
		fundScoreRepository := mock_repository.NewMockFundScoreRepository(ctrl)
		scoringRunRepository := mock_repository.NewMockScoringRunRepository(ctrl)

		handler := scoringServiceHandler{
			FundRepository:       fundRepository,
			NavRepository:        navRepository,
			FundScoreRepository:  fundScoreRepository,
			ScoringRunRepository: scoringRunRepository,
		}

		fundRepository.EXPECT().List().Return([]domain.Fund{
			{FundID: "F1", Name: "no subcategory", Category: "Equity"},
		}, nil)

		fundScoreRepository.EXPECT().AddMany(gomock.Len(0)).Return(nil)
		scoringRunRepository.EXPECT().
			Add(gomock.Any()).
			DoAndReturn(func(run model.ScoringRun) (*model.ScoringRun, error) {
				run.ScoringRunID = uuid.New()
				return &run, nil
			})

		summary, err := handler.RunScoring(context.Background(), asOf)
		require.NoError(t, err)
		require.Equal(t, 0, summary.FundsScored)
		require.Equal(t, 1, summary.FundsSkipped)
	})
}

func Test_ScoreFund(t *testing.T) {
	asOf := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	historyStart := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("scores a fund against its subcategory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fundRepository := mock_repository.NewMockFundRepository(ctrl)
		navRepository := mock_repository.NewMockNavRepository(ctrl)

		handler := scoringServiceHandler{
			FundRepository: fundRepository,
			NavRepository:  navRepository,
		}

		fund := testFund("F1", "Large Cap")
		fundRepository.EXPECT().Get("F1").Return(&fund, nil)
		fundRepository.EXPECT().ListBySubcategory("Large Cap").Return([]domain.Fund{fund}, nil)

		// once for the fund itself, once as its own peer group
		navRepository.EXPECT().
			ListAsOf("F1", asOf).
			Return(dailySeries("F1", historyStart, asOf, 100), nil).
			Times(2)

		record, err := handler.ScoreFund(context.Background(), "F1", asOf)
		require.NoError(t, err)

		require.Equal(t, "F1", record.FundID)
		require.Equal(t, asOf, record.AsOf)
		require.Greater(t, record.TotalScore, 0.0)

		// ranking has not run, so quartile fields stay zero
		require.Zero(t, record.Rank)
		require.Zero(t, record.Quartile)
		require.NotEmpty(t, record.Recommendation)
	})

	t.Run("missing subcategory is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fundRepository := mock_repository.NewMockFundRepository(ctrl)

		handler := scoringServiceHandler{FundRepository: fundRepository}

		fundRepository.EXPECT().Get("F1").Return(&domain.Fund{FundID: "F1", Category: "Equity"}, nil)

		_, err := handler.ScoreFund(context.Background(), "F1", asOf)
		require.Error(t, err)
		require.ErrorContains(t, err, "inconsistent metadata")
	})
}

func Test_RankSubcategory_service(t *testing.T) {
	asOf := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	fundScoreRepository := mock_repository.NewMockFundScoreRepository(ctrl)

	handler := scoringServiceHandler{FundScoreRepository: fundScoreRepository}

	records := []domain.ScoreRecord{
		{FundID: "F1", AsOf: asOf, TotalScore: 72},
		{FundID: "F2", AsOf: asOf, TotalScore: 64},
		{FundID: "F3", AsOf: asOf, TotalScore: 55},
		{FundID: "F4", AsOf: asOf, TotalScore: 41},
	}
	fundScoreRepository.EXPECT().ListBySubcategory("Large Cap", asOf).Return(records, nil)
	fundScoreRepository.EXPECT().AddMany(gomock.Len(4)).Return(nil)

	ranked, err := handler.RankSubcategory(context.Background(), "Large Cap", asOf)
	require.NoError(t, err)

	require.Equal(t, "F1", ranked[0].FundID)
	require.Equal(t, 1, ranked[0].Rank)
	require.Equal(t, 1, ranked[0].Quartile)
	require.Equal(t, 4, ranked[3].Quartile)
}
