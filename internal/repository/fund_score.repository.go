package repository

import (
	"database/sql"
	"fmt"
	"time"

	"fundrank/internal/db/models/postgres/public/model"
	. "fundrank/internal/db/models/postgres/public/table"
	"fundrank/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
)

type FundScoreRepository interface {
	AddMany([]*model.FundScore) error
	Get(fundID string, asOf time.Time) (*domain.ScoreRecord, error)
	ListBySubcategory(subcategory string, asOf time.Time) ([]domain.ScoreRecord, error)
	TopByCategory(category string, asOf time.Time, limit int) ([]domain.ScoreRecord, error)
	LatestAsOf() (*time.Time, error)
}

func NewFundScoreRepository(db *sql.DB) FundScoreRepository {
	return fundScoreRepositoryHandler{Db: db}
}

type fundScoreRepositoryHandler struct {
	Db *sql.DB
}

// AddMany upserts on (fund_id, as_of) - re-scoring a date overwrites
// the previous run's records instead of stacking duplicates.
func (h fundScoreRepositoryHandler) AddMany(in []*model.FundScore) error {
	if len(in) == 0 {
		return nil
	}

	for _, x := range in {
		x.CreatedAt = time.Now().UTC()
		x.UpdatedAt = time.Now().UTC()
	}

	query := FundScore.INSERT(FundScore.MutableColumns).
		MODELS(in).
		ON_CONFLICT(
			FundScore.FundID,
			FundScore.AsOf,
		).
		DO_UPDATE(
			SET(
				FundScore.HistoricalReturnsTotal.SET(FundScore.EXCLUDED.HistoricalReturnsTotal),
				FundScore.RiskGradeTotal.SET(FundScore.EXCLUDED.RiskGradeTotal),
				FundScore.FundamentalsTotal.SET(FundScore.EXCLUDED.FundamentalsTotal),
				FundScore.OtherMetricsTotal.SET(FundScore.EXCLUDED.OtherMetricsTotal),
				FundScore.Return3mScore.SET(FundScore.EXCLUDED.Return3mScore),
				FundScore.Return6mScore.SET(FundScore.EXCLUDED.Return6mScore),
				FundScore.Return1yScore.SET(FundScore.EXCLUDED.Return1yScore),
				FundScore.Return3yScore.SET(FundScore.EXCLUDED.Return3yScore),
				FundScore.Return5yScore.SET(FundScore.EXCLUDED.Return5yScore),
				FundScore.TotalScore.SET(FundScore.EXCLUDED.TotalScore),
				FundScore.SubcategoryRank.SET(FundScore.EXCLUDED.SubcategoryRank),
				FundScore.Population.SET(FundScore.EXCLUDED.Population),
				FundScore.Percentile.SET(FundScore.EXCLUDED.Percentile),
				FundScore.Quartile.SET(FundScore.EXCLUDED.Quartile),
				FundScore.Recommendation.SET(FundScore.EXCLUDED.Recommendation),
				FundScore.UpdatedAt.SET(FundScore.EXCLUDED.UpdatedAt),
			),
		)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to upsert fund scores in db: %w", err)
	}

	return nil
}

func (h fundScoreRepositoryHandler) Get(fundID string, asOf time.Time) (*domain.ScoreRecord, error) {
	query := FundScore.
		SELECT(FundScore.AllColumns).
		WHERE(
			AND(
				FundScore.FundID.EQ(String(fundID)),
				FundScore.AsOf.EQ(DateT(asOf)),
			),
		)

	result := model.FundScore{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get score for %s on %v: %w", fundID, asOf, err)
	}

	record := ScoreRecordFromModel(result)
	return &record, nil
}

func (h fundScoreRepositoryHandler) ListBySubcategory(subcategory string, asOf time.Time) ([]domain.ScoreRecord, error) {
	query := FundScore.
		INNER_JOIN(Fund, Fund.FundID.EQ(FundScore.FundID)).
		SELECT(FundScore.AllColumns).
		WHERE(
			AND(
				Fund.Subcategory.EQ(String(subcategory)),
				FundScore.AsOf.EQ(DateT(asOf)),
			),
		).
		ORDER_BY(FundScore.SubcategoryRank.ASC())

	result := []model.FundScore{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores for subcategory %q: %w", subcategory, err)
	}

	out := make([]domain.ScoreRecord, 0, len(result))
	for _, s := range result {
		out = append(out, ScoreRecordFromModel(s))
	}

	return out, nil
}

func (h fundScoreRepositoryHandler) TopByCategory(category string, asOf time.Time, limit int) ([]domain.ScoreRecord, error) {
	query := FundScore.
		INNER_JOIN(Fund, Fund.FundID.EQ(FundScore.FundID)).
		SELECT(FundScore.AllColumns).
		WHERE(
			AND(
				Fund.Category.EQ(String(category)),
				FundScore.AsOf.EQ(DateT(asOf)),
			),
		).
		ORDER_BY(FundScore.TotalScore.DESC(), FundScore.FundID.ASC()).
		LIMIT(int64(limit))

	result := []model.FundScore{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list top scores for category %q: %w", category, err)
	}

	out := make([]domain.ScoreRecord, 0, len(result))
	for _, s := range result {
		out = append(out, ScoreRecordFromModel(s))
	}

	return out, nil
}

func (h fundScoreRepositoryHandler) LatestAsOf() (*time.Time, error) {
	query := FundScore.
		SELECT(FundScore.AsOf).
		ORDER_BY(FundScore.AsOf.DESC()).
		LIMIT(1)

	result := model.FundScore{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest scoring as-of date: %w", err)
	}

	return &result.AsOf, nil
}

func ScoreRecordFromModel(s model.FundScore) domain.ScoreRecord {
	return domain.ScoreRecord{
		FundID:                 s.FundID,
		AsOf:                   s.AsOf,
		HistoricalReturnsTotal: s.HistoricalReturnsTotal,
		RiskGradeTotal:         s.RiskGradeTotal,
		FundamentalsTotal:      s.FundamentalsTotal,
		OtherMetricsTotal:      s.OtherMetricsTotal,
		Return3mScore:          s.Return3mScore,
		Return6mScore:          s.Return6mScore,
		Return1yScore:          s.Return1yScore,
		Return3yScore:          s.Return3yScore,
		Return5yScore:          s.Return5yScore,
		TotalScore:             s.TotalScore,
		Rank:                   int(s.SubcategoryRank),
		Population:             int(s.Population),
		Percentile:             s.Percentile,
		Quartile:               int(s.Quartile),
		Recommendation:         domain.Recommendation(s.Recommendation),
	}
}

func ScoreRecordToModel(r domain.ScoreRecord) *model.FundScore {
	return &model.FundScore{
		FundID:                 r.FundID,
		AsOf:                   r.AsOf,
		HistoricalReturnsTotal: r.HistoricalReturnsTotal,
		RiskGradeTotal:         r.RiskGradeTotal,
		FundamentalsTotal:      r.FundamentalsTotal,
		OtherMetricsTotal:      r.OtherMetricsTotal,
		Return3mScore:          r.Return3mScore,
		Return6mScore:          r.Return6mScore,
		Return1yScore:          r.Return1yScore,
		Return3yScore:          r.Return3yScore,
		Return5yScore:          r.Return5yScore,
		TotalScore:             r.TotalScore,
		SubcategoryRank:        int32(r.Rank),
		Population:             int32(r.Population),
		Percentile:             r.Percentile,
		Quartile:               int32(r.Quartile),
		Recommendation:         string(r.Recommendation),
	}
}
