package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"fundrank/internal/calculator"
	"fundrank/internal/db/models/postgres/public/model"
	"fundrank/internal/domain"
	"fundrank/internal/logger"
	"fundrank/internal/ranking"
	"fundrank/internal/repository"
	"fundrank/internal/scorer"

	"github.com/google/uuid"
)

type ScoringService interface {
	ScoreFund(ctx context.Context, fundID string, asOf time.Time) (*domain.ScoreRecord, error)
	RunScoring(ctx context.Context, asOf time.Time) (*ScoringRunSummary, error)
	RankSubcategory(ctx context.Context, subcategory string, asOf time.Time) ([]domain.ScoreRecord, error)
}

type ScoringRunSummary struct {
	ScoringRunID uuid.UUID
	AsOf         time.Time
	FundsScored  int
	FundsSkipped int
}

type InconsistentMetadataError struct {
	FundID string
	Reason string
}

func (e InconsistentMetadataError) Error() string {
	return fmt.Sprintf("fund %s has inconsistent metadata: %s", e.FundID, e.Reason)
}

func NewScoringService(
	fundRepository repository.FundRepository,
	navRepository repository.NavRepository,
	fundScoreRepository repository.FundScoreRepository,
	scoringRunRepository repository.ScoringRunRepository,
) ScoringService {
	return scoringServiceHandler{
		FundRepository:       fundRepository,
		NavRepository:        navRepository,
		FundScoreRepository:  fundScoreRepository,
		ScoringRunRepository: scoringRunRepository,
	}
}

type scoringServiceHandler struct {
	FundRepository       repository.FundRepository
	NavRepository        repository.NavRepository
	FundScoreRepository  repository.FundScoreRepository
	ScoringRunRepository repository.ScoringRunRepository
}

// fundSeries pairs a fund with its nav history up to the as-of date.
type fundSeries struct {
	fund   domain.Fund
	series []domain.NavPoint
}

// peerVolatilities holds the subcategory-wide volatility distributions
// used by the risk grade. Either may be nil when too few funds have the
// required window.
type peerVolatilities struct {
	oneYear   *scorer.VolatilityQuartiles
	threeYear *scorer.VolatilityQuartiles
}

func (h scoringServiceHandler) ScoreFund(ctx context.Context, fundID string, asOf time.Time) (*domain.ScoreRecord, error) {
	fund, err := h.FundRepository.Get(fundID)
	if err != nil {
		return nil, err
	}
	if err := validateFundMetadata(*fund); err != nil {
		return nil, err
	}

	series, err := h.NavRepository.ListAsOf(fundID, asOf)
	if err != nil {
		return nil, err
	}

	peerFunds, err := h.FundRepository.ListBySubcategory(fund.Subcategory)
	if err != nil {
		return nil, err
	}

	members, err := h.loadSeries(ctx, peerFunds, asOf)
	if err != nil {
		return nil, err
	}
	peers := buildPeerVolatilities(members)

	return scoreFund(*fund, series, peers, asOf)
}

// RunScoring scores every fund with sufficient history, ranks each
// subcategory with at least 4 eligible members and persists the
// results. Funds that cannot be scored are skipped, never given
// synthetic values.
func (h scoringServiceHandler) RunScoring(ctx context.Context, asOf time.Time) (*ScoringRunSummary, error) {
	log := logger.FromContext(ctx)
	startedAt := time.Now().UTC()

	funds, err := h.FundRepository.List()
	if err != nil {
		return nil, err
	}

	bySubcategory := map[string][]domain.Fund{}
	for _, fund := range funds {
		if err := validateFundMetadata(fund); err != nil {
			log.Warnf("skipping fund: %s", err.Error())
			continue
		}
		bySubcategory[fund.Subcategory] = append(bySubcategory[fund.Subcategory], fund)
	}

	scored := 0
	skipped := len(funds)
	allRecords := []*model.FundScore{}

	for subcategory, members := range bySubcategory {
		ranked, err := h.scoreSubcategory(ctx, subcategory, members, asOf)
		if err != nil {
			var tooSmall ranking.PopulationTooSmallError
			if errors.As(err, &tooSmall) {
				log.Warnf("skipping subcategory: %s", err.Error())
				continue
			}
			return nil, err
		}

		for _, record := range ranked {
			allRecords = append(allRecords, repository.ScoreRecordToModel(record))
		}
		scored += len(ranked)
		skipped -= len(ranked)
	}

	err = h.FundScoreRepository.AddMany(allRecords)
	if err != nil {
		return nil, err
	}

	completedAt := time.Now().UTC()
	run, err := h.ScoringRunRepository.Add(model.ScoringRun{
		AsOf:         asOf,
		FundsScored:  int32(scored),
		FundsSkipped: int32(skipped),
		StartedAt:    startedAt,
		CompletedAt:  &completedAt,
	})
	if err != nil {
		return nil, err
	}

	return &ScoringRunSummary{
		ScoringRunID: run.ScoringRunID,
		AsOf:         asOf,
		FundsScored:  scored,
		FundsSkipped: skipped,
	}, nil
}

func (h scoringServiceHandler) RankSubcategory(ctx context.Context, subcategory string, asOf time.Time) ([]domain.ScoreRecord, error) {
	records, err := h.FundScoreRepository.ListBySubcategory(subcategory, asOf)
	if err != nil {
		return nil, err
	}

	ranked, err := ranking.RankSubcategory(subcategory, records)
	if err != nil {
		return nil, err
	}

	models := make([]*model.FundScore, 0, len(ranked))
	for _, record := range ranked {
		models = append(models, repository.ScoreRecordToModel(record))
	}
	err = h.FundScoreRepository.AddMany(models)
	if err != nil {
		return nil, err
	}

	return ranked, nil
}

// scoreSubcategory builds the peer volatility distributions, scores
// each member and runs the quartile ranking. All members' nav series
// must be loaded before any fund is scored so the peer distribution is
// complete - the barrier is the loadSeries call.
func (h scoringServiceHandler) scoreSubcategory(ctx context.Context, subcategory string, members []domain.Fund, asOf time.Time) ([]domain.ScoreRecord, error) {
	log := logger.FromContext(ctx)

	loaded, err := h.loadSeries(ctx, members, asOf)
	if err != nil {
		return nil, err
	}

	peers := buildPeerVolatilities(loaded)

	records := []domain.ScoreRecord{}
	for _, member := range loaded {
		record, err := scoreFund(member.fund, member.series, peers, asOf)
		if err != nil {
			var insufficient calculator.InsufficientDataError
			if errors.As(err, &insufficient) {
				log.Warnf("skipping fund %s: %s", member.fund.FundID, err.Error())
				continue
			}
			return nil, err
		}
		records = append(records, *record)
	}

	return ranking.RankSubcategory(subcategory, records)
}

// loadSeries fetches nav histories for a set of funds concurrently.
func (h scoringServiceHandler) loadSeries(ctx context.Context, funds []domain.Fund, asOf time.Time) ([]fundSeries, error) {
	numGoroutines := 10

	inputCh := make(chan domain.Fund, len(funds))

	var wg sync.WaitGroup
	for _, f := range funds {
		wg.Add(1)
		inputCh <- f
	}
	close(inputCh)

	var mu sync.Mutex
	out := make([]fundSeries, 0, len(funds))
	var loadErr error

	for i := 0; i < numGoroutines; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case fund, ok := <-inputCh:
					if !ok {
						return
					}
					series, err := h.NavRepository.ListAsOf(fund.FundID, asOf)
					mu.Lock()
					if err != nil {
						loadErr = err
					} else {
						out = append(out, fundSeries{fund: fund, series: series})
					}
					mu.Unlock()
					wg.Done()
				}
			}
		}()
	}

	wg.Wait()

	if loadErr != nil {
		return nil, loadErr
	}

	// deterministic member order regardless of goroutine scheduling
	sortFundSeries(out)

	return out, nil
}

func sortFundSeries(members []fundSeries) {
	sort.Slice(members, func(i, j int) bool {
		return members[i].fund.FundID < members[j].fund.FundID
	})
}

func scoreFund(fund domain.Fund, series []domain.NavPoint, peers peerVolatilities, asOf time.Time) (*domain.ScoreRecord, error) {
	historicalReturns, err := scorer.HistoricalReturnsScorer{}.Score(series)
	if err != nil {
		return nil, err
	}

	riskGrade, err := scorer.RiskGradeScorer{}.Score(scorer.RiskGradeInput{
		Series: series,
		Peer1y: peers.oneYear,
		Peer3y: peers.threeYear,
	})
	if err != nil {
		return nil, err
	}

	fundamentals := scorer.FundamentalsScorer{}.Score(fund, asOf)
	otherMetrics := scorer.OtherMetricsScorer{}.Score(fund)

	total := scorer.AggregateTotal(
		historicalReturns.Total,
		riskGrade.Total,
		fundamentals.Total,
		otherMetrics.Total,
	)

	return &domain.ScoreRecord{
		FundID:                 fund.FundID,
		AsOf:                   asOf,
		HistoricalReturnsTotal: historicalReturns.Total,
		RiskGradeTotal:         riskGrade.Total,
		FundamentalsTotal:      fundamentals.Total,
		OtherMetricsTotal:      otherMetrics.Total,
		Return3mScore:          historicalReturns.PeriodScores[calculator.Period_3M],
		Return6mScore:          historicalReturns.PeriodScores[calculator.Period_6M],
		Return1yScore:          historicalReturns.PeriodScores[calculator.Period_1Y],
		Return3yScore:          historicalReturns.PeriodScores[calculator.Period_3Y],
		Return5yScore:          historicalReturns.PeriodScores[calculator.Period_5Y],
		TotalScore:             total,
		Recommendation:         scorer.DeriveRecommendation(total, riskGrade.Total, fundamentals.Total, 0),
	}, nil
}

// buildPeerVolatilities computes each member's 1y and 3y annualized
// volatility and forms quartile cut-offs when at least 4 members have
// the window. Funds lacking a window contribute nothing.
func buildPeerVolatilities(members []fundSeries) peerVolatilities {
	vols1y := []float64{}
	vols3y := []float64{}

	for _, member := range members {
		if vol, err := calculator.AnnualizedVolatility(member.series, 365, calculator.MinObservations1yVolatility); err == nil {
			vols1y = append(vols1y, vol)
		}
		if vol, err := calculator.AnnualizedVolatility(member.series, 1095, calculator.MinObservations3yVolatility); err == nil {
			vols3y = append(vols3y, vol)
		}
	}

	out := peerVolatilities{}
	if quartiles, err := scorer.NewVolatilityQuartiles(vols1y); err == nil {
		out.oneYear = quartiles
	}
	if quartiles, err := scorer.NewVolatilityQuartiles(vols3y); err == nil {
		out.threeYear = quartiles
	}

	return out
}

func validateFundMetadata(fund domain.Fund) error {
	if fund.Subcategory == "" {
		return InconsistentMetadataError{FundID: fund.FundID, Reason: "missing subcategory"}
	}
	if fund.Category == "" {
		return InconsistentMetadataError{FundID: fund.FundID, Reason: "missing category"}
	}
	return nil
}
