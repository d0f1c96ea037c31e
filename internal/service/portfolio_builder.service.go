package service

import (
	"context"
	"fmt"
	"time"

	"fundrank/internal/domain"
	"fundrank/internal/logger"
	"fundrank/internal/repository"
)

// FundsPerAssetClass is how many top-scored funds represent each asset
// class in a built portfolio.
const FundsPerAssetClass = 3

// assetClassSplit is the equity/debt/hybrid weighting for a risk
// profile, in whole percent.
type assetClassSplit struct {
	EquityPct int
	DebtPct   int
	HybridPct int
}

var riskProfileSplits = map[domain.RiskProfile]assetClassSplit{
	domain.RiskProfile_Conservative:           {EquityPct: 20, DebtPct: 70, HybridPct: 10},
	domain.RiskProfile_ModeratelyConservative: {EquityPct: 35, DebtPct: 55, HybridPct: 10},
	domain.RiskProfile_Balanced:               {EquityPct: 50, DebtPct: 40, HybridPct: 10},
	domain.RiskProfile_ModeratelyAggressive:   {EquityPct: 65, DebtPct: 25, HybridPct: 10},
	domain.RiskProfile_Aggressive:             {EquityPct: 80, DebtPct: 10, HybridPct: 10},
}

type BuildPortfolioInput struct {
	Name        string
	RiskProfile domain.RiskProfile
	AsOf        *time.Time
}

type PortfolioBuilderService interface {
	Build(ctx context.Context, in BuildPortfolioInput) (*domain.Portfolio, error)
}

func NewPortfolioBuilderService(
	fundScoreRepository repository.FundScoreRepository,
	portfolioRepository repository.PortfolioRepository,
) PortfolioBuilderService {
	return portfolioBuilderServiceHandler{
		FundScoreRepository: fundScoreRepository,
		PortfolioRepository: portfolioRepository,
	}
}

type portfolioBuilderServiceHandler struct {
	FundScoreRepository repository.FundScoreRepository
	PortfolioRepository repository.PortfolioRepository
}

// Build assembles a portfolio for the risk profile from the latest
// scoring run: each asset class's budget spreads over its top-scored
// funds in proportion to their total scores. Classes with no scored
// funds drop out and their budget redistributes through normalization.
// The built portfolio is stored under its name so backtests can refer
// to it later.
func (h portfolioBuilderServiceHandler) Build(ctx context.Context, in BuildPortfolioInput) (*domain.Portfolio, error) {
	log := logger.FromContext(ctx)

	split, ok := riskProfileSplits[in.RiskProfile]
	if !ok {
		return nil, ValidationError{fmt.Errorf("invalid risk profile: %s", in.RiskProfile)}
	}

	asOf := in.AsOf
	if asOf == nil {
		latest, err := h.FundScoreRepository.LatestAsOf()
		if err != nil {
			return nil, fmt.Errorf("no scoring run available to build from: %w", err)
		}
		asOf = latest
	}

	weights := map[string]float64{}
	classes := []struct {
		category  string
		budgetPct int
	}{
		{"Equity", split.EquityPct},
		{"Debt", split.DebtPct},
		{"Hybrid", split.HybridPct},
	}

	for _, class := range classes {
		if class.budgetPct == 0 {
			continue
		}

		top, err := h.FundScoreRepository.TopByCategory(class.category, *asOf, FundsPerAssetClass)
		if err != nil {
			return nil, err
		}
		if len(top) == 0 {
			log.Warnf("no scored %s funds on %s, redistributing its %d%%", class.category, asOf.Format("2006-01-02"), class.budgetPct)
			continue
		}

		scoreSum := 0.0
		for _, record := range top {
			scoreSum += record.TotalScore
		}
		if scoreSum == 0 {
			continue
		}

		for _, record := range top {
			weights[record.FundID] += float64(class.budgetPct) * record.TotalScore / scoreSum
		}
	}

	allocations := domain.NormalizeAllocations(weights)
	if len(allocations) == 0 {
		return nil, fmt.Errorf("no scored funds available for risk profile %s on %s", in.RiskProfile, asOf.Format("2006-01-02"))
	}

	portfolio := &domain.Portfolio{
		Name:        in.Name,
		Allocations: allocations,
	}
	if err := portfolio.Validate(); err != nil {
		return nil, err
	}

	portfolioID, err := h.PortfolioRepository.Add(*portfolio, &in.RiskProfile)
	if err != nil {
		return nil, fmt.Errorf("failed to store portfolio %q: %w", portfolio.Name, err)
	}
	log.Infof("stored portfolio %q as %s", portfolio.Name, portfolioID.String())

	return portfolio, nil
}
