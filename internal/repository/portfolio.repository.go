package repository

import (
	"database/sql"
	"fmt"
	"time"

	"fundrank/internal/db/models/postgres/public/model"
	. "fundrank/internal/db/models/postgres/public/table"
	"fundrank/internal/domain"

	"github.com/google/uuid"

	. "github.com/go-jet/jet/v2/postgres"
)

type PortfolioRepository interface {
	Add(portfolio domain.Portfolio, riskProfile *domain.RiskProfile) (*uuid.UUID, error)
	GetByName(name string) (*domain.Portfolio, error)
}

func NewPortfolioRepository(db *sql.DB) PortfolioRepository {
	return portfolioRepositoryHandler{Db: db}
}

type portfolioRepositoryHandler struct {
	Db *sql.DB
}

// Add stores the portfolio and its holdings in one transaction.
func (h portfolioRepositoryHandler) Add(portfolio domain.Portfolio, riskProfile *domain.RiskProfile) (*uuid.UUID, error) {
	if err := portfolio.Validate(); err != nil {
		return nil, err
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin tx for portfolio %q: %w", portfolio.Name, err)
	}
	defer tx.Rollback()

	var profileStr *string
	if riskProfile != nil {
		s := string(*riskProfile)
		profileStr = &s
	}

	p := model.Portfolio{
		PortfolioID: uuid.New(),
		Name:        portfolio.Name,
		RiskProfile: profileStr,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	query := Portfolio.
		INSERT(Portfolio.AllColumns).
		MODEL(p)

	_, err = query.Exec(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert portfolio %q: %w", portfolio.Name, err)
	}

	holdings := []model.PortfolioHolding{}
	for _, fundID := range portfolio.FundIDs() {
		holdings = append(holdings, model.PortfolioHolding{
			PortfolioID:   p.PortfolioID,
			FundID:        fundID,
			AllocationPct: int32(portfolio.Allocations[fundID]),
			CreatedAt:     time.Now().UTC(),
		})
	}

	holdingQuery := PortfolioHolding.
		INSERT(PortfolioHolding.MutableColumns).
		MODELS(holdings)

	_, err = holdingQuery.Exec(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert holdings for portfolio %q: %w", portfolio.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit portfolio %q: %w", portfolio.Name, err)
	}

	return &p.PortfolioID, nil
}

func (h portfolioRepositoryHandler) GetByName(name string) (*domain.Portfolio, error) {
	query := Portfolio.
		SELECT(Portfolio.AllColumns).
		WHERE(Portfolio.Name.EQ(String(name)))

	p := model.Portfolio{}
	err := query.Query(h.Db, &p)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio %q: %w", name, err)
	}

	holdingQuery := PortfolioHolding.
		SELECT(PortfolioHolding.AllColumns).
		WHERE(PortfolioHolding.PortfolioID.EQ(UUID(p.PortfolioID))).
		ORDER_BY(PortfolioHolding.FundID.ASC())

	holdings := []model.PortfolioHolding{}
	err = holdingQuery.Query(h.Db, &holdings)
	if err != nil {
		return nil, fmt.Errorf("failed to get holdings for portfolio %q: %w", name, err)
	}

	allocations := map[string]int{}
	for _, holding := range holdings {
		allocations[holding.FundID] = int(holding.AllocationPct)
	}

	return &domain.Portfolio{
		Name:        p.Name,
		Allocations: allocations,
	}, nil
}
