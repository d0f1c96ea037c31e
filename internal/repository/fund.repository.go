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

type FundRepository interface {
	Get(fundID string) (*domain.Fund, error)
	List() ([]domain.Fund, error)
	ListBySubcategory(subcategory string) ([]domain.Fund, error)
	Upsert(tx *sql.Tx, funds []model.Fund) error
}

func NewFundRepository(db *sql.DB) FundRepository {
	return fundRepositoryHandler{Db: db}
}

type fundRepositoryHandler struct {
	Db *sql.DB
}

func (h fundRepositoryHandler) Get(fundID string) (*domain.Fund, error) {
	query := Fund.
		SELECT(Fund.AllColumns).
		WHERE(Fund.FundID.EQ(String(fundID)))

	result := model.Fund{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get fund %s: %w", fundID, err)
	}

	fund := fundFromModel(result)
	return &fund, nil
}

func (h fundRepositoryHandler) List() ([]domain.Fund, error) {
	query := Fund.
		SELECT(Fund.AllColumns).
		ORDER_BY(Fund.FundID.ASC())

	result := []model.Fund{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list funds: %w", err)
	}

	out := make([]domain.Fund, 0, len(result))
	for _, f := range result {
		out = append(out, fundFromModel(f))
	}

	return out, nil
}

func (h fundRepositoryHandler) ListBySubcategory(subcategory string) ([]domain.Fund, error) {
	query := Fund.
		SELECT(Fund.AllColumns).
		WHERE(Fund.Subcategory.EQ(String(subcategory))).
		ORDER_BY(Fund.FundID.ASC())

	result := []model.Fund{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list funds in subcategory %q: %w", subcategory, err)
	}

	out := make([]domain.Fund, 0, len(result))
	for _, f := range result {
		out = append(out, fundFromModel(f))
	}

	return out, nil
}

func (h fundRepositoryHandler) Upsert(tx *sql.Tx, funds []model.Fund) error {
	if len(funds) == 0 {
		return nil
	}

	for i := range funds {
		funds[i].CreatedAt = time.Now().UTC()
		funds[i].UpdatedAt = time.Now().UTC()
	}

	query := Fund.
		INSERT(Fund.AllColumns).
		MODELS(funds).
		ON_CONFLICT(Fund.FundID).
		DO_UPDATE(
			SET(
				Fund.Name.SET(Fund.EXCLUDED.Name),
				Fund.Category.SET(Fund.EXCLUDED.Category),
				Fund.Subcategory.SET(Fund.EXCLUDED.Subcategory),
				Fund.InceptionDate.SET(Fund.EXCLUDED.InceptionDate),
				Fund.ExpenseRatio.SET(Fund.EXCLUDED.ExpenseRatio),
				Fund.AumCrores.SET(Fund.EXCLUDED.AumCrores),
				Fund.Manager.SET(Fund.EXCLUDED.Manager),
				Fund.UpdatedAt.SET(Fund.EXCLUDED.UpdatedAt),
			),
		)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to upsert funds: %w", err)
	}

	return nil
}

func fundFromModel(f model.Fund) domain.Fund {
	return domain.Fund{
		FundID:        f.FundID,
		Name:          f.Name,
		Category:      f.Category,
		Subcategory:   f.Subcategory,
		InceptionDate: f.InceptionDate,
		ExpenseRatio:  f.ExpenseRatio,
		AumCrores:     f.AumCrores,
		Manager:       f.Manager,
	}
}
