package repository

import (
	"database/sql"
	"fmt"

	"fundrank/internal/db/models/postgres/public/model"
	. "fundrank/internal/db/models/postgres/public/table"

	"github.com/google/uuid"
)

type ScoringRunRepository interface {
	Add(model.ScoringRun) (*model.ScoringRun, error)
}

func NewScoringRunRepository(db *sql.DB) ScoringRunRepository {
	return scoringRunRepositoryHandler{Db: db}
}

type scoringRunRepositoryHandler struct {
	Db *sql.DB
}

func (h scoringRunRepositoryHandler) Add(run model.ScoringRun) (*model.ScoringRun, error) {
	run.ScoringRunID = uuid.New()

	query := ScoringRun.
		INSERT(ScoringRun.AllColumns).
		MODEL(run).
		RETURNING(ScoringRun.AllColumns)

	out := model.ScoringRun{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert scoring run: %w", err)
	}

	return &out, nil
}
