package repository

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"fundrank/internal/db/models/postgres/public/model"
	. "fundrank/internal/db/models/postgres/public/table"
	"fundrank/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/shopspring/decimal"
)

type NavCache map[string]map[time.Time]float64

type NavRepository interface {
	Add(*sql.Tx, []model.NavHistory) error
	Get(fundID string, date time.Time) (decimal.Decimal, error)
	List(fundID string, start, end time.Time) ([]domain.NavPoint, error)
	ListAsOf(fundID string, asOf time.Time) ([]domain.NavPoint, error)
}

func NewNavRepository(db *sql.DB) NavRepository {
	return &navRepositoryHandler{
		Db:        db,
		Cache:     make(NavCache),
		ReadMutex: &sync.RWMutex{},
	}
}

type navRepositoryHandler struct {
	Db        *sql.DB
	Cache     NavCache
	ReadMutex *sync.RWMutex
}

func (h *navRepositoryHandler) getFromCache(fundID string, date time.Time) *float64 {
	h.ReadMutex.RLock()
	defer h.ReadMutex.RUnlock()
	if _, ok := h.Cache[fundID]; ok {
		if value, ok := h.Cache[fundID][date]; ok {
			return &value
		}
	}
	return nil
}

func (h *navRepositoryHandler) addToCache(fundID string, date time.Time, value float64) {
	h.ReadMutex.Lock()
	defer h.ReadMutex.Unlock()
	if _, ok := h.Cache[fundID]; !ok {
		h.Cache[fundID] = map[time.Time]float64{}
	}
	h.Cache[fundID][date] = value
}

func (h *navRepositoryHandler) Add(tx *sql.Tx, navs []model.NavHistory) error {
	if len(navs) == 0 {
		return nil
	}

	for i := range navs {
		navs[i].CreatedAt = time.Now().UTC()
	}

	query := NavHistory.
		INSERT(NavHistory.MutableColumns).
		MODELS(navs).
		ON_CONFLICT(
			NavHistory.FundID, NavHistory.Date,
		).DO_UPDATE(
		SET(
			NavHistory.Value.SET(NavHistory.EXCLUDED.Value),
		),
	)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add nav history to db: %w", err)
	}

	return nil
}

// Get returns the nav on the given date, scanning back up to a week so
// weekends and holidays resolve to the prior published value.
func (h *navRepositoryHandler) Get(fundID string, date time.Time) (decimal.Decimal, error) {
	if value := h.getFromCache(fundID, date); value != nil {
		return decimal.NewFromFloat(*value), nil
	}

	minDate := DateT(date.AddDate(0, 0, -7))
	maxDate := DateT(date)
	query := NavHistory.
		SELECT(NavHistory.AllColumns).
		WHERE(
			AND(
				NavHistory.FundID.EQ(String(fundID)),
				NavHistory.Date.BETWEEN(minDate, maxDate),
			),
		).
		ORDER_BY(NavHistory.Date.DESC()).
		LIMIT(1)

	result := model.NavHistory{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to query nav for %s on %v: %w", fundID, date, err)
	}

	h.addToCache(fundID, date, result.Value)
	return decimal.NewFromFloat(result.Value), nil
}

func (h *navRepositoryHandler) List(fundID string, start, end time.Time) ([]domain.NavPoint, error) {
	query := NavHistory.
		SELECT(NavHistory.AllColumns).
		WHERE(
			AND(
				NavHistory.FundID.EQ(String(fundID)),
				NavHistory.Date.BETWEEN(DateT(start), DateT(end)),
			),
		).
		ORDER_BY(NavHistory.Date.ASC())

	result := []model.NavHistory{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list navs for %s: %w", fundID, err)
	}

	out := make([]domain.NavPoint, 0, len(result))
	for _, n := range result {
		out = append(out, navPointFromModel(n))
	}

	return out, nil
}

func (h *navRepositoryHandler) ListAsOf(fundID string, asOf time.Time) ([]domain.NavPoint, error) {
	query := NavHistory.
		SELECT(NavHistory.AllColumns).
		WHERE(
			AND(
				NavHistory.FundID.EQ(String(fundID)),
				NavHistory.Date.LT_EQ(DateT(asOf)),
			),
		).
		ORDER_BY(NavHistory.Date.ASC())

	result := []model.NavHistory{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list navs for %s as of %v: %w", fundID, asOf, err)
	}

	out := make([]domain.NavPoint, 0, len(result))
	for _, n := range result {
		out = append(out, navPointFromModel(n))
	}

	return out, nil
}

func navPointFromModel(n model.NavHistory) domain.NavPoint {
	return domain.NavPoint{
		FundID: n.FundID,
		Date:   n.Date,
		Value:  decimal.NewFromFloat(n.Value),
	}
}
