package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"fundrank/api"
	"fundrank/internal/repository"
	"fundrank/internal/service"
	"fundrank/internal/util"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	fundRepository := repository.NewFundRepository(dbConn)
	navRepository := repository.NewNavRepository(dbConn)
	fundScoreRepository := repository.NewFundScoreRepository(dbConn)
	scoringRunRepository := repository.NewScoringRunRepository(dbConn)
	portfolioRepository := repository.NewPortfolioRepository(dbConn)

	scoringService := service.NewScoringService(
		fundRepository,
		navRepository,
		fundScoreRepository,
		scoringRunRepository,
	)
	backtestService := service.NewBacktestService(navRepository, portfolioRepository)
	portfolioBuilderService := service.NewPortfolioBuilderService(fundScoreRepository, portfolioRepository)

	return &api.ApiHandler{
		Db:                      dbConn,
		ScoringService:          scoringService,
		BacktestService:         backtestService,
		PortfolioBuilderService: portfolioBuilderService,
	}, nil
}
