package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"fundrank/cmd"
	"fundrank/internal/db/models/postgres/public/model"
	"fundrank/internal/logger"
	"fundrank/internal/repository"
	"fundrank/internal/util"

	"github.com/gocarina/gocsv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "score",
	Short: "fund scoring and ranking jobs",
}

var asOfFlag string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "score every fund and rank all subcategories",
	RunE: func(c *cobra.Command, args []string) error {
		asOf, err := resolveAsOf(asOfFlag)
		if err != nil {
			return err
		}

		apiHandler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(apiHandler)

		ctx := context.WithValue(context.Background(), logger.ContextKey, logger.New())

		summary, err := apiHandler.ScoringService.RunScoring(ctx, asOf)
		if err != nil {
			return err
		}

		util.Pprint(summary)
		return nil
	},
}

var rankCmd = &cobra.Command{
	Use:   "rank [subcategory]",
	Short: "re-rank one subcategory from stored scores",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		asOf, err := resolveAsOf(asOfFlag)
		if err != nil {
			return err
		}

		apiHandler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(apiHandler)

		ctx := context.WithValue(context.Background(), logger.ContextKey, logger.New())

		ranked, err := apiHandler.ScoringService.RankSubcategory(ctx, args[0], asOf)
		if err != nil {
			return err
		}

		util.Pprint(ranked)
		return nil
	},
}

var (
	fundsCsvFlag string
	navsCsvFlag  string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "load fund metadata and nav history from csv",
	RunE: func(c *cobra.Command, args []string) error {
		if fundsCsvFlag == "" && navsCsvFlag == "" {
			logger.Warn("nothing to seed, pass --funds and/or --navs")
			return nil
		}

		apiHandler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(apiHandler)

		tx, err := apiHandler.Db.Begin()
		if err != nil {
			return err
		}
		defer tx.Rollback()

		fundRepository := repository.NewFundRepository(apiHandler.Db)
		navRepository := repository.NewNavRepository(apiHandler.Db)

		if fundsCsvFlag != "" {
			funds, err := readFundsCsv(fundsCsvFlag)
			if err != nil {
				return err
			}
			if err := fundRepository.Upsert(tx, funds); err != nil {
				return err
			}
			fmt.Printf("seeded %d funds\n", len(funds))
		}

		if navsCsvFlag != "" {
			navs, err := readNavsCsv(navsCsvFlag)
			if err != nil {
				return err
			}
			if err := navRepository.Add(tx, navs); err != nil {
				return err
			}
			fmt.Printf("seeded %d nav points\n", len(navs))
		}

		return tx.Commit()
	},
}

func readFundsCsv(path string) ([]model.Fund, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	type row struct {
		FundID        string   `csv:"fund_id"`
		Name          string   `csv:"name"`
		Category      string   `csv:"category"`
		Subcategory   string   `csv:"subcategory"`
		InceptionDate string   `csv:"inception_date"`
		ExpenseRatio  *float64 `csv:"expense_ratio"`
		AumCrores     *float64 `csv:"aum_crores"`
		Manager       *string  `csv:"manager"`
	}
	rows := []row{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, err
	}

	funds := []model.Fund{}
	for _, r := range rows {
		fund := model.Fund{
			FundID:       r.FundID,
			Name:         r.Name,
			Category:     r.Category,
			Subcategory:  r.Subcategory,
			ExpenseRatio: r.ExpenseRatio,
			AumCrores:    r.AumCrores,
			Manager:      r.Manager,
		}
		if r.InceptionDate != "" {
			date, err := time.Parse(time.DateOnly, r.InceptionDate)
			if err != nil {
				return nil, fmt.Errorf("bad inception_date for %s: %w", r.FundID, err)
			}
			fund.InceptionDate = &date
		}
		funds = append(funds, fund)
	}

	return funds, nil
}

func readNavsCsv(path string) ([]model.NavHistory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	type row struct {
		FundID string  `csv:"fund_id"`
		Date   string  `csv:"date"`
		Value  float64 `csv:"value"`
	}
	rows := []row{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, err
	}

	navs := []model.NavHistory{}
	for _, r := range rows {
		date, err := time.Parse(time.DateOnly, r.Date)
		if err != nil {
			return nil, fmt.Errorf("bad date for %s: %w", r.FundID, err)
		}
		navs = append(navs, model.NavHistory{
			FundID: r.FundID,
			Date:   date,
			Value:  r.Value,
		})
	}

	return navs, nil
}

func resolveAsOf(s string) (time.Time, error) {
	if s == "" {
		now := time.Now().UTC()
		return util.NewDate(now.Year(), int(now.Month()), now.Day()), nil
	}
	return time.Parse(time.DateOnly, s)
}

func main() {
	runCmd.Flags().StringVar(&asOfFlag, "as-of", "", "scoring date (YYYY-MM-DD), defaults to today")
	rankCmd.Flags().StringVar(&asOfFlag, "as-of", "", "scoring date (YYYY-MM-DD), defaults to today")
	seedCmd.Flags().StringVar(&fundsCsvFlag, "funds", "", "fund metadata csv")
	seedCmd.Flags().StringVar(&navsCsvFlag, "navs", "", "nav history csv")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(seedCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
