package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/venatus57/autoanalyseur/internal/analyze"
	"github.com/venatus57/autoanalyseur/internal/model"
	"github.com/venatus57/autoanalyseur/internal/report"
)

func estimateCmd() *cobra.Command {
	var (
		carMake  string
		carModel string
		year     int
		mileage  int
		engine   string
		years    int
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the market value of a vehicle",
		Long: `Estimate the current market price of a vehicle and project its resale
value. Uses the reference price table, falling back to similar listings
from the history and then to a generic depreciation curve.`,
		Example: `  autoanalyseur estimate --make peugeot --model 208 --year 2019 --km 60000
  autoanalyseur estimate --make bmw --model "serie 3" --year 2017 --engine 320d --years 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			listing := model.Listing{
				Make:          carMake,
				Model:         carModel,
				Year:          year,
				MileageKm:     mileage,
				EngineVariant: engine,
			}

			market := analyze.NewEngine(store).Market()
			est := market.Estimate(ctx, listing)
			resale := market.PredictResale(ctx, listing, years)

			if asJSON {
				out, err := report.RenderJSON(map[string]any{
					"estimate": est,
					"resale":   resale,
				})
				if err != nil {
					return err
				}
				fmt.Println(out)
				return nil
			}

			fmt.Print(report.RenderEstimate(est))
			if resale.Analyzable {
				fmt.Printf("Dans %d ans : %d€ (perte %d€, %d%%) - %s\n",
					resale.Years, resale.ResalePrice, resale.TotalLoss, resale.LossPercent, resale.Advice)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&carMake, "make", "", "vehicle make")
	cmd.Flags().StringVar(&carModel, "model", "", "vehicle model")
	cmd.Flags().IntVar(&year, "year", 0, "model year")
	cmd.Flags().IntVar(&mileage, "km", 0, "mileage in kilometers")
	cmd.Flags().StringVar(&engine, "engine", "", "engine variant")
	cmd.Flags().IntVar(&years, "years", 3, "resale projection horizon in years")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output JSON")

	_ = cmd.MarkFlagRequired("make")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}
