package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/venatus57/autoanalyseur/internal/analyze"
	"github.com/venatus57/autoanalyseur/internal/model"
	"github.com/venatus57/autoanalyseur/internal/report"
)

func analyzeCmd() *cobra.Command {
	var (
		textFile    string
		description string
		carMake     string
		carModel    string
		year        int
		mileage     int
		price       int
		engine      string
		refPrice    int
		declared    []string
		noSave      bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a used-car listing",
		Long: `Score a listing on mechanical risk, legal compliance and resale value.

The listing text is mined for the make, model, year, mileage, price and
engine variant; structured flags override whatever extraction found.`,
		Example: `  # Analyze from a saved listing text
  autoanalyseur analyze --text-file annonce.txt

  # Analyze from structured fields
  autoanalyseur analyze --make renault --model clio --year 2018 --km 95000 --price 9500

  # Pipe the listing in and declare a known modification
  cat annonce.txt | autoanalyseur analyze --text-file - --declared reprogrammation`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			rawText, err := readTextInput(textFile, description)
			if err != nil {
				return err
			}

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			engineRunner := analyze.NewEngine(store)
			req := analyze.Request{
				Listing: model.Listing{
					Make:           carMake,
					Model:          carModel,
					Year:           year,
					MileageKm:      mileage,
					PriceEUR:       price,
					EngineVariant:  engine,
					ReferencePrice: refPrice,
				},
				RawText:     rawText,
				Declared:    declaredMods(declared),
				SkipHistory: noSave,
			}

			result, err := engineRunner.Analyze(ctx, req)
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			if asJSON {
				out, err := report.RenderJSON(result)
				if err != nil {
					return err
				}
				fmt.Println(out)
				return nil
			}

			fmt.Print(report.Render(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&textFile, "text-file", "f", "", "listing text file ('-' for stdin)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "listing description text")
	cmd.Flags().StringVar(&carMake, "make", "", "vehicle make")
	cmd.Flags().StringVar(&carModel, "model", "", "vehicle model")
	cmd.Flags().IntVar(&year, "year", 0, "model year")
	cmd.Flags().IntVar(&mileage, "km", 0, "mileage in kilometers")
	cmd.Flags().IntVar(&price, "price", 0, "asking price in euros")
	cmd.Flags().StringVar(&engine, "engine", "", "engine variant (e.g. '1.2 TCe')")
	cmd.Flags().IntVar(&refPrice, "reference-price", 0, "your own market price estimate in euros")
	cmd.Flags().StringSliceVar(&declared, "declared", nil, "modification ids declared by the seller")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the listing in the history")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output JSON instead of the styled report")

	cmd.AddCommand(analyzeBatchCmd())

	return cmd
}

// batchItem is one listing of a batch file.
type batchItem struct {
	Make           string   `json:"make"`
	Model          string   `json:"model"`
	EngineVariant  string   `json:"engineVariant"`
	Description    string   `json:"description"`
	Text           string   `json:"text"`
	Declared       []string `json:"declared"`
	Year           int      `json:"year"`
	MileageKm      int      `json:"mileageKm"`
	PriceEUR       int      `json:"priceEur"`
	ReferencePrice int      `json:"referencePrice"`
}

// batchResult pairs a batch item with its score or failure.
type batchResult struct {
	Report *analyze.Report `json:"report,omitempty"`
	Error  string          `json:"error,omitempty"`
	Index  int             `json:"index"`
}

func analyzeBatchCmd() *cobra.Command {
	var (
		noSave bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "batch <file.json>",
		Short: "Analyze a JSON file of listings",
		Long:  `Score every listing of a JSON array and print a score summary per entry.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read batch file: %w", err)
			}
			var items []batchItem
			if err := json.Unmarshal(data, &items); err != nil {
				return fmt.Errorf("failed to parse batch file: %w", err)
			}
			if len(items) == 0 {
				fmt.Println(report.SubtleStyle.Render("Nothing to analyze."))
				return nil
			}

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			engineRunner := analyze.NewEngine(store)
			bar := progressbar.Default(int64(len(items)), "analyzing")

			results := make([]batchResult, 0, len(items))
			for i, item := range items {
				req := analyze.Request{
					Listing: model.Listing{
						Make:           item.Make,
						Model:          item.Model,
						Year:           item.Year,
						MileageKm:      item.MileageKm,
						PriceEUR:       item.PriceEUR,
						EngineVariant:  item.EngineVariant,
						Description:    item.Description,
						ReferencePrice: item.ReferencePrice,
					},
					RawText:     item.Text,
					Declared:    declaredMods(item.Declared),
					SkipHistory: noSave,
				}

				res := batchResult{Index: i}
				r, err := engineRunner.Analyze(ctx, req)
				if err != nil {
					res.Error = err.Error()
				} else {
					res.Report = r
				}
				results = append(results, res)
				_ = bar.Add(1)
			}
			_ = bar.Finish()

			if asJSON {
				out, err := report.RenderJSON(results)
				if err != nil {
					return err
				}
				fmt.Println(out)
				return nil
			}

			for _, res := range results {
				if res.Error != "" {
					fmt.Printf("%3d. %s\n", res.Index+1, report.DangerStyle.Render("erreur : "+res.Error))
					continue
				}
				r := res.Report
				vehicle := "?"
				if r.Listing.HasVehicleIdentity() {
					vehicle = fmt.Sprintf("%s %s", r.Listing.Make, r.Listing.Model)
				}
				fmt.Printf("%3d. %-30s %s (%s)\n",
					res.Index+1,
					vehicle,
					report.ScoreStyle(r.Score.Global).Render(fmt.Sprintf("%3d/100", r.Score.Global)),
					r.Score.Label)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the listings in the history")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output full JSON reports")

	return cmd
}

func readTextInput(textFile, description string) (string, error) {
	if textFile == "" {
		return description, nil
	}
	if textFile == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(textFile)
	if err != nil {
		return "", fmt.Errorf("failed to read listing text: %w", err)
	}
	return string(data), nil
}

func declaredMods(ids []string) []analyze.DeclaredModification {
	if len(ids) == 0 {
		return nil
	}
	mods := make([]analyze.DeclaredModification, 0, len(ids))
	for _, id := range ids {
		mods = append(mods, analyze.DeclaredModification{ID: id})
	}
	return mods
}
