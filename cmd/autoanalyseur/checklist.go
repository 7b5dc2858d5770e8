package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/venatus57/autoanalyseur/internal/refdata"
	"github.com/venatus57/autoanalyseur/internal/report"
)

func checklistCmd() *cobra.Command {
	var (
		mods   []string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Print the guided photo inspection checklist",
		Long: `Print the visual checks to perform on the listing photos. Passing
modification ids adds the checks specific to those modifications.`,
		Example: `  autoanalyseur checklist
  autoanalyseur checklist --mods reprogrammation,echappement`,
		RunE: func(_ *cobra.Command, _ []string) error {
			var checklistMods []report.ChecklistMod
			for _, id := range mods {
				rec, ok := refdata.FindModification(id)
				if !ok {
					return fmt.Errorf("unknown modification id: %s", id)
				}
				checklistMods = append(checklistMods, report.ChecklistMod{
					ID:       rec.ID,
					Name:     rec.Name,
					Category: rec.Category,
				})
			}

			checklist := report.BuildChecklist(checklistMods)

			if asJSON {
				out, err := report.RenderJSON(checklist)
				if err != nil {
					return err
				}
				fmt.Println(out)
				return nil
			}

			fmt.Print(report.RenderChecklist(checklist))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&mods, "mods", nil, "modification ids to tailor the checklist")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output JSON")

	return cmd
}
