package cmd

import (
	"fmt"

	"github.com/sgslabs/sgsdiag/internal/catalog"
	"github.com/spf13/cobra"
)

var batteryCmd = &cobra.Command{
	Use:   "battery",
	Short: "Print the question battery by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		categoryID, _ := cmd.Flags().GetString("category")

		cats := catalog.Categories()
		if categoryID != "" {
			cat, err := catalog.GetCategory(categoryID)
			if err != nil {
				return err
			}
			cats = []catalog.Category{cat}
		}

		for _, cat := range cats {
			fmt.Printf("%s — %s (가중치 %.0f%%)\n", cat.ID, cat.Name, cat.Weight)
			if cat.Description != "" {
				fmt.Printf("  %s\n", cat.Description)
			}
			for _, q := range catalog.QuestionsFor(cat.ID) {
				marker := " "
				if q.Reverse {
					marker = "R"
				}
				fmt.Printf("  %-4s %s %s\n", q.ID, marker, q.Text)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	batteryCmd.Flags().String("category", "", "Limit output to one category ID (A-F)")
}
