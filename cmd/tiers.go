package cmd

import (
	"fmt"
	"strings"

	"github.com/sgslabs/sgsdiag/internal/catalog"
	"github.com/spf13/cobra"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Print the grade matrix",
	RunE: func(cmd *cobra.Command, args []string) error {
		score, _ := cmd.Flags().GetInt("score")

		if cmd.Flags().Changed("score") {
			tier, ok := catalog.ResolveTier(score)
			if !ok {
				return fmt.Errorf("score %d outside the 0-100 range", score)
			}
			fmt.Printf("PAI %d → %s %s (%d~%d)\n", score, tier.Grade, tier.Name, tier.Low, tier.High)
			fmt.Printf("목표권: %s\n", strings.Join(tier.Universities, ", "))
			return nil
		}

		fmt.Printf("%-6s %-16s %-8s %s\n", "등급", "명칭", "PAI", "대학 그룹")
		for _, tier := range catalog.Tiers() {
			fmt.Printf("%-6s %-16s %2d~%-4d %s\n",
				tier.Grade, tier.Name, tier.Low, tier.High,
				strings.Join(tier.Universities, ", "))
		}
		return nil
	},
}

func init() {
	tiersCmd.Flags().Int("score", 0, "Resolve a single PAI score to its grade")
}
