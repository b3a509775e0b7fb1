package cmd

import (
	"fmt"

	"github.com/sgslabs/sgsdiag/internal/catalog"
	"github.com/sgslabs/sgsdiag/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed diagnostics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		showReport, _ := cmd.Flags().GetBool("report")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo := st.EventRepo()
		records, err := repo.CompletedAssessments(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query assessments: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No completed diagnostics.")
			return nil
		}

		for _, rec := range records {
			grade := "-"
			if tier, ok := catalog.ResolveTier(rec.PAI); ok {
				grade = tier.Grade
			}
			fmt.Printf("%s  %-10s %-6s %-16s PAI %3d  %s\n",
				rec.Timestamp.Format("2006-01-02 15:04"),
				rec.ApplicantName, rec.ApplicantGrade, rec.ApplicantCode, rec.PAI, grade)

			for _, cat := range catalog.Categories() {
				if score, ok := rec.CategoryScores[cat.ID]; ok {
					fmt.Printf("    %s %5.1f", cat.ID, score)
				}
			}
			fmt.Println()

			if showReport {
				report, err := repo.ReportForSession(cmd.Context(), rec.SessionID)
				if err == nil && report != nil {
					fmt.Println()
					fmt.Println(report.ReportText)
					fmt.Println()
				}
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of records")
	historyCmd.Flags().Bool("report", false, "Print the stored narrative report for each record")
}
