package cmd

import (
	"fmt"
	"os"

	"github.com/sgslabs/sgsdiag/internal/app"
	"github.com/sgslabs/sgsdiag/internal/llm"
	"github.com/sgslabs/sgsdiag/internal/reportgen"
	"github.com/sgslabs/sgsdiag/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()

	// Report backend selection: an explicit report URL wins, then a
	// configured LLM provider, then the hosted default endpoint.
	var gen reportgen.Generator
	genName := "remote"
	if url := os.Getenv("SGSDIAG_REPORT_URL"); url != "" {
		gen = reportgen.NewRemoteGenerator(url)
	} else if provider, err := llm.NewProviderFromEnv(ctx, eventRepo); err == nil {
		gen = reportgen.NewLLMGenerator(provider, reportgen.DefaultConfig())
		genName = "llm"
	} else {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Reports will use the hosted endpoint.")
		gen = reportgen.NewRemoteGenerator(reportgen.DefaultRemoteURL)
	}

	opts := app.Options{
		EventRepo:     eventRepo,
		ReportService: reportgen.NewService(gen),
		GeneratorName: genName,
	}

	return app.Run(opts)
}
