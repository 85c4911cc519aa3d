package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/efpwealth/platform/internal/analytics"
	"github.com/efpwealth/platform/internal/curves"
	"github.com/efpwealth/platform/internal/site"
	"github.com/efpwealth/platform/pkg/config"
	"github.com/efpwealth/platform/pkg/logger"
)

var (
	generateCurveFile string
	generateOutputDir string
	generateSkipPNG   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate site_metrics.json from the walk-forward equity curves",
	Long: `Reads the equity curve CSV, runs the performance analytics (CAGR, drawdown,
Sharpe, Calmar, alpha/beta, annual and monthly returns) and writes
site_metrics.json plus a PNG equity preview for the web templates.

Example:
  go run ./cmd/efp generate
  go run ./cmd/efp generate --curves data/all_equity_curves.csv --out output`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateCurveFile, "curves", "", "equity curve CSV (default from config)")
	generateCmd.Flags().StringVar(&generateOutputDir, "out", "", "output directory (default from config)")
	generateCmd.Flags().BoolVar(&generateSkipPNG, "skip-png", false, "skip the PNG preview chart")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, log, err := initDeps()
	if err != nil {
		return err
	}

	report, err := buildReport(cfg, log, generateCurveFile)
	if err != nil {
		return err
	}

	outputDir := generateOutputDir
	if outputDir == "" {
		outputDir = cfg.Site.OutputDir
	}

	writer := site.NewDataWriter(outputDir, log)
	path, err := writer.Write(report)
	if err != nil {
		return err
	}
	fmt.Printf("Site metrics written to %s\n", path)

	if !generateSkipPNG {
		renderer := site.NewChartRenderer(outputDir, log)
		pngPath, err := renderer.Render(report)
		if err != nil {
			return err
		}
		fmt.Printf("Preview chart written to %s\n", pngPath)
	}

	fmt.Printf("Hero: CAGR=%.1f%%, Sharpe=%.2f, MDD=%.1f%%, Alpha=%.1f%%\n",
		report.Hero.CAGR, report.Hero.Sharpe, report.Hero.MaxDrawdown, report.Hero.Alpha)

	return nil
}

// buildReport loads the curves and runs the analytics; shared by generate
// and landing.
func buildReport(cfg *config.Config, log *logger.Logger, curveFile string) (*analytics.Report, error) {
	if curveFile == "" {
		curveFile = filepath.Join(cfg.Site.DataDir, cfg.Site.CurveFile)
	}

	loader := curves.NewLoader(log)
	strategy, benchmark, err := loader.LoadFile(curveFile, curves.Columns{
		Date:      cfg.Site.DateColumn,
		Strategy:  cfg.Site.StrategyColumn,
		Benchmark: cfg.Site.BenchmarkColumn,
	})
	if err != nil {
		return nil, fmt.Errorf("load equity curves: %w", err)
	}

	analyzer := analytics.NewAnalyzer(log)
	report, err := analyzer.BuildReport(strategy, benchmark, analytics.ReportOptions{
		TradeCount:  cfg.Site.TradeCount,
		WindowCount: cfg.Site.WindowCount,
	})
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}

	return report, nil
}
