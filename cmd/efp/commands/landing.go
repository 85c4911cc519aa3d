package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/efpwealth/platform/internal/site"
	"github.com/efpwealth/platform/pkg/httputil"
)

var (
	landingCurveFile string
	landingOutputDir string
)

var landingCmd = &cobra.Command{
	Use:   "landing",
	Short: "Bake the static landing page with inlined charts",
	Long: `Runs the performance analytics and renders landing.html: hero metrics,
equity/annual-return charts and the marketing sections, with Chart.js
inlined so the page is a single self-contained file. Chart.js bundles are
downloaded once and cached on disk.

Example:
  go run ./cmd/efp landing
  go run ./cmd/efp landing --out output`,
	RunE: runLanding,
}

func init() {
	rootCmd.AddCommand(landingCmd)

	landingCmd.Flags().StringVar(&landingCurveFile, "curves", "", "equity curve CSV (default from config)")
	landingCmd.Flags().StringVar(&landingOutputDir, "out", "", "output directory (default from config)")
}

func runLanding(cmd *cobra.Command, args []string) error {
	cfg, log, err := initDeps()
	if err != nil {
		return err
	}

	report, err := buildReport(cfg, log, landingCurveFile)
	if err != nil {
		return err
	}

	client := httputil.New(log).WithRateLimit(cfg.Assets.RequestsPerSec)
	fetcher := site.NewAssetFetcher(cfg.Assets, client, log)

	chartJS, adapterJS, err := fetcher.ChartScripts(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetch chart assets: %w", err)
	}

	outputDir := landingOutputDir
	if outputDir == "" {
		outputDir = cfg.Site.OutputDir
	}

	renderer := site.NewLandingRenderer(outputDir, log)
	path, err := renderer.Render(report, chartJS, adapterJS)
	if err != nil {
		return err
	}

	fmt.Printf("Landing page written to %s\n", path)
	return nil
}
