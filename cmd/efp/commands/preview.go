package commands

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

var previewPort string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Serve the generated site output locally",
	Long: `Serves the output directory (landing.html, site_metrics.json,
equity_preview.png) over HTTP for a local look before publishing.

Example:
  go run ./cmd/efp preview
  go run ./cmd/efp preview --port 8090`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&previewPort, "port", "", "listen port (default from config)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, log, err := initDeps()
	if err != nil {
		return err
	}

	port := previewPort
	if port == "" {
		port = cfg.Site.PreviewPort
	}

	router := mux.NewRouter()
	router.Handle("/", http.RedirectHandler("/landing.html", http.StatusFound))
	router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.Site.OutputDir)))

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.WithFields(map[string]interface{}{
		"port": port,
		"dir":  cfg.Site.OutputDir,
	}).Info("Preview server listening")
	fmt.Printf("Serving %s on http://localhost:%s\n", cfg.Site.OutputDir, port)

	return server.ListenAndServe()
}
