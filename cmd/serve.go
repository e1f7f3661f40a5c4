package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"heartscope/internal/dataset"
	"heartscope/internal/logging"
	"heartscope/ui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logging.New(cfg.Log.Level)
		if err != nil {
			return err
		}
		defer log.Sync()

		cache := dataset.NewCache(cfg.Data.File, log)

		// Load eagerly so a missing or malformed dataset aborts startup
		// instead of surfacing on the first render.
		t, err := cache.Processed()
		if err != nil {
			return err
		}
		log.Info("dataset ready",
			zap.String("file", cfg.Data.File),
			zap.Int("rows", t.RowCount()),
			zap.Int("columns", t.ColumnCount()))

		app, err := ui.NewApp(ui.Config{
			Cache:      cache,
			Logger:     log,
			SampleRows: cfg.Data.SampleRows,
		})
		if err != nil {
			return err
		}
		return app.Start(":" + cfg.Server.Port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
