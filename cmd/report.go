package cmd

import (
	"os"

	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"heartscope/internal/dataset"
	"heartscope/internal/logging"
	"heartscope/internal/render"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the Home and Data Overview numbers as terminal tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logging.New(cfg.Log.Level)
		if err != nil {
			return err
		}
		defer log.Sync()

		cache := dataset.NewCache(cfg.Data.File, log)
		t, err := cache.Processed()
		if err != nil {
			return err
		}

		home, err := render.Home(t, cfg.Data.SampleRows)
		if err != nil {
			return err
		}
		overview, err := render.Overview(t)
		if err != nil {
			return err
		}

		metrics := prettytable.NewWriter()
		metrics.SetOutputMirror(os.Stdout)
		metrics.SetTitle("Heart Disease Analysis")
		metrics.AppendHeader(prettytable.Row{"Metric", "Value"})
		for _, m := range home.Metrics {
			metrics.AppendRow(prettytable.Row{m.Label, m.Value})
		}
		metrics.Render()

		columns := prettytable.NewWriter()
		columns.SetOutputMirror(os.Stdout)
		columns.SetTitle("Columns")
		columns.AppendHeader(prettytable.Row{"Column", "Kind", "Non Null", "Missing"})
		for _, report := range overview.Reports {
			columns.AppendRow(prettytable.Row{report.Name, report.Kind, report.NonMissing, report.Missing})
		}
		columns.Render()

		summary := prettytable.NewWriter()
		summary.SetOutputMirror(os.Stdout)
		summary.SetTitle("Statistical Summary")
		summary.AppendHeader(prettytable.Row{"Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"})
		for _, s := range overview.Summaries {
			summary.AppendRow(prettytable.Row{s.Column, s.Count, s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max})
		}
		summary.SetStyle(prettytable.StyleLight)
		summary.Render()

		sample := prettytable.NewWriter()
		sample.SetOutputMirror(os.Stdout)
		sample.SetTitle("Sample Data")
		header := prettytable.Row{}
		for _, name := range home.Columns {
			header = append(header, name)
		}
		sample.AppendHeader(header)
		for _, row := range home.SampleRows {
			out := prettytable.Row{}
			for _, cell := range row {
				out = append(out, cell)
			}
			sample.AppendRow(out)
		}
		sample.Render()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
