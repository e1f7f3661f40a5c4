package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"heartscope/internal/config"
)

var (
	cfgFile string

	// Loaded configuration
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "heartscope",
	Short: "Heartscope: interactive heart-disease analysis dashboard",
	Long: `Heartscope loads a static heart-disease patient dataset, derives an
age-group attribute, and serves six statistical analysis pages over HTTP.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./heartscope.yaml)")
}

func loadConfig() {
	// .env is optional; env vars still apply without it.
	_ = godotenv.Load()

	c, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg = c
}
