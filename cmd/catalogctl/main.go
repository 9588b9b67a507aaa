package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/fr0stylo/partnerhub/internal/observability"
)

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Operate the partnerhub vendor catalog",
	Long: `catalogctl manages vendors and catalog imports against a local partnerhub
database, or pushes catalog files to a running server.

Examples:
  catalogctl vendor create "Acme Supplies"        # Register a vendor and print its API token
  catalogctl import --token T --source storefront_export products.csv
  catalogctl import --server http://localhost:8080 --token T *.csv
  catalogctl sample --rows 500 > products.csv      # Generate a synthetic storefront export`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := godotenv.Load(); err != nil {
			slog.Debug("No .env file loaded", "error", err)
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelInfo
		}
		handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
		slog.SetDefault(slog.New(observability.WrapSlogHandler(handler)))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log progress to stderr")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Print results as JSON")

	rootCmd.AddCommand(vendorCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func jsonOutput(cmd *cobra.Command) bool {
	enabled, _ := cmd.Flags().GetBool("json")
	return enabled
}

func printJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
