package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/fr0stylo/partnerhub/internal/config"
	"github.com/fr0stylo/partnerhub/internal/db"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print catalog table sizes and recent import volume",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		windowDays, _ := cmd.Flags().GetInt("window-days")
		dbPath, _ := cmd.Flags().GetString("db")

		if dbPath == "" {
			cfg, err := config.LoadWithoutSecrets()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			dbPath = cfg.Database.Path
		}
		database, err := db.New(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		shape, err := database.CatalogShape(cmd.Context(), time.Now(), windowDays)
		if err != nil {
			return err
		}
		if jsonOutput(cmd) {
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"vendors":   shape.Vendors,
				"imports":   shape.Imports,
				"products":  shape.Products,
				"inventory": shape.Inventory,
				"daily":     shape.Daily,
				"latency":   database.QueryLatencyStats(),
			})
		}
		printShape(cmd.OutOrStdout(), shape, windowDays, database.QueryLatencyStats())
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("window-days", 30, "Days of import volume to show")
	statsCmd.Flags().String("db", "", "Database path without .sqlite suffix (defaults to PARTNERHUB_DB_PATH)")
}

func printShape(w io.Writer, shape db.Shape, windowDays int, latency []db.QueryLatency) {
	fmt.Fprintf(w, "vendors: %d\n", shape.Vendors)
	fmt.Fprintf(w, "catalog_imports: %d\n", shape.Imports)
	fmt.Fprintf(w, "products: %d\n", shape.Products)
	fmt.Fprintf(w, "inventory: %d\n", shape.Inventory)

	if windowDays > 0 {
		fmt.Fprintf(w, "\nImports in the last %dd:\n", windowDays)
		if len(shape.Daily) == 0 {
			fmt.Fprintln(w, "- none")
		}
		for _, day := range shape.Daily {
			fmt.Fprintf(w, "- %s: %d imports, %d accepted, %d rejected\n", day.Day, day.Imports, day.Accepted, day.Rejected)
		}
	}

	if len(latency) > 0 {
		fmt.Fprintln(w, "\nQuery latency (this run):")
		for _, entry := range latency {
			fmt.Fprintf(w, "- %s: n=%d p50=%s max=%s\n", entry.Name, entry.Count, entry.P50, entry.Max)
		}
	}
}
