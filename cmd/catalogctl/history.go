package main

import (
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fr0stylo/partnerhub/internal/adapters/sqlite"
	appservices "github.com/fr0stylo/partnerhub/internal/app/services"
	"github.com/fr0stylo/partnerhub/internal/config"
	"github.com/fr0stylo/partnerhub/internal/db"
	"github.com/fr0stylo/partnerhub/pkg/catalogclient"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List a vendor's recent imports",
	Args:  cobra.NoArgs,
	RunE:  runHistoryCmd,
}

func init() {
	historyCmd.Flags().String("token", "", "Vendor API token (defaults to $"+tokenEnv+")")
	historyCmd.Flags().Int("limit", 20, "Maximum number of imports to show")
	historyCmd.Flags().String("server", "", "Read from this partnerhub base URL instead of the local database")
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	token := resolveToken(cmd)
	limit, _ := cmd.Flags().GetInt("limit")
	serverURL, _ := cmd.Flags().GetString("server")

	var runs []catalogclient.ImportRun
	if strings.TrimSpace(serverURL) != "" {
		remote, err := catalogclient.Client{Endpoint: serverURL, Token: token}.ListImports(cmd.Context(), limit)
		if err != nil {
			return err
		}
		runs = remote
	} else {
		cfg, err := config.LoadWithoutSecrets()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		database, err := db.New(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		svc := appservices.NewCatalogImportService(sqlite.NewSharedCatalogStoreFactory(database), appservices.CatalogImportConfig{Logger: slog.Default()})
		local, err := svc.ListImports(cmd.Context(), "Bearer "+token, limit)
		if err != nil {
			return err
		}
		for _, run := range local {
			converted := catalogclient.ImportRun{
				ID:               run.ID,
				SourceType:       run.SourceType,
				TotalRows:        run.TotalRows,
				Accepted:         run.AcceptedCount,
				Rejected:         run.RejectedCount,
				InventoryCreated: run.InventoryCount,
				Status:           run.Status,
				CreatedAt:        run.CreatedAt,
			}
			for _, rejection := range run.Rejections {
				converted.Rejections = append(converted.Rejections, catalogclient.Rejection{Line: rejection.Line, Reason: rejection.Reason})
			}
			runs = append(runs, converted)
		}
	}

	if jsonOutput(cmd) {
		if runs == nil {
			runs = []catalogclient.ImportRun{}
		}
		return printJSON(cmd.OutOrStdout(), runs)
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "IMPORT\tCREATED\tSOURCE\tROWS\tACCEPTED\tREJECTED\tINVENTORY\tSTATUS")
	for _, run := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%s\n", run.ID, run.CreatedAt, run.SourceType, run.TotalRows, run.Accepted, run.Rejected, run.InventoryCreated, run.Status)
	}
	return tw.Flush()
}
