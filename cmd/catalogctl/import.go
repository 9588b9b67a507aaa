package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fr0stylo/partnerhub/internal/adapters/sqlite"
	appservices "github.com/fr0stylo/partnerhub/internal/app/services"
	"github.com/fr0stylo/partnerhub/internal/config"
	"github.com/fr0stylo/partnerhub/internal/db"
	"github.com/fr0stylo/partnerhub/pkg/catalogclient"
)

const tokenEnv = "PARTNERHUB_TOKEN"

var importCmd = &cobra.Command{
	Use:   "import FILE...",
	Short: "Import catalog files for one vendor",
	Long: `Import catalog CSV files for the vendor owning --token.

Without --server the files are written straight into the local database.
With --server they are uploaded to a running partnerhub instance.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImportCmd,
}

// importOutcome is the per-file result shared by local and remote imports.
type importOutcome struct {
	ImportID         string         `json:"import_id,omitempty"`
	SourceType       string         `json:"source_type"`
	TotalRows        int            `json:"total_rows"`
	Accepted         int            `json:"accepted"`
	Rejected         int            `json:"rejected"`
	InventoryCreated int            `json:"inventory_created"`
	Rejections       []rejectedLine `json:"rejections"`
	DryRun           bool           `json:"dry_run"`
}

type rejectedLine struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type fileResult struct {
	Path    string         `json:"path"`
	Outcome *importOutcome `json:"outcome,omitempty"`
	Error   string         `json:"error,omitempty"`
}

type importFunc func(ctx context.Context, path string, body []byte) (importOutcome, error)

func init() {
	importCmd.Flags().String("token", "", "Vendor API token (defaults to $"+tokenEnv+")")
	importCmd.Flags().StringP("source", "s", "", "Source type of the files, e.g. storefront_export")
	importCmd.Flags().Bool("dry-run", false, "Normalize and report without writing products")
	importCmd.Flags().IntP("parallel", "p", 1, "Number of files imported concurrently")
	importCmd.Flags().String("server", "", "Upload to this partnerhub base URL instead of the local database")
}

func runImportCmd(cmd *cobra.Command, args []string) error {
	token := resolveToken(cmd)
	source, _ := cmd.Flags().GetString("source")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	parallel, _ := cmd.Flags().GetInt("parallel")
	serverURL, _ := cmd.Flags().GetString("server")

	var run importFunc
	if strings.TrimSpace(serverURL) != "" {
		run = remoteImporter(catalogclient.Client{Endpoint: serverURL, Token: token}, source, dryRun)
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

		svc := appservices.NewCatalogImportService(sqlite.NewSharedCatalogStoreFactory(database), appservices.CatalogImportConfig{
			MaxUploadBytes: cfg.Catalog.MaxUploadBytes,
			DefaultSource:  cfg.Catalog.DefaultSource,
			Logger:         slog.Default(),
		})
		run = localImporter(svc, token, source, dryRun)
	}

	results := importFiles(cmd.Context(), args, parallel, run)
	if jsonOutput(cmd) {
		if err := printJSON(cmd.OutOrStdout(), results); err != nil {
			return err
		}
	} else if err := printImportResults(cmd.OutOrStdout(), results); err != nil {
		return err
	}

	failed := 0
	for _, result := range results {
		if result.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

// importFiles runs at most parallel imports at a time. A failing file does not
// stop the others; results keep the order of paths.
func importFiles(ctx context.Context, paths []string, parallel int, run importFunc) []fileResult {
	results := make([]fileResult, len(paths))

	var group errgroup.Group
	group.SetLimit(max(parallel, 1))
	for i, path := range paths {
		group.Go(func() error {
			result := fileResult{Path: path}
			outcome, err := importFile(ctx, path, run)
			if err != nil {
				result.Error = err.Error()
				slog.WarnContext(ctx, "catalog file failed", "path", path, "error", err)
			} else {
				result.Outcome = &outcome
				slog.InfoContext(ctx, "catalog file imported", "path", path, "accepted", outcome.Accepted, "rejected", outcome.Rejected)
			}
			results[i] = result
			return nil
		})
	}
	_ = group.Wait()
	return results
}

func importFile(ctx context.Context, path string, run importFunc) (importOutcome, error) {
	if err := ctx.Err(); err != nil {
		return importOutcome{}, err
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return importOutcome{}, err
	}
	return run(ctx, path, body)
}

func localImporter(svc *appservices.CatalogImportService, token, source string, dryRun bool) importFunc {
	return func(ctx context.Context, _ string, body []byte) (importOutcome, error) {
		summary, err := svc.Import(ctx, appservices.ImportCommand{
			AuthorizationHeader: "Bearer " + token,
			SourceType:          source,
			Body:                body,
			DryRun:              dryRun,
		})
		if err != nil {
			return importOutcome{}, err
		}
		outcome := importOutcome{
			ImportID:         summary.ImportID,
			SourceType:       summary.SourceType,
			TotalRows:        summary.TotalRows,
			Accepted:         summary.Accepted,
			Rejected:         summary.Rejected,
			InventoryCreated: summary.InventoryCreated,
			Rejections:       make([]rejectedLine, 0, len(summary.Rejections)),
			DryRun:           summary.DryRun,
		}
		for _, rejection := range summary.Rejections {
			outcome.Rejections = append(outcome.Rejections, rejectedLine{Line: rejection.Line, Reason: rejection.Reason})
		}
		return outcome, nil
	}
}

func remoteImporter(client catalogclient.Client, source string, dryRun bool) importFunc {
	return func(ctx context.Context, path string, body []byte) (importOutcome, error) {
		summary, err := client.Upload(ctx, catalogclient.Upload{
			Source:   source,
			Filename: filepath.Base(path),
			Body:     body,
			DryRun:   dryRun,
		})
		if err != nil {
			return importOutcome{}, err
		}
		outcome := importOutcome{
			ImportID:         summary.ImportID,
			SourceType:       summary.SourceType,
			TotalRows:        summary.TotalRows,
			Accepted:         summary.Accepted,
			Rejected:         summary.Rejected,
			InventoryCreated: summary.InventoryCreated,
			Rejections:       make([]rejectedLine, 0, len(summary.Rejections)),
			DryRun:           summary.DryRun,
		}
		for _, rejection := range summary.Rejections {
			outcome.Rejections = append(outcome.Rejections, rejectedLine{Line: rejection.Line, Reason: rejection.Reason})
		}
		return outcome, nil
	}
}

func printImportResults(w io.Writer, results []fileResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tIMPORT\tSOURCE\tROWS\tACCEPTED\tREJECTED\tINVENTORY\tERROR")
	for _, result := range results {
		if result.Outcome == nil {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t-\t-\t%s\n", result.Path, result.Error)
			continue
		}
		o := result.Outcome
		importID := o.ImportID
		if o.DryRun {
			importID = "(dry run)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t\n", result.Path, importID, o.SourceType, o.TotalRows, o.Accepted, o.Rejected, o.InventoryCreated)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, result := range results {
		if result.Outcome == nil {
			continue
		}
		for _, rejection := range result.Outcome.Rejections {
			fmt.Fprintf(w, "%s:%d: %s\n", result.Path, rejection.Line, rejection.Reason)
		}
	}
	return nil
}

func resolveToken(cmd *cobra.Command) string {
	token, _ := cmd.Flags().GetString("token")
	if strings.TrimSpace(token) == "" {
		token = os.Getenv(tokenEnv)
	}
	return strings.TrimSpace(token)
}
