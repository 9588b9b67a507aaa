package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fr0stylo/partnerhub/pkg/csvimport"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List supported upload source types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		sources := csvimport.SupportedSources()
		if jsonOutput(cmd) {
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"sources":          sources,
				"template_headers": csvimport.TemplateHeaders,
			})
		}
		for _, source := range sources {
			fmt.Fprintln(cmd.OutOrStdout(), source)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s template header:\n%s\n", csvimport.SourcePartnerhubTemplate, strings.Join(csvimport.TemplateHeaders, ","))
		return nil
	},
}
