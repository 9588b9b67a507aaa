package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fr0stylo/partnerhub/internal/adapters/sqlite"
	appservices "github.com/fr0stylo/partnerhub/internal/app/services"
	"github.com/fr0stylo/partnerhub/internal/config"
	"github.com/fr0stylo/partnerhub/internal/db"
	"github.com/fr0stylo/partnerhub/internal/secrets"
)

var vendorCmd = &cobra.Command{
	Use:   "vendor",
	Short: "Manage vendors and their API tokens",
}

var vendorCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Register a vendor and print its API token once",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		credential, _ := cmd.Flags().GetString("storefront-credential")
		return withVendorService(func(svc *appservices.VendorService) error {
			created, err := svc.CreateVendor(cmd.Context(), args[0], credential)
			if err != nil {
				return err
			}
			if jsonOutput(cmd) {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"id":        created.Vendor.ID,
					"name":      created.Vendor.Name,
					"api_token": created.APIToken,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "vendor %d (%s) created\napi token: %s\n", created.Vendor.ID, created.Vendor.Name, created.APIToken)
			return nil
		})
	},
}

var vendorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vendors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withVendorService(func(svc *appservices.VendorService) error {
			vendors, err := svc.ListVendors(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput(cmd) {
				return printJSON(cmd.OutOrStdout(), vendors)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tENABLED\tCREDENTIAL\tCREATED")
			for _, vendor := range vendors {
				fmt.Fprintf(tw, "%d\t%s\t%t\t%t\t%s\n", vendor.ID, vendor.Name, vendor.Enabled, vendor.SealedStorefrontCredential != "", vendor.CreatedAt)
			}
			return tw.Flush()
		})
	},
}

var vendorEnableCmd = &cobra.Command{
	Use:   "enable ID",
	Short: "Accept uploads from a vendor again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setVendorEnabled(cmd, args[0], true)
	},
}

var vendorDisableCmd = &cobra.Command{
	Use:   "disable ID",
	Short: "Reject uploads from a vendor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setVendorEnabled(cmd, args[0], false)
	},
}

var vendorRevealCmd = &cobra.Command{
	Use:   "reveal-credential ID",
	Short: "Decrypt and print a vendor's storefront credential",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vendorID, err := parseVendorID(args[0])
		if err != nil {
			return err
		}
		return withVendorService(func(svc *appservices.VendorService) error {
			credential, err := svc.RevealStorefrontCredential(cmd.Context(), vendorID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), credential)
			return nil
		})
	},
}

func init() {
	vendorCreateCmd.Flags().String("storefront-credential", "", "Storefront API credential to store encrypted")

	vendorCmd.AddCommand(vendorCreateCmd)
	vendorCmd.AddCommand(vendorListCmd)
	vendorCmd.AddCommand(vendorEnableCmd)
	vendorCmd.AddCommand(vendorDisableCmd)
	vendorCmd.AddCommand(vendorRevealCmd)
}

func setVendorEnabled(cmd *cobra.Command, rawID string, enabled bool) error {
	vendorID, err := parseVendorID(rawID)
	if err != nil {
		return err
	}
	return withVendorService(func(svc *appservices.VendorService) error {
		if err := svc.SetVendorEnabled(cmd.Context(), vendorID, enabled); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "vendor %d enabled=%t\n", vendorID, enabled)
		return nil
	})
}

func parseVendorID(raw string) (int64, error) {
	vendorID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || vendorID <= 0 {
		return 0, fmt.Errorf("invalid vendor id %q", raw)
	}
	return vendorID, nil
}

func withVendorService(fn func(*appservices.VendorService) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	box, err := secrets.New(cfg.Secrets.Key)
	if err != nil {
		return fmt.Errorf("failed to initialize credential box: %w", err)
	}

	database, err := db.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	return fn(appservices.NewVendorService(sqlite.NewStore(database), box))
}
