package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fr0stylo/partnerhub/pkg/catalogclient"
	"github.com/fr0stylo/partnerhub/pkg/csvimport"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Upload generated catalogs to a server on an interval",
	Long: `Periodically generate a synthetic catalog and upload it to a running
partnerhub server. Settings come from a YAML file:

  endpoint: http://localhost:8080
  token: <vendor token>
  source: storefront_export
  rows: 200
  invalid_ratio: 0.05
  interval: 30s`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("config")
		once, _ := cmd.Flags().GetBool("once")

		cfg, err := loadFeedConfig(path)
		if err != nil {
			return err
		}
		client := catalogclient.Client{Endpoint: cfg.Endpoint, Token: cfg.Token}
		return runFeed(cmd.Context(), cfg, once, func(ctx context.Context, seed uint64) error {
			return feedOnce(ctx, client, cfg, seed)
		})
	},
}

func init() {
	feedCmd.Flags().String("config", "", "Path to YAML config")
	feedCmd.Flags().Bool("once", false, "Upload a single catalog and exit")
}

type feedConfig struct {
	Endpoint     string  `mapstructure:"endpoint"`
	Token        string  `mapstructure:"token"`
	Source       string  `mapstructure:"source"`
	Rows         int     `mapstructure:"rows"`
	InvalidRatio float64 `mapstructure:"invalid_ratio"`
	Interval     string  `mapstructure:"interval"`

	every time.Duration
}

func loadFeedConfig(path string) (feedConfig, error) {
	if strings.TrimSpace(path) == "" {
		return feedConfig{}, fmt.Errorf("config path is required")
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("source", string(csvimport.SourceStorefrontExport))
	v.SetDefault("rows", 100)
	v.SetDefault("invalid_ratio", 0.05)
	v.SetDefault("interval", "1m")
	if err := v.ReadInConfig(); err != nil {
		return feedConfig{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg feedConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return feedConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)
	cfg.Token = strings.TrimSpace(cfg.Token)
	cfg.Source = strings.TrimSpace(cfg.Source)
	if cfg.Endpoint == "" || cfg.Token == "" {
		return feedConfig{}, fmt.Errorf("config must include endpoint and token")
	}
	if cfg.Rows <= 0 {
		return feedConfig{}, fmt.Errorf("rows must be positive")
	}

	every, err := time.ParseDuration(strings.TrimSpace(cfg.Interval))
	if err != nil {
		return feedConfig{}, fmt.Errorf("invalid interval duration: %w", err)
	}
	if every <= 0 {
		return feedConfig{}, fmt.Errorf("interval must be positive")
	}
	cfg.every = every
	return cfg, nil
}

// runFeed calls send right away and then on every tick until ctx is done.
// Upload failures are logged and do not stop the loop.
func runFeed(ctx context.Context, cfg feedConfig, once bool, send func(context.Context, uint64) error) error {
	ticker := time.NewTicker(cfg.every)
	defer ticker.Stop()

	for seed := uint64(1); ; seed++ {
		if err := send(ctx, seed); err != nil {
			if once {
				return err
			}
			slog.ErrorContext(ctx, "feed upload failed", "error", err)
		}
		if once {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func feedOnce(ctx context.Context, client catalogclient.Client, cfg feedConfig, seed uint64) error {
	var body bytes.Buffer
	expected, err := writeSample(&body, sampleOptions{
		Source:       csvimport.ParseSourceType(cfg.Source),
		Rows:         cfg.Rows,
		InvalidRatio: cfg.InvalidRatio,
		Seed:         uint64(time.Now().UnixNano()) ^ seed,
	})
	if err != nil {
		return err
	}

	summary, err := client.Upload(ctx, catalogclient.Upload{
		Source:   cfg.Source,
		Filename: fmt.Sprintf("feed-%d.csv", seed),
		Body:     body.Bytes(),
	})
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "feed upload complete",
		"import_id", summary.ImportID,
		"accepted", summary.Accepted,
		"rejected", summary.Rejected,
		"expected_accepted", expected.Valid,
	)
	if summary.Accepted != expected.Valid {
		return fmt.Errorf("import %s accepted %d rows, expected %d", summary.ImportID, summary.Accepted, expected.Valid)
	}
	return nil
}
