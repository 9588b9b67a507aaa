package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultMaxUploadBytes = 8 << 20
	minMaxUploadBytes     = 1 << 10
	maxMaxUploadBytes     = 64 << 20
)

// LocalSecretKey is the secret key used in local development when none is set.
const LocalSecretKey = "partnerhub-local-dev"


type Config struct {
	Environment   string
	Server        ServerConfig
	Database      DatabaseConfig
	Catalog       CatalogConfig
	Secrets       SecretsConfig
	Observability ObservabilityConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Path      string
	LogTiming bool
}

type CatalogConfig struct {
	MaxUploadBytes int64
	DefaultSource  string
}

type SecretsConfig struct {
	Key string
}

type ObservabilityConfig struct {
	Enabled           bool
	OTLPEndpoint      string
	OTLPTraceHeaders  map[string]string
	OTLPMetricHeaders map[string]string
	ServiceName       string
	ServiceVer        string
	SamplingRatio     float64
	MetricsConsole    bool
}

// Load reads configuration from the environment and requires a secret key
// outside local development.
func Load() (Config, error) {
	return load(true)
}

// LoadWithoutSecrets loads config for processes that never touch sealed
// vendor credentials, such as the HTTP server.
func LoadWithoutSecrets() (Config, error) {
	return load(false)
}

func load(requireSecretKey bool) (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("partnerhub_env", "")
	v.SetDefault("app_env", "")
	v.SetDefault("go_env", "")
	v.SetDefault("partnerhub_port", 8080)
	v.SetDefault("partnerhub_db_path", "data/partnerhub")
	v.SetDefault("partnerhub_db_timing", false)
	v.SetDefault("partnerhub_max_upload_bytes", defaultMaxUploadBytes)
	v.SetDefault("partnerhub_default_source", "")
	v.SetDefault("partnerhub_secret_key", "")
	v.SetDefault("partnerhub_otel_enabled", false)
	v.SetDefault("otel_exporter_otlp_endpoint", "")
	v.SetDefault("otel_exporter_otlp_headers", "")
	v.SetDefault("otel_exporter_otlp_traces_headers", "")
	v.SetDefault("otel_exporter_otlp_metrics_headers", "")
	v.SetDefault("otel_service_name", "partnerhub")
	v.SetDefault("partnerhub_version", "dev")
	v.SetDefault("otel_service_version", "")
	v.SetDefault("partnerhub_otel_sampling_ratio", 1.0)
	v.SetDefault("partnerhub_otel_metrics_console", false)

	env := resolveEnvironment(v)
	port := v.GetInt("partnerhub_port")
	if port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PARTNERHUB_PORT: %d", port)
	}

	maxUpload := v.GetInt64("partnerhub_max_upload_bytes")
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}
	if maxUpload < minMaxUploadBytes {
		maxUpload = minMaxUploadBytes
	}
	if maxUpload > maxMaxUploadBytes {
		maxUpload = maxMaxUploadBytes
	}

	samplingRatio := v.GetFloat64("partnerhub_otel_sampling_ratio")
	if samplingRatio < 0 {
		samplingRatio = 0
	}
	if samplingRatio > 1 {
		samplingRatio = 1
	}

	serviceName := strings.TrimSpace(v.GetString("otel_service_name"))
	if serviceName == "" {
		serviceName = "partnerhub"
	}

	serviceVersion := strings.TrimSpace(v.GetString("partnerhub_version"))
	if serviceVersion == "" {
		serviceVersion = strings.TrimSpace(v.GetString("otel_service_version"))
	}
	if serviceVersion == "" {
		serviceVersion = "dev"
	}

	otlpEndpoint := strings.TrimSpace(v.GetString("otel_exporter_otlp_endpoint"))
	otlpCommonHeaders := parseOTLPHeaders(v.GetString("otel_exporter_otlp_headers"))
	otlpTraceHeaders := parseOTLPHeaders(v.GetString("otel_exporter_otlp_traces_headers"))
	otlpMetricHeaders := parseOTLPHeaders(v.GetString("otel_exporter_otlp_metrics_headers"))
	metricsConsole := v.GetBool("partnerhub_otel_metrics_console")
	otelEnabled := v.GetBool("partnerhub_otel_enabled") || otlpEndpoint != "" || metricsConsole

	cfg := Config{
		Environment: env,
		Server:      ServerConfig{Port: port},
		Database: DatabaseConfig{
			Path:      strings.TrimSpace(v.GetString("partnerhub_db_path")),
			LogTiming: v.GetBool("partnerhub_db_timing"),
		},
		Catalog: CatalogConfig{
			MaxUploadBytes: maxUpload,
			DefaultSource:  strings.ToLower(strings.TrimSpace(v.GetString("partnerhub_default_source"))),
		},
		Secrets: SecretsConfig{
			Key: strings.TrimSpace(v.GetString("partnerhub_secret_key")),
		},
		Observability: ObservabilityConfig{
			Enabled:           otelEnabled,
			OTLPEndpoint:      otlpEndpoint,
			OTLPTraceHeaders:  mergeHeaderMaps(otlpCommonHeaders, otlpTraceHeaders),
			OTLPMetricHeaders: mergeHeaderMaps(otlpCommonHeaders, otlpMetricHeaders),
			ServiceName:       serviceName,
			ServiceVer:        serviceVersion,
			SamplingRatio:     samplingRatio,
			MetricsConsole:    metricsConsole,
		},
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = "data/partnerhub"
	}
	if requireSecretKey && !cfg.IsLocalDevelopment() && cfg.Secrets.Key == "" {
		return Config{}, fmt.Errorf("PARTNERHUB_SECRET_KEY is required outside local/dev environments")
	}
	if cfg.IsLocalDevelopment() && cfg.Secrets.Key == "" {
		cfg.Secrets.Key = LocalSecretKey
	}

	return cfg, nil
}

func parseOTLPHeaders(raw string) map[string]string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	out := make(map[string]string)
	for _, part := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func mergeHeaderMaps(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func (c Config) IsLocalDevelopment() bool {
	switch strings.ToLower(strings.TrimSpace(c.Environment)) {
	case "", "local", "dev", "development", "test":
		return true
	default:
		return false
	}
}

func resolveEnvironment(v *viper.Viper) string {
	for _, key := range []string{"partnerhub_env", "app_env", "go_env"} {
		value := strings.TrimSpace(v.GetString(key))
		if value != "" {
			return strings.ToLower(value)
		}
	}
	return ""
}
