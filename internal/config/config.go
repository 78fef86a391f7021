// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tombee/soarmcp/internal/log"
	"github.com/tombee/soarmcp/internal/secrets"
	"github.com/tombee/soarmcp/internal/tracing"
	soarerrors "github.com/tombee/soarmcp/pkg/errors"
)

// DefaultTimeout bounds every SOAR request when nothing else is configured.
const DefaultTimeout = 30 * time.Second

// Config represents the complete soar-mcp configuration.
type Config struct {
	SOAR SOARConfig `yaml:"soar"`

	// Integrations is the allow-list used when --integrations is not given.
	Integrations []string `yaml:"integrations,omitempty"`

	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// SOARConfig locates and authenticates against the SOAR platform.
type SOARConfig struct {
	// URL is the SOAR base URL.
	// Environment: SOAR_URL
	URL string `yaml:"url"`

	// AppKey is the API key sent in the AppKey header. Prefer the
	// environment or the keychain over storing it in the file.
	// Environment: SOAR_APP_KEY
	AppKey string `yaml:"app_key,omitempty"`

	// CAFile is an optional PEM bundle trusted in addition to the system roots.
	// Environment: SOAR_CA_FILE
	CAFile string `yaml:"ca_file,omitempty"`

	// Timeout bounds each SOAR request.
	// Environment: SOAR_TIMEOUT
	// Default: 30s
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// LogConfig configures logging. Output always goes to stderr.
type LogConfig struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	AddSource bool   `yaml:"add_source,omitempty"`
}

// TelemetryConfig configures tracing export and the metrics endpoint.
type TelemetryConfig struct {
	// Exporter is none, console, otlp or otlp-http.
	// Environment: SOAR_MCP_TRACE_EXPORTER
	Exporter string `yaml:"exporter"`

	// Endpoint is the OTLP collector endpoint.
	// Environment: OTEL_EXPORTER_OTLP_ENDPOINT
	Endpoint string `yaml:"endpoint,omitempty"`

	// Insecure disables TLS towards the collector.
	Insecure bool `yaml:"insecure,omitempty"`

	// MetricsAddr serves Prometheus /metrics when set (e.g. 127.0.0.1:9464).
	MetricsAddr string `yaml:"metrics_addr,omitempty"`
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		SOAR: SOARConfig{
			Timeout: DefaultTimeout,
		},
		Log: LogConfig{
			Level:  "info",
			Format: string(log.FormatJSON),
		},
		Telemetry: TelemetryConfig{
			Exporter: tracing.ExporterNone,
		},
	}
}

// Load reads configuration from the file at configPath, falling back to
// the default path, then applies environment overrides. A missing file at
// the default path is not an error; a missing explicit path is.
//
// Load does not validate: callers apply flag overrides first and then
// call Validate.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	path := configPath
	if path == "" {
		p, err := ConfigPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		err := cfg.loadFromFile(path)
		switch {
		case err == nil:
		case configPath == "" && errors.Is(err, os.ErrNotExist):
		default:
			return nil, &soarerrors.ConfigError{
				Key:    "config_file",
				Reason: fmt.Sprintf("failed to load from %s", path),
				Hint:   "check the --config path and YAML syntax",
				Cause:  err,
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills in zero values left by a partial config file.
func (c *Config) applyDefaults() {
	defaults := Default()

	if c.SOAR.Timeout == 0 {
		c.SOAR.Timeout = defaults.SOAR.Timeout
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = defaults.Log.Format
	}
	if c.Telemetry.Exporter == "" {
		c.Telemetry.Exporter = defaults.Telemetry.Exporter
	}
}

func (c *Config) loadFromFile(path string) error {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	return nil
}

// loadFromEnv loads configuration from environment variables.
func (c *Config) loadFromEnv() error {
	// SOAR connection
	if val := os.Getenv("SOAR_URL"); val != "" {
		c.SOAR.URL = val
	}
	if val := os.Getenv("SOAR_APP_KEY"); val != "" {
		c.SOAR.AppKey = val
	}
	if val := os.Getenv("SOAR_CA_FILE"); val != "" {
		c.SOAR.CAFile = val
	}
	if val := os.Getenv("SOAR_TIMEOUT"); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			return &soarerrors.ConfigError{
				Key:    "soar.timeout",
				Reason: fmt.Sprintf("SOAR_TIMEOUT %q is not a duration", val),
				Hint:   "use a Go duration such as 30s or 2m",
				Cause:  err,
			}
		}
		c.SOAR.Timeout = d
	}

	// Logging. SOAR_MCP_DEBUG wins over any level.
	debug := os.Getenv("SOAR_MCP_DEBUG")
	if debug == "true" || debug == "1" {
		c.Log.Level = "debug"
		c.Log.AddSource = true
	} else if val := os.Getenv("SOAR_MCP_LOG_LEVEL"); val != "" {
		c.Log.Level = strings.ToLower(val)
	} else if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = strings.ToLower(val)
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = strings.ToLower(val)
	}
	if val := os.Getenv("LOG_SOURCE"); val != "" {
		c.Log.AddSource = val == "1" || strings.ToLower(val) == "true"
	}

	// Telemetry
	if val := os.Getenv("SOAR_MCP_TRACE_EXPORTER"); val != "" {
		c.Telemetry.Exporter = strings.ToLower(val)
	}
	if val := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); val != "" {
		c.Telemetry.Endpoint = val
	}

	return nil
}

// ResolveAppKey reads the app key from the keychain when neither the file
// nor the environment supplied one. Keychain errors are ignored.
func (c *Config) ResolveAppKey(ctx context.Context, backend secrets.SecretBackend) {
	if c.SOAR.AppKey != "" {
		return
	}
	if key, err := secrets.Lookup(ctx, backend, secrets.AppKeyItem); err == nil {
		c.SOAR.AppKey = key
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.SOAR.URL == "" {
		return &soarerrors.ConfigError{
			Key:    "soar.url",
			Reason: "SOAR URL is not set",
			Hint:   "set SOAR_URL or soar.url in the config file",
		}
	}
	u, err := url.Parse(c.SOAR.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &soarerrors.ConfigError{
			Key:    "soar.url",
			Reason: fmt.Sprintf("%q is not an http(s) URL", c.SOAR.URL),
			Hint:   "use the base URL of the SOAR platform, e.g. https://soar.example.com",
			Cause:  err,
		}
	}
	if c.SOAR.Timeout <= 0 {
		return &soarerrors.ConfigError{
			Key:    "soar.timeout",
			Reason: fmt.Sprintf("timeout must be positive, got %v", c.SOAR.Timeout),
		}
	}
	if err := c.Logging().Validate(); err != nil {
		return &soarerrors.ConfigError{Key: "log", Reason: err.Error(), Cause: err}
	}
	if err := c.Tracing("").Validate(); err != nil {
		return &soarerrors.ConfigError{
			Key:    "telemetry.exporter",
			Reason: err.Error(),
			Hint:   "set telemetry.exporter to none, console, otlp or otlp-http",
			Cause:  err,
		}
	}
	return nil
}

// Logging converts the log section into a logger configuration that
// writes to stderr.
func (c *Config) Logging() *log.Config {
	return &log.Config{
		Level:     c.Log.Level,
		Format:    log.Format(c.Log.Format),
		Output:    os.Stderr,
		AddSource: c.Log.AddSource,
	}
}

// Tracing converts the telemetry section into a tracing configuration.
func (c *Config) Tracing(version string) tracing.Config {
	return tracing.Config{
		ServiceName:    "soar-mcp",
		ServiceVersion: version,
		Exporter:       c.Telemetry.Exporter,
		Endpoint:       c.Telemetry.Endpoint,
		Insecure:       c.Telemetry.Insecure,
	}
}
