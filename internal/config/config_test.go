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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/tombee/soarmcp/internal/secrets"
	soarerrors "github.com/tombee/soarmcp/pkg/errors"
)

var envKeys = []string{
	"SOAR_URL", "SOAR_APP_KEY", "SOAR_CA_FILE", "SOAR_TIMEOUT",
	"SOAR_MCP_DEBUG", "SOAR_MCP_LOG_LEVEL", "LOG_LEVEL", "LOG_FORMAT", "LOG_SOURCE",
	"SOAR_MCP_TRACE_EXPORTER", "OTEL_EXPORTER_OTLP_ENDPOINT",
}

// cleanEnv isolates a test from the caller's environment and config dir.
func cleanEnv(t *testing.T) string {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	cleanEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, cfg.SOAR.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "none", cfg.Telemetry.Exporter)
	assert.Empty(t, cfg.Integrations)
}

func TestLoad_DefaultPathFile(t *testing.T) {
	dir := cleanEnv(t)
	writeConfig(t, filepath.Join(dir, "soar-mcp", "config.yaml"), `
soar:
  url: https://soar.example.com
  timeout: 45s
integrations: [shodan, httpv2]
log:
  level: debug
telemetry:
  exporter: otlp
  endpoint: collector:4317
  metrics_addr: 127.0.0.1:9464
`)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://soar.example.com", cfg.SOAR.URL)
	assert.Equal(t, 45*time.Second, cfg.SOAR.Timeout)
	assert.Equal(t, []string{"shodan", "httpv2"}, cfg.Integrations)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "127.0.0.1:9464", cfg.Telemetry.MetricsAddr)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := cleanEnv(t)
	path := filepath.Join(dir, "custom.yaml")
	writeConfig(t, path, "soar:\n  url: https://file.example.com\n  app_key: from-file\nlog:\n  level: warn\n")

	t.Setenv("SOAR_URL", "https://env.example.com")
	t.Setenv("SOAR_TIMEOUT", "5s")
	t.Setenv("SOAR_MCP_LOG_LEVEL", "ERROR")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SOAR_MCP_TRACE_EXPORTER", "Console")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.SOAR.URL)
	assert.Equal(t, "from-file", cfg.SOAR.AppKey)
	assert.Equal(t, 5*time.Second, cfg.SOAR.Timeout)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Telemetry.Exporter)
}

func TestLoad_DebugWins(t *testing.T) {
	cleanEnv(t)
	t.Setenv("SOAR_MCP_DEBUG", "1")
	t.Setenv("SOAR_MCP_LOG_LEVEL", "error")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.AddSource)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		dir := cleanEnv(t)
		_, err := Load(filepath.Join(dir, "nope.yaml"))
		var ce *soarerrors.ConfigError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "config_file", ce.Key)
	})

	t.Run("bad yaml", func(t *testing.T) {
		dir := cleanEnv(t)
		path := filepath.Join(dir, "bad.yaml")
		writeConfig(t, path, "soar: [unterminated")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("bad timeout", func(t *testing.T) {
		cleanEnv(t)
		t.Setenv("SOAR_TIMEOUT", "soon")
		_, err := Load("")
		var ce *soarerrors.ConfigError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "soar.timeout", ce.Key)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.SOAR.URL = "https://soar.example.com"
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing url", mutate: func(c *Config) { c.SOAR.URL = "" }, key: "soar.url"},
		{name: "ftp url", mutate: func(c *Config) { c.SOAR.URL = "ftp://soar.example.com" }, key: "soar.url"},
		{name: "no host", mutate: func(c *Config) { c.SOAR.URL = "https://" }, key: "soar.url"},
		{name: "zero timeout", mutate: func(c *Config) { c.SOAR.Timeout = 0 }, key: "soar.timeout"},
		{name: "negative timeout", mutate: func(c *Config) { c.SOAR.Timeout = -time.Second }, key: "soar.timeout"},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }, key: "log"},
		{name: "bad format", mutate: func(c *Config) { c.Log.Format = "xml" }, key: "log"},
		{name: "bad exporter", mutate: func(c *Config) { c.Telemetry.Exporter = "zipkin" }, key: "telemetry.exporter"},
		{name: "otlp without endpoint", mutate: func(c *Config) { c.Telemetry.Exporter = "otlp" }, key: "telemetry.exporter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.key == "" {
				assert.NoError(t, err)
				return
			}
			var ce *soarerrors.ConfigError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.key, ce.Key)
			assert.True(t, ce.IsUserVisible())
		})
	}
}

func TestResolveAppKey(t *testing.T) {
	ctx := context.Background()

	t.Run("keychain fallback", func(t *testing.T) {
		keyring.MockInit()
		kc := secrets.NewKeychainBackend()
		require.NoError(t, kc.Set(ctx, secrets.AppKeyItem, "from-keychain"))

		cfg := Default()
		cfg.ResolveAppKey(ctx, kc)
		assert.Equal(t, "from-keychain", cfg.SOAR.AppKey)
	})

	t.Run("env wins", func(t *testing.T) {
		keyring.MockInit()
		kc := secrets.NewKeychainBackend()
		require.NoError(t, kc.Set(ctx, secrets.AppKeyItem, "from-keychain"))

		cfg := Default()
		cfg.SOAR.AppKey = "from-env"
		cfg.ResolveAppKey(ctx, kc)
		assert.Equal(t, "from-env", cfg.SOAR.AppKey)
	})

	t.Run("nothing stored", func(t *testing.T) {
		keyring.MockInit()
		cfg := Default()
		cfg.ResolveAppKey(ctx, secrets.NewKeychainBackend())
		assert.Empty(t, cfg.SOAR.AppKey)
	})
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "soar-mcp", "config.yaml"), path)
}

func TestTracingAndLogging(t *testing.T) {
	cfg := Default()
	cfg.Telemetry.Exporter = "otlp-http"
	cfg.Telemetry.Endpoint = "collector:4318"
	cfg.Telemetry.Insecure = true

	tc := cfg.Tracing("1.0.0")
	assert.Equal(t, "soar-mcp", tc.ServiceName)
	assert.Equal(t, "1.0.0", tc.ServiceVersion)
	assert.Equal(t, "otlp-http", tc.Exporter)
	assert.True(t, tc.Insecure)

	lc := cfg.Logging()
	assert.Equal(t, os.Stderr, lc.Output)
	assert.Equal(t, "info", lc.Level)
}
