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

// Package serve implements the serve command, which runs the MCP stdio
// gateway in front of a SOAR platform.
package serve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tombee/soarmcp/internal/action"
	"github.com/tombee/soarmcp/internal/binding"
	"github.com/tombee/soarmcp/internal/casemgmt"
	"github.com/tombee/soarmcp/internal/commands/completion"
	"github.com/tombee/soarmcp/internal/commands/shared"
	"github.com/tombee/soarmcp/internal/config"
	"github.com/tombee/soarmcp/internal/integration"
	"github.com/tombee/soarmcp/internal/log"
	"github.com/tombee/soarmcp/internal/mcp/server"
	"github.com/tombee/soarmcp/internal/secrets"
	"github.com/tombee/soarmcp/internal/soar"
	"github.com/tombee/soarmcp/internal/tracing"
	soarerrors "github.com/tombee/soarmcp/pkg/errors"
)

const shutdownTimeout = 5 * time.Second

// Flags holds the serve command line.
type Flags struct {
	integrations    string
	integrationsSet bool
	logLevel        string
	metricsAddr     string
}

// NewCommand creates the serve command.
func NewCommand() *cobra.Command {
	f := &Flags{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the SOAR MCP server on stdio",
		Long: `Start the SOAR MCP (Model Context Protocol) server.

The server connects to SOAR, fetches the valid scopes and then serves MCP
over stdin/stdout. Case management tools are always available. Vendor
integrations are exposed only when named in --integrations (or in the
integrations list of the config file).

Configuration example for an MCP client:
  {
    "mcpServers": {
      "soar": {
        "command": "soar-mcp",
        "args": ["serve", "--integrations", "shodan,httpv2"],
        "env": {"SOAR_URL": "https://soar.example.com"}
      }
    }
  }

Run 'soar-mcp integrations list' to see the available integrations.`,
		Args: cobra.NoArgs,
		RunE: RunE(f),
	}
	AddFlags(cmd, f)
	return cmd
}

// AddFlags registers the serve flags on cmd. The root command calls it so
// that a bare "soar-mcp --integrations x" behaves like serve.
func AddFlags(cmd *cobra.Command, f *Flags) {
	cmd.Flags().StringVar(&f.integrations, "integrations", "", "Comma-separated integrations to enable (default: none)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Logging verbosity (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&f.metricsAddr, "metrics-addr", "", "Serve Prometheus /metrics on this address")

	_ = cmd.RegisterFlagCompletionFunc("integrations", completion.CompleteIntegrations)
	_ = cmd.RegisterFlagCompletionFunc("log-level", completion.CompleteLogLevels)
}

// RunE returns a cobra RunE that serves with f.
func RunE(f *Flags) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		f.integrationsSet = cmd.Flags().Changed("integrations")
		return run(f)
	}
}

func run(f *Flags) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(ctx, f, secrets.NewKeychainBackend())
	if err != nil {
		return err
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, shared.RenderWarn("stdin is a terminal; soar-mcp expects an MCP client on stdin/stdout"))
	}

	version, _, _ := shared.GetVersion()
	return Serve(ctx, cfg, Options{
		Allow:   allowList(cfg, f),
		Version: version,
		Logger:  log.New(cfg.Logging()),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
	})
}

// loadConfig reads the config file and environment, applies flag
// overrides, fills the app key from backend and validates the result.
func loadConfig(ctx context.Context, f *Flags, backend secrets.SecretBackend) (*config.Config, error) {
	cfg, err := config.Load(shared.GetConfigPath())
	if err != nil {
		return nil, err
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.metricsAddr != "" {
		cfg.Telemetry.MetricsAddr = f.metricsAddr
	}
	cfg.ResolveAppKey(ctx, backend)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// allowList prefers the flag, even when given empty, over the config file.
func allowList(cfg *config.Config, f *Flags) []string {
	if f.integrationsSet {
		return integration.ParseAllowList(f.integrations)
	}
	return integration.ParseAllowList(strings.Join(cfg.Integrations, ","))
}

// Options carries the process-level inputs of Serve.
type Options struct {
	Allow   []string
	Version string
	Logger  *slog.Logger
	Stdin   io.Reader
	Stdout  io.Writer
}

// Serve binds to SOAR, registers the case management tools and the
// allow-listed integrations, and serves MCP until ctx is done or stdin
// closes. No tool is registered before the scope set is known.
func Serve(ctx context.Context, cfg *config.Config, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	provider, err := tracing.NewProvider(ctx, cfg.Tracing(opts.Version))
	if err != nil {
		return soarerrors.Wrap(err, "failed to start telemetry")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := provider.Shutdown(sctx); err != nil {
			logger.Warn("telemetry shutdown failed", log.Error(err))
		}
	}()

	if cfg.Telemetry.MetricsAddr != "" {
		stopMetrics, err := serveMetrics(cfg.Telemetry.MetricsAddr, provider.MetricsHandler(), logger)
		if err != nil {
			return err
		}
		defer stopMetrics()
	}

	bc, err := binding.Bind(ctx, soar.Config{
		BaseURL:   cfg.SOAR.URL,
		AppKey:    cfg.SOAR.AppKey,
		CAFile:    cfg.SOAR.CAFile,
		Timeout:   cfg.SOAR.Timeout,
		UserAgent: "soar-mcp/" + opts.Version,
		Tracer:    provider.Tracer("soar-mcp/soar"),
	}, binding.WithLogger(logger), binding.WithMetrics(provider.Metrics()))
	if err != nil {
		return err
	}
	defer bc.Close()

	srv := server.NewServer(server.ServerConfig{
		Version: opts.Version,
		Logger:  logger,
		Metrics: provider.Metrics(),
		Tracer:  provider.Tracer("soar-mcp/mcp"),
	})

	d := action.FromBinding(bc,
		action.WithLogger(logger),
		action.WithTracer(provider.Tracer("soar-mcp/action")),
	)
	reg := action.NewRegistrar(srv, d, logger)

	if err := casemgmt.Register(reg, bc.Client, logger); err != nil {
		return soarerrors.Wrap(err, "failed to register case management tools")
	}

	activation := integration.Builtin(logger).Activate(reg, opts.Allow)
	logger.Info("tools registered",
		slog.Int("tools", len(reg.Tools())),
		slog.Any("integrations", activation.Enabled),
		slog.Int("failed", len(activation.Failed)),
	)

	return srv.Run(ctx, opts.Stdin, opts.Stdout)
}

// serveMetrics starts the Prometheus endpoint and returns a stop function.
func serveMetrics(addr string, handler http.Handler, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, soarerrors.Wrapf(err, "failed to listen on metrics address %s", addr)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	hs := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		if err := hs.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", log.Error(err))
		}
	}()
	logger.Info("serving metrics", slog.String("addr", ln.Addr().String()))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = hs.Shutdown(ctx)
	}, nil
}
