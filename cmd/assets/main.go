// Package main is the entry point for the asset creation console.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/fd1az/asset-console/business/assets"
	"github.com/fd1az/asset-console/business/assets/app"
	assetsDI "github.com/fd1az/asset-console/business/assets/di"
	"github.com/fd1az/asset-console/business/assets/infra"
	"github.com/fd1az/asset-console/internal/apm"
	"github.com/fd1az/asset-console/internal/apperror"
	"github.com/fd1az/asset-console/internal/config"
	"github.com/fd1az/asset-console/internal/health"
	"github.com/fd1az/asset-console/internal/logger"
	"github.com/fd1az/asset-console/internal/metrics"
	"github.com/fd1az/asset-console/internal/monolith"
	"github.com/fd1az/asset-console/pkg/ui"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	// Parse flags
	configPath := flag.String("config", "", "Path to configuration file")
	cliMode := flag.Bool("cli", false, "Run non-interactively using the field flags (no TUI)")
	showVersion := flag.Bool("version", false, "Show version information")
	fields := registerFieldFlags(flag.CommandLine)
	flag.Parse()

	if *showVersion {
		fmt.Printf("asset-console %s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	// TUI is the default, CLI is for scripting
	tuiMode := !*cliMode
	if tuiMode && !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "stdin is not a terminal, running in CLI mode")
		tuiMode = false
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath, tuiMode, fields); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(apperror.ExitCodeOf(err))
	}
}

func run(ctx context.Context, configPath string, tuiMode bool, fields *fieldFlags) error {
	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger (only log to stderr in CLI mode)
	logLevel := logger.ParseLevel(cfg.App.LogLevel)

	var log *logger.Logger
	if tuiMode {
		// In TUI mode, suppress logs (discard output)
		log = logger.New(io.Discard, logLevel, cfg.App.Name, apm.TraceIDFromContext)
	} else {
		log = logger.New(os.Stderr, logLevel, cfg.App.Name, apm.TraceIDFromContext)
		log.Info(ctx, "starting asset console",
			"version", version,
			"environment", cfg.App.Environment,
		)
	}

	// Initialize observability if enabled
	if cfg.Telemetry.Enabled {
		shutdown, err := setupTelemetry(ctx, cfg, log, tuiMode, healthChecker(cfg))
		if err != nil {
			return err
		}
		defer shutdown()
	}

	// Create monolith (application container)
	mono, err := monolith.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create monolith: %w", err)
	}

	// Reporter: the file when configured, otherwise stdout. The TUI owns the
	// terminal while it runs, so its record is buffered and printed on exit.
	var (
		reporter app.Reporter
		pending  bytes.Buffer
	)
	switch {
	case cfg.Assets.Output != "":
		reporter = infra.NewFileReporter(cfg.Assets.Output)
	case tuiMode:
		reporter = infra.NewJSONReporter(&pending)
	default:
		reporter = infra.MultiReporter{
			infra.NewJSONReporter(os.Stdout),
			infra.NewConsoleReporter(os.Stderr),
		}
	}

	modules := []monolith.Module{
		&assets.Module{Reporter: reporter},
	}

	// Register all module services
	if err := mono.RegisterModules(modules...); err != nil {
		return fmt.Errorf("failed to register modules: %w", err)
	}
	if err := mono.StartModules(ctx, modules...); err != nil {
		return fmt.Errorf("failed to start modules: %w", err)
	}

	svc := assetsDI.GetCreationService(mono.Services())

	if !tuiMode {
		return runCLI(ctx, svc, fields, log)
	}

	if err := runTUI(ctx, mono, configPath, svc); err != nil {
		return err
	}
	_, err = pending.WriteTo(os.Stdout)
	return err
}

func runTUI(ctx context.Context, mono monolith.Monolith, configPath string, svc *app.CreationService) error {
	log := mono.Logger()

	// Keep the existing ids current while the form is open.
	watching := config.Watch(configPath, func(cfg *config.Config, err error) {
		if err != nil {
			ui.Send(ui.ErrorMsg{Error: err})
			return
		}
		reg, err := cfg.Assets.Registry()
		if err != nil {
			ui.Send(ui.ErrorMsg{Error: err})
			return
		}
		mono.AssetRegistry().Replace(reg)
		ui.Send(ui.AssetsChangedMsg{Count: reg.Count()})
	})
	log.Debug(ctx, "config watch", "enabled", watching)

	final, err := ui.Run(ui.New(ctx, svc, mono.Config().Assets.Accounts))
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	if !final.Submitted() {
		log.Info(ctx, "asset creation cancelled")
	}
	return nil
}

// setupTelemetry installs tracing and metrics and returns their shutdown.
func setupTelemetry(ctx context.Context, cfg *config.Config, log *logger.Logger, tuiMode bool, checker *health.Checker) (func(), error) {
	provider := apm.Provider(cfg.Telemetry.TraceProvider)
	if tuiMode && provider == apm.ConsoleProvider {
		// Console spans would draw over the TUI.
		log.Warn(ctx, "console trace provider disabled in TUI mode")
		provider = apm.EmptyProvider
	}

	traceProvider, err := apm.NewTraceProvider(log, apm.Options{
		Provider:    provider,
		ServiceName: cfg.Telemetry.ServiceName,
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		Headers:     cfg.Telemetry.OTLPHeaders,
	})
	if err != nil {
		return nil, apperror.Config("telemetry.trace_provider", err)
	}

	// Initialize metrics with Prometheus
	meterProvider, err := metrics.NewMetricProvider(
		metrics.WithServiceName(cfg.Telemetry.ServiceName),
		metrics.WithProviderConfig(metrics.ProviderCfg{
			Provider: metrics.PrometheusProvider,
		}),
	)
	if err != nil {
		_ = traceProvider.Stop()
		return nil, apperror.Config("telemetry.metrics", err)
	}

	promServer := metrics.NewPromServer(
		metrics.WithPort(strconv.Itoa(cfg.Telemetry.PrometheusPort)),
		metrics.WithRoute("/health", checker),
	)
	promServer.Start(func(err error) {
		log.Error(ctx, "prometheus metrics server failed", "error", err)
	})
	log.Info(ctx, "prometheus metrics server started", "port", cfg.Telemetry.PrometheusPort)

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := errors.Join(
			promServer.Stop(shutdownCtx),
			meterProvider.Shutdown(shutdownCtx),
			traceProvider.Stop(),
		)
		if err != nil {
			log.Warn(shutdownCtx, "telemetry shutdown", "error", err)
		}
	}, nil
}

// healthChecker reports whether the configured assets can still be loaded.
func healthChecker(cfg *config.Config) *health.Checker {
	checker := health.NewChecker(version)
	checker.RegisterCheck("asset_registry", func(context.Context) (bool, string) {
		reg, err := cfg.Assets.Registry()
		if err != nil {
			return false, err.Error()
		}
		return true, fmt.Sprintf("%d existing assets", reg.Count())
	})
	return checker
}
