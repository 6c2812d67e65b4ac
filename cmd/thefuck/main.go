package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/haiphamcoder/thefuck-go/internal/adapters/oscommand"
	"github.com/haiphamcoder/thefuck-go/internal/adapters/rules"
	"github.com/haiphamcoder/thefuck-go/internal/adapters/similarity"
	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
	"github.com/haiphamcoder/thefuck-go/internal/core/services/correction"
	"github.com/haiphamcoder/thefuck-go/internal/core/services/ruleregistry"
	"github.com/haiphamcoder/thefuck-go/internal/handlers/cli"
	"github.com/haiphamcoder/thefuck-go/internal/logging"
	"github.com/haiphamcoder/thefuck-go/internal/repositories/history"
	"github.com/haiphamcoder/thefuck-go/internal/repositories/settings"
)

// Version is set at build time
var Version = "dev"

func main() {
	settingsPath, err := settings.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving settings path: %v\n", err)
		os.Exit(1)
	}
	cfg, err := settings.Load(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	diag := logging.NewDiagnostics(logger)

	registry := ruleregistry.New()
	for _, rule := range rules.Defaults() {
		if err := registry.Register(rule); err != nil {
			fmt.Fprintf(os.Stderr, "Error registering rule: %v\n", err)
			os.Exit(1)
		}
	}
	applyRuleOverrides(registry, cfg)

	corrector := correction.NewService(
		registry,
		similarity.NewLevenshteinScorer(),
		diag,
		correction.Config{
			Concurrency:   cfg.Concurrency,
			RuleTimeout:   cfg.RuleTimeout(),
			MaxCandidates: cfg.MaxCandidates,
		},
	)

	executor := oscommand.NewOSCommandExecutor()
	applier := oscommand.NewEffectApplier(filepath.Base(os.Getenv("SHELL")), executor)

	// History access is best effort: without it, fix just requires the
	// failed command on the command line.
	var historyProvider ports.HistoryProvider
	if hp, err := history.NewHistoryProvider(executor, history.NewDefaultHistoryFileFinder()); err == nil {
		historyProvider = hp
	}

	rootCmd := cli.NewRootCommand(Version, cli.Dependencies{
		Corrector: corrector,
		Registry:  registry,
		Executor:  executor,
		Applier:   applier,
		History:   historyProvider,
		Settings:  cfg,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// applyRuleOverrides applies settings-file enable/disable overrides.
// Unknown names are not fatal; the settings file may reference rules
// from another version.
func applyRuleOverrides(registry ports.RuleRegistry, cfg settings.Settings) {
	for name, enabled := range cfg.Rules {
		var err error
		if enabled {
			err = registry.Enable(name)
		} else {
			err = registry.Disable(name)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: rule override for %q ignored: %v\n", name, err)
		}
	}
}
