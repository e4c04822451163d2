package commands

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/hwnotes/blogbuilder/internal/lint"
	"github.com/hwnotes/blogbuilder/internal/logfields"
	"github.com/hwnotes/blogbuilder/internal/metrics"
	"github.com/hwnotes/blogbuilder/internal/watch"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Format      string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Quiet       bool   `short:"q" help:"Quiet mode: only show errors, suppress warnings"`
	Cache       string `help:"Check result cache path (empty disables caching)"`
	MetricsFile string `help:"Write Prometheus textfile metrics to this path"`
	Watch       bool   `short:"w" help:"Re-run checks whenever content changes"`
}

// Run executes the check command.
func (cmd *CheckCmd) Run(_ *Global, root *CLI) error {
	if cmd.Watch {
		return cmd.runWatch(root)
	}

	result, err := cmd.runOnce(root)
	if err != nil {
		return err
	}

	// Exit codes follow the pre-commit hook convention: 2 blocks the
	// commit, 1 nags, 0 passes.
	if result.HasErrors() {
		os.Exit(2)
	}
	if result.HasWarnings() && !cmd.Quiet {
		os.Exit(1)
	}
	return nil
}

func (cmd *CheckCmd) runOnce(root *CLI) (*lint.Result, error) {
	s, err := loadSite(root.Config)
	if err != nil {
		return nil, err
	}

	cfg := &lint.Config{
		Quiet:     cmd.Quiet,
		Format:    cmd.Format,
		CachePath: cmd.Cache,
	}
	var reg *prom.Registry
	if cmd.MetricsFile != "" {
		reg = prom.NewRegistry()
		cfg.Metrics = metrics.NewPrometheusRecorder(reg)
	}

	checker := lint.NewChecker(cfg)
	defer func() { _ = checker.Close() }()

	if history := openHistory(s.Root); history != nil {
		checker.WithGitHistory(history)
	}

	result, err := checker.Run(s)
	if err != nil {
		return nil, err
	}

	formatter := lint.NewFormatter(cmd.Format)
	if err := formatter.Format(os.Stdout, result, s.Root); err != nil {
		return nil, err
	}

	if reg != nil {
		if err := metrics.WriteTextfile(reg, cmd.MetricsFile); err != nil {
			slog.Warn("Metrics export failed", logfields.Path(cmd.MetricsFile), logfields.Error(err))
		}
	}

	return result, nil
}

// runWatch re-runs the check after every settled burst of file changes,
// until interrupted. Exit codes do not apply in watch mode.
func (cmd *CheckCmd) runWatch(root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	run := func() {
		if _, err := cmd.runOnce(root); err != nil {
			slog.Error("Check run failed", logfields.Error(err))
		}
	}
	run()

	siteRoot := filepath.Dir(root.Config)
	if siteRoot == "" {
		siteRoot = "."
	}

	err := watch.Run(ctx, siteRoot, watch.Options{OnChange: run})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
