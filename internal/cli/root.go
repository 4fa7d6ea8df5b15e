// Package cli wires the brandsocial command tree: configuration through
// viper, logging through zerolog, and one subcommand per entry point.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-brandsocial/internal/config"
	"github.com/goliatone/go-brandsocial/internal/logging"
	"github.com/goliatone/go-brandsocial/pkg/renderers/tui"
	"github.com/goliatone/go-brandsocial/pkg/session"
	"github.com/goliatone/go-brandsocial/pkg/wizard"
)

// app carries state shared by subcommands once the root pre-run has loaded
// configuration.
type app struct {
	v       *viper.Viper
	cfgFile string
	envFile string
	cfg     *config.Config
	logger  zerolog.Logger

	// registry collects session metrics when metrics.file is set.
	registry *prometheus.Registry
	metrics  *session.Metrics

	// promptDriver replaces the survey driver in tests.
	promptDriver tui.PromptDriver
}

type appOption func(*app)

func withPromptDriver(driver tui.PromptDriver) appOption {
	return func(a *app) {
		a.promptDriver = driver
	}
}

// Execute runs the command tree with os.Args.
func Execute(ctx context.Context) error {
	return newRootCommand().ExecuteContext(ctx)
}

func newRootCommand(opts ...appOption) *cobra.Command {
	a := &app{v: config.New(), logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:   "brandsocial",
		Short: "Five-step brand profile wizard",
		Long: `brandsocial walks through five short steps (basics, mission and vision,
audience, core values, unique value proposition) and hands the finished brand
profile to the configured output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.flushMetrics()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (YAML, JSON or TOML)")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	flags.String("output-format", "", "completed record output: log, json or yaml")
	flags.String("output-path", "", "write the completed record to this file")
	flags.String("theme", "", "HTML theme name")
	flags.String("variant", "", "HTML theme variant (light, dark)")
	flags.String("steps", "", "YAML step catalogue overriding the built-in steps")
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file with BRANDSOCIAL_* overrides")
	flags.String("metrics-file", "", "write session metrics in Prometheus text format to this file")

	for key, flag := range map[string]string{
		"log.level":     "log-level",
		"output.format": "output-format",
		"output.path":   "output-path",
		"theme.name":    "theme",
		"theme.variant": "variant",
		"steps.file":    "steps",
		"metrics.file":  "metrics-file",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		newRunCommand(a),
		newRenderCommand(a),
		newStepsCommand(a),
		newSchemaCommand(a),
	)
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	if err := config.LoadEnvFile(a.envFile, cmd.Flags().Changed("env-file")); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
		Out:    cmd.ErrOrStderr(),
	})
	a.logger.Debug().Str("command", cmd.Name()).Str("config", a.cfgFile).Msg("configuration loaded")

	if cfg.Metrics.File != "" {
		a.registry = prometheus.NewRegistry()
		if a.metrics, err = session.NewMetrics(a.registry); err != nil {
			return fmt.Errorf("cli: metrics: %w", err)
		}
	}
	return nil
}

// flushMetrics writes the collected counters for a textfile collector.
func (a *app) flushMetrics() error {
	if a.registry == nil || a.cfg == nil {
		return nil
	}
	path := a.cfg.Metrics.File
	if err := prometheus.WriteToTextfile(path, a.registry); err != nil {
		return fmt.Errorf("cli: write metrics: %w", err)
	}
	a.logger.Debug().Str("path", path).Msg("metrics written")
	return nil
}

// steps returns the configured catalogue or the built-in one.
func (a *app) steps() ([]wizard.Step, error) {
	path := a.cfg.Steps.File
	if path == "" {
		return wizard.DefaultSteps(), nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cli: resolve steps file: %w", err)
	}
	steps, err := wizard.LoadCatalog(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
	if err != nil {
		return nil, err
	}
	a.logger.Debug().Str("file", abs).Int("steps", len(steps)).Msg("step catalogue loaded")
	return steps, nil
}
