// Package cli wires the catalog checks to a cobra command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"i18ncheck/internal/application"
	"i18ncheck/internal/config"
	"i18ncheck/internal/infrastructure/filesystem"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// errIssues signals that a report with issues was already printed.
var errIssues = errors.New("issues found")

// App holds the state shared by all commands of one invocation.
type App struct {
	stdout io.Writer
	stderr io.Writer
	// environ replaces the process environment when non-nil.
	environ map[string]string

	root       string
	configFile string
	logLevel   string

	logger *slog.Logger
}

// Run executes the command line and returns the process exit status.
func Run(args []string, stdout, stderr io.Writer) int {
	return newApp(stdout, stderr, nil).execute(args)
}

func newApp(stdout, stderr io.Writer, environ map[string]string) *App {
	return &App{stdout: stdout, stderr: stderr, environ: environ}
}

func (a *App) execute(args []string) int {
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errIssues) {
			fmt.Fprintln(a.stderr, err)
		}
		return 1
	}
	return 0
}

func (a *App) rootCmd() *cobra.Command {
	var metricsFile string

	cmd := &cobra.Command{
		Use:   "i18n-check",
		Short: "Validate translation catalogs for key parity and English-clone quality",
		Long: `i18n-check compares every locale catalog of the operator_cli and
operator_wizard namespaces against the base catalog. A locale fails when its
key set differs from base, when it is a verbatim copy of base, or when the
share of values identical to base exceeds the namespace threshold.

Thresholds come from I18N_MAX_SAME_RATIO_OPERATOR_CLI (default 0.60) and
I18N_MAX_SAME_RATIO_OPERATOR_WIZARD (default 0.40).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(metricsFile)
		},
	}

	cmd.PersistentFlags().StringVar(&a.root, "root", ".", "Repository root the catalog directories are relative to")
	cmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "Config file path (TOML)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus textfile metrics to this path")

	cmd.AddCommand(
		a.checkCmd(),
		a.keysCmd(),
		a.renderCmd(),
		a.watchCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(a.stdout, "i18n-check version %s\n", Version)
			},
		},
	)
	return cmd
}

func (a *App) setupLogging() error {
	var level slog.Level
	switch strings.ToLower(a.logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid --log-level %q", a.logLevel)
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)
	return nil
}

func (a *App) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.Options{Root: a.root, File: a.configFile, Environ: a.environ})
	if err != nil {
		return nil, err
	}
	a.logger.Debug("configuration resolved", "config", cfg.String())
	return cfg, nil
}

func (a *App) lookupEnv(key string) (string, bool) {
	if a.environ != nil {
		v, ok := a.environ[key]
		return v, ok
	}
	return os.LookupEnv(key)
}

func (a *App) checkService() *application.CheckService {
	return application.NewCheckService(filesystem.NewCatalogRepository(), a.logger)
}
