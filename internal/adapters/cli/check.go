package cli

import (
	"github.com/spf13/cobra"

	"i18ncheck/internal/application"
	"i18ncheck/internal/domain/entities"
	"i18ncheck/internal/infrastructure/filesystem"
	"i18ncheck/internal/infrastructure/metrics"
)

func (a *App) checkCmd() *cobra.Command {
	var metricsFile string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate key parity and English-identical ratios (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(metricsFile)
		},
	}
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus textfile metrics to this path")
	return cmd
}

// runCheck resolves configuration, validates both namespaces and prints the
// report. Fatal errors are returned before anything is printed.
func (a *App) runCheck(metricsFile string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	report, err := a.checkService().Run(cfg.Namespaces())
	if err != nil {
		return err
	}

	if metricsFile != "" {
		rec := metrics.NewRecorder()
		rec.Observe(report)
		if err := rec.WriteTextfile(metricsFile); err != nil {
			return err
		}
	}

	if err := report.WriteText(a.stdout); err != nil {
		return err
	}
	if !report.Passed() {
		return errIssues
	}
	return nil
}

func (a *App) keysCmd() *cobra.Command {
	var only string
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Check that translation keys referenced from source exist in the base catalog",
		Long: `keys scans the files matched by each namespace's usage_globs for the
literal prefixes in usage_patterns (for example tr(") and reports every key
that the namespace's base catalog does not define. Both settings live in the
TOML config file; namespaces without them are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			namespaces := cfg.Namespaces()
			if only != "" {
				ns, ok := cfg.Namespace(only)
				if !ok {
					return errUnknownNamespace(only)
				}
				namespaces = []entities.Namespace{ns}
			}

			svc := application.NewUsageService(filesystem.NewCatalogRepository(), filesystem.NewSourceScanner(), a.logger)
			report, err := svc.Run(cfg.Root, namespaces)
			if err != nil {
				return err
			}
			if err := report.WriteText(a.stdout); err != nil {
				return err
			}
			if !report.Passed() {
				return errIssues
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&only, "namespace", "n", "", "Only check this namespace (cli, wizard)")
	return cmd
}
