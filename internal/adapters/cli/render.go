package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"i18ncheck/internal/infrastructure/filesystem"
	"i18ncheck/internal/infrastructure/i18n"
	"i18ncheck/pkg/locale"
)

func errUnknownNamespace(name string) error {
	return fmt.Errorf("unknown namespace %q (want cli or wizard)", name)
}

func (a *App) renderCmd() *cobra.Command {
	var (
		namespace string
		loc       string
	)
	cmd := &cobra.Command{
		Use:   "render KEY [ARG...]",
		Short: "Render one catalog message the way the application would",
		Long: `render looks KEY up for a locale, falling back to the locale's language,
then to the base catalog, then to the key itself. Each "{}" in the message is
replaced by the next ARG. Without --locale the locale comes from LC_ALL,
LC_MESSAGES or LANG.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			ns, ok := cfg.Namespace(namespace)
			if !ok {
				return errUnknownNamespace(namespace)
			}

			tr, err := i18n.NewTranslator(ns, filesystem.NewCatalogRepository(), a.logger)
			if err != nil {
				return err
			}

			if loc == "" {
				loc = locale.FromEnv(a.lookupEnv)
			}
			a.logger.Debug("rendering", "namespace", ns.Name, "locale", loc, "key", args[0])
			fmt.Fprintln(a.stdout, tr.Tf(loc, args[0], args[1:]...))
			return nil
		},
	}
	cmd.Flags().StringVarP(&namespace, "namespace", "n", "cli", "Namespace to load (cli, wizard)")
	cmd.Flags().StringVarP(&loc, "locale", "l", "", "Locale to render for")
	return cmd
}
