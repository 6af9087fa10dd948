package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"i18ncheck/internal/domain"
	"i18ncheck/internal/domain/entities"
)

// Environment variables read by Load.
const (
	EnvCLIMaxSameRatio    = "I18N_MAX_SAME_RATIO_OPERATOR_CLI"
	EnvWizardMaxSameRatio = "I18N_MAX_SAME_RATIO_OPERATOR_WIZARD"
	EnvConfigFile         = "I18N_CHECK_CONFIG"
)

// Defaults for the two catalog namespaces.
const (
	DefaultBaseLocale         = "en"
	DefaultCLIDir             = "i18n/operator_cli"
	DefaultWizardDir          = "i18n/operator_wizard"
	DefaultCLIMaxSameRatio    = 0.60
	DefaultWizardMaxSameRatio = 0.40

	// DefaultFileName is picked up from the root when no file is named explicitly.
	DefaultFileName = "i18n-check.toml"
)

// NamespaceConfig configures one catalog directory.
type NamespaceConfig struct {
	Name          string
	Path          string // relative to Config.Root unless absolute
	MaxSameRatio  float64
	Format        entities.Format
	UsageGlobs    []string
	UsagePatterns []string
}

// Config is the resolved configuration of a run.
type Config struct {
	Root       string
	BaseLocale string
	CLI        NamespaceConfig
	Wizard     NamespaceConfig
}

// Options controls where Load looks for configuration.
type Options struct {
	// Root is the repository root the namespace paths are relative to.
	Root string
	// File is an explicit TOML config file. Empty falls back to
	// I18N_CHECK_CONFIG, then to <Root>/i18n-check.toml when it exists.
	File string
	// Environ replaces the process environment (and disables .env loading)
	// when non-nil.
	Environ map[string]string
}

// environment holds the raw values of the variables Load understands.
type environment struct {
	ConfigFile         string `env:"I18N_CHECK_CONFIG"`
	CLIMaxSameRatio    string `env:"I18N_MAX_SAME_RATIO_OPERATOR_CLI"`
	WizardMaxSameRatio string `env:"I18N_MAX_SAME_RATIO_OPERATOR_WIZARD"`
}

// Default returns the built-in configuration rooted at root.
func Default(root string) *Config {
	if root == "" {
		root = "."
	}
	return &Config{
		Root:       root,
		BaseLocale: DefaultBaseLocale,
		CLI: NamespaceConfig{
			Name:         "operator_cli",
			Path:         DefaultCLIDir,
			MaxSameRatio: DefaultCLIMaxSameRatio,
			Format:       entities.FormatJSON,
		},
		Wizard: NamespaceConfig{
			Name:         "operator_wizard",
			Path:         DefaultWizardDir,
			MaxSameRatio: DefaultWizardMaxSameRatio,
			Format:       entities.FormatJSON,
		},
	}
}

// Load resolves the configuration: built-in defaults, then the optional
// TOML file, then environment variables. Any malformed value is fatal.
func Load(opts Options) (*Config, error) {
	if opts.Environ == nil {
		// .env is optional; variables may come from the CI environment.
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("config: failed to load .env", "error", err)
		}
	}

	var raw environment
	if err := env.ParseWithOptions(&raw, env.Options{Environment: opts.Environ}); err != nil {
		return nil, domain.Fatalf(domain.ErrInvalidConfig, err, "config: parse environment: %v", err)
	}

	cfg := Default(opts.Root)

	file, explicit := opts.File, opts.File != ""
	if !explicit && strings.TrimSpace(raw.ConfigFile) != "" {
		file, explicit = strings.TrimSpace(raw.ConfigFile), true
	}
	if !explicit {
		file = filepath.Join(cfg.Root, DefaultFileName)
	}
	if err := cfg.mergeFile(file, explicit); err != nil {
		return nil, err
	}

	var err error
	if cfg.CLI.MaxSameRatio, err = ParseRatio(EnvCLIMaxSameRatio, raw.CLIMaxSameRatio, cfg.CLI.MaxSameRatio); err != nil {
		return nil, err
	}
	if cfg.Wizard.MaxSameRatio, err = ParseRatio(EnvWizardMaxSameRatio, raw.WizardMaxSameRatio, cfg.Wizard.MaxSameRatio); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseRatio resolves one threshold value. Blank raw yields def; otherwise
// raw must parse as a float within [0.0, 1.0].
func ParseRatio(name, raw string, def float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	// Hex floats ("0x1p-1") are a Go literal form, not a decimal threshold.
	if err == nil && strings.ContainsAny(raw, "xXpP") {
		err = strconv.ErrSyntax
	}
	if err != nil {
		return 0, domain.Fatalf(domain.ErrInvalidRatio, err, "%s must be a float between 0.0 and 1.0, got: %q", name, raw)
	}
	if !inRange(value) {
		return 0, domain.Fatalf(domain.ErrInvalidRatio, nil, "%s must be between 0.0 and 1.0, got: %s", name, raw)
	}
	return value, nil
}

func inRange(v float64) bool {
	return !math.IsNaN(v) && v >= 0.0 && v <= 1.0
}

// Namespaces returns the catalog namespaces in check order: cli, then wizard.
func (c *Config) Namespaces() []entities.Namespace {
	return []entities.Namespace{c.namespace(c.CLI), c.namespace(c.Wizard)}
}

func (c *Config) namespace(nc NamespaceConfig) entities.Namespace {
	dir := nc.Path
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(c.Root, filepath.FromSlash(dir))
	}
	return entities.Namespace{
		Name:          nc.Name,
		Dir:           dir,
		BaseLocale:    c.BaseLocale,
		Format:        nc.Format,
		MaxSameRatio:  nc.MaxSameRatio,
		UsageGlobs:    nc.UsageGlobs,
		UsagePatterns: nc.UsagePatterns,
	}
}

// Namespace looks a namespace up by name ("operator_cli") or short name ("cli").
func (c *Config) Namespace(name string) (entities.Namespace, bool) {
	for _, ns := range c.Namespaces() {
		if ns.Name == name || strings.TrimPrefix(ns.Name, "operator_") == name {
			return ns, true
		}
	}
	return entities.Namespace{}, false
}

// validate applies the rules that do not depend on where a value came from.
func (c *Config) validate() error {
	if strings.TrimSpace(c.BaseLocale) == "" {
		return domain.Fatalf(domain.ErrInvalidConfig, nil, "config: base_locale must not be empty")
	}
	for _, nc := range []NamespaceConfig{c.CLI, c.Wizard} {
		if strings.TrimSpace(nc.Path) == "" {
			return domain.Fatalf(domain.ErrInvalidConfig, nil, "config: %s.path must not be empty", nc.Name)
		}
		switch nc.Format {
		case entities.FormatJSON, entities.FormatTOML, entities.FormatYAML:
		default:
			return domain.Fatalf(domain.ErrInvalidConfig, nil, "config: %s.format must be one of json, toml, yaml, got: %q", nc.Name, nc.Format)
		}
		if !inRange(nc.MaxSameRatio) {
			return domain.Fatalf(domain.ErrInvalidRatio, nil, "config: %s.max_same_ratio must be between 0.0 and 1.0, got: %v", nc.Name, nc.MaxSameRatio)
		}
	}
	return nil
}

// fileConfig mirrors the TOML config file. Pointers distinguish unset keys.
type fileConfig struct {
	BaseLocale *string              `toml:"base_locale"`
	CLI        *fileNamespaceConfig `toml:"cli"`
	Wizard     *fileNamespaceConfig `toml:"wizard"`
}

type fileNamespaceConfig struct {
	Path          *string  `toml:"path"`
	MaxSameRatio  *float64 `toml:"max_same_ratio"`
	Format        *string  `toml:"format"`
	UsageGlobs    []string `toml:"usage_globs"`
	UsagePatterns []string `toml:"usage_patterns"`
}

func (c *Config) mergeFile(path string, required bool) error {
	f, err := os.Open(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return domain.Fatalf(domain.ErrInvalidConfig, err, "config: open %s: %v", path, err)
	}
	defer f.Close()

	var fc fileConfig
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&fc); err != nil {
		return domain.Fatalf(domain.ErrInvalidConfig, err, "config: parse %s: %v", path, err)
	}
	slog.Debug("config: loaded file", "path", path)

	if fc.BaseLocale != nil {
		c.BaseLocale = strings.TrimSpace(*fc.BaseLocale)
	}
	fc.CLI.apply(&c.CLI)
	fc.Wizard.apply(&c.Wizard)
	return nil
}

func (fn *fileNamespaceConfig) apply(nc *NamespaceConfig) {
	if fn == nil {
		return
	}
	if fn.Path != nil {
		nc.Path = *fn.Path
	}
	if fn.MaxSameRatio != nil {
		nc.MaxSameRatio = *fn.MaxSameRatio
	}
	if fn.Format != nil {
		nc.Format = entities.Format(strings.ToLower(strings.TrimSpace(*fn.Format)))
	}
	if fn.UsageGlobs != nil {
		nc.UsageGlobs = fn.UsageGlobs
	}
	if fn.UsagePatterns != nil {
		nc.UsagePatterns = fn.UsagePatterns
	}
}

// String summarizes the resolved thresholds for debug logs.
func (c *Config) String() string {
	return fmt.Sprintf("root=%s base=%s %s=%.2f %s=%.2f",
		c.Root, c.BaseLocale, c.CLI.Name, c.CLI.MaxSameRatio, c.Wizard.Name, c.Wizard.MaxSameRatio)
}
