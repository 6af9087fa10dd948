package i18n

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"i18ncheck/internal/domain/entities"
	"i18ncheck/internal/ports/output"
	"i18ncheck/pkg/locale"
)

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer, fed with
// the catalogs of one namespace.
type Translator struct {
	bundle     *i18n.Bundle
	baseLocale string
	locales    []string
	logger     *slog.Logger
}

// NewTranslator loads every catalog of ns into a go-i18n bundle whose
// default language is the namespace's base locale. Files whose name is not
// a usable language tag are skipped; unreadable catalogs are fatal.
func NewTranslator(ns entities.Namespace, catalogs output.CatalogRepository, logger *slog.Logger) (*Translator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	baseTag, err := language.Parse(ns.BaseLocale)
	if err != nil {
		return nil, fmt.Errorf("i18n: base locale %q: %w", ns.BaseLocale, err)
	}
	bundle := i18n.NewBundle(baseTag)

	files, err := catalogs.List(ns.Dir, ns.Format)
	if err != nil {
		return nil, err
	}

	t := &Translator{bundle: bundle, baseLocale: ns.BaseLocale, logger: logger}
	for _, path := range files {
		id := locale.Stem(path)
		tag, err := language.Parse(strings.ReplaceAll(id, "_", "-"))
		if err != nil {
			logger.Warn("i18n: skipping catalog with non-locale name", "path", path, "error", err)
			continue
		}
		cat, err := catalogs.Load(path, ns.Format)
		if err != nil {
			return nil, err
		}
		msgs := make([]*i18n.Message, 0, len(cat))
		for _, key := range cat.Keys() {
			msgs = append(msgs, &i18n.Message{ID: key, Other: cat[key]})
		}
		// go-i18n refuses tags without a CLDR plural rule (e.g. "nah").
		if err := bundle.AddMessages(tag, msgs...); err != nil {
			logger.Warn("i18n: skipping catalog", "path", path, "error", err)
			continue
		}
		t.locales = append(t.locales, id)
	}
	return t, nil
}

// Locales lists the locale identifiers loaded into the bundle, sorted.
func (t *Translator) Locales() []string {
	return t.locales
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the locale's language,
// then to the base locale, then finally to the key itself.
func (t *Translator) T(loc, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := locale.Candidates(loc, t.baseLocale)
	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		var notFound *i18n.MessageNotFoundErr
		if errors.As(err, &notFound) {
			t.logger.Debug("i18n: message not found", "key", key, "locales", languages)
		} else {
			// Broken templates in a catalog would otherwise render as the bare key.
			t.logger.Warn("i18n: localize failed", "key", key, "locales", languages, "error", err)
		}
		return key
	}
	return msg
}

// Tf renders key and substitutes each "{}" placeholder with the next arg.
func (t *Translator) Tf(loc, key string, args ...string) string {
	rendered := t.T(loc, key, nil)
	for _, arg := range args {
		rendered = strings.Replace(rendered, "{}", arg, 1)
	}
	return rendered
}
