// Package locale holds helpers for locale identifiers derived from catalog
// file names and from the process environment.
package locale

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
)

// envKeys are consulted in order when no locale is given explicitly.
var envKeys = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// Stem returns the locale identifier of a catalog file: its base name
// without extension.
func Stem(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// IsBaseVariant reports whether id names the base language or one of its
// variants. The match is a plain prefix test, so "eno" counts as a variant
// of "en".
func IsBaseVariant(id, base string) bool {
	return strings.HasPrefix(id, base)
}

// Normalize turns POSIX style identifiers ("pt_BR.UTF-8", "de_DE@euro")
// into BCP 47 tags ("pt-BR", "de-DE"). It returns "" when the identifier
// cannot be parsed.
func Normalize(id string) string {
	id = strings.TrimSpace(id)
	if i := strings.IndexAny(id, ".@"); i >= 0 {
		id = id[:i]
	}
	if id == "" || id == "C" || id == "POSIX" {
		return ""
	}
	tag, err := language.Parse(strings.ReplaceAll(id, "_", "-"))
	if err != nil {
		return ""
	}
	return tag.String()
}

// FromEnv picks the first usable locale from LC_ALL, LC_MESSAGES and LANG.
// lookup is usually os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) string {
	for _, key := range envKeys {
		raw, ok := lookup(key)
		if !ok {
			continue
		}
		if tag := Normalize(raw); tag != "" {
			return tag
		}
	}
	return ""
}

// Candidates lists the locales to try for id, most specific first:
// id itself, its language without region, then fallback. Duplicates and
// empty entries are dropped.
func Candidates(id, fallback string) []string {
	var out []string
	push := func(c string) {
		if c == "" {
			return
		}
		for _, existing := range out {
			if existing == c {
				return
			}
		}
		out = append(out, c)
	}

	id = strings.TrimSpace(id)
	push(id)
	if id != "" {
		if tag, err := language.Parse(strings.ReplaceAll(id, "_", "-")); err == nil {
			if b, conf := tag.Base(); conf != language.No {
				push(b.String())
			}
		}
	}
	push(fallback)
	return out
}
