package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"i18ncheck/internal/domain"
	"i18ncheck/internal/ports/output"
)

var _ output.SourceScanner = (*SourceScanner)(nil)

// SourceScanner implements output.SourceScanner with doublestar globs
// evaluated relative to a root directory.
type SourceScanner struct{}

// NewSourceScanner creates a SourceScanner.
func NewSourceScanner() *SourceScanner {
	return &SourceScanner{}
}

func (s *SourceScanner) Scan(root string, globs, patterns []string) ([]output.KeyReference, error) {
	fsys := os.DirFS(root)

	seen := make(map[string]bool)
	var files []string
	for _, g := range globs {
		matches, err := doublestar.Glob(fsys, g)
		if err != nil {
			return nil, domain.Fatalf(domain.ErrInvalidConfig, err, "invalid usage glob %q: %v", g, err)
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	sort.Strings(files)

	var refs []output.KeyReference
	for _, name := range files {
		info, err := fs.Stat(fsys, name)
		if err != nil {
			return nil, domain.Fatalf(domain.ErrSourceUnreadable, err, "failed to read source file %s: %v", name, err)
		}
		if info.IsDir() {
			continue
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, domain.Fatalf(domain.ErrSourceUnreadable, err, "failed to read source file %s: %v", name, err)
		}
		path := filepath.FromSlash(name)
		for _, key := range extractKeys(string(data), patterns) {
			refs = append(refs, output.KeyReference{Path: path, Key: key})
		}
	}
	return refs, nil
}

// extractKeys returns, in source order, the text between each occurrence of
// a pattern and the next double quote. Occurrences without a closing quote
// are ignored.
func extractKeys(src string, patterns []string) []string {
	type hit struct {
		offset int
		key    string
	}
	var hits []hit
	for _, p := range patterns {
		if p == "" {
			continue
		}
		for from := 0; ; {
			i := strings.Index(src[from:], p)
			if i < 0 {
				break
			}
			start := from + i + len(p)
			end := strings.IndexByte(src[start:], '"')
			if end >= 0 {
				hits = append(hits, hit{offset: from + i, key: src[start : start+end]})
			}
			from = start
		}
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].offset < hits[b].offset })

	keys := make([]string, len(hits))
	for i, h := range hits {
		keys[i] = h.key
	}
	return keys
}
