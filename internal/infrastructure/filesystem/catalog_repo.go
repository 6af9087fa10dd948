package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"i18ncheck/internal/domain"
	"i18ncheck/internal/domain/entities"
	"i18ncheck/internal/ports/output"
)

// Catalogs must be valid UTF-8; the decoders would replace bad bytes with U+FFFD.
var errInvalidUTF8 = errors.New("invalid UTF-8")

var _ output.CatalogRepository = (*CatalogRepository)(nil)

// CatalogRepository implements output.CatalogRepository on top of a local
// directory tree.
type CatalogRepository struct{}

// NewCatalogRepository creates a CatalogRepository.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

func (r *CatalogRepository) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, domain.Fatalf(domain.ErrCatalogUnreadable, err, "failed to stat catalog %s: %v", path, err)
}

func (r *CatalogRepository) Load(path string, format entities.Format) (entities.Catalog, error) {
	dec, err := decoderFor(format)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.Fatalf(domain.ErrCatalogUnreadable, err,
			"failed to read/parse %s file %s: %v", dec.label, path, err)
	}
	if !utf8.Valid(data) {
		return nil, domain.Fatalf(domain.ErrCatalogUnreadable, errInvalidUTF8,
			"failed to read/parse %s file %s: %v", dec.label, path, errInvalidUTF8)
	}
	raw, err := dec.decode(data)
	if err != nil {
		return nil, domain.Fatalf(domain.ErrCatalogUnreadable, err,
			"failed to read/parse %s file %s: %v", dec.label, path, err)
	}
	return toCatalog(path, dec.label, raw)
}

// List returns the files of dir with the format's extension, sorted by
// name, dotfiles included. Directories are skipped.
func (r *CatalogRepository) List(dir string, format entities.Format) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, domain.Fatalf(domain.ErrCatalogUnreadable, err, "failed to list catalog directory %s: %v", dir, err)
	}

	ext := format.Ext()
	var out []string
	// os.ReadDir sorts entries by filename.
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ext {
			continue
		}
		out = append(out, filepath.Join(dir, name))
	}
	return out, nil
}
