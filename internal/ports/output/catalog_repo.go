package output

import "i18ncheck/internal/domain/entities"

// CatalogRepository gives read-only access to catalog files.
// Every error it returns is fatal for the run.
type CatalogRepository interface {
	// Exists reports whether a catalog file is present at path.
	Exists(path string) (bool, error)
	// Load reads and decodes the catalog at path in the given format.
	Load(path string, format entities.Format) (entities.Catalog, error)
	// List returns the catalog files of dir in the given format, sorted.
	List(dir string, format entities.Format) ([]string, error)
}
