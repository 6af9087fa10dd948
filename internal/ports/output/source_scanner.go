package output

// KeyReference is one translation key found in a source file.
type KeyReference struct {
	Path string
	Key  string
}

// SourceScanner finds translation key references in source files.
type SourceScanner interface {
	// Scan matches globs under root and extracts, from every matched file,
	// the keys following any of the literal patterns. References are
	// returned by path, then by position in the file.
	Scan(root string, globs, patterns []string) ([]KeyReference, error)
}
