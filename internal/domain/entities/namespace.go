package entities

import "path/filepath"

// Format identifies the encoding of catalog files in a namespace.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Ext returns the file extension, including the dot.
func (f Format) Ext() string {
	if f == "" {
		return ".json"
	}
	return "." + string(f)
}

// Namespace is one catalog directory and the rules it is checked against.
type Namespace struct {
	Name         string
	Dir          string
	BaseLocale   string
	Format       Format
	MaxSameRatio float64

	// Key usage scanning; both empty means the namespace is not scanned.
	UsageGlobs    []string
	UsagePatterns []string
}

// BasePath is the path of the base catalog file.
func (n Namespace) BasePath() string {
	return filepath.Join(n.Dir, n.BaseLocale+n.Format.Ext())
}
