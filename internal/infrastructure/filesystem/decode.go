package filesystem

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"i18ncheck/internal/domain"
	"i18ncheck/internal/domain/entities"
)

// maxReportedKeys bounds the key list in a non-string value error.
const maxReportedKeys = 5

type decoder struct {
	label  string
	decode func([]byte) (any, error)
}

var decoders = map[entities.Format]decoder{
	entities.FormatJSON: {label: "JSON", decode: func(b []byte) (any, error) {
		var v any
		err := json.Unmarshal(b, &v)
		return v, err
	}},
	entities.FormatTOML: {label: "TOML", decode: func(b []byte) (any, error) {
		var v map[string]any
		err := toml.Unmarshal(b, &v)
		return v, err
	}},
	entities.FormatYAML: {label: "YAML", decode: func(b []byte) (any, error) {
		var v any
		err := yaml.Unmarshal(b, &v)
		return v, err
	}},
}

func decoderFor(format entities.Format) (decoder, error) {
	if format == "" {
		format = entities.FormatJSON
	}
	dec, ok := decoders[format]
	if !ok {
		return decoder{}, domain.Fatalf(domain.ErrUnsupportedFormat, nil, "unsupported catalog format %q", format)
	}
	return dec, nil
}

// toCatalog maps a decoded document onto a Catalog. The document must be an
// object whose values are all strings; otherwise the whole catalog is rejected.
func toCatalog(path, label string, raw any) (entities.Catalog, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, domain.Fatalf(domain.ErrCatalogNotObject, nil, "catalog file is not a %s object: %s", label, path)
	}

	cat := make(entities.Catalog, len(obj))
	var nonString []string
	for k, v := range obj {
		s, ok := v.(string)
		if !ok {
			nonString = append(nonString, k)
			continue
		}
		cat[k] = s
	}
	if len(nonString) > 0 {
		sort.Strings(nonString)
		if len(nonString) > maxReportedKeys {
			nonString = nonString[:maxReportedKeys]
		}
		return nil, domain.Fatalf(domain.ErrNonStringValue, nil,
			"catalog %s has non-string values for keys: %s", path, strings.Join(nonString, ", "))
	}
	return cat, nil
}
