package entities

import "sort"

// Catalog maps translation keys to their string values.
type Catalog map[string]string

// Keys returns the catalog keys in sorted order.
func (c Catalog) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether key is present.
func (c Catalog) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// Diff returns the keys of base absent from c (missing) and the keys of c
// absent from base (extra), both sorted.
func (c Catalog) Diff(base Catalog) (missing, extra []string) {
	for _, k := range base.Keys() {
		if !c.Has(k) {
			missing = append(missing, k)
		}
	}
	for _, k := range c.Keys() {
		if !base.Has(k) {
			extra = append(extra, k)
		}
	}
	return missing, extra
}

// SameCount counts base keys whose value in c is byte-identical.
func (c Catalog) SameCount(base Catalog) int {
	same := 0
	for k, v := range base {
		if got, ok := c[k]; ok && got == v {
			same++
		}
	}
	return same
}
