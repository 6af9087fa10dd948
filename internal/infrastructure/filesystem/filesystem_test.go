package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"i18ncheck/internal/domain"
	"i18ncheck/internal/domain/entities"
	"i18ncheck/internal/ports/output"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCatalogRepository_LoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "fr.json", `{"a": "un", "b": "deux"}`)

	cat, err := NewCatalogRepository().Load(path, entities.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, entities.Catalog{"a": "un", "b": "deux"}, cat)
}

func TestCatalogRepository_LoadEmptyObject(t *testing.T) {
	path := writeFile(t, t.TempDir(), "en.json", `{}`)

	cat, err := NewCatalogRepository().Load(path, entities.FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, cat)
}

func TestCatalogRepository_LoadErrors(t *testing.T) {
	dir := t.TempDir()
	repo := NewCatalogRepository()

	tests := []struct {
		name    string
		content string
		kind    error
		msg     string
	}{
		{
			name:    "malformed",
			content: `{"a": `,
			kind:    domain.ErrCatalogUnreadable,
			msg:     "failed to read/parse JSON file",
		},
		{
			name:    "array",
			content: `["a", "b"]`,
			kind:    domain.ErrCatalogNotObject,
			msg:     "catalog file is not a JSON object",
		},
		{
			name:    "null",
			content: `null`,
			kind:    domain.ErrCatalogNotObject,
			msg:     "catalog file is not a JSON object",
		},
		{
			name:    "number value",
			content: `{"a": "x", "b": 1}`,
			kind:    domain.ErrNonStringValue,
			msg:     "has non-string values for keys: b",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.name+".json", tt.content)
			_, err := repo.Load(path, entities.FormatJSON)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestCatalogRepository_LoadMissingFile(t *testing.T) {
	_, err := NewCatalogRepository().Load(filepath.Join(t.TempDir(), "nope.json"), entities.FormatJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCatalogUnreadable)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCatalogRepository_NonStringKeysTruncated(t *testing.T) {
	path := writeFile(t, t.TempDir(), "de.json",
		`{"g": 1, "f": true, "e": null, "d": [], "c": {}, "b": 2.5, "a": "ok"}`)

	_, err := NewCatalogRepository().Load(path, entities.FormatJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNonStringValue)
	assert.Equal(t, "catalog "+path+" has non-string values for keys: b, c, d, e, f", err.Error())
}

func TestCatalogRepository_LoadTOMLAndYAML(t *testing.T) {
	dir := t.TempDir()
	repo := NewCatalogRepository()

	tomlPath := writeFile(t, dir, "fr.toml", "\"cli.hello\" = \"bonjour\"\nbye = \"au revoir\"\n")
	cat, err := repo.Load(tomlPath, entities.FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, entities.Catalog{"cli.hello": "bonjour", "bye": "au revoir"}, cat)

	yamlPath := writeFile(t, dir, "fr.yaml", "cli.hello: bonjour\nbye: au revoir\n")
	cat, err = repo.Load(yamlPath, entities.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, entities.Catalog{"cli.hello": "bonjour", "bye": "au revoir"}, cat)

	nested := writeFile(t, dir, "de.toml", "[section]\nkey = \"v\"\n")
	_, err = repo.Load(nested, entities.FormatTOML)
	assert.ErrorIs(t, err, domain.ErrNonStringValue)

	list := writeFile(t, dir, "de.yaml", "- a\n- b\n")
	_, err = repo.Load(list, entities.FormatYAML)
	assert.ErrorIs(t, err, domain.ErrCatalogNotObject)
}

func TestCatalogRepository_LoadInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	repo := NewCatalogRepository()

	for _, format := range []entities.Format{entities.FormatJSON, entities.FormatTOML, entities.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var content string
			switch format {
			case entities.FormatJSON:
				content = "{\"a\": \"\xff\"}"
			case entities.FormatTOML:
				content = "a = \"\xff\"\n"
			case entities.FormatYAML:
				content = "a: \"\xff\"\n"
			}
			path := writeFile(t, dir, "fr"+format.Ext(), content)

			_, err := repo.Load(path, format)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrCatalogUnreadable)
			assert.Contains(t, err.Error(), "failed to read/parse")
			assert.Contains(t, err.Error(), "invalid UTF-8")
		})
	}
}

func TestCatalogRepository_UnsupportedFormat(t *testing.T) {
	_, err := NewCatalogRepository().Load("x.po", entities.Format("po"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestCatalogRepository_Exists(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "en.json", `{}`)
	repo := NewCatalogRepository()

	ok, err := repo.Exists(path)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(filepath.Join(dir, "missing", "en.json"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCatalogRepository_ListSorted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "zh.json", `{}`)
	writeFile(t, dir, "de.json", `{}`)
	writeFile(t, dir, "en.json", `{}`)
	writeFile(t, dir, "ar-EG.json", `{}`)
	writeFile(t, dir, "notes.txt", "")
	writeFile(t, dir, ".hidden.json", `{}`)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.json"), 0o755))

	files, err := NewCatalogRepository().List(dir, entities.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, ".hidden.json"),
		filepath.Join(dir, "ar-EG.json"),
		filepath.Join(dir, "de.json"),
		filepath.Join(dir, "en.json"),
		filepath.Join(dir, "zh.json"),
	}, files)
}

func TestSourceScanner_Scan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/main.go", `fmt.Println(tr("cli.hello"), trf("cli.count", n))
x := tr("cli.bye")`)
	writeFile(t, root, "src/sub/other.go", `tr("cli.sub")`)
	writeFile(t, root, "src/readme.md", `tr("ignored")`)

	refs, err := NewSourceScanner().Scan(root, []string{"src/**/*.go"}, []string{`tr("`, `trf("`})
	require.NoError(t, err)
	assert.Equal(t, []output.KeyReference{
		{Path: filepath.FromSlash("src/main.go"), Key: "cli.hello"},
		{Path: filepath.FromSlash("src/main.go"), Key: "cli.count"},
		{Path: filepath.FromSlash("src/main.go"), Key: "cli.bye"},
		{Path: filepath.FromSlash("src/sub/other.go"), Key: "cli.sub"},
	}, refs)
}

func TestSourceScanner_BadGlob(t *testing.T) {
	_, err := NewSourceScanner().Scan(t.TempDir(), []string{"src/[.go"}, []string{`tr("`})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestExtractKeys(t *testing.T) {
	src := `"key": "wizard.a", "key": "wizard.b", "key": "other", "key": "wizard.unterminated`
	assert.Equal(t, []string{"a", "b"}, extractKeys(src, []string{`"key": "wizard.`}))
	assert.Empty(t, extractKeys(src, []string{""}))
}
