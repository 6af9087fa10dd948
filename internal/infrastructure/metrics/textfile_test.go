package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"i18ncheck/internal/domain/entities"
)

func TestRecorder(t *testing.T) {
	report := &entities.Report{
		Issues: []entities.Issue{
			{Namespace: "operator_cli", Kind: entities.IssueKeyMismatch},
			{Namespace: "operator_cli", Kind: entities.IssueKeyMismatch},
			{Namespace: "operator_wizard", Kind: entities.IssueEnglishClone},
		},
		Results: []entities.LocaleResult{
			{Namespace: "operator_cli", Locale: "de", Total: 4},
			{Namespace: "operator_cli", Locale: "fr", Same: 1, Total: 4, KeysMatch: true},
			{Namespace: "operator_wizard", Locale: "fr", Same: 2, Total: 2, KeysMatch: true},
		},
	}

	r := NewRecorder()
	r.Observe(report)

	assert.InDelta(t, 2, testutil.ToFloat64(r.issues.WithLabelValues("operator_cli", "key_mismatch")), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(r.issues.WithLabelValues("operator_wizard", "english_clone")), 1e-9)
	assert.InDelta(t, 0.25, testutil.ToFloat64(r.sameRatio.WithLabelValues("operator_cli", "fr")), 1e-9)
	assert.InDelta(t, 2, testutil.ToFloat64(r.locales.WithLabelValues("operator_cli")), 1e-9)
	assert.Equal(t, 2, testutil.CollectAndCount(r.sameRatio), "mismatched locales carry no ratio")

	path := filepath.Join(t.TempDir(), "i18n.prom")
	require.NoError(t, r.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `i18n_check_same_ratio{locale="fr",namespace="operator_wizard"} 1`)
	assert.Contains(t, string(data), "# TYPE i18n_check_issues gauge")
}
