package application

import (
	"fmt"
	"log/slog"
	"strings"

	"i18ncheck/internal/domain/entities"
	"i18ncheck/internal/ports/input"
	"i18ncheck/internal/ports/output"
	"i18ncheck/pkg/locale"
)

// CheckLabel prefixes the report lines of a catalog check.
const CheckLabel = "i18n-check"

var _ input.CheckUseCase = (*CheckService)(nil)

// CheckService validates locale catalogs against their base catalog.
type CheckService struct {
	catalogs output.CatalogRepository
	logger   *slog.Logger
}

// NewCheckService returns a CheckService reading catalogs through the given repository.
func NewCheckService(catalogs output.CatalogRepository, logger *slog.Logger) *CheckService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CheckService{catalogs: catalogs, logger: logger}
}

// Run validates every namespace in order and concatenates their issues.
// A non-nil error means the run was aborted and the report is meaningless.
func (s *CheckService) Run(namespaces []entities.Namespace) (*entities.Report, error) {
	report := &entities.Report{Label: CheckLabel}
	for _, ns := range namespaces {
		issues, results, err := s.validate(ns)
		if err != nil {
			return nil, err
		}
		report.Add(issues...)
		report.Results = append(report.Results, results...)
	}
	return report, nil
}

// ValidateNamespace checks one catalog directory. Reportable problems are
// returned as issues; the error is reserved for inputs that cannot be
// validated at all.
func (s *CheckService) ValidateNamespace(ns entities.Namespace) ([]entities.Issue, error) {
	issues, _, err := s.validate(ns)
	return issues, err
}

func (s *CheckService) validate(ns entities.Namespace) ([]entities.Issue, []entities.LocaleResult, error) {
	basePath := ns.BasePath()
	issue := func(kind entities.IssueKind, path, msg string) entities.Issue {
		return entities.Issue{Namespace: ns.Name, Kind: kind, Path: path, Message: msg}
	}

	ok, err := s.catalogs.Exists(basePath)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return []entities.Issue{issue(entities.IssueMissingBase, basePath, "missing base catalog")}, nil, nil
	}

	base, err := s.catalogs.Load(basePath, ns.Format)
	if err != nil {
		return nil, nil, err
	}
	total := len(base)
	if total == 0 {
		return []entities.Issue{issue(entities.IssueEmptyBase, basePath, "base catalog has no keys")}, nil, nil
	}

	files, err := s.catalogs.List(ns.Dir, ns.Format)
	if err != nil {
		return nil, nil, err
	}

	var (
		issues  []entities.Issue
		results []entities.LocaleResult
	)
	for _, path := range files {
		id := locale.Stem(path)
		if locale.IsBaseVariant(id, ns.BaseLocale) {
			s.logger.Debug("skipping base language variant", "namespace", ns.Name, "locale", id)
			continue
		}

		cat, err := s.catalogs.Load(path, ns.Format)
		if err != nil {
			return nil, nil, err
		}

		result := entities.LocaleResult{Namespace: ns.Name, Locale: id, Path: path, Total: total}

		missing, extra := cat.Diff(base)
		if len(missing) > 0 || len(extra) > 0 {
			var details []string
			if len(missing) > 0 {
				details = append(details, fmt.Sprintf("missing=%d", len(missing)))
			}
			if len(extra) > 0 {
				details = append(details, fmt.Sprintf("extra=%d", len(extra)))
			}
			s.logger.Debug("key mismatch", "path", path, "missing", missing, "extra", extra)
			issues = append(issues, issue(entities.IssueKeyMismatch, path,
				fmt.Sprintf("key mismatch (%s)", strings.Join(details, ", "))))
			results = append(results, result)
			continue
		}

		result.KeysMatch = true
		result.Same = cat.SameCount(base)
		results = append(results, result)

		switch ratio := result.Ratio(); {
		case result.Same == total:
			issues = append(issues, issue(entities.IssueEnglishClone, path,
				fmt.Sprintf("appears to be a full English clone (%d/%d)", result.Same, total)))
		case ratio > ns.MaxSameRatio:
			issues = append(issues, issue(entities.IssueSameRatio, path,
				fmt.Sprintf("too many English-identical values (%d/%d = %.1f%%, max %.1f%%)",
					result.Same, total, ratio*100, ns.MaxSameRatio*100)))
		default:
			s.logger.Debug("locale ok", "path", path, "same", result.Same, "total", total)
		}
	}
	return issues, results, nil
}
