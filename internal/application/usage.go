package application

import (
	"fmt"
	"log/slog"

	"i18ncheck/internal/domain/entities"
	"i18ncheck/internal/ports/input"
	"i18ncheck/internal/ports/output"
)

// UsageLabel prefixes the report lines of a key usage check.
const UsageLabel = "i18n-keys"

var _ input.UsageUseCase = (*UsageService)(nil)

// UsageService checks that keys referenced from source code exist in the
// base catalog of their namespace.
type UsageService struct {
	catalogs output.CatalogRepository
	sources  output.SourceScanner
	logger   *slog.Logger
}

// NewUsageService returns a UsageService that scans sources for catalog keys.
func NewUsageService(catalogs output.CatalogRepository, sources output.SourceScanner, logger *slog.Logger) *UsageService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UsageService{catalogs: catalogs, sources: sources, logger: logger}
}

func (s *UsageService) Run(root string, namespaces []entities.Namespace) (*entities.Report, error) {
	report := &entities.Report{Label: UsageLabel}
	for _, ns := range namespaces {
		issues, err := s.CheckUsage(root, ns)
		if err != nil {
			return nil, err
		}
		report.Add(issues...)
	}
	return report, nil
}

// CheckUsage reports every distinct key a source file references that the
// base catalog lacks. Namespaces without usage globs or patterns are skipped.
func (s *UsageService) CheckUsage(root string, ns entities.Namespace) ([]entities.Issue, error) {
	if len(ns.UsageGlobs) == 0 || len(ns.UsagePatterns) == 0 {
		s.logger.Debug("no usage globs/patterns configured, skipping", "namespace", ns.Name)
		return nil, nil
	}

	basePath := ns.BasePath()
	ok, err := s.catalogs.Exists(basePath)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []entities.Issue{{Namespace: ns.Name, Kind: entities.IssueMissingBase, Path: basePath, Message: "missing base catalog"}}, nil
	}
	base, err := s.catalogs.Load(basePath, ns.Format)
	if err != nil {
		return nil, err
	}

	refs, err := s.sources.Scan(root, ns.UsageGlobs, ns.UsagePatterns)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("scanned key references", "namespace", ns.Name, "count", len(refs))

	var issues []entities.Issue
	seen := make(map[output.KeyReference]bool)
	for _, ref := range refs {
		if base.Has(ref.Key) || seen[ref] {
			continue
		}
		seen[ref] = true
		issues = append(issues, entities.Issue{
			Namespace: ns.Name,
			Kind:      entities.IssueUnknownKey,
			Path:      ref.Path,
			Message:   fmt.Sprintf("unknown i18n key %s (not in %s)", ref.Key, basePath),
		})
	}
	return issues, nil
}
