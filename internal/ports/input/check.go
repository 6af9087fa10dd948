package input

import "i18ncheck/internal/domain/entities"

// CheckUseCase validates catalog namespaces.
type CheckUseCase interface {
	ValidateNamespace(ns entities.Namespace) ([]entities.Issue, error)
	Run(namespaces []entities.Namespace) (*entities.Report, error)
}

// UsageUseCase checks that keys referenced from source exist in the base catalog.
type UsageUseCase interface {
	CheckUsage(root string, ns entities.Namespace) ([]entities.Issue, error)
	Run(root string, namespaces []entities.Namespace) (*entities.Report, error)
}
