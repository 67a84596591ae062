package catalog

import (
	"context"
	"errors"

	businessRepo "llcdirectory/database/repository/business"
	"llcdirectory/models"

	"go.uber.org/zap"
)

// ErrServiceNotFound is returned by ServiceBySlug when no provider has the slug.
var ErrServiceNotFound = errors.New("service not found")

// CatalogService answers every query the directory pages make.
type CatalogService interface {
	// ListServices returns every provider in declaration order with its states resolved.
	ListServices(ctx context.Context) ([]models.ServiceProvider, error)
	// ListStates returns the sorted, de-duplicated states known to the business source.
	ListStates(ctx context.Context) ([]string, error)
	// ListLocalBusinesses returns every business with a usable state.
	ListLocalBusinesses(ctx context.Context) ([]models.LocalBusiness, error)
	// ServicesByState returns providers offering state. Matching is case-sensitive.
	ServicesByState(ctx context.Context, state string) ([]models.ServiceProvider, error)
	// LocalBusinessesByState returns businesses in state. Matching ignores case.
	LocalBusinessesByState(ctx context.Context, state string) ([]models.LocalBusiness, error)
	// ServiceBySlug returns the provider with slug or ErrServiceNotFound.
	ServiceBySlug(ctx context.Context, slug string) (models.ServiceProvider, error)
}

// DefaultCatalogService implements CatalogService over a provider table and a business source.
type DefaultCatalogService struct {
	Providers ProviderTable
	Source    businessRepo.DataSource
	Logger    *zap.Logger
}

func NewCatalogService(providers ProviderTable, source businessRepo.DataSource, logger *zap.Logger) *DefaultCatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultCatalogService{Providers: providers, Source: source, Logger: logger}
}
