package catalog

import (
	"context"
	"fmt"

	"llcdirectory/models"

	"go.uber.org/zap"
)

func (s *DefaultCatalogService) ListServices(ctx context.Context) ([]models.ServiceProvider, error) {
	providers := s.Providers.All()

	var allStates []string
	resolved := false
	for i := range providers {
		if len(providers[i].States) > 0 {
			continue
		}
		if !resolved {
			states, err := s.ListStates(ctx)
			if err != nil {
				return nil, err
			}
			allStates = states
			resolved = true
		}
		providers[i].States = append([]string(nil), allStates...)
	}
	return providers, nil
}

func (s *DefaultCatalogService) ListStates(ctx context.Context) ([]string, error) {
	states, err := s.Source.States(ctx)
	if err != nil {
		s.Logger.Error("ListStates: failed to load states", zap.Error(err))
		return nil, fmt.Errorf("failed to load states: %w", err)
	}
	return states, nil
}

func (s *DefaultCatalogService) ListLocalBusinesses(ctx context.Context) ([]models.LocalBusiness, error) {
	businesses, err := s.Source.Businesses(ctx)
	if err != nil {
		s.Logger.Error("ListLocalBusinesses: failed to load businesses", zap.Error(err))
		return nil, fmt.Errorf("failed to load local businesses: %w", err)
	}
	return businesses, nil
}

func (s *DefaultCatalogService) ServicesByState(ctx context.Context, state string) ([]models.ServiceProvider, error) {
	providers, err := s.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.ServiceProvider, 0, len(providers))
	for _, p := range providers {
		if p.OffersState(state) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *DefaultCatalogService) LocalBusinessesByState(ctx context.Context, state string) ([]models.LocalBusiness, error) {
	businesses, err := s.ListLocalBusinesses(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.LocalBusiness, 0)
	for _, b := range businesses {
		if b.InState(state) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *DefaultCatalogService) ServiceBySlug(ctx context.Context, slug string) (models.ServiceProvider, error) {
	providers, err := s.ListServices(ctx)
	if err != nil {
		return models.ServiceProvider{}, err
	}
	for _, p := range providers {
		if p.Slug == slug {
			return p, nil
		}
	}
	return models.ServiceProvider{}, fmt.Errorf("%w: %s", ErrServiceNotFound, slug)
}
