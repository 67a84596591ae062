package businessRepo

import (
	"context"
	"errors"

	"llcdirectory/models"

	"go.uber.org/zap"
)

// DefaultStates is served when no business data exists.
var DefaultStates = []string{
	"California", "Texas", "Florida", "New York", "Illinois",
	"Pennsylvania", "Ohio", "Georgia", "North Carolina", "Michigan",
}

// SampleBusinesses is served when no business data exists.
var SampleBusinesses = []models.LocalBusiness{
	{
		Name:        "ABC Legal Services",
		USState:     "California",
		City:        "Los Angeles",
		FullAddress: "123 Business St, Los Angeles, CA 90210",
		Phone:       "(555) 123-4567",
		Rating:      4.5,
		Reviews:     25,
		Site:        "https://example.com",
		Subtypes:    "LLC formation, Legal services",
	},
	{
		Name:        "Texas Business Solutions",
		USState:     "Texas",
		City:        "Houston",
		FullAddress: "456 Commerce Ave, Houston, TX 77001",
		Phone:       "(555) 234-5678",
		Rating:      4.3,
		Reviews:     18,
		Site:        "https://example.com",
		Subtypes:    "LLC formation, Business consulting",
	},
}

// FixedSource serves canned data. Its state list is independent of its businesses,
// matching what the site shows before any export has been dropped in place.
type FixedSource struct{}

func NewFixedSource() FixedSource {
	return FixedSource{}
}

func (FixedSource) Businesses(context.Context) ([]models.LocalBusiness, error) {
	out := make([]models.LocalBusiness, len(SampleBusinesses))
	copy(out, SampleBusinesses)
	return out, nil
}

func (FixedSource) States(context.Context) ([]string, error) {
	out := make([]string, len(DefaultStates))
	copy(out, DefaultStates)
	return out, nil
}

// FallbackSource asks primary first and answers from fallback when primary
// reports ErrSourceUnavailable. Availability is checked on every call.
type FallbackSource struct {
	primary  DataSource
	fallback DataSource
	logger   *zap.Logger
}

func NewFallbackSource(primary, fallback DataSource, logger *zap.Logger) *FallbackSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FallbackSource{primary: primary, fallback: fallback, logger: logger}
}

func (s *FallbackSource) Businesses(ctx context.Context) ([]models.LocalBusiness, error) {
	businesses, err := s.primary.Businesses(ctx)
	if errors.Is(err, ErrSourceUnavailable) {
		s.logger.Debug("business source unavailable, serving sample businesses", zap.Error(err))
		return s.fallback.Businesses(ctx)
	}
	return businesses, err
}

func (s *FallbackSource) States(ctx context.Context) ([]string, error) {
	states, err := s.primary.States(ctx)
	if errors.Is(err, ErrSourceUnavailable) {
		s.logger.Debug("business source unavailable, serving default states", zap.Error(err))
		return s.fallback.States(ctx)
	}
	return states, err
}
