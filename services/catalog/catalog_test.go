package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"testing"

	businessRepo "llcdirectory/database/repository/business"
	"llcdirectory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	businesses []models.LocalBusiness
	err        error
	calls      int
}

func (s *stubSource) Businesses(context.Context) ([]models.LocalBusiness, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.LocalBusiness, len(s.businesses))
	copy(out, s.businesses)
	return out, nil
}

func (s *stubSource) States(ctx context.Context) ([]string, error) {
	businesses, err := s.Businesses(ctx)
	if err != nil {
		return nil, err
	}
	return businessRepo.DistinctStates(businesses), nil
}

func newStubSource() *stubSource {
	return &stubSource{businesses: []models.LocalBusiness{
		{Name: "Lone Star Filings", USState: "Texas", City: "Austin"},
		{Name: "Bayou Agents", USState: "louisiana", City: "Baton Rouge"},
		{Name: "Golden Gate Legal", USState: "California", City: "San Francisco"},
		{Name: "Sunset Formations", USState: "CALIFORNIA", City: "Los Angeles"},
	}}
}

func newTestService(t *testing.T, source businessRepo.DataSource) *DefaultCatalogService {
	t.Helper()
	return NewCatalogService(MustDefaultProviders(), source, nil)
}

func TestListServices_DeclarationOrderAndResolvedStates(t *testing.T) {
	svc := newTestService(t, newStubSource())

	services, err := svc.ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 10)
	assert.Equal(t, "northwestern", services[0].Slug)
	assert.Equal(t, "harbor-compliance", services[9].Slug)

	want := []string{"CALIFORNIA", "California", "Texas", "louisiana"}
	for _, s := range services {
		assert.Equal(t, want, s.States, s.Slug)
	}
}

func TestListServices_ExplicitStatesAreKept(t *testing.T) {
	table, err := NewProviderTable([]models.ServiceProvider{
		{Name: "Everywhere", Slug: "everywhere"},
		{Name: "Lone Star Only", Slug: "lone-star-only", States: []string{"Texas"}},
	})
	require.NoError(t, err)
	svc := NewCatalogService(table, newStubSource(), nil)

	services, err := svc.ListServices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"CALIFORNIA", "California", "Texas", "louisiana"}, services[0].States)
	assert.Equal(t, []string{"Texas"}, services[1].States)

	inCalifornia, err := svc.ServicesByState(context.Background(), "California")
	require.NoError(t, err)
	require.Len(t, inCalifornia, 1)
	assert.Equal(t, "everywhere", inCalifornia[0].Slug)
}

func TestListStates_SortedUniqueNonEmpty(t *testing.T) {
	src := newStubSource()
	src.businesses = append(src.businesses,
		models.LocalBusiness{Name: "dup", USState: "Texas"},
		models.LocalBusiness{Name: "blank", USState: "  "},
		models.LocalBusiness{Name: "null", USState: "nan"},
	)
	svc := newTestService(t, src)

	states, err := svc.ListStates(context.Background())
	require.NoError(t, err)
	assert.True(t, sort.StringsAreSorted(states))
	seen := map[string]bool{}
	for _, s := range states {
		assert.NotEmpty(t, s)
		assert.False(t, seen[s], "duplicate %q", s)
		seen[s] = true
	}
}

func TestServiceBySlug(t *testing.T) {
	svc := newTestService(t, newStubSource())
	ctx := context.Background()

	services, err := svc.ListServices(ctx)
	require.NoError(t, err)
	for _, p := range services {
		got, err := svc.ServiceBySlug(ctx, p.Slug)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err = svc.ServiceBySlug(ctx, "does-not-exist")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestServicesByState_SubsetAndCaseSensitive(t *testing.T) {
	svc := newTestService(t, newStubSource())
	ctx := context.Background()

	all, err := svc.ListServices(ctx)
	require.NoError(t, err)
	slugs := map[string]bool{}
	for _, p := range all {
		slugs[p.Slug] = true
	}

	for _, state := range []string{"Texas", "texas", "California", "Narnia", ""} {
		got, err := svc.ServicesByState(ctx, state)
		require.NoError(t, err)
		for _, p := range got {
			assert.True(t, slugs[p.Slug])
			assert.Contains(t, p.States, state)
		}
	}

	texas, err := svc.ServicesByState(ctx, "Texas")
	require.NoError(t, err)
	assert.Len(t, texas, 10)

	lower, err := svc.ServicesByState(ctx, "texas")
	require.NoError(t, err)
	assert.Empty(t, lower)
}

func TestLocalBusinessesByState_IgnoresCase(t *testing.T) {
	svc := newTestService(t, newStubSource())
	ctx := context.Background()

	lower, err := svc.LocalBusinessesByState(ctx, "california")
	require.NoError(t, err)
	upper, err := svc.LocalBusinessesByState(ctx, "CALIFORNIA")
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
	require.Len(t, lower, 2)
	assert.Equal(t, "Golden Gate Legal", lower[0].Name)
	assert.Equal(t, "Sunset Formations", lower[1].Name)

	none, err := svc.LocalBusinessesByState(ctx, "Narnia")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalog_MissingFileUsesFallback(t *testing.T) {
	primary := businessRepo.NewCSVSource(filepath.Join(t.TempDir(), "absent.csv"), nil)
	source := businessRepo.NewFallbackSource(primary, businessRepo.NewFixedSource(), nil)
	svc := newTestService(t, source)
	ctx := context.Background()

	states, err := svc.ListStates(ctx)
	require.NoError(t, err)
	assert.Equal(t, businessRepo.DefaultStates, states)

	businesses, err := svc.ListLocalBusinesses(ctx)
	require.NoError(t, err)
	assert.Equal(t, businessRepo.SampleBusinesses, businesses)

	houston, err := svc.LocalBusinessesByState(ctx, "texas")
	require.NoError(t, err)
	require.Len(t, houston, 1)
	assert.Equal(t, "Houston", houston[0].City)
}

func TestCatalog_SourceErrorsPropagate(t *testing.T) {
	boom := errors.New("permission denied")
	svc := newTestService(t, &stubSource{err: boom})
	ctx := context.Background()

	_, err := svc.ListServices(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = svc.LocalBusinessesByState(ctx, "Texas")
	assert.ErrorIs(t, err, boom)
	_, err = svc.ServiceBySlug(ctx, "northwestern")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrServiceNotFound)
}

func TestCatalog_NoMemoization(t *testing.T) {
	src := newStubSource()
	svc := newTestService(t, src)
	ctx := context.Background()

	_, err := svc.ListLocalBusinesses(ctx)
	require.NoError(t, err)
	_, err = svc.ListLocalBusinesses(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}
