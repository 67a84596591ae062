package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"llcdirectory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProviders(t *testing.T) {
	table, err := LoadProviders("")
	require.NoError(t, err)

	providers := table.All()
	require.Len(t, providers, 10)

	first := providers[0]
	assert.Equal(t, "Northwestern", first.Name)
	assert.Equal(t, "$39 formation service", first.Pricing)
	assert.True(t, first.Recommended)
	assert.InDelta(t, 4.8, first.Rating, 1e-9)
	assert.Equal(t, 1250, first.Reviews)
	assert.Len(t, first.Features, 5)
	assert.Equal(t, "Business address & email included", first.Features[1])
	assert.Equal(t, []string{"Limited additional services", "No attorney consultations", "Basic website builder"}, first.Cons)

	recommended := 0
	slugs := map[string]bool{}
	for _, p := range providers {
		assert.False(t, slugs[p.Slug], "duplicate slug %s", p.Slug)
		slugs[p.Slug] = true
		assert.Empty(t, p.States, "%s should cover every state", p.Slug)
		if p.Recommended {
			recommended++
		}
	}
	assert.Equal(t, 1, recommended)
	assert.Equal(t, "$99.99/month subscription", providers[2].Pricing)
	assert.InDelta(t, 4.0, providers[9].Rating, 1e-9)
}

func TestNewProviderTable_Validation(t *testing.T) {
	cases := []struct {
		name      string
		providers []models.ServiceProvider
	}{
		{"empty", nil},
		{"missing name", []models.ServiceProvider{{Slug: "a"}}},
		{"bad slug", []models.ServiceProvider{{Name: "A", Slug: "Not A Slug"}}},
		{"duplicate slug", []models.ServiceProvider{{Name: "A", Slug: "a"}, {Name: "B", Slug: "a"}}},
		{"rating too high", []models.ServiceProvider{{Name: "A", Slug: "a", Rating: 5.1}}},
		{"negative reviews", []models.ServiceProvider{{Name: "A", Slug: "a", Reviews: -1}}},
		{"two recommended", []models.ServiceProvider{
			{Name: "A", Slug: "a", Recommended: true},
			{Name: "B", Slug: "b", Recommended: true},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewProviderTable(tc.providers)
			assert.Error(t, err)
		})
	}
}

func TestProviderTable_AllReturnsCopies(t *testing.T) {
	table := MustDefaultProviders()

	first := table.All()
	first[0].Name = "Changed"
	first[0].Features[0] = "Changed"

	again := table.All()
	assert.Equal(t, "Northwestern", again[0].Name)
	assert.Equal(t, "Free registered agent service", again[0].Features[0])
}

func TestLoadProviders_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.json")
	body := `{"providers": [
		{"name": "Delaware Direct", "slug": "delaware-direct", "states": ["Delaware"], "rating": 4.2, "reviews": 10},
		{"name": "Coast to Coast", "slug": "coast-to-coast", "recommended": true}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	table, err := LoadProviders(path)
	require.NoError(t, err)
	providers := table.All()
	require.Len(t, providers, 2)
	assert.Equal(t, []string{"Delaware"}, providers[0].States)
	assert.True(t, providers[1].Recommended)
}

func TestLoadProviders_MissingFile(t *testing.T) {
	_, err := LoadProviders(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
