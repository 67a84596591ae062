package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"regexp"

	"llcdirectory/models"

	"github.com/spf13/viper"
)

//go:embed providers.yaml
var defaultProvidersYAML []byte

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ProviderTable is the immutable, ordered list of providers built at start-up.
type ProviderTable struct {
	providers []models.ServiceProvider
}

// NewProviderTable validates providers and takes a private copy of them.
func NewProviderTable(providers []models.ServiceProvider) (ProviderTable, error) {
	if len(providers) == 0 {
		return ProviderTable{}, fmt.Errorf("provider table is empty")
	}
	seen := make(map[string]struct{}, len(providers))
	recommended := ""
	for i, p := range providers {
		if p.Name == "" {
			return ProviderTable{}, fmt.Errorf("provider %d: missing name", i)
		}
		if !slugPattern.MatchString(p.Slug) {
			return ProviderTable{}, fmt.Errorf("provider %q: slug %q is not URL-safe", p.Name, p.Slug)
		}
		if _, dup := seen[p.Slug]; dup {
			return ProviderTable{}, fmt.Errorf("provider %q: duplicate slug %q", p.Name, p.Slug)
		}
		seen[p.Slug] = struct{}{}
		if p.Rating < 0 || p.Rating > 5 {
			return ProviderTable{}, fmt.Errorf("provider %q: rating %.2f outside 0-5", p.Name, p.Rating)
		}
		if p.Reviews < 0 {
			return ProviderTable{}, fmt.Errorf("provider %q: negative review count", p.Name)
		}
		if p.Recommended {
			if recommended != "" {
				return ProviderTable{}, fmt.Errorf("providers %q and %q are both recommended", recommended, p.Slug)
			}
			recommended = p.Slug
		}
	}

	table := ProviderTable{providers: make([]models.ServiceProvider, len(providers))}
	for i, p := range providers {
		table.providers[i] = cloneProvider(p)
	}
	return table, nil
}

// LoadProviders reads the provider table from path, or from the built-in table when path is empty.
// Any format viper understands is accepted; the list lives under the "providers" key.
func LoadProviders(path string) (ProviderTable, error) {
	v := viper.New()
	if path == "" {
		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewReader(defaultProvidersYAML)); err != nil {
			return ProviderTable{}, fmt.Errorf("failed to parse built-in providers: %w", err)
		}
	} else {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return ProviderTable{}, fmt.Errorf("failed to read providers file %s: %w", path, err)
		}
	}

	var providers []models.ServiceProvider
	if err := v.UnmarshalKey("providers", &providers); err != nil {
		return ProviderTable{}, fmt.Errorf("failed to decode providers: %w", err)
	}
	return NewProviderTable(providers)
}

// MustDefaultProviders returns the built-in table and panics if it is invalid.
func MustDefaultProviders() ProviderTable {
	table, err := LoadProviders("")
	if err != nil {
		panic(err)
	}
	return table
}

// All returns a copy of the table in declaration order.
func (t ProviderTable) All() []models.ServiceProvider {
	out := make([]models.ServiceProvider, len(t.providers))
	for i, p := range t.providers {
		out[i] = cloneProvider(p)
	}
	return out
}

func (t ProviderTable) Len() int {
	return len(t.providers)
}

func cloneProvider(p models.ServiceProvider) models.ServiceProvider {
	p.Features = cloneStrings(p.Features)
	p.States = cloneStrings(p.States)
	p.Pros = cloneStrings(p.Pros)
	p.Cons = cloneStrings(p.Cons)
	return p
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
