package models

// ServiceProvider is an LLC formation company listed in the directory.
type ServiceProvider struct {
	Name        string   `mapstructure:"name" json:"name"`
	Slug        string   `mapstructure:"slug" json:"slug"` // unique, URL-safe
	Pricing     string   `mapstructure:"pricing" json:"pricing"`
	Description string   `mapstructure:"description" json:"description"`
	Features    []string `mapstructure:"features" json:"features"`
	States      []string `mapstructure:"states" json:"states"` // empty in the table means every known state
	Website     string   `mapstructure:"website" json:"website"`
	Rating      float64  `mapstructure:"rating" json:"rating"` // 0 to 5
	Reviews     int      `mapstructure:"reviews" json:"reviews"`
	Recommended bool     `mapstructure:"recommended" json:"recommended"`
	Pros        []string `mapstructure:"pros" json:"pros"`
	Cons        []string `mapstructure:"cons" json:"cons"`
}

// OffersState reports whether the provider lists state. The match is exact.
func (p ServiceProvider) OffersState(state string) bool {
	for _, s := range p.States {
		if s == state {
			return true
		}
	}
	return false
}
