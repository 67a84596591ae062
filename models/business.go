package models

import "strings"

// LocalBusiness is a third-party business imported from the tabular source.
type LocalBusiness struct {
	Name        string  `bson:"name" json:"name"`
	USState     string  `bson:"us_state" json:"us_state"` // normalized, never empty once loaded
	City        string  `bson:"city" json:"city"`
	FullAddress string  `bson:"full_address" json:"full_address"`
	Phone       string  `bson:"phone" json:"phone"`
	Rating      float64 `bson:"rating" json:"rating"`
	Reviews     int     `bson:"reviews,truncate" json:"reviews"` // never negative once loaded
	Site        string  `bson:"site" json:"site"`
	Subtypes    string  `bson:"subtypes" json:"subtypes"`

	// Columns of the source row beyond the ones above, keyed by header name.
	Extra map[string]string `bson:"extra,omitempty" json:"extra,omitempty"`
}

// InState reports whether the business operates in state, ignoring case.
func (b LocalBusiness) InState(state string) bool {
	return strings.EqualFold(b.USState, state)
}

// SubtypeList splits the free-text subtypes column into tags.
func (b LocalBusiness) SubtypeList() []string {
	var out []string
	for _, s := range strings.Split(b.Subtypes, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
