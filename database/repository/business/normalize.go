package businessRepo

import (
	"sort"
	"strings"

	"llcdirectory/models"
)

// Markers that spreadsheet exports and dataframe dumps write for an empty cell.
var nullMarkers = map[string]struct{}{
	"nan":    {},
	"none":   {},
	"null":   {},
	"<na>":   {},
	"n/a":    {},
	"#n/a":   {},
	"nat":    {},
	"(null)": {},
}

// NormalizeState trims raw and maps null markers to the empty string.
func NormalizeState(raw string) string {
	s := strings.TrimSpace(raw)
	if _, ok := nullMarkers[strings.ToLower(s)]; ok {
		return ""
	}
	return s
}

// normalizeBusinesses normalizes us_state in place and drops records without one.
// Negative review counts become zero.
func normalizeBusinesses(in []models.LocalBusiness) []models.LocalBusiness {
	out := in[:0]
	for _, b := range in {
		b.USState = NormalizeState(b.USState)
		if b.USState == "" {
			continue
		}
		if b.Reviews < 0 {
			b.Reviews = 0
		}
		out = append(out, b)
	}
	return out
}

// DistinctStates returns the sorted set of non-empty normalized states of businesses.
func DistinctStates(businesses []models.LocalBusiness) []string {
	raw := make([]string, 0, len(businesses))
	for _, b := range businesses {
		raw = append(raw, b.USState)
	}
	return uniqueStates(raw)
}

func uniqueStates(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	states := make([]string, 0)
	for _, r := range raw {
		s := NormalizeState(r)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		states = append(states, s)
	}
	sort.Strings(states)
	return states
}
