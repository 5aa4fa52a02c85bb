package timezones

import (
	"cmp"
	"slices"
	"strings"
)

// match ranks, best first.
const (
	matchExact = iota
	matchPrefix
	matchCity
	matchContains
)

type candidate struct {
	name string
	rank int
}

// rank orders the names matching query: exact names, then name prefixes,
// then city prefixes ("york" finds America/New_York), then substrings.
// Spaces in the query match underscores. An empty query keeps every name in
// order.
func rank(names []string, query string) []string {
	q := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(query), " ", "_"))
	if q == "" {
		return names
	}

	var found []candidate
	for _, name := range names {
		lower := strings.ToLower(name)
		if !strings.Contains(lower, q) {
			continue
		}
		found = append(found, candidate{name: name, rank: matchRank(lower, q)})
	}
	slices.SortStableFunc(found, func(a, b candidate) int {
		return cmp.Or(cmp.Compare(a.rank, b.rank), strings.Compare(a.name, b.name))
	})

	out := make([]string, len(found))
	for i, c := range found {
		out[i] = c.name
	}
	return out
}

func matchRank(name, q string) int {
	switch {
	case name == q:
		return matchExact
	case strings.HasPrefix(name, q):
		return matchPrefix
	}
	city := name
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		city = name[i+1:]
	}
	for _, word := range strings.Split(city, "_") {
		if strings.HasPrefix(word, q) {
			return matchCity
		}
	}
	if strings.HasPrefix(city, q) {
		return matchCity
	}
	return matchContains
}
