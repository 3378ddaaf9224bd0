package report

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SearchProjects narrows a project picker with a fuzzy, accent-insensitive
// query, best matches first. An empty query returns the options unchanged.
func SearchProjects(options []string, query string) []string {
	if query == "" {
		return options
	}

	ranks := fuzzy.RankFindNormalizedFold(query, options)
	sort.Sort(ranks)

	matches := make([]string, 0, len(ranks))
	for _, r := range ranks {
		matches = append(matches, r.Target)
	}
	return matches
}
