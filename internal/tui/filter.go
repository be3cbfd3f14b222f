package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/sahilm/fuzzy"
)

// fuzzyFilter ranks task text against the "/" query. Ties keep list order,
// so newer tasks stay first among equally good matches.
func fuzzyFilter(term string, targets []string) []list.Rank {
	term = strings.TrimSpace(term)
	if term == "" {
		out := make([]list.Rank, len(targets))
		for i := range targets {
			out[i] = list.Rank{Index: i}
		}
		return out
	}
	matches := fuzzy.Find(term, targets)
	sort.Stable(matches)
	out := make([]list.Rank, len(matches))
	for i, mt := range matches {
		out[i] = list.Rank{Index: mt.Index, MatchedIndexes: mt.MatchedIndexes}
	}
	return out
}
