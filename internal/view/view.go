// Package view derives the rendered list and stat cards from the in-memory
// collection. Derivation is pure: the same inputs always produce the same
// output and the input slice is never mutated.
package view

import (
	"sort"
	"strings"

	"github.com/jiyaaggarwal267-maker/career-tracker/internal/model"
)

// FilterAll disables status narrowing.
const FilterAll = "All"

// Options select which records are visible and in what order.
type Options struct {
	// StatusFilter narrows to one status. "All" (or empty) keeps everything.
	StatusFilter string
	// Search keeps records whose company or role contains the term,
	// case-insensitive.
	Search string
	// SortDescending orders by date newest first when true.
	SortDescending bool
}

// Derive applies the status filter, then the search term, then the date sort.
func Derive(apps []model.Application, opts Options) []model.Application {
	out := []model.Application{}
	term := strings.ToLower(opts.Search)

	for _, a := range apps {
		if opts.StatusFilter != "" && opts.StatusFilter != FilterAll && a.Status != opts.StatusFilter {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(a.Company), term) &&
			!strings.Contains(strings.ToLower(a.Role), term) {
			continue
		}
		out = append(out, a)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if opts.SortDescending {
			return out[i].Date > out[j].Date
		}
		return out[i].Date < out[j].Date
	})
	return out
}

// Counts computes the stat-card numbers. They always come from the full
// unfiltered collection, never the derived view.
func Counts(apps []model.Application) map[string]int {
	counts := map[string]int{"Total": len(apps)}
	for _, status := range model.Statuses {
		counts[status] = 0
	}
	for _, a := range apps {
		counts[a.Status]++
	}
	return counts
}
