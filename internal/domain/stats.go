// Package domain contains the core data structures and domain logic for the application.
package domain

import "sort"

// MetricLabels are the radar axis labels, positionally bound to MetricVector.
var MetricLabels = [5]string{"Commit", "Issue", "PullReq", "Review", "Repo"}

// CalendarCell is a single day of the contribution calendar.
// Color is empty when the day carries no color of its own.
type CalendarCell struct {
	Count int    `json:"count"`
	Color string `json:"color,omitempty"`
}

// HasColor reports whether the cell was pre-colored upstream.
func (c CalendarCell) HasColor() bool {
	return c.Color != ""
}

// CalendarGrid holds weeks of days. The last week may be partial.
type CalendarGrid [][]CalendarCell

// Cells returns the number of days present in the grid.
func (g CalendarGrid) Cells() int {
	n := 0
	for _, week := range g {
		n += len(week)
	}
	return n
}

// LanguageStat is the accumulated size of one language and its display color.
type LanguageStat struct {
	Magnitude int    `json:"magnitude"`
	Color     string `json:"color"`
}

// CategoryStat maps a category name (a language) to its size and color.
type CategoryStat map[string]LanguageStat

// Category is a named CategoryStat entry.
type Category struct {
	Name string
	LanguageStat
}

// Ranked returns the entries by descending magnitude, ties broken by name.
// This order drives both the donut slices and the legend grid.
func (c CategoryStat) Ranked() []Category {
	out := make([]Category, 0, len(c))
	for name, stat := range c {
		out = append(out, Category{Name: name, LanguageStat: stat})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Magnitude != out[j].Magnitude {
			return out[i].Magnitude > out[j].Magnitude
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Top keeps the n highest ranked entries. n <= 0 keeps everything.
func (c CategoryStat) Top(n int) CategoryStat {
	if n <= 0 || n >= len(c) {
		return c
	}
	out := make(CategoryStat, n)
	for _, cat := range c.Ranked()[:n] {
		out[cat.Name] = cat.LanguageStat
	}
	return out
}

// MetricVector is Commit, Issue, PullReq, Review and Repo contribution totals, in that order.
type MetricVector [5]int

// Summary holds the values printed in the footer.
type Summary struct {
	TotalContributions int `json:"total_contributions"`
	TotalStars         int `json:"total_stars"`
	TotalForks         int `json:"total_forks"`
}

// ActivityRecord is everything the renderer needs for one user.
// It is the core domain entity of this application.
type ActivityRecord struct {
	Login     string       `json:"login"`
	Calendar  CalendarGrid `json:"calendar"`
	Languages CategoryStat `json:"languages"`
	Metrics   MetricVector `json:"metrics"`
	Summary   Summary      `json:"summary"`
}

// RepoStats holds the popularity counts of a single repository.
type RepoStats struct {
	Name  string `json:"name"`
	Stars int    `json:"stars"`
	Forks int    `json:"forks"`
}

// LanguageMetric is one language edge of a repository.
type LanguageMetric struct {
	Name  string `json:"name"`
	Size  int    `json:"size"`
	Color string `json:"color,omitempty"`
}
