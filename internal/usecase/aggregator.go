// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"log"
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/naka-gawa/github-stats-card/internal/domain"
	"github.com/naka-gawa/github-stats-card/internal/gateway"
	"golang.org/x/sync/errgroup"
)

// DefaultLanguageColor is used for languages GitHub assigns no color to.
const DefaultLanguageColor = "#cccccc"

// Options tunes an assembled record before it is rendered.
type Options struct {
	// TopLanguages keeps only the N largest languages; 0 keeps all.
	TopLanguages int
	// Seasonal drops GitHub's day colors so the seasonal palette applies.
	Seasonal bool
}

// Aggregator is the use case for assembling a user's activity record.
// It orchestrates the fetching and combining of data.
type Aggregator struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, logger *log.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Aggregate performs the main business logic.
// It fetches all required data concurrently from the gateway and merges it
// into a single ActivityRecord ready for rendering.
func (a *Aggregator) Aggregate(ctx context.Context, login string) (*domain.ActivityRecord, error) {
	a.logger.Println("Usecase: Starting data aggregation...")

	var contributions *gateway.Contributions
	var repos []*domain.RepoStats
	var languagesByRepo map[string][]domain.LanguageMetric

	// Use an errgroup to fetch all data concurrently.
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		contributions, err = a.fetcher.FetchContributions(egCtx, login)
		return err
	})

	eg.Go(func() error {
		var err error
		repos, err = a.fetcher.FetchRepositories(egCtx, login)
		return err
	})

	eg.Go(func() error {
		var err error
		languagesByRepo, err = a.fetcher.FetchLanguages(egCtx, login)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	a.logger.Println("Usecase: All data fetched successfully.")

	record := &domain.ActivityRecord{
		Login:     login,
		Calendar:  contributions.Calendar,
		Languages: MergeLanguages(languagesByRepo),
		Metrics:   contributions.Metrics,
		Summary:   domain.Summary{TotalContributions: contributions.TotalContributions},
	}
	for _, repo := range repos {
		record.Summary.TotalStars += repo.Stars
		record.Summary.TotalForks += repo.Forks
	}
	a.logCalendar(record.Calendar)
	a.logger.Println("Usecase: Aggregation complete.")
	return record, nil
}

// Apply returns a copy of rec trimmed to the N largest languages and, when
// Seasonal is set, stripped of day colors. rec itself is left untouched.
func (o Options) Apply(rec *domain.ActivityRecord) *domain.ActivityRecord {
	out := *rec
	out.Languages = rec.Languages.Top(o.TopLanguages)
	if o.Seasonal {
		out.Calendar = withoutColors(rec.Calendar)
	}
	return &out
}

// MergeLanguages sums language sizes across repositories. A language keeps
// the first color seen for it, or DefaultLanguageColor when none is known.
func MergeLanguages(byRepo map[string][]domain.LanguageMetric) domain.CategoryStat {
	// Walk repositories by name for a reproducible color choice.
	names := make([]string, 0, len(byRepo))
	for name := range byRepo {
		names = append(names, name)
	}
	sort.Strings(names)

	merged := make(domain.CategoryStat)
	for _, name := range names {
		for _, lang := range byRepo[name] {
			entry, ok := merged[lang.Name]
			if !ok || entry.Color == DefaultLanguageColor {
				entry.Color = DefaultLanguageColor
				if lang.Color != "" {
					entry.Color = lang.Color
				}
			}
			entry.Magnitude += lang.Size
			merged[lang.Name] = entry
		}
	}
	return merged
}

func withoutColors(grid domain.CalendarGrid) domain.CalendarGrid {
	out := make(domain.CalendarGrid, len(grid))
	for w, week := range grid {
		out[w] = make([]domain.CalendarCell, len(week))
		for d, day := range week {
			out[w][d] = domain.CalendarCell{Count: day.Count}
		}
	}
	return out
}

// logCalendar reports the busiest day and the daily mean of the calendar.
func (a *Aggregator) logCalendar(grid domain.CalendarGrid) {
	counts := make(stats.Float64Data, 0, grid.Cells())
	for _, week := range grid {
		for _, day := range week {
			counts = append(counts, float64(day.Count))
		}
	}
	busiest, err := counts.Max()
	if err != nil {
		a.logger.Println("Usecase: Contribution calendar is empty.")
		return
	}
	mean, _ := counts.Mean()
	a.logger.Printf("Usecase: %d days, busiest day %.0f contributions, daily mean %.2f.\n", len(counts), busiest, mean)
}
