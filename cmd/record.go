package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/naka-gawa/github-stats-card/internal/domain"
	"github.com/naka-gawa/github-stats-card/internal/gateway"
	"github.com/naka-gawa/github-stats-card/internal/store"
	"github.com/naka-gawa/github-stats-card/internal/usecase"
	"github.com/spf13/cobra"
)

// recordSource says where an activity record comes from: a JSON file, the
// cache or the GitHub API.
type recordSource struct {
	user      string
	input     string
	cachePath string
	cacheTTL  time.Duration
	refresh   bool
}

func addRecordFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("user", "u", "", "Target GitHub user name (defaults to $GITHUB_USER)")
	cmd.Flags().StringP("input", "i", "", "Read the activity record from a JSON file instead of GitHub")
	cmd.Flags().String("cache", "", "SQLite file used to cache fetched records")
	cmd.Flags().Duration("cache-ttl", 6*time.Hour, "Maximum age of a cached record")
	cmd.Flags().Bool("refresh", false, "Evict the cached record and fetch it again")
}

func recordSourceFromFlags(cmd *cobra.Command) recordSource {
	src := recordSource{}
	src.user, _ = cmd.Flags().GetString("user")
	src.input, _ = cmd.Flags().GetString("input")
	src.cachePath, _ = cmd.Flags().GetString("cache")
	src.cacheTTL, _ = cmd.Flags().GetDuration("cache-ttl")
	src.refresh, _ = cmd.Flags().GetBool("refresh")
	if src.user == "" {
		src.user = os.Getenv("GITHUB_USER")
	}
	return src
}

// loadRecord resolves the record from the configured source.
func loadRecord(ctx context.Context, src recordSource, logger *log.Logger) (*domain.ActivityRecord, error) {
	if src.input != "" {
		return readRecordFile(src.input)
	}
	if src.user == "" {
		return nil, errors.New("no user given: pass --user or set GITHUB_USER")
	}

	var cache *store.Store
	if src.cachePath != "" {
		var err error
		cache, err = store.New(src.cachePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open cache: %w", err)
		}
		defer cache.Close()

		if src.refresh {
			if err := cache.Delete(ctx, src.user); err != nil {
				return nil, fmt.Errorf("failed to evict cached record: %w", err)
			}
			logger.Printf("Evicted cached record for %s.\n", src.user)
		}

		cached, err := cache.Get(ctx, src.user)
		switch {
		case err == nil && cached.FreshAt(time.Now(), src.cacheTTL):
			logger.Printf("Using cached record for %s fetched at %s.\n", src.user, cached.FetchedAt.Format(time.RFC3339))
			return cached.Record, nil
		case err == nil:
			logger.Printf("Cached record for %s is stale.\n", src.user)
		case !errors.Is(err, store.ErrNotFound):
			logger.Printf("Ignoring unreadable cache entry: %v\n", err)
		}
	}

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, errors.New("GITHUB_TOKEN environment variable is not set")
	}

	// Inject dependencies and run the main business logic.
	githubGateway, err := gateway.NewGitHubGateway(token, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub gateway: %w", err)
	}
	record, err := usecase.NewAggregator(githubGateway, logger).Aggregate(ctx, src.user)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stats: %w", err)
	}

	if cache != nil {
		if err := cache.Put(ctx, record, time.Now()); err != nil {
			logger.Printf("Failed to cache record: %v\n", err)
		}
	}
	return record, nil
}

func readRecordFile(path string) (*domain.ActivityRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}
	var record domain.ActivityRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse record %s: %w", path, err)
	}
	return &record, nil
}
