// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/naka-gawa/github-stats-card/internal/domain"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
)

// Contributions holds the contribution calendar and the yearly totals of a user.
type Contributions struct {
	TotalContributions int
	Metrics            domain.MetricVector
	Calendar           domain.CalendarGrid
}

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchContributions(ctx context.Context, login string) (*Contributions, error)
	FetchRepositories(ctx context.Context, login string) ([]*domain.RepoStats, error)
	// FetchLanguages returns the language edges of every owned repository, keyed by full name.
	FetchLanguages(ctx context.Context, login string) (map[string][]domain.LanguageMetric, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// contributionsQuery fetches the last year of contributions.
type contributionsQuery struct {
	User struct {
		ContributionsCollection struct {
			TotalCommitContributions            int
			TotalIssueContributions             int
			TotalPullRequestContributions       int
			TotalPullRequestReviewContributions int
			TotalRepositoryContributions        int
			ContributionCalendar                struct {
				TotalContributions int
				Weeks              []struct {
					ContributionDays []struct {
						ContributionCount int
						Color             string
					}
				}
			}
		}
	} `graphql:"user(login: $login)"`
}

// languagesQuery pages through owned repositories and their ten largest languages.
type languagesQuery struct {
	User struct {
		Repositories struct {
			PageInfo struct {
				HasNextPage bool
				EndCursor   githubv4.String
			}
			Nodes []struct {
				NameWithOwner string
				Languages     struct {
					Edges []struct {
						Size int
						Node struct {
							Name  string
							Color *string
						}
					}
				} `graphql:"languages(first: 10, orderBy: {field: SIZE, direction: DESC})"`
			}
		} `graphql:"repositories(first: 100, ownerAffiliations: OWNER, after: $cursor)"`
	} `graphql:"user(login: $login)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		logger:        logger,
	}, nil
}

// FetchContributions fetches the contribution calendar and the five contribution totals.
func (g *GitHubGateway) FetchContributions(ctx context.Context, login string) (*Contributions, error) {
	g.logger.Println("[1/3] Fetching contribution calendar using GraphQL API...")
	var q contributionsQuery
	variables := map[string]interface{}{"login": githubv4.String(login)}
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("failed to execute GraphQL query for contributions: %w", err)
	}

	cc := q.User.ContributionsCollection
	calendar := make(domain.CalendarGrid, 0, len(cc.ContributionCalendar.Weeks))
	for _, week := range cc.ContributionCalendar.Weeks {
		days := make([]domain.CalendarCell, 0, len(week.ContributionDays))
		for _, day := range week.ContributionDays {
			days = append(days, domain.CalendarCell{Count: day.ContributionCount, Color: day.Color})
		}
		calendar = append(calendar, days)
	}

	g.logger.Printf("Completed fetching %d weeks of contributions.\n", len(calendar))
	return &Contributions{
		TotalContributions: cc.ContributionCalendar.TotalContributions,
		Metrics: domain.MetricVector{
			cc.TotalCommitContributions,
			cc.TotalIssueContributions,
			cc.TotalPullRequestContributions,
			cc.TotalPullRequestReviewContributions,
			cc.TotalRepositoryContributions,
		},
		Calendar: calendar,
	}, nil
}

// FetchRepositories lists the repositories owned by the user with their star and fork counts.
func (g *GitHubGateway) FetchRepositories(ctx context.Context, login string) ([]*domain.RepoStats, error) {
	g.logger.Println("[2/3] Fetching owned repositories using REST API...")
	opts := &github.RepositoryListByUserOptions{Type: "owner", ListOptions: github.ListOptions{PerPage: 100}}
	var repos []*domain.RepoStats
	for {
		result, resp, err := g.restClient.Repositories.ListByUser(ctx, login, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories with REST API: %w", err)
		}
		for _, repo := range result {
			repos = append(repos, &domain.RepoStats{
				Name:  repo.GetFullName(),
				Stars: repo.GetStargazersCount(),
				Forks: repo.GetForksCount(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.Println("  Fetching next page of repositories...")
	}
	g.logger.Printf("Completed fetching %d repositories.\n", len(repos))
	return repos, nil
}

// FetchLanguages fetches the language sizes and colors of every owned repository.
func (g *GitHubGateway) FetchLanguages(ctx context.Context, login string) (map[string][]domain.LanguageMetric, error) {
	g.logger.Println("[3/3] Fetching repository languages using GraphQL API...")
	variables := map[string]interface{}{
		"login":  githubv4.String(login),
		"cursor": (*githubv4.String)(nil),
	}
	languages := make(map[string][]domain.LanguageMetric)
	for {
		var q languagesQuery
		if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
			return nil, fmt.Errorf("failed to execute GraphQL query for languages: %w", err)
		}
		for _, repo := range q.User.Repositories.Nodes {
			metrics := make([]domain.LanguageMetric, 0, len(repo.Languages.Edges))
			for _, edge := range repo.Languages.Edges {
				m := domain.LanguageMetric{Name: edge.Node.Name, Size: edge.Size}
				if edge.Node.Color != nil {
					m.Color = *edge.Node.Color
				}
				metrics = append(metrics, m)
			}
			languages[repo.NameWithOwner] = metrics
		}
		if !q.User.Repositories.PageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(q.User.Repositories.PageInfo.EndCursor)
		g.logger.Println("  Fetching next page of repository languages...")
	}
	g.logger.Printf("Completed fetching languages for %d repositories.\n", len(languages))
	return languages, nil
}
