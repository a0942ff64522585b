package github

import (
	"fmt"

	"github.com/cli/go-gh/v2/pkg/api"
	graphql "github.com/cli/shurcooL-graphql"
	"github.com/review-tools/gh-review-gate/internal/models"
)

// Client wraps GitHub API clients
type Client struct {
	rest api.RESTClient
	gql  api.GraphQLClient
}

// NewClient builds a client authenticated with the given token.
// An empty token falls back to go-gh's default auth chain
// (GITHUB_TOKEN, gh config).
func NewClient(token string) (*Client, error) {
	opts := api.ClientOptions{AuthToken: token}

	restClient, err := api.NewRESTClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create REST client: %w", err)
	}

	gqlClient, err := api.NewGraphQLClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create GraphQL client: %w", err)
	}

	return &Client{
		rest: *restClient,
		gql:  *gqlClient,
	}, nil
}

// reviewThreadNode mirrors the GraphQL reviewThreads node shape. Only
// the first comment is requested; its author identifies who opened the
// thread.
type reviewThreadNode struct {
	IsResolved bool
	Comments   struct {
		Nodes []struct {
			Author struct {
				Login string
			}
		}
	} `graphql:"comments(first: 1)"`
}

func threadsFromNodes(nodes []reviewThreadNode) []models.ReviewThread {
	threads := make([]models.ReviewThread, 0, len(nodes))
	for _, node := range nodes {
		thread := models.ReviewThread{IsResolved: node.IsResolved}
		if len(node.Comments.Nodes) > 0 {
			thread.FirstCommentAuthor = node.Comments.Nodes[0].Author.Login
		}
		threads = append(threads, thread)
	}
	return threads
}

// FetchReviewThreads fetches the last 100 review threads of a PR using
// GraphQL, reduced to resolution state plus the first comment's author.
func (c *Client) FetchReviewThreads(owner, repo string, prNumber int) ([]models.ReviewThread, error) {
	var q struct {
		Repository struct {
			PullRequest struct {
				ReviewThreads struct {
					Nodes []reviewThreadNode
				} `graphql:"reviewThreads(last: $last)"`
			} `graphql:"pullRequest(number: $number)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	variables := map[string]interface{}{
		"owner":  graphql.String(owner),
		"name":   graphql.String(repo),
		"number": graphql.Int(prNumber),
		"last":   graphql.Int(100),
	}

	err := c.gql.Query("", &q, variables)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch review threads: %w", err)
	}

	return threadsFromNodes(q.Repository.PullRequest.ReviewThreads.Nodes), nil
}

// ListReviews fetches all reviews on a PR via REST
func (c *Client) ListReviews(owner, repo string, prNumber int) ([]models.Review, error) {
	path := fmt.Sprintf("repos/%s/%s/pulls/%d/reviews", owner, repo, prNumber)
	var reviews []models.Review
	if err := c.rest.Get(path, &reviews); err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	return reviews, nil
}

// ListOpenPullRequests fetches open pull requests using GraphQL search,
// newest first. Used by the interactive PR picker.
func (c *Client) ListOpenPullRequests(owner, repo string) ([]models.PullRequestInfo, error) {
	var q struct {
		Search struct {
			Nodes []struct {
				PullRequest struct {
					Number    int
					Title     string
					State     string
					IsDraft   bool
					UpdatedAt string
					CreatedAt string
					Author    struct {
						Login string
					}
				} `graphql:"... on PullRequest"`
			}
			PageInfo struct {
				HasNextPage bool
				EndCursor   string
			}
		} `graphql:"search(type: ISSUE, query: $query, first: $first, after: $endCursor)"`
	}

	variables := map[string]interface{}{
		"query":     graphql.String(fmt.Sprintf("repo:%s/%s is:pr state:open sort:created-desc", owner, repo)),
		"first":     graphql.Int(100),
		"endCursor": (*graphql.String)(nil),
	}

	err := c.gql.Query("", &q, variables)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pull requests: %w", err)
	}

	prs := make([]models.PullRequestInfo, 0, len(q.Search.Nodes))
	for _, node := range q.Search.Nodes {
		pr := node.PullRequest
		prs = append(prs, models.PullRequestInfo{
			Number:    pr.Number,
			Title:     pr.Title,
			User:      pr.Author.Login,
			State:     pr.State,
			Draft:     pr.IsDraft,
			UpdatedAt: pr.UpdatedAt,
			CreatedAt: pr.CreatedAt,
		})
	}
	return prs, nil
}
