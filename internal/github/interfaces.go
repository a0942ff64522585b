package github

import (
	"github.com/review-tools/gh-review-gate/internal/models"
)

// GitHubClient defines the interface for GitHub operations
type GitHubClient interface {
	FetchReviewThreads(owner, repo string, prNumber int) ([]models.ReviewThread, error)
	ListReviews(owner, repo string, prNumber int) ([]models.Review, error)
	ListOpenPullRequests(owner, repo string) ([]models.PullRequestInfo, error)
}

// Ensure Client implements GitHubClient interface
var _ GitHubClient = (*Client)(nil)
