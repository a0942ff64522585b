package gate

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/review-tools/gh-review-gate/internal/config"
	"github.com/review-tools/gh-review-gate/internal/github"
	"github.com/review-tools/gh-review-gate/internal/models"
)

// botSuffix is the literal tag GitHub appends to app account logins.
// The same account shows up as "copilot" in GraphQL comment authors and
// as "copilot[bot]" in REST payloads, so matching strips the tag from
// both sides.
const botSuffix = "[bot]"

// NormalizeLogin strips a trailing bot tag from a login.
func NormalizeLogin(login string) string {
	return strings.TrimSuffix(login, botSuffix)
}

// matchesLogin reports whether a comment author refers to the target
// account, under either form of a bot login. An empty author (thread
// with no comments) never matches.
func matchesLogin(author, target string) bool {
	if author == "" {
		return false
	}
	return author == target || NormalizeLogin(author) == NormalizeLogin(target)
}

// HasUnresolvedThreads reports whether any unresolved review thread was
// opened by the target login.
func HasUnresolvedThreads(threads []models.ReviewThread, targetLogin string) bool {
	for _, thread := range threads {
		if !thread.IsResolved && matchesLogin(thread.FirstCommentAuthor, targetLogin) {
			return true
		}
	}
	return false
}

// HasPendingReview reports whether the target login has a review that
// was started but never submitted.
func HasPendingReview(reviews []models.Review, targetLogin string) bool {
	for _, review := range reviews {
		if review.State == models.ReviewStatePending && review.User.Login == targetLogin {
			return true
		}
	}
	return false
}

// Service contains the gate decision logic
type Service struct {
	client github.GitHubClient
	logger hclog.Logger
}

// NewService creates a new service instance
func NewService(client github.GitHubClient, logger hclog.Logger) *Service {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Service{
		client: client,
		logger: logger,
	}
}

// Run executes both checks and returns whether the gate passes.
// Inputs are validated before any API call is made.
func (s *Service) Run(inputs config.Inputs) (bool, error) {
	if err := inputs.Validate(); err != nil {
		return false, err
	}

	s.logger.Info("checking review gate",
		"owner", inputs.Owner,
		"repo", inputs.Repo,
		"pr", inputs.PullRequestNumber,
		"reviewer", inputs.TargetLogin,
	)

	reviews, err := s.client.ListReviews(inputs.Owner, inputs.Repo, inputs.PullRequestNumber)
	if err != nil {
		return false, fmt.Errorf("failed to list reviews: %w", err)
	}
	s.logger.Debug("fetched reviews", "count", len(reviews))

	pending := HasPendingReview(reviews, inputs.TargetLogin)
	if pending {
		s.logger.Info("pending review found", "reviewer", inputs.TargetLogin)
	}

	threads, err := s.client.FetchReviewThreads(inputs.Owner, inputs.Repo, inputs.PullRequestNumber)
	if err != nil {
		return false, fmt.Errorf("failed to fetch review threads: %w", err)
	}
	s.logger.Debug("fetched review threads", "count", len(threads))

	unresolved := HasUnresolvedThreads(threads, inputs.TargetLogin)
	if unresolved {
		s.logger.Info("unresolved review threads found", "reviewer", inputs.TargetLogin)
	}

	passed := !pending && !unresolved
	s.logger.Info("review gate decision",
		"passed", passed,
		"pending_review", pending,
		"unresolved_threads", unresolved,
	)
	return passed, nil
}
