package github

import (
	"fmt"

	"github.com/review-tools/gh-review-gate/internal/models"
)

// MockClient implements GitHubClient for testing
type MockClient struct {
	// Control test behavior
	Threads      []models.ReviewThread
	ThreadsError error
	Reviews      []models.Review
	ReviewsError error
	OpenPRs      []models.PullRequestInfo
	OpenPRsError error

	// Track method calls
	FetchReviewThreadsCalled   bool
	ListReviewsCalled          bool
	ListOpenPullRequestsCalled bool

	// Store call arguments for verification
	LastOwner    string
	LastRepo     string
	LastPRNumber int
}

// FetchReviewThreads mocks the GraphQL review-thread query
func (m *MockClient) FetchReviewThreads(owner, repo string, prNumber int) ([]models.ReviewThread, error) {
	m.FetchReviewThreadsCalled = true
	m.LastOwner = owner
	m.LastRepo = repo
	m.LastPRNumber = prNumber
	return m.Threads, m.ThreadsError
}

// ListReviews mocks the REST reviews call
func (m *MockClient) ListReviews(owner, repo string, prNumber int) ([]models.Review, error) {
	m.ListReviewsCalled = true
	m.LastOwner = owner
	m.LastRepo = repo
	m.LastPRNumber = prNumber
	return m.Reviews, m.ReviewsError
}

// ListOpenPullRequests mocks the GraphQL search call
func (m *MockClient) ListOpenPullRequests(owner, repo string) ([]models.PullRequestInfo, error) {
	m.ListOpenPullRequestsCalled = true
	m.LastOwner = owner
	m.LastRepo = repo
	return m.OpenPRs, m.OpenPRsError
}

// Reset clears all tracking data for fresh test
func (m *MockClient) Reset() {
	m.FetchReviewThreadsCalled = false
	m.ListReviewsCalled = false
	m.ListOpenPullRequestsCalled = false
	m.LastOwner = ""
	m.LastRepo = ""
	m.LastPRNumber = 0
}

// Helper functions for creating test data
func CreateTestThreads(resolved, unresolved int, author string) []models.ReviewThread {
	threads := make([]models.ReviewThread, 0, resolved+unresolved)
	for i := 0; i < resolved; i++ {
		threads = append(threads, models.ReviewThread{IsResolved: true, FirstCommentAuthor: author})
	}
	for i := 0; i < unresolved; i++ {
		threads = append(threads, models.ReviewThread{IsResolved: false, FirstCommentAuthor: author})
	}
	return threads
}

func CreateTestReviews(author string, states ...models.ReviewState) []models.Review {
	reviews := make([]models.Review, len(states))
	for i, state := range states {
		reviews[i] = models.Review{
			User:  models.User{Login: author, Type: "Bot"},
			State: state,
		}
	}
	return reviews
}

// Error helpers for testing error conditions
func NewAPIError(message string) error {
	return fmt.Errorf("API error: %s", message)
}

func NewNetworkError() error {
	return fmt.Errorf("network connection failed")
}
