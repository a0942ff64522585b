package models

// ReviewState is the lifecycle state of a pull request review.
type ReviewState string

const (
	ReviewStatePending          ReviewState = "PENDING"
	ReviewStateApproved         ReviewState = "APPROVED"
	ReviewStateChangesRequested ReviewState = "CHANGES_REQUESTED"
	ReviewStateCommented        ReviewState = "COMMENTED"
	ReviewStateDismissed        ReviewState = "DISMISSED"
)

// User represents a GitHub user
type User struct {
	Login string `json:"login"`
	Type  string `json:"type"`
}

// Review represents a PR review
type Review struct {
	User  User        `json:"user"`
	State ReviewState `json:"state"`
}

// ReviewThread is one inline discussion thread on a PR diff.
// FirstCommentAuthor is empty when the thread has no comments;
// an empty author never matches any login.
type ReviewThread struct {
	IsResolved         bool   `json:"is_resolved"`
	FirstCommentAuthor string `json:"first_comment_author"`
}

// PullRequestInfo represents PR metadata
type PullRequestInfo struct {
	Number    int    `json:"number"`
	Title     string `json:"title"`
	User      string `json:"user"`
	State     string `json:"state"`
	Draft     bool   `json:"draft"`
	UpdatedAt string `json:"updated_at"`
	CreatedAt string `json:"created_at"`
}
