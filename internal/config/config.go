package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Inputs holds everything one gate invocation needs
type Inputs struct {
	Token             string
	Owner             string
	Repo              string
	PullRequestNumber int
	TargetLogin       string
}

// Validate collects every missing required field into a single error.
// Token may legitimately be empty here: the client falls back to the
// ambient auth chain.
func (i Inputs) Validate() error {
	var missing []string
	if i.Owner == "" {
		missing = append(missing, "owner")
	}
	if i.Repo == "" {
		missing = append(missing, "repo")
	}
	if i.PullRequestNumber <= 0 {
		missing = append(missing, "pull_request_number")
	}
	if i.TargetLogin == "" {
		missing = append(missing, "target_login")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required inputs: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Resolve fills empty fields from the environment, following GitHub
// Actions conventions: explicit flag values win, then INPUT_* step
// inputs, then ambient CI context (GITHUB_TOKEN, GITHUB_REPOSITORY,
// the event payload). Missing fields are left empty for Validate.
func (i Inputs) Resolve() Inputs {
	if i.Token == "" {
		i.Token = firstNonEmpty(os.Getenv("INPUT_TOKEN"), os.Getenv("GITHUB_TOKEN"))
	}
	if i.Owner == "" {
		i.Owner = os.Getenv("INPUT_OWNER")
	}
	if i.Repo == "" {
		i.Repo = os.Getenv("INPUT_REPO")
	}
	if i.Owner == "" || i.Repo == "" {
		if owner, repo, ok := strings.Cut(os.Getenv("GITHUB_REPOSITORY"), "/"); ok {
			if i.Owner == "" {
				i.Owner = owner
			}
			if i.Repo == "" {
				i.Repo = repo
			}
		}
	}
	if i.PullRequestNumber <= 0 {
		if n, err := strconv.Atoi(os.Getenv("INPUT_PULL_REQUEST_NUMBER")); err == nil && n > 0 {
			i.PullRequestNumber = n
		}
	}
	if i.PullRequestNumber <= 0 {
		if n, err := eventPullRequestNumber(os.Getenv("GITHUB_EVENT_PATH")); err == nil {
			i.PullRequestNumber = n
		}
	}
	if i.TargetLogin == "" {
		i.TargetLogin = os.Getenv("INPUT_TARGET_LOGIN")
	}
	return i
}

// InCI reports whether the process runs inside a GitHub Actions job
func InCI() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// eventPullRequestNumber extracts the PR number from an Actions event
// payload. Both pull_request and review-comment events nest the number
// under "pull_request".
func eventPullRequestNumber(path string) (int, error) {
	if path == "" {
		return 0, fmt.Errorf("no event payload")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read event payload: %w", err)
	}

	var event struct {
		PullRequest struct {
			Number int `json:"number"`
		} `json:"pull_request"`
	}
	if err := json.Unmarshal(data, &event); err != nil {
		return 0, fmt.Errorf("failed to parse event payload: %w", err)
	}
	if event.PullRequest.Number <= 0 {
		return 0, fmt.Errorf("event payload has no pull request number")
	}
	return event.PullRequest.Number, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
