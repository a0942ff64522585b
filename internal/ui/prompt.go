package ui

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/review-tools/gh-review-gate/internal/models"
)

// SelectPullRequest shows a searchable list of open PRs and returns the
// chosen PR number.
func SelectPullRequest(prs []models.PullRequestInfo) (int, error) {
	if len(prs) == 0 {
		return 0, fmt.Errorf("no open pull requests found")
	}

	items := make([]string, len(prs))
	for i, pr := range prs {
		state := pr.State
		if pr.Draft {
			state += " (Draft)"
		}
		items[i] = fmt.Sprintf(
			"#%s %s %s %s %s",
			PadRight(fmt.Sprintf("%-6d", pr.Number), 7),
			PadRight(Truncate(pr.Title, 75), 75),
			PadRight(pr.User, 15),
			PadRight(state, 10),
			PadRight(pr.UpdatedAt, 20),
		)
	}

	prompt := promptui.Select{
		Label: "Select PR",
		Items: items,
		Size:  12,
		Searcher: func(input string, index int) bool {
			return strings.Contains(strings.ToLower(items[index]), input)
		},
		StartInSearchMode: true,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return 0, fmt.Errorf("prompt failed: %w", err)
	}
	return prs[idx].Number, nil
}
