package main

import (
	"fmt"
	"os"

	"github.com/cli/go-gh/v2/pkg/repository"
	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/review-tools/gh-review-gate/internal/config"
	"github.com/review-tools/gh-review-gate/internal/gate"
	"github.com/review-tools/gh-review-gate/internal/github"
	"github.com/review-tools/gh-review-gate/internal/ui"
	"github.com/spf13/cobra"
)

var flags config.Inputs

func newLogger() hclog.Logger {
	level := hclog.LevelFromString(os.Getenv("LOG_LEVEL"))
	if level == hclog.NoLevel {
		level = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:  "review-gate",
		Level: level,
	})
}

func runCommand(logger hclog.Logger) error {
	inputs := flags.Resolve()

	// Outside CI, fall back to the repository the working directory
	// belongs to, the way the gh CLI does.
	if inputs.Owner == "" || inputs.Repo == "" {
		if repo, err := repository.Current(); err == nil {
			if inputs.Owner == "" {
				inputs.Owner = repo.Owner
			}
			if inputs.Repo == "" {
				inputs.Repo = repo.Name
			}
		}
	}

	client, err := github.NewClient(inputs.Token)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	// Local convenience only: in CI a missing PR number is a
	// configuration error caught by Validate.
	if inputs.PullRequestNumber <= 0 && !config.InCI() && inputs.Owner != "" && inputs.Repo != "" {
		prs, err := client.ListOpenPullRequests(inputs.Owner, inputs.Repo)
		if err != nil {
			return fmt.Errorf("failed to list open pull requests: %w", err)
		}
		prompter := &ui.DefaultPrompter{}
		inputs.PullRequestNumber, err = prompter.SelectPullRequest(prs)
		if err != nil {
			return fmt.Errorf("failed to select PR: %w", err)
		}
	}

	passed, err := gate.NewService(client, logger).Run(inputs)
	if err != nil {
		return err
	}
	if !passed {
		return fmt.Errorf("review gate failed: %s has a pending review or unresolved comments", inputs.TargetLogin)
	}

	fmt.Printf("Review gate passed: no pending review or unresolved comments by %s\n", inputs.TargetLogin)
	return nil
}

func main() {
	// Best-effort for local runs; CI provides real env.
	_ = godotenv.Load()

	logger := newLogger()

	cmd := &cobra.Command{
		Use:   "gh-review-gate",
		Short: "Fail CI while a reviewer has a pending review or unresolved comments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(logger)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&flags.Token, "token", "", "GitHub token (default: INPUT_TOKEN, GITHUB_TOKEN)")
	cmd.Flags().StringVar(&flags.Owner, "owner", "", "repository owner (default: INPUT_OWNER, GITHUB_REPOSITORY)")
	cmd.Flags().StringVar(&flags.Repo, "repo", "", "repository name (default: INPUT_REPO, GITHUB_REPOSITORY)")
	cmd.Flags().IntVar(&flags.PullRequestNumber, "pr", 0, "pull request number (default: INPUT_PULL_REQUEST_NUMBER, event payload)")
	cmd.Flags().StringVar(&flags.TargetLogin, "reviewer", "", "reviewer login the gate waits on (default: INPUT_TARGET_LOGIN)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
