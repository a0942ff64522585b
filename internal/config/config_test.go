package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"INPUT_TOKEN", "INPUT_OWNER", "INPUT_REPO",
		"INPUT_PULL_REQUEST_NUMBER", "INPUT_TARGET_LOGIN",
		"GITHUB_TOKEN", "GITHUB_REPOSITORY", "GITHUB_EVENT_PATH",
		"GITHUB_ACTIONS",
	} {
		t.Setenv(key, "")
	}
}

func TestInputs_Validate(t *testing.T) {
	tests := []struct {
		name          string
		inputs        Inputs
		expectError   bool
		errorContains []string
	}{
		{
			name: "all fields set",
			inputs: Inputs{
				Token:             "t",
				Owner:             "owner",
				Repo:              "repo",
				PullRequestNumber: 1,
				TargetLogin:       "copilot[bot]",
			},
			expectError: false,
		},
		{
			name: "token may be empty",
			inputs: Inputs{
				Owner:             "owner",
				Repo:              "repo",
				PullRequestNumber: 1,
				TargetLogin:       "copilot[bot]",
			},
			expectError: false,
		},
		{
			name: "missing target login",
			inputs: Inputs{
				Owner:             "owner",
				Repo:              "repo",
				PullRequestNumber: 1,
			},
			expectError:   true,
			errorContains: []string{"target_login"},
		},
		{
			name: "zero PR number",
			inputs: Inputs{
				Owner:       "owner",
				Repo:        "repo",
				TargetLogin: "copilot[bot]",
			},
			expectError:   true,
			errorContains: []string{"pull_request_number"},
		},
		{
			name:          "everything missing is reported at once",
			inputs:        Inputs{},
			expectError:   true,
			errorContains: []string{"owner", "repo", "pull_request_number", "target_login"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.inputs.Validate()

			if tt.expectError && err == nil {
				t.Errorf("Expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			for _, want := range tt.errorContains {
				if err == nil || !strings.Contains(err.Error(), want) {
					t.Errorf("Error %v should contain %q", err, want)
				}
			}
		})
	}
}

func TestInputs_Resolve_FlagsWin(t *testing.T) {
	clearEnv(t)
	t.Setenv("INPUT_OWNER", "env-owner")
	t.Setenv("INPUT_TARGET_LOGIN", "env-login")

	got := Inputs{Owner: "flag-owner", TargetLogin: "flag-login"}.Resolve()

	if got.Owner != "flag-owner" {
		t.Errorf("Owner = %q, want flag value", got.Owner)
	}
	if got.TargetLogin != "flag-login" {
		t.Errorf("TargetLogin = %q, want flag value", got.TargetLogin)
	}
}

func TestInputs_Resolve_StepInputs(t *testing.T) {
	clearEnv(t)
	t.Setenv("INPUT_TOKEN", "step-token")
	t.Setenv("INPUT_OWNER", "step-owner")
	t.Setenv("INPUT_REPO", "step-repo")
	t.Setenv("INPUT_PULL_REQUEST_NUMBER", "7")
	t.Setenv("INPUT_TARGET_LOGIN", "copilot[bot]")

	got := Inputs{}.Resolve()

	want := Inputs{
		Token:             "step-token",
		Owner:             "step-owner",
		Repo:              "step-repo",
		PullRequestNumber: 7,
		TargetLogin:       "copilot[bot]",
	}
	if got != want {
		t.Errorf("Resolve() = %+v, want %+v", got, want)
	}
}

func TestInputs_Resolve_AmbientContext(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_TOKEN", "ambient-token")
	t.Setenv("GITHUB_REPOSITORY", "octo-org/octo-repo")

	eventPath := filepath.Join(t.TempDir(), "event.json")
	if err := os.WriteFile(eventPath, []byte(`{"action":"synchronize","pull_request":{"number":123}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GITHUB_EVENT_PATH", eventPath)

	got := Inputs{}.Resolve()

	if got.Token != "ambient-token" {
		t.Errorf("Token = %q, want GITHUB_TOKEN fallback", got.Token)
	}
	if got.Owner != "octo-org" || got.Repo != "octo-repo" {
		t.Errorf("Owner/Repo = %q/%q, want octo-org/octo-repo", got.Owner, got.Repo)
	}
	if got.PullRequestNumber != 123 {
		t.Errorf("PullRequestNumber = %d, want 123 from event payload", got.PullRequestNumber)
	}
}

func TestInputs_Resolve_StepInputsBeatAmbient(t *testing.T) {
	clearEnv(t)
	t.Setenv("INPUT_TOKEN", "step-token")
	t.Setenv("GITHUB_TOKEN", "ambient-token")
	t.Setenv("INPUT_OWNER", "step-owner")
	t.Setenv("GITHUB_REPOSITORY", "octo-org/octo-repo")

	got := Inputs{}.Resolve()

	if got.Token != "step-token" {
		t.Errorf("Token = %q, want step input to win", got.Token)
	}
	if got.Owner != "step-owner" {
		t.Errorf("Owner = %q, want step input to win", got.Owner)
	}
	if got.Repo != "octo-repo" {
		t.Errorf("Repo = %q, want GITHUB_REPOSITORY to fill the gap", got.Repo)
	}
}

func TestEventPullRequestNumber(t *testing.T) {
	tests := []struct {
		name        string
		payload     string
		expected    int
		expectError bool
	}{
		{
			name:     "pull_request event",
			payload:  `{"pull_request":{"number":55}}`,
			expected: 55,
		},
		{
			name:     "review comment event",
			payload:  `{"comment":{"id":1},"pull_request":{"number":8}}`,
			expected: 8,
		},
		{
			name:        "payload without pull request",
			payload:     `{"ref":"refs/heads/main"}`,
			expectError: true,
		},
		{
			name:        "malformed payload",
			payload:     `{`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "event.json")
			if err := os.WriteFile(path, []byte(tt.payload), 0o600); err != nil {
				t.Fatal(err)
			}

			got, err := eventPullRequestNumber(path)

			if tt.expectError && err == nil {
				t.Errorf("Expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if !tt.expectError && got != tt.expected {
				t.Errorf("eventPullRequestNumber() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestEventPullRequestNumber_MissingFile(t *testing.T) {
	if _, err := eventPullRequestNumber(""); err == nil {
		t.Error("Expected error for empty path")
	}
	if _, err := eventPullRequestNumber(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestInCI(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "true")
	if !InCI() {
		t.Error("InCI() = false with GITHUB_ACTIONS=true")
	}
	t.Setenv("GITHUB_ACTIONS", "")
	if InCI() {
		t.Error("InCI() = true with GITHUB_ACTIONS unset")
	}
}
