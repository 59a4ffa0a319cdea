// Package clitest runs adflow commands against a test app. It lives apart
// from testutil so service tests do not pull in the CLI.
package clitest

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/app"
	"github.com/thenoetrevino/adflow/internal/cli"
	"github.com/thenoetrevino/adflow/internal/testutil"
)

// Result is what a command wrote and returned
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// ExitCode is the code the process would exit with
func (r Result) ExitCode() int {
	return cli.ExitCodeFor(r.Err)
}

// SetupCLITest returns a fresh in-memory app for CLI tests
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()
	return testutil.NewTestApp(t)
}

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app is injected through the context so commands never touch the
// user's data directory.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args ...string) Result {
	t.Helper()
	return ExecuteWithInput(t, testApp, cmd, "", args...)
}

// ExecuteWithInput is ExecuteCLICommand with stdin set to input
func ExecuteWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, input string, args ...string) Result {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(input))

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(cli.WithApp(context.Background(), testApp))
	return Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// Data returns the "data" object of a successful JSON response
func Data(t *testing.T, output string) map[string]any {
	t.Helper()

	result := ParseJSON(t, output)
	if result["success"] != true {
		t.Fatalf("Expected success response, got: %s", output)
	}
	data, ok := result["data"].(map[string]any)
	if !ok {
		t.Fatalf("Expected data object, got: %s", output)
	}
	return data
}
