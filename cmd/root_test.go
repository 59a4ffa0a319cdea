package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/adflow/internal/cli"
)

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	code := run(root, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"unknown flag", []string{"task", "list", "--bogus", "--ephemeral"}, cli.ExitUsage},
		{"bad flag value", []string{"search", "x", "--limit", "many", "--ephemeral"}, cli.ExitUsage},
		{"missing argument", []string{"campaign", "show", "--ephemeral"}, cli.ExitUsage},
		{"unknown command", []string{"campaigns"}, cli.ExitUsage},
		{"not found", []string{"campaign", "show", "nope", "--ephemeral"}, cli.ExitNotFound},
		{"invalid option", []string{"task", "create", "x", "--priority", "urgent", "--ephemeral"}, cli.ExitValidation},
		{"success", []string{"task", "list", "--ephemeral", "--json"}, cli.ExitSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := runArgs(t, tt.args...)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestUsageErrorPrintsHint(t *testing.T) {
	code, _, stderr := runArgs(t, "task", "list", "--bogus", "--ephemeral")
	require.Equal(t, cli.ExitUsage, code)
	assert.Contains(t, stderr, "adflow --help")
}

func TestCommandErrorsAreReportedOnce(t *testing.T) {
	code, stdout, stderr := runArgs(t, "campaign", "show", "nope", "--ephemeral", "--json")
	require.Equal(t, cli.ExitNotFound, code)
	assert.Contains(t, stdout, "NOT_FOUND")
	assert.NotContains(t, stderr, "adflow --help")
}

func TestEveryLeafTakesOutputFlags(t *testing.T) {
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		if c.Name() == "help" || c.Name() == "completion" {
			return
		}
		if c.Parent() != nil && !c.HasSubCommands() {
			assert.NotNil(t, c.Flags().Lookup("json"), c.CommandPath())
			assert.NotNil(t, c.Flags().Lookup("quiet"), c.CommandPath())
		}
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(NewRootCmd())
}
