package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/kanban"
	"github.com/thenoetrevino/adflow/internal/models"
)

// ReadText returns value, or all of the command's stdin when value is "-".
func ReadText(cmd *cobra.Command, value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// OpenInput opens path for reading; "-" is the command's stdin.
func OpenInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(path)
}

// ParsePriority matches a priority case-insensitively
func ParsePriority(priority string) (string, error) {
	return matchOption(models.Priorities, priority, "priority")
}

// ParseBranch matches a branch case-insensitively
func ParseBranch(branch string) (string, error) {
	return matchOption(models.Branches, branch, "branch")
}

// ParseObjective matches a campaign objective case-insensitively
func ParseObjective(objective string) (string, error) {
	return matchOption(models.Objectives, objective, "objective")
}

func matchOption(options []string, value, what string) (string, error) {
	for _, option := range options {
		if strings.EqualFold(option, strings.TrimSpace(value)) {
			return option, nil
		}
	}
	return "", fmt.Errorf("%w: %s '%s' (must be: %s)", ErrInvalidOption, what, value, strings.Join(options, ", "))
}

// ResolveStatus maps a column name typed by the user to the board label
func ResolveStatus(cols kanban.Columns, name string) (string, error) {
	status, ok := cols.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: '%s' (columns: %s)", kanban.ErrUnknownStatus, name, strings.Join(cols.Labels(), ", "))
	}
	return status, nil
}

// SplitList splits a comma separated flag value, dropping blanks
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Confirm asks a yes/no question on the command's streams. Anything but
// "y" or "yes" is a no.
func Confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (y/N): ", prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// SkipConfirm reports whether destructive commands should run unprompted
func SkipConfirm(cmd *cobra.Command) bool {
	for _, name := range []string{"force", "quiet", "json"} {
		if v, _ := cmd.Flags().GetBool(name); v {
			return true
		}
	}
	return false
}
