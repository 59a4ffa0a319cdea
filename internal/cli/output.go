package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli/styles"
)

// Identified is anything with a store ID, printed alone in quiet mode
type Identified interface {
	GetID() string
}

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out    io.Writer
	ErrOut io.Writer
}

// AddOutputFlags registers --json and --quiet on cmd.
// Agent-friendly flags are required on all commands.
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// NewFormatter reads the output flags of cmd and writes to its streams.
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

// Success outputs successful operation result. pretty renders the human
// form; it may be nil for data that prints fine with %+v.
func (f *OutputFormatter) Success(data any, pretty func(w io.Writer)) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(Identified); ok {
			_, err := fmt.Fprintln(f.Out, idGetter.GetID())
			return err
		}
	}

	if f.JSON {
		return json.NewEncoder(f.Out).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	if pretty == nil {
		return f.prettyPrint(data)
	}
	pretty(f.Out)
	return nil
}

// SuccessList outputs a list; quiet mode prints one ID per line.
func SuccessList[T Identified](f *OutputFormatter, items []T, pretty func(w io.Writer)) error {
	if f.Quiet {
		for _, item := range items {
			if _, err := fmt.Fprintln(f.Out, item.GetID()); err != nil {
				return err
			}
		}
		return nil
	}
	if items == nil {
		items = []T{}
	}
	return f.Success(items, pretty)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.Out).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.ErrOut, "%s %s\n", styles.ErrorStyle.Render("Error"), message)
	if suggestion != "" {
		fmt.Fprintf(f.ErrOut, "%s %s\n", styles.WarningStyle.Render("Hint"), suggestion)
	}
	return nil
}

// Fail reports err to the user and returns it wrapped with its exit code,
// so the root command does not print it again.
func (f *OutputFormatter) Fail(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	code := ExitCodeFor(err)
	if fmtErr := f.ErrorWithSuggestion(errorCode(code), err.Error(), suggestion); fmtErr != nil {
		return fmtErr
	}
	return &ExitError{Code: code, Err: err}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	_, err := fmt.Fprintf(f.Out, "%+v\n", data)
	return err
}
