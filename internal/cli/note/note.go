// Package note implements the "adflow note" commands.
package note

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/adflow/internal/cli/styles"
	"github.com/thenoetrevino/adflow/internal/models"
)

// NoteCmd returns the note parent command
func NoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage markdown notes",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(HTMLCmd())

	return cmd
}

func printNotes(w io.Writer, notes []models.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "No notes found")
		return
	}
	t := styles.Table("ID", "Title", "Tags", "Created")
	for _, n := range notes {
		t.Row(n.ID, n.Title, strings.Join(n.Tags, ", "), n.CreatedAt.Format(models.DateLayout))
	}
	fmt.Fprintln(w, t.Render())
}
