package huhforms

import (
	"strings"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/adflow/internal/models"
)

// NoteValues backs the note form
type NoteValues struct {
	Title   string
	Content string
	Tags    string // comma separated
	Confirm bool
}

// TagList splits the comma separated tags field
func (v NoteValues) TagList() []string {
	tags := []string{}
	for _, tag := range strings.Split(v.Tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// NoteValuesFrom prefills the form from an existing note
func NoteValuesFrom(n models.Note) *NoteValues {
	return &NoteValues{Title: n.Title, Content: n.Content, Tags: strings.Join(n.Tags, ", ")}
}

// CreateNoteForm creates a huh form for adding/editing a markdown note
func CreateNoteForm(v *NoteValues, contentLines int) *huh.Form {
	return newForm(
		huh.NewInput().Key("title").Title("Title").
			Validate(required("title")).
			Value(&v.Title),
		huh.NewText().Key("content").Title("Content").
			Description("Markdown").
			CharLimit(20000).
			Lines(max(contentLines, 3)).
			Value(&v.Content),
		huh.NewInput().Key("tags").Title("Tags").
			Placeholder("copy, ideas").
			Value(&v.Tags),
		huh.NewConfirm().Key("confirm").Title("Save this note?").
			Affirmative("Yes").Negative("No").
			Value(&v.Confirm),
	)
}
