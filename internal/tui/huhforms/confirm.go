package huhforms

import "charm.land/huh/v2"

// CreateDeleteForm asks before deleting name
func CreateDeleteForm(kind, name string, confirm *bool) *huh.Form {
	return newForm(
		huh.NewConfirm().Key("confirm").
			Title("Delete " + kind + " '" + name + "'?").
			Description("This cannot be undone.").
			Affirmative("Delete").Negative("Keep").
			Value(confirm),
	)
}
