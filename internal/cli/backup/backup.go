// Package backup implements the "adflow backup" commands.
package backup

import (
	"github.com/spf13/cobra"
)

// DefaultFile is where export writes when no file is given
const DefaultFile = "adflow-hub-backup.json"

// BackupCmd returns the backup parent command
func BackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and import data",
	}

	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(ImportCmd())
	cmd.AddCommand(ImportCSVCmd())

	return cmd
}
