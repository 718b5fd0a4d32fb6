package initialize

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/inkwell-md/inkwell/internal/config"
)

func NewCmdInit(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"initialize"},
		Short:   "Write the config file and create the notes directory.",
		Long: heredoc.Doc(`
			Init writes the current configuration (defaults merged with any
			existing config file) back to disk and creates the notes
			directory. Running it is optional; the editor works with the
			built-in defaults alone.
		`),
		Example: heredoc.Doc(`
			inkwell init
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}

			if err := cfg.Write(home); err != nil {
				return err
			}
			if err := cfg.EnsureNotesDir(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", config.GetConfigPath(home))
			return nil
		},
	}

	return cmd
}
