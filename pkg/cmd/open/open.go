package open

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/inkwell-md/inkwell/internal/app"
	"github.com/inkwell-md/inkwell/internal/bridge"
	"github.com/inkwell-md/inkwell/internal/config"
	"github.com/inkwell-md/inkwell/internal/fzf"
	"github.com/inkwell-md/inkwell/internal/tui/editor"
)

func NewCmdOpen(cfg *config.Config, prefsPath string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "open [name]",
		Aliases: []string{"o"},
		Short:   "Pick a note and open it in the editor.",
		Long: heredoc.Doc(`
			Open starts the editor with an existing note loaded. With no
			argument it offers a fuzzy picker over the notes directory, with
			a rendered preview of the highlighted note.
		`),
		Example: heredoc.Doc(`
			inkwell open
			inkwell open plan.md
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.EnsureNotesDir(); err != nil {
				return err
			}
			b := bridge.New(cfg.NotesDir, prefsPath)

			var name string
			if len(args) == 1 {
				name = args[0]
			} else {
				finder := fzf.NewFuzzyFinder(b, "Open note")
				picked, err := finder.Run()
				if err != nil {
					return err
				}
				name = picked
			}

			raw, err := b.LoadFile(name)
			if err != nil {
				return err
			}
			return editor.Run(cfg, prefsPath, app.NoteLoadedFromDevice{Raw: raw})
		},
	}

	return cmd
}
