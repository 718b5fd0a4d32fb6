package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/inkwell-md/inkwell/internal/config"
	"github.com/inkwell-md/inkwell/internal/constants"
	"github.com/inkwell-md/inkwell/internal/tui/editor"
	"github.com/inkwell-md/inkwell/pkg/cmd/initialize"
	"github.com/inkwell-md/inkwell/pkg/cmd/open"
	"github.com/inkwell-md/inkwell/pkg/cmd/serve"
	"github.com/inkwell-md/inkwell/pkg/cmd/theme"
)

func NewCmdRoot(cfg *config.Config, prefsPath string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inkwell",
		Aliases: []string{"ink"},
		Version: constants.Version,
		Short:   "A markdown note editor with live preview and cloud files.",
		Long: heredoc.Doc(`
			Inkwell opens a terminal markdown editor: write on the left, see
			the rendered note on the right. Notes live as plain .md files in
			your notes directory, and can also be listed, opened, and saved
			against a cloud file store (see 'inkwell serve').

			Theme and layout survive between sessions; everything else is
			session-scoped.
		`),
		Example: heredoc.Doc(`
			inkwell
			inkwell open
			inkwell serve --listen :6474
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editor.Run(cfg, prefsPath, nil)
		},
	}

	cmd.AddCommand(initialize.NewCmdInit(cfg))
	cmd.AddCommand(open.NewCmdOpen(cfg, prefsPath))
	cmd.AddCommand(serve.NewCmdServe(cfg))
	cmd.AddCommand(theme.NewCmdTheme(prefsPath))

	return cmd
}
