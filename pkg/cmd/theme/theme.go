package theme

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/selection"
	"github.com/spf13/cobra"

	"github.com/inkwell-md/inkwell/internal/prefs"
)

func NewCmdTheme(prefsPath string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme [white|dark]",
		Short: "Set the color theme without opening the editor.",
		Long: heredoc.Doc(`
			Theme changes the persisted color theme. With no argument it
			prompts for one.
		`),
		Example: heredoc.Doc(`
			inkwell theme
			inkwell theme dark
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var choice string
			if len(args) == 1 {
				choice = args[0]
			} else {
				sel := selection.New("Color theme", []string{"White", "Dark"})
				picked, err := sel.RunPrompt()
				if err != nil {
					return err
				}
				choice = picked
			}

			p := prefs.Load(prefsPath)
			switch choice {
			case "White", "white":
				p.ColorTheme = prefs.ThemeWhite
			case "Dark", "dark":
				p.ColorTheme = prefs.ThemeDark
			default:
				return fmt.Errorf("unknown theme %q", choice)
			}

			if err := prefs.Save(prefsPath, p); err != nil {
				return err
			}
			fmt.Printf("Theme set to %s\n", p.ColorTheme)
			return nil
		},
	}

	return cmd
}
