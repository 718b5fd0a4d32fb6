package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwell-md/inkwell/internal/config"
	"github.com/inkwell-md/inkwell/pkg/cmd/root"
)

func Execute() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	cfg, err := config.Load(home)
	cobra.CheckErr(err)

	rootCmd := root.NewCmdRoot(cfg, config.GetPrefsPath(home))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
