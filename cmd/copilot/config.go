package main

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	copilot "github.com/blackopsrepl/emacs-copilot"
)

var showDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&showDefaults, "defaults", false, "print the built-in defaults instead of the loaded config")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	var cfg *copilot.Config
	if showDefaults {
		cfg = copilot.DefaultConfig()
	} else {
		loaded, err := copilot.LoadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
	}
	return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
}
