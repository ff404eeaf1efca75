package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kennyg/cppkit/internal/config"
	"github.com/kennyg/cppkit/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the cppkit configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	Run:   runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default values",
	Long: `Write config.yaml with the default banner and settings to
$XDG_CONFIG_HOME/cppkit (or the --config path). An existing file is left alone.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfigLoad: "true"},
	Run:         runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) {
	out, err := settings.Marshal()
	if err != nil {
		exitWithError(err.Error())
	}
	fmt.Print(string(out))
}

func runConfigInit(cmd *cobra.Command, args []string) {
	path := cfgFile
	if path == "" {
		paths, err := config.GetPaths()
		if err != nil {
			exitWithError(err.Error())
		}
		path = paths.ConfigFile
	}

	if err := config.WriteDefaults(path); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			fmt.Println(ui.InfoLine("Config already exists at " + path))
			return
		}
		exitWithError(err.Error())
	}
	fmt.Println(ui.SuccessLine("Wrote " + path))
}
