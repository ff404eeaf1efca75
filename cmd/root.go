package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kennyg/cppkit/internal/action"
	"github.com/kennyg/cppkit/internal/config"
	"github.com/kennyg/cppkit/internal/host"
	"github.com/kennyg/cppkit/internal/ui"
)

var (
	// Version is set at build time
	Version = "dev"

	cfgFile   string
	verbose   bool
	assumeYes bool
	workDir   string

	settings *config.Settings
	// configUsed is the config file Load read, or "" when defaults apply
	configUsed string
	logger   = log.NewWithOptions(os.Stderr, log.Options{Prefix: "cppkit"})
)

// skipConfigLoad marks commands that must run without a readable config file.
const skipConfigLoad = "cppkit/skip-config-load"

var rootCmd = &cobra.Command{
	Use:   "cppkit",
	Short: "C/C++ project scaffolding",
	Long: ui.RenderHighlight("cppkit") + ` - companion files and project setup for C/C++

  Create the implementation file for a header, with a banner and the right
  #include already in place, and drop the usual clang-format, clang-tidy,
  clangd and gitignore files into a project root.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		} else {
			logger.SetLevel(log.WarnLevel)
		}

		if cmd.Annotations[skipConfigLoad] != "" {
			settings = config.Default()
			return nil
		}

		s, used, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if used != "" {
			logger.Debug("loaded config", "file", used)
		}
		settings, configUsed = s, used
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, action.ErrAborted) {
		fmt.Fprintln(os.Stderr, ui.ErrorLine(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/cppkit/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "answer Yes to every prompt")
	rootCmd.PersistentFlags().StringVar(&workDir, "dir", "", "workspace root (default is the enclosing git repository)")

	rootCmd.AddCommand(pairCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cppkit %s\n", Version)
	},
}

// newTerminal builds the terminal host from the global flags and settings.
func newTerminal(file string) *host.Terminal {
	t := host.NewTerminal()
	t.File = file
	t.Root = workspaceRoot()
	t.AssumeYes = assumeYes
	if settings != nil {
		t.Editor = settings.Editor
		t.Open = settings.Open
	}
	return t
}

// workspaceRoot returns --dir, or the enclosing git repository of the
// current directory, or "" when there is neither.
func workspaceRoot() string {
	if workDir != "" {
		return workDir
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return config.FindProjectRoot(cwd)
}

// exitWithError prints an error and exits
func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, ui.ErrorLine(msg))
	os.Exit(1)
}
