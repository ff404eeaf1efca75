package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/kennyg/cppkit/internal/action"
	"github.com/kennyg/cppkit/internal/assets"
	"github.com/kennyg/cppkit/internal/config"
	"github.com/kennyg/cppkit/internal/ui"
)

var setupCmd = &cobra.Command{
	Use:     "setup [dir]",
	Aliases: []string{"init"},
	Short:   "Copy clang-format, clang-tidy, clangd and gitignore files into a project",
	Long: `Copy the standard configuration files into the project root:
  .clang-format  .clang-tidy  .clangd  .gitignore

The project root is [dir], --dir, or the enclosing git repository.
Existing files are only replaced after confirmation (or with --yes).

Files are taken from the first resource directory that exists:
  1. resources_dir from the config file (or CPPKIT_RESOURCES_DIR)
  2. resources/ next to the cppkit executable
  3. $XDG_DATA_HOME/cppkit/resources (see 'cppkit resources install')

Examples:
  cppkit setup
  cppkit setup ~/code/engine --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		workDir = args[0]
	}

	paths, err := config.GetPaths()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(ui.SectionHeader("Project Setup"))
	fmt.Println()

	act := &action.SetupProject{
		Host:       newTerminal(""),
		Fs:         afero.NewOsFs(),
		Candidates: config.ResourceCandidates(settings, paths),
		Files:      assets.SetupFiles,
		Logger:     logger,
	}
	result, err := act.Run()
	if err != nil {
		return err
	}

	for _, name := range result.Copied {
		fmt.Printf("  %s %s\n", ui.StatusOK(), name)
	}
	for _, name := range result.Skipped {
		fmt.Println(ui.RenderMuted("  skip " + name))
	}
	fmt.Println(ui.PageFooter())
	return nil
}
