package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kennyg/cppkit/internal/assets"
	"github.com/kennyg/cppkit/internal/config"
	"github.com/kennyg/cppkit/internal/ui"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Manage the setup resource directory",
}

var resourcesInstallCmd = &cobra.Command{
	Use:   "install [dir]",
	Short: "Write the bundled setup files to the resource directory",
	Long: `Write the bundled .clang-format, .clang-tidy, .clangd and .gitignore to
$XDG_DATA_HOME/cppkit/resources (or [dir]) so 'cppkit setup' can find them.
Files already there are replaced.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runResourcesInstall,
}

var resourcesPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the resource directory setup will use",
	Args:  cobra.NoArgs,
	Run:   runResourcesPath,
}

func init() {
	resourcesCmd.AddCommand(resourcesInstallCmd)
	resourcesCmd.AddCommand(resourcesPathCmd)
}

func runResourcesInstall(cmd *cobra.Command, args []string) {
	var dir string
	if len(args) == 1 {
		dir = args[0]
	} else {
		paths, err := config.GetPaths()
		if err != nil {
			exitWithError(err.Error())
		}
		dir = paths.ResourcesDir
	}

	written, err := assets.Install(dir)
	for _, path := range written {
		fmt.Printf("  %s %s\n", ui.StatusOK(), path)
	}
	if err != nil {
		exitWithError(err.Error())
	}
	fmt.Println(ui.SuccessLine("Installed resources to " + dir))
}

func runResourcesPath(cmd *cobra.Command, args []string) {
	paths, err := config.GetPaths()
	if err != nil {
		exitWithError(err.Error())
	}
	for _, dir := range config.ResourceCandidates(settings, paths) {
		if isDir(dir) {
			fmt.Println(dir)
			return
		}
	}
	exitWithError("no resource directory found; run 'cppkit resources install'")
}
