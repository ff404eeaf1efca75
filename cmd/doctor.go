package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kennyg/cppkit/internal/assets"
	"github.com/kennyg/cppkit/internal/config"
	"github.com/kennyg/cppkit/internal/detect"
	"github.com/kennyg/cppkit/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, resources and C/C++ tooling",
	Long: `Report where cppkit reads its configuration, which resource directories
exist, and whether the tools that use the setup files are on PATH.`,
	Args: cobra.NoArgs,
	Run:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) {
	paths, err := config.GetPaths()
	if err != nil {
		exitWithError(err.Error())
	}

	fmt.Println()
	fmt.Println(ui.SectionHeader("Diagnosing"))
	fmt.Println()

	fmt.Println(ui.Title.Render("  Config"))
	if file, loaded := activeConfigFile(configUsed, paths.ConfigFile); loaded {
		fmt.Printf("    %s %s\n", ui.Success.Render("✓"), file)
	} else {
		fmt.Printf("    %s %s\n", ui.Muted.Render("-"), ui.RenderMuted(file+" (defaults in use)"))
	}
	fmt.Println()

	fmt.Println(ui.Title.Render("  Resources"))
	found := false
	for _, dir := range config.ResourceCandidates(settings, paths) {
		switch {
		case isDir(dir) && !found:
			found = true
			fmt.Printf("    %s %s\n", ui.Success.Render("✓"), dir)
		case isDir(dir):
			fmt.Printf("    %s %s\n", ui.Muted.Render("·"), ui.RenderMuted(dir+" (shadowed)"))
		default:
			fmt.Printf("    %s %s\n", ui.Muted.Render("-"), ui.RenderMuted(dir))
		}
	}
	if !found {
		fmt.Println(ui.Warning.Render("    No resource directory; run 'cppkit resources install'"))
	}
	fmt.Println()

	fmt.Println(ui.Title.Render("  Tools"))
	results := detect.VerifyAll(detect.ForFiles(assets.SetupFiles))
	for _, r := range results {
		if r.Satisfied {
			fmt.Printf("    %s %s %s\n",
				ui.Success.Render("✓"),
				r.Requirement.Value,
				ui.RenderMuted("("+r.Requirement.Source+")"))
		} else {
			fmt.Printf("    %s %s\n",
				ui.Error.Render("✗"),
				r.Requirement.Value)
			if r.Message != "" {
				fmt.Println(ui.Muted.Render("      " + r.Message))
			}
		}
	}

	fmt.Println()
	if !found || detect.HasUnsatisfied(results) {
		fmt.Println(ui.WarningLine("Some checks failed"))
	} else {
		fmt.Println(ui.SuccessLine("Everything looks good"))
	}
	fmt.Println(ui.PageFooter())
}

// activeConfigFile returns the config file that was loaded, or the default
// location with loaded == false when settings came from defaults alone.
func activeConfigFile(used, defaultPath string) (string, bool) {
	if used != "" {
		return used, true
	}
	return defaultPath, false
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
