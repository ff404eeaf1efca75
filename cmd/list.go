package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kennyg/cppkit/internal/assets"
	"github.com/kennyg/cppkit/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list [dir]",
	Aliases: []string{"ls", "status"},
	Short:   "Show which setup files a project already has",
	Long: `List the bundled setup files and their state in the project root.

  NEW  not present yet; setup will copy it
  OK   present and identical to the bundled file
  MOD  present with local changes; setup will ask before replacing it`,
	Args: cobra.MaximumNArgs(1),
	Run:  runList,
}

// fileState is the state of one setup file in the project root
type fileState string

const (
	stateNew      fileState = "NEW"
	stateOK       fileState = "OK"
	stateModified fileState = "MOD"
	stateError    fileState = "ERR"
)

func runList(cmd *cobra.Command, args []string) {
	if len(args) == 1 {
		workDir = args[0]
	}
	root := workspaceRoot()
	if root == "" {
		exitWithError("no project root: pass a directory or run inside a git repository")
	}

	fmt.Println()
	fmt.Println(ui.SectionHeader("Setup Files"))
	fmt.Println(ui.RenderMuted("  " + root))
	fmt.Println()

	nameStyle := lipgloss.NewStyle().Width(16)
	missing, unreadable := 0, 0
	for _, name := range assets.SetupFiles {
		state, err := setupFileState(root, name)

		var badge string
		switch state {
		case stateNew:
			badge = ui.StatusNew()
			missing++
		case stateOK:
			badge = ui.StatusOK()
		case stateError:
			badge = ui.StatusError()
			unreadable++
		default:
			badge = ui.FileBadge(string(state))
		}
		fmt.Printf("  %s %s\n", nameStyle.Render(name), badge)
		if err != nil {
			fmt.Println(ui.RenderMuted("      " + err.Error()))
		}
	}

	fmt.Println()
	switch {
	case unreadable > 0:
		fmt.Println(ui.WarningLine(fmt.Sprintf("%d file(s) could not be read", unreadable)))
	case missing > 0:
		fmt.Println(ui.InfoLine(fmt.Sprintf("%d file(s) missing. Run %s to add them.", missing, ui.RenderCode("cppkit setup"))))
	default:
		fmt.Println(ui.SuccessLine("All setup files present"))
	}
	fmt.Println(ui.PageFooter())
}

// setupFileState compares root/name against the bundled copy. Files that
// cannot be read report stateError along with the cause.
func setupFileState(root, name string) (fileState, error) {
	existing, err := os.ReadFile(filepath.Join(root, name))
	if os.IsNotExist(err) {
		return stateNew, nil
	}
	if err != nil {
		return stateError, err
	}

	bundled, err := assets.Read(name)
	if err != nil {
		return stateError, err
	}
	if bytes.Equal(existing, bundled) {
		return stateOK, nil
	}
	return stateModified, nil
}
