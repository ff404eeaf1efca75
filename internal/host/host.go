// Package host abstracts the environment an action runs in: which file is
// active, where the workspace is, how notices are shown and how documents are
// opened. Actions depend only on Host, so they run the same against the
// terminal and against the recording fakes used in tests.
package host

// Button labels used by confirmation notices.
const (
	ChoiceYes = "Yes"
	ChoiceNo  = "No"
)

// Host is the narrow surface actions need from their environment.
type Host interface {
	// ActiveFilePath returns the absolute path of the file being edited.
	ActiveFilePath() (string, bool)
	// OpenDocument shows the file at path to the user.
	OpenDocument(path string) error
	// ShowInfo, ShowWarning and ShowError display a notice. When choices are
	// given the user picks one; the picked label is returned, or "" if the
	// prompt was dismissed.
	ShowInfo(msg string, choices ...string) (string, error)
	ShowWarning(msg string, choices ...string) (string, error)
	ShowError(msg string, choices ...string) (string, error)
	// WorkspaceRoot returns the root directory of the first open workspace.
	WorkspaceRoot() (string, bool)
}
