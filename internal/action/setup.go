package action

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/kennyg/cppkit/internal/host"
)

// SetupProject copies the configuration files into the workspace root.
type SetupProject struct {
	Host host.Host
	Fs   afero.Fs
	// Candidates are resource directories tried in order; the first that
	// exists supplies the files.
	Candidates []string
	// Files are the names copied from the resource directory.
	Files  []string
	Logger *log.Logger
}

// Result describes what a successful setup did.
type Result struct {
	ResourceDir string
	Copied      []string
	Skipped     []string
}

// Run performs the action. Every failure is reported through the host and
// yields ErrAborted; files copied before a failure are left in place.
func (a *SetupProject) Run() (*Result, error) {
	logger := loggerOrDiscard(a.Logger)

	root, ok := a.Host.WorkspaceRoot()
	if !ok {
		return nil, a.fail("No workspace folder is open")
	}

	resourceDir := a.locateResources()
	if resourceDir == "" {
		return nil, a.fail("Resource directory not found")
	}
	logger.Debug("using resources", "dir", resourceDir, "root", root)

	result, err := a.copyAll(resourceDir, root, logger)
	if err != nil {
		return nil, a.fail(fmt.Sprintf("Project setup failed: %v", err))
	}

	if _, err := a.Host.ShowInfo(fmt.Sprintf("Project setup complete in %s", root)); err != nil {
		return nil, err
	}
	return result, nil
}

func (a *SetupProject) locateResources() string {
	for _, dir := range a.Candidates {
		if ok, _ := afero.DirExists(a.Fs, dir); ok {
			return dir
		}
	}
	return ""
}

func (a *SetupProject) copyAll(resourceDir, root string, logger *log.Logger) (*Result, error) {
	result := &Result{ResourceDir: resourceDir}

	for _, name := range a.Files {
		dest := filepath.Join(root, name)

		exists, err := afero.Exists(a.Fs, dest)
		if err != nil {
			return nil, fmt.Errorf("checking %s: %w", dest, err)
		}
		if exists {
			answer, err := a.Host.ShowWarning(
				fmt.Sprintf("%s already exists. Overwrite?", name),
				host.ChoiceYes, host.ChoiceNo)
			if err != nil {
				return nil, err
			}
			if answer != host.ChoiceYes {
				logger.Debug("skipped", "file", name)
				result.Skipped = append(result.Skipped, name)
				continue
			}
		}

		data, err := afero.ReadFile(a.Fs, filepath.Join(resourceDir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if err := afero.WriteFile(a.Fs, dest, data, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", dest, err)
		}
		logger.Debug("copied", "file", name, "dest", dest)
		result.Copied = append(result.Copied, name)
	}

	return result, nil
}

func (a *SetupProject) fail(msg string) error {
	if _, err := a.Host.ShowError(msg); err != nil {
		return err
	}
	return ErrAborted
}
