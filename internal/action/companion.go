package action

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/kennyg/cppkit/internal/companion"
	"github.com/kennyg/cppkit/internal/host"
)

// CreateCompanion writes the implementation file that pairs with the active
// header, or opens it when it already exists.
type CreateCompanion struct {
	Host host.Host
	Fs   afero.Fs
	// Now stamps the banner; defaults to time.Now.
	Now       func() time.Time
	Banner    companion.Banner
	SourceExt string
	Logger    *log.Logger
}

// Run performs the action. Write and open failures are returned as-is;
// validation failures are reported through the host and yield ErrAborted.
func (a *CreateCompanion) Run() error {
	logger := loggerOrDiscard(a.Logger)

	headerPath, ok := a.Host.ActiveFilePath()
	if !ok {
		if _, err := a.Host.ShowWarning("No active editor"); err != nil {
			return err
		}
		return ErrAborted
	}

	if !companion.IsHeader(headerPath) {
		msg := fmt.Sprintf("%s is not a header file (expected %s)",
			filepath.Base(headerPath), strings.Join(companion.HeaderExtensions, ", "))
		if _, err := a.Host.ShowWarning(msg); err != nil {
			return err
		}
		return ErrAborted
	}

	target := companion.CompanionPath(a.Fs, headerPath, a.SourceExt)
	logger.Debug("resolved companion", "header", headerPath, "target", target)

	if exists, err := afero.Exists(a.Fs, target); err != nil {
		return fmt.Errorf("checking %s: %w", target, err)
	} else if exists {
		if _, err := a.Host.ShowInfo(filepath.Base(target) + " already exists"); err != nil {
			return err
		}
		return a.Host.OpenDocument(target)
	}

	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	include := companion.IncludeLine(headerPath, target)
	logger.Debug("include directive", "line", include)

	content := a.Banner.Render(target, include, now())
	if err := afero.WriteFile(a.Fs, target, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}

	if err := a.Host.OpenDocument(target); err != nil {
		return err
	}
	_, err := a.Host.ShowInfo("Created " + filepath.Base(target))
	return err
}
