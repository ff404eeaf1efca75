// Package action implements the two user-triggered operations: creating the
// companion source file of a header, and copying the standard configuration
// files into a project root. Both talk to the user only through host.Host.
package action

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// ErrAborted is returned after an action stopped early. The reason has already
// been shown to the user as a notice.
var ErrAborted = errors.New("action aborted")

func loggerOrDiscard(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return log.New(io.Discard)
}
