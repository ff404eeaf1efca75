// Package companion decides where the implementation file for a C/C++ header
// belongs and renders its initial contents: a comment banner followed by the
// directive that includes the header.
package companion

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// DefaultSourceExtension is the suffix given to generated companion files.
const DefaultSourceExtension = ".cpp"

// HeaderExtensions lists the recognized header suffixes, in display order.
var HeaderExtensions = []string{".h", ".hpp", ".hh", ".hxx"}

// IsHeader reports whether path ends in one of HeaderExtensions.
// The match is an exact, case-sensitive suffix match: "foo.H" is not a header.
func IsHeader(path string) bool {
	for _, ext := range HeaderExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Stem returns the base name of path without its final extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// CompanionPath returns where the companion of headerPath should be written.
// An empty sourceExt means DefaultSourceExtension.
func CompanionPath(fs afero.Fs, headerPath, sourceExt string) string {
	if sourceExt == "" {
		sourceExt = DefaultSourceExtension
	}
	return filepath.Join(ResolveTargetDir(fs, headerPath), Stem(headerPath)+sourceExt)
}
