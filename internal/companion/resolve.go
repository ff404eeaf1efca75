package companion

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// includeSegment marks the root of a public-headers tree.
const includeSegment = "include"

// sourceDirCandidates are checked, in order, next to an include directory.
var sourceDirCandidates = []string{"Src", "src"}

// ResolveTargetDir returns the directory that should hold the companion of
// headerPath.
//
// The header's directory is scanned for the first segment named "include"
// (compared case-insensitively). When one is found, the directory above it is
// the project parent, and a "Src" or "src" directory under that parent is
// preferred if it exists. Without an include segment the companion sits next to
// the header. The result is advisory: it is never checked for writability.
func ResolveTargetDir(fs afero.Fs, headerPath string) string {
	dir := filepath.Dir(headerPath)
	volume := filepath.VolumeName(dir)
	rest := filepath.ToSlash(dir[len(volume):])

	rooted := strings.HasPrefix(rest, "/")
	segments := strings.Split(strings.TrimPrefix(rest, "/"), "/")

	idx := -1
	for i, seg := range segments {
		if strings.EqualFold(seg, includeSegment) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return dir
	}

	parent := filepath.FromSlash(strings.Join(segments[:idx], "/"))
	switch {
	case rooted:
		parent = volume + string(filepath.Separator) + parent
	case parent == "":
		parent = volume + "."
	default:
		parent = volume + parent
	}
	parent = filepath.Clean(parent)

	for _, name := range sourceDirCandidates {
		candidate := filepath.Join(parent, name)
		if isDir(fs, candidate) {
			return candidate
		}
	}
	return parent
}

func isDir(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && info.IsDir()
}
