package config

import (
	"os"
	"path/filepath"
)

// executable is swapped in tests.
var executable = os.Executable

// FindProjectRoot walks up from dir to the nearest directory containing .git.
// It returns "" when there is none.
func FindProjectRoot(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}

	return ""
}

// ResourceCandidates lists the directories searched for project setup files,
// in priority order: the configured override, resources/ next to the
// executable, then the user data directory.
func ResourceCandidates(s *Settings, p *Paths) []string {
	var candidates []string
	if s != nil && s.ResourcesDir != "" {
		candidates = append(candidates, s.ResourcesDir)
	}

	if exe, err := executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), ResourcesDirName))
	}

	if p != nil {
		candidates = append(candidates, p.ResourcesDir)
	}
	return candidates
}
