package companion

import (
	"path/filepath"
	"regexp"
)

// publicIncludeRe captures whatever follows the first "include" segment.
var publicIncludeRe = regexp.MustCompile(`(?i)(?:^|/)include/(.+)$`)

// IncludeLine returns the preprocessor directive a companion file at
// companionPath uses to pull in headerPath.
//
// Headers below an include segment are public and get the angle-bracket form
// relative to that segment. Any other header is included by its path relative
// to the companion's directory, in quotes.
func IncludeLine(headerPath, companionPath string) string {
	normalized := toSlash(headerPath)
	if m := publicIncludeRe.FindStringSubmatch(normalized); m != nil {
		return "#include <" + m[1] + ">"
	}

	rel, err := filepath.Rel(filepath.Dir(companionPath), headerPath)
	if err != nil {
		rel = headerPath
	}
	return `#include "` + toSlash(rel) + `"`
}

// toSlash converts both separator styles to '/', regardless of host OS.
func toSlash(path string) string {
	b := []byte(path)
	for i, c := range b {
		if c == '\\' {
			b[i] = '/'
		}
	}
	return string(b)
}
