// Package assets embeds the project setup files shipped with cppkit.
package assets

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// Root is the directory inside Resources holding the files.
const Root = "resources"

// Resources holds .clang-format, .clang-tidy, .clangd and .gitignore.
//
//go:embed resources/.clang-format resources/.clang-tidy resources/.clangd resources/.gitignore
var Resources embed.FS

// SetupFiles lists the files copied into a project root, in copy order.
var SetupFiles = []string{".clang-format", ".clang-tidy", ".clangd", ".gitignore"}

// Read returns the bundled contents of name.
func Read(name string) ([]byte, error) {
	return Resources.ReadFile(path.Join(Root, name))
}

// Install writes every bundled file into dir, creating it if needed, and
// returns the paths written. Existing files are replaced.
func Install(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	var written []string
	for _, name := range SetupFiles {
		data, err := Read(name)
		if err != nil {
			return written, fmt.Errorf("reading embedded %s: %w", name, err)
		}

		target := filepath.Join(dir, name)
		if err := os.WriteFile(target, data, 0644); err != nil {
			return written, fmt.Errorf("writing %s: %w", target, err)
		}
		written = append(written, target)
	}
	return written, nil
}
