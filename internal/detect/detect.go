// Package detect works out which command-line tools a project's setup files
// rely on and checks whether they are installed.
package detect

import (
	"os/exec"
)

// RequirementType represents the kind of requirement detected
type RequirementType string

const (
	TypeCommand RequirementType = "command" // Binary must exist on PATH
)

// Requirement represents a detected setup requirement
type Requirement struct {
	Type   RequirementType `json:"type"`
	Value  string          `json:"value"`  // Command name
	Source string          `json:"source"` // Setup file that needs it
	Hint   string          `json:"hint"`   // How to install it
}

// VerifyResult contains the result of verifying a requirement
type VerifyResult struct {
	Requirement Requirement
	Satisfied   bool
	Message     string // Help message if not satisfied
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// toolsByFile maps each setup file to the tool that reads it.
var toolsByFile = map[string]Requirement{
	".clang-format": {Type: TypeCommand, Value: "clang-format", Hint: "install clang-format from your LLVM distribution"},
	".clang-tidy":   {Type: TypeCommand, Value: "clang-tidy", Hint: "install clang-tidy from your LLVM distribution"},
	".clangd":       {Type: TypeCommand, Value: "clangd", Hint: "install clangd from your LLVM distribution"},
	".gitignore":    {Type: TypeCommand, Value: "git", Hint: "install git"},
}

// ForFiles returns the requirements of the given setup files, in order.
// Unknown files have none.
func ForFiles(files []string) []Requirement {
	var reqs []Requirement
	seen := make(map[string]bool)
	for _, f := range files {
		req, ok := toolsByFile[f]
		if !ok || seen[req.Value] {
			continue
		}
		seen[req.Value] = true
		req.Source = f
		reqs = append(reqs, req)
	}
	return reqs
}

// Verify checks if a requirement is satisfied
func Verify(req Requirement) VerifyResult {
	result := VerifyResult{Requirement: req}

	switch req.Type {
	case TypeCommand:
		_, err := lookPath(req.Value)
		result.Satisfied = err == nil
		if !result.Satisfied {
			result.Message = "Command not found: " + req.Value
			if req.Hint != "" {
				result.Message += "\n  Hint: " + req.Hint
			}
		}

	default:
		result.Satisfied = true // Unknown types pass by default
	}

	return result
}

// VerifyAll checks all requirements and returns results
func VerifyAll(reqs []Requirement) []VerifyResult {
	results := make([]VerifyResult, len(reqs))
	for i, req := range reqs {
		results[i] = Verify(req)
	}
	return results
}

// HasUnsatisfied returns true if any requirement is not satisfied
func HasUnsatisfied(results []VerifyResult) bool {
	for _, r := range results {
		if !r.Satisfied {
			return true
		}
	}
	return false
}
