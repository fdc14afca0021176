package skills

import (
	"path/filepath"
	"strings"
)

// extensionToTechnology maps source file extensions to the technology whose
// rule-set reads them. Library technologies (flask, django, ...) share the
// python extension and must be asked for explicitly.
var extensionToTechnology = map[string]Technology{
	"go":   Go,
	"py":   Python,
	"pyw":  Python,
	"rs":   Rust,
	"c":    C,
	"h":    C,
	"cpp":  Cpp,
	"cc":   Cpp,
	"cxx":  Cpp,
	"hpp":  Cpp,
	"sh":   Shell,
	"bash": Shell,
	"zsh":  Shell,
	"html": HTML,
	"htm":  HTML,
}

// DetectTechnology guesses the technology of a source file from its
// extension. It returns false when the extension is unknown.
func DetectTechnology(filePath string) (Technology, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filePath), "."))
	if ext == "" {
		return "", false
	}
	tech, ok := extensionToTechnology[ext]
	return tech, ok
}
