// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// installHints maps external tool names to installation advice.
var installHints = map[string]string{
	"mk4ht":         "install the tex4ht package (TeX Live: tlmgr install tex4ht)",
	"ebook-convert": "install Calibre (https://calibre-ebook.com)",
}

// ForMissingTool returns a hint for a missing external converter.
func ForMissingTool(name string) string {
	return format(installHints[name])
}

// ForWhitespacePath returns a hint for paths tex4ht cannot handle.
func ForWhitespacePath() string {
	return format("rename the file without spaces, or pass --yes to proceed anyway")
}

// ForConfigNotFound returns a hint for config file lookup failures.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/tex2mobi") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
