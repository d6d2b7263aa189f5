package calibrelatex

import (
	"strings"

	"github.com/Arkq/calibre-latex/internal/fileutil"
)

// tempExtensions lists the intermediate files tex4ht leaves next to the
// document. The generated HTML and CSS are handled separately because
// ebook-convert still needs them after this cleanup runs.
var tempExtensions = []string{
	"4ct", "4tc", "aux", "dvi", "fls", "idv",
	"lg", "log", "out", "tmp", "toc", "xref",
}

// htmlExtensions lists the files produced for the ebook converter itself.
var htmlExtensions = []string{"html", "css"}

// RemoveTempFiles deletes tex4ht intermediate files for the document with
// the given base path (input path without the .tex extension). Missing
// files are skipped; removal failures are reported through warn and do
// not stop the sweep.
func RemoveTempFiles(base string, warn func(format string, args ...any)) {
	removeByExtension(base, tempExtensions, warn)
}

// RemoveHTMLFiles deletes the generated HTML and CSS files for the
// document with the given base path.
func RemoveHTMLFiles(base string, warn func(format string, args ...any)) {
	removeByExtension(base, htmlExtensions, warn)
}

func removeByExtension(base string, extensions []string, warn func(format string, args ...any)) {
	for _, ext := range extensions {
		path := base + "." + ext
		if err := fileutil.RemoveIfExists(path); err != nil && warn != nil {
			warn("removing %s: %v", path, err)
		}
	}
}

// BasePath strips the .tex extension from a document path. Paths without
// the extension are returned unchanged.
func BasePath(path string) string {
	return strings.TrimSuffix(path, ".tex")
}
