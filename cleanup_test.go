package calibrelatex

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestRemoveTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	base := filepath.Join(dir, "doc")

	for _, ext := range tempExtensions {
		touch(t, base+"."+ext)
	}
	// Files the sweep must leave alone.
	touch(t, base+".tex")
	touch(t, base+".html")
	touch(t, base+".css")

	RemoveTempFiles(base, nil)

	for _, ext := range tempExtensions {
		if exists(base + "." + ext) {
			t.Errorf("%s.%s still exists", base, ext)
		}
	}
	for _, ext := range []string{"tex", "html", "css"} {
		if !exists(base + "." + ext) {
			t.Errorf("%s.%s was removed", base, ext)
		}
	}
}

func TestRemoveTempFiles_MissingFilesSkipped(t *testing.T) {
	t.Parallel()

	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, format)
	}

	RemoveTempFiles(filepath.Join(t.TempDir(), "doc"), warn)

	if len(warnings) != 0 {
		t.Errorf("missing files produced warnings: %v", warnings)
	}
}

func TestRemoveHTMLFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	base := filepath.Join(dir, "doc")
	touch(t, base+".html")
	touch(t, base+".css")
	touch(t, base+".mobi")

	RemoveHTMLFiles(base, nil)

	if exists(base + ".html") {
		t.Error("doc.html still exists")
	}
	if exists(base + ".css") {
		t.Error("doc.css still exists")
	}
	if !exists(base + ".mobi") {
		t.Error("doc.mobi was removed")
	}
}

func TestBasePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "tex extension stripped", path: "book.tex", want: "book"},
		{name: "directory preserved", path: "docs/book.tex", want: "docs/book"},
		{name: "no extension unchanged", path: "book", want: "book"},
		{name: "other extension unchanged", path: "book.txt", want: "book.txt"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := BasePath(tt.path); got != tt.want {
				t.Errorf("BasePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
