package calibrelatex

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Field extraction patterns. All are anchored at the start of the line and
// capture the command's single argument as group 1.
var (
	reDocumentClass = regexp.MustCompile(`^\\documentclass(?:\[[^\]]*\])?\{([^}]+)\}`)
	reBabel         = regexp.MustCompile(`^\\usepackage\[([^\]]+)\]\{babel\}`)
	reAuthor        = regexp.MustCompile(`^\\author\{(.+)\}`)
	reCoverImage    = regexp.MustCompile(`^\\CoverImage\{(.+)\}`)
	reDate          = regexp.MustCompile(`^\\date\{(.+)\}`)
	rePublisher     = regexp.MustCompile(`^\\Publisher\{(.+)\}`)
	reISBN          = regexp.MustCompile(`^\\ISBN\{([0-9]+)\}`)

	reEscaped = regexp.MustCompile(`\\(.)`)
)

// Metadata reads bibliographic fields from a TeX source document.
//
// The document is loaded once at construction; accessors re-scan the
// stored lines on every call. The first matching line wins. A field with
// no matching line is reported as absent, never as an error.
type Metadata struct {
	lines []string
}

// ReadMetadata loads the TeX document at path. The returned error names
// the path and wraps the underlying OS error (os.ErrNotExist,
// os.ErrPermission) so callers can classify it with errors.Is.
func ReadMetadata(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadDocument, path, err)
	}
	defer f.Close()

	m, err := ParseMetadata(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadDocument, path, err)
	}
	return m, nil
}

// ParseMetadata loads a TeX document from r.
func ParseMetadata(r io.Reader) (*Metadata, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &Metadata{lines: lines}, nil
}

// find returns the first capture group of the first line matching re.
func (m *Metadata) find(re *regexp.Regexp) (string, bool) {
	for _, line := range m.lines {
		if match := re.FindStringSubmatch(line); match != nil {
			return match[1], true
		}
	}
	return "", false
}

// DocumentClass returns the argument of the \documentclass command.
func (m *Metadata) DocumentClass() (string, bool) {
	return m.find(reDocumentClass)
}

// Languages returns the babel package's option list in source order, with
// surrounding whitespace trimmed from each entry. An empty slice means no
// \usepackage[...]{babel} line was found.
func (m *Metadata) Languages() []string {
	raw, ok := m.find(reBabel)
	if !ok {
		return nil
	}
	parts := strings.Split(raw, ",")
	langs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			langs = append(langs, p)
		}
	}
	return langs
}

// Author returns the unescaped argument of the \author command.
func (m *Metadata) Author() (string, bool) {
	return m.findUnescaped(reAuthor)
}

// CoverImage returns the unescaped argument of the \CoverImage command.
func (m *Metadata) CoverImage() (string, bool) {
	return m.findUnescaped(reCoverImage)
}

// Date returns the unescaped argument of the \date command.
func (m *Metadata) Date() (string, bool) {
	return m.findUnescaped(reDate)
}

// Publisher returns the unescaped argument of the \Publisher command.
func (m *Metadata) Publisher() (string, bool) {
	return m.findUnescaped(rePublisher)
}

// ISBN returns the digits of the \ISBN command. Lines whose argument
// contains anything but digits do not match.
func (m *Metadata) ISBN() (string, bool) {
	return m.find(reISBN)
}

func (m *Metadata) findUnescaped(re *regexp.Regexp) (string, bool) {
	value, ok := m.find(re)
	if !ok {
		return "", false
	}
	return Unescape(value), true
}

// Unescape replaces every backslash-escaped character with the character
// alone (`\X` becomes `X`). Applied in a single pass, non-recursively:
// `\\X` yields `\X`, not `X`.
func Unescape(s string) string {
	return reEscaped.ReplaceAllString(s, "$1")
}
