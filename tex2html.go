package calibrelatex

import (
	"context"
	"path/filepath"
)

// mk4htCommand is the tex4ht driver executable.
const mk4htCommand = "mk4ht"

// texToHTML runs mk4ht in the document's directory, producing HTML and CSS
// next to the source. The tool's exit status is deliberately not part of
// the result; the pipeline is best effort and the caller only gets stderr
// for reporting.
func (s *Service) texToHTML(ctx context.Context, path, engine string) (stderr string, err error) {
	dir := filepath.Dir(path)
	_, stderr, err = s.runner.Run(ctx, dir, mk4htCommand, engine, filepath.Base(path))
	return stderr, err
}
