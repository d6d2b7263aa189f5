package calibrelatex

import (
	"context"
	"path/filepath"
)

// ebookConvertCommand is Calibre's conversion executable.
const ebookConvertCommand = "ebook-convert"

// htmlToEbook runs ebook-convert on the HTML that tex4ht generated,
// writing the ebook next to it. flags come from BuildConvertFlags. As with
// texToHTML, the exit status does not gate the pipeline.
func (s *Service) htmlToEbook(ctx context.Context, base, format string, flags []string) (stderr string, err error) {
	dir := filepath.Dir(base)
	name := filepath.Base(base)
	args := append([]string{name + ".html", name + "." + format}, flags...)
	_, stderr, err = s.runner.Run(ctx, dir, ebookConvertCommand, args...)
	return stderr, err
}
