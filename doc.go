// Package calibrelatex converts TeX/LaTeX documents to Kindle-compatible
// ebooks by orchestrating two external converters: mk4ht (tex4ht) for
// TeX to HTML, and Calibre's ebook-convert for HTML to mobi/azw3.
//
// # Quick Start
//
// Create a service and convert a document:
//
//	svc := calibrelatex.New()
//	err := svc.Convert(ctx, calibrelatex.Input{Path: "book.tex"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The resulting ebook is written next to the input document, using its
// base name with the target format's extension.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. TeX to HTML via mk4ht (engine: htlatex, htxelatex, or httex)
//  2. Removal of tex4ht intermediate files (.aux, .dvi, .4ct, ...)
//  3. Metadata extraction from the TeX source (class, language, author,
//     cover, date, publisher, ISBN)
//  4. HTML to ebook via ebook-convert, with flags built from the metadata
//  5. Removal of the generated HTML and CSS files
//
// A non-zero exit status from either external tool does not stop the
// pipeline; conversion is best effort. Missing executables, by contrast,
// are detected up front and reported as errors.
//
// # Metadata
//
// Metadata is read directly from the TeX source with [ReadMetadata]. Each
// accessor scans the document's lines for the first match of a fixed
// pattern; absence of a field is not an error and simply omits the
// corresponding ebook-convert flag.
package calibrelatex
