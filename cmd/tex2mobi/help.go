package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tex2mobi [flags] <document.tex>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a TeX/LaTeX document to a Kindle-compatible ebook using")
	fmt.Fprintln(w, "mk4ht (tex4ht) and Calibre's ebook-convert.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -e, --engine <s>     mk4ht engine: htlatex (default), htxelatex, httex")
	fmt.Fprintln(w, "  -f, --format <s>     Output format: mobi (default), azw3, epub")
	fmt.Fprintln(w, "      --profile <s>    ebook-convert output profile (default: kindle)")
	fmt.Fprintln(w, "  -c, --config <name>  Config file name or path")
	fmt.Fprintln(w, "  -k, --keep-temp      Keep tex4ht intermediate files")
	fmt.Fprintln(w, "  -K, --keep-html      Keep generated HTML and CSS files")
	fmt.Fprintln(w, "  -y, --yes            Answer yes to confirmation prompts")
	fmt.Fprintln(w, "  -q, --quiet          Only show errors")
	fmt.Fprintln(w, "  -v, --verbose        Show conversion progress")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  doctor     Check that the external converters are installed")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show this message")
	fmt.Fprintln(w)
	printEnvHelp(w)
}
