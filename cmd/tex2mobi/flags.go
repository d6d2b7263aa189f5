package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// convertFlags holds all flags for the convert action.
type convertFlags struct {
	engine   string
	format   string
	profile  string
	config   string
	keepTemp bool
	keepHTML bool
	yes      bool
	quiet    bool
	verbose  bool
}

// parseConvertFlags parses the convert action's flags and returns the
// remaining positional arguments.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("tex2mobi", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.engine, "engine", "e", "", "mk4ht engine: htlatex, htxelatex, httex")
	fs.StringVarP(&f.format, "format", "f", "", "output format: mobi, azw3, epub")
	fs.StringVar(&f.profile, "profile", "", "ebook-convert output profile")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.keepTemp, "keep-temp", "k", false, "keep tex4ht intermediate files")
	fs.BoolVarP(&f.keepHTML, "keep-html", "K", false, "keep generated HTML and CSS files")
	fs.BoolVarP(&f.yes, "yes", "y", false, "answer yes to confirmation prompts")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show conversion progress")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
