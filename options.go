package calibrelatex

// Chapter-boundary XPath selectors for the HTML that tex4ht generates.
// Articles split on section headings; books on part and chapter headings.
const (
	chapterSelectorArticle = `//*[@class='sectionHead']`
	chapterSelectorBook    = `//*[@class='partHead' or @class='chapterHead']`
)

// BuildConvertFlags maps document metadata to ebook-convert flags.
//
// The two base flags (output profile, inline TOC suppression) are always
// present. Metadata-derived flags follow in fixed order: chapter selector,
// language, authors, cover, publisher, ISBN. Absent fields contribute no
// flag.
func BuildConvertFlags(meta *Metadata, profile string) []string {
	flags := []string{
		"--output-profile=" + profile,
		"--no-inline-toc",
	}

	if class, ok := meta.DocumentClass(); ok {
		switch class {
		case "article":
			flags = append(flags, "--chapter="+chapterSelectorArticle)
		case "book":
			flags = append(flags, "--chapter="+chapterSelectorBook)
		}
	}

	if langs := meta.Languages(); len(langs) > 0 {
		flags = append(flags, "--language="+LanguageTag(langs[0]))
	}
	if author, ok := meta.Author(); ok {
		flags = append(flags, "--authors="+author)
	}
	if cover, ok := meta.CoverImage(); ok {
		flags = append(flags, "--cover="+cover)
	}
	if publisher, ok := meta.Publisher(); ok {
		flags = append(flags, "--publisher="+publisher)
	}
	if isbn, ok := meta.ISBN(); ok {
		flags = append(flags, "--isbn="+isbn)
	}

	return flags
}
