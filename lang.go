package calibrelatex

import "golang.org/x/text/language"

// babelTags maps babel language names to BCP 47 tags. Babel names that
// already parse as tags (rare) are handled by LanguageTag directly; this
// table covers the common English-word option names.
var babelTags = map[string]string{
	"english":    "en",
	"american":   "en-US",
	"british":    "en-GB",
	"french":     "fr",
	"francais":   "fr",
	"german":     "de",
	"ngerman":    "de",
	"austrian":   "de-AT",
	"spanish":    "es",
	"italian":    "it",
	"portuguese": "pt",
	"brazilian":  "pt-BR",
	"dutch":      "nl",
	"danish":     "da",
	"swedish":    "sv",
	"norsk":      "nb",
	"finnish":    "fi",
	"polish":     "pl",
	"czech":      "cs",
	"slovak":     "sk",
	"hungarian":  "hu",
	"romanian":   "ro",
	"russian":    "ru",
	"ukrainian":  "uk",
	"greek":      "el",
	"turkish":    "tr",
}

// LanguageTag maps a babel language name to a BCP 47 tag. Names not in the
// babel table are tried as tags themselves; anything unrecognized passes
// through verbatim so ebook-convert can apply its own resolution.
func LanguageTag(babel string) string {
	if tag, ok := babelTags[babel]; ok {
		return tag
	}
	if tag, err := language.Parse(babel); err == nil {
		return tag.String()
	}
	return babel
}
