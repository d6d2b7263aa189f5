package calibrelatex

import (
	"reflect"
	"strings"
	"testing"
)

func TestBuildConvertFlags_BaseFlagsAlwaysPresent(t *testing.T) {
	t.Parallel()

	m := mustParse(t, `\relax`)
	flags := BuildConvertFlags(m, DefaultProfile)

	want := []string{"--output-profile=kindle", "--no-inline-toc"}
	if !reflect.DeepEqual(flags, want) {
		t.Errorf("flags = %v, want %v", flags, want)
	}
}

func TestBuildConvertFlags_ChapterSelector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		source      string
		wantArticle bool
		wantBook    bool
	}{
		{
			name:        "article uses section headings",
			source:      `\documentclass{article}`,
			wantArticle: true,
		},
		{
			name:     "book uses part and chapter headings",
			source:   `\documentclass[12pt]{book}`,
			wantBook: true,
		},
		{
			name:   "report gets no chapter flag",
			source: `\documentclass{report}`,
		},
		{
			name:   "absent class gets no chapter flag",
			source: `\relax`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			flags := BuildConvertFlags(mustParse(t, tt.source), DefaultProfile)

			gotArticle := containsFlag(flags, "--chapter="+chapterSelectorArticle)
			gotBook := containsFlag(flags, "--chapter="+chapterSelectorBook)
			if gotArticle != tt.wantArticle {
				t.Errorf("article selector present = %v, want %v", gotArticle, tt.wantArticle)
			}
			if gotBook != tt.wantBook {
				t.Errorf("book selector present = %v, want %v", gotBook, tt.wantBook)
			}
			if !containsFlag(flags, "--output-profile=kindle") || !containsFlag(flags, "--no-inline-toc") {
				t.Errorf("base flags missing from %v", flags)
			}
		})
	}
}

func TestBuildConvertFlags_FullMetadata(t *testing.T) {
	t.Parallel()

	flags := BuildConvertFlags(mustParse(t, sampleDocument), DefaultProfile)

	want := []string{
		"--output-profile=kindle",
		"--no-inline-toc",
		"--chapter=" + chapterSelectorBook,
		"--language=en",
		"--authors=Jane & Doe",
		"--cover=images/cover_front.png",
		"--publisher=O'Reilly & Associates",
		"--isbn=9780000000001",
	}
	if !reflect.DeepEqual(flags, want) {
		t.Errorf("flags = %v, want %v", flags, want)
	}
}

func TestBuildConvertFlags_NoISBN(t *testing.T) {
	t.Parallel()

	flags := BuildConvertFlags(mustParse(t, `\documentclass{article}`), DefaultProfile)
	for _, f := range flags {
		if strings.HasPrefix(f, "--isbn=") {
			t.Errorf("unexpected ISBN flag in %v", flags)
		}
	}
}

func TestBuildConvertFlags_LanguageUsesFirstEntry(t *testing.T) {
	t.Parallel()

	flags := BuildConvertFlags(mustParse(t, `\usepackage[french,english]{babel}`), DefaultProfile)
	if !containsFlag(flags, "--language=fr") {
		t.Errorf("flags = %v, want --language=fr", flags)
	}
	if containsFlag(flags, "--language=en") {
		t.Errorf("flags = %v, second language must be ignored", flags)
	}
}

func TestBuildConvertFlags_CustomProfile(t *testing.T) {
	t.Parallel()

	flags := BuildConvertFlags(mustParse(t, `\relax`), "kindle_pw3")
	if flags[0] != "--output-profile=kindle_pw3" {
		t.Errorf("flags[0] = %q, want custom profile first", flags[0])
	}
}

func containsFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if f == flag {
			return true
		}
	}
	return false
}
