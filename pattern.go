package wordmark

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Span is a half open range of rune offsets.
type Span struct {
	Start int
	End   int
}

// Escape quotes every regular expression metacharacter in s so the result
// matches s literally. The escaped set is . * + ? ^ $ { } ( ) | [ ] and \.
func Escape(s string) string {
	return regexp.QuoteMeta(s)
}

// Compile builds the word boundary anchored pattern for h.
func Compile(h Highlight) (*regexp.Regexp, error) {
	expr := `\b` + Escape(h.Word) + `\b`
	if h.IgnoreCase {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile pattern for %q: %w", h.Word, err)
	}
	return re, nil
}

// FindMatches returns every non-overlapping occurrence of h in text, scanning
// left to right. Offsets are in runes.
func FindMatches(text string, h Highlight) ([]Span, error) {
	re, err := Compile(h)
	if err != nil {
		return nil, err
	}
	return findSpans(re, text), nil
}

func findSpans(re *regexp.Regexp, text string) []Span {
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	// Matches come back sorted by byte offset, so rune offsets can be counted
	// incrementally instead of from the start of text for every match.
	spans := make([]Span, 0, len(locs))
	byteOff, runeOff := 0, 0
	advance := func(to int) int {
		runeOff += utf8.RuneCountInString(text[byteOff:to])
		byteOff = to
		return runeOff
	}

	for _, loc := range locs {
		start := advance(loc[0])
		end := advance(loc[1])
		spans = append(spans, Span{Start: start, End: end})
	}
	return spans
}
