package upload

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
	dotRuns             = regexp.MustCompile(`\.{2,}`)
)

// SecureFilename reduces an uploaded file's client-side name to a flat ASCII
// name that is safe to use on disk: accents are folded, path separators and
// whitespace become underscores, other characters are dropped, runs of dots
// collapse to one and leading or trailing dots and underscores are trimmed.
// The result may be empty and never contains "..".
func SecureFilename(name string) string {
	ascii, _, err := transform.String(transform.Chain(
		norm.NFKD,
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	), name)
	if err != nil {
		ascii = ""
	}

	ascii = strings.NewReplacer("/", " ", `\`, " ").Replace(ascii)
	ascii = strings.Join(strings.Fields(ascii), "_")
	ascii = unsafeFilenameChars.ReplaceAllString(ascii, "")
	ascii = dotRuns.ReplaceAllString(ascii, ".")
	return strings.Trim(ascii, "._")
}

// Extension returns the lower-cased text after the last '.' of name, or ""
// when name has no dot.
func Extension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}
