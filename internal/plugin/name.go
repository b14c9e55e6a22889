package plugin

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidName is returned when a plugin name contains characters other
// than letters, numbers, hyphens, and underscores.
var ErrInvalidName = errors.New("invalid plugin name")

// PluginName holds a validated plugin name and its derived forms.
type PluginName struct {
	Raw    string // as supplied, e.g. "hello-world"
	Snake  string // hyphens replaced, e.g. "hello_world"
	Pascal string // e.g. "HelloWorld"
}

// ParseName validates raw and derives its snake and Pascal forms.
func ParseName(raw string) (PluginName, error) {
	if !isValidName(raw) {
		return PluginName{}, fmt.Errorf("%w %q: only letters, numbers, hyphens, and underscores are allowed", ErrInvalidName, raw)
	}

	snake := strings.ReplaceAll(raw, "-", "_")
	return PluginName{
		Raw:    raw,
		Snake:  snake,
		Pascal: snakeToPascal(snake),
	}, nil
}

// isValidName reports whether raw, with hyphens and underscores removed, is a
// non-empty run of letters and numbers.
func isValidName(raw string) bool {
	stripped := strings.NewReplacer("-", "", "_", "").Replace(raw)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// snakeToPascal joins the underscore-delimited segments of snake, each with
// its first rune upper-cased and the rest lower-cased. Digits do not start a
// new word: "x2y_3z" becomes "X2y3z".
func snakeToPascal(snake string) string {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)
	var b strings.Builder
	for _, seg := range strings.Split(snake, "_") {
		if seg == "" {
			continue
		}
		_, size := utf8.DecodeRuneInString(seg)
		b.WriteString(upper.String(seg[:size]))
		b.WriteString(lower.String(seg[size:]))
	}
	return b.String()
}
