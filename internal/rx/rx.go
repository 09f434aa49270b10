// Package rx wraps the coregex engine behind the small pattern API the
// table operations need. Compilation failures are reported as
// *PatternError so the CLI can name the offending pattern.
package rx

import (
	"fmt"

	"github.com/coregx/coregex"
)

// PatternError reports a malformed regular expression.
type PatternError struct {
	Pattern string // pattern as supplied by the user
	Err     error  // underlying compile error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid regular expression %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// Regex is a compiled pattern. Matching is leftmost-first.
type Regex struct {
	pattern string
	re      *coregex.Regexp
}

// Compile creates a new Regex from pattern.
func Compile(pattern string) (*Regex, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return &Regex{pattern: pattern, re: re}, nil
}

// MustCompile creates a Regex, panicking on error. Intended for
// package-level patterns that are known to be valid.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Pattern returns the original pattern string.
func (r *Regex) Pattern() string { return r.pattern }

// MatchString reports whether s contains any match.
func (r *Regex) MatchString(s string) bool {
	return r.re.MatchString(s)
}

// ReplaceAllString replaces all matches in s with repl.
func (r *Regex) ReplaceAllString(s, repl string) string {
	return r.re.ReplaceAllString(s, repl)
}

// RemoveAll deletes every match from s.
func (r *Regex) RemoveAll(s string) string {
	return r.re.ReplaceAllString(s, "")
}

// FindAllString returns the text of all non-overlapping matches in s.
// n limits the match count; n < 0 means all matches.
func (r *Regex) FindAllString(s string, n int) []string {
	pairs := r.re.FindAllStringIndex(s, n)
	if pairs == nil {
		return nil
	}
	out := make([]string, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, s[p[0]:p[1]])
	}
	return out
}
