// Package portrait maps fighter names to image files through an ordered
// chain of candidate keys; the first key with an existing file wins.
package portrait

import (
	"io/fs"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/okian/grapplerank/internal/domain/types"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	spaceRun     = regexp.MustCompile(`[\s\p{Z}]+`)
	notSlugChar  = regexp.MustCompile(`[^a-z0-9\-]`)
	notWordSpace = regexp.MustCompile(`[^a-z0-9\s]`)
)

// combiningMarks is the Combining Diacritical Marks block (U+0300..U+036F).
var combiningMarks = runes.Predicate(func(r rune) bool { return r >= 0x0300 && r <= 0x036F })

// Candidates returns the keys to try for name, most specific first, with
// duplicates and empty keys removed.
func Candidates(name string) []string {
	lower := strings.ToLower(name)
	keys := []string{
		notSlugChar.ReplaceAllString(hyphenate(lower), ""),
		hyphenate(lower),
		hyphenate(strings.ToLower(stripMarks(name))),
		hyphenate(notWordSpace.ReplaceAllString(lower, "")),
	}

	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func hyphenate(s string) string {
	return spaceRun.ReplaceAllString(s, "-")
}

// stripMarks decomposes s and drops combining marks, e.g. "Galvão" -> "Galvao".
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(combiningMarks))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Resolver looks candidates up in an image filesystem.
type Resolver struct {
	fsys   fs.FS
	prefix string
	ext    string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithURLPrefix sets the prefix prepended to resolved files, default "/images/".
func WithURLPrefix(prefix string) Option {
	return func(r *Resolver) {
		r.prefix = prefix
	}
}

// WithExtension sets the image file extension, default ".png".
func WithExtension(ext string) Option {
	return func(r *Resolver) {
		if ext != "" {
			r.ext = ext
		}
	}
}

// NewResolver builds a Resolver over fsys. A nil fsys never resolves.
func NewResolver(fsys fs.FS, opts ...Option) *Resolver {
	r := &Resolver{fsys: fsys, prefix: "/images/", ext: ".png"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the first existing image for name. The placeholder is
// always set so a renderer can fall back to the initial.
func (r *Resolver) Resolve(name string) types.Portrait {
	p := types.Portrait{Placeholder: Initial(name)}
	if r == nil || r.fsys == nil {
		return p
	}
	for _, key := range Candidates(name) {
		file := key + r.ext
		if !fs.ValidPath(file) {
			continue
		}
		if st, err := fs.Stat(r.fsys, file); err == nil && !st.IsDir() {
			p.Src = r.prefix + file
			return p
		}
	}
	return p
}

// Initial returns the first character of name, or "" for an empty name.
func Initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(r)
}
