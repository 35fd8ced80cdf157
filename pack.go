package optcg

import (
	"fmt"
	"regexp"
	"strings"
)

// Pack represents one entry from the vendor's card-set selector.
// The sentinel "all packs" option carries an empty ID and is filtered out
// before a Pack is ever constructed.
type Pack struct {
	ID         string     `json:"id"`
	RawTitle   string     `json:"rawTitle"`
	TitleParts TitleParts `json:"titleParts"`
}

// TitleParts is a decomposed pack title: an optional prefix, the core
// title, and an optional bracketed label (e.g. set code).
type TitleParts struct {
	Prefix *string `json:"prefix"`
	Title  string  `json:"title"`
	Label  *string `json:"label"`
}

var (
	tagRemnantRe = regexp.MustCompile(`&lt;.*?&gt;`)
	labelRe      = regexp.MustCompile(`\[(.*?)\]`)
	prefixRe     = regexp.MustCompile(`^(.*?)-.*?-`)
)

// FlattenTitle removes escaped-angle-bracket tag remnants (the vendor
// embeds a decorative line-break marker in raw option markup).
func FlattenTitle(raw string) string {
	return tagRemnantRe.ReplaceAllString(raw, "")
}

// DecomposeTitle splits a flattened pack title into its parts.
//
// The first bracketed token becomes the label; any later brackets stay in
// the title text. A leading "text-...-" shape yields the prefix. One
// leading and one trailing dash are trimmed from what remains. A title
// with no brackets or dashes passes through unchanged.
func DecomposeTitle(raw string) TitleParts {
	title := raw

	var label *string
	if m := labelRe.FindStringSubmatch(raw); m != nil {
		l := m[1]
		label = &l
		title = strings.TrimSpace(strings.Replace(title, fmt.Sprintf("[%s]", l), "", 1))
	}

	var prefix *string
	if m := prefixRe.FindStringSubmatch(raw); m != nil && m[1] != "" {
		title = strings.Replace(title, m[1], "", 1)
		p := strings.TrimSpace(m[1])
		prefix = &p
	}

	title = strings.TrimPrefix(title, "-")
	title = strings.TrimSuffix(title, "-")
	title = strings.TrimSpace(title)

	return TitleParts{Prefix: prefix, Title: title, Label: label}
}

// Validate returns an error if the pack contains invalid fields.
func (p *Pack) Validate() error {
	if p.ID == "" {
		return Errorf(EINVALID, "pack ID required")
	}
	if p.RawTitle == "" {
		return Errorf(EINVALID, "pack raw title required")
	}
	return nil
}

// String implements fmt.Stringer.
func (p *Pack) String() string {
	label := ""
	if p.TitleParts.Label != nil {
		label = *p.TitleParts.Label
	}
	return fmt.Sprintf("%s: %s (%s)", p.ID, p.TitleParts.Title, label)
}
