package goquery

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/optcg"
)

// childNode resolves a selector against the subtree rooted at node to
// exactly one descendant. Zero matches is ENOTFOUND and two or more is
// EAMBIGUOUS: a selector matching multiple nodes means a markup
// assumption has broken and must surface, never be masked by silently
// taking the first match.
func childNode(node *goquery.Selection, selector string) (*goquery.Selection, error) {
	found := node.Find(selector)
	switch found.Length() {
	case 0:
		return nil, optcg.Errorf(optcg.ENOTFOUND, "expected `%s` but got nothing", selector)
	case 1:
		return found, nil
	default:
		return nil, optcg.Errorf(optcg.EAMBIGUOUS, "expected single `%s` but got %d", selector, found.Length())
	}
}

// pairedTagRe matches a balanced open/close tag pair and everything
// between, e.g. the decorative `<h3>Color</h3>` header the vendor embeds
// inside otherwise plain-text fields.
var pairedTagRe = regexp.MustCompile(`(?s)<[^>]*>.*?</[^>]*>`)

// stripTags removes tag-delimited substrings from an inner-HTML fragment
// and trims surrounding whitespace. Unpaired tags such as `<br>` are kept;
// they are part of the field's text flow. Idempotent.
func stripTags(fragment string) string {
	return strings.TrimSpace(pairedTagRe.ReplaceAllString(fragment, ""))
}

// strippedText returns a node's inner HTML with paired markup removed and
// entities decoded.
func strippedText(node *goquery.Selection) (string, error) {
	fragment, err := node.Html()
	if err != nil {
		return "", optcg.Errorf(optcg.EINTERNAL, "failed to serialize node: %v", err)
	}
	return strings.TrimSpace(html.UnescapeString(stripTags(fragment))), nil
}
