// Package goquery implements HTML extraction for the vendor card list
// using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/optcg"
)

// NewDocument parses raw HTML into a navigable document.
func NewDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, optcg.Errorf(optcg.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
