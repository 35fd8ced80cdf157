package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/optcg"
)

// packOptionSelector matches the vendor's card-set <select> options.
const packOptionSelector = "div.seriesCol>select#series>option"

// cardLinkSelector matches the per-card links on a card-list page; each
// carries the card ID in its data-src attribute.
const cardLinkSelector = "div.resultCol>a"

// ParsePacks extracts every real pack from a card-list page. The vendor's
// sentinel "all packs" option has an empty value and is excluded.
func ParsePacks(doc *goquery.Document) ([]*optcg.Pack, error) {
	var packs []*optcg.Pack
	var parseErr error

	doc.Find(packOptionSelector).EachWithBreak(func(_ int, option *goquery.Selection) bool {
		id, ok := option.Attr("value")
		if !ok {
			parseErr = optcg.Errorf(optcg.ENOATTR, "no value attr on `%s`", packOptionSelector)
			return false
		}
		if id == "" {
			return true
		}

		inner, err := option.Html()
		if err != nil {
			parseErr = optcg.Errorf(optcg.EINTERNAL, "failed to serialize option: %v", err)
			return false
		}

		rawTitle := optcg.FlattenTitle(inner)
		packs = append(packs, &optcg.Pack{
			ID:         id,
			RawTitle:   rawTitle,
			TitleParts: optcg.DecomposeTitle(rawTitle),
		})
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}
	return packs, nil
}

// ParseCardIDs extracts the card IDs listed on a card-list page, in
// document order. The vendor stores each ID as a fragment reference in
// the link's data-src attribute.
func ParseCardIDs(doc *goquery.Document) ([]string, error) {
	var ids []string
	var parseErr error

	doc.Find(cardLinkSelector).EachWithBreak(func(_ int, link *goquery.Selection) bool {
		ref, ok := link.Attr("data-src")
		if !ok {
			parseErr = optcg.Errorf(optcg.ENOATTR, "no data-src attr on `%s`", cardLinkSelector)
			return false
		}
		ids = append(ids, strings.TrimPrefix(ref, "#"))
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}
	return ids, nil
}
