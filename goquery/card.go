package goquery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/optcg"
)

// selectorSpec is one way to reach a field's node. Variants are tried in
// order and the first selector that matches wins.
type selectorSpec struct {
	selector string
	attr     string // read this attribute instead of the node's text
}

// fieldSpec declares how one card field is located and decoded. The
// decoding policy is the cardFields table, applied strictly in order;
// the builder only interprets it.
type fieldSpec struct {
	name      string
	optional  bool // zero matching nodes is not an error
	strip     bool // remove paired markup from the raw value
	selectors []selectorSpec
	decode    func(loc *optcg.Locale, card *optcg.Card, raw string) error
}

var cardFields = []fieldSpec{
	{
		name:      "name",
		selectors: []selectorSpec{{selector: "dt>div.cardName"}},
		decode: func(_ *optcg.Locale, card *optcg.Card, raw string) error {
			card.Name = raw
			return nil
		},
	},
	{
		name:      "rarity",
		selectors: []selectorSpec{{selector: "dt>div.infoCol>span:nth-child(2)"}},
		decode: func(loc *optcg.Locale, card *optcg.Card, raw string) error {
			rarity, err := optcg.ParseRarityLocalized(loc, raw)
			if err != nil {
				return err
			}
			card.Rarity = rarity
			return nil
		},
	},
	{
		name:      "category",
		selectors: []selectorSpec{{selector: "dt>div.infoCol>span:nth-child(3)"}},
		decode: func(loc *optcg.Locale, card *optcg.Card, raw string) error {
			category, err := optcg.ParseCategoryLocalized(loc, raw)
			if err != nil {
				return err
			}
			card.Category = category
			return nil
		},
	},
	{
		name:      "img_url",
		selectors: []selectorSpec{{selector: "dd>div.frontCol>img", attr: "data-src"}},
		decode: func(_ *optcg.Locale, card *optcg.Card, raw string) error {
			card.ImgURL = raw
			return nil
		},
	},
	{
		name:      "colors",
		strip:     true,
		selectors: []selectorSpec{{selector: "dd>div.backCol>div.color"}},
		decode: func(loc *optcg.Locale, card *optcg.Card, raw string) error {
			if raw == "" {
				return nil
			}
			for _, segment := range strings.Split(raw, "/") {
				color, err := optcg.ParseColorLocalized(loc, segment)
				if err != nil {
					return err
				}
				card.Colors = append(card.Colors, color)
			}
			return nil
		},
	},
	{
		name:      "cost",
		strip:     true,
		selectors: []selectorSpec{{selector: "dd>div.backCol>div.col2>div.cost"}},
		decode: func(_ *optcg.Locale, card *optcg.Card, raw string) error {
			cost, err := intOrDash(raw)
			if err != nil {
				return err
			}
			card.Cost = cost
			return nil
		},
	},
	{
		name:     "attributes",
		optional: true,
		selectors: []selectorSpec{
			{selector: "dd>div.backCol>div.col2>div.attribute>img", attr: "alt"},
			// older vendor markup carried the attribute as inline text
			{selector: "dd>div.backCol>div.col2>div.attribute>i"},
		},
		decode: func(loc *optcg.Locale, card *optcg.Card, raw string) error {
			if raw == "" {
				return nil
			}
			for _, segment := range strings.Split(raw, "/") {
				attribute, err := optcg.ParseAttributeLocalized(loc, segment)
				if err != nil {
					return err
				}
				card.Attributes = append(card.Attributes, attribute)
			}
			return nil
		},
	},
	{
		name:      "power",
		strip:     true,
		selectors: []selectorSpec{{selector: "dd>div.backCol>div.col2>div.power"}},
		decode: func(_ *optcg.Locale, card *optcg.Card, raw string) error {
			power, err := intOrDash(raw)
			if err != nil {
				return err
			}
			card.Power = power
			return nil
		},
	},
	{
		name:      "counter",
		strip:     true,
		selectors: []selectorSpec{{selector: "dd>div.backCol>div.col2>div.counter"}},
		decode: func(_ *optcg.Locale, card *optcg.Card, raw string) error {
			counter, err := intOrDash(raw)
			if err != nil {
				return err
			}
			card.Counter = counter
			return nil
		},
	},
	{
		name:      "types",
		strip:     true,
		selectors: []selectorSpec{{selector: "dd>div.backCol>div.feature"}},
		decode: func(_ *optcg.Locale, card *optcg.Card, raw string) error {
			if raw == "" {
				return nil
			}
			card.Types = strings.Split(raw, "/")
			return nil
		},
	},
	{
		name:      "effect",
		strip:     true,
		selectors: []selectorSpec{{selector: "dd>div.backCol>div.text"}},
		decode: func(_ *optcg.Locale, card *optcg.Card, raw string) error {
			card.Effect = raw
			return nil
		},
	},
	{
		name:      "trigger",
		optional:  true,
		strip:     true,
		selectors: []selectorSpec{{selector: "dd>div.backCol>div.trigger"}},
		decode: func(_ *optcg.Locale, card *optcg.Card, raw string) error {
			card.Trigger = &raw
			return nil
		},
	},
}

// CardParser builds typed card records from a parsed card-list document.
type CardParser struct {
	locale *optcg.Locale
}

// NewCardParser creates a CardParser for one locale.
func NewCardParser(locale *optcg.Locale) *CardParser {
	return &CardParser{locale: locale}
}

// ParseCard assembles the card identified by cardID from the document.
// The anchor is the unique <dl> whose id is the card ID; fields are
// decoded strictly in table order and the first failure aborts the build
// wrapped with the card ID. No partial card is ever returned.
func (p *CardParser) ParseCard(doc *goquery.Document, packID, cardID string) (*optcg.Card, error) {
	anchor, err := cardAnchor(doc, cardID)
	if err != nil {
		return nil, err
	}

	card := &optcg.Card{PackID: packID}

	id, ok := anchor.Attr("id")
	if !ok {
		return nil, optcg.Errorf(optcg.ENOATTR, "card %s: expected id attr on dl", cardID)
	}
	card.ID = id

	for _, f := range cardFields {
		raw, ok, err := p.extract(anchor, f)
		if err != nil {
			return nil, wrapFieldError(cardID, f.name, err)
		}
		if !ok {
			continue
		}
		if err := f.decode(p.locale, card, raw); err != nil {
			return nil, wrapFieldError(cardID, f.name, err)
		}
	}

	return card, nil
}

// extract resolves a field's node and returns its raw value. The second
// return is false when an optional field's node is absent.
func (p *CardParser) extract(anchor *goquery.Selection, f fieldSpec) (string, bool, error) {
	for _, s := range f.selectors {
		node, err := childNode(anchor, s.selector)
		if optcg.ErrorCode(err) == optcg.ENOTFOUND {
			continue
		}
		if err != nil {
			return "", false, err
		}

		if s.attr != "" {
			val, ok := node.Attr(s.attr)
			if !ok {
				return "", false, optcg.Errorf(optcg.ENOATTR, "no %s attr on `%s`", s.attr, s.selector)
			}
			return strings.TrimSpace(val), true, nil
		}
		if f.strip {
			raw, err := strippedText(node)
			if err != nil {
				return "", false, err
			}
			return raw, true, nil
		}
		return node.Text(), true, nil
	}

	if f.optional {
		return "", false, nil
	}
	return "", false, optcg.Errorf(optcg.ENOTFOUND, "expected `%s` but got nothing", f.selectors[0].selector)
}

// cardAnchor locates the unique description block for a card.
func cardAnchor(doc *goquery.Document, cardID string) (*goquery.Selection, error) {
	selector := fmt.Sprintf("dl#%s", cardID)
	found := doc.Find(selector)
	switch found.Length() {
	case 0:
		return nil, optcg.Errorf(optcg.ENOTFOUND, "card %s not found", cardID)
	case 1:
		return found, nil
	default:
		return nil, optcg.Errorf(optcg.EAMBIGUOUS, "expected single `%s` but got %d", selector, found.Length())
	}
}

// intOrDash decodes the vendor's integer-or-absent convention: a literal
// dash means the card has no value for the field.
func intOrDash(raw string) (*int, error) {
	if raw == "-" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, optcg.Errorf(optcg.EMALFORMED, "expected integer or `-`, got %q", raw)
	}
	return &n, nil
}

func wrapFieldError(cardID, field string, err error) error {
	return optcg.Errorf(optcg.ErrorCode(err), "card %s: %s: %s", cardID, field, optcg.ErrorMessage(err))
}
