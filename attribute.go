package optcg

import "strings"

// Attribute is a combat attribute. Only Leader and Character cards carry
// one, shown as an icon on the card face.
type Attribute string

// Attribute constants, one per canonical key.
const (
	AttributeSlash   Attribute = "slash"
	AttributeStrike  Attribute = "strike"
	AttributeRanged  Attribute = "ranged"
	AttributeSpecial Attribute = "special"
	AttributeWisdom  Attribute = "wisdom"
)

// Attributes lists every attribute in canonical order.
var Attributes = []Attribute{AttributeSlash, AttributeStrike, AttributeRanged, AttributeSpecial, AttributeWisdom}

// ParseAttribute parses a canonical attribute key, case-insensitively.
// Returns EUNSUPPORTED for any token outside the closed set.
func ParseAttribute(value string) (Attribute, error) {
	switch strings.ToLower(value) {
	case "slash":
		return AttributeSlash, nil
	case "strike":
		return AttributeStrike, nil
	case "ranged":
		return AttributeRanged, nil
	case "special":
		return AttributeSpecial, nil
	case "wisdom":
		return AttributeWisdom, nil
	default:
		return "", Errorf(EUNSUPPORTED, "unsupported attribute %q", value)
	}
}

// ParseAttributeLocalized resolves a localized display string to its
// canonical key via the locale table and parses the result.
func ParseAttributeLocalized(locale *Locale, value string) (Attribute, error) {
	key, ok := locale.MatchAttribute(strings.TrimSpace(value))
	if !ok {
		return "", Errorf(ENOTFOUND, "no attribute matches %q", value)
	}
	return ParseAttribute(key)
}
