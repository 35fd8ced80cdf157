package optcg

import "strings"

// Color is a card color. The canonical key doubles as the JSON wire value.
type Color string

// Color constants, one per canonical key.
const (
	ColorRed    Color = "red"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorBlack  Color = "black"
	ColorYellow Color = "yellow"
)

// Colors lists every color in canonical order.
var Colors = []Color{ColorRed, ColorGreen, ColorBlue, ColorPurple, ColorBlack, ColorYellow}

// ParseColor parses a canonical color key, case-insensitively.
// Returns EUNSUPPORTED for any token outside the closed set.
func ParseColor(value string) (Color, error) {
	switch strings.ToLower(value) {
	case "red":
		return ColorRed, nil
	case "green":
		return ColorGreen, nil
	case "blue":
		return ColorBlue, nil
	case "purple":
		return ColorPurple, nil
	case "black":
		return ColorBlack, nil
	case "yellow":
		return ColorYellow, nil
	default:
		return "", Errorf(EUNSUPPORTED, "unsupported color %q", value)
	}
}

// ParseColorLocalized resolves a localized display string to its canonical
// key via the locale table and parses the result.
func ParseColorLocalized(locale *Locale, value string) (Color, error) {
	key, ok := locale.MatchColor(value)
	if !ok {
		return "", Errorf(ENOTFOUND, "no color matches %q", value)
	}
	return ParseColor(key)
}
