package optcg

import "strings"

// Category is a card category.
type Category string

// Category constants, one per canonical key.
const (
	CategoryLeader    Category = "leader"
	CategoryCharacter Category = "character"
	CategoryEvent     Category = "event"
	CategoryStage     Category = "stage"
	CategoryDon       Category = "don"
)

// Categories lists every category in canonical order.
var Categories = []Category{CategoryLeader, CategoryCharacter, CategoryEvent, CategoryStage, CategoryDon}

// ParseCategory parses a canonical category key, case-insensitively.
// Returns EUNSUPPORTED for any token outside the closed set.
func ParseCategory(value string) (Category, error) {
	switch strings.ToLower(value) {
	case "leader":
		return CategoryLeader, nil
	case "character":
		return CategoryCharacter, nil
	case "event":
		return CategoryEvent, nil
	case "stage":
		return CategoryStage, nil
	case "don":
		return CategoryDon, nil
	default:
		return "", Errorf(EUNSUPPORTED, "unsupported category %q", value)
	}
}

// ParseCategoryLocalized resolves a localized display string to its
// canonical key via the locale table and parses the result.
func ParseCategoryLocalized(locale *Locale, value string) (Category, error) {
	key, ok := locale.MatchCategory(value)
	if !ok {
		return "", Errorf(ENOTFOUND, "no category matches %q", value)
	}
	return ParseCategory(key)
}
