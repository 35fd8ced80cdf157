package optcg

import "strings"

// Rarity is a card rarity. Rarities are ordered for display and sorting;
// Rank exposes the order so the JSON wire value stays the canonical key.
type Rarity string

// Rarity constants, one per canonical key, in rank order.
const (
	RarityCommon       Rarity = "common"
	RarityUncommon     Rarity = "uncommon"
	RarityRare         Rarity = "rare"
	RaritySuperRare    Rarity = "super_rare"
	RaritySecretRare   Rarity = "secret_rare"
	RarityLeader       Rarity = "leader"
	RaritySpecial      Rarity = "special"
	RarityTreasureRare Rarity = "treasure_rare" // added with the OP07 set
	RarityPromo        Rarity = "promo"
)

// Rarities lists every rarity in rank order.
var Rarities = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RaritySuperRare,
	RaritySecretRare,
	RarityLeader,
	RaritySpecial,
	RarityTreasureRare,
	RarityPromo,
}

var rarityRanks = map[Rarity]int{
	RarityCommon:       0,
	RarityUncommon:     1,
	RarityRare:         2,
	RaritySuperRare:    3,
	RaritySecretRare:   4,
	RarityLeader:       5,
	RaritySpecial:      6,
	RarityTreasureRare: 7,
	RarityPromo:        8,
}

// Rank returns the rarity's position in the display order.
// Unknown rarities sort last.
func (r Rarity) Rank() int {
	if rank, ok := rarityRanks[r]; ok {
		return rank
	}
	return len(rarityRanks)
}

// ParseRarity parses a canonical rarity key, case-insensitively.
// Returns EUNSUPPORTED for any token outside the closed set.
func ParseRarity(value string) (Rarity, error) {
	switch strings.ToLower(value) {
	case "common":
		return RarityCommon, nil
	case "uncommon":
		return RarityUncommon, nil
	case "rare":
		return RarityRare, nil
	case "super_rare":
		return RaritySuperRare, nil
	case "secret_rare":
		return RaritySecretRare, nil
	case "leader":
		return RarityLeader, nil
	case "special":
		return RaritySpecial, nil
	case "treasure_rare":
		return RarityTreasureRare, nil
	case "promo":
		return RarityPromo, nil
	default:
		return "", Errorf(EUNSUPPORTED, "unsupported rarity %q", value)
	}
}

// ParseRarityLocalized resolves a localized display string to its
// canonical key via the locale table and parses the result.
func ParseRarityLocalized(locale *Locale, value string) (Rarity, error) {
	key, ok := locale.MatchRarity(value)
	if !ok {
		return "", Errorf(ENOTFOUND, "no rarity matches %q", value)
	}
	return ParseRarity(key)
}
