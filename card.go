package optcg

import "fmt"

// Card represents one card extracted from a vendor card-list page.
// A Card is fully valid by construction: the builder either decodes every
// field or returns an error, so downstream consumers never re-validate.
type Card struct {
	ID       string   `json:"id"`
	PackID   string   `json:"packId"`
	Name     string   `json:"name"`
	Rarity   Rarity   `json:"rarity"`
	Category Category `json:"category"`

	// Images
	ImgURL     string  `json:"imgUrl"`
	ImgFullURL *string `json:"imgFullUrl,omitempty"`

	// Gameplay
	Colors     []Color     `json:"colors"`
	Cost       *int        `json:"cost"`       // life for Leader cards
	Attributes []Attribute `json:"attributes"` // only Leader and Character
	Power      *int        `json:"power"`      // only Leader and Character
	Counter    *int        `json:"counter"`    // only Character

	Types   []string `json:"types"`
	Effect  string   `json:"effect"`
	Trigger *string  `json:"trigger,omitempty"`
}

// Validate returns an error if the card contains invalid fields.
func (c *Card) Validate() error {
	if c.ID == "" {
		return Errorf(EINVALID, "card ID required")
	}
	if c.PackID == "" {
		return Errorf(EINVALID, "card pack ID required")
	}
	if c.Name == "" {
		return Errorf(EINVALID, "card name required")
	}
	return nil
}

// String implements fmt.Stringer.
func (c *Card) String() string {
	return fmt.Sprintf("%s. `%s`", c.ID, c.Name)
}
