package model

// Rarity is the draw tier of a gacha item.
type Rarity string

const (
	RarityNormal Rarity = "normal"
	RarityRare   Rarity = "rare"
)

// String returns the string representation of the rarity.
func (r Rarity) String() string {
	return string(r)
}

// GachaItem is an entry in the static collectible catalog. Only item
// IDs are persisted per user (in UserData.CollectedItems).
type GachaItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Rarity      Rarity `json:"rarity"`
	Emoji       string `json:"emoji"`
	Description string `json:"description,omitempty"`
}

// UserData holds per-user progression counters. TotalXP is a display
// cache; the source of truth is always recomputed from the Leaf
// collection.
type UserData struct {
	TotalXP        float64  `json:"total_xp"`
	CollectedItems []string `json:"collected_items,omitempty"`
	GachaTickets   int      `json:"gacha_tickets"`
}

// HasItem reports whether the item ID is already in the collection.
func (u *UserData) HasItem(id string) bool {
	for _, it := range u.CollectedItems {
		if it == id {
			return true
		}
	}
	return false
}
