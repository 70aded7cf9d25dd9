package leveling

import (
	"math/rand"

	"github.com/mogumo/levemagi/internal/model"
)

// RareChance is the probability of the first roll landing on rare.
const RareChance = 0.30

// Catalog is the fixed gacha item catalog: 7 normal, 3 rare.
var Catalog = []model.GachaItem{
	{ID: "acorn", Name: "どんぐり", Rarity: model.RarityNormal, Emoji: "🌰", Description: "森の定番。拾うとちょっと嬉しい。"},
	{ID: "clover", Name: "クローバー", Rarity: model.RarityNormal, Emoji: "🍀", Description: "三つ葉。四つ葉は別枠。"},
	{ID: "mushroom", Name: "きのこ", Rarity: model.RarityNormal, Emoji: "🍄", Description: "木陰にひっそり生えている。"},
	{ID: "feather", Name: "羽根", Rarity: model.RarityNormal, Emoji: "🪶", Description: "どこかの鳥の落としもの。"},
	{ID: "pinecone", Name: "まつぼっくり", Rarity: model.RarityNormal, Emoji: "🌲", Description: "握ると少しチクチクする。"},
	{ID: "dewdrop", Name: "朝露", Rarity: model.RarityNormal, Emoji: "💧", Description: "朝の葉先にだけ現れる。"},
	{ID: "ladybug", Name: "てんとう虫", Rarity: model.RarityNormal, Emoji: "🐞", Description: "幸運のしるしらしい。"},
	{ID: "golden-acorn", Name: "金のどんぐり", Rarity: model.RarityRare, Emoji: "✨", Description: "百年に一度だけ実るという。"},
	{ID: "rainbow-leaf", Name: "虹色の葉", Rarity: model.RarityRare, Emoji: "🌈", Description: "光の角度で七色に変わる。"},
	{ID: "forest-spirit", Name: "森の精霊", Rarity: model.RarityRare, Emoji: "🧚", Description: "努力を続ける者の前にだけ姿を見せる。"},
}

// FindItem returns the catalog entry for the ID, or nil.
func FindItem(id string) *model.GachaItem {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}

// Drawer performs gacha draws against the catalog. The random source
// is injected so draws are reproducible under a fixed seed.
type Drawer struct {
	rng *rand.Rand
}

// NewDrawer creates a drawer using the given random source.
func NewDrawer(rng *rand.Rand) *Drawer {
	return &Drawer{rng: rng}
}

// Draw rolls rarity first (70% normal / 30% rare), then picks
// uniformly among the catalog items of that rarity.
func (d *Drawer) Draw() model.GachaItem {
	rarity := model.RarityNormal
	if d.rng.Float64() < RareChance {
		rarity = model.RarityRare
	}

	var pool []model.GachaItem
	for _, it := range Catalog {
		if it.Rarity == rarity {
			pool = append(pool, it)
		}
	}
	return pool[d.rng.Intn(len(pool))]
}
