package game

import (
	"encoding/json"
	"fmt"

	"github.com/spacehole-rogue/spacegame/assets"
)

// OfferCount is the fixed size of a station catalog.
const OfferCount = 3

// Effect is what a station purchase does to the player.
type Effect string

const (
	EffectRefuel Effect = "refuel"
	EffectRepair Effect = "repair"
	EffectWeapon Effect = "weapon"
)

// Offer is one station service.
type Offer struct {
	Name   string `json:"name"`
	Cost   int    `json:"cost"`
	Effect Effect `json:"effect"`
}

type offerCatalog struct {
	Offers []Offer `json:"offers"`
}

// LoadOffers parses and validates a station catalog from JSON bytes.
func LoadOffers(data []byte) ([]Offer, error) {
	var cat offerCatalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse station offers: %w", err)
	}
	if len(cat.Offers) != OfferCount {
		return nil, fmt.Errorf("station offers: want %d, got %d", OfferCount, len(cat.Offers))
	}
	for i, o := range cat.Offers {
		if o.Name == "" {
			return nil, fmt.Errorf("station offer %d: missing name", i)
		}
		if o.Cost <= 0 {
			return nil, fmt.Errorf("station offer %q: cost must be positive, got %d", o.Name, o.Cost)
		}
		switch o.Effect {
		case EffectRefuel, EffectRepair, EffectWeapon:
		default:
			return nil, fmt.Errorf("station offer %q: unknown effect %q", o.Name, o.Effect)
		}
	}
	return cat.Offers, nil
}

// DefaultOffers returns the embedded station catalog.
// A malformed embedded catalog is a build defect and panics.
func DefaultOffers() []Offer {
	offers, err := LoadOffers(assets.StationOffers)
	if err != nil {
		panic(err)
	}
	return offers
}
