// Package assets embeds the game's static data files.
package assets

import _ "embed"

// StationOffers is the station services catalog.
//
//go:embed station/offers.json
var StationOffers []byte
