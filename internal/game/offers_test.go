package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOffers(t *testing.T) {
	offers := DefaultOffers()
	require.Len(t, offers, OfferCount)
	assert.Equal(t, Offer{Name: "Refuel (+30)", Cost: 15, Effect: EffectRefuel}, offers[0])
	assert.Equal(t, Offer{Name: "Repair (+3 hull)", Cost: 12, Effect: EffectRepair}, offers[1])
	assert.Equal(t, Offer{Name: "Upgrade weapon", Cost: 25, Effect: EffectWeapon}, offers[2])
}

func TestLoadOffers_Rejects(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"bad json", `{"offers": [`, "parse station offers"},
		{"too few", `{"offers": [{"name": "a", "cost": 1, "effect": "refuel"}]}`, "want 3, got 1"},
		{"zero cost", `{"offers": [
			{"name": "a", "cost": 0, "effect": "refuel"},
			{"name": "b", "cost": 1, "effect": "repair"},
			{"name": "c", "cost": 1, "effect": "weapon"}]}`, "cost must be positive"},
		{"unknown effect", `{"offers": [
			{"name": "a", "cost": 1, "effect": "refuel"},
			{"name": "b", "cost": 1, "effect": "teleport"},
			{"name": "c", "cost": 1, "effect": "weapon"}]}`, "unknown effect"},
		{"missing name", `{"offers": [
			{"name": "", "cost": 1, "effect": "refuel"},
			{"name": "b", "cost": 1, "effect": "repair"},
			{"name": "c", "cost": 1, "effect": "weapon"}]}`, "missing name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadOffers([]byte(tt.json))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
