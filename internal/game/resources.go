package game

// Progress limits and per-event amounts.
const (
	MaxHull        = 10
	MaxFuel        = 100
	LootCredits    = 5
	FuelPerLanding = 5
)

// PlayerProgress is the player's persistent stats for one galaxy run.
// Hull and shield never go negative; hull and fuel never exceed their maxima.
type PlayerProgress struct {
	Hull      int
	Shield    int
	Credits   int
	Weapon    int
	Fuel      int
	Resources int
}

// NewPlayerProgress creates the starting stats: a lightly armored ship,
// full tank and empty wallet.
func NewPlayerProgress() PlayerProgress {
	return PlayerProgress{
		Hull:   5,
		Shield: 3,
		Fuel:   MaxFuel,
	}
}

// TakeHit absorbs one point of damage, shield first.
// It reports whether the hull is now destroyed.
func (p *PlayerProgress) TakeHit() bool {
	if p.Shield > 0 {
		p.Shield--
		return false
	}
	return p.Damage(1)
}

// Damage removes hull directly, bypassing the shield.
func (p *PlayerProgress) Damage(n int) bool {
	p.Hull = max(0, p.Hull-n)
	return p.Hull == 0
}

// Repair adds hull up to MaxHull.
func (p *PlayerProgress) Repair(n int) {
	p.Hull = min(MaxHull, p.Hull+n)
}

// Refuel adds fuel up to MaxFuel.
func (p *PlayerProgress) Refuel(n int) {
	p.Fuel = min(MaxFuel, p.Fuel+n)
}

// BurnFuel consumes fuel, floored at zero.
func (p *PlayerProgress) BurnFuel(n int) {
	p.Fuel = max(0, p.Fuel-n)
}

// Earn adds credits.
func (p *PlayerProgress) Earn(n int) {
	p.Credits += n
}

// Spend deducts cost if the player can afford it.
func (p *PlayerProgress) Spend(cost int) bool {
	if p.Credits < cost {
		return false
	}
	p.Credits -= cost
	return true
}
