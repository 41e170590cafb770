package game

// Creature holds the stats shared by the player and monsters.
type Creature struct {
	name   string
	symbol rune
	health int
	damage int
	gold   int
}

// NewCreature creates a creature with the given stats.
func NewCreature(name string, symbol rune, health, damage, gold int) Creature {
	return Creature{
		name:   name,
		symbol: symbol,
		health: health,
		damage: damage,
		gold:   gold,
	}
}

// Name returns the creature's display name.
func (c *Creature) Name() string { return c.name }

// Symbol returns the single rune drawn for the creature.
func (c *Creature) Symbol() rune { return c.symbol }

// Health returns current health. Zero or below means dead.
func (c *Creature) Health() int { return c.health }

// Damage returns how much health one attack removes.
func (c *Creature) Damage() int { return c.damage }

// Gold returns the gold carried.
func (c *Creature) Gold() int { return c.gold }

// SetHealth overwrites health.
func (c *Creature) SetHealth(v int) { c.health = v }

// SetDamage overwrites attack damage.
func (c *Creature) SetDamage(v int) { c.damage = v }

// SetGold overwrites the gold carried.
func (c *Creature) SetGold(v int) { c.gold = v }

// ApplyDamage reduces health by amount. Health is not clamped and may go
// negative.
func (c *Creature) ApplyDamage(amount int) {
	c.health -= amount
}

// IsDead reports whether health has dropped to zero or below.
func (c *Creature) IsDead() bool {
	return c.health <= 0
}

// AddGold increases gold by amount.
func (c *Creature) AddGold(amount int) {
	c.gold += amount
}
