package game

// Player is the creature controlled by the person at the keyboard.
type Player struct {
	Creature
	level int
}

// NewPlayer creates a level 1 player with the starting stats.
func NewPlayer(name string) *Player {
	return &Player{
		Creature: NewCreature(name, PlayerSymbol, PlayerStartHealth, PlayerStartDamage, PlayerStartGold),
		level:    PlayerStartLevel,
	}
}

// Level returns the player's current level.
func (p *Player) Level() int {
	return p.level
}

// LevelUp raises level and damage by one. It does not check the win
// condition.
func (p *Player) LevelUp() {
	p.level++
	p.damage++
}

// HasWon reports whether the player reached WinLevel.
func (p *Player) HasWon() bool {
	return p.level >= WinLevel
}
