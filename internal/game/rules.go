package game

// Player starting stats and progression rules.
const (
	PlayerSymbol      = '@'
	PlayerStartHealth = 10
	PlayerStartDamage = 1
	PlayerStartGold   = 0
	PlayerStartLevel  = 1
	WinLevel          = 20 // reaching this level wins the game

	fleeSuccess = 1 // flee draw is Between(0, 1); 1 escapes
)
