package game

import (
	"fmt"

	"monsters-fight/internal/dice"
)

// MonsterType identifies a monster archetype.
type MonsterType int

const (
	MonsterDragon MonsterType = iota
	MonsterOrc
	MonsterSlime

	monsterTypeCount
)

// MonsterDef defines an archetype's base stats.
type MonsterDef struct {
	Name   string
	Symbol rune
	Health int
	Damage int
	Gold   int // awarded per kill
}

// monsterCatalog is indexed by MonsterType.
var monsterCatalog = [monsterTypeCount]MonsterDef{
	MonsterDragon: {Name: "dragon", Symbol: 'D', Health: 20, Damage: 4, Gold: 100},
	MonsterOrc:    {Name: "orc", Symbol: 'o', Health: 4, Damage: 2, Gold: 25},
	MonsterSlime:  {Name: "slime", Symbol: 's', Health: 1, Damage: 1, Gold: 10},
}

func (t MonsterType) String() string {
	if !t.valid() {
		return fmt.Sprintf("MonsterType(%d)", int(t))
	}
	return monsterCatalog[t].Name
}

func (t MonsterType) valid() bool {
	return t >= 0 && t < monsterTypeCount
}

// Def returns the archetype's base stats. The catalog is returned by value
// so callers cannot modify it.
func (t MonsterType) Def() MonsterDef {
	if !t.valid() {
		panic(fmt.Sprintf("game: unknown monster type %d", int(t)))
	}
	return monsterCatalog[t]
}

// MonsterTypes lists every archetype in catalog order.
func MonsterTypes() []MonsterType {
	types := make([]MonsterType, 0, monsterTypeCount)
	for t := MonsterType(0); t < monsterTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// Monster is a live monster in an encounter.
type Monster struct {
	Creature
	Type MonsterType
}

// NewMonster creates a monster with its archetype's base stats.
func NewMonster(t MonsterType) *Monster {
	def := t.Def()
	return &Monster{
		Creature: NewCreature(def.Name, def.Symbol, def.Health, def.Damage, def.Gold),
		Type:     t,
	}
}

// RandomMonster creates a monster of a uniformly drawn archetype.
func RandomMonster(src dice.Source) *Monster {
	t := MonsterType(src.Between(0, int(monsterTypeCount)-1))
	return NewMonster(t)
}
