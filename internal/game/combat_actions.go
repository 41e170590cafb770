package game

import (
	"fmt"

	"monsters-fight/internal/dice"
)

// ResolveFlee draws the flee outcome. Returns whether the player escaped
// and the log message.
func ResolveFlee(src dice.Source) (bool, Message) {
	if src.Between(0, 1) == fleeSuccess {
		return true, Message{Kind: MsgFlee, Text: "You successfully fled"}
	}
	return false, Message{Kind: MsgFlee, Text: "You failed to flee"}
}

// ResolvePlayerAttack hits the monster for the player's damage. On a kill
// the player levels up and takes the monster's gold. Returns whether the
// monster died and the log messages.
func ResolvePlayerAttack(player *Player, monster *Monster) (bool, []Message) {
	monster.ApplyDamage(player.Damage())
	msgs := []Message{{
		Kind: MsgPlayerAttack,
		Text: fmt.Sprintf("you hit the %s for %d damage", monster.Name(), player.Damage()),
	}}
	if !monster.IsDead() {
		return false, msgs
	}

	player.LevelUp()
	player.AddGold(monster.Gold())
	msgs = append(msgs,
		Message{Kind: MsgPlayerAttack, Text: fmt.Sprintf("you killed the %s", monster.Name())},
		Message{Kind: MsgReward, Text: fmt.Sprintf("you are now level %d", player.Level())},
		Message{Kind: MsgReward, Text: fmt.Sprintf("you found %d gold", monster.Gold())},
	)
	return true, msgs
}

// ResolveMonsterAttack hits the player for the monster's damage. Returns
// whether the player died and the log message.
func ResolveMonsterAttack(monster *Monster, player *Player) (bool, Message) {
	player.ApplyDamage(monster.Damage())
	msg := Message{
		Kind: MsgMonsterAttack,
		Text: fmt.Sprintf("the %s hit you for %d damage", monster.Name(), monster.Damage()),
	}
	return player.IsDead(), msg
}
