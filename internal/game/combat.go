package game

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"monsters-fight/internal/dice"
)

// Outcome is the state of an encounter.
type Outcome int

const (
	Ongoing     Outcome = iota // waiting for the player's decision
	PlayerFled                 // flee succeeded
	PlayerDied                 // monster killed the player
	MonsterDied                // player killed the monster
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case PlayerFled:
		return "player fled"
	case PlayerDied:
		return "player died"
	case MonsterDied:
		return "monster died"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Terminal reports whether the encounter is over.
func (o Outcome) Terminal() bool {
	return o != Ongoing
}

// Decision is the player's choice for a turn.
type Decision int

const (
	DecisionInvalid Decision = iota
	DecisionRun
	DecisionFight
)

// ParseDecision reads the first non-blank rune of line. r/R runs, f/F
// fights, anything else is invalid.
func ParseDecision(line string) Decision {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	if line == "" {
		return DecisionInvalid
	}
	switch []rune(line)[0] {
	case 'r', 'R':
		return DecisionRun
	case 'f', 'F':
		return DecisionFight
	default:
		return DecisionInvalid
	}
}

// MessageKind classifies a log message for display.
type MessageKind int

const (
	MsgInfo MessageKind = iota
	MsgEncounter
	MsgFlee
	MsgPlayerAttack
	MsgMonsterAttack
	MsgReward
	MsgHint
	MsgVictory
	MsgDefeat
)

// Message is one line of game output.
type Message struct {
	Kind MessageKind
	Text string
}

// Prompts shown to the player.
const (
	NamePrompt     = "enter your name: "
	DecisionPrompt = "(r)un or (f)ight ?\n"
)

// Terminal is the player's side of a session: it shows messages and reads
// lines of input.
type Terminal interface {
	Show(msgs ...Message)
	Prompt(ctx context.Context, prompt string) (string, error)
}

// Encounter manages a single fight between the player and one monster.
type Encounter struct {
	Player  *Player
	Monster *Monster
	Outcome Outcome
	Turns   int // decisions that consumed a turn

	src dice.Source
	log []Message
}

// NewEncounter spawns a random monster for the player to face.
func NewEncounter(player *Player, src dice.Source) *Encounter {
	return newEncounter(player, RandomMonster(src), src)
}

func newEncounter(player *Player, monster *Monster, src dice.Source) *Encounter {
	e := &Encounter{
		Player:  player,
		Monster: monster,
		Outcome: Ongoing,
		src:     src,
	}
	e.addLog(Message{
		Kind: MsgEncounter,
		Text: fmt.Sprintf("you encountered a %s(%c)", monster.Name(), monster.Symbol()),
	})
	return e
}

func (e *Encounter) addLog(msgs ...Message) {
	e.log = append(e.log, msgs...)
}

// Drain returns the messages logged since the last call and clears them.
func (e *Encounter) Drain() []Message {
	msgs := e.log
	e.log = nil
	return msgs
}

// Turn applies one decision and returns the resulting outcome. An invalid
// decision only logs a hint. Turn on a finished encounter is a no-op.
func (e *Encounter) Turn(d Decision) Outcome {
	if e.Outcome.Terminal() {
		return e.Outcome
	}

	switch d {
	case DecisionRun:
		e.Turns++
		fled, msg := ResolveFlee(e.src)
		e.addLog(msg)
		if fled {
			e.Outcome = PlayerFled
			return e.Outcome
		}
	case DecisionFight:
		e.Turns++
		killed, msgs := ResolvePlayerAttack(e.Player, e.Monster)
		e.addLog(msgs...)
		if killed {
			e.Outcome = MonsterDied
			return e.Outcome
		}
	default:
		e.addLog(Message{Kind: MsgHint, Text: `press "r" to run  or "f" to fight`})
		return e.Outcome
	}

	// Failed flee or a non-lethal hit: the monster strikes back.
	died, msg := ResolveMonsterAttack(e.Monster, e.Player)
	e.addLog(msg)
	if died {
		e.Outcome = PlayerDied
	}
	return e.Outcome
}

// Fight runs an encounter against a random monster until it reaches a
// terminal outcome, reading decisions from term.
func Fight(ctx context.Context, term Terminal, player *Player, src dice.Source) (*Encounter, error) {
	return runEncounter(ctx, term, NewEncounter(player, src))
}

func runEncounter(ctx context.Context, term Terminal, e *Encounter) (*Encounter, error) {
	term.Show(e.Drain()...)
	for !e.Outcome.Terminal() {
		line, err := term.Prompt(ctx, DecisionPrompt)
		if err != nil {
			return e, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		e.Turn(ParseDecision(line))
		term.Show(e.Drain()...)
	}
	return e, nil
}
