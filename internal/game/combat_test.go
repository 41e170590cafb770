package game

import (
	"context"
	"io"
	"strings"
	"testing"

	"monsters-fight/internal/dice"
)

// scriptTerminal replays canned input lines and records everything shown.
type scriptTerminal struct {
	inputs  []string
	prompts []string
	shown   []Message
}

func (s *scriptTerminal) Show(msgs ...Message) {
	s.shown = append(s.shown, msgs...)
}

func (s *scriptTerminal) Prompt(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.prompts = append(s.prompts, prompt)
	if len(s.inputs) == 0 {
		return "", io.EOF
	}
	line := s.inputs[0]
	s.inputs = s.inputs[1:]
	return line, nil
}

func (s *scriptTerminal) text() string {
	var sb strings.Builder
	for _, m := range s.shown {
		sb.WriteString(m.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestParseDecision(t *testing.T) {
	tests := []struct {
		input string
		want  Decision
	}{
		{"r", DecisionRun},
		{"R", DecisionRun},
		{"f", DecisionFight},
		{"F", DecisionFight},
		{"  f  ", DecisionFight},
		{"fight", DecisionFight},
		{"run away", DecisionRun},
		{"x", DecisionInvalid},
		{"", DecisionInvalid},
		{"  ", DecisionInvalid},
		{"1", DecisionInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseDecision(tt.input); got != tt.want {
				t.Errorf("ParseDecision(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFightKillsSlime(t *testing.T) {
	p := NewPlayer("Ada")
	e := newEncounter(p, NewMonster(MonsterSlime), dice.NewSequence(0))

	if got := e.Turn(DecisionFight); got != MonsterDied {
		t.Fatalf("outcome = %v, want %v", got, MonsterDied)
	}
	if e.Monster.Health() != 0 || !e.Monster.IsDead() {
		t.Errorf("slime health = %d, dead = %v", e.Monster.Health(), e.Monster.IsDead())
	}
	if p.Level() != 2 || p.Damage() != 2 || p.Gold() != 10 {
		t.Errorf("player level=%d damage=%d gold=%d, want 2/2/10", p.Level(), p.Damage(), p.Gold())
	}
	if p.Health() != 10 {
		t.Errorf("player health = %d, want 10 (no retaliation)", p.Health())
	}
}

func TestFightNonLethalHitTriggersRetaliation(t *testing.T) {
	p := NewPlayer("Ada")
	e := newEncounter(p, NewMonster(MonsterOrc), dice.NewSequence(0))

	if got := e.Turn(DecisionFight); got != Ongoing {
		t.Fatalf("outcome = %v, want %v", got, Ongoing)
	}
	if e.Monster.Health() != 3 {
		t.Errorf("orc health = %d, want 3", e.Monster.Health())
	}
	if p.Health() != 8 {
		t.Errorf("player health = %d, want 8", p.Health())
	}
}

func TestFleeSucceeds(t *testing.T) {
	p := NewPlayer("Ada")
	e := newEncounter(p, NewMonster(MonsterDragon), dice.NewSequence(1))

	if got := e.Turn(DecisionRun); got != PlayerFled {
		t.Fatalf("outcome = %v, want %v", got, PlayerFled)
	}
	if p.Health() != 10 {
		t.Errorf("player health = %d, want 10", p.Health())
	}
}

func TestFleeFails(t *testing.T) {
	tests := []struct {
		name        string
		health      int
		wantHealth  int
		wantOutcome Outcome
	}{
		{"survives", 10, 6, Ongoing},
		{"dies", 4, 0, PlayerDied},
		{"overkill", 2, -2, PlayerDied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer("Ada")
			p.SetHealth(tt.health)
			e := newEncounter(p, NewMonster(MonsterDragon), dice.NewSequence(0))

			if got := e.Turn(DecisionRun); got != tt.wantOutcome {
				t.Errorf("outcome = %v, want %v", got, tt.wantOutcome)
			}
			if p.Health() != tt.wantHealth {
				t.Errorf("player health = %d, want %d", p.Health(), tt.wantHealth)
			}
		})
	}
}

func TestInvalidDecisionChangesNothing(t *testing.T) {
	p := NewPlayer("Ada")
	src := dice.NewSequence(0)
	e := newEncounter(p, NewMonster(MonsterOrc), src)
	e.Drain()

	if got := e.Turn(ParseDecision("x")); got != Ongoing {
		t.Fatalf("outcome = %v, want %v", got, Ongoing)
	}
	if p.Health() != 10 || e.Monster.Health() != 4 || e.Turns != 0 || src.Drawn() != 0 {
		t.Errorf("state changed: player=%d monster=%d turns=%d draws=%d",
			p.Health(), e.Monster.Health(), e.Turns, src.Drawn())
	}
	msgs := e.Drain()
	if len(msgs) != 1 || msgs[0].Kind != MsgHint {
		t.Errorf("got %v, want a single hint", msgs)
	}
}

func TestTurnAfterTerminalIsNoop(t *testing.T) {
	p := NewPlayer("Ada")
	e := newEncounter(p, NewMonster(MonsterSlime), dice.NewSequence(0))
	e.Turn(DecisionFight)
	e.Turn(DecisionFight)
	if p.Level() != 2 || e.Turns != 1 {
		t.Errorf("level=%d turns=%d, want 2/1", p.Level(), e.Turns)
	}
}

func TestFightLoopRepromptsOnInvalidInput(t *testing.T) {
	term := &scriptTerminal{inputs: []string{"x", "", "F"}}
	p := NewPlayer("Ada")

	// 2 selects the slime.
	e, err := Fight(context.Background(), term, p, dice.NewSequence(2))
	if err != nil {
		t.Fatalf("Fight: %v", err)
	}
	if e.Outcome != MonsterDied {
		t.Errorf("outcome = %v, want %v", e.Outcome, MonsterDied)
	}
	if len(term.prompts) != 3 {
		t.Errorf("got %d prompts, want 3", len(term.prompts))
	}

	out := term.text()
	for _, want := range []string{
		"you encountered a slime(s)",
		`press "r" to run  or "f" to fight`,
		"you hit the slime for 1 damage",
		"you killed the slime",
		"you are now level 2",
		"you found 10 gold",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFightLoopInputClosed(t *testing.T) {
	term := &scriptTerminal{inputs: []string{"f"}}
	e, err := Fight(context.Background(), term, NewPlayer("Ada"), dice.NewSequence(0))
	if err != io.EOF {
		t.Fatalf("err = %v, want io.EOF", err)
	}
	if e.Outcome != Ongoing {
		t.Errorf("outcome = %v, want %v", e.Outcome, Ongoing)
	}
}
