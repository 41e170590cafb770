package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"monsters-fight/internal/dice"
)

// ErrInputClosed is returned when input ends before the game is over.
var ErrInputClosed = errors.New("input closed")

// Config wires a session to its random source and terminal.
type Config struct {
	Source   dice.Source
	Terminal Terminal
}

// Result summarizes a finished (or abandoned) game.
type Result struct {
	Name       string
	Level      int
	Gold       int
	Health     int
	Won        bool
	Encounters int // finished encounters; one abandoned mid-fight is not counted
	Kills      int
	Flees      int
}

// Session plays one game from the name prompt until the player wins or dies.
type Session struct {
	src    dice.Source
	term   Terminal
	player *Player
	result Result
}

// NewSession creates a session. Both Source and Terminal are required.
func NewSession(cfg Config) *Session {
	if cfg.Source == nil || cfg.Terminal == nil {
		panic("game: NewSession needs a Source and a Terminal")
	}
	return &Session{src: cfg.Source, term: cfg.Terminal}
}

// Player returns the session's player, or nil before the name is read.
func (s *Session) Player() *Player {
	return s.player
}

// Run plays the game. The returned Result is valid even on error and
// reflects the game so far.
func (s *Session) Run(ctx context.Context) (Result, error) {
	name, err := s.readName(ctx)
	if err != nil {
		return s.result, err
	}
	s.player = NewPlayer(name)
	s.result.Name = name
	s.term.Show(Message{Kind: MsgInfo, Text: "Welcome, " + name})

	for {
		e, err := Fight(ctx, s.term, s.player, s.src)
		s.record(e)
		if err != nil {
			return s.result, s.wrap("fight", err)
		}

		if s.player.HasWon() {
			s.result.Won = true
			s.term.Show(
				Message{Kind: MsgVictory, Text: "CONGRATULATIONS! you won the game"},
				Message{Kind: MsgVictory, Text: fmt.Sprintf("you have %d gold! Enjoy", s.player.Gold())},
			)
			return s.result, nil
		}
		if s.player.IsDead() {
			s.term.Show(
				Message{Kind: MsgDefeat, Text: fmt.Sprintf("you died at level %d with %d gold.", s.player.Level(), s.player.Gold())},
				Message{Kind: MsgDefeat, Text: "too bad you can't take it with you!"},
			)
			return s.result, nil
		}
	}
}

func (s *Session) readName(ctx context.Context) (string, error) {
	for {
		line, err := s.term.Prompt(ctx, NamePrompt)
		if name := strings.TrimSpace(line); name != "" {
			return name, nil
		}
		if err != nil {
			return "", s.wrap("read name", err)
		}
	}
}

func (s *Session) record(e *Encounter) {
	if e == nil {
		return
	}
	if e.Outcome.Terminal() {
		s.result.Encounters++
	}
	switch e.Outcome {
	case MonsterDied:
		s.result.Kills++
	case PlayerFled:
		s.result.Flees++
	}
	s.result.Level = s.player.Level()
	s.result.Gold = s.player.Gold()
	s.result.Health = s.player.Health()
}

func (s *Session) wrap(op string, err error) error {
	if errors.Is(err, io.EOF) {
		err = ErrInputClosed
	}
	return fmt.Errorf("%s: %w", op, err)
}
