package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"monsters-fight/internal/config"
	"monsters-fight/internal/dice"
	"monsters-fight/internal/game"
	"monsters-fight/internal/render"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	cfg, err := config.LoadGame()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	src := dice.New(cfg.Seed)
	console := render.NewConsole(os.Stdin, os.Stdout)
	session := game.NewSession(game.Config{Source: src, Terminal: console})

	if _, err := session.Run(ctx); err != nil {
		if errors.Is(err, game.ErrInputClosed) || errors.Is(err, context.Canceled) {
			log.Printf("Game abandoned (seed %d): %v", src.Seed(), err)
		} else {
			log.Printf("Game error (seed %d): %v", src.Seed(), err)
		}
		stop()
		os.Exit(1)
	}
}
