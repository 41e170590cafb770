// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Game holds the settings shared by every binary.
type Game struct {
	// Seed fixes the random source. 0 seeds from the clock.
	Seed int64 `env:"MONSTERS_SEED" envDefault:"0"`
}

// Server holds the SSH server settings.
type Server struct {
	Game

	Addr        string `env:"MONSTERS_ADDR" envDefault:":2222"`
	HostKeyPath string `env:"MONSTERS_HOST_KEY" envDefault:"host_key"`
	// Port overrides the port in Addr, as set by hosting platforms.
	Port string `env:"PORT"`
}

// ListenAddr returns Addr with Port applied when set.
func (s Server) ListenAddr() string {
	if s.Port == "" {
		return s.Addr
	}
	host := s.Addr
	if i := strings.LastIndex(host, ":"); i >= 0 {
		host = host[:i]
	}
	return host + ":" + s.Port
}

// LoadDotEnv loads a .env file from the working directory if present.
// Variables already set in the environment win.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadGame reads the game settings.
func LoadGame() (Game, error) {
	var cfg Game
	if err := ParseEnv(&cfg); err != nil {
		return Game{}, err
	}
	return cfg, nil
}

// LoadServer reads the SSH server settings.
func LoadServer() (Server, error) {
	var cfg Server
	if err := ParseEnv(&cfg); err != nil {
		return Server{}, err
	}
	return cfg, nil
}
