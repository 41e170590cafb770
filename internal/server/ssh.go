package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"

	"github.com/gliderlabs/ssh"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"monsters-fight/internal/dice"
	"monsters-fight/internal/game"
	"monsters-fight/internal/render"
)

const banner = "monsters fight! reach level 20 to win.\n\n"

// SourceFunc creates the random source for a new session.
type SourceFunc func() dice.Source

// SSHServer serves one independent game per SSH session.
type SSHServer struct {
	addr      string
	hostKey   string
	newSource SourceFunc
	srv       *ssh.Server
}

// NewSSHServer creates a new SSH server bound to the given address. An
// empty hostKey makes the server generate an ephemeral key.
func NewSSHServer(addr, hostKey string, newSource SourceFunc) *SSHServer {
	s := &SSHServer{
		addr:      addr,
		hostKey:   hostKey,
		newSource: newSource,
	}
	s.srv = &ssh.Server{
		Addr: addr,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}
	return s
}

// SeededSources returns a SourceFunc creating a dice.Rand per session. A
// zero seed seeds every session from the clock.
func SeededSources(seed int64) SourceFunc {
	return func() dice.Source {
		r := dice.New(seed)
		log.Printf("New game seeded with %d", r.Seed())
		return r
	}
}

// Start begins listening for SSH connections. It blocks until the server
// is closed.
func (s *SSHServer) Start() error {
	if err := s.setHostKey(); err != nil {
		return err
	}
	log.Printf("SSH server listening on %s", s.addr)
	return s.filterClosed(s.srv.ListenAndServe())
}

// Serve accepts connections on l. It blocks until the server is closed.
func (s *SSHServer) Serve(l net.Listener) error {
	if err := s.setHostKey(); err != nil {
		return err
	}
	log.Printf("SSH server listening on %s", l.Addr())
	return s.filterClosed(s.srv.Serve(l))
}

// Shutdown stops accepting connections and waits for sessions to end. If
// ctx expires first, the remaining sessions are closed and ctx's error is
// returned.
func (s *SSHServer) Shutdown(ctx context.Context) error {
	err := s.srv.Shutdown(ctx)
	if err == nil || ctx.Err() == nil {
		return err
	}
	log.Printf("Shutdown deadline reached, closing live sessions")
	if cerr := s.srv.Close(); cerr != nil {
		log.Printf("Close error: %v", cerr)
	}
	return err
}

func (s *SSHServer) setHostKey() error {
	if s.hostKey == "" {
		return nil
	}
	if err := s.srv.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}
	return nil
}

func (s *SSHServer) filterClosed(err error) error {
	if errors.Is(err, ssh.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	username := sess.User()
	if username == "" {
		username = "Anonymous"
	}
	log.Printf("Player connected: %s (%s)", username, sess.RemoteAddr())

	var (
		out     io.Writer = sess
		console *render.Console
	)
	if ptyReq, winCh, ok := sess.Pty(); ok {
		// The client is in raw mode, so we echo and edit lines ourselves.
		t := term.NewTerminal(sess, "")
		t.SetSize(ptyReq.Window.Width, ptyReq.Window.Height)
		go func() {
			for win := range winCh {
				t.SetSize(win.Width, win.Height)
			}
		}()
		out = t
		io.WriteString(out, render.Home())
		console = render.NewLineConsole(t, t, render.WithColorProfile(termenv.ANSI256))
	} else {
		console = render.NewConsole(sess, sess)
	}
	io.WriteString(out, banner)

	res, err := play(sess.Context(), console, s.newSource())
	switch {
	case err != nil:
		log.Printf("Player disconnected: %s: %v (level %d, gold %d)", username, err, res.Level, res.Gold)
		sess.Exit(1)
	case res.Won:
		log.Printf("Player won: %s as %q with %d gold after %d encounters", username, res.Name, res.Gold, res.Encounters)
		sess.Exit(0)
	default:
		log.Printf("Player died: %s as %q at level %d with %d gold", username, res.Name, res.Level, res.Gold)
		sess.Exit(0)
	}
}

// play runs one game on the given terminal.
func play(ctx context.Context, t game.Terminal, src dice.Source) (game.Result, error) {
	return game.NewSession(game.Config{Source: src, Terminal: t}).Run(ctx)
}
