package render

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"monsters-fight/internal/game"
)

// LineReader reads one line of input at a time, without the trailing newline.
type LineReader interface {
	ReadLine() (string, error)
}

// promptSetter is implemented by line editors that draw their own prompt,
// such as x/term's Terminal.
type promptSetter interface {
	SetPrompt(prompt string)
}

// Console is a game.Terminal over a line reader and a writer. Messages are
// styled per kind; colour is only emitted when the writer supports it.
type Console struct {
	in     LineReader
	out    io.Writer
	mu     sync.Mutex
	styles map[game.MessageKind]lipgloss.Style

	pending chan lineResult // in-flight read, owned by Prompt
}

// Option configures a Console.
type Option func(*consoleOptions)

type consoleOptions struct {
	profile *termenv.Profile
}

// WithColorProfile forces a colour profile instead of detecting it from the
// writer. SSH sessions use this since they are not an *os.File.
func WithColorProfile(p termenv.Profile) Option {
	return func(o *consoleOptions) {
		o.profile = &p
	}
}

// NewConsole creates a console reading lines from in.
func NewConsole(in io.Reader, out io.Writer, opts ...Option) *Console {
	return NewLineConsole(&bufferedLines{r: bufio.NewReader(in)}, out, opts...)
}

// NewLineConsole creates a console over an existing line reader.
func NewLineConsole(in LineReader, out io.Writer, opts ...Option) *Console {
	var o consoleOptions
	for _, opt := range opts {
		opt(&o)
	}
	r := lipgloss.NewRenderer(out)
	if o.profile != nil {
		r.SetColorProfile(*o.profile)
	}
	return &Console{
		in:     in,
		out:    out,
		styles: newStyles(r),
	}
}

func newStyles(r *lipgloss.Renderer) map[game.MessageKind]lipgloss.Style {
	return map[game.MessageKind]lipgloss.Style{
		game.MsgInfo:          r.NewStyle(),
		game.MsgEncounter:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF3C3C")),
		game.MsgFlee:          r.NewStyle().Foreground(lipgloss.Color("#BEA028")),
		game.MsgPlayerAttack:  r.NewStyle().Foreground(lipgloss.Color("#55FFFF")),
		game.MsgMonsterAttack: r.NewStyle().Foreground(lipgloss.Color("#FF5555")),
		game.MsgReward:        r.NewStyle().Foreground(lipgloss.Color("#55FF55")),
		game.MsgHint:          r.NewStyle().Faint(true),
		game.MsgVictory:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFF55")),
		game.MsgDefeat:        r.NewStyle().Bold(true).Foreground(lipgloss.Color("#AA0000")),
	}
}

// Show writes each message on its own line.
func (c *Console) Show(msgs ...game.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var sb strings.Builder
	for _, m := range msgs {
		style, ok := c.styles[m.Kind]
		if !ok {
			style = c.styles[game.MsgInfo]
		}
		sb.WriteString(style.Render(m.Text))
		sb.WriteByte('\n')
	}
	io.WriteString(c.out, sb.String())
}

// Prompt shows prompt and reads the next line. A prompt ending in a newline
// is printed as its own line; otherwise the input follows it. Returns
// io.EOF once input is exhausted, or ctx's error as soon as ctx is done.
// Prompt must not be called concurrently.
func (c *Console) Prompt(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.mu.Lock()
	if ps, ok := c.in.(promptSetter); ok {
		if strings.HasSuffix(prompt, "\n") {
			io.WriteString(c.out, prompt)
			ps.SetPrompt("")
		} else {
			ps.SetPrompt(prompt)
		}
	} else {
		io.WriteString(c.out, prompt)
	}
	c.mu.Unlock()

	return c.readLine(ctx)
}

type lineResult struct {
	line string
	err  error
}

// readLine waits for the next line or for ctx to be done. A read abandoned
// by cancellation stays pending and feeds the next call.
func (c *Console) readLine(ctx context.Context) (string, error) {
	if c.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := c.in.ReadLine()
			ch <- lineResult{line: line, err: err}
		}()
		c.pending = ch
	}

	select {
	case r := <-c.pending:
		c.pending = nil
		return r.line, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// bufferedLines adapts a bufio.Reader to LineReader. A final line without
// a newline is returned before io.EOF.
type bufferedLines struct {
	r *bufio.Reader
}

func (b *bufferedLines) ReadLine() (string, error) {
	line, err := b.r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimRight(line, "\r\n"), err
}
