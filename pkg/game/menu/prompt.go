package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/leonelquinteros/gotext"

	"mazeescape/pkg/game/tier"
)

// ParseYesNo reads a continue answer. An empty answer means yes.
func ParseYesNo(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "y", "yes":
		return true
	default:
		return false
	}
}

// LinePrompter asks questions on a line-buffered console
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter reading answers from in
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// SelectDifficulty shows the difficulty menu. Unrecognised answers,
// including end of input or cancellation, select Medium.
func (p *LinePrompter) SelectDifficulty(ctx context.Context) tier.Tier {
	writeMenu(p.out, gotext.Get("MENU_DIFFICULTY_TITLE"), DifficultyItems(), "\n")
	fmt.Fprint(p.out, gotext.Get("MENU_PROMPT"))

	line, _ := p.readLine(ctx)
	return tier.Get(tier.Parse(line))
}

// Continue asks whether to play the next tier. End of input declines.
func (p *LinePrompter) Continue(ctx context.Context, next tier.Tier) bool {
	fmt.Fprintf(p.out, gotext.Get("MENU_CONTINUE"), next.DisplayName())

	line, err := p.readLine(ctx)
	if err != nil && line == "" {
		return false
	}
	return ParseYesNo(line)
}

// readLine reads one answer, giving up when ctx is done. A read abandoned
// that way completes in the background and its line is dropped.
func (p *LinePrompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type answer struct {
		line string
		err  error
	}
	done := make(chan answer, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		done <- answer{line: line, err: err}
	}()

	select {
	case a := <-done:
		return a.line, a.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// ShowControls prints the key bindings
func (p *LinePrompter) ShowControls() {
	WriteControls(p.out, "\n")
}

// KeyPrompter asks questions with single key presses on a raw-mode
// terminal, sharing the key stream with the level input.
type KeyPrompter struct {
	codes <-chan string
	out   io.Writer
}

// NewKeyPrompter creates a prompter reading key codes
func NewKeyPrompter(codes <-chan string, out io.Writer) *KeyPrompter {
	return &KeyPrompter{codes: codes, out: out}
}

// SelectDifficulty waits for a single key. Keys other than 1, 2 or 3
// select Medium, as do a closed key stream and cancellation.
func (p *KeyPrompter) SelectDifficulty(ctx context.Context) tier.Tier {
	p.drain()
	writeMenu(p.out, gotext.Get("MENU_DIFFICULTY_TITLE"), DifficultyItems(), "\r\n")
	fmt.Fprint(p.out, gotext.Get("MENU_PROMPT"))
	defer fmt.Fprint(p.out, "\r\n")

	select {
	case code, ok := <-p.codes:
		if ok {
			return tier.Get(tier.Parse(code))
		}
	case <-ctx.Done():
	}
	return tier.Get(tier.Medium)
}

// Continue waits for y/enter (continue) or n/q/escape (stop). Other keys
// are ignored. A closed key stream or a cancelled ctx declines.
func (p *KeyPrompter) Continue(ctx context.Context, next tier.Tier) bool {
	p.drain()
	fmt.Fprint(p.out, "\r\n")
	fmt.Fprintf(p.out, gotext.Get("MENU_CONTINUE"), next.DisplayName())
	defer fmt.Fprint(p.out, "\r\n")

	for {
		select {
		case <-ctx.Done():
			return false
		case code, ok := <-p.codes:
			if !ok {
				return false
			}
			switch code {
			case "y", "enter":
				return true
			case "n", "q", "escape", "ctrl_c":
				return false
			}
		}
	}
}

// ShowControls prints the key bindings
func (p *KeyPrompter) ShowControls() {
	WriteControls(p.out, "\r\n")
}

// drain discards keys pressed while the level was still running
func (p *KeyPrompter) drain() {
	for {
		select {
		case _, ok := <-p.codes:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
