package input

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// keyBufferSize is how many decoded keys may wait before new ones are dropped
const keyBufferSize = 16

// KeyReader reads single key presses from a terminal in raw mode and
// publishes them as codes ("arrow_up", "q", "enter", ...).
type KeyReader struct {
	in       *os.File
	codes    chan string
	oldState *term.State
	stopOnce sync.Once
}

// NewKeyReader creates a reader for the given terminal (usually os.Stdin)
func NewKeyReader(in *os.File) *KeyReader {
	return &KeyReader{
		in:    in,
		codes: make(chan string, keyBufferSize),
	}
}

// Start puts the terminal into raw mode and begins reading keys in the
// background. A non-terminal input is read as-is.
func (k *KeyReader) Start() error {
	fd := int(k.in.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return err
		}
		k.oldState = oldState
	}

	go k.readLoop(bufio.NewReader(k.in))
	return nil
}

// Stop restores the terminal to its previous mode
func (k *KeyReader) Stop() {
	k.stopOnce.Do(func() {
		if k.oldState != nil {
			if err := term.Restore(int(k.in.Fd()), k.oldState); err != nil {
				log.Warnf("Cannot restore terminal mode: %v", err)
			}
		}
	})
}

// Codes returns the stream of decoded key codes. It is closed when input ends.
func (k *KeyReader) Codes() <-chan string {
	return k.codes
}

func (k *KeyReader) readLoop(r *bufio.Reader) {
	defer close(k.codes)

	for {
		code, err := decodeKey(r)
		if err != nil {
			if err != io.EOF {
				log.Warnf("Cannot read stdin: %v", err)
			}
			return
		}
		if code == "" {
			continue
		}

		// Non-blocking send, drop when nobody is keeping up
		select {
		case k.codes <- code:
		default:
		}
	}
}

// decodeKey reads one key press. Escape sequences arriving in the same read
// as the ESC byte are treated as arrow keys; a lone ESC is "escape".
func decodeKey(r *bufio.Reader) (string, error) {
	b1, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b1 == 0x1b:
		if r.Buffered() == 0 {
			return "escape", nil
		}
		return decodeEscape(r)
	case b1 == 3:
		return "ctrl_c", nil
	case b1 == '\r' || b1 == '\n':
		return "enter", nil
	case b1 == 127 || b1 == 8:
		return "backspace", nil
	case b1 >= 32 && b1 < 127:
		return strings.ToLower(string(b1)), nil
	default:
		// Other control characters are ignored
		return "", nil
	}
}

// decodeEscape handles the bytes after ESC
func decodeEscape(r *bufio.Reader) (string, error) {
	b2, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape", r.UnreadByte()
	}

	b3, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}

	// F8 is ESC [ 1 9 ~
	if b3 == '1' {
		rest, err := r.ReadString('~')
		if err != nil {
			return "", err
		}
		if rest == "9~" {
			return "f8", nil
		}
	}

	// Unknown escape sequence - discard it
	return "", nil
}
