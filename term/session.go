package term

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/docsearch"
	"golang.org/x/term"
)

// Session runs an interactive search loop on a terminal: every
// keystroke re-runs the search, arrow keys move the selection, Enter
// activates the selected result, and Escape ends the session.
type Session struct {
	controller *docsearch.Controller
	in         io.Reader
	out        io.Writer
}

// NewSession creates a Session reading keys from in and writing to
// out. The controller's Surface should write to the same out.
func NewSession(controller *docsearch.Controller, in io.Reader, out io.Writer) *Session {
	return &Session{controller: controller, in: in, out: out}
}

// Run opens the controller and processes keys until the session ends
// via Enter, Escape, Ctrl-C, or end of input. When in is a terminal it
// is switched to raw mode for the duration of the session.
func (s *Session) Run() error {
	if f, ok := s.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		oldState, err := term.MakeRaw(int(f.Fd()))
		if err != nil {
			return err
		}
		defer term.Restore(int(f.Fd()), oldState)
	}

	s.controller.Open()
	var query []rune
	s.drawPrompt(query)

	buf := make([]byte, 64)
	for {
		n, err := s.in.Read(buf)
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.finish()
				return nil
			}
			return err
		}

		data := buf[:n]
		for len(data) > 0 {
			key, size := DecodeKey(data)
			data = data[size:]

			switch key.Name {
			case KeyInterrupt, KeyEscape:
				s.controller.HandleKey("Escape")
				s.finish()
				return nil
			case KeyEnter:
				s.controller.HandleKey("Enter")
				if s.controller.State() == docsearch.StateClosed {
					s.finish()
					return nil
				}
			case KeyArrowUp, KeyArrowDown:
				s.controller.HandleKey(key.Name)
			case KeyBackspace:
				if len(query) > 0 {
					query = query[:len(query)-1]
					s.drawPrompt(query)
					s.controller.SetQuery(string(query))
				}
			case KeyRune:
				query = append(query, key.Rune)
				s.drawPrompt(query)
				s.controller.SetQuery(string(query))
			}
		}
	}
}

// drawPrompt redraws the prompt line in place, leaving the cursor at
// the end of the query so the surface can render below it.
func (s *Session) drawPrompt(query []rune) {
	fmt.Fprintf(s.out, "\r\x1b[2Ksearch> %s", string(query))
}

func (s *Session) finish() {
	s.controller.Close()
	fmt.Fprint(s.out, "\r\n")
}
