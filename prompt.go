//-----------------------------------------------------------------------------
/*

Prompt

Read a line of input from the user with line editing, history, completion,
hints and highlighting.

	p := prompt.New("> ")
	for line, err := range p.Lines() {
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(line)
	}

The terminal is in raw mode only while Read is running. If the input is not
a terminal, or the terminal is known not to handle escape sequences, Read
falls back to reading a plain line.

*/
//-----------------------------------------------------------------------------

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"strings"
)

//-----------------------------------------------------------------------------

var (
	// ErrEOF is returned when the input ends, or on ^D with an empty buffer.
	ErrEOF = errors.New("eof")
	// ErrInterrupt is returned on ^C with an empty buffer.
	ErrInterrupt = errors.New("interrupt")
	// ErrBadResponse is returned when the terminal answers a query with
	// something that can't be parsed.
	ErrBadResponse = errors.New("malformed terminal response")
)

//-----------------------------------------------------------------------------

// Prompt reads lines from a terminal.
type Prompt struct {
	prompt    string   // primary prompt
	multiline string   // continuation prompt
	editor    Editor   // customization
	history   *History // line history
	term      Terminal // terminal mode control
	in        *bufio.Reader
	dec       *Decoder
	out       io.Writer
	log       *slog.Logger
	probe     bool // query the cursor position before the first render
}

// New returns a prompt on the standard input and output.
// Continuation lines use the primary prompt.
func New(prompt string) *Prompt {
	return NewMultiline(prompt, prompt)
}

// NewMultiline returns a prompt with a separate continuation prompt.
func NewMultiline(prompt, multiline string) *Prompt {
	p := &Prompt{
		prompt:    prompt,
		multiline: multiline,
		editor:    BaseEditor{},
		history:   NewHistory(),
		log:       slog.Default(),
	}
	p.SetIO(Stdio(), os.Stdin, os.Stdout)
	return p
}

// SetIO sets the terminal control and the input and output streams.
func (p *Prompt) SetIO(t Terminal, in io.Reader, out io.Writer) {
	p.term = t
	p.in = bufio.NewReader(in)
	p.dec = NewDecoder(p.in)
	p.out = out
}

// SetEditor sets the editor customization.
func (p *Prompt) SetEditor(e Editor) {
	p.editor = e
}

// SetPrompt sets the primary prompt.
func (p *Prompt) SetPrompt(prompt string) {
	p.prompt = prompt
}

// SetMultilinePrompt sets the continuation prompt.
func (p *Prompt) SetMultilinePrompt(prompt string) {
	p.multiline = prompt
}

// SetLogger sets the logger, slog.Default() is used otherwise.
func (p *Prompt) SetLogger(log *slog.Logger) {
	p.log = log
}

// SetCursorProbe enables querying the cursor position before a line is
// edited. If the cursor is not in the first column the prompt starts on a
// new row.
func (p *Prompt) SetCursorProbe(on bool) {
	p.probe = on
}

// History returns the line history.
func (p *Prompt) History() *History {
	return p.history
}

//-----------------------------------------------------------------------------

// Read reads a line. It returns ErrEOF or ErrInterrupt when the user asks to
// stop.
func (p *Prompt) Read() (string, error) {
	mode, ok := p.term.GetMode()
	if !ok {
		// not a tty: read from file / pipe
		return p.readBasic(false)
	}
	if unsupportedTerm() {
		return p.readBasic(true)
	}
	if err := p.term.SetMode(p.term.MakeRaw(mode)); err != nil {
		p.log.Debug("no raw mode, reading a plain line", "err", err)
		return p.readBasic(true)
	}
	stop := restoreOnSignal(p.term, mode)
	defer func() {
		stop()
		if err := p.term.SetMode(mode); err != nil {
			p.log.Error("restore terminal mode", "err", err)
		}
	}()
	return p.edit(mode)
}

// Lines iterates over the lines read. It stops at ErrEOF or ErrInterrupt.
// Any other error is yielded and ends the iteration.
func (p *Prompt) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for {
			line, err := p.Read()
			if errors.Is(err, ErrEOF) || errors.Is(err, ErrInterrupt) {
				return
			}
			if !yield(line, err) || err != nil {
				return
			}
		}
	}
}

// readBasic reads a line without any editing.
func (p *Prompt) readBasic(showPrompt bool) (string, error) {
	if showPrompt {
		if _, err := io.WriteString(p.out, p.prompt); err != nil {
			return "", fmt.Errorf("write: %w", err)
		}
	}
	line, err := p.in.ReadString('\n')
	if err == io.EOF {
		if len(line) == 0 {
			return "", ErrEOF
		}
	} else if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// map input errors to the package errors
func inputError(err error) error {
	if err == io.EOF {
		return ErrEOF
	}
	if errors.Is(err, ErrInvalidUTF8) {
		return err
	}
	return fmt.Errorf("read: %w", err)
}

//-----------------------------------------------------------------------------

// session is the state of one line edit.
type session struct {
	p    *Prompt
	mode Mode // cooked terminal mode
	buf  Buffer
	comp completer
	r    *renderer
}

func (s *session) frame() *frame {
	f := &frame{
		prompt:    s.p.prompt,
		multiline: s.p.multiline,
		text:      s.buf.String(),
		cursor:    s.buf.Cursor(),
	}
	if hint, ok := s.p.editor.Hint(f.text); ok {
		f.hint = hint
	}
	return f
}

func (s *session) width() int {
	if w, ok := s.p.term.Width(); ok && w > 0 {
		return w
	}
	return DefaultCols
}

func (s *session) redraw() {
	s.r.redraw(s.p.editor, s.frame())
}

func (s *session) move() {
	s.r.move(s.p.editor, s.frame())
}

func (s *session) finish() {
	s.r.finish(s.p.editor, s.frame())
}

// freshLine asks the terminal where the cursor is and starts a new row if it
// isn't in the first column.
func (s *session) freshLine() error {
	if _, err := io.WriteString(s.p.out, "\x1b[6n"); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	seq, err := s.p.dec.Decode()
	if err != nil {
		return inputError(err)
	}
	if seq.Kind != KindCSI || seq.Final != 'R' {
		return fmt.Errorf("%w: %s", ErrBadResponse, seq)
	}
	_, col, err := parseCursorPosition(seq.Params)
	if err != nil {
		return err
	}
	if col != 1 {
		s.r.buf.WriteString("\r\n")
	}
	return nil
}

// stops the process for ^Z
var suspendProcess = suspend

// suspend restores the terminal mode, stops the process and redraws once it
// is continued.
func (s *session) suspend() error {
	s.finish()
	if err := s.r.flush(); err != nil {
		return err
	}
	t := s.p.term
	if err := t.SetMode(s.mode); err != nil {
		return err
	}
	if err := suspendProcess(); err != nil {
		s.p.log.Warn("suspend", "err", err)
	}
	if err := t.SetMode(t.MakeRaw(s.mode)); err != nil {
		return err
	}
	s.r.width = s.width()
	s.redraw()
	return nil
}

// apply an action to the session. done is set when the line is complete.
func (s *session) apply(a Action) (line string, done bool, err error) {
	e := s.p.editor
	h := s.p.history
	b := &s.buf

	if a.Op != OpTab {
		s.comp.reset()
	}

	switch a.Op {
	case OpInsert:
		e.Insert(b, a.Rune)
		s.redraw()
	case OpEnter:
		if e.IsMultiline(b.String(), b.Cursor()) {
			b.Insert('\n')
			s.redraw()
			break
		}
		s.finish()
		line = b.String()
		h.Push(line)
		return line, true, nil
	case OpBackspace:
		if b.Backspace() {
			s.redraw()
		}
	case OpDelete:
		if b.Delete() {
			s.redraw()
		}
	case OpTab:
		s.comp.tab(e, b)
		s.redraw()
	case OpLeft:
		if b.Left() {
			s.move()
		}
	case OpRight:
		if b.Right() {
			s.move()
		}
	case OpHome:
		if b.Home() {
			s.move()
		}
	case OpEnd:
		if b.End() {
			s.move()
		}
	case OpLeftWord:
		if b.WordLeft(e.IsKeyword) {
			s.move()
		}
	case OpRightWord:
		if b.WordRight(e.IsKeyword) {
			s.move()
		}
	case OpInterrupt:
		s.finish()
		if b.Len() == 0 {
			return "", true, ErrInterrupt
		}
		// abandon the line, start again on a fresh prompt
		b.Reset()
		h.Reset()
		s.redraw()
	case OpEOF:
		if b.Len() == 0 {
			s.finish()
			return "", true, ErrEOF
		}
	case OpSuspend:
		if err := s.suspend(); err != nil {
			return "", true, err
		}
	case OpUp:
		if text, ok := h.Up(b.String()); ok {
			b.Set(text)
			s.redraw()
		}
	case OpDown:
		if text, ok := h.Down(); ok {
			b.Set(text)
			s.redraw()
		}
	case OpClear:
		s.r.width = s.width()
		s.r.clear(e, s.frame())
	case OpKillToStart:
		if b.KillToStart() {
			s.redraw()
		}
	case OpKillToEnd:
		if b.KillToEnd() {
			s.redraw()
		}
	case OpDeleteWord:
		if b.DeleteWord(e.IsKeyword) {
			s.redraw()
		}
	case OpTranspose:
		if b.Transpose() {
			s.redraw()
		}
	default:
		s.p.log.Debug("unhandled action", "action", a)
	}
	return "", false, nil
}

// edit a line with the terminal in raw mode
func (p *Prompt) edit(mode Mode) (string, error) {
	s := &session{p: p, mode: mode, r: newRenderer(p.out)}
	defer p.history.Reset()
	// the width is measured once per line, and again on ^L
	s.r.width = s.width()

	if p.probe {
		if err := s.freshLine(); err != nil {
			return "", err
		}
	}
	s.redraw()
	if err := s.r.flush(); err != nil {
		return "", err
	}

	for {
		a, err := p.editor.ReadAction(p.dec)
		if err != nil {
			err = inputError(err)
			if !errors.Is(err, ErrEOF) {
				p.log.Debug("input", "err", err)
			}
			// leave the terminal on a new row
			s.finish()
			s.r.flush()
			return "", err
		}
		line, done, err := s.apply(a)
		if ferr := s.r.flush(); ferr != nil && err == nil {
			err = ferr
		}
		if err != nil {
			if !errors.Is(err, ErrEOF) && !errors.Is(err, ErrInterrupt) {
				p.log.Debug("edit", "err", err)
			}
			return "", err
		}
		if done {
			return line, nil
		}
	}
}

//-----------------------------------------------------------------------------
