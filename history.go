//-----------------------------------------------------------------------------
/*

Command History

An ordered log of submitted lines and the browse state used while
navigating it with up/down.

*/
//-----------------------------------------------------------------------------

package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

//-----------------------------------------------------------------------------

// DefaultHistoryMaxlen is the default maximum number of history entries.
const DefaultHistoryMaxlen = 500

// History is the list of submitted lines, oldest first.
type History struct {
	entries []string
	maxlen  int    // maximum number of entries, 0 disables history
	index   int    // browse position, len(entries) when not browsing
	draft   string // buffer content saved when browsing started
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{maxlen: DefaultHistoryMaxlen}
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// List returns a copy of the entries, oldest first.
func (h *History) List() []string {
	return append([]string(nil), h.entries...)
}

// Push adds a line to the history.
// A line equal to the most recent entry is not added again.
func (h *History) Push(line string) {
	defer h.Reset()
	if h.maxlen == 0 {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	if len(h.entries) >= h.maxlen {
		// remove the oldest entry
		h.entries = h.entries[len(h.entries)-h.maxlen+1:]
	}
	h.entries = append(h.entries, line)
}

// SetMaxlen sets the maximum length of the history.
// The oldest entries are dropped if needed.
func (h *History) SetMaxlen(n int) {
	if n < 0 {
		return
	}
	h.maxlen = n
	if len(h.entries) > n {
		// truncate and retain the latest history
		h.entries = h.entries[len(h.entries)-n:]
	}
	h.Reset()
}

// Reset ends browsing and discards the draft.
func (h *History) Reset() {
	h.index = len(h.entries)
	h.draft = ""
}

func (h *History) browsing() bool {
	return h.index < len(h.entries)
}

// the entry at the browse position, or the draft past the newest entry
func (h *History) current() string {
	if h.browsing() {
		return h.entries[h.index]
	}
	return h.draft
}

// Up returns the previous entry.
// current is saved as the draft when browsing starts. Browsing stops at the
// oldest entry. It returns false if there is no history.
func (h *History) Up(current string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if !h.browsing() {
		h.index = len(h.entries)
		h.draft = current
	}
	if h.index > 0 {
		h.index--
	}
	return h.current(), true
}

// Down returns the next entry, or the draft once past the newest entry.
// It returns false if not browsing.
func (h *History) Down() (string, bool) {
	if !h.browsing() {
		return "", false
	}
	h.index++
	return h.current(), true
}

//-----------------------------------------------------------------------------
// persistence

var historyEscaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`)

// undo the history escapes
func historyUnescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			if s[i] == 'n' {
				sb.WriteByte('\n')
				continue
			}
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// Save writes the history to a file, one entry per line.
func (h *History) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("history save: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, s := range h.entries {
		w.WriteString(historyEscaper.Replace(s))
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("history save: %w", err)
	}
	return f.Close()
}

// Load appends the entries of a history file.
// A missing file is not an error.
func (h *History) Load(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("history load: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("history load: %s is not a regular file", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("history load: %w", err)
	}
	defer f.Close()
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimRight(s.Text(), "\r")
		if len(line) != 0 {
			h.Push(historyUnescape(line))
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("history load: %w", err)
	}
	return nil
}

//-----------------------------------------------------------------------------
