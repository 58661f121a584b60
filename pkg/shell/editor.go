package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/keyplexex/itmoscript/pkg/eval"
	"github.com/peterh/liner"
)

// The interface the line editor has to satisfy. It is satisfied by
// *liner.State.
type editor interface {
	// Prompt shows the prompt and reads one line, without the line ending.
	Prompt(prompt string) (string, error)
	AppendHistory(line string)
}

// A line editor for terminals.
type lineEditor struct {
	*liner.State
}

// Creates a line editor that completes names visible from scope, with the
// given history loaded. It puts the terminal into raw mode until Close is
// called.
func newLineEditor(scope *eval.Scope, history []string) *lineEditor {
	st := liner.NewLiner()
	st.SetCtrlCAborts(true)
	st.SetMultiLineMode(true)
	st.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return completeName(line, pos, scope.Names())
	})
	for _, h := range history {
		st.AppendHistory(h)
	}
	return &lineEditor{st}
}

// Completes the identifier ending at byte offset pos of line with the given
// names.
func completeName(line string, pos int, names []string) (head string, completions []string, tail string) {
	start := pos
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(line[:start])
		if !isIdentRune(r) {
			break
		}
		start -= size
	}
	prefix := line[start:pos]
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			completions = append(completions, name)
		}
	}
	return line[:start], completions, line[pos:]
}

func isIdentRune(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

// A line editor for input that is not a terminal. It has no history.
type minEditor struct {
	in  *bufio.Reader
	out io.Writer
}

func newMinEditor(in io.Reader, out io.Writer) *minEditor {
	return &minEditor{bufio.NewReader(in), out}
}

func (ed *minEditor) Prompt(prompt string) (string, error) {
	fmt.Fprint(ed.out, prompt)
	line, err := ed.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), err
}

func (ed *minEditor) AppendHistory(string) {}
