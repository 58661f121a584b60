package diag

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Context is a range of text in a source code. It is typically used for
// errors that can be associated with a part of the source code, like parse
// errors and frames of a runtime trace.
type Context struct {
	Name   string
	Source string
	Ranging
}

// NewContext creates a new Context.
func NewContext(name, source string, r Ranger) *Context {
	return &Context{name, source, r.Range()}
}

// Variables controlling the style of the culprit.
var (
	culpritStart       = "\033[1;4m"
	culpritEnd         = "\033[m"
	culpritPlaceHolder = "^"
)

// Describes the part of the source that a Context points at.
type excerpt struct {
	// Text before the culprit on the same line.
	head string
	// The culprit itself with a single trailing newline stripped.
	culprit string
	// Text after the culprit on the same line.
	tail string
	// Position of the first byte of the culprit.
	begin Position
	// Line of the last byte of the culprit.
	endLine int
}

func (c *Context) excerpt() excerpt {
	before, culprit, after := c.Source[:c.From], c.Source[c.From:c.To], c.Source[c.To:]

	var e excerpt
	e.head = before[strings.LastIndexByte(before, '\n')+1:]
	e.begin = PositionOf(c.Source, c.From)
	if strings.HasSuffix(culprit, "\n") {
		e.culprit = culprit[:len(culprit)-1]
	} else {
		e.culprit = culprit
		if i := strings.IndexByte(after, '\n'); i >= 0 {
			e.tail = after[:i]
		} else {
			e.tail = after
		}
	}
	e.endLine = e.begin.Line + strings.Count(e.culprit, "\n")
	return e
}

// Position returns the position where the context starts.
func (c *Context) Position() Position {
	return PositionOf(c.Source, c.From)
}

// Describe returns a short description of the location in the form of
// "name:line:col".
func (c *Context) Describe() string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	pos := c.Position()
	return fmt.Sprintf("%s:%d:%d", c.Name, pos.Line, pos.Col)
}

// Show shows the context with the position on its own line, followed by the
// relevant source indented by sourceIndent.
func (c *Context) Show(sourceIndent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	return c.Name + ", " + c.lineRange() + "\n" +
		sourceIndent + c.relevantSource(sourceIndent)
}

// ShowCompact is like Show, but puts the position and the relevant source on
// the same line.
func (c *Context) ShowCompact(sourceIndent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	desc := c.Name + ", " + c.lineRange() + " "
	descIndent := strings.Repeat(" ", runewidth.StringWidth(desc))
	return desc + c.relevantSource(sourceIndent+descIndent)
}

func (c *Context) checkPosition() error {
	switch {
	case c.From == -1:
		return fmt.Errorf("%s, unknown position", c.Name)
	case c.From < 0 || c.To > len(c.Source) || c.From > c.To:
		return fmt.Errorf("%s, invalid position %d-%d", c.Name, c.From, c.To)
	}
	return nil
}

func (c *Context) lineRange() string {
	e := c.excerpt()
	if e.begin.Line == e.endLine {
		return fmt.Sprintf("line %d:", e.begin.Line)
	}
	return fmt.Sprintf("line %d-%d:", e.begin.Line, e.endLine)
}

func (c *Context) relevantSource(sourceIndent string) string {
	e := c.excerpt()
	culprit := e.culprit
	if culprit == "" {
		culprit = culpritPlaceHolder
	}

	var sb strings.Builder
	sb.WriteString(e.head)
	for i, line := range strings.Split(culprit, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
			sb.WriteString(sourceIndent)
		}
		sb.WriteString(culpritStart + line + culpritEnd)
	}
	sb.WriteString(e.tail)
	return sb.String()
}
