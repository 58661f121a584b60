package eval

import (
	"strings"

	"github.com/keyplexex/itmoscript/pkg/buildinfo"
)

// BuiltinDoc documents a builtin function.
type BuiltinDoc struct {
	Name string
	// Usage, like "split(s, delim)".
	Usage string
	// One-line description.
	Help string
}

type helpSection struct {
	title string
	docs  []BuiltinDoc
}

// Sections of the output of help(). A name may be documented in more than one
// section.
var helpSections = []helpSection{
	{"Number functions", []BuiltinDoc{
		{"abs", "abs(x)", "Returns the absolute value of number x"},
		{"ceil", "ceil(x)", "Rounds number x up to the nearest integer"},
		{"floor", "floor(x)", "Rounds number x down to the nearest integer"},
		{"round", "round(x)", "Rounds number x to the nearest integer"},
		{"sqrt", "sqrt(x)", "Returns the square root of number x (error for negative x)"},
		{"rnd", "rnd(n)", "Returns a random integer from 0 to n-1"},
		{"parse_num", "parse_num(s)", "Converts string s to a number, returns nil if invalid"},
		{"to_string", "to_string(x)", "Converts any value x to its string representation"},
	}},
	{"String functions", []BuiltinDoc{
		{"len", "len(s)", "Returns the length of string or list s"},
		{"lower", "lower(s)", "Converts string s to lowercase"},
		{"upper", "upper(s)", "Converts string s to uppercase"},
		{"split", "split(s, delim)", "Splits string s by delimiter delim into a list"},
		{"join", "join(list, delim)", "Joins list elements into a string with delimiter delim"},
		{"replace", "replace(s, old, new)", "Replaces all occurrences of old with new in string s"},
	}},
	{"List functions", []BuiltinDoc{
		{"range", "range(x, y, step)", "Returns a list of numbers from x to y (exclusive) with step"},
		{"len", "len(list)", "Returns the length of string or list"},
		{"push", "push(list, x)", "Appends element x to the end of list"},
		{"pop", "pop(list)", "Removes and returns the last element of list (nil if empty)"},
		{"insert", "insert(list, index, x)", "Inserts element x at index in list"},
		{"remove", "remove(list, index)", "Removes and returns element at index in list (nil if invalid)"},
		{"sort", "sort(list)", "Sorts list in ascending order"},
	}},
	{"System functions", []BuiltinDoc{
		{"print", "print(...)", "Prints arguments without a newline"},
		{"println", "println(...)", "Prints arguments with a newline"},
		{"read", "read(...)", "Reads a line from input, optionally printing arguments first"},
		{"stacktrace", "stacktrace()", "Returns the current call stack as a list"},
		{"show_ast", "show_ast()", "Prints the abstract syntax tree of the program"},
		{"exit", "exit()", "Exits the interpreter"},
		{"help", "help()", "Displays this help message"},
	}},
}

// LookupBuiltinDoc returns the documentation of the named builtin. When a
// name is documented more than once, the first entry is returned.
func LookupBuiltinDoc(name string) (BuiltinDoc, bool) {
	for _, section := range helpSections {
		for _, doc := range section.docs {
			if doc.Name == name {
				return doc, true
			}
		}
	}
	return BuiltinDoc{}, false
}

const (
	usageWidth = 17
	ruleWidth  = 36
)

// Returns the text printed by help(). When width is positive, descriptions
// that do not fit are wrapped, and the rules are no wider than width.
func helpText(width int) string {
	rule := strings.Repeat("-", ruleWidth)
	if width > 0 && width < ruleWidth {
		rule = rule[:width]
	}

	var sb strings.Builder
	sb.WriteString("Welcome to ITMOScript " + buildinfo.Version + "'s help utility!\n\n")
	sb.WriteString("Available standard library functions:\n")
	sb.WriteString(rule + "\n")
	for i, section := range helpSections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(section.title + ":\n")
		for _, doc := range section.docs {
			usage := doc.Usage
			if len(usage) < usageWidth {
				usage += strings.Repeat(" ", usageWidth-len(usage))
			} else if len(usage) > usageWidth {
				usage += " "
			}
			head := "  " + usage + "- "
			sb.WriteString(head)
			writeWrapped(&sb, doc.Help, len(head), width)
		}
	}
	sb.WriteString(rule + "\n")
	return sb.String()
}

// Writes text followed by a newline. If width is positive and a line would be
// longer than width, the rest of the words continue on new lines indented by
// indent spaces.
func writeWrapped(sb *strings.Builder, text string, indent, width int) {
	if width <= indent {
		sb.WriteString(text + "\n")
		return
	}
	col := indent
	for i, word := range strings.Fields(text) {
		if i > 0 {
			if col+1+len(word) > width {
				sb.WriteString("\n" + strings.Repeat(" ", indent))
				col = indent
			} else {
				sb.WriteString(" ")
				col++
			}
		}
		sb.WriteString(word)
		col += len(word)
	}
	sb.WriteString("\n")
}
