package eval

import (
	"io"
	"strings"

	"github.com/keyplexex/itmoscript/pkg/eval/vals"
)

// Input and output.

func init() {
	addBuiltinFns(map[string]builtinImpl{
		"print":   print,
		"println": println,
		"read":    read,
	})
}

func print(ip *Interpreter, args []vals.Value) (vals.Value, error) {
	return vals.Nil, ip.writeValues(args, "")
}

func println(ip *Interpreter, args []vals.Value) (vals.Value, error) {
	return vals.Nil, ip.writeValues(args, "\n")
}

// Writes the display form of each value with no separator, followed by end.
func (ip *Interpreter) writeValues(vs []vals.Value, end string) error {
	var sb strings.Builder
	for _, v := range vs {
		sb.WriteString(vals.ToString(v))
	}
	sb.WriteString(end)
	_, err := io.WriteString(ip.cfg.Stdout, sb.String())
	return err
}

// Prints the arguments as a prompt and reads one line. The line terminator is
// not included; at the end of input the result is an empty string.
func read(ip *Interpreter, args []vals.Value) (vals.Value, error) {
	if err := ip.writeValues(args, ""); err != nil {
		return vals.Nil, err
	}
	line, err := ip.stdin.ReadString('\n')
	if err != nil && err != io.EOF {
		return vals.Nil, err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return vals.Str(line), nil
}
