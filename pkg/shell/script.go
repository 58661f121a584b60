package shell

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/keyplexex/itmoscript/pkg/eval"
	"github.com/keyplexex/itmoscript/pkg/parse"
	"github.com/keyplexex/itmoscript/pkg/rc"
)

// Configuration for the script mode.
type scriptCfg struct {
	Cmd         bool
	CompileOnly bool
	JSON        bool
	RC          *rc.Config
}

// Executes a script given as a path, or as code when cfg.Cmd is set. It
// returns the exit status.
func script(fds [3]*os.File, arg string, cfg *scriptCfg) int {
	var name, code string
	if cfg.Cmd {
		name = "code from -c"
		code = arg
	} else {
		var err error
		name, err = filepath.Abs(arg)
		if err != nil {
			fmt.Fprintf(fds[2],
				"cannot get full path of script %q: %v\n", arg, err)
			return 2
		}
		code, err = readFileUTF8(name)
		if err != nil {
			fmt.Fprintf(fds[2], "cannot read script %q: %v\n", name, err)
			return 2
		}
	}
	return runSource(fds, parse.Source{Name: name, Code: code, IsFile: !cfg.Cmd}, cfg)
}

// Executes the whole of stdin as a script.
func scriptFromStdin(fds [3]*os.File, cfg *scriptCfg) int {
	bs, err := io.ReadAll(fds[0])
	if err == nil && !utf8.Valid(bs) {
		err = errSourceNotUTF8
	}
	if err != nil {
		fmt.Fprintf(fds[2], "cannot read script from stdin: %v\n", err)
		return 2
	}
	return runSource(fds, parse.Source{Name: "[stdin]", Code: string(bs)}, cfg)
}

func runSource(fds [3]*os.File, src parse.Source, cfg *scriptCfg) int {
	logger.Printf("running %s", src.Name)
	prog, err := parse.Parse(src)
	if cfg.CompileOnly {
		if cfg.JSON {
			fmt.Fprintf(fds[1], "%s\n", errorsToJSON(err))
		} else if err != nil {
			showError(fds[2], err)
		}
		if err != nil {
			return 2
		}
		return 0
	}
	if err != nil {
		showError(fds[2], err)
		return 2
	}

	ip := newInterpreter(fds, fds[0], cfg.RC, false)
	err = ip.Eval(prog)
	if err != nil && err != eval.ErrExit {
		showError(fds[2], err)
		return 2
	}
	return 0
}

var errSourceNotUTF8 = errors.New("source is not UTF-8")

func readFileUTF8(fname string) (string, error) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bytes) {
		return "", errSourceNotUTF8
	}
	return string(bytes), nil
}

// An auxiliary struct for converting errors with diagnostics information to JSON.
type errorInJSON struct {
	FileName string `json:"fileName"`
	Line     int    `json:"line"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Message  string `json:"message"`
}

// Converts a parse error into a JSON array, which is empty when err is nil.
func errorsToJSON(err error) []byte {
	converted := []errorInJSON{}
	if e := parse.GetError(err); e != nil {
		converted = append(converted, errorInJSON{
			e.Context.Name, e.Line(), e.Context.From, e.Context.To, e.Message})
	}

	jsonError, errMarshal := json.Marshal(converted)
	if errMarshal != nil {
		return []byte(`[{"message":"Unable to convert the errors to JSON"}]`)
	}
	return jsonError
}
