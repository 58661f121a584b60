// Package shell is the entry point for running ITMOScript code, either from a
// script or interactively.
package shell

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/keyplexex/itmoscript/pkg/diag"
	"github.com/keyplexex/itmoscript/pkg/env"
	"github.com/keyplexex/itmoscript/pkg/eval"
	"github.com/keyplexex/itmoscript/pkg/eval/vals"
	"github.com/keyplexex/itmoscript/pkg/logutil"
	"github.com/keyplexex/itmoscript/pkg/prog"
	"github.com/keyplexex/itmoscript/pkg/rc"
	"github.com/keyplexex/itmoscript/pkg/sys"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram. It is always run when reached in a
// composite.
type Program struct {
	codeInArg   bool
	compileOnly bool
	noRC        bool
	rcPath      string
	dbPath      string
	json        *bool
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.codeInArg, "c", false,
		"Take the script argument as code to execute")
	fs.BoolVar(&p.compileOnly, "compileonly", false,
		"Parse the script and report syntax errors without running it")
	fs.BoolVar(&p.noRC, "norc", false,
		"Don't read the configuration file")
	fs.StringVar(&p.rcPath, "rc", "",
		"Path to the configuration file; defaults to $XDG_CONFIG_HOME/itmoscript/rc.yaml")
	fs.StringVar(&p.dbPath, "db", "",
		"Path to the history database, overriding the configuration file")
	p.json = fs.JSON()
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	switch {
	case len(args) > 1:
		return prog.BadUsage("at most one script may be given")
	case p.codeInArg && len(args) == 0:
		return prog.BadUsage("-c requires an argument")
	}
	cfg := p.loadRC(fds[2])
	scfg := &scriptCfg{
		Cmd: p.codeInArg, CompileOnly: p.compileOnly, JSON: *p.json, RC: cfg}

	if len(args) == 1 {
		return prog.Exit(script(fds, args[0], scfg))
	}
	if p.compileOnly || !sys.IsATTY(fds[0].Fd()) {
		return prog.Exit(scriptFromStdin(fds, scfg))
	}
	return interactive(fds, cfg, p.dbPath)
}

func (p *Program) loadRC(stderr io.Writer) *rc.Config {
	if p.noRC {
		return rc.Default()
	}
	path := p.rcPath
	if path == "" {
		var err error
		path, err = rc.Path()
		if err != nil {
			fmt.Fprintln(stderr, "Warning:", err)
			return rc.Default()
		}
	}
	cfg, err := rc.Load(path)
	if err != nil {
		fmt.Fprintln(stderr, "Warning:", err)
		fmt.Fprintln(stderr, "Using the default configuration.")
		return rc.Default()
	}
	return cfg
}

// Creates an Interpreter reading from stdin and writing to fds[1]. If echo is
// true, values of top-level expressions are written too.
func newInterpreter(fds [3]*os.File, stdin io.Reader, cfg *rc.Config, echo bool) *eval.Interpreter {
	evalCfg := cfg.EvalCfg()
	evalCfg.Stdin = stdin
	evalCfg.Stdout = fds[1]
	evalCfg.Width = sys.Width(fds[1])
	if echo {
		evalCfg.PutValue = func(v vals.Value) { fmt.Fprintln(fds[1], vals.Repr(v)) }
	}
	return eval.NewInterpreter(nil, evalCfg)
}

// Shows an error on w. Styling is removed unless w is a terminal and NO_COLOR
// is not set.
func showError(w *os.File, err error) {
	var sb strings.Builder
	diag.ShowError(&sb, err)
	text := sb.String()
	if !sys.IsATTY(w.Fd()) || os.Getenv(env.NO_COLOR) != "" {
		text = diag.Unstyle(text)
	}
	io.WriteString(w, text)
}
