// ITMOScript is an interpreter for a small dynamically typed scripting
// language. It runs scripts, code given with -c, or an interactive session,
// and can also serve as a language server.
package main

import (
	"os"

	"github.com/keyplexex/itmoscript/pkg/buildinfo"
	"github.com/keyplexex/itmoscript/pkg/lsp"
	"github.com/keyplexex/itmoscript/pkg/pprof"
	"github.com/keyplexex/itmoscript/pkg/prog"
	"github.com/keyplexex/itmoscript/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(
			&buildinfo.Program{}, &pprof.Program{}, &lsp.Program{}, &shell.Program{})))
}
