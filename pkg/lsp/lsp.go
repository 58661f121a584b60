// Package lsp implements a language server for ITMOScript.
package lsp

import (
	"context"
	"io"
	"os"

	"github.com/keyplexex/itmoscript/pkg/logutil"
	"github.com/keyplexex/itmoscript/pkg/prog"
	"github.com/sourcegraph/jsonrpc2"
)

var logger = logutil.GetLogger("[lsp] ")

// Program is the LSP subprogram.
type Program struct {
	run bool
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.run, "lsp", false, "Run the language server instead of the interpreter")
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	if !p.run {
		return prog.NextProgram()
	}
	if len(args) > 0 {
		return prog.BadUsage("-lsp takes no arguments")
	}
	logger.Println("starting language server")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	conn := jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(transport{fds[0], fds[1]}, jsonrpc2.VSCodeObjectCodec{}),
		handler(newServer()))
	<-conn.DisconnectNotify()
	logger.Println("language server disconnected")
	return nil
}

// Joins stdin and stdout into the stream the connection needs.
type transport struct {
	in  io.ReadCloser
	out io.WriteCloser
}

func (t transport) Read(p []byte) (int, error)  { return t.in.Read(p) }
func (t transport) Write(p []byte) (int, error) { return t.out.Write(p) }

func (t transport) Close() error {
	errIn, errOut := t.in.Close(), t.out.Close()
	if errIn != nil {
		return errIn
	}
	return errOut
}
