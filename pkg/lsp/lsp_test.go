package lsp

import (
	"fmt"
	"testing"

	. "github.com/keyplexex/itmoscript/pkg/prog/progtest"
)

func TestProgram(t *testing.T) {
	initialize := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`
	Test(t, &Program{},
		ThatCommand().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
		ThatCommand("-lsp", "a.is").
			ExitsWith(2).
			WritesStderrContaining("-lsp takes no arguments"),
		ThatCommand("-lsp").
			WithStdin(fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(initialize), initialize)).
			WritesStdoutContaining(`"hoverProvider":true`),
	)
}
