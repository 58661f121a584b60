package shell

import (
	"path/filepath"
	"testing"

	"github.com/keyplexex/itmoscript/pkg/env"
	. "github.com/keyplexex/itmoscript/pkg/prog/progtest"
	"github.com/keyplexex/itmoscript/pkg/testutil"
)

func TestShell_BadUsage(t *testing.T) {
	Test(t, &Program{},
		ThatCommand("-norc", "a.is", "b.is").
			ExitsWith(2).
			WritesStderrContaining("at most one script may be given"),
		ThatCommand("-norc", "-c").
			ExitsWith(2).
			WritesStderrContaining("-c requires an argument"),
	)
}

func TestShell_RCFile(t *testing.T) {
	dir := testutil.InTempDir(t)
	testutil.Setenv(t, env.XDG_CONFIG_HOME, filepath.Join(dir, "config"))
	testutil.ApplyFiles(testutil.Files{
		"limit.yaml":   "recursion-limit: 3\n",
		"bad.yaml":     "recursion-limit: 0\n",
		"unknown.yaml": "colour: red\n",
	})

	deep := "f = function(n) if n > 0 then f(n - 1) end if end function\nf(5)"
	Test(t, &Program{},
		// No file at the default location.
		ThatCommand("-c", deep).DoesNothing(),
		ThatCommand("-rc", "limit.yaml", "-c", deep).
			ExitsWith(2).
			WritesStderrContaining("maximum recursion depth of 3 exceeded"),
		ThatCommand("-norc", "-rc", "limit.yaml", "-c", deep).DoesNothing(),
		ThatCommand("-rc", "bad.yaml", "-c", "print(1)").
			WritesStdout("1").
			WritesStderrContaining("Using the default configuration."),
		ThatCommand("-rc", "unknown.yaml", "-c", "print(1)").
			WritesStdout("1").
			WritesStderrContaining("Warning:"),
	)
}
