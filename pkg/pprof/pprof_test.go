package pprof_test

import (
	"os"
	"testing"

	"github.com/keyplexex/itmoscript/pkg/pprof"
	"github.com/keyplexex/itmoscript/pkg/prog"
	"github.com/keyplexex/itmoscript/pkg/prog/progtest"
	"github.com/keyplexex/itmoscript/pkg/testutil"
)

var (
	Test        = progtest.Test
	ThatCommand = progtest.ThatCommand
)

func TestProgram(t *testing.T) {
	testutil.InTempDir(t)

	Test(t, prog.Composite(&pprof.Program{}, noopProgram{}),
		ThatCommand("-cpuprofile", "cpuprof").DoesNothing(),
		ThatCommand("-cpuprofile", "/a/bad/path").
			WritesStderrContaining("Warning: cannot create CPU profile:"),
		ThatCommand("-allocsprofile", "allocsprof").DoesNothing(),
		ThatCommand("-allocsprofile", "/a/bad/path").
			WritesStderrContaining("Continuing without memory allocation profile."),
	)

	// There isn't much to test beyond a sanity check that the profile files
	// now exist.
	for _, name := range []string{"cpuprof", "allocsprof"} {
		if _, err := os.Stat(name); err != nil {
			t.Errorf("profile file %s does not exist: %v", name, err)
		}
	}
}

type noopProgram struct{}

func (noopProgram) RegisterFlags(*prog.FlagSet)     {}
func (noopProgram) Run([3]*os.File, []string) error { return nil }
