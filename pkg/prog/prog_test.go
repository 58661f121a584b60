package prog_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/keyplexex/itmoscript/pkg/logutil"
	. "github.com/keyplexex/itmoscript/pkg/prog"
	"github.com/keyplexex/itmoscript/pkg/prog/progtest"
	"github.com/keyplexex/itmoscript/pkg/testutil"
)

var (
	Test        = progtest.Test
	ThatCommand = progtest.ThatCommand
)

func TestCommonFlagHandling(t *testing.T) {
	Test(t, &testProgram{},
		ThatCommand("-bad-flag").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -bad-flag\nUsage:"),
		// -h is treated as a bad flag
		ThatCommand("-h").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -h\nUsage:"),

		ThatCommand("-help").
			WritesStdoutContaining("Usage: itmoscript [flags] [script]"),
	)
}

func TestLogFlag(t *testing.T) {
	testutil.InTempDir(t)
	defer logutil.SetOutputFile("")
	Test(t, &testProgram{},
		ThatCommand("-log", "log").DoesNothing(),
		ThatCommand("-log", "/a/bad/path").
			WritesStderrContaining("no such file or directory"),
	)
	if _, err := os.Stat("log"); err != nil {
		t.Errorf("log file was not created: %v", err)
	}
}

func TestSharedJSONFlag(t *testing.T) {
	Test(t, Composite(&testProgram{nextProgram: true}, &testProgram{printJSON: true}),
		ThatCommand("-json").WritesStdout("json: true\n"),
		ThatCommand().WritesStdout("json: false\n"),
	)
}

func TestNoSuitableSubprogram(t *testing.T) {
	Test(t, &testProgram{nextProgram: true},
		ThatCommand().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite(t *testing.T) {
	Test(t,
		Composite(&testProgram{nextProgram: true}, &testProgram{writeOut: "program 2"}),
		ThatCommand().WritesStdout("program 2"),
	)
}

func TestComposite_NoSuitableSubprogram(t *testing.T) {
	Test(t,
		Composite(&testProgram{nextProgram: true}, &testProgram{nextProgram: true}),
		ThatCommand().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite_PreventsSubsequentProgramsFromRunning(t *testing.T) {
	Test(t,
		Composite(&testProgram{writeOut: "program 1"}, &testProgram{shouldNotRun: true}),
		ThatCommand().WritesStdout("program 1"),
	)
}

func TestComposite_RunsCleanupsInReverseOrder(t *testing.T) {
	cleanup := func(s string) func([3]*os.File) {
		return func(fds [3]*os.File) { fds[1].WriteString(s) }
	}
	Test(t,
		Composite(
			&testProgram{nextProgram: true, cleanups: []func([3]*os.File){cleanup("a"), cleanup("b")}},
			&testProgram{nextProgram: true, cleanups: []func([3]*os.File){cleanup("c")}},
			&testProgram{writeOut: "main "}),
		ThatCommand().WritesStdout("main cba"),
	)
}

func TestBadUsageError(t *testing.T) {
	Test(t,
		&testProgram{returnErr: BadUsage("lorem ipsum")},
		ThatCommand().ExitsWith(2).WritesStderrContaining("lorem ipsum\n"),
	)
}

func TestExitError(t *testing.T) {
	Test(t, &testProgram{returnErr: Exit(3)},
		ThatCommand().ExitsWith(3),
	)
}

func TestExitError_0(t *testing.T) {
	Test(t, &testProgram{returnErr: Exit(0)},
		ThatCommand().ExitsWith(0),
	)
}

func TestIsNextProgram(t *testing.T) {
	if !IsNextProgram(NextProgram()) {
		t.Errorf("IsNextProgram(NextProgram()) = false")
	}
	if IsNextProgram(BadUsage("x")) {
		t.Errorf("IsNextProgram(BadUsage(...)) = true")
	}
}

type testProgram struct {
	nextProgram  bool
	shouldNotRun bool
	writeOut     string
	printJSON    bool
	returnErr    error
	cleanups     []func([3]*os.File)

	json *bool
}

func (p *testProgram) RegisterFlags(f *FlagSet) {
	p.json = f.JSON()
}

func (p *testProgram) Run(fds [3]*os.File, args []string) error {
	if p.shouldNotRun {
		panic("program should not run")
	}
	if p.nextProgram {
		return NextProgram(p.cleanups...)
	}
	if p.writeOut != "" {
		fds[1].WriteString(p.writeOut)
	} else if p.printJSON {
		fmt.Fprintf(fds[1], "json: %v\n", *p.json)
	}
	return p.returnErr
}
