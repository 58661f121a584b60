// Package pprof adds profiling support to the itmoscript program.
package pprof

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/keyplexex/itmoscript/pkg/prog"
)

// Program adds support for the -cpuprofile and -allocsprofile flags. It never
// runs by itself; the profiles are written when the programs after it finish.
type Program struct {
	cpuProfile    string
	allocsProfile string
}

func (p *Program) RegisterFlags(f *prog.FlagSet) {
	f.StringVar(&p.cpuProfile, "cpuprofile", "", "Write CPU profile to file")
	f.StringVar(&p.allocsProfile, "allocsprofile", "", "Write memory allocation profile to file")
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	var cleanups []func([3]*os.File)
	if p.cpuProfile != "" {
		f, err := os.Create(p.cpuProfile)
		if err != nil {
			warn(fds[2], "CPU profile", err)
		} else {
			pprof.StartCPUProfile(f)
			cleanups = append(cleanups, func([3]*os.File) {
				pprof.StopCPUProfile()
				f.Close()
			})
		}
	}
	if p.allocsProfile != "" {
		f, err := os.Create(p.allocsProfile)
		if err != nil {
			warn(fds[2], "memory allocation profile", err)
		} else {
			cleanups = append(cleanups, func([3]*os.File) {
				pprof.Lookup("allocs").WriteTo(f, 0)
				f.Close()
			})
		}
	}
	return prog.NextProgram(cleanups...)
}

func warn(w *os.File, what string, err error) {
	fmt.Fprintf(w, "Warning: cannot create %s: %v\n", what, err)
	fmt.Fprintf(w, "Continuing without %s.\n", what)
}
