// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X github.com/keyplexex/itmoscript/pkg/buildinfo.Var=value" to
// "go build" or "go install".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/keyplexex/itmoscript/pkg/prog"
)

// Version identifies the version of the language and its interpreter.
const Version = "1.0.0"

// VersionSuffix is appended to Version to build the full version string. It
// can be overridden when building, for example to "-dev".
var VersionSuffix = ""

// Type contains all the build information fields.
type Type struct {
	Version     string `json:"version"`
	GoVersion   string `json:"goversion"`
	VCSRevision string `json:"vcsrevision,omitempty"`
	VCSModified bool   `json:"vcsmodified,omitempty"`
}

// Value contains all the build information.
var Value = Type{
	Version:   Version + VersionSuffix,
	GoVersion: runtime.Version(),
}

func init() {
	Value.VCSRevision, Value.VCSModified = vcsInfo(debug.ReadBuildInfo)
}

// Returns the VCS revision, shortened to 12 characters, and whether the
// checkout was dirty.
func vcsInfo(f func() (*debug.BuildInfo, bool)) (string, bool) {
	bi, ok := f()
	if !ok || bi == nil {
		return "", false
	}
	var revision string
	var modified bool
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	return revision, modified
}

// Program is the buildinfo subprogram.
type Program struct {
	version, buildinfo bool
	json               *bool
}

// RegisterFlags registers -version and -buildinfo.
func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.version, "version", false,
		"Output the version and quit")
	fs.BoolVar(&p.buildinfo, "buildinfo", false,
		"Output information about the build and quit")
	p.json = fs.JSON()
}

// Run runs the program.
func (p *Program) Run(fds [3]*os.File, _ []string) error {
	switch {
	case p.buildinfo:
		if *p.json {
			fmt.Fprintln(fds[1], mustToJSON(Value))
		} else {
			fmt.Fprintln(fds[1], "Version:", Value.Version)
			fmt.Fprintln(fds[1], "Go version:", Value.GoVersion)
			if Value.VCSRevision != "" {
				fmt.Fprintln(fds[1], "VCS revision:", Value.VCSRevision)
			}
		}
	case p.version:
		if *p.json {
			fmt.Fprintln(fds[1], mustToJSON(Value.Version))
		} else {
			fmt.Fprintln(fds[1], Value.Version)
		}
	default:
		return prog.NextProgram()
	}
	return nil
}

func mustToJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
