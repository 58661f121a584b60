package testutil

import (
	"os"
	"path/filepath"

	"github.com/keyplexex/itmoscript/pkg/must"
)

// TempDir creates a temporary directory for testing that will be removed
// after the test finishes. It is different from testing.TB.TempDir in that it
// resolves symlinks in the path of the directory.
func TempDir(c Cleanuper) string {
	dir, err := os.MkdirTemp("", "itmoscripttest")
	if err != nil {
		panic(err)
	}
	dir, err = filepath.EvalSymlinks(dir)
	if err != nil {
		panic(err)
	}
	c.Cleanup(func() {
		err := os.RemoveAll(dir)
		if err != nil {
			println("failed to remove temp dir", dir)
		}
	})
	return dir
}

// InTempDir is equivalent to calling TempDir and Chdir. It returns the
// directory.
func InTempDir(c Cleanuper) string {
	dir := TempDir(c)
	Chdir(c, dir)
	return dir
}

// Chdir changes into a directory, and restores the original working directory
// when a test finishes.
func Chdir(c Cleanuper, dir string) {
	oldWd := must.OK1(os.Getwd())
	must.Chdir(dir)
	c.Cleanup(func() { must.Chdir(oldWd) })
}

// Files maps slash-separated paths to file contents.
type Files map[string]string

// ApplyFiles writes the given files relative to the current directory,
// creating parent directories as needed.
func ApplyFiles(files Files) {
	for name, content := range files {
		must.WriteFile(filepath.FromSlash(name), content)
	}
}
