package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTempDir_DirIsValid(t *testing.T) {
	dir := TempDir(t)

	stat, err := os.Stat(dir)
	if err != nil {
		t.Errorf("TempDir returns %q which cannot be stated", dir)
	}
	if !stat.IsDir() {
		t.Errorf("TempDir returns %q which is not a dir", dir)
	}
}

func TestTempDir_DirHasSymlinksResolved(t *testing.T) {
	dir := TempDir(t)

	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		panic(err)
	}
	if dir != resolved {
		t.Errorf("TempDir returns %q, but it resolves to %q", dir, resolved)
	}
}

func TestTempDir_CleanupRemovesDirRecursively(t *testing.T) {
	c := &cleanuper{}
	dir := TempDir(c)

	err := os.WriteFile(filepath.Join(dir, "a"), []byte("test"), 0600)
	if err != nil {
		panic(err)
	}

	c.runCleanups()
	if _, err := os.Stat(dir); err == nil {
		t.Errorf("Dir %q still exists after cleanup", dir)
	}
}

func TestChdir(t *testing.T) {
	dir := TempDir(t)
	original := getWd()

	c := &cleanuper{}
	Chdir(c, dir)

	after := getWd()
	if after != dir {
		t.Errorf("pwd is now %q, want %q", after, dir)
	}

	c.runCleanups()
	restored := getWd()
	if restored != original {
		t.Errorf("pwd restored to %q, want %q", restored, original)
	}
}

func TestApplyFiles(t *testing.T) {
	InTempDir(t)

	ApplyFiles(Files{
		"main.is":        "println(1)",
		"lib/util.is":    "f = function() end function",
		"lib/sub/sub.is": "",
	})
	ApplyFiles(Files{"lib/other.is": "x = 1"})

	testFileContent(t, "main.is", "println(1)")
	testFileContent(t, "lib/util.is", "f = function() end function")
	testFileContent(t, "lib/sub/sub.is", "")
	testFileContent(t, "lib/other.is", "x = 1")
}

func TestSetenv(t *testing.T) {
	c := &cleanuper{}
	const name = "ITMOSCRIPT_TESTUTIL_VAR"
	os.Unsetenv(name)

	Setenv(c, name, "x")
	if got := os.Getenv(name); got != "x" {
		t.Errorf("after Setenv, value is %q", got)
	}
	c.runCleanups()
	if _, ok := os.LookupEnv(name); ok {
		t.Errorf("variable still set after cleanup")
	}
}

func TestSet(t *testing.T) {
	c := &cleanuper{}
	x := 1
	Set(c, &x, 2)
	if x != 2 {
		t.Errorf("after Set, x = %d", x)
	}
	c.runCleanups()
	if x != 1 {
		t.Errorf("after cleanup, x = %d", x)
	}
}

type cleanuper struct{ fns []func() }

func (c *cleanuper) Cleanup(fn func()) { c.fns = append(c.fns, fn) }

func (c *cleanuper) runCleanups() {
	for i := len(c.fns) - 1; i >= 0; i-- {
		c.fns[i]()
	}
}

func getWd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	dir, err = filepath.EvalSymlinks(dir)
	if err != nil {
		panic(err)
	}
	return dir
}

func testFileContent(t *testing.T, filename string, wantContent string) {
	t.Helper()
	content, err := os.ReadFile(filename)
	if err != nil {
		t.Errorf("Could not read %v: %v", filename, err)
		return
	}
	if string(content) != wantContent {
		t.Errorf("File %v is %q, want %q", filename, content, wantContent)
	}
}
