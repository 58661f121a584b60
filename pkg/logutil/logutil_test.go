package logutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/keyplexex/itmoscript/pkg/must"
	"github.com/keyplexex/itmoscript/pkg/testutil"
)

func TestLogger(t *testing.T) {
	logger := GetLogger("[foo] ")

	var sb bytes.Buffer
	SetOutput(&sb)
	defer SetOutput(io.Discard)
	logger.Println("out 1")
	if !strings.Contains(sb.String(), "[foo] ") || !strings.Contains(sb.String(), "out 1") {
		t.Errorf("got %q, want it to contain prefix and message", sb.String())
	}

	dir := testutil.TempDir(t)
	logPath := filepath.Join(dir, "log")
	must.OK(SetOutputFile(logPath))
	logger.Println("out 2")
	SetOutput(&bytes.Buffer{})
	if content := must.ReadFileString(logPath); !strings.Contains(content, "out 2") {
		t.Errorf("got %q in log file, want it to contain %q", content, "out 2")
	}

	must.OK(SetOutputFile(""))
	logger.Println("out 3")
	if strings.Contains(sb.String(), "out 3") {
		t.Errorf("output should have been discarded")
	}
}

func TestSetOutputFile_Error(t *testing.T) {
	dir := testutil.TempDir(t)
	err := SetOutputFile(filepath.Join(dir, "no-such-dir", "log"))
	if !os.IsNotExist(err) {
		t.Errorf("got error %v, want a not-exist error", err)
	}
}
