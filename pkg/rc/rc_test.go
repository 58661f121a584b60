package rc

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/keyplexex/itmoscript/pkg/must"
	"github.com/keyplexex/itmoscript/pkg/testutil"
)

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader(testutil.Dedent(`
		recursion-limit: 50
		prompt: "itmo> "
		history:
		  enabled: false
		  db: /tmp/h.db
		`)))
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		RecursionLimit:     50,
		Prompt:             "itmo> ",
		ContinuationPrompt: ".. ",
		History:            History{Enabled: false, DB: "/tmp/h.db", Max: 1000},
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
	if cfg.EvalCfg().RecursionLimit != 50 {
		t.Errorf("EvalCfg().RecursionLimit = %d, want 50", cfg.EvalCfg().RecursionLimit)
	}
}

func TestDecode_Empty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("got %+v, want default", cfg)
	}
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader("promt: x\n"))
	if err == nil || !strings.Contains(err.Error(), "promt") {
		t.Errorf("got error %v, want one mentioning the unknown field", err)
	}
}

func TestDecode_BadValues(t *testing.T) {
	_, err := Decode(strings.NewReader("recursion-limit: 0\nhistory:\n  max: -1\n"))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got error %v, want *ValidationError", err)
	}
	if len(verr.Issues) != 2 {
		t.Errorf("got issues %q, want 2", verr.Issues)
	}
}

func TestDecode_RecursionLimitBounds(t *testing.T) {
	cfg, err := Decode(strings.NewReader("recursion-limit: 100000\n"))
	if err != nil {
		t.Fatalf("Decode -> error %v, want nil", err)
	}
	if cfg.RecursionLimit != MaxRecursionLimit {
		t.Errorf("RecursionLimit = %d, want %d", cfg.RecursionLimit, MaxRecursionLimit)
	}

	_, err = Decode(strings.NewReader("recursion-limit: 10000000\n"))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got error %v, want *ValidationError", err)
	}
	want := []string{"recursion-limit must be at most 100000, got 10000000"}
	if !reflect.DeepEqual(verr.Issues, want) {
		t.Errorf("Issues = %q, want %q", verr.Issues, want)
	}
}

func TestLoad(t *testing.T) {
	dir := testutil.InTempDir(t)

	cfg, err := Load(filepath.Join(dir, "nonexistent.yaml"))
	if err != nil || !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load of missing file -> %+v, %v; want default, nil", cfg, err)
	}

	must.WriteFile("rc.yaml", "prompt: '$ '\n")
	cfg, err = Load("rc.yaml")
	if err != nil || cfg.Prompt != "$ " {
		t.Errorf("Load -> %+v, %v", cfg, err)
	}

	must.WriteFile("bad.yaml", "prompt: [\n")
	_, err = Load("bad.yaml")
	if err == nil || !strings.HasPrefix(err.Error(), "bad.yaml: ") {
		t.Errorf("Load of bad file -> %v, want error prefixed with path", err)
	}
}
