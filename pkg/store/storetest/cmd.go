// Package storetest contains a test suite that a storedefs.Store of commands
// must pass.
package storetest

import (
	"reflect"
	"testing"

	"github.com/keyplexex/itmoscript/pkg/store/storedefs"
)

var cmds = []string{"println(1)", "x = 2", "x = 3", "println(x)"}

// TestCmd tests the command history functionality of a Store, which must be
// empty.
func TestCmd(t *testing.T, store storedefs.Store) {
	startSeq, err := store.NextCmdSeq()
	if startSeq != 1 || err != nil {
		t.Errorf("store.NextCmdSeq() -> (%v, %v), want (1, nil)",
			startSeq, err)
	}

	// AddCmd
	for i, cmd := range cmds {
		wantSeq := startSeq + i
		seq, err := store.AddCmd(cmd)
		if seq != wantSeq || err != nil {
			t.Errorf("store.AddCmd(%v) -> (%v, %v), want (%v, nil)",
				cmd, seq, err, wantSeq)
		}
	}

	endSeq, err := store.NextCmdSeq()
	wantedEndSeq := startSeq + len(cmds)
	if endSeq != wantedEndSeq || err != nil {
		t.Errorf("store.NextCmdSeq() -> (%v, %v), want (%v, nil)",
			endSeq, err, wantedEndSeq)
	}

	wantCmdWithSeqs := make([]storedefs.Cmd, len(cmds))
	for i, cmd := range cmds {
		wantCmdWithSeqs[i] = storedefs.Cmd{Text: cmd, Seq: i + 1}
	}

	// RecentCmds
	recent, err := store.RecentCmds(2)
	if !equalCmds(recent, wantCmdWithSeqs[2:]) || err != nil {
		t.Errorf("store.RecentCmds(2) -> (%v, %v), want (%v, nil)",
			recent, err, wantCmdWithSeqs[2:])
	}
	recent, err = store.RecentCmds(100)
	if !equalCmds(recent, wantCmdWithSeqs) || err != nil {
		t.Errorf("store.RecentCmds(100) -> (%v, %v), want (%v, nil)",
			recent, err, wantCmdWithSeqs)
	}

	// Cmd
	for i, wantedCmd := range cmds {
		seq := i + startSeq
		cmd, err := store.Cmd(seq)
		if cmd != wantedCmd || err != nil {
			t.Errorf("store.Cmd(%v) -> (%v, %v), want (%v, nil)",
				seq, cmd, err, wantedCmd)
		}
	}

	if cmd, err := store.Cmd(endSeq); !matchErr(err, storedefs.ErrNoMatchingCmd) {
		t.Errorf("store.Cmd(%v) -> (%v, %v), want (_, %v)",
			endSeq, cmd, err, storedefs.ErrNoMatchingCmd)
	}
}

func equalCmds(a, b []storedefs.Cmd) bool {
	return (len(a) == 0 && len(b) == 0) || reflect.DeepEqual(a, b)
}

func matchErr(e1, e2 error) bool {
	return (e1 == nil && e2 == nil) || (e1 != nil && e2 != nil && e1.Error() == e2.Error())
}
