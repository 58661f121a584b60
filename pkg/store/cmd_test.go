package store_test

import (
	"path/filepath"
	"testing"

	"github.com/keyplexex/itmoscript/pkg/store"
	"github.com/keyplexex/itmoscript/pkg/store/storetest"
	"github.com/keyplexex/itmoscript/pkg/testutil"
)

func TestCmd(t *testing.T) {
	storetest.TestCmd(t, store.MustTempStore(t))
}

func TestStore_PersistsAcrossOpens(t *testing.T) {
	db := filepath.Join(testutil.TempDir(t), "history.db")

	st, err := store.NewStore(db)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := st.AddCmd("x = 1"); err != nil {
		t.Fatal(err)
	}
	if err := st.Close(); err != nil {
		t.Fatal(err)
	}

	st, err = store.NewStore(db)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	if cmd, err := st.Cmd(1); cmd != "x = 1" || err != nil {
		t.Errorf("Cmd(1) -> (%q, %v), want (%q, nil)", cmd, err, "x = 1")
	}
	if seq, err := st.NextCmdSeq(); seq != 2 || err != nil {
		t.Errorf("NextCmdSeq() -> (%v, %v), want (2, nil)", seq, err)
	}
}
