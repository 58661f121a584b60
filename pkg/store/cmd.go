package store

import (
	"encoding/binary"

	. "github.com/keyplexex/itmoscript/pkg/store/storedefs"
	bolt "go.etcd.io/bbolt"
)

// NextCmdSeq returns the sequence number the next added command will get.
func (s *dbStore) NextCmdSeq() (int, error) {
	var seq uint64
	err := s.view(func(b *bolt.Bucket) error {
		seq = b.Sequence() + 1
		return nil
	})
	return int(seq), err
}

// AddCmd adds a command to the history and returns its sequence number.
func (s *dbStore) AddCmd(cmd string) (int, error) {
	var seq uint64
	err := s.update(func(b *bolt.Bucket) error {
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(cmd))
	})
	return int(seq), err
}

// Cmd returns the command with the given sequence number, or
// ErrNoMatchingCmd if there is none.
func (s *dbStore) Cmd(seq int) (string, error) {
	var cmd string
	err := s.view(func(b *bolt.Bucket) error {
		v := b.Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoMatchingCmd
		}
		cmd = string(v)
		return nil
	})
	return cmd, err
}

// RecentCmds returns up to n of the most recent commands, oldest first.
func (s *dbStore) RecentCmds(n int) ([]Cmd, error) {
	var cmds []Cmd
	err := s.view(func(b *bolt.Bucket) error {
		c := b.Cursor()
		for k, v := c.Last(); k != nil && len(cmds) < n; k, v = c.Prev() {
			cmds = append(cmds, Cmd{Text: string(v), Seq: int(unmarshalSeq(k))})
		}
		return nil
	})
	for i, j := 0, len(cmds)-1; i < j; i, j = i+1, j-1 {
		cmds[i], cmds[j] = cmds[j], cmds[i]
	}
	return cmds, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
