// File: tdb/tdb.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// TDB is a concurrent-safe keyed byte store with traversal and snapshot
// transactions. Keys and values are copied on the way in and out, so the
// handle never aliases caller memory.

package tdb

import (
	"sort"
	"sync"
)

// TDB is an open database handle.
type TDB struct {
	mu     sync.RWMutex
	name   string
	data   map[string][]byte
	shadow map[string][]byte // pre-transaction snapshot, nil when idle
	closed bool
}

// OpenOption customizes a new handle.
type OpenOption func(*TDB)

// WithHashSize sizes the initial bucket allocation, mirroring the
// hash_size argument of the classic open call. Zero means default.
func WithHashSize(n int) OpenOption {
	return func(t *TDB) {
		if n > 0 {
			t.data = make(map[string][]byte, n)
		}
	}
}

// Open creates a fresh handle. It never returns nil.
func Open(name string, opts ...OpenOption) *TDB {
	t := &TDB{
		name: name,
		data: make(map[string][]byte),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name returns the name the handle was opened with.
func (t *TDB) Name() string {
	return t.name
}

// Store writes value under key, replacing any existing record.
func (t *TDB) Store(key, value []byte) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrClosed
	}
	t.data[string(key)] = cloneBytes(value)
	return nil
}

// Append appends value to the record under key, creating it if absent.
func (t *TDB) Append(key, value []byte) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrClosed
	}
	k := string(key)
	t.data[k] = append(t.data[k], value...)
	return nil
}

// Fetch returns a copy of the record under key.
func (t *TDB) Fetch(key []byte) ([]byte, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed {
		return nil, false
	}
	v, ok := t.data[string(key)]
	if !ok {
		return nil, false
	}
	return cloneBytes(v), true
}

// Exists reports whether key has a record.
func (t *TDB) Exists(key []byte) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed {
		return false
	}
	_, ok := t.data[string(key)]
	return ok
}

// Delete removes the record under key; missing keys are an error, as in
// the classic delete call.
func (t *TDB) Delete(key []byte) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrClosed
	}
	k := string(key)
	if _, ok := t.data[k]; !ok {
		return ErrKeyNotFound
	}
	delete(t.data, k)
	return nil
}

// Len returns the number of records.
func (t *TDB) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.data)
}

// Clear removes every record.
func (t *TDB) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrClosed
	}
	t.data = make(map[string][]byte)
	return nil
}

// FirstKey starts a traversal. Keys are visited in byte order so a
// firstkey/nextkey walk is stable across calls.
func (t *TDB) FirstKey() ([]byte, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed || len(t.data) == 0 {
		return nil, false
	}
	return []byte(t.sortedKeys()[0]), true
}

// NextKey returns the traversal key following prev, or false at the end.
func (t *TDB) NextKey(prev []byte) ([]byte, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed {
		return nil, false
	}
	keys := t.sortedKeys()
	i := sort.SearchStrings(keys, string(prev))
	if i < len(keys) && keys[i] == string(prev) {
		i++
	}
	if i >= len(keys) {
		return nil, false
	}
	return []byte(keys[i]), true
}

// TransactionStart snapshots the current records. Only one transaction
// may be open per handle.
func (t *TDB) TransactionStart() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrClosed
	}
	if t.shadow != nil {
		return ErrTransactionOpen
	}
	t.shadow = make(map[string][]byte, len(t.data))
	for k, v := range t.data {
		t.shadow[k] = cloneBytes(v)
	}
	return nil
}

// TransactionCommit keeps all writes made since TransactionStart.
func (t *TDB) TransactionCommit() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrClosed
	}
	if t.shadow == nil {
		return ErrNoTransaction
	}
	t.shadow = nil
	return nil
}

// TransactionCancel restores the records snapshotted at TransactionStart.
func (t *TDB) TransactionCancel() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrClosed
	}
	if t.shadow == nil {
		return ErrNoTransaction
	}
	t.data = t.shadow
	t.shadow = nil
	return nil
}

// Close releases the handle; further operations fail.
func (t *TDB) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrClosed
	}
	t.closed = true
	t.data = nil
	t.shadow = nil
	return nil
}

// sortedKeys returns record keys in byte order. Caller holds t.mu.
func (t *TDB) sortedKeys() []string {
	keys := make([]string, 0, len(t.data))
	for k := range t.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
