// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// tdb_test.go — Smoke and behavior tests for the keyed store handle.
package tdb_test

import (
	"bytes"
	"testing"

	"github.com/3v1n0/sssd/tdb"
)

// TestOpen asserts a handle is always constructed.
func TestOpen(t *testing.T) {
	db := tdb.Open("smoke.tdb")
	if db == nil {
		t.Fatal("Open returned nil")
	}
	if db.Name() != "smoke.tdb" {
		t.Errorf("Name = %q, want smoke.tdb", db.Name())
	}
}

// TestStoreFetch checks a stored record comes back byte-identical and
// does not alias caller memory.
func TestStoreFetch(t *testing.T) {
	db := tdb.Open("t", tdb.WithHashSize(16))
	val := []byte("world")
	if err := db.Store([]byte("hello"), val); err != nil {
		t.Fatalf("Store: %v", err)
	}
	val[0] = 'X' // mutate caller copy
	got, ok := db.Fetch([]byte("hello"))
	if !ok {
		t.Fatal("Fetch: key missing")
	}
	if !bytes.Equal(got, []byte("world")) {
		t.Errorf("Fetch = %q, want %q", got, "world")
	}
}

// TestAppend grows a record in place and creates absent keys.
func TestAppend(t *testing.T) {
	db := tdb.Open("t")
	if err := db.Append([]byte("k"), []byte("ab")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := db.Append([]byte("k"), []byte("cd")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	got, _ := db.Fetch([]byte("k"))
	if !bytes.Equal(got, []byte("abcd")) {
		t.Errorf("Fetch after appends = %q, want abcd", got)
	}
}

// TestDeleteMissing asserts deleting an absent key fails, like the
// classic delete call.
func TestDeleteMissing(t *testing.T) {
	db := tdb.Open("t")
	if err := db.Delete([]byte("nope")); err != tdb.ErrKeyNotFound {
		t.Errorf("Delete missing = %v, want ErrKeyNotFound", err)
	}
	_ = db.Store([]byte("k"), nil)
	if err := db.Delete([]byte("k")); err != nil {
		t.Errorf("Delete existing: %v", err)
	}
	if db.Exists([]byte("k")) {
		t.Error("key still exists after Delete")
	}
}

// TestTraversal walks every key exactly once with firstkey/nextkey.
func TestTraversal(t *testing.T) {
	db := tdb.Open("t")
	want := []string{"a", "b", "c", "d"}
	for _, k := range want {
		if err := db.Store([]byte(k), []byte("v")); err != nil {
			t.Fatalf("Store %q: %v", k, err)
		}
	}
	var got []string
	for k, ok := db.FirstKey(); ok; k, ok = db.NextKey(k) {
		got = append(got, string(k))
	}
	if len(got) != len(want) {
		t.Fatalf("traversal visited %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("traversal[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// TestTraversalEmpty yields no first key on an empty store.
func TestTraversalEmpty(t *testing.T) {
	if _, ok := tdb.Open("t").FirstKey(); ok {
		t.Error("FirstKey on empty store reported a key")
	}
}

// TestTransactionCancel restores the snapshot taken at start.
func TestTransactionCancel(t *testing.T) {
	db := tdb.Open("t")
	_ = db.Store([]byte("kept"), []byte("1"))
	if err := db.TransactionStart(); err != nil {
		t.Fatalf("TransactionStart: %v", err)
	}
	_ = db.Store([]byte("kept"), []byte("2"))
	_ = db.Store([]byte("new"), []byte("x"))
	if err := db.TransactionCancel(); err != nil {
		t.Fatalf("TransactionCancel: %v", err)
	}
	if got, _ := db.Fetch([]byte("kept")); !bytes.Equal(got, []byte("1")) {
		t.Errorf("kept = %q after cancel, want 1", got)
	}
	if db.Exists([]byte("new")) {
		t.Error("record written inside cancelled transaction survived")
	}
}

// TestTransactionCommit keeps writes and clears transaction state.
func TestTransactionCommit(t *testing.T) {
	db := tdb.Open("t")
	if err := db.TransactionStart(); err != nil {
		t.Fatalf("TransactionStart: %v", err)
	}
	_ = db.Store([]byte("k"), []byte("v"))
	if err := db.TransactionCommit(); err != nil {
		t.Fatalf("TransactionCommit: %v", err)
	}
	if !db.Exists([]byte("k")) {
		t.Error("committed record missing")
	}
	if err := db.TransactionCancel(); err != tdb.ErrNoTransaction {
		t.Errorf("TransactionCancel after commit = %v, want ErrNoTransaction", err)
	}
}

// TestTransactionNested rejects a second open transaction.
func TestTransactionNested(t *testing.T) {
	db := tdb.Open("t")
	if err := db.TransactionStart(); err != nil {
		t.Fatalf("TransactionStart: %v", err)
	}
	if err := db.TransactionStart(); err != tdb.ErrTransactionOpen {
		t.Errorf("nested TransactionStart = %v, want ErrTransactionOpen", err)
	}
}

// TestClosed checks every operation fails on a closed handle.
func TestClosed(t *testing.T) {
	db := tdb.Open("t")
	_ = db.Store([]byte("k"), []byte("v"))
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := db.Store([]byte("k"), []byte("v")); err != tdb.ErrClosed {
		t.Errorf("Store on closed = %v, want ErrClosed", err)
	}
	if _, ok := db.Fetch([]byte("k")); ok {
		t.Error("Fetch on closed handle returned a record")
	}
	if err := db.TransactionStart(); err != tdb.ErrClosed {
		t.Errorf("TransactionStart on closed = %v, want ErrClosed", err)
	}
	if err := db.Close(); err != tdb.ErrClosed {
		t.Errorf("second Close = %v, want ErrClosed", err)
	}
}
