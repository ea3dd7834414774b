// File: tdb/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error values for the tdb package.

package tdb

import "fmt"

var (
	ErrClosed          = fmt.Errorf("database handle is closed")
	ErrKeyNotFound     = fmt.Errorf("key does not exist")
	ErrEmptyKey        = fmt.Errorf("empty key")
	ErrTransactionOpen = fmt.Errorf("a transaction is already open")
	ErrNoTransaction   = fmt.Errorf("no transaction is open")
)
