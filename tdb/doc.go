// Package tdb
// Author: momentics <momentics@gmail.com>
//
// In-memory rendition of the trivial-database handle: byte-keyed records
// with store/fetch/delete, firstkey/nextkey traversal, and snapshot
// transactions. One handle per Open call; handles share nothing.
package tdb
