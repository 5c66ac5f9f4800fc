// Package cache memoizes compiled procedures.
//
// Entries are keyed by record type, procedure type and a caller-chosen int,
// so the same key can name different layouts for different record types and
// a write and a read procedure for one record type never collide. Entries are
// built on first use and kept until Reset; there is no expiry and no size
// bound.
//
// A key names one layout. Looking a key up with a different build function
// returns the procedure built first; callers own that contract.
package cache
