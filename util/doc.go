// Package util provides small generic helpers for optional values.
//
// Records model an absent cell as a nil pointer field (*int, *string, ...).
// Sink strategies use Indirect to turn such fields into either the pointed-to
// value or an untyped nil before handing them to a grid.
package util
