// Package extract pulls scalar values out of noisy character sheet input.
//
// Nothing in this package returns an error. A pattern that does not match or
// a value that does not convert yields the caller's default, because sheet
// input is expected to be incomplete.
package extract
