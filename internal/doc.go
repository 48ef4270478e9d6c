// Package internal holds helpers shared by the tk1mem packages.
//
// The memory map is exposed as iterators of (name, value) pairs, one per
// group of constants. The helpers here splice and filter those sequences
// without collecting them into slices first.
package internal
