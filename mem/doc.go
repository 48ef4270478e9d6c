// Package mem describes the memory map of the TK1 platform.
//
// The TK1_* constants are the values shared by the hardware description,
// the emulator, the firmware and applications. They must stay bit identical
// to the canonical tk1_mem.h header.
//
// On top of the constants, the package provides a Layout that groups the
// addresses into regions, cores, registers and bit flags. A Layout can
// decode an arbitrary address, look registers up by name and verify that
// the map is self consistent.
package mem
