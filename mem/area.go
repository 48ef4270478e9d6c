package mem

// Area is a top level address region.
type Area int

//go:generate go tool stringer -linecomment -type=Area
const (
	AREA_ROM      = Area(0) // rom
	AREA_RAM      = Area(1) // ram
	AREA_RESERVED = Area(2) // reserved
	AREA_MMIO     = Area(3) // mmio
)

// Core is a peripheral register block inside MMIO.
type Core int

//go:generate go tool stringer -linecomment -type=Core
const (
	CORE_TRNG   = Core(0) // trng
	CORE_TIMER  = Core(1) // timer
	CORE_UDS    = Core(2) // uds
	CORE_UART   = Core(3) // uart
	CORE_TOUCH  = Core(4) // touch
	CORE_FW_RAM = Core(5) // fw_ram
	CORE_QEMU   = Core(6) // qemu
	CORE_TK1    = Core(7) // tk1
)
