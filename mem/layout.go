// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mem

import (
	"fmt"
)

// Region is a top level span of the address space.
type Region struct {
	Area Area   // Area identifier.
	Name string // Constant naming the base address.
	Base uint32 // First address.
	Size uint32 // Span in bytes.
}

// End returns the first address past the region.
func (r *Region) End() uint64 {
	return uint64(r.Base) + uint64(r.Size)
}

// Contains returns true if addr is inside the region.
func (r *Region) Contains(addr uint32) bool {
	return addr >= r.Base && uint64(addr) < r.End()
}

// Bit is a single flag inside a register.
type Bit struct {
	Name   string // Short name, ie "ready".
	Symbol string // Constant naming the index.
	Index  int    // Bit position, 0 is the LSB.
}

// Mask returns the value of the bit inside its register.
func (b Bit) Mask() uint32 {
	return 1 << b.Index
}

// Register is a 32-bit register, or a run of consecutive 32-bit words.
type Register struct {
	Name        string // Short name within its core, ie "led".
	Symbol      string // Constant naming the (first) address.
	LastSymbol  string // Constant naming the last word, for multi-word registers.
	Addr        uint32 // Address of the first word.
	Words       int    // Number of 32-bit words.
	Bits        []Bit  // Named flags, if any.
	Provisional bool   // Not yet a stable hardware contract.
}

// Last returns the address of the last word of the register.
func (r *Register) Last() uint32 {
	return r.Addr + uint32(r.Words-1)*TK1_WORD_SIZE
}

// End returns the first address past the register.
func (r *Register) End() uint64 {
	return uint64(r.Addr) + uint64(r.Words)*TK1_WORD_SIZE
}

// Contains returns true if addr is inside the register.
func (r *Register) Contains(addr uint32) bool {
	return addr >= r.Addr && uint64(addr) < r.End()
}

// Bit returns the named flag of the register.
func (r *Register) Bit(name string) (bit Bit, ok bool) {
	for _, bit = range r.Bits {
		if bit.Name == name || bit.Symbol == name {
			ok = true
			return
		}
	}

	bit = Bit{}
	return
}

// Device is the register block of a single core.
type Device struct {
	Core         Core   // Core identifier.
	Symbol       string // Constant naming the base address.
	Base         uint32 // First address of the block.
	Size         uint32 // Span decoded by the core.
	EmulatorOnly bool   // Present only in the emulator.
	Registers    []*Register
}

// End returns the first address past the device.
func (d *Device) End() uint64 {
	return uint64(d.Base) + uint64(d.Size)
}

// Contains returns true if addr is decoded by the device.
func (d *Device) Contains(addr uint32) bool {
	return addr >= d.Base && uint64(addr) < d.End()
}

func (d *Device) String() string {
	return d.Core.String()
}

// Layout is a complete memory map.
type Layout struct {
	Regions    []*Region // Regions, in increasing address order.
	Devices    []*Device // MMIO cores, in increasing address order.
	AppAddr    uint32    // Application load address.
	AppMaxSize uint32    // Largest loadable application.
}

// TK1 is the memory map of the TK1 platform.
var TK1 = newTK1()

func reg(name string, symbol string, addr uint32, bits ...Bit) *Register {
	return &Register{Name: name, Symbol: symbol, Addr: addr, Words: 1, Bits: bits}
}

// span builds a multi-word register from its first and last word addresses.
// A span that is empty or not a whole number of words gets zero words.
func span(name string, first string, last string, addr_first uint32, addr_last uint32) (reg *Register) {
	reg = &Register{
		Name:       name,
		Symbol:     first,
		LastSymbol: last,
		Addr:       addr_first,
	}

	if addr_last > addr_first && (addr_last-addr_first)%TK1_WORD_SIZE == 0 {
		reg.Words = int((addr_last-addr_first)/TK1_WORD_SIZE) + 1
	}

	return
}

func newTK1() (layout *Layout) {
	layout = &Layout{
		AppAddr:    TK1_APP_ADDR,
		AppMaxSize: TK1_APP_MAX_SIZE,
	}

	layout.Regions = []*Region{
		{AREA_ROM, "TK1_ROM_BASE", TK1_ROM_BASE, TK1_RAM_BASE - TK1_ROM_BASE},
		{AREA_RAM, "TK1_RAM_BASE", TK1_RAM_BASE, TK1_RAM_SIZE},
		{AREA_RESERVED, "TK1_RESERVED_BASE", TK1_RESERVED_BASE, TK1_MMIO_BASE - TK1_RESERVED_BASE},
		// TK1_MMIO_SIZE is the offset of the last MMIO byte.
		{AREA_MMIO, "TK1_MMIO_BASE", TK1_MMIO_BASE, TK1_MMIO_SIZE + 1},
	}

	qemu_uda := reg("uda", "TK1_MMIO_QEMU_UDA", TK1_MMIO_QEMU_UDA)
	qemu_uda.Provisional = true

	layout.Devices = []*Device{
		{
			Core:   CORE_TRNG,
			Symbol: "TK1_MMIO_TRNG_BASE",
			Base:   TK1_MMIO_TRNG_BASE,
			Size:   TK1_MMIO_CORE_WINDOW,
			Registers: []*Register{
				reg("status", "TK1_MMIO_TRNG_STATUS", TK1_MMIO_TRNG_STATUS,
					Bit{"ready", "TK1_MMIO_TRNG_STATUS_READY_BIT", TK1_MMIO_TRNG_STATUS_READY_BIT}),
				reg("entropy", "TK1_MMIO_TRNG_ENTROPY", TK1_MMIO_TRNG_ENTROPY),
			},
		},
		{
			Core:   CORE_TIMER,
			Symbol: "TK1_MMIO_TIMER_BASE",
			Base:   TK1_MMIO_TIMER_BASE,
			Size:   TK1_MMIO_CORE_WINDOW,
			Registers: []*Register{
				reg("ctrl", "TK1_MMIO_TIMER_CTRL", TK1_MMIO_TIMER_CTRL),
				reg("status", "TK1_MMIO_TIMER_STATUS", TK1_MMIO_TIMER_STATUS,
					Bit{"ready", "TK1_MMIO_TIMER_STATUS_READY_BIT", TK1_MMIO_TIMER_STATUS_READY_BIT}),
				reg("prescaler", "TK1_MMIO_TIMER_PRESCALER", TK1_MMIO_TIMER_PRESCALER),
				reg("timer", "TK1_MMIO_TIMER_TIMER", TK1_MMIO_TIMER_TIMER),
			},
		},
		{
			Core:   CORE_UDS,
			Symbol: "TK1_MMIO_UDS_BASE",
			Base:   TK1_MMIO_UDS_BASE,
			Size:   TK1_MMIO_CORE_WINDOW,
			Registers: []*Register{
				span("uds", "TK1_MMIO_UDS_FIRST", "TK1_MMIO_UDS_LAST", TK1_MMIO_UDS_FIRST, TK1_MMIO_UDS_LAST),
			},
		},
		{
			Core:   CORE_UART,
			Symbol: "TK1_MMIO_UART_BASE",
			Base:   TK1_MMIO_UART_BASE,
			Size:   TK1_MMIO_CORE_WINDOW,
			Registers: []*Register{
				reg("bit_rate", "TK1_MMIO_UART_BIT_RATE", TK1_MMIO_UART_BIT_RATE),
				reg("data_bits", "TK1_MMIO_UART_DATA_BITS", TK1_MMIO_UART_DATA_BITS),
				reg("stop_bits", "TK1_MMIO_UART_STOP_BITS", TK1_MMIO_UART_STOP_BITS),
				reg("rx_status", "TK1_MMIO_UART_RX_STATUS", TK1_MMIO_UART_RX_STATUS),
				reg("rx_data", "TK1_MMIO_UART_RX_DATA", TK1_MMIO_UART_RX_DATA),
				reg("tx_status", "TK1_MMIO_UART_TX_STATUS", TK1_MMIO_UART_TX_STATUS),
				reg("tx_data", "TK1_MMIO_UART_TX_DATA", TK1_MMIO_UART_TX_DATA),
			},
		},
		{
			Core:   CORE_TOUCH,
			Symbol: "TK1_MMIO_TOUCH_BASE",
			Base:   TK1_MMIO_TOUCH_BASE,
			Size:   TK1_MMIO_CORE_WINDOW,
			Registers: []*Register{
				reg("status", "TK1_MMIO_TOUCH_STATUS", TK1_MMIO_TOUCH_STATUS,
					Bit{"event", "TK1_MMIO_TOUCH_STATUS_EVENT_BIT", TK1_MMIO_TOUCH_STATUS_EVENT_BIT}),
			},
		},
		{
			Core:   CORE_FW_RAM,
			Symbol: "TK1_MMIO_FW_RAM_BASE",
			Base:   TK1_MMIO_FW_RAM_BASE,
			Size:   TK1_MMIO_FW_RAM_SIZE,
		},
		{
			Core:         CORE_QEMU,
			Symbol:       "TK1_MMIO_QEMU_BASE",
			Base:         TK1_MMIO_QEMU_BASE,
			Size:         TK1_MMIO_CORE_WINDOW,
			EmulatorOnly: true,
			Registers: []*Register{
				qemu_uda,
				reg("debug", "TK1_MMIO_QEMU_DEBUG", TK1_MMIO_QEMU_DEBUG),
			},
		},
		{
			Core:   CORE_TK1,
			Symbol: "TK1_MMIO_TK1_BASE",
			Base:   TK1_MMIO_TK1_BASE,
			Size:   TK1_MMIO_CORE_WINDOW,
			Registers: []*Register{
				reg("name0", "TK1_MMIO_TK1_NAME0", TK1_MMIO_TK1_NAME0),
				reg("name1", "TK1_MMIO_TK1_NAME1", TK1_MMIO_TK1_NAME1),
				reg("version", "TK1_MMIO_TK1_VERSION", TK1_MMIO_TK1_VERSION),
				reg("switch_app", "TK1_MMIO_TK1_SWITCH_APP", TK1_MMIO_TK1_SWITCH_APP),
				reg("led", "TK1_MMIO_TK1_LED", TK1_MMIO_TK1_LED,
					Bit{"r", "TK1_MMIO_TK1_LED_R_BIT", TK1_MMIO_TK1_LED_R_BIT},
					Bit{"g", "TK1_MMIO_TK1_LED_G_BIT", TK1_MMIO_TK1_LED_G_BIT},
					Bit{"b", "TK1_MMIO_TK1_LED_B_BIT", TK1_MMIO_TK1_LED_B_BIT}),
				reg("gpio", "TK1_MMIO_TK1_GPIO", TK1_MMIO_TK1_GPIO,
					Bit{"gpio1", "TK1_MMIO_TK1_GPIO1_BIT", TK1_MMIO_TK1_GPIO1_BIT},
					Bit{"gpio2", "TK1_MMIO_TK1_GPIO2_BIT", TK1_MMIO_TK1_GPIO2_BIT},
					Bit{"gpio3", "TK1_MMIO_TK1_GPIO3_BIT", TK1_MMIO_TK1_GPIO3_BIT},
					Bit{"gpio4", "TK1_MMIO_TK1_GPIO4_BIT", TK1_MMIO_TK1_GPIO4_BIT}),
				reg("app_addr", "TK1_MMIO_TK1_APP_ADDR", TK1_MMIO_TK1_APP_ADDR),
				reg("app_size", "TK1_MMIO_TK1_APP_SIZE", TK1_MMIO_TK1_APP_SIZE),
				span("cdi", "TK1_MMIO_TK1_CDI_FIRST", "TK1_MMIO_TK1_CDI_LAST", TK1_MMIO_TK1_CDI_FIRST, TK1_MMIO_TK1_CDI_LAST),
				span("udi", "TK1_MMIO_TK1_UDI_FIRST", "TK1_MMIO_TK1_UDI_LAST", TK1_MMIO_TK1_UDI_FIRST, TK1_MMIO_TK1_UDI_LAST),
			},
		},
	}

	return
}

// String returns a multi-line listing of the layout.
func (layout *Layout) String() (text string) {
	for _, region := range layout.Regions {
		text += fmt.Sprintf("%08x-%08x %v\n", region.Base, region.End()-1, region.Area)
	}
	text += fmt.Sprintf("%08x-%08x app\n", layout.AppAddr, uint64(layout.AppAddr)+uint64(layout.AppMaxSize)-1)

	for _, device := range layout.Devices {
		note := ""
		if device.EmulatorOnly {
			note = " (emulator only)"
		}
		text += fmt.Sprintf("%08x-%08x %v%v\n", device.Base, device.End()-1, device.Core, note)
		for _, reg := range device.Registers {
			note = ""
			if reg.Provisional {
				note = " (provisional)"
			}
			if reg.Words > 1 {
				text += fmt.Sprintf("  %08x-%08x %v.%v [%d words]%v\n", reg.Addr, reg.Last(), device.Core, reg.Name, reg.Words, note)
			} else {
				text += fmt.Sprintf("  %08x          %v.%v%v\n", reg.Addr, device.Core, reg.Name, note)
			}
			for _, bit := range reg.Bits {
				text += fmt.Sprintf("    bit %2d        %v\n", bit.Index, bit.Name)
			}
		}
	}

	return
}
