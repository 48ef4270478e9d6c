package mem

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/tk1mem/internal"
)

// Symbol is a named constant of the memory map.
type Symbol struct {
	Name        string
	Value       uint32
	Comment     string
	Provisional bool // Not yet a stable hardware contract.
}

var regionSymbols = []Symbol{
	{"TK1_ROM_BASE", TK1_ROM_BASE, "0b00000000...", false},
	{"TK1_RAM_BASE", TK1_RAM_BASE, "0b01000000...", false},
	{"TK1_RAM_SIZE", TK1_RAM_SIZE, "128 KB", false},
	{"TK1_RESERVED_BASE", TK1_RESERVED_BASE, "0b10000000...", false},
	{"TK1_MMIO_BASE", TK1_MMIO_BASE, "0b11000000...", false},
	{"TK1_MMIO_SIZE", TK1_MMIO_SIZE, "", false},
	{"TK1_APP_ADDR", TK1_APP_ADDR, "28 KB of stack", false},
	{"TK1_APP_MAX_SIZE", TK1_APP_MAX_SIZE, "", false},
}

var coreSymbols = []Symbol{
	{"TK1_MMIO_TRNG_BASE", TK1_MMIO_TRNG_BASE, "", false},
	{"TK1_MMIO_TIMER_BASE", TK1_MMIO_TIMER_BASE, "", false},
	{"TK1_MMIO_UDS_BASE", TK1_MMIO_UDS_BASE, "", false},
	{"TK1_MMIO_UART_BASE", TK1_MMIO_UART_BASE, "", false},
	{"TK1_MMIO_TOUCH_BASE", TK1_MMIO_TOUCH_BASE, "", false},
	{"TK1_MMIO_FW_RAM_BASE", TK1_MMIO_FW_RAM_BASE, "", false},
	{"TK1_MMIO_FW_RAM_SIZE", TK1_MMIO_FW_RAM_SIZE, "", false},
	{"TK1_MMIO_QEMU_BASE", TK1_MMIO_QEMU_BASE, "This \"core\" only exists in QEMU", false},
	{"TK1_MMIO_TK1_BASE", TK1_MMIO_TK1_BASE, "", false},
}

var suffixSymbols = []Symbol{
	{"TK1_NAME0_SUFFIX", TK1_NAME0_SUFFIX, "", false},
	{"TK1_NAME1_SUFFIX", TK1_NAME1_SUFFIX, "", false},
	{"TK1_VERSION_SUFFIX", TK1_VERSION_SUFFIX, "", false},
}

var registerSymbols = []Symbol{
	{"TK1_MMIO_TRNG_STATUS", TK1_MMIO_TRNG_STATUS, "", false},
	{"TK1_MMIO_TRNG_STATUS_READY_BIT", TK1_MMIO_TRNG_STATUS_READY_BIT, "", false},
	{"TK1_MMIO_TRNG_ENTROPY", TK1_MMIO_TRNG_ENTROPY, "", false},

	{"TK1_MMIO_TIMER_CTRL", TK1_MMIO_TIMER_CTRL, "", false},
	{"TK1_MMIO_TIMER_STATUS", TK1_MMIO_TIMER_STATUS, "", false},
	{"TK1_MMIO_TIMER_STATUS_READY_BIT", TK1_MMIO_TIMER_STATUS_READY_BIT, "", false},
	{"TK1_MMIO_TIMER_PRESCALER", TK1_MMIO_TIMER_PRESCALER, "", false},
	{"TK1_MMIO_TIMER_TIMER", TK1_MMIO_TIMER_TIMER, "", false},

	{"TK1_MMIO_UDS_FIRST", TK1_MMIO_UDS_FIRST, "", false},
	{"TK1_MMIO_UDS_LAST", TK1_MMIO_UDS_LAST, "Address of last 32-bit word of UDS", false},

	{"TK1_MMIO_UART_BIT_RATE", TK1_MMIO_UART_BIT_RATE, "", false},
	{"TK1_MMIO_UART_DATA_BITS", TK1_MMIO_UART_DATA_BITS, "", false},
	{"TK1_MMIO_UART_STOP_BITS", TK1_MMIO_UART_STOP_BITS, "", false},
	{"TK1_MMIO_UART_RX_STATUS", TK1_MMIO_UART_RX_STATUS, "", false},
	{"TK1_MMIO_UART_RX_DATA", TK1_MMIO_UART_RX_DATA, "", false},
	{"TK1_MMIO_UART_TX_STATUS", TK1_MMIO_UART_TX_STATUS, "", false},
	{"TK1_MMIO_UART_TX_DATA", TK1_MMIO_UART_TX_DATA, "", false},

	{"TK1_MMIO_TOUCH_STATUS", TK1_MMIO_TOUCH_STATUS, "", false},
	{"TK1_MMIO_TOUCH_STATUS_EVENT_BIT", TK1_MMIO_TOUCH_STATUS_EVENT_BIT, "", false},

	{"TK1_MMIO_QEMU_UDA", TK1_MMIO_QEMU_UDA, "HW core/addr is not yet defined for this", true},
	{"TK1_MMIO_QEMU_DEBUG", TK1_MMIO_QEMU_DEBUG, "This will only ever exist in QEMU", false},

	{"TK1_MMIO_TK1_NAME0", TK1_MMIO_TK1_NAME0, "", false},
	{"TK1_MMIO_TK1_NAME1", TK1_MMIO_TK1_NAME1, "", false},
	{"TK1_MMIO_TK1_VERSION", TK1_MMIO_TK1_VERSION, "", false},
	{"TK1_MMIO_TK1_SWITCH_APP", TK1_MMIO_TK1_SWITCH_APP, "", false},
	{"TK1_MMIO_TK1_LED", TK1_MMIO_TK1_LED, "", false},
	{"TK1_MMIO_TK1_LED_R_BIT", TK1_MMIO_TK1_LED_R_BIT, "", false},
	{"TK1_MMIO_TK1_LED_G_BIT", TK1_MMIO_TK1_LED_G_BIT, "", false},
	{"TK1_MMIO_TK1_LED_B_BIT", TK1_MMIO_TK1_LED_B_BIT, "", false},
	{"TK1_MMIO_TK1_GPIO", TK1_MMIO_TK1_GPIO, "", false},
	{"TK1_MMIO_TK1_GPIO1_BIT", TK1_MMIO_TK1_GPIO1_BIT, "", false},
	{"TK1_MMIO_TK1_GPIO2_BIT", TK1_MMIO_TK1_GPIO2_BIT, "", false},
	{"TK1_MMIO_TK1_GPIO3_BIT", TK1_MMIO_TK1_GPIO3_BIT, "", false},
	{"TK1_MMIO_TK1_GPIO4_BIT", TK1_MMIO_TK1_GPIO4_BIT, "", false},
	{"TK1_MMIO_TK1_APP_ADDR", TK1_MMIO_TK1_APP_ADDR, "", false},
	{"TK1_MMIO_TK1_APP_SIZE", TK1_MMIO_TK1_APP_SIZE, "", false},
	{"TK1_MMIO_TK1_CDI_FIRST", TK1_MMIO_TK1_CDI_FIRST, "", false},
	{"TK1_MMIO_TK1_CDI_LAST", TK1_MMIO_TK1_CDI_LAST, "Address of last 32-bit word of CDI.", false},
	{"TK1_MMIO_TK1_UDI_FIRST", TK1_MMIO_TK1_UDI_FIRST, "", false},
	{"TK1_MMIO_TK1_UDI_LAST", TK1_MMIO_TK1_UDI_LAST, "Address of last 32-bit word of UDI.", false},
}

// Symbols returns every constant of the canonical header, in header order.
func Symbols() []Symbol {
	return slices.Collect(internal.IterSeqConcat(
		slices.Values(regionSymbols),
		slices.Values(coreSymbols),
		slices.Values(suffixSymbols),
		slices.Values(registerSymbols),
	))
}

// Defines returns an iterator over all constant names and their values.
func Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		symbolDefines(regionSymbols),
		symbolDefines(coreSymbols),
		symbolDefines(suffixSymbols),
		symbolDefines(registerSymbols),
	)
}

func symbolDefines(symbols []Symbol) iter.Seq2[string, string] {
	return func(yield func(name string, value string) bool) {
		for _, sym := range symbols {
			if !yield(sym.Name, fmt.Sprintf("%#x", sym.Value)) {
				return
			}
		}
	}
}

// Defines returns the constants naming the device base and its registers.
func (device *Device) Defines() iter.Seq2[string, string] {
	prefix := strings.TrimSuffix(device.Symbol, "BASE")
	return internal.IterSeq2Filter(Defines(), func(name string, _ string) bool {
		return strings.HasPrefix(name, prefix)
	})
}
