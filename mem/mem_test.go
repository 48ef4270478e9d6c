package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstants(t *testing.T) {
	assert := assert.New(t)

	table := map[string]struct {
		got  uint64
		want uint64
	}{
		"TK1_ROM_BASE":      {TK1_ROM_BASE, 0x00000000},
		"TK1_RAM_BASE":      {TK1_RAM_BASE, 0x40000000},
		"TK1_RAM_SIZE":      {TK1_RAM_SIZE, 0x20000},
		"TK1_RESERVED_BASE": {TK1_RESERVED_BASE, 0x80000000},
		"TK1_MMIO_BASE":     {TK1_MMIO_BASE, 0xc0000000},
		"TK1_MMIO_SIZE":     {TK1_MMIO_SIZE, 0x3fffffff},
		"TK1_APP_ADDR":      {TK1_APP_ADDR, 0x40007000},
		"TK1_APP_MAX_SIZE":  {TK1_APP_MAX_SIZE, 0x19000},

		"TK1_MMIO_TRNG_BASE":   {TK1_MMIO_TRNG_BASE, 0xc0000000},
		"TK1_MMIO_TIMER_BASE":  {TK1_MMIO_TIMER_BASE, 0xc1000000},
		"TK1_MMIO_UDS_BASE":    {TK1_MMIO_UDS_BASE, 0xc2000000},
		"TK1_MMIO_UART_BASE":   {TK1_MMIO_UART_BASE, 0xc3000000},
		"TK1_MMIO_TOUCH_BASE":  {TK1_MMIO_TOUCH_BASE, 0xc4000000},
		"TK1_MMIO_FW_RAM_BASE": {TK1_MMIO_FW_RAM_BASE, 0xd0000000},
		"TK1_MMIO_FW_RAM_SIZE": {TK1_MMIO_FW_RAM_SIZE, 1024},
		"TK1_MMIO_QEMU_BASE":   {TK1_MMIO_QEMU_BASE, 0xfe000000},
		"TK1_MMIO_TK1_BASE":    {TK1_MMIO_TK1_BASE, 0xff000000},

		"TK1_NAME0_SUFFIX":   {TK1_NAME0_SUFFIX, 0x00},
		"TK1_NAME1_SUFFIX":   {TK1_NAME1_SUFFIX, 0x04},
		"TK1_VERSION_SUFFIX": {TK1_VERSION_SUFFIX, 0x08},

		"TK1_MMIO_TRNG_STATUS":           {TK1_MMIO_TRNG_STATUS, 0xc0000024},
		"TK1_MMIO_TRNG_STATUS_READY_BIT": {TK1_MMIO_TRNG_STATUS_READY_BIT, 0},
		"TK1_MMIO_TRNG_ENTROPY":          {TK1_MMIO_TRNG_ENTROPY, 0xc0000080},

		"TK1_MMIO_TIMER_CTRL":             {TK1_MMIO_TIMER_CTRL, 0xc1000020},
		"TK1_MMIO_TIMER_STATUS":           {TK1_MMIO_TIMER_STATUS, 0xc1000024},
		"TK1_MMIO_TIMER_STATUS_READY_BIT": {TK1_MMIO_TIMER_STATUS_READY_BIT, 0},
		"TK1_MMIO_TIMER_PRESCALER":        {TK1_MMIO_TIMER_PRESCALER, 0xc1000028},
		"TK1_MMIO_TIMER_TIMER":            {TK1_MMIO_TIMER_TIMER, 0xc100002c},

		"TK1_MMIO_UDS_FIRST": {TK1_MMIO_UDS_FIRST, 0xc2000040},
		"TK1_MMIO_UDS_LAST":  {TK1_MMIO_UDS_LAST, 0xc200005c},

		"TK1_MMIO_UART_BIT_RATE":  {TK1_MMIO_UART_BIT_RATE, 0xc3000040},
		"TK1_MMIO_UART_DATA_BITS": {TK1_MMIO_UART_DATA_BITS, 0xc3000044},
		"TK1_MMIO_UART_STOP_BITS": {TK1_MMIO_UART_STOP_BITS, 0xc3000048},
		"TK1_MMIO_UART_RX_STATUS": {TK1_MMIO_UART_RX_STATUS, 0xc3000080},
		"TK1_MMIO_UART_RX_DATA":   {TK1_MMIO_UART_RX_DATA, 0xc3000084},
		"TK1_MMIO_UART_TX_STATUS": {TK1_MMIO_UART_TX_STATUS, 0xc3000100},
		"TK1_MMIO_UART_TX_DATA":   {TK1_MMIO_UART_TX_DATA, 0xc3000104},

		"TK1_MMIO_TOUCH_STATUS":           {TK1_MMIO_TOUCH_STATUS, 0xc4000024},
		"TK1_MMIO_TOUCH_STATUS_EVENT_BIT": {TK1_MMIO_TOUCH_STATUS_EVENT_BIT, 0},

		"TK1_MMIO_QEMU_UDA":   {TK1_MMIO_QEMU_UDA, 0xfe000020},
		"TK1_MMIO_QEMU_DEBUG": {TK1_MMIO_QEMU_DEBUG, 0xfe001000},

		"TK1_MMIO_TK1_NAME0":      {TK1_MMIO_TK1_NAME0, 0xff000000},
		"TK1_MMIO_TK1_NAME1":      {TK1_MMIO_TK1_NAME1, 0xff000004},
		"TK1_MMIO_TK1_VERSION":    {TK1_MMIO_TK1_VERSION, 0xff000008},
		"TK1_MMIO_TK1_SWITCH_APP": {TK1_MMIO_TK1_SWITCH_APP, 0xff000020},
		"TK1_MMIO_TK1_LED":        {TK1_MMIO_TK1_LED, 0xff000024},
		"TK1_MMIO_TK1_LED_R_BIT":  {TK1_MMIO_TK1_LED_R_BIT, 2},
		"TK1_MMIO_TK1_LED_G_BIT":  {TK1_MMIO_TK1_LED_G_BIT, 1},
		"TK1_MMIO_TK1_LED_B_BIT":  {TK1_MMIO_TK1_LED_B_BIT, 0},
		"TK1_MMIO_TK1_GPIO":       {TK1_MMIO_TK1_GPIO, 0xff000028},
		"TK1_MMIO_TK1_GPIO1_BIT":  {TK1_MMIO_TK1_GPIO1_BIT, 0},
		"TK1_MMIO_TK1_GPIO2_BIT":  {TK1_MMIO_TK1_GPIO2_BIT, 1},
		"TK1_MMIO_TK1_GPIO3_BIT":  {TK1_MMIO_TK1_GPIO3_BIT, 2},
		"TK1_MMIO_TK1_GPIO4_BIT":  {TK1_MMIO_TK1_GPIO4_BIT, 3},
		"TK1_MMIO_TK1_APP_ADDR":   {TK1_MMIO_TK1_APP_ADDR, 0xff000030},
		"TK1_MMIO_TK1_APP_SIZE":   {TK1_MMIO_TK1_APP_SIZE, 0xff000034},
		"TK1_MMIO_TK1_CDI_FIRST":  {TK1_MMIO_TK1_CDI_FIRST, 0xff000080},
		"TK1_MMIO_TK1_CDI_LAST":   {TK1_MMIO_TK1_CDI_LAST, 0xff00009c},
		"TK1_MMIO_TK1_UDI_FIRST":  {TK1_MMIO_TK1_UDI_FIRST, 0xff0000c0},
		"TK1_MMIO_TK1_UDI_LAST":   {TK1_MMIO_TK1_UDI_LAST, 0xff0000c4},
	}

	for name, entry := range table {
		assert.Equal(entry.want, entry.got, name)
	}

	// Every symbol of the header is covered above.
	syms := Symbols()
	assert.Equal(len(table), len(syms))
	for _, sym := range syms {
		entry, ok := table[sym.Name]
		if assert.True(ok, sym.Name) {
			assert.Equal(entry.want, uint64(sym.Value), sym.Name)
		}
	}
}

func TestRegionOrder(t *testing.T) {
	assert := assert.New(t)

	assert.Less(uint32(TK1_ROM_BASE), uint32(TK1_RAM_BASE))
	assert.Less(uint32(TK1_RAM_BASE), uint32(TK1_RESERVED_BASE))
	assert.Less(uint32(TK1_RESERVED_BASE), uint32(TK1_MMIO_BASE))
	assert.LessOrEqual(uint32(TK1_RAM_BASE+TK1_RAM_SIZE), uint32(TK1_RESERVED_BASE))
	assert.LessOrEqual(uint64(TK1_MMIO_BASE)+TK1_MMIO_SIZE, uint64(1)<<32)
}

func TestAppWindow(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint32(TK1_RAM_BASE+0x7000), uint32(TK1_APP_ADDR))
	assert.Equal(uint32(TK1_RAM_SIZE-0x7000), uint32(TK1_APP_MAX_SIZE))
	assert.Equal(uint32(TK1_RAM_BASE+TK1_RAM_SIZE), uint32(TK1_APP_ADDR+TK1_APP_MAX_SIZE))
}

func TestCoreBases(t *testing.T) {
	assert := assert.New(t)

	bases := []uint32{
		TK1_MMIO_TRNG_BASE,
		TK1_MMIO_TIMER_BASE,
		TK1_MMIO_UDS_BASE,
		TK1_MMIO_UART_BASE,
		TK1_MMIO_TOUCH_BASE,
		TK1_MMIO_FW_RAM_BASE,
		TK1_MMIO_QEMU_BASE,
		TK1_MMIO_TK1_BASE,
	}

	seen := map[uint32]bool{}
	for _, base := range bases {
		assert.False(seen[base], "0x%08x", base)
		seen[base] = true
		assert.Equal(uint32(TK1_MMIO_BASE), base&TK1_MMIO_BASE)
		assert.Zero(base%TK1_MMIO_CORE_WINDOW, "0x%08x", base)
	}
}

func TestKeyMaterialSpans(t *testing.T) {
	assert := assert.New(t)

	spans := map[string][2]uint32{
		"uds": {TK1_MMIO_UDS_FIRST, TK1_MMIO_UDS_LAST},
		"cdi": {TK1_MMIO_TK1_CDI_FIRST, TK1_MMIO_TK1_CDI_LAST},
		"udi": {TK1_MMIO_TK1_UDI_FIRST, TK1_MMIO_TK1_UDI_LAST},
	}

	for name, span := range spans {
		assert.Greater(span[1], span[0], name)
		assert.Zero((span[1]-span[0])%TK1_WORD_SIZE, name)
	}

	// 256-bit UDS and CDI, 64-bit UDI.
	assert.Equal(uint32(7*4), spans["uds"][1]-spans["uds"][0])
	assert.Equal(uint32(7*4), spans["cdi"][1]-spans["cdi"][0])
	assert.Equal(uint32(1*4), spans["udi"][1]-spans["udi"][0])
}

func TestBitIndexes(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, TK1_MMIO_TK1_LED_R_BIT)
	assert.Equal(1, TK1_MMIO_TK1_LED_G_BIT)
	assert.Equal(0, TK1_MMIO_TK1_LED_B_BIT)

	groups := map[string][]int{
		"led":  {TK1_MMIO_TK1_LED_R_BIT, TK1_MMIO_TK1_LED_G_BIT, TK1_MMIO_TK1_LED_B_BIT},
		"gpio": {TK1_MMIO_TK1_GPIO1_BIT, TK1_MMIO_TK1_GPIO2_BIT, TK1_MMIO_TK1_GPIO3_BIT, TK1_MMIO_TK1_GPIO4_BIT},
	}

	for name, bits := range groups {
		seen := map[int]bool{}
		for _, bit := range bits {
			assert.False(seen[bit], name)
			seen[bit] = true
			assert.GreaterOrEqual(bit, 0)
			assert.Less(bit, 32)
		}
	}
}

func TestStringers(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("rom", AREA_ROM.String())
	assert.Equal("reserved", AREA_RESERVED.String())
	assert.Equal("mmio", AREA_MMIO.String())
	assert.Equal("Area(9)", Area(9).String())

	assert.Equal("trng", CORE_TRNG.String())
	assert.Equal("fw_ram", CORE_FW_RAM.String())
	assert.Equal("tk1", CORE_TK1.String())
	assert.Equal("Core(-1)", Core(-1).String())
}
