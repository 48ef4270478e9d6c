package mem

import (
	"fmt"
	"strings"
)

// Location is a decoded address.
type Location struct {
	Addr     uint32
	Region   *Region   // Region holding the address.
	Device   *Device   // Core decoding the address, if any.
	Register *Register // Register holding the address, if any.
	Word     int       // Word index inside a multi-word register.
	Offset   uint32    // Byte offset inside the word.
}

func (loc Location) String() (text string) {
	text = fmt.Sprintf("0x%08x %v", loc.Addr, loc.Region.Area)
	if loc.Device == nil {
		text += fmt.Sprintf("+0x%x", loc.Addr-loc.Region.Base)
		return
	}

	text += "." + loc.Device.Core.String()
	if loc.Register == nil {
		text += fmt.Sprintf("+0x%x", loc.Addr-loc.Device.Base)
		return
	}

	text += "." + loc.Register.Name
	if loc.Register.Words > 1 {
		text += fmt.Sprintf("[%d]", loc.Word)
	}
	if loc.Offset != 0 {
		text += fmt.Sprintf("+%d", loc.Offset)
	}
	if loc.Register.Provisional {
		text += " " + f("(provisional)")
	}

	return
}

// Region returns the region holding addr.
func (layout *Layout) Region(addr uint32) (region *Region, err error) {
	for _, region = range layout.Regions {
		if region.Contains(addr) {
			return
		}
	}

	region = nil
	err = &ErrAddress{Addr: addr, Err: ErrAddressUnmapped}
	return
}

// Device returns the core decoding addr.
func (layout *Layout) Device(addr uint32) (device *Device, err error) {
	region, err := layout.Region(addr)
	if err != nil {
		return
	}

	if region.Area != AREA_MMIO {
		err = &ErrAddress{Addr: addr, Err: ErrAddressUnmapped}
		return
	}

	for _, device = range layout.Devices {
		if device.Contains(addr) {
			return
		}
	}

	device = nil
	err = &ErrAddress{Addr: addr, Err: ErrDeviceUnknown}
	return
}

// Decode resolves addr to its region, and if in MMIO, to its core and register.
func (layout *Layout) Decode(addr uint32) (loc Location, err error) {
	loc.Addr = addr

	loc.Region, err = layout.Region(addr)
	if err != nil {
		return
	}

	if loc.Region.Area != AREA_MMIO {
		return
	}

	for _, device := range layout.Devices {
		if device.Contains(addr) {
			loc.Device = device
			break
		}
	}

	if loc.Device == nil {
		return
	}

	for _, reg := range loc.Device.Registers {
		if reg.Contains(addr) {
			loc.Register = reg
			loc.Word = int((addr - reg.Addr) / TK1_WORD_SIZE)
			loc.Offset = (addr - reg.Addr) % TK1_WORD_SIZE
			break
		}
	}

	return
}

// Register finds a register by constant name (TK1_MMIO_TK1_LED), or by
// core and register name (tk1.led). Names are not case sensitive.
func (layout *Layout) Register(name string) (device *Device, reg *Register, err error) {
	core, short, dotted := strings.Cut(strings.ToLower(name), ".")

	for _, device = range layout.Devices {
		for _, reg = range device.Registers {
			if dotted {
				if core == device.Core.String() && short == reg.Name {
					return
				}
				continue
			}
			if strings.EqualFold(name, reg.Symbol) {
				return
			}
			if len(reg.LastSymbol) != 0 && strings.EqualFold(name, reg.LastSymbol) {
				return
			}
		}
	}

	device = nil
	reg = nil
	err = ErrRegisterUnknown
	return
}
