package mem

import (
	"errors"
	"fmt"
	"slices"
)

// Check verifies the layout invariants, and returns every violation found.
func (layout *Layout) Check() (err error) {
	var errs []error

	violate := func(rule string, subject string, err error) {
		errs = append(errs, &ErrInvariant{Rule: rule, Subject: subject, Err: err})
	}

	// Regions are ordered and disjoint.
	for n, region := range layout.Regions {
		if region.End() > 1<<32 {
			violate("region", region.Area.String(), ErrBounds)
		}
		if n == 0 {
			continue
		}
		prev := layout.Regions[n-1]
		if prev.Base >= region.Base {
			violate("region", region.Area.String(), ErrOrder)
		} else if prev.End() > uint64(region.Base) {
			violate("region", fmt.Sprintf("%v/%v", prev.Area, region.Area), ErrOverlap)
		}
	}

	// Application window sits at the top of RAM.
	var ram *Region
	var mmio *Region
	for _, region := range layout.Regions {
		switch region.Area {
		case AREA_RAM:
			ram = region
		case AREA_MMIO:
			mmio = region
		}
	}
	if ram == nil {
		violate("app", "ram", ErrAppLayout)
	} else {
		app_end := uint64(layout.AppAddr) + uint64(layout.AppMaxSize)
		if layout.AppAddr < ram.Base || app_end != ram.End() {
			violate("app", fmt.Sprintf("0x%08x+0x%x", layout.AppAddr, layout.AppMaxSize), ErrAppLayout)
		}
	}

	// Devices are unique, disjoint, and inside MMIO.
	devices := slices.Clone(layout.Devices)
	slices.SortStableFunc(devices, func(a, b *Device) int {
		switch {
		case a.Base < b.Base:
			return -1
		case a.Base > b.Base:
			return 1
		}
		return 0
	})
	for n, device := range devices {
		name := device.Core.String()
		if mmio == nil || device.Base < mmio.Base || device.End() > mmio.End() {
			violate("device", name, ErrBounds)
		}
		if n > 0 {
			prev := devices[n-1]
			if prev.Base == device.Base {
				violate("device", fmt.Sprintf("%v/%v", prev, device), ErrDuplicate)
			} else if prev.End() > uint64(device.Base) {
				violate("device", fmt.Sprintf("%v/%v", prev, device), ErrOverlap)
			}
		}
		errs = append(errs, device.check()...)
	}

	err = errors.Join(errs...)
	return
}

// check verifies the registers of a single device.
func (device *Device) check() (errs []error) {
	violate := func(rule string, reg *Register, err error) {
		subject := fmt.Sprintf("%v.%v", device.Core, reg.Name)
		errs = append(errs, &ErrInvariant{Rule: rule, Subject: subject, Err: err})
	}

	for n, reg := range device.Registers {
		if reg.Words < 1 {
			violate("register", reg, ErrSpan)
			continue
		}
		if reg.Addr%TK1_WORD_SIZE != 0 {
			violate("register", reg, ErrAlignment)
		}
		if !device.Contains(reg.Addr) || reg.End() > device.End() {
			violate("register", reg, ErrBounds)
		}
		for _, other := range device.Registers[:n] {
			if other.Words < 1 {
				continue
			}
			if uint64(reg.Addr) < other.End() && uint64(other.Addr) < reg.End() {
				violate("register", reg, ErrOverlap)
			}
		}

		seen := map[int]bool{}
		for _, bit := range reg.Bits {
			if bit.Index < 0 || bit.Index > 31 {
				violate("bit "+bit.Name, reg, ErrBitIndex)
				continue
			}
			if seen[bit.Index] {
				violate("bit "+bit.Name, reg, ErrDuplicate)
			}
			seen[bit.Index] = true
		}
	}

	return
}
