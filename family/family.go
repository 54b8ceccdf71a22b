// This file is part of imxrt-rt.
//
// imxrt-rt is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// imxrt-rt is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with imxrt-rt.  If not, see <https://www.gnu.org/licenses/>.

package family

import (
	"fmt"

	"github.com/imxrt-rs/imxrt-rt/flexram"
)

// Family represents an i.MX RT chip family. Families are designated by
// reference manuals and product categories.
type Family int

// The supported chip families.
const (
	Imxrt1010 Family = iota
	Imxrt1015
	Imxrt1020
	Imxrt1040
	Imxrt1050
	Imxrt1060
	Imxrt1064
	Imxrt1160
	Imxrt1170
	Imxrt1180
)

// List is every supported family. Useful for callers and tests that want to
// cover the whole range.
var List = []Family{
	Imxrt1010,
	Imxrt1015,
	Imxrt1020,
	Imxrt1040,
	Imxrt1050,
	Imxrt1060,
	Imxrt1064,
	Imxrt1160,
	Imxrt1170,
	Imxrt1180,
}

func (f Family) String() string {
	switch f {
	case Imxrt1010:
		return "Imxrt1010"
	case Imxrt1015:
		return "Imxrt1015"
	case Imxrt1020:
		return "Imxrt1020"
	case Imxrt1040:
		return "Imxrt1040"
	case Imxrt1050:
		return "Imxrt1050"
	case Imxrt1060:
		return "Imxrt1060"
	case Imxrt1064:
		return "Imxrt1064"
	case Imxrt1160:
		return "Imxrt1160"
	case Imxrt1170:
		return "Imxrt1170"
	case Imxrt1180:
		return "Imxrt1180"
	}

	return "undefined"
}

// ID returns the family identifier.
//
// The identifier is stored in the generated image and observed by the target
// startup routine to select family specific initialisation. The values must
// be kept in sync with the hard-coded comparisons in that routine.
func (f Family) ID() uint32 {
	switch f {
	case Imxrt1010:
		return 0x1010
	case Imxrt1015:
		return 0x1015
	case Imxrt1020:
		return 0x1020
	case Imxrt1040:
		return 0x1040
	case Imxrt1050:
		return 0x1050
	case Imxrt1060:
		return 0x1060
	case Imxrt1064:
		return 0x1064
	case Imxrt1160:
		return 0x1160
	case Imxrt1170:
		return 0x1170
	case Imxrt1180:
		return 0x1180
	}

	panic(fmt.Sprintf("no ID for family %d", int(f)))
}

// FlexRAMBankCount returns the number of FlexRAM banks available.
func (f Family) FlexRAMBankCount() int {
	switch f {
	case Imxrt1010, Imxrt1015:
		return 4
	case Imxrt1020:
		return 8
	case Imxrt1040, Imxrt1050, Imxrt1060, Imxrt1064:
		return 16
	case Imxrt1160, Imxrt1170:
		// no ECC support; treating all banks as equal
		return 16
	case Imxrt1180:
		return 2
	}

	panic(fmt.Sprintf("no FlexRAM bank count for family %d", int(f)))
}

// FlexRAMBankSize returns the size in bytes of each FlexRAM bank.
func (f Family) FlexRAMBankSize() int {
	switch f {
	case Imxrt1010, Imxrt1015, Imxrt1020, Imxrt1040, Imxrt1050,
		Imxrt1060, Imxrt1064, Imxrt1160, Imxrt1170:
		return 32 * 1024
	case Imxrt1180:
		return 128 * 1024
	}

	panic(fmt.Sprintf("no FlexRAM bank size for family %d", int(f)))
}

// BootROMOCRAMBanks returns the minimum number of FlexRAM OCRAM banks needed
// by the boot ROM.
func (f Family) BootROMOCRAMBanks() int {
	switch f {
	case Imxrt1010, Imxrt1015, Imxrt1020, Imxrt1040, Imxrt1050:
		return 1
	case Imxrt1060, Imxrt1064:
		// 9.5.1. memory maps point at OCRAM2
		return 0
	case Imxrt1160, Imxrt1170, Imxrt1180:
		// boot ROM uses dedicated OCRAM1
		return 0
	}

	panic(fmt.Sprintf("no boot ROM OCRAM bank count for family %d", int(f)))
}

// FCBOffset returns the byte offset of the FlexSPI configuration bank within
// the flash image.
func (f Family) FCBOffset() int {
	switch f {
	case Imxrt1010, Imxrt1160, Imxrt1170, Imxrt1180:
		return 0x400
	case Imxrt1015, Imxrt1020, Imxrt1040, Imxrt1050, Imxrt1060, Imxrt1064:
		return 0x000
	}

	panic(fmt.Sprintf("no FCB offset for family %d", int(f)))
}

// OCRAMStart returns the address where the OCRAM region begins. The region
// includes any dedicated OCRAM, if the chip has any.
func (f Family) OCRAMStart() uint32 {
	switch f {
	case Imxrt1170:
		// 256 KiB offset from the OCRAM M4 backdoor
		return 0x2024_0000
	case Imxrt1160:
		// using the alias regions, assuming ECC is disabled. the two alias
		// regions, plus the ECC region, provide the *contiguous* 256 KiB of
		// dedicated OCRAM
		return 0x2034_0000
	case Imxrt1180:
		// skip the first 16 KiB, "cannot be safely used by application
		// images"
		return 0x2048_4000
	case Imxrt1010, Imxrt1015, Imxrt1020, Imxrt1040, Imxrt1050, Imxrt1060, Imxrt1064:
		// either starts the FlexRAM OCRAM banks, or the dedicated OCRAM
		// regions (for supported devices)
		return 0x2020_0000
	}

	panic(fmt.Sprintf("no OCRAM start address for family %d", int(f)))
}

// DedicatedOCRAMSize returns the size in bytes of the dedicated OCRAM
// section. Not every chip has one.
func (f Family) DedicatedOCRAMSize() int {
	switch f {
	case Imxrt1010, Imxrt1015, Imxrt1020, Imxrt1040, Imxrt1050:
		return 0
	case Imxrt1060, Imxrt1064:
		return 512 * 1024
	case Imxrt1160:
		// two dedicated OCRAMs plus one FlexRAM OCRAM ECC region that's
		// OCRAM when ECC is disabled
		return (2*64 + 128) * 1024
	case Imxrt1170:
		// two dedicated OCRAMs; two dedicated OCRAM ECC regions that aren't
		// used for ECC; one FlexRAM OCRAM ECC region that's strictly OCRAM,
		// without ECC
		return (2*512 + 2*64 + 128) * 1024
	case Imxrt1180:
		// OCRAM1 (512k), OCRAM2 (256k), 16k reserved as a ROM patch area
		return (512 + 256 - 16) * 1024
	}

	panic(fmt.Sprintf("no dedicated OCRAM size for family %d", int(f)))
}

// DefaultFlexRAMBanks returns the default FlexRAM bank allocations for the
// family. The defaults represent the all-zero fuse values.
func (f Family) DefaultFlexRAMBanks() flexram.Banks {
	switch f {
	case Imxrt1010, Imxrt1015:
		return flexram.Banks{OCRAM: 2, DTCM: 1, ITCM: 1}
	case Imxrt1020:
		return flexram.Banks{OCRAM: 4, DTCM: 2, ITCM: 2}
	case Imxrt1040, Imxrt1050, Imxrt1060, Imxrt1064:
		return flexram.Banks{OCRAM: 8, DTCM: 4, ITCM: 4}
	case Imxrt1160, Imxrt1170:
		return flexram.Banks{OCRAM: 0, DTCM: 8, ITCM: 8}
	case Imxrt1180:
		return flexram.Banks{OCRAM: 0, DTCM: 1, ITCM: 1}
	}

	panic(fmt.Sprintf("no default FlexRAM banks for family %d", int(f)))
}

// DefaultFlexRAMLayout returns the default FlexRAM bank layout for the
// family. The defaults represent the all-zero fuse values. See AN12077 for
// details.
func (f Family) DefaultFlexRAMLayout() flexram.Layout {
	switch f {
	case Imxrt1010, Imxrt1015:
		return flexram.Layout{
			flexram.OCRAM,
			flexram.OCRAM,
			flexram.DTCM,
			flexram.ITCM,
		}
	case Imxrt1020:
		return flexram.Layout{
			flexram.OCRAM,
			flexram.OCRAM,
			flexram.DTCM,
			flexram.DTCM,
			flexram.ITCM,
			flexram.ITCM,
			flexram.OCRAM,
			flexram.OCRAM,
		}
	case Imxrt1040, Imxrt1050, Imxrt1060, Imxrt1064:
		// 1040 layout described in table 22-9 of the RM. it's not covered
		// in AN12077
		return flexram.Layout{
			flexram.OCRAM,
			flexram.OCRAM,
			flexram.OCRAM,
			flexram.OCRAM,
			flexram.DTCM,
			flexram.DTCM,
			flexram.ITCM,
			flexram.ITCM,
			flexram.ITCM,
			flexram.ITCM,
			flexram.DTCM,
			flexram.DTCM,
			flexram.OCRAM,
			flexram.OCRAM,
			flexram.OCRAM,
			flexram.OCRAM,
		}
	case Imxrt1160, Imxrt1170:
		return flexram.Layout{
			flexram.DTCM,
			flexram.DTCM,
			flexram.DTCM,
			flexram.DTCM,
			flexram.ITCM,
			flexram.ITCM,
			flexram.ITCM,
			flexram.ITCM,
			flexram.DTCM,
			flexram.DTCM,
			flexram.DTCM,
			flexram.DTCM,
			flexram.ITCM,
			flexram.ITCM,
			flexram.ITCM,
			flexram.ITCM,
		}
	case Imxrt1180:
		// layout doesn't matter; there are only three configurations
		return flexram.Layout{flexram.ITCM, flexram.DTCM}
	}

	panic(fmt.Sprintf("no default FlexRAM layout for family %d", int(f)))
}

// ITCMStartSize returns the start address and size of the ITCM memory region
// for the given number of ITCM banks.
func (f Family) ITCMStartSize(itcmBanks int) (uint32, int) {
	size := itcmBanks * f.FlexRAMBankSize()

	switch f {
	case Imxrt1010, Imxrt1015, Imxrt1020, Imxrt1040, Imxrt1050,
		Imxrt1060, Imxrt1064, Imxrt1160, Imxrt1170:
		// establish a reservation for null pointers. the reservation is the
		// minimum size of an MPU region
		if size >= 32 {
			size -= 32
		} else {
			size = 0
		}
		return 32, size
	case Imxrt1180:
		return 0x1000_0000 - uint32(size), size
	}

	panic(fmt.Sprintf("no ITCM start address for family %d", int(f)))
}
