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

package rtbuild

import (
	"github.com/imxrt-rs/imxrt-rt/curated"
	"github.com/imxrt-rs/imxrt-rt/family"
	"github.com/imxrt-rs/imxrt-rt/flexram"
)

// sentinel error patterns for the configuration checks, in the order the
// checks are made.
const (
	TooManyBanks         = "%s has only %d FlexRAM banks: cannot allocate a layout of %d banks"
	NotEnoughBootROMRAM  = "%s requires at least %d OCRAM banks for the boot ROM"
	UnsupportedFlexSPI   = "%s does not support %s"
	SectionInFlash       = "section '%s' cannot be placed in flash"
	UnencodableRAMLayout = "%s cannot encode a FlexRAM allocation of %d ITCM, %d DTCM and %d OCRAM banks"
)

// the sections that can never live in flash, in the order they are checked.
// flash is not writeable by ordinary stores so a mutable or load-time
// initialised section placed there could never function.
var neverFlash = []string{"data", "vectors", "bss", "uninit", "stack", "heap"}

func (b *Builder) sectionPlacement(name string) Memory {
	switch name {
	case "text":
		return b.text
	case "rodata":
		return b.rodata
	case "data":
		return b.data
	case "vectors":
		return b.vectors
	case "bss":
		return b.bss
	case "uninit":
		return b.uninit
	case "stack":
		return b.stack
	case "heap":
		return b.heap
	}

	panic("unknown section name")
}

// checkConfig implements the i.MX RT specific sanity checks. It is called
// once, before emission, and the first failed check wins.
//
// This might not check everything. If the linker can detect a condition,
// the linker is left to detect it.
func (b *Builder) checkConfig() error {
	if len(b.layout) > b.family.FlexRAMBankCount() {
		return curated.Errorf(TooManyBanks,
			b.family, b.family.FlexRAMBankCount(), len(b.layout))
	}

	if b.layout.Count(flexram.OCRAM) < b.family.BootROMOCRAMBanks() {
		return curated.Errorf(NotEnoughBootROMRAM,
			b.family, b.family.BootROMOCRAMBanks())
	}

	if b.flash != nil && !b.flash.flexspi.SupportedForFamily(b.family) {
		return curated.Errorf(UnsupportedFlexSPI, b.family, b.flash.flexspi)
	}

	for _, name := range neverFlash {
		if b.sectionPlacement(name) == Flash {
			return curated.Errorf(SectionInFlash, name)
		}
	}

	// a layout can fit in the bank count and still be unencodable. only the
	// 1180 has combinations like that
	if !family.SupportedRAMLayout(b.family, b.layout) {
		return curated.Errorf(UnencodableRAMLayout, b.family,
			b.layout.Count(flexram.ITCM),
			b.layout.Count(flexram.DTCM),
			b.layout.Count(flexram.OCRAM))
	}

	return nil
}
