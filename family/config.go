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

// imxrt1180Code returns the configuration code for a two-bank 1180 layout,
// or -1 if the combination is not one the FlexRAM controller accepts.
func imxrt1180Code(layout flexram.Layout) int {
	itcm := layout.Count(flexram.ITCM)
	dtcm := layout.Count(flexram.DTCM)
	ocram := layout.Count(flexram.OCRAM)

	switch {
	case itcm == 1 && dtcm == 1 && ocram == 0:
		return 0b00
	case itcm == 0 && dtcm == 2 && ocram == 0:
		return 0b01
	case itcm == 2 && dtcm == 0 && ocram == 0:
		return 0b10
	}

	return -1
}

// SupportedRAMLayout returns true if the layout can be encoded as a
// configuration word for the family. Most families can encode any layout
// that fits in their bank count; the 1180 additionally restricts the layout
// to one of its legal whole-bank combinations (see RAMConfig).
func SupportedRAMLayout(f Family, layout flexram.Layout) bool {
	if len(layout) > f.FlexRAMBankCount() {
		return false
	}
	if f == Imxrt1180 {
		return imxrt1180Code(layout) >= 0
	}
	return true
}

// RAMConfig produces the configuration word describing the FlexRAM layout
// for the family. Target startup code writes the word to the FlexRAM
// controller before any statically initialised data is touched. On families
// with split upper/lower register fields the startup code is responsible for
// splitting the word; the encoding here is always a single 32-bit value.
//
// Most families use the general 2-bit-per-bank encoding of
// flexram.Layout.Config(). The 1180 is the exception: its two-bank FlexRAM
// accepts only a small enumeration of whole-bank combinations. The legal 1180
// combinations are 1 ITCM + 1 DTCM, 2 DTCM and 2 ITCM. Should a future 1180
// variant support a fourth combination it is unencodable by this scheme;
// there is no way to guess the code it would use.
//
// RAMConfig panics if SupportedRAMLayout() returns false for the family and
// layout. Callers producing user-facing errors should check
// SupportedRAMLayout() themselves, as the rtbuild validator does; the panic
// is a backstop for programming errors.
func RAMConfig(f Family, layout flexram.Layout) uint32 {
	if len(layout) > f.FlexRAMBankCount() {
		panic(fmt.Sprintf("FlexRAM layout contains too many banks for %s", f))
	}

	if f == Imxrt1180 {
		code := imxrt1180Code(layout)
		if code < 0 {
			panic("unsupported FlexRAM configuration for Imxrt1180")
		}
		return uint32(code)
	}

	return layout.Config()
}
