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
	_ "embed"

	"github.com/imxrt-rs/imxrt-rt/family"
)

// The fixed linker script fragments bundled into every generated script.
// They are versioned assets, emitted verbatim and never parsed; the
// generator's only decision is which boot header a family needs.

//go:embed assets/imxrt-link.x
var linkScript []byte

//go:embed assets/imxrt-boot-header.x
var bootHeader []byte

//go:embed assets/imxrt-boot-header-1180.x
var bootHeader1180 []byte

// bootHeaderForFamily returns the boot header fragment appropriate to the
// family.
func bootHeaderForFamily(f family.Family) []byte {
	switch f {
	case family.Imxrt1180:
		return bootHeader1180
	case family.Imxrt1010, family.Imxrt1015, family.Imxrt1020,
		family.Imxrt1040, family.Imxrt1050, family.Imxrt1060,
		family.Imxrt1064, family.Imxrt1160, family.Imxrt1170:
		return bootHeader
	}

	panic("no boot header for family")
}
