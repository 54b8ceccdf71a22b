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

// FlexSPI identifies the FlexSPI peripheral that interfaces the flash chip.
//
// Not every family supports every FlexSPI instance. StartAddress() reports
// whether an instance is supported.
type FlexSPI int

// The possible FlexSPI instances.
const (
	FlexSPI1 FlexSPI = iota
	FlexSPI2
)

func (s FlexSPI) String() string {
	switch s {
	case FlexSPI1:
		return "FlexSPI1"
	case FlexSPI2:
		return "FlexSPI2"
	}

	return "undefined"
}

// DefaultFlexSPI returns the FlexSPI instance that boots the family by
// default. The 1064 boots from FlexSPI2 in order to utilise its on-package
// flash; every other family boots from FlexSPI1.
func DefaultFlexSPI(f Family) FlexSPI {
	switch f {
	case Imxrt1064:
		return FlexSPI2
	case Imxrt1010, Imxrt1015, Imxrt1020, Imxrt1040, Imxrt1050,
		Imxrt1060, Imxrt1160, Imxrt1170, Imxrt1180:
		return FlexSPI1
	}

	panic("no default FlexSPI instance for family")
}

// StartAddress returns the address where the FlexSPI instance's flash window
// begins in the family's memory map. The second return value is false if the
// instance is not available on the family.
func (s FlexSPI) StartAddress(f Family) (uint32, bool) {
	switch s {
	case FlexSPI1:
		switch f {
		case Imxrt1010, Imxrt1015, Imxrt1020, Imxrt1040, Imxrt1050, Imxrt1060, Imxrt1064:
			return 0x6000_0000, true
		case Imxrt1160, Imxrt1170:
			return 0x3000_0000, true
		case Imxrt1180:
			return 0x2800_0000, true
		}
	case FlexSPI2:
		switch f {
		case Imxrt1010, Imxrt1015, Imxrt1020, Imxrt1050:
			// FlexSPI2 not available on these families
			return 0, false
		case Imxrt1040, Imxrt1060, Imxrt1064:
			return 0x7000_0000, true
		case Imxrt1160, Imxrt1170:
			return 0x6000_0000, true
		case Imxrt1180:
			return 0x0400_0000, true
		}
	}

	return 0, false
}

// SupportedForFamily returns true if the FlexSPI instance is available on the
// family.
func (s FlexSPI) SupportedForFamily(f Family) bool {
	_, ok := s.StartAddress(f)
	return ok
}
