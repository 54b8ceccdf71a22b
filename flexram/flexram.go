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

package flexram

// Kind describes how a FlexRAM bank is being used.
//
// The numeric value of a Kind is the 2-bit code understood by the FlexRAM
// controller. The values must not be changed.
type Kind uint32

// The four possible uses of a FlexRAM bank.
const (
	Unused Kind = iota
	OCRAM
	DTCM
	ITCM
)

func (k Kind) String() string {
	switch k {
	case Unused:
		return "Unused"
	case OCRAM:
		return "OCRAM"
	case DTCM:
		return "DTCM"
	case ITCM:
		return "ITCM"
	}

	return "undefined"
}

// Layout is an ordered sequence of bank roles. The order is physically
// significant: the bank at index i occupies bits [2i:2i+1] of the
// configuration word.
type Layout []Kind

// Count returns the number of banks in the layout with the specified kind.
func (l Layout) Count(k Kind) int {
	n := 0
	for _, b := range l {
		if b == k {
			n++
		}
	}
	return n
}

// Config packs the layout into the 2-bit-per-bank configuration word.
//
// This is the general encoding and is not correct for every family. Use
// family.RAMConfig() unless you know the general encoding applies.
func (l Layout) Config() uint32 {
	var mask uint32
	var shift int
	for _, k := range l {
		mask |= uint32(k) << shift
		shift += 2
	}
	return mask
}

// LayoutFromConfig unpacks a configuration word into a layout of the
// specified number of banks. It is the reverse of Layout.Config().
func LayoutFromConfig(word uint32, banks int) Layout {
	l := make(Layout, banks)
	for i := range l {
		l[i] = Kind(word >> (2 * i) & 0b11)
	}
	return l
}

// Banks counts FlexRAM bank allocations by kind, for when the assignment of
// individual banks does not matter.
//
// The sum of all counts should be kept below or equal to the total number of
// banks supported by the family. Unallocated banks are disabled. Depending on
// the family, a non-zero number of OCRAM banks may be needed to support the
// boot ROM.
//
// Do not include banks that would represent dedicated OCRAM; the dedicated
// regions are always present and are accounted for separately. If the family
// includes dedicated OCRAM, OCRAM may be set to zero in order to maximise
// DTCM and ITCM utilisation.
type Banks struct {
	OCRAM int
	DTCM  int
	ITCM  int
}

// Total returns the total number of allocated banks.
func (b Banks) Total() int {
	return b.OCRAM + b.DTCM + b.ITCM
}

// Layout converts the counts into a canonical layout: all OCRAM banks first,
// then DTCM, then ITCM.
//
// The ordering is relied upon by tests and by published configuration words.
// It must not be changed.
func (b Banks) Layout() Layout {
	l := make(Layout, 0, b.Total())
	for i := 0; i < b.OCRAM; i++ {
		l = append(l, OCRAM)
	}
	for i := 0; i < b.DTCM; i++ {
		l = append(l, DTCM)
	}
	for i := 0; i < b.ITCM; i++ {
		l = append(l, ITCM)
	}
	return l
}
