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

// Memory represents the memory partitions a section can be placed in.
//
// The builder only does limited checks on memory placements. Generally, it's
// OK to place data in ITCM and instructions in DTCM, although this isn't
// recommended for optimal performance.
type Memory int

// The valid section placements.
const (
	// Flash places the section in (external) flash. Reads and writes are
	// translated into commands on an external bus, like FlexSPI.
	Flash Memory = iota

	// DTCM places the section in data tightly coupled memory.
	DTCM

	// ITCM places the section in instruction tightly coupled memory.
	ITCM

	// OCRAM places the section in on-chip RAM. If the chip includes
	// dedicated OCRAM memory, that memory is utilised before any FlexRAM
	// OCRAM banks.
	OCRAM
)

// String returns the name of the memory block in the generated linker
// script.
func (m Memory) String() string {
	switch m {
	case Flash:
		return "FLASH"
	case DTCM:
		return "DTCM"
	case ITCM:
		return "ITCM"
	case OCRAM:
		return "OCRAM"
	}

	return "undefined"
}
