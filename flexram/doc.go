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

// Package flexram describes the FlexRAM bank arrangement of an i.MX RT
// processor.
//
// FlexRAM is a pool of on-chip memory banks. The role of each bank - general
// on-chip RAM (OCRAM), data tightly coupled memory (DTCM) or instruction
// tightly coupled memory (ITCM) - is selected before the program's data is
// accessed, by startup code writing a configuration word to the FlexRAM
// controller.
//
// A Layout is the ordered sequence of bank roles. The order is physically
// significant: bank 0 occupies the lowest two bits of the configuration word,
// bank 1 the next two bits, and so on. The Banks type is the simpler
// alternative for when only the number of banks of each kind matters; its
// Layout() method produces a canonical ordering.
//
// The configuration word produced by Layout.Config() is the general
// 2-bit-per-bank encoding. It is not suitable for every family - in
// particular, the 1180 has a two-bank FlexRAM with a reduced encoding - so
// most callers should prefer family.RAMConfig() which knows about the
// exceptions.
package flexram
