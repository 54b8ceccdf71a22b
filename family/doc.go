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

// Package family records the hardware facts for every supported i.MX RT chip
// family: FlexRAM bank counts and sizes, address map origins, boot ROM
// reservations and FlexSPI support.
//
// Every fact is expressed as a method on the Family type with a switch that
// names every family explicitly. There are no wildcard cases and no fallback
// defaults; an unknown family is a panic. When adding a new family, the
// compiler won't help find every switch that needs a new case, so grep for
// an existing family name and supply a value in every location. A wrong or
// missing fact here surfaces as a bricked device or a baffling link error,
// not as a test failure.
//
// The facts are taken from the reference manuals for each chip family and
// from AN12077 (for the FlexRAM fuse defaults).
package family
