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

// Package rtbuild generates the linker script for an i.MX RT firmware image
// at build time.
//
// A Builder is created with one of three constructors, depending on how the
// image is loaded:
//
//   - FromFlexSPI() for an image booted directly from FlexSPI flash by the
//     mask ROM;
//   - InFlash() for an image occupying a flash partition and chain-loaded by
//     other software;
//   - FromRAM() for an image that executes entirely from RAM.
//
// The builder is then customised through its setters - which section goes in
// which memory, FlexRAM bank allocation, stack and heap sizes - and committed
// with Build(). Build() validates the configuration, writes the linker
// script into the enclosing build's output directory and adds that directory
// to the linker search path. A typical build step:
//
//	b := rtbuild.FromFlexSPI(family.Imxrt1060, 16*1024*1024)
//	b.FlexRAMBanks(flexram.Banks{OCRAM: 0, DTCM: 12, ITCM: 4})
//	b.StackSizeEnvOverride("BOARD_STACK")
//	if err := b.Build(); err != nil {
//		...
//	}
//
// Setters perform no validation and intermediate states may be invalid; the
// configuration is checked once, in a fixed order, when the script is
// written. The checks are deliberately limited to conditions that would
// brick a device or silently misconfigure hardware. Conditions the linker
// can detect for itself - say, a section placed in a region with no banks
// allocated - are left to the linker, which produces the better diagnostic.
//
// # The generated script
//
// The script defines the MEMORY blocks for the configuration, maps the
// REGION_* aliases used by the bundled section skeleton, and publishes three
// kinds of numeric symbol for the target startup code: the resolved stack
// and heap sizes, the packed FlexRAM configuration word and the family
// identifier (under the name version.RuntimeTag).
//
// Startup code on the target is expected to: read the family identifier and
// branch to family specific initialisation; write the FlexRAM configuration
// word to the FlexRAM controller (families with split upper/lower register
// fields write the high half to the second register); and, for each of the
// vector table, text, read-only data and data sections, copy the section
// from its load address to its execution address, word by word, when the two
// differ. When load and execution addresses are equal no copy is performed.
// The pairs of symbols bracketing each copy are defined by the bundled
// imxrt-link.x fragment.
package rtbuild
