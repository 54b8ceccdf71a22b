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
	"fmt"
	"io"

	"github.com/imxrt-rs/imxrt-rt/family"
	"github.com/imxrt-rs/imxrt-rt/flexram"
	"github.com/imxrt-rs/imxrt-rt/rtbuild/buildenv"
	"github.com/imxrt-rs/imxrt-rt/version"
)

// emitter wraps an io.Writer and latches the first write error. Later writes
// after an error are no-ops, so the emission code can run straight through
// and check the error once at the end.
type emitter struct {
	w   io.Writer
	err error
}

func (e *emitter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *emitter) writeAsset(asset []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(asset)
}

// regionAlias defines an alias for name that maps to the memory block the
// section has been placed in. The alias names are relied upon by the bundled
// section skeleton.
func (e *emitter) regionAlias(name string, placement Memory) {
	e.printf("REGION_ALIAS(\"REGION_%s\", %s);\n", name, placement)
}

// Write generates the linker script into the provided writer.
//
// Use this for control over where the generated script ends up. Most build
// steps should prefer Build(), which also places the script where the linker
// will find it. Unlike Build(), Write() pays no attention to the name set by
// LinkerScriptName().
//
// The configuration is validated first. The checks, in order: the FlexRAM
// layout must not have more banks than the family; the layout must reserve
// at least the family's boot ROM minimum of OCRAM banks; a flash-loaded
// image's FlexSPI instance must be available on the family; none of data,
// vectors, bss, uninit, stack or heap may be placed in flash; and the layout
// must be encodable as a configuration word for the family. The first
// violated check is returned as a curated error and nothing is written.
//
// Checking stops there on purpose. A configuration can pass and still fail
// to link - for instance a section placed in a region with no banks - but
// the linker reports those conditions with more context than the generator
// could. No matter the error path, there will be an error.
//
// A write failure aborts the generation immediately and is returned
// unchanged.
func (b *Builder) Write(w io.Writer, env buildenv.Environment) error {
	if err := b.checkConfig(); err != nil {
		return err
	}

	// resolving the overrides declares the consulted variables to the build
	// system, so resolution happens even though the values are not written
	// until later
	stackSize, err := b.stackSize.resolve(env)
	if err != nil {
		return err
	}
	heapSize, err := b.heapSize.resolve(env)
	if err != nil {
		return err
	}

	e := &emitter{w: w}

	// identify the generator. a linker script with no enclosing project is
	// otherwise hard to trace back to the build step that made it
	e.printf("/* Generated by %s %s. */\n", version.ApplicationName, version.Version)

	if b.flash != nil {
		b.writeFlashMemoryMap(e)
		if b.flash.bootHeader {
			e.writeAsset(bootHeaderForFamily(b.family))
		}
	} else {
		b.writeRAMMemoryMap(e)
	}

	if b.includeDevice {
		e.printf("INCLUDE %s\n", b.deviceScriptName)
	}

	// keep these alias names in sync with the bundled section skeleton. the
	// skeleton places sections through the aliases, which saves the
	// generator from writing SECTIONS commands
	e.regionAlias("TEXT", b.text)
	e.regionAlias("VTABLE", b.vectors)
	e.regionAlias("RODATA", b.rodata)
	e.regionAlias("DATA", b.data)
	e.regionAlias("BSS", b.bss)
	e.regionAlias("UNINIT", b.uninit)

	e.regionAlias("STACK", b.stack)
	e.regionAlias("HEAP", b.heap)

	// used in the section skeleton and/or target code
	e.printf("__stack_size = 0x%08X;\n", stackSize)
	e.printf("__heap_size = 0x%08X;\n", heapSize)

	if b.flash != nil {
		// load and execution addresses differ; startup code copies the
		// sections into place
		e.regionAlias("LOAD_VTABLE", Flash)
		e.regionAlias("LOAD_TEXT", Flash)
		e.regionAlias("LOAD_RODATA", Flash)
		e.regionAlias("LOAD_DATA", Flash)
	} else {
		// load and execution addresses are equal; startup code performs no
		// copies
		e.regionAlias("LOAD_VTABLE", b.vectors)
		e.regionAlias("LOAD_TEXT", b.text)
		e.regionAlias("LOAD_RODATA", b.rodata)
		e.regionAlias("LOAD_DATA", b.data)
	}

	// referenced by target startup code
	e.printf("__flexram_config = 0x%08X;\n", family.RAMConfig(b.family, b.layout))

	// the target startup routine looks at this value to predicate family
	// specific pre-init instructions. could be helpful for binary
	// identification too, but that's an undocumented feature
	e.printf("%s = 0x%08X;\n", version.RuntimeTag, b.family.ID())

	e.writeAsset(linkScript)

	return e.err
}

// writeFlashMemoryMap generates a MEMORY command that includes a FLASH
// block, plus the FCB offset constant.
func (b *Builder) writeFlashMemoryMap(e *emitter) {
	e.printf("/* Memory map for '%s' with custom flash length %d. */\n", b.family, b.flash.size)
	e.printf("MEMORY {\n")

	origin, _ := b.flash.origin(b.family) // already checked
	e.printf("FLASH (RX) : ORIGIN = 0x%X, LENGTH = 0x%X\n", origin, b.flash.size)
	b.writeFlexRAMMemories(e)

	e.printf("}\n")
	e.printf("__fcb_offset = 0x%X;\n", b.family.FCBOffset())
}

// writeRAMMemoryMap is like writeFlashMemoryMap but without the flash
// tidbits.
func (b *Builder) writeRAMMemoryMap(e *emitter) {
	e.printf("/* Memory map for '%s' that executes from RAM. */\n", b.family)
	e.printf("MEMORY {\n")
	b.writeFlexRAMMemories(e)
	e.printf("}\n")
}

// writeFlexRAMMemories writes the RAM-like memory blocks.
//
// A block is skipped if nothing is allocated to it. If a skipped block is
// referenced by a section placement, linking fails - which is the error
// path for that mistake.
func (b *Builder) writeFlexRAMMemories(e *emitter) {
	itcm := b.layout.Count(flexram.ITCM)
	dtcm := b.layout.Count(flexram.DTCM)
	ocram := b.layout.Count(flexram.OCRAM)

	if itcm > 0 {
		start, size := b.family.ITCMStartSize(itcm)
		e.printf("ITCM (RWX) : ORIGIN = 0x%X, LENGTH = 0x%X\n", start, size)
	}
	if dtcm > 0 {
		e.printf("DTCM (RWX) : ORIGIN = 0x20000000, LENGTH = 0x%X\n",
			dtcm*b.family.FlexRAMBankSize())
	}

	ocramSize := ocram*b.family.FlexRAMBankSize() + b.family.DedicatedOCRAMSize()
	if ocramSize > 0 {
		e.printf("OCRAM (RWX) : ORIGIN = 0x%X, LENGTH = 0x%X\n",
			b.family.OCRAMStart(), ocramSize)
	}
}
