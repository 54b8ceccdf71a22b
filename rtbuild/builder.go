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
	"github.com/imxrt-rs/imxrt-rt/family"
	"github.com/imxrt-rs/imxrt-rt/flexram"
)

// default artefact names. both can be changed through the builder.
const (
	DefaultLinkerScriptName = "imxrt-link.x"
	DefaultDeviceScriptName = "device.x"
)

// default stack size in bytes. the default heap has no size.
const DefaultStackSize = 8 * 1024

// flashOpts gathers the configuration that only exists for flash-loaded
// images.
type flashOpts struct {
	size       int
	offset     uint32
	flexspi    family.FlexSPI
	bootHeader bool
}

// origin returns the flash address of the image within the FlexSPI window.
// The second return value is false if the FlexSPI instance is not available
// on the family.
func (o flashOpts) origin(f family.Family) (uint32, bool) {
	start, ok := o.flexspi.StartAddress(f)
	return start + o.offset, ok
}

// Builder assembles the memory placement configuration for a firmware image.
//
// A Builder is created with FromFlexSPI(), InFlash() or FromRAM(). The three
// constructors seed identical default placements and differ only in how the
// image reaches memory. The defaults:
//
//	text    -> ITCM   (copied from flash)
//	rodata  -> OCRAM  (copied from flash)
//	data    -> OCRAM  (copied from flash)
//	vectors -> DTCM   (copied from flash)
//	bss     -> OCRAM
//	uninit  -> OCRAM
//	stack   -> DTCM, 8 KiB
//	heap    -> DTCM, no space allocated
//
// The default FlexRAM layout is the family's fuse-default layout.
//
// A Builder is intended to configure exactly one image: create it, apply
// setters in any order, and commit it once with Build(). Setters store the
// value and nothing else; validation happens during Build().
//
// The vector table requires a 1024 byte alignment and its placement is
// prioritised above all other sections except the stack. If the stack and
// the vector table share a region (the default) consider keeping the stack
// size a multiple of 1 KiB to minimise internal fragmentation.
type Builder struct {
	family family.Family
	layout flexram.Layout

	text    Memory
	rodata  Memory
	data    Memory
	vectors Memory
	bss     Memory
	uninit  Memory
	stack   Memory
	heap    Memory

	stackSize envOverride
	heapSize  envOverride

	flash *flashOpts

	linkerScriptName string
	deviceScriptName string
	includeDevice    bool
}

// the section placements and sizes common to all three construction modes.
func newBuilder(f family.Family) *Builder {
	return &Builder{
		family:           f,
		layout:           f.DefaultFlexRAMLayout(),
		text:             ITCM,
		rodata:           OCRAM,
		data:             OCRAM,
		vectors:          DTCM,
		bss:              OCRAM,
		uninit:           OCRAM,
		stack:            DTCM,
		heap:             DTCM,
		stackSize:        envOverride{def: DefaultStackSize},
		heapSize:         envOverride{def: 0},
		linkerScriptName: DefaultLinkerScriptName,
		deviceScriptName: DefaultDeviceScriptName,
	}
}

// FromFlexSPI creates a builder for an image that is booted directly from
// FlexSPI flash by the mask ROM. flashSize is the size of the flash
// component in bytes.
//
// The image begins at the start of the FlexSPI window, includes a boot
// header, and uses the family's default FlexSPI instance.
func FromFlexSPI(f family.Family, flashSize int) *Builder {
	b := newBuilder(f)
	b.flash = &flashOpts{
		size:       flashSize,
		offset:     0,
		flexspi:    family.DefaultFlexSPI(f),
		bootHeader: true,
	}
	return b
}

// InFlash creates a builder for an image occupying a flash partition that is
// chain-loaded by other software. partitionSize is the size of the flash
// allocation in bytes and partitionOffset is the byte offset of the
// partition from the start of the FlexSPI window.
//
// An image constructed at this location cannot be booted by the mask ROM, so
// no boot header is included by default; BootHeader(true) forces one on for
// an image that will itself chain-load something. The vector table is placed
// in flash at the given partition offset.
//
// To compute a partition offset from two absolute flash addresses, use
// FlexSPI.StartAddress() to learn the start of the FlexSPI window.
func InFlash(f family.Family, partitionSize int, partitionOffset uint32) *Builder {
	b := newBuilder(f)
	b.flash = &flashOpts{
		size:       partitionSize,
		offset:     partitionOffset,
		flexspi:    family.DefaultFlexSPI(f),
		bootHeader: false,
	}
	return b
}

// FromRAM creates a builder for an image that executes from RAM. There is no
// flash: every section executes from the place it is loaded to and startup
// code performs no copies.
func FromRAM(f family.Family) *Builder {
	return newBuilder(f)
}

// FlexRAMBanks sets the FlexRAM bank allocation by count. The banks are
// assigned to a canonical layout; use FlexRAMLayout() to control the
// assignment of individual banks.
func (b *Builder) FlexRAMBanks(banks flexram.Banks) *Builder {
	return b.FlexRAMLayout(banks.Layout())
}

// FlexRAMLayout sets the FlexRAM bank layout. This gives control of the bank
// assignment in the FlexRAM controller as well as the sizes of DTCM, ITCM
// and OCRAM.
func (b *Builder) FlexRAMLayout(layout flexram.Layout) *Builder {
	b.layout = make(flexram.Layout, len(layout))
	copy(b.layout, layout)
	return b
}

// Text sets the memory placement for code.
func (b *Builder) Text(m Memory) *Builder {
	b.text = m
	return b
}

// Rodata sets the memory placement for read-only data.
func (b *Builder) Rodata(m Memory) *Builder {
	b.rodata = m
	return b
}

// Data sets the memory placement for mutable data.
func (b *Builder) Data(m Memory) *Builder {
	b.data = m
	return b
}

// Vectors sets the memory placement for the vector table.
func (b *Builder) Vectors(m Memory) *Builder {
	b.vectors = m
	return b
}

// BSS sets the memory placement for zero-initialised data.
func (b *Builder) BSS(m Memory) *Builder {
	b.bss = m
	return b
}

// Uninit sets the memory placement for uninitialised data.
func (b *Builder) Uninit(m Memory) *Builder {
	b.uninit = m
	return b
}

// Stack sets the memory placement for the stack.
//
// The implementation tries to place the stack at the lowest possible
// addresses of its region, meaning the stack will grow down into the
// reserved memory below DTCM and OCRAM on most families. The outlier is the
// 1170, where the stack grows into the OCRAM backdoor for the CM4
// coprocessor. Be careful here.
func (b *Builder) Stack(m Memory) *Builder {
	b.stack = m
	return b
}

// StackSize sets the size, in bytes, of the stack.
func (b *Builder) StackSize(bytes int) *Builder {
	b.stackSize.def = bytes
	return b
}

// StackSizeEnvOverride lets end users override the stack size with an
// environment variable. If the variable is set when the script is generated,
// its value supersedes the value given to StackSize(). The value is a byte
// count, or a count of KiB when suffixed with 'k' or 'K'.
//
// A second call replaces the variable name outright; only the most recently
// assigned name is consulted.
func (b *Builder) StackSizeEnvOverride(key string) *Builder {
	b.stackSize.key = key
	return b
}

// Heap sets the memory placement for the heap.
//
// The implementation tries to place the heap at the highest possible
// addresses of its region, meaning the heap will grow up into the reserved
// memory above DTCM and OCRAM on most families.
//
// Note that the default heap has no size. Use HeapSize() to allocate space
// for a heap.
func (b *Builder) Heap(m Memory) *Builder {
	b.heap = m
	return b
}

// HeapSize sets the size, in bytes, of the heap.
func (b *Builder) HeapSize(bytes int) *Builder {
	b.heapSize.def = bytes
	return b
}

// HeapSizeEnvOverride lets end users override the heap size with an
// environment variable. See StackSizeEnvOverride() for the convention.
func (b *Builder) HeapSizeEnvOverride(key string) *Builder {
	b.heapSize.key = key
	return b
}

// FlexSPI sets the FlexSPI peripheral that interfaces flash. See
// DefaultFlexSPI() for the default selection.
//
// If the builder is not configuring a flash-loaded image the call is
// silently ignored, so generic configuration code can call it regardless of
// construction mode.
func (b *Builder) FlexSPI(peripheral family.FlexSPI) *Builder {
	if b.flash != nil {
		b.flash.flexspi = peripheral
	}
	return b
}

// BootHeader overrides the boot header configuration.
//
// By default an image constructed with FromFlexSPI() includes a boot header
// for compatibility with the mask ROM, and an image constructed with
// InFlash() lacks one. This call changes that default behaviour.
//
// If the builder is not configuring a flash-loaded image the call is
// silently ignored.
func (b *Builder) BootHeader(include bool) *Builder {
	if b.flash != nil {
		b.flash.bootHeader = include
	}
	return b
}

// LinkerScriptName sets the file name of the generated linker script. Use
// this to customise the script name for your users.
func (b *Builder) LinkerScriptName(name string) *Builder {
	b.linkerScriptName = name
	return b
}

// DeviceScriptName sets the name of the device linker file included by the
// generated script when IncludeDeviceScript() is enabled. The device crate
// or package is expected to place a file of this name on the linker search
// path.
func (b *Builder) DeviceScriptName(name string) *Builder {
	b.deviceScriptName = name
	return b
}

// IncludeDeviceScript controls whether the generated script INCLUDEs the
// device linker file named by DeviceScriptName(). Off by default.
func (b *Builder) IncludeDeviceScript(include bool) *Builder {
	b.includeDevice = include
	return b
}
