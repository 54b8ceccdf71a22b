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

package flexram_test

import (
	"testing"

	"github.com/imxrt-rs/imxrt-rt/flexram"
	"github.com/imxrt-rs/imxrt-rt/test"
)

func TestCanonicalOrder(t *testing.T) {
	l := flexram.Banks{OCRAM: 1, DTCM: 2, ITCM: 3}.Layout()
	test.DemandEquality(t, len(l), 6)

	expected := flexram.Layout{
		flexram.OCRAM,
		flexram.DTCM, flexram.DTCM,
		flexram.ITCM, flexram.ITCM, flexram.ITCM,
	}
	for i := range l {
		test.ExpectEquality(t, l[i], expected[i], i)
	}
}

func TestConfig(t *testing.T) {
	// table of bank counts and the expected configuration word. every bank
	// occupies a 2-bit field; OCRAM banks come first, then DTCM, then ITCM
	cases := []struct {
		banks    flexram.Banks
		expected uint32
	}{
		{flexram.Banks{OCRAM: 16}, 0x55555555},
		{flexram.Banks{DTCM: 16}, 0xAAAAAAAA},
		{flexram.Banks{ITCM: 16}, 0xFFFFFFFF},
		{flexram.Banks{}, 0x00000000},
		{flexram.Banks{OCRAM: 1, DTCM: 1, ITCM: 1}, 0b11_10_01},
		{flexram.Banks{OCRAM: 3, DTCM: 3, ITCM: 3}, 0b111111_101010_010101},
		{flexram.Banks{OCRAM: 5, DTCM: 5, ITCM: 5}, 0b1111111111_1010101010_0101010101},
		{flexram.Banks{OCRAM: 1, DTCM: 1, ITCM: 14}, 0b1111111111111111111111111111_10_01},
		{flexram.Banks{OCRAM: 1, DTCM: 14, ITCM: 1}, 0b11_1010101010101010101010101010_01},
		{flexram.Banks{OCRAM: 14, DTCM: 1, ITCM: 1}, 0b11_10_0101010101010101010101010101},
	}

	for _, c := range cases {
		test.ExpectEquality(t, c.banks.Layout().Config(), c.expected, c.banks)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	// decoding role counts from an encoded canonical word must recover the
	// original counts exactly
	for ocram := 0; ocram <= 4; ocram++ {
		for dtcm := 0; dtcm <= 4; dtcm++ {
			for itcm := 0; itcm <= 4; itcm++ {
				b := flexram.Banks{OCRAM: ocram, DTCM: dtcm, ITCM: itcm}
				w := b.Layout().Config()

				d := flexram.LayoutFromConfig(w, b.Total())
				test.ExpectEquality(t, d.Count(flexram.OCRAM), ocram, b)
				test.ExpectEquality(t, d.Count(flexram.DTCM), dtcm, b)
				test.ExpectEquality(t, d.Count(flexram.ITCM), itcm, b)
				test.ExpectEquality(t, d.Count(flexram.Unused), 0, b)
			}
		}
	}
}

func TestCount(t *testing.T) {
	l := flexram.Layout{flexram.OCRAM, flexram.ITCM, flexram.OCRAM, flexram.Unused}
	test.ExpectEquality(t, l.Count(flexram.OCRAM), 2)
	test.ExpectEquality(t, l.Count(flexram.ITCM), 1)
	test.ExpectEquality(t, l.Count(flexram.DTCM), 0)
	test.ExpectEquality(t, l.Count(flexram.Unused), 1)
}
