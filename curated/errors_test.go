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

package curated_test

import (
	"errors"
	"testing"

	"github.com/imxrt-rs/imxrt-rt/curated"
	"github.com/imxrt-rs/imxrt-rt/test"
)

func TestIs(t *testing.T) {
	err := curated.Errorf("validation: %s has only %d banks", "Imxrt1010", 4)
	test.ExpectSuccess(t, curated.Is(err, "validation: %s has only %d banks"))
	test.ExpectFailure(t, curated.Is(err, "some other pattern"))

	// uncurated errors never match
	test.ExpectFailure(t, curated.Is(errors.New("validation"), "validation"))
	test.ExpectFailure(t, curated.Is(nil, "validation"))
}

func TestIsAny(t *testing.T) {
	test.ExpectSuccess(t, curated.IsAny(curated.Errorf("an error")))
	test.ExpectFailure(t, curated.IsAny(errors.New("an error")))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestHas(t *testing.T) {
	inner := curated.Errorf("inner: %d", 100)
	outer := curated.Errorf("outer: %v", inner)

	test.ExpectSuccess(t, curated.Has(outer, "inner: %d"))
	test.ExpectSuccess(t, curated.Has(outer, "outer: %v"))
	test.ExpectFailure(t, curated.Is(outer, "inner: %d"))
	test.ExpectFailure(t, curated.Has(outer, "not present"))
}

func TestDeduplication(t *testing.T) {
	inner := curated.Errorf("error: not yet implemented")
	outer := curated.Errorf("error: %v", inner)
	test.ExpectEquality(t, outer.Error(), "error: not yet implemented")
}
