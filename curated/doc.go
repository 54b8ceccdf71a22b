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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package except that the formatting pattern
// is kept alongside the formatted values. Because the pattern is kept, error
// handlers and tests can ask whether an error was created from a specific
// pattern with the Is() and Has() functions, rather than matching on the
// fully formatted message:
//
//	err := curated.Errorf("flexram: too many banks: %d", n)
//
//	if curated.Is(err, "flexram: too many banks: %d") {
//		fmt.Println("true")
//	}
//
// Has() is like Is() but looks for the pattern anywhere in the error chain,
// not just at the head.
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. We can think of the difference between curated and uncurated errors as
// being 'expected' and 'unexpected' - a validation failure is curated, a
// failed file write is not.
//
// The Error() implementation normalises the error chain by removing duplicate
// adjacent parts. Parts are the sub-strings separated by ': ', as suggested
// on p239 of "The Go Programming Language" (Donovan, Kernighan). The
// practical advantage is that wrapping an error with the same prefix twice
// does not produce a stuttering message.
//
// The configuration errors raised by the rtbuild package are all curated
// errors. Their patterns are exported by that package so callers can identify
// exactly which rule failed.
package curated
