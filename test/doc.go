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

// Package test contains helper functions to remove common boilerplate from
// package testing.
//
// The Expect functions test a value and mark the test as failed if the value
// does not meet the expectation. The Demand functions are the same except
// that failure to meet the expectation ends the test immediately.
//
// ExpectSuccess() and ExpectFailure() understand the meaning of success for a
// small number of types. For example, a nil error is a success and a non-nil
// error is a failure. ExpectEquality() and friends work on any comparable
// type.
package test
