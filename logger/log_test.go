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

package logger_test

import (
	"strings"
	"testing"

	"github.com/imxrt-rs/imxrt-rt/logger"
	"github.com/imxrt-rs/imxrt-rt/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()

	s := &strings.Builder{}
	test.ExpectFailure(t, logger.Write(s))

	logger.Log(logger.Allow, "test", "this is a test")
	test.ExpectSuccess(t, logger.Write(s))
	test.ExpectEquality(t, s.String(), "test: this is a test\n")
}

func TestRepeats(t *testing.T) {
	logger.Clear()

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Log(logger.Allow, "test", "this is a test")

	s := &strings.Builder{}
	test.ExpectSuccess(t, logger.Write(s))
	test.ExpectEquality(t, s.String(), "test: this is a test (repeat x2)\n")
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Log(logger.Allow, "test", "1")
	logger.Log(logger.Allow, "test", "2")
	logger.Log(logger.Allow, "test", "3")

	s := &strings.Builder{}
	logger.Tail(s, 2)
	test.ExpectEquality(t, s.String(), "test: 2\ntest: 3\n")
}

type deny struct{}

func (_ deny) AllowLogging() bool {
	return false
}

func TestPermission(t *testing.T) {
	logger.Clear()

	logger.Log(deny{}, "test", "this should not appear")

	s := &strings.Builder{}
	test.ExpectFailure(t, logger.Write(s))
}
