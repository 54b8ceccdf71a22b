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

package buildenv_test

import (
	"os"
	"strings"
	"testing"

	"github.com/imxrt-rs/imxrt-rt/curated"
	"github.com/imxrt-rs/imxrt-rt/rtbuild/buildenv"
	"github.com/imxrt-rs/imxrt-rt/test"
)

func TestCargoDirectives(t *testing.T) {
	out := &strings.Builder{}
	env := buildenv.Cargo{Stdout: out}

	env.AddLinkSearch("/tmp/out")
	env.RerunIfEnvChanged("APP_STACK")

	// the exact directive spellings are the protocol; the build system
	// ignores lines it does not recognise
	test.ExpectEquality(t, out.String(),
		"cargo:rustc-link-search=/tmp/out\n"+
			"cargo:rerun-if-env-changed=APP_STACK\n")
}

func TestCargoOutputDir(t *testing.T) {
	t.Setenv("OUT_DIR", "/tmp/out")
	env := buildenv.Cargo{}

	dir, err := env.OutputDir()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dir, "/tmp/out")
}

func TestCargoOutputDirUnset(t *testing.T) {
	// Setenv registers the restore; Unsetenv clears the variable for the
	// duration of the test
	t.Setenv("OUT_DIR", "")
	_ = os.Unsetenv("OUT_DIR")

	env := buildenv.Cargo{}
	_, err := env.OutputDir()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, buildenv.NoOutputDir))
}

func TestCargoLookupEnv(t *testing.T) {
	t.Setenv("APP_STACK", "4k")
	env := buildenv.Cargo{}

	v, ok := env.LookupEnv("APP_STACK")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "4k")

	_, ok = env.LookupEnv("APP_STACK_NOT_SET")
	test.ExpectFailure(t, ok)
}

func TestRecorder(t *testing.T) {
	env := &buildenv.Recorder{
		Dir:  "out",
		Vars: map[string]string{"APP_STACK": "4k"},
	}

	dir, err := env.OutputDir()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dir, "out")

	v, ok := env.LookupEnv("APP_STACK")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "4k")

	_, ok = env.LookupEnv("APP_HEAP")
	test.ExpectFailure(t, ok)

	env.AddLinkSearch("a")
	env.RerunIfEnvChanged("b")
	test.ExpectEquality(t, env.LinkSearch[0], "a")
	test.ExpectEquality(t, env.Reruns[0], "b")
}

func TestRecorderNoDir(t *testing.T) {
	env := &buildenv.Recorder{}
	_, err := env.OutputDir()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, buildenv.NoRecorderDir))
}
