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

package rtbuild_test

import (
	"strings"
	"testing"

	"github.com/imxrt-rs/imxrt-rt/curated"
	"github.com/imxrt-rs/imxrt-rt/family"
	"github.com/imxrt-rs/imxrt-rt/rtbuild"
	"github.com/imxrt-rs/imxrt-rt/rtbuild/buildenv"
	"github.com/imxrt-rs/imxrt-rt/test"
)

// generate a script through a recorder with the given variables set,
// returning the script and the recorder for inspection.
func generate(t *testing.T, b *rtbuild.Builder, vars map[string]string) (string, *buildenv.Recorder) {
	t.Helper()

	env := &buildenv.Recorder{Dir: "out", Vars: vars}
	s := &strings.Builder{}
	test.DemandSuccess(t, b.Write(s, env))

	return s.String(), env
}

func TestStackSizeOverride(t *testing.T) {
	// no key, no variable: the explicit size stands
	b := rtbuild.FromRAM(family.Imxrt1010).StackSize(4 * 1024)
	script, env := generate(t, b, nil)
	test.ExpectContains(t, script, "__stack_size = 0x00001000;")
	test.ExpectEquality(t, len(env.Reruns), 0)

	// key named but variable unset: the explicit size still stands, but the
	// consultation must be declared so the build re-runs when the variable
	// appears
	b = b.StackSizeEnvOverride("APP_STACK")
	script, env = generate(t, b, nil)
	test.ExpectContains(t, script, "__stack_size = 0x00001000;")
	test.ExpectEquality(t, len(env.Reruns), 1)
	test.ExpectEquality(t, env.Reruns[0], "APP_STACK")

	// variable set: it wins
	script, _ = generate(t, b, map[string]string{"APP_STACK": "8192"})
	test.ExpectContains(t, script, "__stack_size = 0x00002000;")
}

func TestOverrideSuffixes(t *testing.T) {
	b := rtbuild.FromRAM(family.Imxrt1060).
		StackSizeEnvOverride("APP_STACK").
		HeapSizeEnvOverride("APP_HEAP")

	script, _ := generate(t, b, map[string]string{
		"APP_STACK": "16k",
		"APP_HEAP":  "2K",
	})
	test.ExpectContains(t, script, "__stack_size = 0x00004000;")
	test.ExpectContains(t, script, "__heap_size = 0x00000800;")
}

func TestOverrideKeyReplacement(t *testing.T) {
	// only the key in effect at generation time is consulted or declared
	b := rtbuild.FromRAM(family.Imxrt1060).
		StackSizeEnvOverride("OLD_KEY").
		StackSizeEnvOverride("NEW_KEY")

	script, env := generate(t, b, map[string]string{
		"OLD_KEY": "1024",
		"NEW_KEY": "2048",
	})
	test.ExpectContains(t, script, "__stack_size = 0x00000800;")
	test.ExpectEquality(t, len(env.Reruns), 1)
	test.ExpectEquality(t, env.Reruns[0], "NEW_KEY")
}

func TestOverrideParseErrors(t *testing.T) {
	for _, v := range []string{"", "banana", "-1", "0x1000", "4kB", "99999999999"} {
		b := rtbuild.FromRAM(family.Imxrt1060).StackSizeEnvOverride("APP_STACK")
		env := &buildenv.Recorder{Dir: "out", Vars: map[string]string{"APP_STACK": v}}

		err := b.Write(&strings.Builder{}, env)
		test.ExpectFailure(t, err, v)
		test.ExpectSuccess(t, curated.Is(err, rtbuild.BadSizeOverride), v)
		test.ExpectContains(t, err.Error(), "APP_STACK", v)

		// the declaration is made before the value is looked at
		test.ExpectEquality(t, len(env.Reruns), 1, v)
	}
}

func TestHeapDefaultsToZero(t *testing.T) {
	b := rtbuild.FromRAM(family.Imxrt1060)
	script, _ := generate(t, b, nil)
	test.ExpectContains(t, script, "__heap_size = 0x00000000;")
}
