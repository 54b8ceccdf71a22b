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

package buildenv

import (
	"fmt"
	"io"
	"os"

	"github.com/imxrt-rs/imxrt-rt/curated"
)

// sentinel error pattern returned by Cargo.OutputDir().
const NoOutputDir = "buildenv: OUT_DIR is not set: is the generator running under a build script?"

// Cargo talks the cargo build-script protocol: the output directory comes
// from the OUT_DIR environment variable and declarations are made by printing
// specially formatted lines on standard output.
//
// The zero value is ready to use and prints to os.Stdout.
type Cargo struct {
	// Directives are written to Stdout if it is non-nil, otherwise to
	// os.Stdout. The build system only recognises directives on the build
	// script's standard output so there is rarely a reason to change this.
	Stdout io.Writer
}

func (c Cargo) print(s string) {
	out := c.Stdout
	if out == nil {
		out = io.Writer(os.Stdout)
	}
	fmt.Fprintln(out, s)
}

// OutputDir implements the Environment interface. The directory is named by
// the OUT_DIR environment variable, which cargo sets for build scripts.
func (c Cargo) OutputDir() (string, error) {
	if dir, ok := os.LookupEnv("OUT_DIR"); ok {
		return dir, nil
	}
	return "", curated.Errorf(NoOutputDir)
}

// AddLinkSearch implements the Environment interface.
func (c Cargo) AddLinkSearch(dir string) {
	c.print(fmt.Sprintf("cargo:rustc-link-search=%s", dir))
}

// RerunIfEnvChanged implements the Environment interface.
func (c Cargo) RerunIfEnvChanged(key string) {
	c.print(fmt.Sprintf("cargo:rerun-if-env-changed=%s", key))
}

// LookupEnv implements the Environment interface.
func (c Cargo) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}
