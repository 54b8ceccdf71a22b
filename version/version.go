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

// Package version records the version of the application and the version tag
// of the runtime contract between the generated linker script and the target
// startup code.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "imxrt-rt"

// RuntimeTag is the versioned name of the family identifier symbol written
// into the generated linker script. Target startup code looks the symbol up
// by this exact name, so changing it is a breaking change to the runtime
// contract.
const RuntimeTag = "__imxrt_rt_v0.2"

// number is set through the linker for release builds. if it is empty then
// this is not a release build.
var number string

// revision contains the vcs revision. if the source has been modified but has
// not been committed then the revision string will be suffixed with "+dirty".
var revision string

// Version contains the version number and revision of the build.
//
// If the version string is "unreleased" then it means that the build is not a
// release build.
var Version string

func init() {
	revision = "no vcs information"

	if info, ok := debug.ReadBuildInfo(); ok {
		var vcs bool
		var rev string
		var modified bool

		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}

		if vcs && rev != "" {
			revision = rev
			if modified {
				revision = fmt.Sprintf("%s+dirty", revision)
			}
		}
	}

	if number == "" {
		Version = "unreleased"
	} else {
		Version = number
	}

	Version = fmt.Sprintf("%s (%s)", Version, revision)
}
