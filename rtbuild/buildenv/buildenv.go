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

// Package buildenv is the generator's view of the enclosing build system.
//
// The generator needs four things from whatever build is driving it: a
// directory to write the artefact into; a way of adding that directory to
// the linker search path; a way of declaring that the build must re-run when
// a named environment variable changes; and access to the environment
// variables themselves.
//
// The Cargo type provides all four using the cargo build-script protocol,
// which is the protocol of the firmware builds the generated script targets.
// Tests use the Recorder type instead.
package buildenv

// Environment is the generator's interface to the enclosing build system.
type Environment interface {
	// OutputDir returns the directory the artefact should be written into.
	OutputDir() (string, error)

	// AddLinkSearch declares dir to be part of the linker search path.
	AddLinkSearch(dir string)

	// RerunIfEnvChanged declares that the build step must re-run when the
	// named environment variable changes. The declaration should be made
	// only for variables that were actually consulted - declaring a
	// variable that was not consulted causes spurious re-runs.
	RerunIfEnvChanged(key string)

	// LookupEnv retrieves the named environment variable. The second return
	// value is false if the variable is not set.
	LookupEnv(key string) (string, bool)
}
