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

import "github.com/imxrt-rs/imxrt-rt/curated"

// sentinel error pattern returned by Recorder.OutputDir() when Dir is unset.
const NoRecorderDir = "buildenv: recorder has no output directory"

// Recorder is an in-memory implementation of the Environment interface for
// use in tests. Declarations are recorded rather than printed and environment
// variables are served from the Vars map rather than the process environment.
type Recorder struct {
	// Dir is returned by OutputDir(). An empty Dir is an error, in the same
	// way that a missing OUT_DIR is an error for the Cargo type.
	Dir string

	// Vars stands in for the process environment.
	Vars map[string]string

	// declarations made through the Environment interface, in order.
	LinkSearch []string
	Reruns     []string
}

// OutputDir implements the Environment interface.
func (r *Recorder) OutputDir() (string, error) {
	if r.Dir == "" {
		return "", curated.Errorf(NoRecorderDir)
	}
	return r.Dir, nil
}

// AddLinkSearch implements the Environment interface.
func (r *Recorder) AddLinkSearch(dir string) {
	r.LinkSearch = append(r.LinkSearch, dir)
}

// RerunIfEnvChanged implements the Environment interface.
func (r *Recorder) RerunIfEnvChanged(key string) {
	r.Reruns = append(r.Reruns, key)
}

// LookupEnv implements the Environment interface.
func (r *Recorder) LookupEnv(key string) (string, bool) {
	v, ok := r.Vars[key]
	return v, ok
}
