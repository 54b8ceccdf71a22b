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

package rtbuild

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/imxrt-rs/imxrt-rt/logger"
	"github.com/imxrt-rs/imxrt-rt/rtbuild/buildenv"
)

// Build commits the configuration: the linker script is generated and placed
// where the linker will find it. Equivalent to BuildIn(buildenv.Cargo{}).
func (b *Builder) Build() error {
	return b.BuildIn(buildenv.Cargo{})
}

// BuildIn commits the configuration against the given build environment.
//
// The script is written into the environment's output directory, under the
// name set by LinkerScriptName(), and the directory is registered on the
// linker search path. See Write() for the validation performed and the
// errors it can produce; errors locating or writing the output file are
// returned unchanged from the underlying operation.
//
// A generation pass either fully succeeds or fails; there is nothing to
// clean up or retry on failure. Given the same configuration and
// environment, the pass is idempotent and the artefact byte-identical.
func (b *Builder) BuildIn(env buildenv.Environment) error {
	// the build step runs in the context of the user's program, so the
	// output directory is the user's, not this package's
	dir, err := env.OutputDir()
	if err != nil {
		return err
	}
	env.AddLinkSearch(dir)

	// generate into memory first. a validation failure must not leave a
	// truncated script where the linker can find it
	script := &bytes.Buffer{}
	if err := b.Write(script, env); err != nil {
		return err
	}

	p := filepath.Join(dir, b.linkerScriptName)
	if err := os.WriteFile(p, script.Bytes(), 0644); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "rtbuild", "%s written for %s", p, b.family)

	return nil
}
