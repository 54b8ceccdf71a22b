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
	"strconv"
	"strings"

	"github.com/imxrt-rs/imxrt-rt/curated"
	"github.com/imxrt-rs/imxrt-rt/logger"
	"github.com/imxrt-rs/imxrt-rt/rtbuild/buildenv"
)

// sentinel error pattern for an override value that cannot be parsed.
const BadSizeOverride = "override: %s: %v"

// envOverride is a default byte count plus the name of an environment
// variable that, if set at resolution time, supersedes the default. An empty
// key means no override.
type envOverride struct {
	def int
	key string
}

// resolve returns the override's value: the environment variable if one is
// named and set, the default otherwise. Variable values are unsigned
// integers with an optional 'k'/'K' suffix meaning multiples of 1024 bytes.
//
// The re-run declaration is made here and not when the key is assigned. If
// configuration code assigns one variable name and later replaces it with
// another, the build should re-run when the *consulted* variable changes,
// regardless of how the configuration code arrived at the selection. The
// declaration is made whether or not the variable is currently set - the
// build must also re-run when the variable first becomes set.
func (o envOverride) resolve(env buildenv.Environment) (int, error) {
	if o.key == "" {
		return o.def, nil
	}

	env.RerunIfEnvChanged(o.key)

	val, ok := env.LookupEnv(o.key)
	if !ok {
		return o.def, nil
	}

	logger.Logf(logger.Allow, "override", "%s=%s", o.key, val)

	mult := 1
	num := val
	if strings.HasSuffix(val, "k") || strings.HasSuffix(val, "K") {
		mult = 1024
		num = val[:len(val)-1]
	}

	v, err := strconv.ParseUint(num, 10, 32)
	if err != nil {
		return 0, curated.Errorf(BadSizeOverride, o.key, err)
	}

	return int(v) * mult, nil
}
