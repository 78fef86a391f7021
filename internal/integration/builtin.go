// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package integration

import (
	"log/slog"

	"github.com/tombee/soarmcp/internal/action"
	"github.com/tombee/soarmcp/internal/integration/anomali"
	"github.com/tombee/soarmcp/internal/integration/arcsightlogger"
	"github.com/tombee/soarmcp/internal/integration/automox"
	"github.com/tombee/soarmcp/internal/integration/bitsight"
	"github.com/tombee/soarmcp/internal/integration/cloudflare"
	"github.com/tombee/soarmcp/internal/integration/cloudlogging"
	"github.com/tombee/soarmcp/internal/integration/devo"
	"github.com/tombee/soarmcp/internal/integration/domaintools"
	"github.com/tombee/soarmcp/internal/integration/httpv2"
	"github.com/tombee/soarmcp/internal/integration/humio"
	"github.com/tombee/soarmcp/internal/integration/mitreattck"
	"github.com/tombee/soarmcp/internal/integration/shodan"
	"github.com/tombee/soarmcp/internal/integration/snowflake"
	"github.com/tombee/soarmcp/internal/integration/spycloud"
)

// BuiltinModules lists every vendor integration compiled into the binary.
var BuiltinModules = []action.Module{
	anomali.Module,
	arcsightlogger.Module,
	automox.Module,
	bitsight.Module,
	cloudflare.Module,
	cloudlogging.Module,
	devo.Module,
	domaintools.Module,
	httpv2.Module,
	humio.Module,
	mitreattck.Module,
	shodan.Module,
	snowflake.Module,
	spycloud.Module,
}

var builtinRegisterFuncs = map[string]RegisterFunc{
	anomali.Module.Provider:        anomali.Register,
	arcsightlogger.Module.Provider: arcsightlogger.Register,
	automox.Module.Provider:        automox.Register,
	bitsight.Module.Provider:       bitsight.Register,
	cloudflare.Module.Provider:     cloudflare.Register,
	cloudlogging.Module.Provider:   cloudlogging.Register,
	devo.Module.Provider:           devo.Register,
	domaintools.Module.Provider:    domaintools.Register,
	httpv2.Module.Provider:         httpv2.Register,
	humio.Module.Provider:          humio.Register,
	mitreattck.Module.Provider:     mitreattck.Register,
	shodan.Module.Provider:         shodan.Register,
	snowflake.Module.Provider:      snowflake.Register,
	spycloud.Module.Provider:       spycloud.Register,
}

// Builtin returns a Registry holding every vendor integration.
func Builtin(logger *slog.Logger) *Registry {
	r := NewRegistry(logger)
	for provider, fn := range builtinRegisterFuncs {
		if err := r.Register(provider, fn); err != nil {
			panic(err)
		}
	}
	return r
}
