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
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/soarmcp/internal/action"
	"github.com/tombee/soarmcp/internal/soar"
)

type recordingHost struct {
	mu    sync.Mutex
	tools map[string]mcp.Tool
}

func newRecordingHost() *recordingHost {
	return &recordingHost{tools: map[string]mcp.Tool{}}
}

func (h *recordingHost) AddTool(tool mcp.Tool, _ server.ToolHandlerFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tools[tool.Name] = tool
}

func (h *recordingHost) names() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.tools))
	for name := range h.tools {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

type nopClient struct{}

func (nopClient) Get(context.Context, string, url.Values) (json.RawMessage, error) { return nil, nil }
func (nopClient) Post(context.Context, string, any, url.Values) (json.RawMessage, error) {
	return nil, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRegistrar(host action.Host) *action.Registrar {
	d := action.NewDispatcher(nopClient{}, soar.NewScopeSet([]string{soar.DefaultScope}), action.WithLogger(quietLogger()))
	return action.NewRegistrar(host, d, quietLogger())
}

var (
	csvModule = action.Module{
		Provider: "CSV",
		Actions: []action.Definition{
			{Name: "Ping", Description: "Test connectivity."},
			{Name: "Search CSV", Params: []action.Param{{Name: "CSV Path", Type: action.TypeString, Required: true}}},
		},
	}
	oktaModule = action.Module{
		Provider: "Okta",
		Actions: []action.Definition{
			{Name: "Ping"},
			{Name: "Disable User", Params: []action.Param{{Name: "Is Deactivate", Type: action.TypeBoolean}}},
		},
	}
	anomaliModule = action.Module{
		Provider: "Anomali",
		Actions:  []action.Definition{{Name: "Ping"}},
	}
)

func moduleFunc(m action.Module) RegisterFunc {
	return func(r *action.Registrar) error { return r.Register(m) }
}

func fixtureRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry(quietLogger())
	for _, m := range []action.Module{csvModule, oktaModule, anomaliModule} {
		require.NoError(t, reg.Register(m.Provider, moduleFunc(m)))
	}
	return reg
}

func TestParseAllowList(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{raw: "", want: nil},
		{raw: " , ,", want: nil},
		{raw: "CSV, okta", want: []string{"csv", "okta"}},
		{raw: "SpyCloud,spy cloud,SPY_CLOUD", want: []string{"spy_cloud"}},
		{raw: "MitreAttck , HTTPV2", want: []string{"mitre_attck", "httpv2"}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAllowList(tt.raw))
		})
	}
}

func TestActivate_OnlyAllowListedModules(t *testing.T) {
	host := newRecordingHost()
	reg := fixtureRegistry(t)

	got := reg.Activate(newRegistrar(host), ParseAllowList("CSV, okta"))

	assert.Equal(t, []string{"csv", "okta"}, got.Enabled)
	assert.Empty(t, got.Failed)
	assert.Empty(t, got.Unknown)
	assert.Equal(t, []string{"csv_ping", "csv_search_csv", "okta_disable_user", "okta_ping"}, host.names())
}

func TestActivate_DefaultDeny(t *testing.T) {
	host := newRecordingHost()
	reg := fixtureRegistry(t)

	got := reg.Activate(newRegistrar(host), nil)
	assert.Empty(t, got.Enabled)
	assert.Empty(t, host.names())

	got = reg.Activate(newRegistrar(host), ParseAllowList(" , "))
	assert.Empty(t, got.Enabled)
	assert.Empty(t, host.names())
}

func TestActivate_UnknownNames(t *testing.T) {
	host := newRecordingHost()
	reg := fixtureRegistry(t)

	got := reg.Activate(newRegistrar(host), []string{"nope", "Anomali"})
	assert.Equal(t, []string{"anomali"}, got.Enabled)
	assert.Equal(t, []string{"nope"}, got.Unknown)
}

func TestActivate_Idempotent(t *testing.T) {
	host := newRecordingHost()
	reg := fixtureRegistry(t)
	r := newRegistrar(host)

	first := reg.Activate(r, []string{"csv"})
	second := reg.Activate(r, []string{"csv", "okta"})

	assert.Equal(t, []string{"csv"}, first.Enabled)
	assert.Equal(t, []string{"okta"}, second.Enabled)
	assert.Empty(t, second.Failed)
	assert.Len(t, host.names(), 4)
}

func TestActivate_IsolatesFailures(t *testing.T) {
	host := newRecordingHost()
	reg := fixtureRegistry(t)
	require.NoError(t, reg.Register("Broken", func(*action.Registrar) error {
		return errors.New("boom")
	}))
	require.NoError(t, reg.Register("Panicky", func(*action.Registrar) error {
		panic("kaboom")
	}))

	got := reg.Activate(newRegistrar(host), []string{"broken", "panicky", "okta"})

	assert.Equal(t, []string{"okta"}, got.Enabled)
	require.Len(t, got.Failed, 2)
	assert.Equal(t, "broken", got.Failed[0].Name)
	assert.EqualError(t, got.Failed[0].Err, "boom")
	assert.Equal(t, "panicky", got.Failed[1].Name)
	assert.Contains(t, got.Failed[1].Err.Error(), "kaboom")
	assert.Equal(t, []string{"okta_disable_user", "okta_ping"}, host.names())
}

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry(nil)
	require.NoError(t, reg.Register("SpyCloud", moduleFunc(anomaliModule)))
	assert.Error(t, reg.Register("spy_cloud", moduleFunc(anomaliModule)))
	assert.Error(t, reg.Register("  ", moduleFunc(anomaliModule)))
	assert.Error(t, reg.Register("Other", nil))
	assert.Equal(t, []string{"spy_cloud"}, reg.Names())
}

func TestActivate_EnabledSetProperty(t *testing.T) {
	known := []string{"csv", "okta", "anomali"}
	candidates := []string{"CSV", "csv", "Okta", "ANOMALI", "shodan", "", "unknown thing"}

	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	properties.Property("enabled modules are the allow-list intersected with the catalogue", prop.ForAll(
		func(picks []int) bool {
			allow := make([]string, len(picks))
			for i, p := range picks {
				allow[i] = candidates[p]
			}
			host := newRecordingHost()
			reg := NewRegistry(quietLogger())
			for _, m := range []action.Module{csvModule, oktaModule, anomaliModule} {
				if err := reg.Register(m.Provider, moduleFunc(m)); err != nil {
					return false
				}
			}
			got := reg.Activate(newRegistrar(host), ParseAllowList(strings.Join(allow, ",")))

			want := []string{}
			for _, key := range known {
				for _, name := range ParseAllowList(strings.Join(allow, ",")) {
					if name == key {
						want = append(want, key)
						break
					}
				}
			}
			sort.Strings(want)
			return assert.ObjectsAreEqual(want, append([]string{}, got.Enabled...)) && len(got.Failed) == 0
		},
		gen.SliceOf(gen.IntRange(0, len(candidates)-1)),
	))
	properties.TestingRun(t)
}

func TestBuiltin_RegistersEveryModule(t *testing.T) {
	host := newRecordingHost()
	reg := Builtin(quietLogger())

	names := reg.Names()
	require.Len(t, names, len(BuiltinModules))

	got := reg.Activate(newRegistrar(host), names)
	assert.Equal(t, names, got.Enabled)
	assert.Empty(t, got.Failed)

	total := 0
	for _, m := range BuiltinModules {
		total += len(m.Actions)
		for _, def := range m.Actions {
			assert.Contains(t, host.tools, m.ToolName(def))
		}
	}
	assert.Len(t, host.tools, total)
}
