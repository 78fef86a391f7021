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

// Package action turns SOAR marketplace actions into MCP tools.
//
// A vendor integration is pure data: a Module names the provider and its
// actions with their parameters. The Registrar compiles each action into
// a tool with a JSON schema, and the Dispatcher runs a call end to end:
// scope resolution, instance lookup, envelope construction and dispatch
// to ExecuteManualAction. Every outcome is a Result.
package action

import (
	"github.com/tombee/soarmcp/internal/naming"
)

// ParamType is the JSON type of a vendor parameter.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeBoolean ParamType = "boolean"
	TypeArray   ParamType = "array"
)

// Param describes one vendor parameter as SOAR names it ("URL Path").
type Param struct {
	Name        string
	Type        ParamType
	Required    bool
	Description string
	Enum        []string
}

// ArgName is the tool argument name for the parameter.
func (p Param) ArgName() string {
	return naming.Normalize(p.Name)
}

// Definition describes one vendor action.
type Definition struct {
	Name        string
	Description string
	Params      []Param
}

// Module is the set of actions exposed by one integration provider.
type Module struct {
	// Provider is the SOAR integration identifier, e.g. "HTTPV2".
	Provider string
	Actions  []Definition
}

// Key is the normalized name operators use to enable the module.
func (m Module) Key() string {
	return naming.Normalize(m.Provider)
}

// ScriptName is the SOAR script name for an action: "<Provider>_<Action>".
func (m Module) ScriptName(d Definition) string {
	return m.Provider + "_" + d.Name
}

// ToolName is the MCP tool name for an action.
func (m Module) ToolName(d Definition) string {
	return naming.Normalize(m.ScriptName(d))
}
