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

// Package mitreattck declares the MitreAttck integration actions.
package mitreattck

import (
	"github.com/tombee/soarmcp/internal/action"
)

// Module lists the MitreAttck actions exposed as tools.
var Module = action.Module{
	Provider: "MitreAttck",
	Actions: []action.Definition{
		{
			Name:        "Get Associated Intrusions",
			Description: "Retrieve information about intrusions that are associated with MITRE attack technique.",
			Params: []action.Param{
				{Name: "Technique ID", Type: action.TypeString, Required: true, Description: "Specify the identifier that will be used to find the associated intrusions."},
				{Name: "Identifier Type", Type: action.TypeArray, Required: true, Description: "Specify what identifier type to use. Possible values: Attack Name (Example: Access Token Manipulation) Attack ID (Example: attack-pattern--478aa214-2ca7-4ec0-9978-18798e514790) External Attack ID (Example: T1050)"},
				{Name: "Max Intrusions to Return", Type: action.TypeString, Description: "Specify how many intrusions to return."},
			},
		},
		{
			Name:        "Get Technique Details",
			Description: "Retrieve detailed information about MITRE attack technique",
			Params: []action.Param{
				{Name: "Technique Identifier", Type: action.TypeString, Required: true, Description: "Specify the comma-separated list of identifiers that will be used to find the detailed information about techniques. Example: identifier_1,identifier_2"},
				{Name: "Identifier Type", Type: action.TypeArray, Required: true, Description: "Specify what identifier type to use. Possible values: Name (Example: Access Token Manipulation) ID (Example: attack-pattern--478aa214-2ca7-4ec0-9978-18798e514790) External ID (Example: T1050)"},
				{Name: "Create Insights", Type: action.TypeBoolean, Description: "If enabled, action will create a separate insight for every processed technique"},
			},
		},
		{
			Name:        "Get Techniques Details",
			Description: "Retrieve detailed information about MITRE attack techniques.",
			Params: []action.Param{
				{Name: "Technique Identifier", Type: action.TypeString, Required: true, Description: "Specify the identifier that will be used to find the detailed information about technique. Comma-separated values."},
				{Name: "Identifier Type", Type: action.TypeArray, Required: true, Description: "Specify what identifier type to use. Possible values: Name (Example: Access Token Manipulation) ID (Example: attack-pattern--478aa214-2ca7-4ec0-9978-18798e514790) External ID (Example: T1050)"},
			},
		},
		{
			Name:        "Ping",
			Description: "Test Connectivity",
		},
		{
			Name:        "Get Mitigations",
			Description: "Retrieve information about mitigations that are associated with MITRE attack technique",
			Params: []action.Param{
				{Name: "Technique ID", Type: action.TypeString, Required: true, Description: "Specify the identifier that will be used to find the mitigations related to attack technique."},
				{Name: "Identifier Type", Type: action.TypeArray, Required: true, Description: "Specify what identifier type to use. Possible values: Attack Name (Example: Access Token Manipulation) Attack ID (Example: attack-pattern--478aa214-2ca7-4ec0-9978-18798e514790) External Attack ID (Example: T1050)"},
				{Name: "Max Mitigations to Return", Type: action.TypeString, Description: "Specify how many mitigations to return."},
			},
		},
		{
			Name:        "Get Techniques Mitigations",
			Description: "Retrieve information about mitigations that are associated with MITRE attack techniques.",
			Params: []action.Param{
				{Name: "Technique ID", Type: action.TypeString, Required: true, Description: "Specify the identifier that will be used to find the mitigations related to attack technique. Comma-separated values."},
				{Name: "Identifier Type", Type: action.TypeArray, Required: true, Description: "Specify what identifier type to use. Possible values: Attack Name (Example: Access Token Manipulation) Attack ID (Example: attack-pattern--478aa214-2ca7-4ec0-9978-18798e514790) External Attack ID (Example: T1050)"},
				{Name: "Max Mitigations to Return", Type: action.TypeString, Description: "Specify how many mitigations to return."},
			},
		},
	},
}

// Register adds the MitreAttck tools to r.
func Register(r *action.Registrar) error {
	return r.Register(Module)
}
