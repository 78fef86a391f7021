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

// Package automox declares the Automox integration actions.
package automox

import (
	"github.com/tombee/soarmcp/internal/action"
)

// Module lists the Automox actions exposed as tools.
var Module = action.Module{
	Provider: "Automox",
	Actions: []action.Definition{
		{
			Name:        "List Policies",
			Description: "List available policies in Automox.",
			Params: []action.Param{
				{Name: "Filter Key", Type: action.TypeArray, Description: "Specify the key that needs to be used to filter policy."},
				{Name: "Filter Logic", Type: action.TypeArray, Description: "Specify what filter logic should be applied. Filtering logic is working based on the value  provided in the “Filter Key” parameter."},
				{Name: "Filter Value", Type: action.TypeString, Description: "Specify what value should be used in the filter. If “Equal“ is selected, action will try to find the exact match among results and if “Contains“ is selected, action will try to find results that contain that substring. If nothing is provided in this parameter, the filter will not be applied. Filtering logic is working based on the value  provided in the “Filter Key” parameter."},
				{Name: "Max Records To Return", Type: action.TypeString, Description: "Specify how many records to return. If nothing is provided, action will return 50 records."},
			},
		},
		{
			Name:        "Execute Policy",
			Description: "Execute a policy in Automox. Supported entities: Hostname, IP Address.",
			Params: []action.Param{
				{Name: "Remediation Scope", Type: action.TypeArray, Required: true, Description: "Specify the remediation scope for the action. If “Only Entities” is selected, then action will execute policies only on the valid entities in the scope. If “All Devices” is selected, then action will execute the policy on all devices in the organization."},
				{Name: "Policy Name", Type: action.TypeString, Required: true, Description: "Specify the name of the policy that needs to be executed."},
			},
		},
		{
			Name:        "Ping",
			Description: "Test connectivity to the Automox with parameters provided at the integration configuration page on the Marketplace tab",
		},
		{
			Name:        "Enrich Entities",
			Description: "Enrich entities using information from Automox. Supported entities: Hostname, IP Address.",
			Params: []action.Param{
				{Name: "Return Patches", Type: action.TypeBoolean, Description: "If enabled, action will return a list of patches that need to be updated on the machine. Note: action will not return patches that were installed or the ones that are currently ignored."},
				{Name: "Max Patches To Return", Type: action.TypeString, Description: "Specify how many patches to return. If nothing is provided, action will return 50 patches."},
			},
		},
		{
			Name:        "Execute Device Command",
			Description: "Execute a command on the endpoint in Automox. Supported entities: Hostname, IP Address. Note: Action is running as async, please adjust script timeout value in Chronicle SOAR for action as needed.",
			Params: []action.Param{
				{Name: "Command", Type: action.TypeArray, Description: "Specify a command that needs to be executed on the device. Note: if \"Install Specific Patches\" is provided, parameter \"Patch Names\" is mandatory."},
				{Name: "Patch Names", Type: action.TypeString, Description: "Specify a comma-separated list of patches that need to be installed."},
			},
		},
	},
}

// Register adds the Automox tools to r.
func Register(r *action.Registrar) error {
	return r.Register(Module)
}
