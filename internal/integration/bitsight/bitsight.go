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

// Package bitsight declares the BitSight integration actions.
package bitsight

import (
	"github.com/tombee/soarmcp/internal/action"
)

// Module lists the BitSight actions exposed as tools.
var Module = action.Module{
	Provider: "BitSight",
	Actions: []action.Definition{
		{
			Name:        "List Company Highlights",
			Description: "List highlights related to the company in BitSight.",
			Params: []action.Param{
				{Name: "Company Name", Type: action.TypeString, Required: true, Description: "Specify the name of the company for which you want to return highlights."},
				{Name: "Time Frame", Type: action.TypeArray, Description: "Specify a time frame for the results. If \"Custom\" is selected, you also need to provide the \"Start Time\" parameter."},
				{Name: "Start Time", Type: action.TypeString, Description: "Specify the start time for the results. This parameter is mandatory, if \"Custom\" is selected for the \"Time Frame\" parameter. Format: ISO 8601"},
				{Name: "End Time", Type: action.TypeString, Description: "Specify the end time for the results. Format: ISO 8601. If nothing is provided and \"Custom\" is selected for the \"Time Frame\" parameter then this parameter uses current time."},
				{Name: "Max Highlights To Return", Type: action.TypeString, Description: "Specify the number of  highlights you want to return. Default: 20."},
			},
		},
		{
			Name:        "Get Company Details",
			Description: "Get information about a company in BitSight.",
			Params: []action.Param{
				{Name: "Company Name", Type: action.TypeString, Required: true, Description: "Specify the name of the company for which you want to return details."},
			},
		},
		{
			Name:        "Ping",
			Description: "Test connectivity to the BitSight with parameters provided at the integration configuration page on the Marketplace tab.",
		},
		{
			Name:        "List Company Vulnerabilities",
			Description: "List vulnerabilities related to the company in BitSight.",
			Params: []action.Param{
				{Name: "Company Name", Type: action.TypeString, Required: true, Description: "Specify the name of the company for which you want to return vulnerabilities."},
				{Name: "Only High Confidence", Type: action.TypeBoolean, Description: "If enabled, action will only return vulnerabilities with high confidence."},
				{Name: "Max Vulnerabilities To Return", Type: action.TypeString, Description: "Specify how many vulnerabilities you want to return. Default: 50."},
			},
		},
	},
}

// Register adds the BitSight tools to r.
func Register(r *action.Registrar) error {
	return r.Register(Module)
}
