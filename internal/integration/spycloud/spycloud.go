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

// Package spycloud declares the SpyCloud integration actions.
package spycloud

import (
	"github.com/tombee/soarmcp/internal/action"
)

// Module lists the SpyCloud actions exposed as tools.
var Module = action.Module{
	Provider: "SpyCloud",
	Actions: []action.Definition{
		{
			Name:        "List Entity Breaches",
			Description: "Return information about breaches related to entities. Supported entity types: IP Address, Username, Email Address (Username entity that matches email regex), Domain (action will strip domain part from URL entity).",
			Params: []action.Param{
				{Name: "Time Frame", Type: action.TypeArray, Required: true, Description: "Specify a time frame for the search. If \"Custom\" is selected, you also need to provide \"Start Time\"."},
				{Name: "Catalog Filter", Type: action.TypeString, Description: "Specify the name of the category in which you want to search for breaches."},
				{Name: "Start Time", Type: action.TypeString, Description: "Specify the start time for the search. This parameter is mandatory, if \"Custom\" is selected for the \"Time Frame\" parameter. Format: ISO 8601. Note: action will only take the datetime for action execution."},
				{Name: "End Time", Type: action.TypeString, Description: "Specify the end time for the search. Format: ISO 8601. If nothing is provided and \"Custom\" is selected for the \"Time Frame\" parameter then this parameter will use current time. Note: action will only take the datetime for action execution."},
				{Name: "Max Breaches To Return", Type: action.TypeString, Description: "Specify how many breaches to return per entity. Default: 1. Maximum: 1000."},
			},
		},
		{
			Name:        "Ping",
			Description: "Test connectivity to the SpyCloud with parameters provided at the integration configuration page on the Marketplace tab.",
		},
		{
			Name:        "List Catalogs",
			Description: "List available catalogs in SpyCloud.",
			Params: []action.Param{
				{Name: "Time Frame", Type: action.TypeArray, Required: true, Description: "Specify a time frame for the search. If \"Custom\" is selected, you also need to provide \"Start Time\"."},
				{Name: "Filter Logic", Type: action.TypeArray, Description: "Specify what filter logic should be applied."},
				{Name: "Filter Value", Type: action.TypeString, Description: "Specify what value should be used in the filter. If \"Equal\" is selected, action will try to find the exact match among results and if \"Contains\" is selected, action will try to find results that contain that substring. \"Equal\" works with \"title\" parameter, while \"Contains\" works with all values in response. If nothing is provided in this parameter, the filter will not be applied."},
				{Name: "Start Time", Type: action.TypeString, Description: "Specify the start time for the search. This parameter is mandatory, if \"Custom\" is selected for the \"Time Frame\" parameter. Format: ISO 8601"},
				{Name: "End Time", Type: action.TypeString, Description: "Specify the end time for the search. Format: ISO 8601. If nothing is provided and \"Custom\" is selected for the \"Time Frame\" parameter then this parameter will use current time."},
				{Name: "Max Catalogs To Return", Type: action.TypeString, Description: "Specify how many catalogs to return. Default: 50."},
			},
		},
	},
}

// Register adds the SpyCloud tools to r.
func Register(r *action.Registrar) error {
	return r.Register(Module)
}
