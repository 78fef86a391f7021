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

// Package humio declares the Humio integration actions.
package humio

import (
	"github.com/tombee/soarmcp/internal/action"
)

// Module lists the Humio actions exposed as tools.
var Module = action.Module{
	Provider: "Humio",
	Actions: []action.Definition{
		{
			Name:        "Execute Custom Search",
			Description: "Search events using custom query in Humio.",
			Params: []action.Param{
				{Name: "Repository Name", Type: action.TypeString, Required: true, Description: "Specify the name of the repository that should be searched."},
				{Name: "Query", Type: action.TypeString, Required: true, Description: "Specify the query that needs to be executed in Humio. Note: \"head()\" function shouldn't be a part of this string."},
				{Name: "Max Results To Return", Type: action.TypeString, Description: "Specify how many results the action should return. Default: 50."},
			},
		},
		{
			Name:        "Ping",
			Description: "Test connectivity to the Humio with parameters provided at the integration configuration page on the Marketplace tab.",
		},
		{
			Name:        "Execute Simple Search",
			Description: "Search events based on parameters in Humio.",
			Params: []action.Param{
				{Name: "Repository Name", Type: action.TypeString, Required: true, Description: "Specify the name of the repository that should be searched."},
				{Name: "Query Filter", Type: action.TypeString, Description: "Specify the query that should be executed during the search. Note: functions \"head()\" and \"select()\" shouldn't be provided."},
				{Name: "Time Frame", Type: action.TypeArray, Description: "Specify a time frame for the results. If \"Custom\" is selected, you also need to provide \"Start Time\"."},
				{Name: "Start Time", Type: action.TypeString, Description: "Specify the start time for the results. This parameter is mandatory, if \"Custom\" is selected for the \"Time Frame\" parameter. Format: ISO 8601"},
				{Name: "End Time", Type: action.TypeString, Description: "Specify the end time for the results. Format: ISO 8601. If nothing is provided and \"Custom\" is selected for the \"Time Frame\" parameter then this parameter will use current time."},
				{Name: "Fields To Return", Type: action.TypeString, Description: "Specify what fields to return. If nothing is provided, action will return all fields."},
				{Name: "Sort Field", Type: action.TypeString, Description: "Specify what parameter should be used for sorting. By default the query sorts data by timestamp in the ascending order."},
				{Name: "Sort Field Type", Type: action.TypeArray, Description: "Specify the type of the field that will be used for sorting. This parameter is needed to ensure that the correct results are returned."},
				{Name: "Sort Order", Type: action.TypeArray, Description: "Specify the order of sorting."},
				{Name: "Max Results To Return", Type: action.TypeString, Description: "Specify how many results to return. Default: 50."},
			},
		},
	},
}

// Register adds the Humio tools to r.
func Register(r *action.Registrar) error {
	return r.Register(Module)
}
