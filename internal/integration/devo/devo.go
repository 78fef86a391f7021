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

// Package devo declares the Devo integration actions.
package devo

import (
	"github.com/tombee/soarmcp/internal/action"
)

// Module lists the Devo actions exposed as tools.
var Module = action.Module{
	Provider: "Devo",
	Actions: []action.Definition{
		{
			Name:        "Ping",
			Description: "Test connectivity to the Devo instance with parameters provided at the integration configuration page on the Marketplace tab.",
		},
		{
			Name:        "Advanced Query",
			Description: "Execute an advanced query based on the provided parameters. Note that action is not working on Siemplify entities. If its planned to query table other than siem.logtrust.alert.info, please create an additional token for that table following the documentation at https://docs.devo.com/confluence/ndt/latest/domain-administration/security-credentials/authentication-tokens and specify it on the integration configuration page.",
			Params: []action.Param{
				{Name: "Query", Type: action.TypeString, Required: true, Description: "Specify a query to execute against Devo instance. Example format: 'from siem.logtrust.alert.info'."},
				{Name: "Time Frame", Type: action.TypeArray, Description: "Specify a time frame for the results. If 'Custom' is selected, you also need to provide 'Start Time'."},
				{Name: "Start Time", Type: action.TypeString, Description: "Specify a time frame for the results. If 'Custom' is selected, you also need to provide 'Start Time'."},
				{Name: "End Time", Type: action.TypeString, Description: "Specify the start time for the query. This parameter is mandatory, if 'Custom' is selected for the 'Time Frame' parameter. Format: ISO 8601. Example: 2021-08-05T05:18:42Z"},
				{Name: "Max rows to return", Type: action.TypeString, Description: "Specify max number of rows the action should return."},
			},
		},
		{
			Name:        "Simple Query",
			Description: "Execute a simple query based on the provided parameters. Note that action is not working on Siemplify entities. If its planned to query table other than siem.logtrust.alert.info, please create an additional token for that table following the documentation at https://docs.devo.com/confluence/ndt/latest/domain-administration/security-credentials/authentication-tokens and specify it on the integration configuration page.",
			Params: []action.Param{
				{Name: "Table Name", Type: action.TypeString, Required: true, Description: "Specify what table should be queried."},
				{Name: "Fields To Return", Type: action.TypeString, Description: "Specify what fields to return. If nothing is provided, action will return all fields."},
				{Name: "Where Filter", Type: action.TypeString, Description: "Specify the WHERE filter for the query  that needs to be executed."},
				{Name: "Time Frame", Type: action.TypeArray, Description: "Specify a time frame for the results. If 'Custom' is selected, you also need to provide 'Start Time'."},
				{Name: "Start Time", Type: action.TypeString, Description: "Specify a time frame for the results. If 'Custom' is selected, you also need to provide 'Start Time'."},
				{Name: "End Time", Type: action.TypeString, Description: "Specify the start time for the query. This parameter is mandatory, if 'Custom' is selected for the 'Time Frame' parameter. Format: ISO 8601. Example: 2021-08-05T05:18:42Z"},
				{Name: "Max rows to return", Type: action.TypeString, Description: "Specify max number of rows the action should return."},
			},
		},
	},
}

// Register adds the Devo tools to r.
func Register(r *action.Registrar) error {
	return r.Register(Module)
}
