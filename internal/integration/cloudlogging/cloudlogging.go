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

// Package cloudlogging declares the CloudLogging integration actions.
package cloudlogging

import (
	"github.com/tombee/soarmcp/internal/action"
)

// Module lists the CloudLogging actions exposed as tools.
var Module = action.Module{
	Provider: "CloudLogging",
	Actions: []action.Definition{
		{
			Name:        "Execute Query",
			Description: "Use the Execute Query action to execute custom queries in Cloud Logging.",
			Params: []action.Param{
				{Name: "Query", Type: action.TypeString, Required: true, Description: "A query to find the logs for."},
				{Name: "Project ID", Type: action.TypeString, Description: "The project ID to use in the integration. If you don't set a value for this parameter, the integration retrieves the project ID from your Google Cloud service account."},
				{Name: "Organization ID", Type: action.TypeString, Description: "The organization ID to use in the integration.If you don't set a value for this parameter, the integration retrieves the project ID from your Google Cloud service account."},
				{Name: "Time Frame", Type: action.TypeArray, Description: "A period to retrieve the results from. If you select Custom, also configure the Start Time parameter."},
				{Name: "Start Time", Type: action.TypeString, Description: "The start time to retrieve results. This parameter is required if you selected the Custom option for the Time Frame parameter. To configure this parameter, use the ISO 8601 format."},
				{Name: "End Time", Type: action.TypeString, Description: "The end time to retrieve results. If you don't set a value for this parameter and select the Custom option for the Time Frame parameter, the action uses the current time as the end time. To configure this parameter, use the ISO 8601 format."},
				{Name: "Max Records To Return", Type: action.TypeString, Description: "The maximum number of results to return. The default value is 50."},
			},
		},
		{
			Name:        "Ping",
			Description: "Use the Ping action to test connectivity to the Cloud Logging.",
		},
	},
}

// Register adds the CloudLogging tools to r.
func Register(r *action.Registrar) error {
	return r.Register(Module)
}
