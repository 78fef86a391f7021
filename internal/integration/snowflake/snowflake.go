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

// Package snowflake declares the Snowflake integration actions.
package snowflake

import (
	"github.com/tombee/soarmcp/internal/action"
)

// Module lists the Snowflake actions exposed as tools.
var Module = action.Module{
	Provider: "Snowflake",
	Actions: []action.Definition{
		{
			Name:        "Ping",
			Description: "Test connectivity to the Snowflake with parameters provided at the integration configuration page on the Marketplace tab.",
		},
		{
			Name:        "Execute Simple Query",
			Description: "Execute a query based on parameters in Snowflake. Note: Action is running as async, please adjust script timeout value in Siemplify IDE for action as needed.",
			Params: []action.Param{
				{Name: "Database", Type: action.TypeString, Required: true, Description: "Specify the name of the database in which you want to execute the query."},
				{Name: "Table", Type: action.TypeString, Required: true, Description: "Specify the name of the table in which you want to execute the query."},
				{Name: "Schema", Type: action.TypeString, Description: "Specify the name of the schema in which you want to execute the query."},
				{Name: "Where Filter", Type: action.TypeString, Description: "Specify the WHERE filter for the query  that needs to be executed. Note: you don't need to limit and sort. Also, you don’t need to provide WHERE string in the payload. Only single quotes are supported in the query."},
				{Name: "Fields To Return", Type: action.TypeString, Description: "Specify what fields to return. If nothing is provided action will return all fields. Wildcard character is supported."},
				{Name: "Sort Field", Type: action.TypeString, Description: "Specify what parameter should be used for sorting."},
				{Name: "Sort Order", Type: action.TypeArray, Description: "Specify the order of sorting."},
				{Name: "Max Results To Return", Type: action.TypeString, Description: "Specify how many results to return. Default: 50."},
			},
		},
		{
			Name:        "Execute Custom Query",
			Description: "Execute a custom query in Snowflake. Note: Action is running as async, please adjust script timeout value in Siemplify IDE for action as needed.",
			Params: []action.Param{
				{Name: "Query", Type: action.TypeString, Required: true, Description: "Specify the query that needs to be executed in Snowflake. Note: query shouldn't contain LIMIT keyword, because it’s added automatically. Only single quotes are supported in the query."},
				{Name: "Database", Type: action.TypeString, Required: true, Description: "Specify the name of the database in which you want to execute the query."},
				{Name: "Schema", Type: action.TypeString, Description: "Specify the name of the schema in which you want to execute the query."},
				{Name: "Max Results To Return", Type: action.TypeString, Description: "Specify how many results to return for the query. Default: 50."},
			},
		},
	},
}

// Register adds the Snowflake tools to r.
func Register(r *action.Registrar) error {
	return r.Register(Module)
}
