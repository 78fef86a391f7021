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

// Package arcsightlogger declares the ArcSightLogger integration actions.
package arcsightlogger

import (
	"github.com/tombee/soarmcp/internal/action"
)

// Module lists the ArcSightLogger actions exposed as tools.
var Module = action.Module{
	Provider: "ArcSightLogger",
	Actions: []action.Definition{
		{
			Name:        "Send Query",
			Description: "Send a query to get information about related events from ArcSight Logger event log manager.",
			Params: []action.Param{
				{Name: "Query", Type: action.TypeString, Required: true, Description: "Specify the query to send to ArcSight Logger event search."},
				{Name: "Max Events to Return", Type: action.TypeString, Description: "Specify the amount of events to return. Limit is 10000. This is ArcSight Logger limitation."},
				{Name: "Time Frame", Type: action.TypeString, Description: "Specify the time frame which will be used to fetch events. \nPossible values:\n1m - 1 minute ago\n1h - 1 hour ago\n1d - 1 day ago\nNote: You can’t combine different values, like 1d2h30m."},
				{Name: "Fields to Fetch", Type: action.TypeString, Description: "Specify what fields to fetch from ArcSight Logger. If nothing is specified, then all of the available fields will be returned."},
				{Name: "Include Raw Event Data", Type: action.TypeBoolean, Description: "If enabled, raw event data is included in the response."},
				{Name: "Local Search Only", Type: action.TypeBoolean, Description: "Indicates that ArcSight Logger event search is local only, and does not include ArcSight Logger peers. Set to false if you want to include peers in the event search."},
				{Name: "Discover Fields", Type: action.TypeBoolean, Description: "Indicates that the ArcSight Logger search should try to discover fields in the events found."},
				{Name: "Sort", Type: action.TypeString, Description: "Specify what sorting method to use.\nPossible values:\nascending\ndescending"},
			},
		},
		{
			Name:        "Ping",
			Description: "Test connectivity to ArcSight Logger with parameters provided at the integration configuration page on Marketplace tab.",
		},
	},
}

// Register adds the ArcSightLogger tools to r.
func Register(r *action.Registrar) error {
	return r.Register(Module)
}
