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

// Package shodan declares the Shodan integration actions.
package shodan

import (
	"github.com/tombee/soarmcp/internal/action"
)

// Module lists the Shodan actions exposed as tools.
var Module = action.Module{
	Provider: "Shodan",
	Actions: []action.Definition{
		{
			Name:        "Search",
			Description: "Search the SHODAN database.",
			Params: []action.Param{
				{Name: "Search Query", Type: action.TypeString, Required: true, Description: "Search query; identical syntax to the website. e.g. find Apache webservers located in Germany(apache country:'DE', city:'Berlin')"},
				{Name: "Facets", Type: action.TypeString, Description: "A comma-separated list of properties to get summary information on. Property names can also be in the format of 'property:count'. (i.e. country:100, city:5). More information can be found at https://developer.shodan.io/api"},
				{Name: "Set Minify", Type: action.TypeBoolean, Description: "Whether to minify the banner and only return the important data"},
			},
		},
		{
			Name:        "Get Ip Info",
			Description: "Get all available information on an IP",
			Params: []action.Param{
				{Name: "Return Historical Banners", Type: action.TypeBoolean, Description: "True if all historical banners should be returned"},
				{Name: "Set Minify", Type: action.TypeBoolean, Description: "True to only return the list of ports and the general host information, no banners."},
			},
		},
		{
			Name:        "Scan A Network",
			Description: "Scan a network using Shodan",
		},
		{
			Name:        "DNS Resolve",
			Description: "Look up the IP address for the provided list of hostnames.",
		},
		{
			Name:        "Get Api Info",
			Description: "Returns information about the API plan belonging to the given API key.",
		},
		{
			Name:        "Ping",
			Description: "Test connectivity",
		},
		{
			Name:        "DNS Reverse",
			Description: "Look up the hostnames that have been defined for the given list of IP addresses",
		},
		{
			Name:        "SearchForExploits",
			Description: "Search across a variety of data sources for exploits and use facets to get summary information.",
			Params: []action.Param{
				{Name: "Search Query", Type: action.TypeString, Required: true, Description: "Search query used to search the database of known exploits."},
				{Name: "Facets", Type: action.TypeString, Description: "A comma-separated list of properties to get summary information on. (i.e. port, source, author). More information can be found at https://developer.shodan.io/api"},
				{Name: "Page", Type: action.TypeString, Description: "The page number to page through results 100 at a time."},
			},
		},
	},
}

// Register adds the Shodan tools to r.
func Register(r *action.Registrar) error {
	return r.Register(Module)
}
