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

// Package domaintools declares the DomainTools integration actions.
package domaintools

import (
	"github.com/tombee/soarmcp/internal/action"
)

// Module lists the DomainTools actions exposed as tools.
var Module = action.Module{
	Provider: "DomainTools",
	Actions: []action.Definition{
		{
			Name:        "Recent Domains",
			Description: "Search for new domains containing a  particular word",
			Params: []action.Param{
				{Name: "String Query", Type: action.TypeString, Required: true, Description: "Search for new domains containing a particular word"},
			},
		},
		{
			Name:        "Get Hosting History",
			Description: "Get domain hosting history information, enrich and add CSV table",
		},
		{
			Name:        "Get Domain Risk",
			Description: "Enrich external domain entity with the domain risk score given by DomainTools data",
			Params: []action.Param{
				{Name: "Threshold", Type: action.TypeString, Required: true, Description: "Mark entity as suspicious if the domain risk score pass the given threshold. e.g. 3"},
			},
		},
		{
			Name:        "Ping",
			Description: "Test Connectivity",
		},
		{
			Name:        "Reverse Domain",
			Description: "Find IPs that point to a particular domain",
		},
		{
			Name:        "Get Domain Profile",
			Description: "Enrich external domain entity with DomainTools threat Intelligence data and return CSV output",
		},
		{
			Name:        "Reverse Email",
			Description: "Find domains with an email address in their WhoIs record",
		},
		{
			Name:        "Reverse IP",
			Description: "Find domain names that share a particular IP address",
		},
	},
}

// Register adds the DomainTools tools to r.
func Register(r *action.Registrar) error {
	return r.Register(Module)
}
