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

// Package cloudflare declares the Cloudflare integration actions.
package cloudflare

import (
	"github.com/tombee/soarmcp/internal/action"
)

// Module lists the Cloudflare actions exposed as tools.
var Module = action.Module{
	Provider: "Cloudflare",
	Actions: []action.Definition{
		{
			Name:        "List Firewall Rules",
			Description: "List available firewall rules in Cloudflare.",
			Params: []action.Param{
				{Name: "Zone Name", Type: action.TypeString, Required: true, Description: "Specify the name of the zone, which will contain the firewall rule."},
				{Name: "Filter Key", Type: action.TypeArray, Description: "Specify the key that needs to be used to filter results."},
				{Name: "Filter Logic", Type: action.TypeArray, Description: "Specify what filter logic should be applied. Filtering logic is working based on the value  provided in the \"Filter Key\" parameter."},
				{Name: "Filter Value", Type: action.TypeString, Description: "Specify what value should be used in the filter. If \"Equal\" is selected, action will try to find the exact match among results and if \"Contains\" is selected, action will try to find results that contain that substring. If nothing is provided in this parameter, the filter will not be applied. Filtering logic is working based on the value provided in the \"Filter Key\" parameter."},
				{Name: "Max Records To Return", Type: action.TypeString, Description: "Specify how many records to return. If nothing is provided, action will return 50 records."},
			},
		},
		{
			Name:        "Add IP To Rule List",
			Description: "Add IP addresses to the rule list in Cloudflare. Supported Entities: IP Address.",
			Params: []action.Param{
				{Name: "Rule Name", Type: action.TypeString, Required: true, Description: "Specify the name of the rule list to which you want to add rule list items."},
				{Name: "Description", Type: action.TypeString, Description: "Specify a description for the newly added rule list items."},
			},
		},
		{
			Name:        "Add URL To Rule List",
			Description: "Add URLs to the rule list in Cloudflare. Supported Entities: URL. Note: URL entities are treated as \"Source URLs\".",
			Params: []action.Param{
				{Name: "Rule Name", Type: action.TypeString, Required: true, Description: "Specify the name of the rule list to which you want to add rule list items."},
				{Name: "Target URL", Type: action.TypeString, Required: true, Description: "Specify the target URL for the rule list item."},
				{Name: "Description", Type: action.TypeString, Description: "Specify a description for the newly added rule list item."},
				{Name: "Status Code", Type: action.TypeArray, Description: "Specify the status for the rule list item."},
				{Name: "Preserve Query String", Type: action.TypeBoolean, Description: "If enabled, the rule list item will preserve the query string."},
				{Name: "Include Subdomains", Type: action.TypeBoolean, Description: "If enabled, the rule list item will include subdomains."},
				{Name: "Subpath Matching", Type: action.TypeBoolean, Description: "If enabled, the rule list item will match the subpath."},
				{Name: "Preserve Path Suffix", Type: action.TypeBoolean, Description: "If enabled, the rule list item will preserve the path suffix."},
			},
		},
		{
			Name:        "Ping",
			Description: "Test connectivity to the Cloudflare with parameters provided at the integration configuration page on the Marketplace tab.",
		},
		{
			Name:        "Update Firewall Rule",
			Description: "Update a firewall rule in Cloudflare.",
			Params: []action.Param{
				{Name: "Rule Name", Type: action.TypeString, Required: true, Description: "Specify the name of the rule that needs to be updated."},
				{Name: "Zone Name", Type: action.TypeString, Required: true, Description: "Specify the name of the zone, which will contain the firewall rule."},
				{Name: "Action", Type: action.TypeArray, Description: "Specify the action for the firewall rule. If \"Bypass\" is selected, you need to provide values in the \"Products\" parameter."},
				{Name: "Expression", Type: action.TypeString, Description: "Specify the expression for the firewall rule."},
				{Name: "Products", Type: action.TypeString, Description: "Specify a comma-separated list of products for the firewall rule. Note: this parameter is only mandatory, if \"Bypass\" is selected for \"Action\" parameter. Possible values: zoneLockdown, uaBlock, bic, hot, securityLevel, rateLimit, waf."},
				{Name: "Priority", Type: action.TypeString, Description: "Specify the priority for the firewall rule."},
				{Name: "Reference Tag", Type: action.TypeString, Description: "Specify a reference tag for the firewall rule. Note: it can only be up to 50 characters long."},
			},
		},
		{
			Name:        "Create Rule List",
			Description: "Create a rule list in Cloudflare.",
			Params: []action.Param{
				{Name: "Name", Type: action.TypeString, Required: true, Description: "Specify the name for the rule list."},
				{Name: "Type", Type: action.TypeArray, Description: "Specify the type for the rule list."},
				{Name: "Description", Type: action.TypeString, Description: "Specify the description for the rule list."},
			},
		},
		{
			Name:        "Create Firewall Rule",
			Description: "Create a firewall rule in Cloudflare.",
			Params: []action.Param{
				{Name: "Zone Name", Type: action.TypeString, Required: true, Description: "Specify the name of the zone, which will contain the firewall rule."},
				{Name: "Expression", Type: action.TypeString, Required: true, Description: "Specify the expression for the firewall rule."},
				{Name: "Name", Type: action.TypeString, Description: "Specify the name for the firewall rule."},
				{Name: "Action", Type: action.TypeArray, Description: "Specify the action for the firewall rule. If \"Bypass\" is selected, you need to provide values in the \"Products\" parameter."},
				{Name: "Products", Type: action.TypeString, Description: "Specify a comma-separated list of products for the firewall rule. Note: this parameter is only mandatory, if \"Bypass\" is selected for \"Action\" parameter. Possible values: zoneLockdown, uaBlock, bic, hot, securityLevel, rateLimit, waf."},
				{Name: "Priority", Type: action.TypeString, Description: "Specify the priority for the firewall rule."},
				{Name: "Reference Tag", Type: action.TypeString, Description: "Specify a reference tag for the firewall rule. Note: it can only be up to 50 characters long."},
			},
		},
	},
}

// Register adds the Cloudflare tools to r.
func Register(r *action.Registrar) error {
	return r.Register(Module)
}
