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

// Package anomali declares the Anomali integration actions.
package anomali

import (
	"github.com/tombee/soarmcp/internal/action"
)

// Module lists the Anomali actions exposed as tools.
var Module = action.Module{
	Provider: "Anomali",
	Actions: []action.Definition{
		{
			Name:        "GetThreatInfo",
			Description: "Enrich entities using information from Anomali ThreatStream. Supported entities: IP, URL, Hash, Email Addresses (User entities that match email regex).",
			Params: []action.Param{
				{Name: "Limit", Type: action.TypeString, Required: true, Description: "Specify how many records to return per entity."},
				{Name: "Severity Threshold", Type: action.TypeArray, Description: "Specify what should be the severity threshold for the entity, in order to mark it as suspicious. If multiple records are found for the same entity, action will take the highest severity out of all available records."},
				{Name: "Confidence Threshold", Type: action.TypeString, Description: "Specify what should be the confidence threshold for the entity, in order to mark it as suspicious. Note: Maximum is 100. If multiple records are found for the entity, action will take the average. Active records have priority. Default: 50."},
				{Name: "Ignore False Positive Status", Type: action.TypeBoolean, Description: "If enabled, action will ignore the false positive status and mark the entity as suspicious based on the \"Severity Threshold\" and \"Confidence Threshold\". If disabled, action will never label false positive entities as suspicious, regardless, if they pass the \"Severity Threshold\" and \"Confidence Threshold\" conditions or not."},
			},
		},
		{
			Name:        "Ping",
			Description: "Test connectivity to Anomali ThreatStream",
		},
		{
			Name:        "Get Related Associations",
			Description: "Retrieve entity related associations from Anomali ThreatStream.",
			Params: []action.Param{
				{Name: "Return Campaigns", Type: action.TypeBoolean, Description: "If enabled, action will fetch related campaigns and details about them."},
				{Name: "Return Threat Bulletins", Type: action.TypeBoolean, Description: "If enabled, action will fetch related threat bulletins and details about them."},
				{Name: "Return Actors", Type: action.TypeBoolean, Description: "If enabled, action will fetch related actors and details about them."},
				{Name: "Return Attack Patterns", Type: action.TypeBoolean, Description: "If enabled, action will fetch related attack patterns and details about them."},
				{Name: "Return Courses Of Action", Type: action.TypeBoolean, Description: "If enabled, action will fetch related courses of action and details about them."},
				{Name: "Return Identities", Type: action.TypeBoolean, Description: "If enabled, action will fetch related identities and details about them."},
				{Name: "Return Incidents", Type: action.TypeBoolean, Description: "If enabled, action will fetch related incidents and details about them."},
				{Name: "Return Infrastructure", Type: action.TypeBoolean, Description: "If enabled, action will fetch related infrastructure and details about them."},
				{Name: "Return Intrusion Sets", Type: action.TypeBoolean, Description: "If enabled, action will fetch related intrusion sets and details about them."},
				{Name: "Return Malware", Type: action.TypeBoolean, Description: "If enabled, action will fetch related malware and details about them."},
				{Name: "Return Signatures", Type: action.TypeBoolean, Description: "If enabled, action will fetch related signatures and details about them."},
				{Name: "Return Tools", Type: action.TypeBoolean, Description: "If enabled, action will fetch related tools and details about them."},
				{Name: "Return TTPs", Type: action.TypeBoolean, Description: "If enabled, action will fetch related TTPs and details about them."},
				{Name: "Return Vulnerabilities", Type: action.TypeBoolean, Description: "If enabled, action will fetch related vulnerabilities and details about them."},
				{Name: "Create Campaign Entity", Type: action.TypeBoolean, Description: "If enabled, action will create an entity out of available \"Campaign\" associations."},
				{Name: "Create Actors Entity", Type: action.TypeBoolean, Description: "If enabled, action will create an entity out of available \"Actor\" associations."},
				{Name: "Create Signature Entity", Type: action.TypeBoolean, Description: "If enabled, action will create an entity out of available \"Signature\" associations."},
				{Name: "Create Vulnerability Entity", Type: action.TypeBoolean, Description: "If enabled, action will create an entity out of available \"Vulnerability\" associations."},
				{Name: "Max Associations To Return", Type: action.TypeString, Description: "Specify how many associations to return per type. Default: 5"},
			},
		},
	},
}

// Register adds the Anomali tools to r.
func Register(r *action.Registrar) error {
	return r.Register(Module)
}
