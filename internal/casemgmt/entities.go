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

package casemgmt

import (
	"context"
	"encoding/json"

	"github.com/tombee/soarmcp/internal/action"
	"github.com/tombee/soarmcp/internal/soar"
)

func entityTools() []tool {
	return []tool{
		{
			name:        "get_entities_by_alert_group_identifiers",
			description: `Retrieve the entities involved in specific alert groups of a case.

Workflow: Use with identifiers from list_alert_group_identifiers_by_case to pinpoint the assets, users and indicators involved.

Next steps:
- get_entity_details for the SOAR view of an entity.
- Enrich entities with SIEM or threat intelligence tools.
- Use the entities as targets for vendor response actions.`,
			properties: map[string]any{
				argCaseID:                 caseIDProp(),
				"alert_group_identifiers": action.StringArrayProp("Identifiers for the alert groups."),
			},
			required: []string{argCaseID, "alert_group_identifiers"},
			run:      getEntitiesByAlertGroups,
		},
		{
			name:        "get_entity_details",
			description: `Fetch the SOAR view of a single entity, including enrichment data.

Workflow: Use after finding an entity with get_entities_by_alert_group_identifiers or search_entity.

Next steps:
- Compare the enrichment with SIEM entity lookups.
- post_case_comment to document key details.`,
			properties: map[string]any{
				"entity_identifier":  action.StringProp("The identifier of the entity."),
				"entity_type":        action.StringProp("The type of the entity."),
				"entity_environment": action.StringProp("The environment of the entity."),
			},
			required: []string{"entity_identifier", "entity_type", "entity_environment"},
			run:      getEntityDetails,
		},
		{
			name:        "search_entity",
			description: `Search for entities by term, type, status, network or environment.

Workflow: Use for exploratory analysis when no identifier from an alert or case is at hand.

Next steps:
- get_entity_details for entities of interest.
- Enrich findings with SIEM or threat intelligence tools.`,
			properties: map[string]any{
				"term":              action.StringProp("The term to search for"),
				"type":              action.StringArrayProp("The type of the entity"),
				"is_suspicious":     action.BoolProp("A boolean that states if the entity is suspicious"),
				"is_internal_asset": action.BoolProp("A boolean that states if the entity is an internal asset"),
				"is_enriched":       action.BoolProp("A boolean that states if the entity is enriched"),
				"network_name":      action.StringArrayProp("The network name"),
				"environment_name":  action.StringArrayProp("The environment name"),
			},
			run: searchEntity,
		},
	}
}

func getEntitiesByAlertGroups(ctx context.Context, c Client, args map[string]any) (json.RawMessage, error) {
	var in struct {
		CaseID                string   `json:"case_id"`
		AlertGroupIdentifiers []string `json:"alert_group_identifiers"`
	}
	if err := decode(args, &in); err != nil {
		return nil, err
	}
	if in.AlertGroupIdentifiers == nil {
		in.AlertGroupIdentifiers = []string{}
	}
	body := struct {
		CaseID                string   `json:"caseId"`
		AlertGroupIdentifiers []string `json:"alertGroupIdentifiers"`
	}{in.CaseID, in.AlertGroupIdentifiers}
	return c.Post(ctx, soar.PathAlertsEntities, body, nil)
}

func getEntityDetails(ctx context.Context, c Client, args map[string]any) (json.RawMessage, error) {
	var in struct {
		Identifier  string `json:"entity_identifier"`
		Type        string `json:"entity_type"`
		Environment string `json:"entity_environment"`
	}
	if err := decode(args, &in); err != nil {
		return nil, err
	}
	body := struct {
		EntityIdentifier     string `json:"EntityIdentifier"`
		EntityType           string `json:"EntityType"`
		EntityEnvironment    string `json:"EntityEnvironment"`
		LastCaseType         int    `json:"LastCaseType"`
		CaseDistributionType int    `json:"CaseDistributionType"`
	}{EntityIdentifier: in.Identifier, EntityType: in.Type, EntityEnvironment: in.Environment}
	return c.Post(ctx, soar.PathEntityData, body, nil)
}

// entitySearch sends every filter, null when not given.
type entitySearch struct {
	Term            *string  `json:"Term"`
	Type            []string `json:"Type"`
	IsSuspicious    *bool    `json:"IsSuspicious"`
	IsInternalAsset *bool    `json:"IsInternalAsset"`
	IsEnriched      *bool    `json:"IsEnriched"`
	NetworkName     []string `json:"NetworkName"`
	EnvironmentName []string `json:"EnvironmentName"`
}

func searchEntity(ctx context.Context, c Client, args map[string]any) (json.RawMessage, error) {
	var in struct {
		Term            *string  `json:"term"`
		Type            []string `json:"type"`
		IsSuspicious    *bool    `json:"is_suspicious"`
		IsInternalAsset *bool    `json:"is_internal_asset"`
		IsEnriched      *bool    `json:"is_enriched"`
		NetworkName     []string `json:"network_name"`
		EnvironmentName []string `json:"environment_name"`
	}
	if err := decode(args, &in); err != nil {
		return nil, err
	}
	return c.Post(ctx, soar.PathEntitySearch, entitySearch(in), nil)
}
