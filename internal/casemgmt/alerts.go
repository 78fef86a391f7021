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
	"net/url"

	"github.com/tombee/soarmcp/internal/action"
	"github.com/tombee/soarmcp/internal/soar"
)

type pagedCaseArgs struct {
	CaseID        string  `json:"case_id"`
	AlertID       string  `json:"alert_id"`
	NextPageToken *string `json:"next_page_token"`
}

func alertTools() []tool {
	return []tool{
		{
			name:        "list_alerts_by_case",
			description: `List the security alerts associated with a case.

Workflow: Use after finding a case of interest with list_cases or get_case_full_details. The alerts show what triggered the case.

Next steps:
- list_events_by_alert for the raw events behind an alert.
- list_alert_group_identifiers_by_case, then get_entities_by_alert_group_identifiers, for the entities involved.`,
			properties: map[string]any{
				argCaseID:        caseIDProp(),
				argNextPageToken: pageTokenProp(),
			},
			required: []string{argCaseID},
			run:      listAlertsByCase,
		},
		{
			name:        "list_alert_group_identifiers_by_case",
			description: `List the alert group identifiers of a case. Use them with get_entities_by_alert_group_identifiers or vendor actions.

Workflow: Use after reviewing the alerts of a case to see how they are grouped.

Next steps:
- get_entities_by_alert_group_identifiers with the returned identifiers.
- Pass the identifiers to vendor actions that operate on alert groups.`,
			properties: map[string]any{
				argCaseID:        caseIDProp(),
				argNextPageToken: pageTokenProp(),
			},
			required: []string{argCaseID},
			run:      listAlertGroupIdentifiersByCase,
		},
		{
			name:        "list_events_by_alert",
			description: `List the raw events involved in an alert of a case.

Workflow: Use after picking an alert with list_alerts_by_case. Events are the ground truth needed to validate the alert.

Next steps:
- Extract indicators such as command lines, hashes and connections from the events.
- Enrich new indicators with threat intelligence tools.
- post_case_comment to document findings.`,
			properties: map[string]any{
				argCaseID:        caseIDProp(),
				"alert_id":       action.StringProp("The ID of the alert."),
				argNextPageToken: pageTokenProp(),
			},
			required: []string{argCaseID, "alert_id"},
			run:      listEventsByAlert,
		},
	}
}

func listAlertsByCase(ctx context.Context, c Client, args map[string]any) (json.RawMessage, error) {
	var in pagedCaseArgs
	if err := decode(args, &in); err != nil {
		return nil, err
	}
	return c.Get(ctx, soar.CaseAlertsPath(in.CaseID), pageParams(in.NextPageToken, nil))
}

func listAlertGroupIdentifiersByCase(ctx context.Context, c Client, args map[string]any) (json.RawMessage, error) {
	var in pagedCaseArgs
	if err := decode(args, &in); err != nil {
		return nil, err
	}
	base := url.Values{"$select": {"alertGroupIdentifier"}}
	return c.Get(ctx, soar.CaseAlertsPath(in.CaseID), pageParams(in.NextPageToken, base))
}

func listEventsByAlert(ctx context.Context, c Client, args map[string]any) (json.RawMessage, error) {
	var in pagedCaseArgs
	if err := decode(args, &in); err != nil {
		return nil, err
	}
	return c.Get(ctx, soar.AlertEventsPath(in.CaseID, in.AlertID), pageParams(in.NextPageToken, nil))
}
