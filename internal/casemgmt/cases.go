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

	"golang.org/x/sync/errgroup"

	"github.com/tombee/soarmcp/internal/action"
	"github.com/tombee/soarmcp/internal/soar"
)

var (
	casePriorities = []string{
		"PriorityUnspecified",
		"PriorityInfo",
		"PriorityLow",
		"PriorityMedium",
		"PriorityHigh",
		"PriorityCritical",
	}
	closeReasons = []string{"Malicious", "NotMalicious", "Maintenance", "Inconclusive"}
)

func caseTools() []tool {
	return []tool{
		{
			name:        "create_case",
			description: `Create a new manual case in the SOAR platform for tracking a security incident or investigation.

Workflow: Use when an incident was not captured by detection rules or alert ingestion, such as a threat hunt or an external report.

Next steps:
- post_case_comment to add initial notes.
- change_case_priority as more information becomes available.
- get_case_full_details to verify the new case.`,
			properties: map[string]any{
				"name":        action.StringProp("The name or title of the case."),
				"priority":    action.EnumProp("The priority of the case.", casePriorities),
				"description": action.StringProp("A description for the case providing context about the security incident."),
				"environment": action.StringProp("The environment for the case."),
			},
			required: []string{"name"},
			run:      createCase,
		},
		{
			name:        "list_cases",
			description: `List cases available in the SOAR platform. Case priority is only an initial indicator; use get_case_full_details for context.

Workflow: Often the first step of triage. Treat the result as a starting point for the cases needing attention.

Next steps:
- get_case_full_details or list_alerts_by_case for a case_id from the response.
- change_case_priority if the initial assessment warrants it.
- Enrich indicators from the case summary with SIEM or threat intelligence tools.`,
			properties: map[string]any{
				argNextPageToken: pageTokenProp(),
			},
			run: listCases,
		},
		{
			name:        "get_case_full_details",
			description: `Retrieve a case together with its alerts and comments in one call.

Workflow: The primary tool for starting the investigation of a case. It is an initial overview; a full investigation needs the tools below.

Next steps:
- list_events_by_alert for the events behind case_alerts.
- get_entities_by_alert_group_identifiers for the entities of the case.
- post_case_comment to document progress.`,
			properties: map[string]any{
				argCaseID: caseIDProp(),
			},
			required: []string{argCaseID},
			run:      getCaseFullDetails,
		},
		{
			name:        "post_case_comment",
			description: `Add a comment to a case to document investigation progress.

Workflow: Use throughout an investigation to record findings and conclusions from other tools. Comments are the audit trail of the case.

Next steps:
- Justify priority or status changes with a comment.
- Continue the investigation from the documented findings.`,
			properties: map[string]any{
				argCaseID: caseIDProp(),
				"comment": action.StringProp("The content of the comment."),
			},
			required: []string{argCaseID, "comment"},
			run:      postCaseComment,
		},
		{
			name:        "change_case_priority",
			description: `Change the priority level of a case.

Workflow: Use when new information from SIEM, threat intelligence or EDR tools shows the initial priority is wrong.

Next steps:
- post_case_comment to record the reason for the change.`,
			properties: map[string]any{
				argCaseID:       caseIDProp(),
				"case_priority": action.EnumProp("The priority of the case.", casePriorities),
			},
			required: []string{argCaseID, "case_priority"},
			run:      changeCasePriority,
		},
		{
			name:        "update_case_description",
			description: `Replace the description of a case.

Workflow: Use during or after an investigation to keep the case summary current for other analysts.

Next steps:
- post_case_comment to record why the description changed.
- get_case_full_details to verify the update.`,
			properties: map[string]any{
				argCaseID:     caseIDProp(),
				"description": action.StringProp("The new description for the case."),
			},
			required: []string{argCaseID, "description"},
			run:      caseAction(soar.ActionChangeCaseDescription, "description", "Description"),
		},
		{
			name:        "close_case",
			description: `Close a case with a root cause, a comment and a close reason.

Workflow: Use at the end of an investigation once a final determination has been reached.

Next steps:
- list_cases to verify the case left the active queue.
- get_case_full_details to confirm the closure details.`,
			properties: map[string]any{
				argCaseID:    caseIDProp(),
				"root_cause": action.StringProp("The root cause of the case."),
				"comment":    action.StringProp("A comment explaining why the case is being closed."),
				"reason":     action.EnumProp("The close reason for the case.", closeReasons),
				"tags":       action.StringProp("Optional comma-separated tags to apply to the case when closing."),
			},
			required: []string{argCaseID, "root_cause", "comment", "reason"},
			run:      closeCase,
		},
		{
			name:        "assign_case",
			description: `Assign a user to a case.

Workflow: Use during triage to give unowned cases to an analyst, or to reassign cases for workload balancing or escalation.

Next steps:
- post_case_comment to record the reason for the assignment.
- get_case_full_details to verify it.`,
			properties: map[string]any{
				argCaseID: caseIDProp(),
				"user":    action.StringProp("The username or email of the user to assign to the case."),
			},
			required: []string{argCaseID, "user"},
			run:      caseAction(soar.ActionAssignUserToCase, "user", "User"),
		},
		{
			name:        "change_case_stage",
			description: `Change the workflow stage of a case. Stages are configurable per deployment.

Workflow: Use as the investigation moves through the incident response lifecycle. Stage changes may trigger playbooks or notifications.

Next steps:
- post_case_comment to record the reason for the transition.`,
			properties: map[string]any{
				argCaseID: caseIDProp(),
				"stage":   action.StringProp("The new stage for the case, for example Triage or Investigation."),
			},
			required: []string{argCaseID, "stage"},
			run:      caseAction(soar.ActionChangeCaseStage, "stage", "Stage"),
		},
		{
			name:        "add_case_tag",
			description: `Add a tag to a case.

Workflow: Use to categorize a case by threat type, campaign or business unit. Tags filter cases in dashboards and reports.

Next steps:
- post_case_comment to record the reason.
- get_case_full_details to verify the tag.`,
			properties: map[string]any{
				argCaseID: caseIDProp(),
				"tag":     action.StringProp("The tag to add to the case."),
			},
			required: []string{argCaseID, "tag"},
			run:      caseAction(soar.ActionAddCaseTag, "tag", "Tag"),
		},
		{
			name:        "remove_case_tag",
			description: `Remove a tag from a case.

Workflow: Use when the categorization of a case changes or a tag was applied by mistake.

Next steps:
- post_case_comment to record the reason.
- add_case_tag to apply a corrected tag.`,
			properties: map[string]any{
				argCaseID: caseIDProp(),
				"tag":     action.StringProp("The tag to remove from the case."),
			},
			required: []string{argCaseID, "tag"},
			run:      caseAction(soar.ActionRemoveCaseTag, "tag", "Tag"),
		},
	}
}

func createCase(ctx context.Context, c Client, args map[string]any) (json.RawMessage, error) {
	var in struct {
		Name        string  `json:"name"`
		Priority    *string `json:"priority"`
		Description *string `json:"description"`
		Environment *string `json:"environment"`
	}
	if err := decode(args, &in); err != nil {
		return nil, err
	}
	body := struct {
		Name        string  `json:"Name"`
		Priority    *string `json:"Priority,omitempty"`
		Description *string `json:"Description,omitempty"`
		Environment *string `json:"Environment,omitempty"`
	}{in.Name, in.Priority, in.Description, in.Environment}
	return c.Post(ctx, soar.PathCases, body, nil)
}

func listCases(ctx context.Context, c Client, args map[string]any) (json.RawMessage, error) {
	var in struct {
		NextPageToken *string `json:"next_page_token"`
	}
	if err := decode(args, &in); err != nil {
		return nil, err
	}
	return c.Get(ctx, soar.PathCases, pageParams(in.NextPageToken, url.Values{"$expand": {"tags"}}))
}

type caseFullDetails struct {
	CaseDetails  json.RawMessage `json:"case_details"`
	CaseAlerts   json.RawMessage `json:"case_alerts"`
	CaseComments json.RawMessage `json:"case_comments"`
}

func getCaseFullDetails(ctx context.Context, c Client, args map[string]any) (json.RawMessage, error) {
	var in struct {
		CaseID string `json:"case_id"`
	}
	if err := decode(args, &in); err != nil {
		return nil, err
	}

	var out caseFullDetails
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.CaseDetails, err = c.Get(gctx, soar.CasePath(in.CaseID), nil)
		return err
	})
	g.Go(func() (err error) {
		out.CaseAlerts, err = c.Get(gctx, soar.CaseAlertsPath(in.CaseID), nil)
		return err
	})
	g.Go(func() (err error) {
		out.CaseComments, err = c.Get(gctx, soar.CaseCommentsPath(in.CaseID), nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if out.CaseDetails == nil && out.CaseAlerts == nil && out.CaseComments == nil {
		return nil, nil
	}
	return json.Marshal(out)
}

func postCaseComment(ctx context.Context, c Client, args map[string]any) (json.RawMessage, error) {
	var in struct {
		CaseID  string `json:"case_id"`
		Comment string `json:"comment"`
	}
	if err := decode(args, &in); err != nil {
		return nil, err
	}
	return c.Post(ctx, soar.CaseCommentsPath(in.CaseID), map[string]string{"Comment": in.Comment}, nil)
}

func changeCasePriority(ctx context.Context, c Client, args map[string]any) (json.RawMessage, error) {
	var in struct {
		CaseID   string `json:"case_id"`
		Priority string `json:"case_priority"`
	}
	if err := decode(args, &in); err != nil {
		return nil, err
	}
	return c.Patch(ctx, soar.CasePath(in.CaseID), map[string]string{"Priority": in.Priority}, nil)
}

func closeCase(ctx context.Context, c Client, args map[string]any) (json.RawMessage, error) {
	var in struct {
		CaseID    string  `json:"case_id"`
		RootCause string  `json:"root_cause"`
		Comment   string  `json:"comment"`
		Reason    string  `json:"reason"`
		Tags      *string `json:"tags"`
	}
	if err := decode(args, &in); err != nil {
		return nil, err
	}
	body := struct {
		CaseID    string  `json:"CaseId"`
		RootCause string  `json:"RootCause"`
		Comment   string  `json:"Comment"`
		Reason    string  `json:"Reason"`
		Tags      *string `json:"Tags,omitempty"`
	}{in.CaseID, in.RootCause, in.Comment, in.Reason, in.Tags}
	return c.Post(ctx, soar.CaseActionPath(soar.ActionCloseCase), body, nil)
}

// caseAction builds a tool that posts {"CaseId": ..., field: arg} to a
// named case action.
func caseAction(name, arg, field string) runFunc {
	return func(ctx context.Context, c Client, args map[string]any) (json.RawMessage, error) {
		var in struct {
			CaseID string `json:"case_id"`
		}
		if err := decode(args, &in); err != nil {
			return nil, err
		}
		value, _ := args[arg].(string)
		body := map[string]string{"CaseId": in.CaseID, field: value}
		return c.Post(ctx, soar.CaseActionPath(name), body, nil)
	}
}
