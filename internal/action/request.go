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

package action

import (
	"encoding/json"

	"github.com/tombee/soarmcp/internal/soar"
)

// actionProvider is the provider SOAR expects for manual script actions.
const actionProvider = "Scripts"

// Request is the body POSTed to ExecuteManualAction.
type Request struct {
	AlertGroupIdentifiers []string            `json:"alertGroupIdentifiers"`
	CaseID                string              `json:"caseId"`
	TargetEntities        []soar.TargetEntity `json:"targetEntities"`
	Scope                 *string             `json:"scope"`
	IsPredefinedScope     bool                `json:"isPredefinedScope"`
	ActionProvider        string              `json:"actionProvider"`
	ActionName            string              `json:"actionName"`
	Properties            map[string]string   `json:"properties"`
}

// scriptParams keeps every present parameter, falsy values included, and
// drops the ones that were never given.
func scriptParams(params map[string]any) map[string]any {
	out := make(map[string]any, len(params))
	for k, v := range params {
		if v == nil {
			continue
		}
		out[k] = v
	}
	return out
}

func newRequest(call Call, res Resolution, instance string) (Request, error) {
	fields, err := json.Marshal(scriptParams(call.Params))
	if err != nil {
		return Request{}, err
	}

	groups := call.AlertGroupIdentifiers
	if groups == nil {
		groups = []string{}
	}
	targets := res.Targets
	if targets == nil {
		targets = []soar.TargetEntity{}
	}
	scriptName := call.Provider + "_" + call.Action

	return Request{
		AlertGroupIdentifiers: groups,
		CaseID:                call.CaseID,
		TargetEntities:        targets,
		Scope:                 res.Scope,
		IsPredefinedScope:     res.IsPredefinedScope,
		ActionProvider:        actionProvider,
		ActionName:            scriptName,
		Properties: map[string]string{
			"IntegrationInstance":          instance,
			"ScriptName":                   scriptName,
			"ScriptParametersEntityFields": string(fields),
		},
	}, nil
}
