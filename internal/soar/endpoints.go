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

package soar

import (
	"net/url"
)

// Fixed SOAR REST endpoints.
const (
	PathGetScopes           = "/api/external/v1/settings/GetScopes"
	PathExecuteManualAction = "/api/external/v1/cases/ExecuteManualAction"
	PathCases               = "/api/1p/external/v1/cases"
	PathAlertsEntities      = "/api/external/v1/case-overview/GetAlertsEntities"
	PathEntityData          = "/api/external/v1/entities/GetEntityData"
	PathEntitySearch        = "/api/external/v1.0/entity-search/entities"

	pathIntegrations = "/api/1p/external/v1/integrations"
	pathCasesV10     = "/api/1p/external/v1.0/cases"
	pathCaseActions  = "/api/external/v1/cases"
)

// Case actions served under /api/external/v1/cases/<name>.
const (
	ActionChangeCaseDescription = "ChangeCaseDescription"
	ActionCloseCase             = "CloseCase"
	ActionAssignUserToCase      = "AssignUserToCase"
	ActionChangeCaseStage       = "ChangeCaseStage"
	ActionAddCaseTag            = "AddCaseTag"
	ActionRemoveCaseTag         = "RemoveCaseTag"
)

// IntegrationInstancesPath lists the instances configured for a provider.
func IntegrationInstancesPath(provider string) string {
	return pathIntegrations + "/" + url.PathEscape(provider) + "/integrationInstances"
}

// CasePath addresses a single case.
func CasePath(caseID string) string {
	return PathCases + "/" + url.PathEscape(caseID)
}

// CaseCommentsPath addresses the comments of a case.
func CaseCommentsPath(caseID string) string {
	return CasePath(caseID) + "/comments"
}

// CaseAlertsPath addresses the alerts of a case.
func CaseAlertsPath(caseID string) string {
	return pathCasesV10 + "/" + url.PathEscape(caseID) + "/caseAlerts"
}

// AlertEventsPath addresses the events involved in one alert. The server
// serves this under "alerts", not "caseAlerts".
func AlertEventsPath(caseID, alertID string) string {
	return pathCasesV10 + "/" + url.PathEscape(caseID) + "/alerts/" + url.PathEscape(alertID) + "/involvedEvents"
}

// CaseActionPath addresses a named case action such as CloseCase.
func CaseActionPath(action string) string {
	return pathCaseActions + "/" + action
}
