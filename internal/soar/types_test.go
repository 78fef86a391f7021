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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeSet(t *testing.T) {
	s := NewScopeSet([]string{"Only Entities", "All entities", "Only Entities"})

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("All entities"))
	assert.False(t, s.Contains("all entities"))
	assert.Equal(t, []string{"All entities", "Only Entities"}, s.Sorted())
	assert.Equal(t, "All entities, Only Entities", s.String())

	sorted := s.Sorted()
	sorted[0] = "mutated"
	assert.True(t, s.Contains("All entities"))
	assert.Equal(t, "All entities", s.Sorted()[0])
}

func TestScopeSet_Zero(t *testing.T) {
	var s ScopeSet
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(DefaultScope))
	assert.Equal(t, "", s.String())
}

func TestEndpointPaths(t *testing.T) {
	assert.Equal(t, "/api/1p/external/v1/cases/7/comments", CaseCommentsPath("7"))
	assert.Equal(t, "/api/1p/external/v1.0/cases/7/caseAlerts", CaseAlertsPath("7"))
	assert.Equal(t, "/api/1p/external/v1.0/cases/7/alerts/9/involvedEvents", AlertEventsPath("7", "9"))
	assert.Equal(t, "/api/external/v1/cases/CloseCase", CaseActionPath(ActionCloseCase))
	assert.Equal(t, "/api/1p/external/v1/integrations/HTTP%20V2/integrationInstances", IntegrationInstancesPath("HTTP V2"))
}
