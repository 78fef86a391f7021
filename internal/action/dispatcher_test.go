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
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"sync"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/soarmcp/internal/soar"
)

// fakeClient records calls and returns canned responses.
type fakeClient struct {
	mu sync.Mutex

	getBody  json.RawMessage
	getErr   error
	postBody json.RawMessage
	postErr  error
	panicMsg string

	gets     []string
	getQuery []url.Values
	posts    []any
}

func (f *fakeClient) Get(_ context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	f.gets = append(f.gets, endpoint)
	f.getQuery = append(f.getQuery, params)
	return f.getBody, f.getErr
}

func (f *fakeClient) Post(_ context.Context, endpoint string, body any, _ url.Values) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts = append(f.posts, body)
	return f.postBody, f.postErr
}

func (f *fakeClient) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.gets) + len(f.posts)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestDispatcher(c Client) *Dispatcher {
	return NewDispatcher(c, testScopes, WithLogger(quietLogger()))
}

const oneInstance = `{"integration_instances":[{"identifier":"inst-1"},{"identifier":"inst-2"}]}`

func baseCall() Call {
	return Call{
		Provider:              "HTTPV2",
		Action:                "Execute HTTP Request",
		CaseID:                "42",
		AlertGroupIdentifiers: []string{"ag-1"},
	}
}

func TestExecute_InvalidScopeMakesNoRequests(t *testing.T) {
	client := &fakeClient{getBody: json.RawMessage(oneInstance)}
	call := baseCall()
	call.Scope = strPtr("Bad Scope")

	res := newTestDispatcher(client).Execute(context.Background(), call)

	assert.True(t, res.IsFailed())
	assert.Equal(t, "Invalid scope 'Bad Scope'. Allowed values are: All entities, Only Entities", res.Message())
	assert.Zero(t, client.calls())
}

func TestExecute_InstanceFailures(t *testing.T) {
	tests := []struct {
		name    string
		client  *fakeClient
		wantMsg string
	}{
		{
			name:    "empty instance list",
			client:  &fakeClient{getBody: json.RawMessage(`{"integration_instances":[]}`)},
			wantMsg: "No active instance found.",
		},
		{
			name:    "instance list key missing",
			client:  &fakeClient{getBody: json.RawMessage(`{}`)},
			wantMsg: "No active instance found.",
		},
		{
			name:    "identifier missing",
			client:  &fakeClient{getBody: json.RawMessage(`{"integration_instances":[{"name":"x"}]}`)},
			wantMsg: "Instance found but identifier is missing.",
		},
		{
			name:    "identifier empty",
			client:  &fakeClient{getBody: json.RawMessage(`{"integration_instances":[{"identifier":""}]}`)},
			wantMsg: "Instance found but identifier is missing.",
		},
		{
			name:    "absent response",
			client:  &fakeClient{},
			wantMsg: "Error fetching instance: SOAR returned no result",
		},
		{
			name: "transport failure",
			client: &fakeClient{getErr: &soar.Error{
				Kind: soar.KindConnection, Message: "Failed to connect to SOAR at 'https://soar'", Cause: syscall.ECONNREFUSED,
			}},
			wantMsg: "Error fetching instance: Failed to connect to SOAR at 'https://soar'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newTestDispatcher(tt.client).Execute(context.Background(), baseCall())
			assert.True(t, res.IsFailed())
			assert.Equal(t, tt.wantMsg, res.Message())
			assert.Empty(t, tt.client.posts)
		})
	}
}

func TestExecute_NoActiveInstanceJSON(t *testing.T) {
	client := &fakeClient{getBody: json.RawMessage(`{"integration_instances":[]}`)}
	res := newTestDispatcher(client).Execute(context.Background(), baseCall())
	assert.JSONEq(t, `{"Status":"Failed","Message":"No active instance found."}`, res.Text())
}

func TestExecute_LooksUpProviderInstances(t *testing.T) {
	client := &fakeClient{getBody: json.RawMessage(oneInstance), postBody: json.RawMessage(`{}`)}
	newTestDispatcher(client).Execute(context.Background(), baseCall())

	require.Len(t, client.gets, 1)
	assert.Equal(t, "/api/1p/external/v1/integrations/HTTPV2/integrationInstances", client.gets[0])
	assert.Equal(t, "identifier", client.getQuery[0].Get("$select"))
}

func TestExecute_ScopeEnvelope(t *testing.T) {
	client := &fakeClient{getBody: json.RawMessage(oneInstance), postBody: json.RawMessage(`{"executed":true}`)}
	call := baseCall()
	call.Scope = strPtr("Only Entities")
	call.Params = map[string]any{
		"URL Path":         "https://example.com",
		"Follow Redirects": false,
		"Body Payload":     "",
		"Headers":          nil,
	}

	res := newTestDispatcher(client).Execute(context.Background(), call)
	require.False(t, res.IsFailed(), res.Message())
	assert.JSONEq(t, `{"executed":true}`, res.Text())

	require.Len(t, client.posts, 1)
	raw, err := json.Marshal(client.posts[0])
	require.NoError(t, err)

	var env map[string]any
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, []any{"ag-1"}, env["alertGroupIdentifiers"])
	assert.Equal(t, "42", env["caseId"])
	assert.Equal(t, []any{}, env["targetEntities"])
	assert.Equal(t, "Only Entities", env["scope"])
	assert.Equal(t, true, env["isPredefinedScope"])
	assert.Equal(t, "Scripts", env["actionProvider"])
	assert.Equal(t, "HTTPV2_Execute HTTP Request", env["actionName"])

	props, ok := env["properties"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "inst-1", props["IntegrationInstance"])
	assert.Equal(t, "HTTPV2_Execute HTTP Request", props["ScriptName"])

	fieldsJSON, ok := props["ScriptParametersEntityFields"].(string)
	require.True(t, ok, "script parameters must be a JSON string")
	var fields map[string]any
	require.NoError(t, json.Unmarshal([]byte(fieldsJSON), &fields))
	assert.Equal(t, map[string]any{
		"URL Path":         "https://example.com",
		"Follow Redirects": false,
		"Body Payload":     "",
	}, fields)
}

func TestExecute_TargetEnvelope(t *testing.T) {
	client := &fakeClient{getBody: json.RawMessage(oneInstance), postBody: json.RawMessage(`{}`)}
	call := baseCall()
	call.Scope = strPtr("Bad Scope")
	call.TargetEntities = []soar.TargetEntity{{Identifier: "evil.example", EntityType: "DOMAIN"}}

	res := newTestDispatcher(client).Execute(context.Background(), call)
	require.False(t, res.IsFailed(), res.Message())

	raw, err := json.Marshal(client.posts[0])
	require.NoError(t, err)
	var env map[string]any
	require.NoError(t, json.Unmarshal(raw, &env))

	scope, present := env["scope"]
	assert.True(t, present)
	assert.Nil(t, scope)
	assert.Equal(t, false, env["isPredefinedScope"])
	assert.Equal(t, []any{map[string]any{"Identifier": "evil.example", "EntityType": "DOMAIN"}}, env["targetEntities"])

	props := env["properties"].(map[string]any)
	assert.Equal(t, "{}", props["ScriptParametersEntityFields"])
}

func TestExecute_DispatchFailures(t *testing.T) {
	tests := []struct {
		name    string
		client  *fakeClient
		wantMsg string
	}{
		{
			name:    "absent response",
			client:  &fakeClient{getBody: json.RawMessage(oneInstance)},
			wantMsg: "Error executing action: SOAR returned no result",
		},
		{
			name:    "transport failure",
			client:  &fakeClient{getBody: json.RawMessage(oneInstance), postErr: errors.New("boom")},
			wantMsg: "Error executing action: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newTestDispatcher(tt.client).Execute(context.Background(), baseCall())
			assert.True(t, res.IsFailed())
			assert.Equal(t, tt.wantMsg, res.Message())
		})
	}
}

func TestExecute_UnencodableParams(t *testing.T) {
	client := &fakeClient{getBody: json.RawMessage(oneInstance), postBody: json.RawMessage(`{}`)}
	call := baseCall()
	call.Params = map[string]any{"Bad": make(chan int)}

	res := newTestDispatcher(client).Execute(context.Background(), call)
	assert.True(t, res.IsFailed())
	assert.Contains(t, res.Message(), "Error executing action: ")
	assert.Empty(t, client.posts)
}

func TestExecute_RecoversPanics(t *testing.T) {
	client := &fakeClient{panicMsg: "kaboom"}
	res := newTestDispatcher(client).Execute(context.Background(), baseCall())
	assert.True(t, res.IsFailed())
	assert.Equal(t, "Unexpected error: kaboom", res.Message())
}

func TestExecute_Concurrent(t *testing.T) {
	client := &fakeClient{getBody: json.RawMessage(oneInstance), postBody: json.RawMessage(`{}`)}
	d := newTestDispatcher(client)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := d.Execute(context.Background(), baseCall())
			assert.False(t, res.IsFailed())
		}()
	}
	wg.Wait()
	assert.Equal(t, 40, client.calls())
}
