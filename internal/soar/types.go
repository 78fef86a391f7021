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

// Package soar is the transport client for the SOAR REST API.
//
// The client sends GET, POST and PATCH requests with the AppKey header and
// returns the JSON body verbatim. Failures split three ways: certificate
// and TLS trust failures and connection failures come back as *Error with
// an operator remedy, while HTTP error statuses and malformed bodies are
// logged and reported as an absent (nil) result.
package soar

import (
	"sort"
	"strings"
)

// DefaultScope is used when a call names neither targets nor a scope.
const DefaultScope = "All entities"

// TargetEntity identifies one entity an action should run against.
type TargetEntity struct {
	Identifier string `json:"Identifier"`
	EntityType string `json:"EntityType"`
}

// ScopeSet is the set of scope names accepted by the SOAR server.
// It is built once at startup and never modified.
type ScopeSet struct {
	members map[string]struct{}
	sorted  []string
}

// NewScopeSet builds a ScopeSet from the scopes reported by SOAR.
func NewScopeSet(scopes []string) ScopeSet {
	s := ScopeSet{members: make(map[string]struct{}, len(scopes))}
	for _, scope := range scopes {
		if _, dup := s.members[scope]; dup {
			continue
		}
		s.members[scope] = struct{}{}
		s.sorted = append(s.sorted, scope)
	}
	sort.Strings(s.sorted)
	return s
}

// Contains reports whether scope is accepted by the server.
func (s ScopeSet) Contains(scope string) bool {
	_, ok := s.members[scope]
	return ok
}

// Len returns the number of distinct scopes.
func (s ScopeSet) Len() int {
	return len(s.sorted)
}

// Sorted returns the scopes in ascending order.
func (s ScopeSet) Sorted() []string {
	out := make([]string, len(s.sorted))
	copy(out, s.sorted)
	return out
}

// String joins the sorted scopes with ", ".
func (s ScopeSet) String() string {
	return strings.Join(s.sorted, ", ")
}
