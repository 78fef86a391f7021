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
	"fmt"

	"github.com/tombee/soarmcp/internal/soar"
)

// Resolution is the outcome of choosing between explicit targets and a
// predefined scope.
type Resolution struct {
	Targets           []soar.TargetEntity
	Scope             *string
	IsPredefinedScope bool
}

// Resolve decides what an action runs against. Non-empty targets always
// win and the scope is ignored. Otherwise the scope must be one of valid.
// Only a nil scope defaults to soar.DefaultScope; an empty string is
// rejected like any other unknown scope.
func Resolve(targets []soar.TargetEntity, scope *string, valid soar.ScopeSet) (Resolution, error) {
	if len(targets) > 0 {
		return Resolution{Targets: targets}, nil
	}

	name := soar.DefaultScope
	if scope != nil {
		name = *scope
	}
	if !valid.Contains(name) {
		return Resolution{}, fmt.Errorf("Invalid scope '%s'. Allowed values are: %s", name, valid.String())
	}
	return Resolution{
		Targets:           []soar.TargetEntity{},
		Scope:             &name,
		IsPredefinedScope: true,
	}, nil
}
