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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/santhosh-tekuri/jsonschema/v5"

	soarerrors "github.com/tombee/soarmcp/pkg/errors"
)

// Schema is a tool input schema: the flat form advertised to MCP clients
// and the compiled form used to check arguments.
type Schema struct {
	properties map[string]any
	required   []string
	compiled   *jsonschema.Schema
}

// NewSchema compiles a flat object schema for the named tool.
func NewSchema(tool string, properties map[string]any, required []string) (*Schema, error) {
	doc := map[string]any{
		"$schema":    "https://json-schema.org/draft/2020-12/schema",
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		doc["required"] = required
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding schema for %s: %w", tool, err)
	}

	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	schemaURL := fmt.Sprintf("https://soar-mcp.schemas.local/tools/%s.schema.json", tool)
	if err := c.AddResource(schemaURL, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("loading schema for %s: %w", tool, err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling schema for %s: %w", tool, err)
	}

	return &Schema{properties: properties, required: required, compiled: compiled}, nil
}

// InputSchema is the schema advertised in tools/list.
func (s *Schema) InputSchema() mcp.ToolInputSchema {
	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: s.properties,
		Required:   s.required,
	}
}

// Check validates args and returns them in canonical JSON form.
// Explicit nulls for optional arguments are treated as absent.
func (s *Schema) Check(args map[string]any) (map[string]any, error) {
	clean := make(map[string]any, len(args))
	for k, v := range args {
		if v == nil && !s.isRequired(k) {
			continue
		}
		clean[k] = v
	}

	raw, err := json.Marshal(clean)
	if err != nil {
		return nil, &soarerrors.ValidationError{Message: err.Error()}
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &soarerrors.ValidationError{Message: err.Error()}
	}

	if err := s.compiled.Validate(doc); err != nil {
		return nil, &soarerrors.ValidationError{Message: describe(err)}
	}
	return doc.(map[string]any), nil
}

func (s *Schema) isRequired(name string) bool {
	for _, r := range s.required {
		if r == name {
			return true
		}
	}
	return false
}

// describe flattens a jsonschema validation tree into "location: message"
// pairs, leaves only.
func describe(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}

	var parts []string
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			parts = append(parts, loc+": "+e.Message)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

// Decode copies canonical args into a struct with json tags.
func Decode(args map[string]any, into any) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, into)
}

// StringProp is a string property.
func StringProp(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

// BoolProp is a boolean property.
func BoolProp(description string) map[string]any {
	return map[string]any{"type": "boolean", "description": description}
}

// EnumProp is a string property restricted to values.
func EnumProp(description string, values []string) map[string]any {
	return map[string]any{"type": "string", "description": description, "enum": values}
}

// StringArrayProp is an array-of-strings property.
func StringArrayProp(description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"description": description,
		"items":       map[string]any{"type": "string"},
	}
}

// paramProp is the property for a vendor parameter.
func paramProp(p Param) map[string]any {
	prop := map[string]any{"type": string(p.Type), "description": p.Description}
	if len(p.Enum) > 0 {
		prop["enum"] = p.Enum
	}
	return prop
}

// Standard argument names shared by every vendor action tool.
const (
	ArgCaseID                = "case_id"
	ArgAlertGroupIdentifiers = "alert_group_identifiers"
	ArgTargetEntities        = "target_entities"
	ArgScope                 = "scope"
)

func targetEntitiesProp() map[string]any {
	return map[string]any{
		"type":        "array",
		"description": "Optional list of specific target entities (Identifier, EntityType) to run the action on.",
		"default":     []any{},
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"Identifier": map[string]any{"type": "string"},
				"EntityType": map[string]any{"type": "string"},
			},
			"required": []string{"Identifier", "EntityType"},
		},
	}
}

func scopeProp() map[string]any {
	return map[string]any{
		"type":        "string",
		"description": "Defines the scope for the action.",
		"default":     "All entities",
	}
}

// InvalidArguments is the failure returned when Check rejects a call.
func InvalidArguments(err error) Result {
	msg := err.Error()
	var ve *soarerrors.ValidationError
	if soarerrors.As(err, &ve) {
		msg = ve.Message
	}
	return Failedf("Invalid arguments: %s", msg)
}
