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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Text(t *testing.T) {
	assert.Equal(t, `{"Status":"Failed","Message":"No active instance found."}`, Failed("No active instance found.").Text())
	assert.Equal(t, `{"id": 1}`, Ok(json.RawMessage(`{"id": 1}`)).Text())
	assert.Equal(t, "null", Ok(nil).Text())
}

func TestResult_Accessors(t *testing.T) {
	f := Failedf("Error executing action: %s", "boom")
	assert.True(t, f.IsFailed())
	assert.Equal(t, "Error executing action: boom", f.Message())
	assert.Nil(t, f.Payload())

	ok := Ok(json.RawMessage(`[]`))
	assert.False(t, ok.IsFailed())
	assert.Empty(t, ok.Message())
	assert.Equal(t, json.RawMessage(`[]`), ok.Payload())
}

func TestResult_EmbedsInJSON(t *testing.T) {
	out, err := json.Marshal(map[string]Result{"a": Ok(json.RawMessage(`{"x":1}`)), "b": Failed("nope")})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"a":{"x":1},"b":{"Status":"Failed","Message":"nope"}}`, string(out))
}
