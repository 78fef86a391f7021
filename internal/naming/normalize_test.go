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

package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain lower", input: "csv", want: "csv"},
		{name: "acronym", input: "CSV", want: "csv"},
		{name: "acronym with digit", input: "HTTPV2", want: "httpv2"},
		{name: "camel case", input: "SpyCloud", want: "spy_cloud"},
		{name: "camel three words", input: "SiemplifyThreatFuse", want: "siemplify_threat_fuse"},
		{name: "acronym tail", input: "McAfeeESM", want: "mc_afee_esm"},
		{name: "acronym then word", input: "ArcSightLogger", want: "arc_sight_logger"},
		{name: "spaces", input: "Get Ip Info", want: "get_ip_info"},
		{name: "surrounding whitespace", input: "  okta  ", want: "okta"},
		{name: "provider and action", input: "Cloudflare_Add IP To Rule List", want: "cloudflare_add_ip_to_rule_list"},
		{name: "arrow", input: "IP->Host", want: "i_pto_host"},
		{name: "quotes and parens", input: "Max Results (per 'page')", want: "max_results_per_page"},
		{name: "punctuation collapses", input: "a -- b..c", want: "a_b_c"},
		{name: "already normalized", input: "return_tt_ps", want: "return_tt_ps"},
		{name: "unicode letters", input: "Café Olé", want: "café_olé"},
		{name: "cherokee small letter", input: "ꭰX", want: "ꭰx"},
		{name: "cherokee capital letter", input: "Ꭰ", want: "ꭰ"},
		{name: "empty", input: "", want: ""},
		{name: "only separators", input: " _-_ ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"SpyCloud", "Return TTPs", " Sentinel One V2 ", "MicrosoftDefenderATP", "a__b", "İstanbul", "ꭰX", "Ꭰ", "ᏣᎳᎩ"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}
