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

// Package naming converts display names such as "SpyCloud" or
// "Get Ip Info" into the snake_case identifiers used for integration
// keys, tool names and tool argument names.
package naming

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// Runs of a capitalized word preceded by anything: "GetInfo" -> "Get_Info".
	wordBoundary = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	// Lower or digit followed by upper: "ipV4" -> "ip_V4".
	lowerUpper = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	// Acronym followed by a word: "ESMQuery" -> "ESM_Query".
	acronymWord = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	// Anything that is not a letter or a digit collapses to one separator.
	separators = regexp.MustCompile(`[^\p{L}\p{N}]+`)

	dropped = strings.NewReplacer(
		"(", "", ")", "", "|", "", "'", "", "`", "", `"`, "", "’", "",
		"->", "to",
	)
)

// Normalize returns the canonical snake_case form of name.
//
// The function is total and deterministic, and Normalize(Normalize(x))
// equals Normalize(x). The result contains only lower-cased letters,
// digits and single underscores, with no leading or trailing underscore.
func Normalize(name string) string {
	s := dropped.Replace(name)
	s = wordBoundary.ReplaceAllString(s, "${1}_${2}")
	s = lowerUpper.ReplaceAllString(s, "${1}_${2}")
	s = acronymWord.ReplaceAllString(s, "${1}_${2}")
	// Fold maps Cherokee to upper case, so lower instead. cases.Caser is
	// stateful and not safe for concurrent use.
	s = cases.Lower(language.Und).String(s)
	s = separators.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

