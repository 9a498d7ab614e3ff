// Copyright 2025 Poiesic Systems
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


package openai

import "regexp"

// unquotedKey matches an object key missing its opening quote, e.g.
// `{plausibility":` or `, sentence":`. Small local models drop the opening
// quote often enough to be worth repairing before the unmarshal attempt.
var unquotedKey = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z_ ]*)(":)`)

// trailingComma matches a comma directly before a closing bracket or brace.
var trailingComma = regexp.MustCompile(`,(\s*[}\]])`)

// repairJSON attempts to fix common JSON formatting issues from LLM responses.
// It restores missing opening quotes on keys and removes trailing commas.
// Well-formed input passes through unchanged.
func repairJSON(s string) string {
	s = unquotedKey.ReplaceAllString(s, `$1"$2$3`)
	s = trailingComma.ReplaceAllString(s, `$1`)
	return s
}
