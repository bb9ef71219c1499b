// Copyright 2020 Jim Smart
// Copyright 1999 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package robotsmatch

import "strings"

// maxLineLen is the per-line truncation cap: 2083*8. Certain browsers limit
// URL length to 2083 bytes; a robots.txt line longer than many times that
// is assumed pathological, so bytes past this point are dropped before
// key/value extraction. Do not change this without corpus testing.
const maxLineLen = 2083 * 8

var utfBOM = "\xEF\xBB\xBF"

// lex splits robotsBody into lines on LF, CR, or CRLF, truncates each line
// to maxLineLen bytes, strips a leading UTF-8 BOM if present, and invokes
// emit once per line with its 1-based line number, raw text (still
// carrying any trailing comment, to be stripped by the caller), and
// whether the line was truncated to reach maxLineLen.
//
// A lone CR immediately followed by LF is treated as a single terminator,
// not two empty lines.
func lex(robotsBody string, emit func(lineNum int, line string, truncated bool)) {
	body := robotsBody
	if strings.HasPrefix(body, utfBOM) {
		body = body[len(utfBOM):]
	}

	lineNum := 0
	start := 0
	skipNextLF := false

	truncate := func(s string) (string, bool) {
		if len(s) > maxLineLen {
			return s[:maxLineLen], true
		}
		return s, false
	}

	for i := 0; i < len(body); i++ {
		b := body[i]
		if b != '\n' && b != '\r' {
			skipNextLF = false
			continue
		}
		if b == '\n' && skipNextLF {
			skipNextLF = false
			start = i + 1
			continue
		}
		lineNum++
		line, truncated := truncate(body[start:i])
		emit(lineNum, line, truncated)
		start = i + 1
		skipNextLF = b == '\r'
	}
	lineNum++
	line, truncated := truncate(body[start:])
	emit(lineNum, line, truncated)
}
