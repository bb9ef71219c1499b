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

// ParseRobotsTxt lexes robotsBody and emits parse callbacks to handler. It
// accepts typical typos found in robots.txt (such as "disalow") and skips,
// silently, anything that doesn't look like a directive. It never panics
// and never returns an error: every anomaly degrades to "this line is
// ignored".
func ParseRobotsTxt(robotsBody string, handler RobotsParseHandler) {
	parseRobotsTxt(robotsBody, handler, nil)
}

// parseRobotsTxt is the internal entry point shared by ParseRobotsTxt and
// Parse; diag, when non-nil, receives a Warning for every anomaly this
// function silently recovers from.
func parseRobotsTxt(robotsBody string, handler RobotsParseHandler, diag *Diagnostics) {
	handler.HandleRobotsStart()
	lex(robotsBody, func(lineNum int, line string, truncated bool) {
		if truncated {
			diag.warnf(lineNum, "line truncated to %d bytes", maxLineLen)
		}
		parseAndEmitLine(lineNum, line, handler, diag)
	})
	handler.HandleRobotsEnd()
}

func parseAndEmitLine(lineNum int, line string, handler RobotsParseHandler, diag *Diagnostics) {
	if comment := strings.IndexByte(line, '#'); comment != -1 {
		line = line[:comment]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	stringKey, value, ok := getKeyAndValue(line)
	if !ok {
		diag.warnf(lineNum, "line has no recognisable key/value separator")
		return
	}

	key := &robotsKey{}
	key.parse(stringKey)
	if key.typ == Unknown {
		diag.warnf(lineNum, "unrecognised directive %q", stringKey)
	}
	emitKeyValue(lineNum, key, value, handler)
}
