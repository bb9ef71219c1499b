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

// MatchStrategy defines a strategy for matching individual robots.txt
// lines. Each MatchAllow/MatchDisallow call returns a match priority:
//
//	priority < 0:  no match.
//	priority == 0: match, treated as if it matched an empty pattern.
//	priority > 0:  match; higher priority wins over a lower one.
type MatchStrategy interface {
	MatchAllow(path, pattern string) int
	MatchDisallow(path, pattern string) int
	Matches(path, pattern string) bool
}

// LongestMatchStrategy is the default, REP-mandated strategy: the
// matching pattern with the most bytes wins, `*` and `$` metacharacters
// counting as one byte each, ties broken in favour of Allow by the
// decision procedure in match.go.
type LongestMatchStrategy struct{}

func (s LongestMatchStrategy) MatchAllow(path, pattern string) int {
	return s.priority(path, pattern)
}

func (s LongestMatchStrategy) MatchDisallow(path, pattern string) int {
	return s.priority(path, pattern)
}

func (s LongestMatchStrategy) priority(path, pattern string) int {
	if s.Matches(path, pattern) {
		return len(pattern)
	}
	return -1
}

func (s LongestMatchStrategy) Matches(path, pattern string) bool {
	return matchesPattern(path, pattern)
}

// matchesPattern reports whether path matches pattern. Pattern is anchored
// at the start of path; '*' matches any (possibly empty) byte sequence;
// '$' is special only as the final byte, anchoring the match to the end
// of path. All other bytes match literally and case-sensitively.
//
// This is a direct port of the reference implementation's single-pass
// algorithm: pos holds the sorted set of path offsets that could still
// extend into a full match of the pattern prefix consumed so far.
func matchesPattern(path, pattern string) bool {
	pathLen := len(path)
	pos := make([]int, pathLen+1)
	numPos := 1
	pos[0] = 0

	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '$' && i+1 == len(pattern) {
			return pos[numPos-1] == pathLen
		}
		if pattern[i] == '*' {
			numPos = pathLen - pos[0] + 1
			for j := 1; j < numPos; j++ {
				pos[j] = pos[j-1] + 1
			}
			continue
		}
		newNumPos := 0
		for j := 0; j < numPos; j++ {
			if pos[j] < pathLen && path[pos[j]] == pattern[i] {
				pos[newNumPos] = pos[j] + 1
				newNumPos++
			}
		}
		numPos = newNumPos
		if numPos == 0 {
			return false
		}
	}
	return true
}

// indexHTMLShorthand reports whether pattern ends, byte for byte, in
// "/index.htm" or "/index.html" — the Google-specific shorthand under
// which an Allow of "/X/index.html" also allows "/X/". It returns the
// equivalent end-anchored directory pattern and true when it applies.
//
// This only ever runs for Allow rules (see matchPriority in match.go), matching
// the reference implementation, which never extends Disallow this way.
func indexHTMLShorthand(pattern string) (directoryPattern string, ok bool) {
	slash := strings.LastIndexByte(pattern, '/')
	if slash == -1 {
		return "", false
	}
	tail := pattern[slash:]
	if tail != "/index.htm" && tail != "/index.html" {
		return "", false
	}
	return pattern[:slash+1] + "$", true
}
