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

// IsUserAgentAllowed is the one-shot convenience form: it parses
// robotsBody and returns the allow decision for (userAgent, uri) in a
// single call. Prefer Parse + (*RuleSet).AllowedByRobots when checking
// many URLs against the same document, to amortise parsing.
//
// An empty robotsBody or empty userAgent yields true (allow).
func IsUserAgentAllowed(robotsBody, userAgent, uri string) bool {
	if robotsBody == "" || userAgent == "" {
		return true
	}
	return Parse(robotsBody).AllowedByRobots(userAgent, uri)
}

// AgentAllowed is an alias for IsUserAgentAllowed, matching the naming
// the reference library's consumers expect.
func AgentAllowed(robotsBody, userAgent, uri string) bool {
	return IsUserAgentAllowed(robotsBody, userAgent, uri)
}

// AgentsAllowed reports whether uri is allowed for any of userAgents. A
// robots.txt grants access if at least one of the caller's identities is
// permitted to fetch the URL.
func AgentsAllowed(robotsBody string, userAgents []string, uri string) bool {
	if robotsBody == "" || len(userAgents) == 0 {
		return true
	}
	rs := Parse(robotsBody)
	for _, ua := range userAgents {
		if ua == "" {
			return true
		}
		if rs.AllowedByRobots(ua, uri) {
			return true
		}
	}
	return false
}

// ExtractUserAgent returns the leading run of userAgent's bytes that are
// valid in a user-agent token: ASCII letters, '-', and '_'. It stops at
// the first byte outside that set.
func ExtractUserAgent(userAgent string) string {
	i := 0
	for ; i < len(userAgent); i++ {
		c := userAgent[i]
		if !(isASCIIAlpha(c) || c == '-' || c == '_') {
			break
		}
	}
	return userAgent[:i]
}

func isASCIIAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// IsValidUserAgentToObey reports whether userAgent is a syntactically
// well-formed user-agent token: non-empty and consisting entirely of
// [A-Za-z_-], with no whitespace or other punctuation. It is a standalone
// validity check, not used internally by matching.
func IsValidUserAgentToObey(userAgent string) bool {
	return len(userAgent) > 0 && ExtractUserAgent(userAgent) == userAgent
}

// Sitemaps parses robotsBody and returns its sitemap URLs, in source
// order. Equivalent to Parse(robotsBody).Sitemaps.
func Sitemaps(robotsBody string) []string {
	return Parse(robotsBody).Sitemaps
}
