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

// MatchOutcome is the result of evaluating a RuleSet against an
// (agent, path) pair.
type MatchOutcome int

const (
	// NoRulesApply means no group matched the agent at all; treated as
	// Allowed by the public API.
	NoRulesApply MatchOutcome = iota
	Allowed
	Disallowed
)

// AllowedByRobots reports whether userAgent may fetch uri, according to
// rs. It never errors: an empty uri resolves to the path "/" (see
// GetPathParamsQuery), and an
// empty userAgent matches no group (falling through to global rules, or
// to Allowed if none exist).
func (rs *RuleSet) AllowedByRobots(userAgent, uri string) bool {
	outcome := rs.Evaluate(userAgent, uri)
	return outcome != Disallowed
}

// Evaluate runs the full group-selection and REP decision procedure and
// returns the raw outcome, including whether any group applied at all.
// Most callers want AllowedByRobots.
func (rs *RuleSet) Evaluate(userAgent, uri string) MatchOutcome {
	path := GetPathParamsQuery(uri)
	rules, anyApplied := rs.applicableRules(userAgent)
	if !anyApplied {
		return NoRulesApply
	}
	return decide(rules, path)
}

// applicableRules unions the rules of every non-global group whose agent
// token matches requestAgent. If at least one specific group matched, the
// global groups are ignored entirely. Otherwise it falls back to the
// union of all global groups. anyApplied is false only when no group at
// all applies.
func (rs *RuleSet) applicableRules(requestAgent string) (rules []Rule, anyApplied bool) {
	agent := normalizeAgentToken(requestAgent)

	var globalRules []Rule
	haveGlobal := false
	for _, g := range rs.Groups {
		if g.Global {
			globalRules = append(globalRules, g.Rules...)
			haveGlobal = true
			continue
		}
		if agentMatchesGroup(agent, &g) {
			rules = append(rules, g.Rules...)
			anyApplied = true
		}
	}
	if anyApplied {
		return rules, true
	}
	if haveGlobal {
		return globalRules, true
	}
	return nil, false
}

// normalizeAgentToken lowercases an agent token and truncates it at the
// first whitespace byte ("Googlebot Images" becomes "googlebot"). It is
// applied symmetrically to both the requesting agent
// and each group's declared user-agent value, so that a multi-word
// User-agent line in the source is matched the same way a multi-word
// request identity is.
func normalizeAgentToken(agent string) string {
	if end := strings.IndexAny(agent, " \t"); end != -1 {
		agent = agent[:end]
	}
	return strings.ToLower(agent)
}

// agentMatchesGroup reports whether any of g's agent tokens is a
// case-insensitive ASCII prefix of agent (already lowercased), ending
// either at end-of-string or at a non-alphanumeric byte of agent — so
// "foo" matches "foo" and "foo-bar" but not "foobar".
func agentMatchesGroup(agent string, g *Group) bool {
	for _, token := range g.Agents {
		if token == "*" {
			continue
		}
		if agentMatchesToken(agent, token) {
			return true
		}
	}
	return false
}

func agentMatchesToken(agent, token string) bool {
	if !strings.HasPrefix(agent, token) {
		return false
	}
	if len(agent) == len(token) {
		return true
	}
	return !isAlphanumericASCII(agent[len(token)])
}

func isAlphanumericASCII(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// decide implements the REP longest-match decision procedure: collect
// every matching Allow/Disallow rule, compare the longest pattern length
// on each side, and favour Allow on a tie.
func decide(rules []Rule, path string) MatchOutcome {
	strategy := LongestMatchStrategy{}

	maxAllow := -1
	maxDisallow := -1

	for _, r := range rules {
		switch r.Kind {
		case AllowRule:
			if p := matchPriority(strategy, path, r.Pattern, true); p > maxAllow {
				maxAllow = p
			}
		case DisallowRule:
			if p := matchPriority(strategy, path, r.Pattern, false); p > maxDisallow {
				maxDisallow = p
			}
		}
	}

	if maxAllow < 0 && maxDisallow < 0 {
		return Allowed
	}
	if maxAllow >= maxDisallow {
		return Allowed
	}
	return Disallowed
}

// matchPriority evaluates one rule's pattern against path, applying the
// Google-specific "/index.html" directory shorthand for Allow rules when
// the literal pattern doesn't match directly.
func matchPriority(strategy MatchStrategy, path, pattern string, isAllow bool) int {
	if pattern == "" {
		return -1
	}
	var priority int
	if isAllow {
		priority = strategy.MatchAllow(path, pattern)
	} else {
		priority = strategy.MatchDisallow(path, pattern)
	}
	if priority >= 0 || !isAllow {
		return priority
	}
	if dirPattern, ok := indexHTMLShorthand(pattern); ok {
		return strategy.MatchAllow(path, dirPattern)
	}
	return priority
}

// GetPathParamsQuery extracts the path (with params) and query part of a
// URL, stripping scheme, authority, and fragment. The result always
// starts with "/"; it returns "/" if uri has no path or isn't a URL at
// all — callers are expected to percent-encode uri themselves.
func GetPathParamsQuery(uri string) string {
	searchStart := 0
	if len(uri) >= 2 && uri[0] == '/' && uri[1] == '/' {
		searchStart = 2
	}

	earlyPath := indexAny(uri, "/?;", searchStart)
	protocolEnd := indexOf(uri, "://", searchStart)
	if earlyPath != -1 && earlyPath < protocolEnd {
		protocolEnd = -1
	}
	if protocolEnd == -1 {
		protocolEnd = searchStart
	} else {
		protocolEnd += len("://")
	}

	pathStart := indexAny(uri, "/?;", protocolEnd)
	if pathStart == -1 {
		return "/"
	}

	hashPos := indexByte(uri, '#', searchStart)
	if hashPos != -1 && hashPos < pathStart {
		return "/"
	}
	pathEnd := len(uri)
	if hashPos != -1 {
		pathEnd = hashPos
	}
	if uri[pathStart] != '/' {
		return "/" + uri[pathStart:pathEnd]
	}
	return uri[pathStart:pathEnd]
}

func indexAny(s, chars string, from int) int {
	if from >= len(s) {
		return -1
	}
	j := strings.IndexAny(s[from:], chars)
	if j == -1 {
		return -1
	}
	return j + from
}

func indexOf(s, sub string, from int) int {
	if from >= len(s) {
		return -1
	}
	j := strings.Index(s[from:], sub)
	if j == -1 {
		return -1
	}
	return j + from
}

func indexByte(s string, b byte, from int) int {
	if from >= len(s) {
		return -1
	}
	j := strings.IndexByte(s[from:], b)
	if j == -1 {
		return -1
	}
	return j + from
}
