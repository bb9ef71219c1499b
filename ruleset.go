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

// RuleKind distinguishes an Allow rule from a Disallow rule.
type RuleKind int

const (
	AllowRule RuleKind = iota
	DisallowRule
)

// Rule is a single Allow or Disallow line. Pattern is stored verbatim from
// the source, with no normalisation. An empty Pattern never matches any
// URL (equivalent to the rule being absent).
type Rule struct {
	Kind    RuleKind
	Pattern string
	Line    int
}

// Group is a contiguous block of one or more user-agent declarations
// followed by the Allow/Disallow rules that apply to them. Agents holds
// the distinct user-agent tokens from the source, lowercased and cut at
// their first space or tab (see normalizeAgentToken); Global
// is true iff "*" is one of them. Rules is kept in source order so that
// equal-length matches can be resolved deterministically.
type Group struct {
	Agents []string
	Global bool
	Rules  []Rule
}

func (g *Group) hasAgent(token string) bool {
	for _, a := range g.Agents {
		if a == token {
			return true
		}
	}
	return false
}

// RuleSet is the immutable result of parsing a robots.txt document: the
// ordered list of Groups as they appeared, plus the ordered list of
// sitemap URLs. A *RuleSet is safe for concurrent read-only use.
type RuleSet struct {
	Groups   []Group
	Sitemaps []string
}

// Parse parses robotsBody into an immutable RuleSet. Parsing never fails:
// malformed lines are skipped, as documented on ParseRobotsTxt. Pass
// WithDiagnostics to additionally record what was skipped and why.
func Parse(robotsBody string, opts ...ParseOption) *RuleSet {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &ruleSetBuilder{diag: cfg.diag}
	parseRobotsTxt(robotsBody, b, cfg.diag)
	return &RuleSet{
		Groups:   b.groups,
		Sitemaps: b.sitemaps,
	}
}

// groupState is the group-assembly state machine's current phase.
type groupState int

const (
	stateStart groupState = iota
	stateCollectingAgents
	stateCollectingRules
)

// ruleSetBuilder is a RobotsParseHandler that runs the group-assembly
// state machine, materialising Groups and Rules as directives arrive.
type ruleSetBuilder struct {
	diag     *Diagnostics
	groups   []Group
	sitemaps []string

	state   groupState
	current Group
}

func (b *ruleSetBuilder) HandleRobotsStart() {
	b.groups = nil
	b.sitemaps = nil
	b.state = stateStart
	b.current = Group{}
}

func (b *ruleSetBuilder) HandleRobotsEnd() {
	b.closeGroup()
}

func (b *ruleSetBuilder) closeGroup() {
	if len(b.current.Agents) > 0 {
		b.groups = append(b.groups, b.current)
	}
	b.current = Group{}
}

func (b *ruleSetBuilder) HandleUserAgent(lineNum int, value string) {
	switch b.state {
	case stateCollectingRules:
		// A user-agent line after rules closes the prior group and opens
		// a fresh one.
		b.closeGroup()
		b.state = stateCollectingAgents
	case stateStart:
		b.state = stateCollectingAgents
	}

	token := normalizeAgentToken(strings.TrimSpace(value))
	if token == "" || b.current.hasAgent(token) {
		return
	}
	b.current.Agents = append(b.current.Agents, token)
	if token == "*" {
		b.current.Global = true
	}
}

func (b *ruleSetBuilder) HandleAllow(lineNum int, value string) {
	b.appendRule(lineNum, AllowRule, value)
}

func (b *ruleSetBuilder) HandleDisallow(lineNum int, value string) {
	b.appendRule(lineNum, DisallowRule, value)
}

func (b *ruleSetBuilder) appendRule(lineNum int, kind RuleKind, value string) {
	if b.state == stateStart {
		// A rule before any user-agent line: discarded.
		b.diag.warnf(lineNum, "rule outside any user-agent group discarded")
		return
	}
	b.state = stateCollectingRules
	b.current.Rules = append(b.current.Rules, Rule{Kind: kind, Pattern: value, Line: lineNum})
}

func (b *ruleSetBuilder) HandleSitemap(lineNum int, value string) {
	b.sitemaps = append(b.sitemaps, value)
}

func (b *ruleSetBuilder) HandleUnknownAction(lineNum int, action, value string) {}
