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

// Package robotsmatch implements the Robots Exclusion Protocol (REP) as
// practiced by a major search-engine crawler: a streaming parser for
// robots.txt, a longest-match wildcard pattern engine, and the
// group-selection algorithm that associates rules with a requesting
// user-agent.
//
// The pipeline is Lex -> dispatch to a RobotsParseHandler -> RuleSet ->
// Match. Parse builds a RuleSet once; AllowedByRobots may then be called
// any number of times against it. IsUserAgentAllowed is the one-shot form
// for callers checking a single URL.
package robotsmatch
