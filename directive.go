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

// KeyType identifies the kind of a parsed robots.txt directive.
type KeyType int

const (
	// Unknown is the zero value, so additions to this enumeration don't
	// change the meaning of an unset KeyType.
	Unknown KeyType = iota
	UserAgent
	Sitemap
	Allow
	Disallow
)

// robotsKey parses the left-hand side of a directive line, tolerating the
// common misspellings and synonyms real robots.txt files contain.
type robotsKey struct {
	typ     KeyType
	keyText string // original text, retained only for Unknown keys
}

func (k *robotsKey) parse(key string) {
	k.keyText = ""
	switch {
	case k.isUserAgent(key):
		k.typ = UserAgent
	case k.isAllow(key):
		k.typ = Allow
	case k.isDisallow(key):
		k.typ = Disallow
	case k.isSitemap(key):
		k.typ = Sitemap
	default:
		k.typ = Unknown
		k.keyText = key
	}
}

func (k *robotsKey) isUserAgent(key string) bool {
	return startsWithIgnoreCase(key, "user-agent") ||
		startsWithIgnoreCase(key, "useragent") ||
		startsWithIgnoreCase(key, "user agent")
}

func (k *robotsKey) isAllow(key string) bool {
	return startsWithIgnoreCase(key, "allow")
}

func (k *robotsKey) isDisallow(key string) bool {
	return startsWithIgnoreCase(key, "disallow") ||
		startsWithIgnoreCase(key, "dissallow") ||
		startsWithIgnoreCase(key, "dissalow") ||
		startsWithIgnoreCase(key, "disalow") ||
		startsWithIgnoreCase(key, "diasllow") ||
		startsWithIgnoreCase(key, "disallaw")
}

func (k *robotsKey) isSitemap(key string) bool {
	return startsWithIgnoreCase(key, "sitemap") ||
		startsWithIgnoreCase(key, "site-map")
}

func startsWithIgnoreCase(x, y string) bool {
	return len(x) >= len(y) && strings.EqualFold(x[:len(y)], y)
}

// emitKeyValue dispatches a parsed (key, value) pair to handler, mapping
// Unknown keys to HandleUnknownAction with their original text.
func emitKeyValue(line int, key *robotsKey, value string, handler RobotsParseHandler) {
	switch key.typ {
	case UserAgent:
		handler.HandleUserAgent(line, value)
	case Allow:
		handler.HandleAllow(line, value)
	case Disallow:
		handler.HandleDisallow(line, value)
	case Sitemap:
		handler.HandleSitemap(line, value)
	default:
		handler.HandleUnknownAction(line, key.keyText, value)
	}
}

// getKeyAndValue splits a single already-comment-stripped, already-trimmed
// robots.txt line into its key and value, tolerating a missing colon in
// favour of a single run of whitespace as separator.
func getKeyAndValue(line string) (key, value string, ok bool) {
	sep := strings.IndexByte(line, ':')
	if sep == -1 {
		const whitespace = " \t"
		sep = strings.IndexAny(line, whitespace)
		if sep == -1 {
			return "", "", false
		}
		val := strings.TrimSpace(line[sep:])
		if val == "" {
			return "", "", false
		}
		if strings.IndexAny(val, whitespace) != -1 {
			// More than two whitespace-separated tokens: not a directive
			// we can parse without a colon.
			return "", "", false
		}
	}

	k := strings.TrimSpace(line[:sep])
	if k == "" {
		return "", "", false
	}
	v := strings.TrimSpace(line[sep+1:])
	return k, v, true
}
