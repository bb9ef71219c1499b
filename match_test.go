package robotsmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPathParamsQuery(t *testing.T) {
	cases := []struct{ uri, want string }{
		{"", "/"},
		{"http://www.example.com", "/"},
		{"http://www.example.com/", "/"},
		{"http://www.example.com/a", "/a"},
		{"http://www.example.com/a/b?c=d&e=f", "/a/b?c=d&e=f"},
		{"http://www.example.com?q=1", "/?q=1"},
		{"http://www.example.com/a;params?q=1", "/a;params?q=1"},
		{"//www.example.com/a", "/a"},
		{"/a/b", "/a/b"},
		{"a", "/"},
		{"http://www.example.com/a#frag", "/a"},
		{"http://www.example.com#frag", "/"},
	}
	for _, c := range cases {
		got := GetPathParamsQuery(c.uri)
		assert.Equalf(t, c.want, got, "GetPathParamsQuery(%q)", c.uri)
	}
}

func TestNormalizeAgentToken(t *testing.T) {
	assert.Equal(t, "foobot", normalizeAgentToken("FooBot"))
	assert.Equal(t, "foobot", normalizeAgentToken("FooBot Images"))
	assert.Equal(t, "foobot", normalizeAgentToken("FooBot\tExtra"))
	assert.Equal(t, "*", normalizeAgentToken("*"))
}

func TestAgentMatchesToken(t *testing.T) {
	assert.True(t, agentMatchesToken("foobot", "foobot"))
	assert.True(t, agentMatchesToken("foobot-images", "foobot"))
	assert.False(t, agentMatchesToken("foobotter", "foobot"))
	assert.False(t, agentMatchesToken("foo", "foobot"))
}

func TestDecideEmptyRulesAllows(t *testing.T) {
	assert.Equal(t, Allowed, decide(nil, "/anything"))
}

func TestDecideTieFavoursAllow(t *testing.T) {
	rules := []Rule{
		{Kind: AllowRule, Pattern: "/x"},
		{Kind: DisallowRule, Pattern: "/x"},
	}
	assert.Equal(t, Allowed, decide(rules, "/x"))
}

func TestEvaluateNoGroupMatches(t *testing.T) {
	rs := Parse("user-agent: OtherBot\ndisallow: /\n")
	assert.Equal(t, NoRulesApply, rs.Evaluate("FooBot", "/x"))
	assert.True(t, rs.AllowedByRobots("FooBot", "/x"))
}

func TestApplicableRulesSpecificExcludesGlobal(t *testing.T) {
	rs := Parse("user-agent: *\nallow: /\nuser-agent: FooBot\ndisallow: /\n")
	assert.False(t, rs.AllowedByRobots("FooBot", "/x"))
	assert.True(t, rs.AllowedByRobots("BarBot", "/x"))
}
