package robotsmatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wiredfence/robotsmatch"
)

func TestIsUserAgentAllowedEmptyInputs(t *testing.T) {
	assert.True(t, robotsmatch.IsUserAgentAllowed("", "FooBot", "/x"))
	assert.True(t, robotsmatch.IsUserAgentAllowed("User-agent: *\nDisallow: /\n", "", "/x"))
}

func TestAgentAllowedIsAnAlias(t *testing.T) {
	robotstxt := "User-agent: FooBot\nDisallow: /private/\n"
	assert.Equal(t,
		robotsmatch.IsUserAgentAllowed(robotstxt, "FooBot", "/private/x"),
		robotsmatch.AgentAllowed(robotstxt, "FooBot", "/private/x"),
	)
}

func TestAgentsAllowedEmptyInputs(t *testing.T) {
	assert.True(t, robotsmatch.AgentsAllowed("", []string{"FooBot"}, "/x"))
	assert.True(t, robotsmatch.AgentsAllowed("User-agent: *\nDisallow: /\n", nil, "/x"))
}

func TestAgentsAllowedEmptyIdentityShortCircuits(t *testing.T) {
	robotstxt := "User-agent: *\nDisallow: /\n"
	assert.True(t, robotsmatch.AgentsAllowed(robotstxt, []string{"", "FooBot"}, "/x"))
}

func TestExtractUserAgent(t *testing.T) {
	assert.Equal(t, "FooBot", robotsmatch.ExtractUserAgent("FooBot"))
	assert.Equal(t, "FooBot", robotsmatch.ExtractUserAgent("FooBot/2.1"))
	assert.Equal(t, "Foo-Bot_X", robotsmatch.ExtractUserAgent("Foo-Bot_X 3.0"))
	assert.Equal(t, "", robotsmatch.ExtractUserAgent("12FooBot"))
}

func TestIsValidUserAgentToObey(t *testing.T) {
	assert.True(t, robotsmatch.IsValidUserAgentToObey("FooBot"))
	assert.True(t, robotsmatch.IsValidUserAgentToObey("Foo-Bot_X"))
	assert.False(t, robotsmatch.IsValidUserAgentToObey(""))
	assert.False(t, robotsmatch.IsValidUserAgentToObey("FooBot/2.1"))
	assert.False(t, robotsmatch.IsValidUserAgentToObey("Foo Bot"))
}

func TestSitemapsEmptyBody(t *testing.T) {
	assert.Empty(t, robotsmatch.Sitemaps(""))
}

func TestSitemapsOrder(t *testing.T) {
	robotstxt := "Sitemap: http://a.example/s1.xml\nUser-agent: *\nDisallow:\nSitemap: http://a.example/s2.xml\n"
	assert.Equal(t, []string{
		"http://a.example/s1.xml",
		"http://a.example/s2.xml",
	}, robotsmatch.Sitemaps(robotstxt))
}

func TestParseRobotsTxtPublicEntryPoint(t *testing.T) {
	var seen []string
	h := &recordingHandler{onUserAgent: func(value string) { seen = append(seen, value) }}
	robotsmatch.ParseRobotsTxt("User-agent: FooBot\nUser-agent: BarBot\nDisallow: /\n", h)
	assert.Equal(t, []string{"FooBot", "BarBot"}, seen)
}

// recordingHandler is a minimal RobotsParseHandler used to exercise the
// public streaming entry point directly, without going through RuleSet.
type recordingHandler struct {
	onUserAgent func(value string)
}

func (h *recordingHandler) HandleRobotsStart() {}
func (h *recordingHandler) HandleRobotsEnd()   {}
func (h *recordingHandler) HandleUserAgent(lineNum int, value string) {
	if h.onUserAgent != nil {
		h.onUserAgent(value)
	}
}
func (h *recordingHandler) HandleAllow(lineNum int, value string)                 {}
func (h *recordingHandler) HandleDisallow(lineNum int, value string)              {}
func (h *recordingHandler) HandleSitemap(lineNum int, value string)               {}
func (h *recordingHandler) HandleUnknownAction(lineNum int, action, value string) {}
