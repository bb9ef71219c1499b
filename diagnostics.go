package robotsmatch

import "fmt"

// Warning describes a single robots.txt parse anomaly that was silently
// recovered from. Line is the 1-based line number it occurred on.
type Warning struct {
	Line    int
	Message string
}

// Diagnostics is an optional, opt-in accumulator for parse warnings. It
// changes nothing about the resulting RuleSet or any match decision: the
// public API never errors, with or without a Diagnostics attached. Pass
// one to Parse via WithDiagnostics to see what the parser silently
// tolerated.
//
// A Diagnostics is not safe for concurrent use by multiple parses; create
// one per Parse call.
type Diagnostics struct {
	Warnings []Warning
}

func (d *Diagnostics) warnf(line int, format string, args ...any) {
	if d == nil {
		return
	}
	d.Warnings = append(d.Warnings, Warning{
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}

// ParseOption configures a Parse call.
type ParseOption func(*parseConfig)

type parseConfig struct {
	diag *Diagnostics
}

// WithDiagnostics attaches d to a Parse call so that every lexical or
// structural anomaly the parser recovers from is recorded as a Warning on
// d, in source order. The returned RuleSet is unaffected.
func WithDiagnostics(d *Diagnostics) ParseOption {
	return func(c *parseConfig) {
		c.diag = d
	}
}
