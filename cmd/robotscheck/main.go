// Copyright 2020 Jim Smart
// Copyright 2019 Google LLC
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

// Command robotscheck reports whether a set of user-agents is allowed to
// fetch a URL, according to a local robots.txt file. It exists as a thin
// example wrapper around package robotsmatch; all matching logic lives
// there.
//
// Usage:
//
//	robotscheck <robots.txt path> <user-agents> <url>
//
// user-agents may be a single token or a comma-separated list. Exit code
// is 0 when allowed, 1 when disallowed, 2 on bad input.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wiredfence/robotsmatch"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if err == errDisallowed {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:          "robotscheck <robots.txt path> <user-agents> <url>",
		Short:        "Check whether user-agents may fetch a URL per a local robots.txt",
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], args[1], args[2], verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print parse warnings")
	return cmd
}

func run(cmd *cobra.Command, path, userAgentArg, uri string, verbose bool) error {
	body, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}

	var diag *robotsmatch.Diagnostics
	var opts []robotsmatch.ParseOption
	if verbose {
		diag = &robotsmatch.Diagnostics{}
		opts = append(opts, robotsmatch.WithDiagnostics(diag))
	}
	rs := robotsmatch.Parse(string(body), opts...)

	userAgents := strings.Split(userAgentArg, ",")
	allowed := false
	for _, ua := range userAgents {
		if rs.AllowedByRobots(ua, uri) {
			allowed = true
			break
		}
	}

	verdict := "DISALLOWED"
	if allowed {
		verdict = "ALLOWED"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "user-agent %q with URI %q: %s\n", userAgentArg, uri, verdict)

	if verbose && diag != nil {
		for _, w := range diag.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "line %d: %s\n", w.Line, w.Message)
		}
	}

	if !allowed {
		return errDisallowed
	}
	return nil
}

var errDisallowed = fmt.Errorf("disallowed")
