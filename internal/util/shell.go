// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package util

import (
	"fmt"

	"github.com/mattn/go-shellwords"
)

// SplitCommand splits a command line such as the value of $PAGER into its
// arguments using shell quoting rules. Variables and command substitutions
// are not expanded, and shell operators like | or ; are rejected.
func SplitCommand(line string) ([]string, error) {
	parser := shellwords.NewParser()
	parser.ParseEnv = false
	parser.ParseBacktick = false

	args, err := parser.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("cannot split command line %q: %w", line, err)
	}
	if parser.Position >= 0 {
		return nil, fmt.Errorf("command line %q contains a shell operator at offset %d", line, parser.Position)
	}
	return args, nil
}
