// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package align

import "strings"

// Lines splits text into lines without their terminators.
// Lines end at "\n" or "\r\n". A final terminator does not start a new line,
// so "a\n" is one line and the empty string has none.
// A "\r" that is not followed by "\n" is kept as part of the line.
func Lines(text string) []string {
	var lines []string

	for line := range strings.Lines(text) {
		if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
			line = strings.TrimSuffix(trimmed, "\r")
		}

		lines = append(lines, line)
	}

	return lines
}
