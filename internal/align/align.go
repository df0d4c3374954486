// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package align

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Symbols is the closed set of characters that are aligned.
const Symbols = "{};,"

const lineSeparator = "\n"

// Stats describes a single alignment pass.
type Stats struct {
	// Lines is the number of lines in the input.
	Lines int `json:"lines" yaml:"lines"`
	// Eligible is the number of lines that ended in a symbol and were padded.
	Eligible int `json:"eligible" yaml:"eligible"`
	// Column is the target column, the character length of the longest input line.
	Column int `json:"column" yaml:"column"`
	// Inserted is the total number of padding spaces added.
	Inserted int `json:"inserted" yaml:"inserted"`
}

// IsSymbol reports whether r is one of the aligned symbols.
func IsSymbol(r rune) bool {
	return strings.ContainsRune(Symbols, r)
}

// Align returns text with the trailing symbol of every eligible line moved to the target column.
func Align(text string) string {
	out, _ := Report(text)
	return out
}

// Report aligns text like Align and also returns statistics about the pass.
func Report(text string) (string, Stats) {
	lines := Lines(text)

	stats := Stats{
		Lines:  len(lines),
		Column: TargetColumn(lines),
	}

	out := make([]string, len(lines))

	for i, line := range lines {
		idx, col, ok := symbolPosition(line)
		if !ok {
			out[i] = line
			continue
		}

		// col < length of line <= Column, so padding is at least one space.
		padding := stats.Column - col
		out[i] = pad(line, idx, padding)

		stats.Eligible++
		stats.Inserted += padding
	}

	return strings.Join(out, lineSeparator), stats
}

// IsAligned reports whether the last symbol of every eligible line already sits on one shared column.
// Text without eligible lines is aligned. Aligning text with Align always yields aligned text.
func IsAligned(text string) bool {
	column := -1

	for _, line := range Lines(text) {
		_, col, ok := symbolPosition(line)
		if !ok {
			continue
		}

		if column >= 0 && col != column {
			return false
		}

		column = col
	}

	return true
}

// TargetColumn returns the character length of the longest line, or 0 if there are no lines.
func TargetColumn(lines []string) int {
	maxLen := 0

	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	return maxLen
}

// symbolPosition returns the byte index and character column of the last symbol in line.
// ok is false unless the line, with trailing whitespace removed, ends in a symbol.
func symbolPosition(line string) (idx, col int, ok bool) {
	trimmed := strings.TrimRightFunc(line, unicode.IsSpace)

	last, size := utf8.DecodeLastRuneInString(trimmed)
	if size == 0 || !IsSymbol(last) {
		return 0, 0, false
	}

	// Whitespace is never a symbol, so this is the last rune of trimmed.
	idx = strings.LastIndexAny(line, Symbols)

	return idx, utf8.RuneCountInString(line[:idx]), true
}

func pad(line string, idx, padding int) string {
	sb := strings.Builder{}
	sb.Grow(len(line) + padding)
	sb.WriteString(line[:idx])
	sb.WriteString(strings.Repeat(" ", padding))
	sb.WriteString(line[idx:])

	return sb.String()
}
