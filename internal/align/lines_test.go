// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty string has no lines",
			input: "",
			want:  nil,
		},
		{
			name:  "single line without terminator",
			input: "abc",
			want:  []string{"abc"},
		},
		{
			name:  "trailing newline does not add a line",
			input: "abc\n",
			want:  []string{"abc"},
		},
		{
			name:  "just newline is one empty line",
			input: "\n",
			want:  []string{""},
		},
		{
			name:  "two trailing newlines keep one empty line",
			input: "a\n\n",
			want:  []string{"a", ""},
		},
		{
			name:  "blank line in the middle",
			input: "a\n\nb",
			want:  []string{"a", "", "b"},
		},
		{
			name:  "crlf terminators are removed",
			input: "a;\r\nb;\r\n",
			want:  []string{"a;", "b;"},
		},
		{
			name:  "lone carriage return is kept",
			input: "a\rb\nc\r",
			want:  []string{"a\rb", "c\r"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Lines(tt.input))
		})
	}
}
