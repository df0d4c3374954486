// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package align vertically aligns the trailing punctuation of source text.
//
// Every line whose right-trimmed form ends in one of `{`, `}`, `;` or `,` is padded
// with spaces immediately before that symbol so that it lands on a common column.
// The column is the character length of the longest input line and is computed once,
// before any line is padded. Lines that do not end in a symbol are returned untouched.
//
// The transformation is a pure function of its input and never fails.
package align
