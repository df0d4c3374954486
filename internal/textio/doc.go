// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package textio reads the text to be aligned and writes the result.
//
// Input comes from a local file, from a remote source using Hashicorp's go-getter
// syntax, or from standard input when no path (or "-") is given.
// Output goes to a file, or to standard output when no path (or "-") is given.
// Local files are accessed through the afero filesystem returned by FsFactory.
package textio
