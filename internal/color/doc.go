// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI escape codes and decides whether the
// process should emit them at all.
// Colour is disabled when NO_COLOR is set, forced when FORCE_COLOR is set,
// and otherwise enabled only when stderr is a terminal, as determined by the
// golang.org/x/term package.
package color
