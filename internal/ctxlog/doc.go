// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger that can be used to log messages.
// It uses the slog package for structured logging and supports different log levels.
//
// The default is a pretty console handler to format the log messages in a human-readable way.
// All loggers write to stderr, as stdout carries the aligned text.
//
// The log level of DefaultLogger and JSONLogger is shared through LevelVar and read once,
// at start up, from an environment variable named after the executable: the upper-cased
// base name without ".exe", followed by "_LOG_LEVEL". For the symalign binary this is
// SYMALIGN_LOG_LEVEL. Recognised values are "DEBUG", "INFO", "WARN" and "ERROR";
// anything else, including an unset variable, selects "WARN".
package ctxlog
