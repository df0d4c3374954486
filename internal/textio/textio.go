// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package textio

import (
	"context"
	"errors"
	"io"
	"os"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/symalign/internal/ctxlog"
	"github.com/spf13/afero"
)

// StdioPath selects standard input or output explicitly.
const StdioPath = "-"

const outputFileMode = 0o644

var (
	// ErrRead is returned when the input cannot be read.
	ErrRead = errors.New("failed to read input")
	// ErrInvalidEncoding is returned, joined with ErrRead, when the input is not valid UTF-8.
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
	// ErrWrite is returned when the output cannot be written.
	ErrWrite = errors.New("failed to write output")
)

func isStdio(path string) bool {
	return path == "" || path == StdioPath
}

// Read returns the whole content of path, or of stdin when path is empty or "-".
// An existing local file is always read locally, even if its name looks like a go-getter URL.
// Reading stdin stops with the context's error once ctx is done.
func Read(ctx context.Context, path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)

	fs := FsFactory()

	switch {
	case isStdio(path):
		ctxlog.Debug(ctx, "reading input", "source", "stdin")
		data, err = readAll(ctx, stdin)
	case IsRemote(path) && !isLocalFile(fs, path):
		ctxlog.Debug(ctx, "fetching input", "source", path)
		data, err = fetch(ctx, path)
	default:
		ctxlog.Debug(ctx, "reading input", "source", path)
		data, err = afero.ReadFile(fs, path)
	}

	if err != nil {
		return "", errors.Join(ErrRead, err)
	}

	if !utf8.Valid(data) {
		return "", errors.Join(ErrRead, ErrInvalidEncoding)
	}

	ctxlog.Debug(ctx, "input read", "bytes", len(data))

	return string(data), nil
}

func isLocalFile(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && !info.IsDir()
}

type readResult struct {
	data []byte
	err  error
}

// readAll reads r until EOF in a separate goroutine so that a read blocked on a
// terminal or pipe does not outlive ctx. The goroutine ends when r does.
func readAll(ctx context.Context, r io.Reader) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ch := make(chan readResult, 1)

	go func() {
		data, err := io.ReadAll(r)
		ch <- readResult{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.data, res.err
	}
}

// Write writes text in full to path, creating or truncating it.
// When path is empty or "-" the text is written to stdout.
func Write(ctx context.Context, path string, stdout io.Writer, text string) error {
	if isStdio(path) {
		ctxlog.Debug(ctx, "writing output", "destination", "stdout")

		if _, err := io.WriteString(stdout, text); err != nil {
			return errors.Join(ErrWrite, err)
		}

		return nil
	}

	ctxlog.Debug(ctx, "writing output", "destination", path)

	f, err := FsFactory().OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputFileMode)
	if err != nil {
		return errors.Join(ErrWrite, err)
	}

	var result *multierror.Error

	if _, err := f.WriteString(text); err != nil {
		result = multierror.Append(result, err)
	}

	if err := f.Close(); err != nil {
		result = multierror.Append(result, err)
	}

	if err := result.ErrorOrNil(); err != nil {
		return errors.Join(ErrWrite, err)
	}

	return nil
}
