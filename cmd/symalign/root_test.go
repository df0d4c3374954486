// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/matt-FFFFFF/symalign/internal/ctxlog"
	"github.com/matt-FFFFFF/symalign/internal/textio"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type result struct {
	stdout string
	stderr string
	err    error
}

func runCmd(t *testing.T, fs afero.Fs, stdin string, args ...string) result {
	t.Helper()

	stubs := gostub.Stub(&textio.FsFactory, func() afero.Fs {
		return fs
	})
	defer stubs.Reset()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.Reader = strings.NewReader(stdin)
	cmd.Writer = &stdout
	cmd.ErrWriter = &stderr

	ctx := ctxlog.New(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := cmd.Run(ctx, append([]string{"symalign"}, args...))

	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestRootCmd(t *testing.T) {
	testCases := []struct {
		name       string
		files      map[string]string
		stdin      string
		args       []string
		wantStdout string
		wantFiles  map[string]string
		wantErr    error
	}{
		{
			name:       "stdin to stdout",
			stdin:      "a;\nbb;",
			wantStdout: "a  ;\nbb ;",
		},
		{
			name:       "dash reads stdin",
			stdin:      "x;   ",
			args:       []string{"-"},
			wantStdout: "x    ;   ",
		},
		{
			name:       "empty stdin",
			stdin:      "",
			wantStdout: "",
		},
		{
			name:       "file to stdout",
			files:      map[string]string{"/src/main.rs": "fn main() {\nreturn 0;\n}\n"},
			args:       []string{"/src/main.rs"},
			wantStdout: "fn main()  {\nreturn 0   ;\n           }",
		},
		{
			name:      "file to file",
			files:     map[string]string{"/src/main.rs": "a;\nbb;"},
			args:      []string{"--output", "/out/main.rs", "/src/main.rs"},
			wantFiles: map[string]string{"/out/main.rs": "a  ;\nbb ;"},
		},
		{
			name:      "stdin to file with short flag",
			stdin:     "no symbol here",
			args:      []string{"-o", "/out.txt"},
			wantFiles: map[string]string{"/out.txt": "no symbol here"},
		},
		{
			name:    "missing input file",
			args:    []string{"/src/missing.rs"},
			wantErr: textio.ErrRead,
		},
		{
			name:    "too many inputs",
			files:   map[string]string{"/a.rs": "a;", "/b.rs": "b;"},
			args:    []string{"/a.rs", "/b.rs"},
			wantErr: ErrTooManyArgs,
		},
		{
			name:  "check passes without eligible lines",
			stdin: "plain\ntext",
			args:  []string{"--check"},
		},
		{
			name:  "check passes on aligned text",
			stdin: "a  ;\nbb ;",
			args:  []string{"--check"},
		},
		{
			name:    "check fails when symbols are on different columns",
			stdin:   "a;\nbb;",
			args:    []string{"--check"},
			wantErr: ErrNotAligned,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			for name, content := range tc.files {
				require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
			}

			res := runCmd(t, fs, tc.stdin, tc.args...)

			if tc.wantErr != nil {
				assert.ErrorIs(t, res.err, tc.wantErr)
				assert.Empty(t, res.stdout)

				return
			}

			require.NoError(t, res.err)
			assert.Equal(t, tc.wantStdout, res.stdout)

			for name, want := range tc.wantFiles {
				got, err := afero.ReadFile(fs, name)
				require.NoError(t, err)
				assert.Equal(t, want, string(got))
			}
		})
	}
}

func TestRootCmd_CheckDoesNotWrite(t *testing.T) {
	fs := afero.NewMemMapFs()

	res := runCmd(t, fs, "a;\nbb;", "--check", "-o", "/out.rs")
	require.ErrorIs(t, res.err, ErrNotAligned)
	assert.ErrorContains(t, res.err, stdinName)

	exists, err := afero.Exists(fs, "/out.rs")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRootCmd_Stats(t *testing.T) {
	res := runCmd(t, afero.NewMemMapFs(), "fn main() {\nreturn 0;\n}", "--stats")
	require.NoError(t, res.err)

	assert.Equal(t, "fn main()  {\nreturn 0   ;\n           }", res.stdout)
	assert.Equal(t, "lines: 3\neligible: 3\ncolumn: 11\ninserted: 15\n", res.stderr)
}

func TestRootCmd_LogJSON(t *testing.T) {
	res := runCmd(t, afero.NewMemMapFs(), "a;", "--log-json")
	require.NoError(t, res.err)
	assert.Equal(t, "a ;", res.stdout)
}

func TestRootCmd_Version(t *testing.T) {
	res := runCmd(t, afero.NewMemMapFs(), "", "--version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "dev (commit: unknown)")
}

func TestRootCmd_Cancelled(t *testing.T) {
	stubs := gostub.Stub(&textio.FsFactory, afero.NewMemMapFs)
	defer stubs.Reset()

	var stdout bytes.Buffer

	cmd := newRootCmd()
	cmd.Reader = strings.NewReader("a;")
	cmd.Writer = &stdout
	cmd.ErrWriter = io.Discard

	ctx, cancel := context.WithCancel(ctxlog.New(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil))))
	cancel()

	err := cmd.Run(ctx, []string{"symalign"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, stdout.String())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, stdinName, displayName(""))
	assert.Equal(t, stdinName, displayName("-"))
	assert.Equal(t, "main.rs", displayName("main.rs"))
}

func TestRootCmd_CheckAcceptsOwnOutput(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/main.rs", []byte("fn main() {\nreturn 0;\n}\n"), 0o644))

	res := runCmd(t, fs, "", "-o", "/out/main.rs", "/src/main.rs")
	require.NoError(t, res.err)

	res = runCmd(t, fs, "", "--check", "/out/main.rs")
	assert.NoError(t, res.err)
	assert.Empty(t, res.stdout)
}
