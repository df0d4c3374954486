// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package textio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
)

const (
	goGetterForcedSeparator = "::"
	goGetterSchemeSeparator = "://"
	goGetterPathSeparator   = "//"
	goGetterRefSeparator    = "?"
	minimumGetterParts      = 3 // scheme, source and path within the source
	downloadName            = "input"
)

// ErrInvalidSource is returned when a remote source names no file that can be read.
var ErrInvalidSource = errors.New("invalid remote source")

// IsRemote reports whether path uses go-getter syntax.
// A forced getter ("git::...") or a URL scheme ("https://...") makes a path remote.
// Read still prefers a local file of that name when one exists.
func IsRemote(path string) bool {
	return strings.Contains(path, goGetterForcedSeparator) ||
		strings.Contains(path, goGetterSchemeSeparator)
}

// fetch downloads src into a temporary directory and returns the file it names.
// A src with a "//" path part, such as "git::https://host/repo//dir/file.rs?ref=v1",
// fetches the whole source and reads the file at that path within it.
// Otherwise src itself is downloaded as a single file.
func fetch(ctx context.Context, src string) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "symalign-getter-*")
	if err != nil {
		return nil, err
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     src,
		Dst:     filepath.Join(tmpDir, downloadName),
		Pwd:     wd,
		GetMode: getter.ModeFile,
		Copy:    true,
	}

	newSrc, fileName, err := splitFileFromGetterURL(src)
	if err != nil {
		return nil, err
	}

	if fileName != "" {
		req.Src = newSrc
		req.GetMode = getter.ModeDir
	}

	res, err := client.Get(ctx, req)
	if err != nil {
		return nil, err
	}

	target := res.Dst
	if fileName != "" {
		target = filepath.Join(res.Dst, filepath.FromSlash(fileName))
	}

	return os.ReadFile(target)
}

// splitFileFromGetterURL splits the path within the source from a go-getter URL.
// It returns the URL without that path, keeping any ref query, and the path itself.
// Both are empty, with no error, when the URL has no path part.
func splitFileFromGetterURL(url string) (string, string, error) {
	parts := strings.Split(url, goGetterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", "", nil
	}

	last := parts[len(parts)-1]

	var ref string
	if before, after, ok := strings.Cut(last, goGetterRefSeparator); ok {
		last, ref = before, after
	}

	if last == "" || strings.HasSuffix(last, "/") || !filepath.IsLocal(filepath.FromSlash(last)) {
		return "", "", fmt.Errorf("%w: %q does not name a file", ErrInvalidSource, url)
	}

	newURL := strings.Join(parts[:len(parts)-1], goGetterPathSeparator)
	if ref != "" {
		newURL += goGetterRefSeparator + ref
	}

	return newURL, last, nil
}
