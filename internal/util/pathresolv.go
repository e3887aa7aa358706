/*
 * Orion - UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2026 The Orion Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveFile looks for file in a small, fixed set of places and
// returns an absolute path to wherever it was actually found: the
// path as given (if absolute), then relative to the working
// directory, then relative to the running executable, then relative
// to the user's home directory. Used to locate an optional config
// file without requiring callers to know where the binary was
// launched from.
func ResolveFile(file string) (string, error) {
	file = filepath.Clean(file)
	notFound := fmt.Errorf("file could not be found: %s", file)

	if filepath.IsAbs(file) {
		if fileExists(file) {
			return file, nil
		}
		return file, notFound
	}

	if dir, err := os.Getwd(); err == nil {
		if candidate := filepath.Join(dir, file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}

	if dir, err := os.Executable(); err == nil {
		if candidate := filepath.Join(filepath.Dir(dir), file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}

	if dir, err := os.UserHomeDir(); err == nil {
		if candidate := filepath.Join(dir, file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}

	return file, notFound
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil || info == nil {
		return false
	}
	return info.Mode().IsRegular()
}
