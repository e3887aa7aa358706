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

package uci

import (
	"bufio"
	"bytes"
	"os"
	"path"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Wertyqin99331/OrionChessEngine/internal/config"
)

// make tests run in the project's root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

// runLoop feeds input to a fresh Handler's loop and returns everything
// it wrote before the loop returned.
func runLoop(input string) string {
	h := NewHandler()
	h.InIo = bufio.NewScanner(strings.NewReader(input))
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.Loop()
	return buf.String()
}

func TestUciHandshake(t *testing.T) {
	out := runLoop("uci\nquit\n")
	assert.Contains(t, out, "id name Orion")
	assert.Contains(t, out, "id author")
	assert.Contains(t, out, "uciok")
}

func TestIsReady(t *testing.T) {
	out := runLoop("isready\nquit\n")
	assert.Contains(t, out, "readyok")
}

func TestBestMoveFromFixedDepthSearch(t *testing.T) {
	out := runLoop("position startpos\ngo depth 2\nquit\n")
	assert.Contains(t, out, "bestmove")
}

func TestBestMoveAfterMovesApplied(t *testing.T) {
	out := runLoop("position startpos moves e2e4 e7e5\ngo depth 1\nquit\n")
	assert.Contains(t, out, "bestmove")
}

func TestStopStillProducesBestMove(t *testing.T) {
	out := runLoop("position startpos\ngo depth 64\nstop\nquit\n")
	assert.Contains(t, out, "bestmove")
}

func TestUnknownCommandDoesNotCrashTheLoop(t *testing.T) {
	out := runLoop("bananas\nisready\nquit\n")
	assert.Contains(t, out, "readyok")
}
