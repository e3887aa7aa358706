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

package config

// searchConfiguration holds the knobs that shape a single search
// instance: what move ordering heuristics it uses and what it falls
// back to when a UCI "go" command doesn't specify depth or movetime.
type searchConfiguration struct {
	UseQuiescence bool
	UseKiller     bool
	UseHistory    bool

	DefaultDepth    int
	DefaultMoveTime int // milliseconds
	MaxPly          int
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Search.UseQuiescence = true
	Settings.Search.UseKiller = true
	Settings.Search.UseHistory = true

	Settings.Search.DefaultDepth = 6
	Settings.Search.DefaultMoveTime = 5000
	Settings.Search.MaxPly = 64
}

// setupSearch runs after the config file has been read. The search
// defaults are set in init above; nothing is derived here.
func setupSearch() {

}
