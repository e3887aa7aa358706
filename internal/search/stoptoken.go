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

package search

import "github.com/Wertyqin99331/OrionChessEngine/internal/util"

// StopToken is a cloneable handle on a single shared cancellation
// flag: the worker holds one copy and requests a stop, the search
// goroutine holds another and polls it.
type StopToken struct {
	flag *util.Bool
}

// NewStopToken returns a fresh, unset token.
func NewStopToken() StopToken {
	return StopToken{flag: util.NewBool(false)}
}

// RequestStop asks any search holding this token to wind down.
func (t StopToken) RequestStop() {
	t.flag.Store(true)
}

// Reset clears the flag, done by the worker immediately before
// spawning a new search that reuses the token.
func (t StopToken) Reset() {
	t.flag.Store(false)
}

// IsStopped reports whether a stop has been requested.
func (t StopToken) IsStopped() bool {
	return t.flag.Load()
}
