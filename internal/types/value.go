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

package types

import (
	"fmt"
)

// Value is a centipawn evaluation or search score.
type Value int32

const (
	ValueZero Value = 0
	// Infinity bounds the alpha-beta window at the root.
	Infinity Value = 100_000_000
	// Mate is the absolute value assigned to a forced checkmate at ply 0;
	// a mate found deeper is reported closer to zero (Mate - ply) so the
	// search always prefers the shortest mate.
	Mate Value = 30_000
	// MateThreshold is the smallest magnitude considered a mate score, as
	// opposed to a merely large positional evaluation.
	MateThreshold Value = Mate - 1000
)

// IsMateValue reports whether v represents a forced mate in some number
// of moves rather than an ordinary positional score.
func (v Value) IsMateValue() bool {
	a := v
	if a < 0 {
		a = -a
	}
	return a > MateThreshold && a <= Mate
}

// String renders v the way a UCI "info score" field would: either
// "mate N" or "cp N".
func (v Value) String() string {
	if v.IsMateValue() {
		a := v
		if a < 0 {
			a = -a
		}
		pliesToMate := int(Mate - a)
		movesToMate := (pliesToMate + 1) / 2
		if v < 0 {
			movesToMate = -movesToMate
		}
		return fmt.Sprintf("mate %d", movesToMate)
	}
	return fmt.Sprintf("cp %d", int(v))
}
