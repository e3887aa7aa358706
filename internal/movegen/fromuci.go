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

package movegen

import (
	"regexp"
	"strings"

	"github.com/Wertyqin99331/OrionChessEngine/internal/position"
	. "github.com/Wertyqin99331/OrionChessEngine/internal/types"
)

var uciMovePattern = regexp.MustCompile(`^([a-h][1-8][a-h][1-8])([nbrqNBRQ])?$`)

// FromUci generates every legal move for pos and returns the one whose
// wire form matches uciMove, or (MoveNone, false) if the string is
// malformed or names a move that isn't currently legal.
func FromUci(pos *position.Position, uciMove string) (Move, bool) {
	matches := uciMovePattern.FindStringSubmatch(uciMove)
	if matches == nil {
		return MoveNone, false
	}
	wire := matches[1]
	if len(matches) == 3 && matches[2] != "" {
		wire += strings.ToLower(matches[2])
	}

	ml := NewMoveList()
	GenerateLegal(pos, GenAll, ml)
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i).Move
		if m.String() == wire {
			return m, true
		}
	}
	return MoveNone, false
}
