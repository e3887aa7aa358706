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

// Package eval scores a position from the side-to-move's perspective
// using material counts plus piece-square tables; a coarse game-phase
// estimate selects the king's midgame or endgame table (there is no
// blending between the two).
package eval

import (
	"github.com/Wertyqin99331/OrionChessEngine/internal/position"
	. "github.com/Wertyqin99331/OrionChessEngine/internal/types"
)

// MaxPhase is the game-phase value of the starting position: 4
// knights + 4 bishops + 2*4 rooks + 4*2 queens = 24. Phase caps its
// result at this value.
const MaxPhase = 24

// endgamePhaseThreshold is the phase at or below which the king uses
// its endgame piece-square table instead of the midgame one.
const endgamePhaseThreshold = 10

var materialValue = [PtLength]Value{
	PtNone: 0,
	Pawn:   100,
	Knight: 300,
	Bishop: 350,
	Rook:   500,
	Queen:  1000,
	King:   10000,
}

// pst is declared visually for White, A8 first, matching how the
// table reads on a printed board. Since square indices run A1 first,
// White lookups flip the rank by XOR-ing the square index with 56 and
// Black lookups use the index as-is, which mirrors the table for Black.
type pst [64]Value

var pawnPst = pst{
	0, 0, 0, 0, 0, 0, 0, 0,
	30, 30, 30, 40, 40, 30, 30, 30,
	20, 20, 20, 30, 30, 30, 20, 20,
	10, 10, 10, 20, 20, 10, 10, 10,
	5, 5, 10, 20, 20, 5, 5, 5,
	0, 0, 0, 5, 5, 0, 0, 0,
	0, 0, 0, -10, -10, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPst = pst{
	5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 10, 10, 0, 0, -5,
	-5, 5, 20, 20, 20, 20, 5, -5,
	-5, 10, 20, 30, 30, 20, 10, -5,
	-5, 10, 20, 30, 30, 20, 10, -5,
	-5, 5, 20, 10, 10, 20, 5, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, -10, 0, 0, 0, 0, -10, -5,
}

var bishopPst = pst{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 10, 10, 0, 0, 0,
	0, 0, 10, 15, 15, 10, 0, 0,
	0, 0, 10, 15, 15, 10, 0, 0,
	0, 10, 0, 0, 0, 0, 10, 0,
	0, 15, 0, 0, 0, 0, 15, 0,
	0, 0, -10, 0, 0, -10, 0, 0,
}

var rookPst = pst{
	50, 50, 50, 50, 50, 50, 50, 50,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 0, 20, 20, 0, 0, 0,
}

var queenPst = pst{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-10, 5, 5, 5, 5, 5, 0, -10,
	0, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMidgamePst = pst{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingEndgamePst = pst{
	-50, -30, -30, -30, -30, -30, -30, -50,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-50, -40, -30, -20, -20, -30, -40, -50,
}

var pstByPieceType = [PtLength]*pst{
	Pawn:   &pawnPst,
	Knight: &knightPst,
	Bishop: &bishopPst,
	Rook:   &rookPst,
	Queen:  &queenPst,
}

// pstValue looks up sq in table from color c's perspective, flipping
// the rank for White since the table is declared A8 first while square
// indices start at A1.
func pstValue(table *pst, sq Square, c Color) Value {
	idx := sq
	if c == White {
		idx = Square(uint8(sq) ^ 56)
	}
	return table[idx]
}

// Phase estimates how far the game has progressed from the opening,
// 24 at the start down toward 0 as major and minor pieces come off.
func Phase(pos *position.Position) int {
	n := (pos.PieceBb(White, Knight) | pos.PieceBb(Black, Knight)).PopCount()
	b := (pos.PieceBb(White, Bishop) | pos.PieceBb(Black, Bishop)).PopCount()
	r := (pos.PieceBb(White, Rook) | pos.PieceBb(Black, Rook)).PopCount()
	q := (pos.PieceBb(White, Queen) | pos.PieceBb(Black, Queen)).PopCount()
	phase := n + b + 2*r + 4*q
	if phase > MaxPhase {
		phase = MaxPhase
	}
	return phase
}

// Evaluate scores pos from the side-to-move's perspective: positive
// means the side to move stands better. It recomputes material and
// positional value fresh from the piece bitboards on every call,
// since no incremental counters are maintained on Position.
func Evaluate(pos *position.Position) Value {
	phase := Phase(pos)

	kingTable := &kingMidgamePst
	if phase <= endgamePhaseThreshold {
		kingTable = &kingEndgamePst
	}

	var score Value
	for pt := Pawn; pt <= King; pt++ {
		table := pstByPieceType[pt]
		if pt == King {
			table = kingTable
		}

		whiteBb := pos.PieceBb(White, pt)
		score += Value(whiteBb.PopCount()) * materialValue[pt]
		for b := whiteBb; b != BbZero; {
			score += pstValue(table, b.PopLsb(), White)
		}

		blackBb := pos.PieceBb(Black, pt)
		score -= Value(blackBb.PopCount()) * materialValue[pt]
		for b := blackBb; b != BbZero; {
			score -= pstValue(table, b.PopLsb(), Black)
		}
	}

	if pos.SideToMove() == Black {
		score = -score
	}
	return score
}
