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

// PieceType identifies the kind of a piece, independent of color.
type PieceType uint8

const (
	PtNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PtLength
)

// IsValid reports whether pt is one of the six piece types.
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}

// gamePhaseValue weighs non-pawn material toward the [0,24] game phase
// scalar used to pick midgame vs endgame king placement.
var gamePhaseValue = [PtLength]int{0, 0, 1, 1, 2, 4, 0}

// GamePhaseValue returns pt's contribution to the phase scalar.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

// pieceTypeValue holds the centipawn material value of each piece type.
var pieceTypeValue = [PtLength]Value{0, 100, 300, 350, 500, 1000, 10000}

// ValueOf returns the static material value of pt.
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

var pieceTypeToString = [PtLength]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

const pieceTypeToChar = "-PNBRQK"

// Char returns the single uppercase letter for pt, '-' if none.
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}
