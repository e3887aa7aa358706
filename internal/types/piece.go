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

import "strings"

// Piece combines a Color and a PieceType into a single value, e.g. for
// use as a FEN placement character or a board[64]Piece array index.
//  bit 3 set -> Black, clear -> White
//  low 3 bits -> PieceType
type Piece uint8

const (
	PieceNone Piece = 0

	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	BlackPawn   Piece = 9
	BlackKnight Piece = 10
	BlackBishop Piece = 11
	BlackRook   Piece = 12
	BlackQueen  Piece = 13
	BlackKing   Piece = 14
)

// MakePiece combines a color and a piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)<<3 + int(pt))
}

// ColorOf returns the color of p.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type of p.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ValueOf returns the static material value of p.
func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

const pieceToChar = "-PNBRQK??pnbrqk"

// PieceFromChar returns the Piece for a single FEN placement character,
// or PieceNone if s is not exactly one recognized character.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	idx := strings.IndexByte(pieceToChar, s[0])
	if idx <= 0 {
		return PieceNone
	}
	return Piece(idx)
}

// String returns the FEN placement character for p, "-" if none.
func (p Piece) String() string {
	return string(pieceToChar[p])
}
