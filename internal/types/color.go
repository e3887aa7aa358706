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

import "fmt"

// Color distinguishes the two sides of a chess game.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Flip returns the opposing color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c <= Black
}

// String returns "w" or "b", matching the FEN side-to-move alphabet.
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

var pawnPushDir = [2]Direction{North, South}

// PawnPushDirection returns the direction a pawn of this color advances.
func (c Color) PawnPushDirection() Direction {
	return pawnPushDir[c]
}

var promotionRank = [2]Bitboard{Rank8Bb, Rank1Bb}

// PromotionRankBb returns the rank on which a pawn of this color promotes.
func (c Color) PromotionRankBb() Bitboard {
	return promotionRank[c]
}

var startRank = [2]Bitboard{Rank2Bb, Rank7Bb}

// StartRank returns the rank a pawn of this color begins the game on,
// the only rank from which a two-square opening push is legal.
func (c Color) StartRank() Bitboard {
	return startRank[c]
}

var doublePushRank = [2]Bitboard{Rank4Bb, Rank5Bb}

// DoublePushRank returns the rank a pawn of this color lands on
// after a two-square opening push.
func (c Color) DoublePushRank() Bitboard {
	return doublePushRank[c]
}

var epTargetRank = [2]Bitboard{Rank6Bb, Rank3Bb}

// EnPassantTargetRank returns the rank a legal en-passant target square
// must lie on when it is this color's turn to move: rank 6 when White
// is to move (Black just played a double push), rank 3 when Black is
// to move (White just played a double push).
func (c Color) EnPassantTargetRank() Bitboard {
	return epTargetRank[c]
}
