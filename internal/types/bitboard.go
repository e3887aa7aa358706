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

// Package types holds the bit-level and geometric vocabulary every other
// package builds on: squares, files, ranks, colors, pieces, bitboards
// and the pre-computed attack tables derived from them.
package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit set, one bit per board square.
type Bitboard uint64

const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
	BbOne  Bitboard = 1
)

// Bb returns the single-bit bitboard for sq.
func (sq Square) Bb() Bitboard {
	return squareBb[sq]
}

// PushSquare returns b with sq's bit set.
func PushSquare(b Bitboard, sq Square) Bitboard {
	return b | sq.Bb()
}

// PopSquare returns b with sq's bit cleared.
func PopSquare(b Bitboard, sq Square) Bitboard {
	return b &^ sq.Bb()
}

// Has reports whether sq's bit is set in b.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// ShiftBitboard shifts every set bit of b one step in direction d,
// masking away bits that would wrap around a board edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileHBb) << 1
	case West:
		return (b &^ FileABb) >> 1
	case Northeast:
		return (b &^ FileHBb) << 9
	case Southeast:
		return (b &^ FileHBb) >> 7
	case Southwest:
		return (b &^ FileABb) >> 9
	case Northwest:
		return (b &^ FileABb) << 7
	default:
		return BbZero
	}
}

// Lsb returns the square of the least significant set bit, or SqNone
// if b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the square of the most significant set bit, or SqNone
// if b is empty.
func (b Bitboard) Msb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb clears and returns the least significant set bit's square.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	*b &= *b - 1
	return sq
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// String renders b as a multi-line ASCII board, rank 8 at the top, for
// use in test failures and debug logging.
func (b Bitboard) String() string {
	var s strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := int(FileA); f <= int(FileH); f++ {
			sq := SquareOf(File(f), Rank(r))
			if b.Has(sq) {
				s.WriteString("1 ")
			} else {
				s.WriteString(". ")
			}
		}
		s.WriteString("\n")
	}
	return s.String()
}

// File/rank masks, pre-computed once in init().
var (
	fileBb [8]Bitboard
	rankBb [8]Bitboard
)

const (
	FileABb Bitboard = 0x0101010101010101
	FileHBb Bitboard = FileABb << 7
	Rank1Bb Bitboard = 0xFF
	Rank2Bb Bitboard = Rank1Bb << (8 * 1)
	Rank3Bb Bitboard = Rank1Bb << (8 * 2)
	Rank4Bb Bitboard = Rank1Bb << (8 * 3)
	Rank5Bb Bitboard = Rank1Bb << (8 * 4)
	Rank6Bb Bitboard = Rank1Bb << (8 * 5)
	Rank7Bb Bitboard = Rank1Bb << (8 * 6)
	Rank8Bb Bitboard = Rank1Bb << (8 * 7)
)

var squareBb [SqNone]Bitboard

// GetCastlingRights returns the castling rights tied to square sq: the
// single right for a rook's corner square, both of a side's rights for
// its king's starting square, none otherwise (used to clear rights when
// a king or rook moves from, or a rook is captured on, its starting
// square).
func GetCastlingRights(sq Square) CastlingRights {
	switch sq {
	case SqA1:
		return CastlingWhiteOOO
	case SqH1:
		return CastlingWhiteOO
	case SqE1:
		return CastlingWhite
	case SqA8:
		return CastlingBlackOOO
	case SqH8:
		return CastlingBlackOO
	case SqE8:
		return CastlingBlack
	default:
		return CastlingNone
	}
}

// KingSideCastleMask returns the squares that must be empty and
// unattacked for c to castle king-side.
func KingSideCastleMask(c Color) Bitboard {
	if c == White {
		return SqF1.Bb() | SqG1.Bb()
	}
	return SqF8.Bb() | SqG8.Bb()
}

// QueenSideCastleMask returns the squares that must be empty for c to
// castle queen-side (the b-file square must be empty but, unlike c/d,
// is not crossed by the king so it need not be unattacked).
func QueenSideCastleMask(c Color) Bitboard {
	if c == White {
		return SqB1.Bb() | SqC1.Bb() | SqD1.Bb()
	}
	return SqB8.Bb() | SqC8.Bb() | SqD8.Bb()
}

// QueenSideCastleKingPath returns the squares the king itself crosses
// castling queen-side, which must be unattacked.
func QueenSideCastleKingPath(c Color) Bitboard {
	if c == White {
		return SqC1.Bb() | SqD1.Bb()
	}
	return SqC8.Bb() | SqD8.Bb()
}

func init() {
	for f := FileA; f <= FileH; f++ {
		fileBb[f] = FileABb << uint(f)
	}
	for r := Rank1; r <= Rank8; r++ {
		rankBb[r] = Rank1Bb << uint(8*r)
	}
	for sq := SqA1; sq < SqNone; sq++ {
		squareBb[sq] = BbOne << uint(sq)
	}
}
