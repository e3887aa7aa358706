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

// knightAttacks, kingAttacks and pawnAttacks are leaper attack tables,
// filled once in init() from explicit step-direction expressions with
// wrap protection, then looked up in O(1) for the lifetime of the
// process.
var (
	knightAttacks [SqNone]Bitboard
	kingAttacks   [SqNone]Bitboard
	pawnAttacks   [2][SqNone]Bitboard
)

// knightSteps are the eight knight-move offsets expressed as two
// chained single-step directions each, which keeps every step
// wrap-checked by Square.To instead of hand-written file masks.
var knightSteps = [8][2]Direction{
	{North, Northeast}, {North, Northwest},
	{South, Southeast}, {South, Southwest},
	{East, Northeast}, {East, Southeast},
	{West, Northwest}, {West, Southwest},
}

func init() {
	for sq := SqA1; sq < SqNone; sq++ {
		var k Bitboard
		for _, step := range knightSteps {
			mid := sq.To(step[0])
			if mid == SqNone {
				continue
			}
			dst := mid.To(step[1])
			if dst == SqNone {
				continue
			}
			k |= dst.Bb()
		}
		knightAttacks[sq] = k

		var ka Bitboard
		for _, d := range Directions {
			if dst := sq.To(d); dst != SqNone {
				ka |= dst.Bb()
			}
		}
		kingAttacks[sq] = ka

		if dst := sq.To(Northeast); dst != SqNone {
			pawnAttacks[White][sq] |= dst.Bb()
		}
		if dst := sq.To(Northwest); dst != SqNone {
			pawnAttacks[White][sq] |= dst.Bb()
		}
		if dst := sq.To(Southeast); dst != SqNone {
			pawnAttacks[Black][sq] |= dst.Bb()
		}
		if dst := sq.To(Southwest); dst != SqNone {
			pawnAttacks[Black][sq] |= dst.Bb()
		}
	}
}

// GetPawnAttacks returns the squares a pawn of color c on sq attacks.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// GetPseudoAttacks returns the attack bitboard for a non-sliding piece
// type (Knight or King) on sq, ignoring occupancy.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	switch pt {
	case Knight:
		return knightAttacks[sq]
	case King:
		return kingAttacks[sq]
	default:
		return BbZero
	}
}

// GetAttacksBb returns the attack bitboard for piece type pt standing
// on sq given the current global occupancy. Sliding piece types go
// through the magic-bitboard tables; leapers use the pre-computed
// tables above.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return bishopMagics[sq].attacksFor(occupied)
	case Rook:
		return rookMagics[sq].attacksFor(occupied)
	case Queen:
		return bishopMagics[sq].attacksFor(occupied) | rookMagics[sq].attacksFor(occupied)
	case Knight, King:
		return GetPseudoAttacks(pt, sq)
	default:
		return BbZero
	}
}
