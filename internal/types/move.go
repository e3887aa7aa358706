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
	"strings"
)

// Move packs a move's from/to squares, move type and (where relevant)
// promotion piece type into a single 32-bit value.
//
//	BITMAP 32-bit, low to high
//	bits 0-5    to square
//	bits 6-11   from square
//	bits 12-13  promotion piece type, offset from Knight (0-3)
//	bits 14-15  move type
//	bits 16-31  unused
type Move uint32

// MoveNone is the zero value, the "no move"/null-move sentinel, also
// used as the UCI wire value "0000".
const MoveNone Move = 0

const (
	toShift       uint32 = 0
	fromShift     uint32 = 6
	promTypeShift uint32 = 12
	typeShift     uint32 = 14

	squareMask   Move = 0x3F
	toMask       Move = squareMask << toShift
	fromMask     Move = squareMask << fromShift
	promTypeMask Move = 3 << promTypeShift
	moveTypeMask Move = 3 << typeShift
)

// NewMove encodes a Normal or EnPassant move.
func NewMove(from, to Square, t MoveType) Move {
	return Move(to)<<toShift | Move(from)<<fromShift | Move(t)<<typeShift
}

// NewPromotion encodes a promotion move. promo must be one of
// Knight, Bishop, Rook or Queen.
func NewPromotion(from, to Square, promo PieceType) Move {
	return Move(to)<<toShift | Move(from)<<fromShift |
		Move(promo-Knight)<<promTypeShift | Move(Promotion)<<typeShift
}

// NewCastle encodes a castling move from the king's origin to its
// destination square; side-to-castle is recovered from those squares.
func NewCastle(kingFrom, kingTo Square) Move {
	return Move(kingTo)<<toShift | Move(kingFrom)<<fromShift | Move(Castle)<<typeShift
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// Type returns the move's MoveType.
func (m Move) Type() MoveType {
	return MoveType((m & moveTypeMask) >> typeShift)
}

// PromotionType returns the promoted-to piece type. Only meaningful
// when Type() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m&promTypeMask)>>promTypeShift) + Knight
}

// IsValid reports whether m has well-formed squares, type and
// promotion field. MoveNone is not valid in this sense.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.Type().IsValid()
}

// String renders m in UCI long algebraic form: "<from><to>" with a
// trailing lower-case promotion letter for promotions, or "0000" for
// MoveNone.
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.Type() == Promotion {
		b.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return b.String()
}

// Debug renders m with every field broken out, for use in test
// failures and trace logging.
func (m Move) Debug() string {
	return fmt.Sprintf("Move{from:%s to:%s type:%s prom:%s raw:%#x}",
		m.From(), m.To(), m.Type(), m.PromotionType().Char(), uint32(m))
}

// ScoredMove pairs a move with an ordering score, used by move
// generation and the move-ordering heuristics in search. Kept separate
// from Move's own packed bits because search scores (mate-distance
// values in particular) don't fit the 16 bits the scheme would
// otherwise spare for it.
type ScoredMove struct {
	Move  Move
	Score int32
}

// MoveList is a pre-sized, reusable buffer of scored moves, used per
// ply to avoid per-node slice growth.
type MoveList struct {
	moves []ScoredMove
}

// NewMoveList returns a MoveList with enough backing capacity for any
// legal chess position (the densest known positions generate well
// under 220 pseudo-legal moves).
func NewMoveList() *MoveList {
	return &MoveList{moves: make([]ScoredMove, 0, 256)}
}

// Add appends a move with the given ordering score.
func (l *MoveList) Add(m Move, score int32) {
	l.moves = append(l.moves, ScoredMove{Move: m, Score: score})
}

// Clear empties the list while retaining its backing array.
func (l *MoveList) Clear() {
	l.moves = l.moves[:0]
}

// Len returns the number of moves currently in the list.
func (l *MoveList) Len() int {
	return len(l.moves)
}

// At returns the i-th scored move.
func (l *MoveList) At(i int) ScoredMove {
	return l.moves[i]
}

// Swap exchanges the moves at i and j, used by the insertion sort in
// moveorder.Sort.
func (l *MoveList) Swap(i, j int) {
	l.moves[i], l.moves[j] = l.moves[j], l.moves[i]
}

// SetScore overwrites the ordering score of the i-th move, used by the
// move-ordering pass to layer killer/history scores onto quiet moves
// after generation has already assigned capture scores.
func (l *MoveList) SetScore(i int, score int32) {
	l.moves[i].Score = score
}
