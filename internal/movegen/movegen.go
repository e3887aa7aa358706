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

// Package movegen generates pseudo-legal and legal moves for a
// position: pawns, knights, bishops, rooks, queens, kings and
// castling, in that fixed order, into a caller-owned MoveList.
package movegen

import (
	"github.com/Wertyqin99331/OrionChessEngine/internal/moveorder"
	"github.com/Wertyqin99331/OrionChessEngine/internal/position"
	. "github.com/Wertyqin99331/OrionChessEngine/internal/types"
)

// GenMode selects which subset of pseudo-legal moves to emit.
type GenMode int

const (
	// GenAll emits every pseudo-legal move.
	GenAll GenMode = iota
	// GenCapturesOnly emits captures, capture-promotions and en
	// passant, but no quiet moves (used by quiescence search).
	GenCapturesOnly
)

var promotionOrder = [4]PieceType{Knight, Bishop, Rook, Queen}

// GeneratePseudoLegal clears ml and fills it with every pseudo-legal
// move for the side to move in pos, in the fixed order pawn, knight,
// bishop, rook, queen, king, castling.
func GeneratePseudoLegal(pos *position.Position, mode GenMode, ml *MoveList) {
	ml.Clear()
	generatePawnMoves(pos, mode, ml)
	generatePieceMoves(pos, Knight, mode, ml)
	generatePieceMoves(pos, Bishop, mode, ml)
	generatePieceMoves(pos, Rook, mode, ml)
	generatePieceMoves(pos, Queen, mode, ml)
	generatePieceMoves(pos, King, mode, ml)
	if mode == GenAll {
		generateCastling(pos, ml)
	}
}

// GenerateLegal clears ml and fills it with only the moves from
// GeneratePseudoLegal that don't leave the mover's own king in check,
// by making each candidate, probing whether the king is attacked, then
// unmaking. Input order is preserved.
func GenerateLegal(pos *position.Position, mode GenMode, ml *MoveList) {
	ml.Clear()
	pseudo := NewMoveList()
	GeneratePseudoLegal(pos, mode, pseudo)
	mover := pos.SideToMove()
	for i := 0; i < pseudo.Len(); i++ {
		sm := pseudo.At(i)
		pos.Make(sm.Move)
		if !pos.IsSquareAttacked(pos.KingSquare(mover), mover.Flip()) {
			ml.Add(sm.Move, sm.Score)
		}
		pos.Unmake()
	}
}

// HasLegalMove reports whether the side to move has at least one
// legal move, short-circuiting as soon as one is found; used by
// search's checkmate/stalemate test without building a full list.
func HasLegalMove(pos *position.Position) bool {
	pseudo := NewMoveList()
	GeneratePseudoLegal(pos, GenAll, pseudo)
	mover := pos.SideToMove()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i).Move
		pos.Make(m)
		safe := !pos.IsSquareAttacked(pos.KingSquare(mover), mover.Flip())
		pos.Unmake()
		if safe {
			return true
		}
	}
	return false
}

func generatePawnMoves(pos *position.Position, mode GenMode, ml *MoveList) {
	us := pos.SideToMove()
	them := us.Flip()
	pawns := pos.PieceBb(us, Pawn)
	empty := pos.EmptyBb()
	theirs := pos.Occupancy(them)
	promoRank := us.PromotionRankBb()
	pushDir := us.PawnPushDirection()

	if mode != GenCapturesOnly {
		singlePush := ShiftBitboard(pawns, pushDir) & empty

		quiet := singlePush &^ promoRank
		for b := quiet; b != BbZero; {
			to := b.PopLsb()
			ml.Add(NewMove(to.To(-pushDir), to, Normal), 0)
		}

		promoPush := singlePush & promoRank
		for b := promoPush; b != BbZero; {
			to := b.PopLsb()
			addPromotions(ml, to.To(-pushDir), to, 0)
		}

		// A pawn may double-push only from its own start rank; after a
		// single push it always lands on the rank the opposing side
		// would treat as a legal en-passant target rank once it is to
		// move, so that rank doubles as the "may continue" mask here.
		throughRank := them.EnPassantTargetRank()
		doublePush := ShiftBitboard(singlePush&throughRank, pushDir) & empty
		for b := doublePush; b != BbZero; {
			to := b.PopLsb()
			ml.Add(NewMove(to.To(-pushDir).To(-pushDir), to, Normal), 0)
		}
	}

	for _, dir := range [2]Direction{pushDir + East, pushDir + West} {
		captures := ShiftBitboard(pawns, dir) & theirs
		quietCaps := captures &^ promoRank
		for b := quietCaps; b != BbZero; {
			to := b.PopLsb()
			from := to.To(-dir)
			ml.Add(NewMove(from, to, Normal), moveorder.MvvLva(pos.PieceAt(to).TypeOf(), Pawn))
		}
		promoCaps := captures & promoRank
		for b := promoCaps; b != BbZero; {
			to := b.PopLsb()
			from := to.To(-dir)
			addPromotions(ml, from, to, moveorder.MvvLva(pos.PieceAt(to).TypeOf(), Pawn))
		}
	}

	if ep := pos.EnPassantSquare(); ep != SqNone {
		for _, dir := range [2]Direction{pushDir + East, pushDir + West} {
			from := ep.To(-dir)
			if from != SqNone && pos.PieceAt(from) == MakePiece(us, Pawn) {
				ml.Add(NewMove(from, ep, EnPassant), moveorder.MvvLva(Pawn, Pawn))
			}
		}
	}
}

// addPromotions emits the four promotion moves in the fixed order
// Knight, Bishop, Rook, Queen, each carrying the same base score.
func addPromotions(ml *MoveList, from, to Square, base int32) {
	for _, pt := range promotionOrder {
		ml.Add(NewPromotion(from, to, pt), base)
	}
}

func generatePieceMoves(pos *position.Position, pt PieceType, mode GenMode, ml *MoveList) {
	us := pos.SideToMove()
	them := us.Flip()
	occ := pos.OccupiedAll()
	theirs := pos.Occupancy(them)
	empty := pos.EmptyBb()

	for b := pos.PieceBb(us, pt); b != BbZero; {
		from := b.PopLsb()
		attacks := GetAttacksBb(pt, from, occ)

		captures := attacks & theirs
		for c := captures; c != BbZero; {
			to := c.PopLsb()
			ml.Add(NewMove(from, to, Normal), moveorder.MvvLva(pos.PieceAt(to).TypeOf(), pt))
		}

		if mode != GenCapturesOnly {
			quiet := attacks & empty
			for q := quiet; q != BbZero; {
				to := q.PopLsb()
				ml.Add(NewMove(from, to, Normal), 0)
			}
		}
	}
}

// generateCastling emits a castling move only when the right is
// present, the squares between king and rook are empty, and the
// king's current square and every square it crosses are unattacked.
func generateCastling(pos *position.Position, ml *MoveList) {
	us := pos.SideToMove()
	them := us.Flip()
	cr := pos.CastlingRights()
	occ := pos.OccupiedAll()

	if pos.IsSquareAttacked(pos.KingSquare(us), them) {
		return
	}

	kingSideRight, queenSideRight := CastlingWhiteOO, CastlingWhiteOOO
	kingFrom, kingSideTo, queenSideTo := SqE1, SqG1, SqC1
	if us == Black {
		kingSideRight, queenSideRight = CastlingBlackOO, CastlingBlackOOO
		kingFrom, kingSideTo, queenSideTo = SqE8, SqG8, SqC8
	}

	if cr.Has(kingSideRight) && occ&KingSideCastleMask(us) == 0 &&
		!anyAttacked(pos, KingSideCastleMask(us), them) {
		ml.Add(NewCastle(kingFrom, kingSideTo), -5000)
	}
	if cr.Has(queenSideRight) && occ&QueenSideCastleMask(us) == 0 &&
		!anyAttacked(pos, QueenSideCastleKingPath(us), them) {
		ml.Add(NewCastle(kingFrom, queenSideTo), -5000)
	}
}

func anyAttacked(pos *position.Position, squares Bitboard, by Color) bool {
	for b := squares; b != BbZero; {
		if pos.IsSquareAttacked(b.PopLsb(), by) {
			return true
		}
	}
	return false
}
