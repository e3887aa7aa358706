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

// Package position represents a chess board and its game state: an 8x8
// piece array mirrored by per-color/per-type bitboards, a bounded
// make/unmake history stack, and the side-to-move/castling/en-passant/
// clock fields that round-trip through FEN.
package position

import (
	"fmt"

	"github.com/Wertyqin99331/OrionChessEngine/internal/assert"
	. "github.com/Wertyqin99331/OrionChessEngine/internal/types"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// MaxHistory bounds the make/unmake stack. A search that nests deeper
// than this is a programmer error (§7): no legal game tree comes close.
const MaxHistory = 4096

// undoEntry records everything make() changes so unmake() can reverse
// it exactly without recomputation.
type undoEntry struct {
	move            Move
	movedPiece      Piece
	capturedPiece   Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
}

// Position is the mutable board state the search and move generator
// operate on. Create one with NewPosition or FromFEN.
type Position struct {
	board           [SqNone]Piece
	piecesBb        [2][PtLength]Bitboard
	occupiedBb      [2]Bitboard
	kingSquare      [2]Square
	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	fullMoveNumber  int

	history    [MaxHistory]undoEntry
	historyLen int
}

// NewPosition returns the standard chess starting position.
func NewPosition() *Position {
	p, err := FromFEN(StartFEN)
	if err != nil {
		panic(fmt.Sprintf("position: start FEN failed to parse: %v", err))
	}
	return p
}

// Clone returns an independent deep copy of p, used to hand a search
// goroutine its own board while the worker keeps the authoritative one.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// CastlingRights returns the currently available castling rights.
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// EnPassantSquare returns the current en-passant target square, or
// SqNone if none is set.
func (p *Position) EnPassantSquare() Square {
	return p.enPassantSquare
}

// HalfMoveClock returns the half-move clock used for the 50-move rule.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// FullMoveNumber returns the current full move number.
func (p *Position) FullMoveNumber() int {
	return p.fullMoveNumber
}

// PieceAt returns the piece on sq, or PieceNone if sq is empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.board[sq]
}

// PieceBb returns the bitboard of pieces of type pt belonging to c.
func (p *Position) PieceBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[c][pt]
}

// Occupancy returns the combined occupancy bitboard of c.
func (p *Position) Occupancy(c Color) Bitboard {
	return p.occupiedBb[c]
}

// OccupiedAll returns the bitboard of every occupied square.
func (p *Position) OccupiedAll() Bitboard {
	return p.occupiedBb[White] | p.occupiedBb[Black]
}

// EmptyBb returns the bitboard of every empty square.
func (p *Position) EmptyBb() Bitboard {
	return ^p.OccupiedAll()
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// IsInCheck reports whether the side to move's king is attacked.
func (p *Position) IsInCheck() bool {
	return p.IsSquareAttacked(p.kingSquare[p.sideToMove], p.sideToMove.Flip())
}

// IsSquareAttacked reports whether sq is attacked by any piece of
// color attacker, using reverse super-piece reasoning: a leaper or
// slider placed on sq would see an attacker's piece of the matching
// type under the same geometry.
func (p *Position) IsSquareAttacked(sq Square, attacker Color) bool {
	occ := p.OccupiedAll()
	if GetPawnAttacks(attacker.Flip(), sq)&p.piecesBb[attacker][Pawn] != 0 {
		return true
	}
	if GetPseudoAttacks(Knight, sq)&p.piecesBb[attacker][Knight] != 0 {
		return true
	}
	if GetPseudoAttacks(King, sq)&p.piecesBb[attacker][King] != 0 {
		return true
	}
	bishopsQueens := p.piecesBb[attacker][Bishop] | p.piecesBb[attacker][Queen]
	if GetAttacksBb(Bishop, sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.piecesBb[attacker][Rook] | p.piecesBb[attacker][Queen]
	if GetAttacksBb(Rook, sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// addPiece places piece pc on sq, which must be empty. Updates the
// board array, per-color/per-type bitboards, combined occupancy and,
// for a king, the cached king square.
func (p *Position) addPiece(pc Piece, sq Square) {
	assert.Assert(p.board[sq] == PieceNone, "addPiece: %s is already occupied", sq)
	c := pc.ColorOf()
	pt := pc.TypeOf()
	p.board[sq] = pc
	p.piecesBb[c][pt] = PushSquare(p.piecesBb[c][pt], sq)
	p.occupiedBb[c] = PushSquare(p.occupiedBb[c], sq)
	if pt == King {
		p.kingSquare[c] = sq
	}
}

// removePieceAt clears sq, which must hold a piece, and returns what
// was removed.
func (p *Position) removePieceAt(sq Square) Piece {
	pc := p.board[sq]
	assert.Assert(pc != PieceNone, "removePieceAt: %s is already empty", sq)
	c := pc.ColorOf()
	pt := pc.TypeOf()
	p.board[sq] = PieceNone
	p.piecesBb[c][pt] = PopSquare(p.piecesBb[c][pt], sq)
	p.occupiedBb[c] = PopSquare(p.occupiedBb[c], sq)
	return pc
}

// movePieceSquares relocates whatever sits on from to to, which must
// be empty.
func (p *Position) movePieceSquares(from, to Square) {
	p.addPiece(p.removePieceAt(from), to)
}

// String renders the board as an ASCII diagram with the current FEN
// underneath, for debug logging and test failure output.
func (p *Position) String() string {
	var s string
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				s += ". "
			} else {
				s += pc.String() + " "
			}
		}
		s += "\n"
		if r == Rank1 {
			break
		}
	}
	return s + p.FEN()
}
