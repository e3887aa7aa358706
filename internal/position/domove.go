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

package position

import (
	"github.com/Wertyqin99331/OrionChessEngine/internal/assert"
	. "github.com/Wertyqin99331/OrionChessEngine/internal/types"
)

// Make applies m to the position, pushing enough state onto the
// history stack that Unmake can reverse it exactly. The caller is
// responsible for only ever calling Make with a pseudo-legal move;
// legality (the mover's king not left in check) is the move
// generator's concern, checked by a make/IsInCheck/unmake probe.
func (p *Position) Make(m Move) {
	assert.Assert(p.historyLen < MaxHistory, "Make: history stack overflow")
	assert.Assert(m.IsValid(), "Make: invalid move %s", m)

	from, to := m.From(), m.To()
	movedPiece := p.board[from]
	capturedPiece := PieceNone

	entry := &p.history[p.historyLen]
	entry.move = m
	entry.movedPiece = movedPiece
	entry.castlingRights = p.castlingRights
	entry.enPassantSquare = p.enPassantSquare
	entry.halfMoveClock = p.halfMoveClock
	p.historyLen++

	p.enPassantSquare = SqNone

	switch m.Type() {
	case Normal:
		capturedPiece = p.board[to]
		if capturedPiece != PieceNone {
			p.removePieceAt(to)
		}
		p.movePieceSquares(from, to)
		if movedPiece.TypeOf() == Pawn {
			if to.RankOf()-from.RankOf() == 2 || from.RankOf()-to.RankOf() == 2 {
				p.enPassantSquare = to.To(movedPiece.ColorOf().Flip().PawnPushDirection())
			}
		}
	case Promotion:
		capturedPiece = p.board[to]
		if capturedPiece != PieceNone {
			p.removePieceAt(to)
		}
		p.removePieceAt(from)
		p.addPiece(MakePiece(movedPiece.ColorOf(), m.PromotionType()), to)
	case EnPassant:
		capSq := to.To(movedPiece.ColorOf().Flip().PawnPushDirection())
		capturedPiece = p.removePieceAt(capSq)
		p.movePieceSquares(from, to)
	case Castle:
		p.movePieceSquares(from, to)
		switch to {
		case SqG1:
			p.movePieceSquares(SqH1, SqF1)
		case SqC1:
			p.movePieceSquares(SqA1, SqD1)
		case SqG8:
			p.movePieceSquares(SqH8, SqF8)
		case SqC8:
			p.movePieceSquares(SqA8, SqD8)
		default:
			assert.Assert(false, "Make: invalid castle destination %s", to)
		}
	}

	entry.capturedPiece = capturedPiece

	if cr := GetCastlingRights(from) | GetCastlingRights(to); cr != CastlingNone {
		p.castlingRights.Remove(cr)
	}

	if movedPiece.TypeOf() == Pawn || capturedPiece != PieceNone {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	if p.sideToMove == Black {
		p.fullMoveNumber++
	}
	p.sideToMove = p.sideToMove.Flip()
}

// Unmake reverses the most recent Make call. Calling it with an empty
// history is a programmer error.
func (p *Position) Unmake() {
	assert.Assert(p.historyLen > 0, "Unmake: history stack is empty")
	p.historyLen--
	entry := &p.history[p.historyLen]
	m := entry.move

	p.sideToMove = p.sideToMove.Flip()
	if p.sideToMove == Black {
		p.fullMoveNumber--
	}

	from, to := m.From(), m.To()
	switch m.Type() {
	case Normal:
		p.movePieceSquares(to, from)
		if entry.capturedPiece != PieceNone {
			p.addPiece(entry.capturedPiece, to)
		}
	case Promotion:
		p.removePieceAt(to)
		p.addPiece(entry.movedPiece, from)
		if entry.capturedPiece != PieceNone {
			p.addPiece(entry.capturedPiece, to)
		}
	case EnPassant:
		p.movePieceSquares(to, from)
		capSq := to.To(entry.movedPiece.ColorOf().Flip().PawnPushDirection())
		p.addPiece(entry.capturedPiece, capSq)
	case Castle:
		p.movePieceSquares(to, from)
		switch to {
		case SqG1:
			p.movePieceSquares(SqF1, SqH1)
		case SqC1:
			p.movePieceSquares(SqD1, SqA1)
		case SqG8:
			p.movePieceSquares(SqF8, SqH8)
		case SqC8:
			p.movePieceSquares(SqD8, SqA8)
		default:
			assert.Assert(false, "Unmake: invalid castle destination %s", to)
		}
	}

	p.castlingRights = entry.castlingRights
	p.enPassantSquare = entry.enPassantSquare
	p.halfMoveClock = entry.halfMoveClock
}
