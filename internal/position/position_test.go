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
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/Wertyqin99331/OrionChessEngine/internal/types"
)

// make tests run in the project's root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}

func TestNewPositionIsStartPosition(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, StartFEN, p.FEN())
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, 0, p.HalfMoveClock())
	assert.Equal(t, 1, p.FullMoveNumber())
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1",
	}
	for _, fen := range fens {
		p, err := FromFEN(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.FEN())
	}
}

func TestFromFenRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"not a fen at all",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e3 0 1",
	}
	for _, fen := range cases {
		_, err := FromFEN(fen)
		assert.Error(t, err, "expected error for fen %q", fen)
	}
}

func TestMakeUnmakeNormalMove(t *testing.T) {
	p := NewPosition()
	before := p.FEN()
	p.Make(NewMove(SqE2, SqE4, Normal))
	assert.Equal(t, PieceNone, p.PieceAt(SqE2))
	assert.Equal(t, WhitePawn, p.PieceAt(SqE4))
	assert.Equal(t, SqE3, p.EnPassantSquare())
	assert.Equal(t, Black, p.SideToMove())
	p.Unmake()
	assert.Equal(t, before, p.FEN())
}

func TestMakeUnmakeCapture(t *testing.T) {
	p, err := FromFEN("r3k2r/8/8/3p4/4P3/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	before := p.FEN()
	p.Make(NewMove(SqE4, SqD5, Normal))
	assert.Equal(t, WhitePawn, p.PieceAt(SqD5))
	assert.Equal(t, PieceNone, p.PieceAt(SqE4))
	assert.Equal(t, 0, p.HalfMoveClock())
	p.Unmake()
	assert.Equal(t, before, p.FEN())
}

func TestMakeUnmakeEnPassant(t *testing.T) {
	p, err := FromFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	assert.NoError(t, err)
	before := p.FEN()
	p.Make(NewMove(SqE5, SqF6, EnPassant))
	assert.Equal(t, WhitePawn, p.PieceAt(SqF6))
	assert.Equal(t, PieceNone, p.PieceAt(SqF5))
	assert.Equal(t, PieceNone, p.PieceAt(SqE5))
	p.Unmake()
	assert.Equal(t, before, p.FEN())
}

func TestMakeUnmakeCastling(t *testing.T) {
	p, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	before := p.FEN()

	p.Make(NewCastle(SqE1, SqG1))
	assert.Equal(t, WhiteKing, p.PieceAt(SqG1))
	assert.Equal(t, WhiteRook, p.PieceAt(SqF1))
	assert.Equal(t, PieceNone, p.PieceAt(SqE1))
	assert.Equal(t, PieceNone, p.PieceAt(SqH1))
	assert.Equal(t, SqG1, p.KingSquare(White))
	p.Unmake()
	assert.Equal(t, before, p.FEN())

	p.Make(NewCastle(SqE1, SqC1))
	assert.Equal(t, WhiteKing, p.PieceAt(SqC1))
	assert.Equal(t, WhiteRook, p.PieceAt(SqD1))
	assert.Equal(t, PieceNone, p.PieceAt(SqA1))
	p.Unmake()
	assert.Equal(t, before, p.FEN())
}

func TestMakeUnmakePromotion(t *testing.T) {
	p, err := FromFEN("8/P6k/8/8/8/8/7p/K7 w - - 0 1")
	assert.NoError(t, err)
	before := p.FEN()

	p.Make(NewPromotion(SqA7, SqA8, Queen))
	assert.Equal(t, WhiteQueen, p.PieceAt(SqA8))
	assert.Equal(t, PieceNone, p.PieceAt(SqA7))
	p.Unmake()
	assert.Equal(t, before, p.FEN())
}

func TestCastlingRightsClearedByRookAndKingMoves(t *testing.T) {
	p, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	p.Make(NewMove(SqH1, SqH2, Normal))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOO))
	assert.True(t, p.CastlingRights().Has(CastlingWhiteOOO))

	p.Make(NewMove(SqH8, SqH7, Normal))
	assert.False(t, p.CastlingRights().Has(CastlingBlackOO))
	assert.True(t, p.CastlingRights().Has(CastlingBlackOOO))

	p.Make(NewMove(SqE1, SqE2, Normal))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOOO))
	assert.True(t, p.CastlingRights().Has(CastlingBlackOOO))
}

func TestIsInCheck(t *testing.T) {
	p, err := FromFEN("6k1/5ppp/8/8/8/8/8/3K3R w - - 0 1")
	assert.NoError(t, err)
	assert.False(t, p.IsInCheck())

	p.Make(NewMove(SqH1, SqH8, Normal))
	assert.True(t, p.IsInCheck())
}

func TestIsSquareAttacked(t *testing.T) {
	p, err := FromFEN("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/6R1/p1p2PPP/1R4K1 b kq e3 0 1")
	assert.NoError(t, err)

	// pawn attacks
	assert.True(t, p.IsSquareAttacked(SqG3, White))
	assert.True(t, p.IsSquareAttacked(SqE3, White))

	// sliding rook
	assert.True(t, p.IsSquareAttacked(SqG6, White))

	// empty, unattacked square
	assert.False(t, p.IsSquareAttacked(SqA1, Black))
}

func TestCloneIsIndependent(t *testing.T) {
	p := NewPosition()
	c := p.Clone()
	c.Make(NewMove(SqE2, SqE4, Normal))
	assert.Equal(t, StartFEN, p.FEN())
	assert.NotEqual(t, p.FEN(), c.FEN())
}
