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

package search

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Wertyqin99331/OrionChessEngine/internal/config"
	"github.com/Wertyqin99331/OrionChessEngine/internal/position"
	. "github.com/Wertyqin99331/OrionChessEngine/internal/types"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

func TestSearchBestMoveFromStartPosition(t *testing.T) {
	pos := position.NewPosition()
	s := NewSearcher(NewStopToken())
	best, _, ok := s.SearchBestMove(pos, 3)
	assert.True(t, ok)
	assert.NotEqual(t, MoveNone, best)
}

func TestSearchFindsMateInOne(t *testing.T) {
	// Ra1-a8 is a back-rank mate: the king's own pawns on f7/g7/h7 block
	// its escape and the rook on a8 covers f8 and h8.
	pos, err := position.FromFEN("6k1/5ppp/8/8/8/8/8/R2K4 w - - 0 1")
	assert.NoError(t, err)
	s := NewSearcher(NewStopToken())
	_, score, ok := s.SearchBestMove(pos, 3)
	assert.True(t, ok)
	assert.True(t, score.IsMateValue())
}

func TestStoppedSearchStillReturnsAMove(t *testing.T) {
	pos := position.NewPosition()
	stop := NewStopToken()
	stop.RequestStop()
	s := NewSearcher(stop)
	best, _, ok := s.SearchBestMove(pos, 5)
	assert.True(t, ok)
	assert.NotEqual(t, MoveNone, best)
}

func TestNodesCounterAdvances(t *testing.T) {
	pos := position.NewPosition()
	s := NewSearcher(NewStopToken())
	_, _, ok := s.SearchBestMove(pos, 2)
	assert.True(t, ok)
	assert.Greater(t, s.Nodes(), int64(0))
}
