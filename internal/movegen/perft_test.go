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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Wertyqin99331/OrionChessEngine/internal/position"
)

// Perft reference values from https://www.chessprogramming.org/Perft_Results

func TestStandardPerft(t *testing.T) {
	maxDepth := 5
	var perft Perft
	assert := assert.New(t)

	var results = [10][6]uint64{
		// N             Nodes         Captures           EP          Checks           Mates
		{0, 1, 0, 0, 0, 0},
		{1, 20, 0, 0, 0, 0},
		{2, 400, 0, 0, 0, 0},
		{3, 8_902, 34, 0, 12, 0},
		{4, 197_281, 1_576, 0, 469, 8},
		{5, 4_865_609, 82_719, 258, 27_351, 347},
	}

	for i := 1; i <= maxDepth; i++ {
		perft.StartPerft(position.StartFEN, i)
		assert.Equal(results[i][1], perft.Nodes)
		assert.Equal(results[i][2], perft.CaptureCounter)
		assert.Equal(results[i][3], perft.EnpassantCounter)
		assert.Equal(results[i][4], perft.CheckCounter)
		assert.Equal(results[i][5], perft.CheckMateCounter)
	}
}

func TestKiwipetePerft(t *testing.T) {
	maxDepth := 3
	var perft Perft
	assert := assert.New(t)

	var kiwipete = [10][8]uint64{
		// N             Nodes         Captures           EP          Checks           Mates     Castles     Promotions
		{0, 1, 0, 0, 0, 0, 0, 0},
		{1, 48, 8, 0, 0, 0, 2, 0},
		{2, 2_039, 351, 1, 3, 0, 91, 0},
		{3, 97_862, 17_102, 45, 993, 1, 3_162, 0},
	}

	for depth := 1; depth <= maxDepth; depth++ {
		perft.StartPerft("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", depth)
		assert.Equal(kiwipete[depth][1], perft.Nodes)
		assert.Equal(kiwipete[depth][2], perft.CaptureCounter)
		assert.Equal(kiwipete[depth][3], perft.EnpassantCounter)
		assert.Equal(kiwipete[depth][4], perft.CheckCounter)
		assert.Equal(kiwipete[depth][5], perft.CheckMateCounter)
		assert.Equal(kiwipete[depth][6], perft.CastleCounter)
		assert.Equal(kiwipete[depth][7], perft.PromotionCounter)
	}
}

func TestMirrorPerft(t *testing.T) {
	maxDepth := 4
	var perft Perft
	assert := assert.New(t)

	var mirrorPerft = [10][8]uint64{
		// N             Nodes         Captures           EP          Checks           Mates     Castles     Promotions
		{0, 1, 0, 0, 0, 0, 0, 0},
		{1, 6, 0, 0, 0, 0, 0, 0},
		{2, 264, 87, 0, 10, 0, 6, 48},
		{3, 9_467, 1_021, 4, 38, 22, 0, 120},
		{4, 422_333, 131_393, 0, 15_492, 5, 7_795, 60_032},
	}

	for depth := 1; depth <= maxDepth; depth++ {
		perft.StartPerft("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", depth)
		assert.Equal(mirrorPerft[depth][1], perft.Nodes)
		assert.Equal(mirrorPerft[depth][2], perft.CaptureCounter)
		assert.Equal(mirrorPerft[depth][3], perft.EnpassantCounter)
		assert.Equal(mirrorPerft[depth][4], perft.CheckCounter)
		assert.Equal(mirrorPerft[depth][5], perft.CheckMateCounter)
		assert.Equal(mirrorPerft[depth][6], perft.CastleCounter)
		assert.Equal(mirrorPerft[depth][7], perft.PromotionCounter)
	}

	for depth := 1; depth <= maxDepth; depth++ {
		perft.StartPerft("r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1", depth)
		assert.Equal(mirrorPerft[depth][1], perft.Nodes)
		assert.Equal(mirrorPerft[depth][2], perft.CaptureCounter)
		assert.Equal(mirrorPerft[depth][3], perft.EnpassantCounter)
		assert.Equal(mirrorPerft[depth][4], perft.CheckCounter)
		assert.Equal(mirrorPerft[depth][5], perft.CheckMateCounter)
		assert.Equal(mirrorPerft[depth][6], perft.CastleCounter)
		assert.Equal(mirrorPerft[depth][7], perft.PromotionCounter)
	}
}

func TestPos5Perft(t *testing.T) {
	maxDepth := 4
	var perft Perft
	assert := assert.New(t)

	var pos5 = [10][2]uint64{
		{0, 1},
		{1, 44},
		{2, 1_486},
		{3, 62_379},
		{4, 2_103_487},
	}

	for depth := 1; depth <= maxDepth; depth++ {
		perft.StartPerft("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1", depth)
		assert.Equal(pos5[depth][1], perft.Nodes)
	}
}
