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
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Wertyqin99331/OrionChessEngine/internal/position"
	. "github.com/Wertyqin99331/OrionChessEngine/internal/types"
)

var out = message.NewPrinter(language.English)

// Perft counts leaf nodes of the legal move tree rooted at a position,
// broken down by move category, to verify a move generator against
// known-correct node counts.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// NewPerft creates a new empty Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop interrupts a perft run started in another goroutine.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerftMulti runs StartPerft once per depth from startDepth to
// endDepth inclusive, stopping early if Stop is called.
func (perft *Perft) StartPerftMulti(fen string, startDepth int, endDepth int) {
	perft.stopFlag = false
	for d := startDepth; d <= endDepth; d++ {
		if perft.stopFlag {
			out.Print("perft multi-depth stopped\n")
			return
		}
		perft.StartPerft(fen, d)
	}
}

// StartPerft counts leaf nodes for fen at the given depth and prints a
// report. If this has been started in a goroutine it can be cancelled
// via Stop.
func (perft *Perft) StartPerft(fen string, depth int) {
	perft.stopFlag = false
	if depth <= 0 {
		depth = 1
	}
	perft.resetCounter()

	pos, err := position.FromFEN(fen)
	if err != nil {
		out.Printf("perft: invalid fen %q: %v\n", fen, err)
		return
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	result := perft.miniMax(depth, pos)
	elapsed := time.Since(start)

	if perft.stopFlag {
		out.Print("perft stopped\n")
		return
	}
	perft.Nodes = result

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", (perft.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   EnPassant : %d\n", perft.EnpassantCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("   CheckMates: %d\n", perft.CheckMateCounter)
	out.Printf("   Castles   : %d\n", perft.CastleCounter)
	out.Printf("   Promotions: %d\n", perft.PromotionCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

// miniMax walks the legal-move tree below pos to the given depth,
// counting leaves and classifying each one by the move that produced
// it. pos is mutated and restored in place via Make/Unmake.
func (perft *Perft) miniMax(depth int, pos *position.Position) uint64 {
	ml := NewMoveList()
	GenerateLegal(pos, GenAll, ml)

	if depth == 1 {
		var leaves uint64
		for i := 0; i < ml.Len(); i++ {
			if perft.stopFlag {
				return 0
			}
			m := ml.At(i).Move
			capture := pos.PieceAt(m.To()) != PieceNone
			enpassant := m.Type() == EnPassant
			castle := m.Type() == Castle
			promotion := m.Type() == Promotion

			pos.Make(m)
			leaves++
			if enpassant {
				perft.EnpassantCounter++
				perft.CaptureCounter++
			} else if capture {
				perft.CaptureCounter++
			}
			if castle {
				perft.CastleCounter++
			}
			if promotion {
				perft.PromotionCounter++
			}
			if pos.IsInCheck() {
				perft.CheckCounter++
				if !HasLegalMove(pos) {
					perft.CheckMateCounter++
				}
			}
			pos.Unmake()
		}
		return leaves
	}

	var total uint64
	for i := 0; i < ml.Len(); i++ {
		if perft.stopFlag {
			return 0
		}
		pos.Make(ml.At(i).Move)
		total += perft.miniMax(depth-1, pos)
		pos.Unmake()
	}
	return total
}

func (perft *Perft) resetCounter() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CheckMateCounter = 0
	perft.CaptureCounter = 0
	perft.EnpassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
}
