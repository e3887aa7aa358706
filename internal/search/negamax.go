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

// Package search implements fixed-depth alpha-beta negamax over the
// position package's move generator, with quiescence search at the
// leaves and killer/history move ordering. A Searcher owns the killer
// and history tables; the engine worker keeps one Searcher for its whole
// lifetime and reuses it for every "go" command.
package search

import (
	"sync/atomic"

	"github.com/Wertyqin99331/OrionChessEngine/internal/config"
	"github.com/Wertyqin99331/OrionChessEngine/internal/eval"
	"github.com/Wertyqin99331/OrionChessEngine/internal/movegen"
	"github.com/Wertyqin99331/OrionChessEngine/internal/moveorder"
	"github.com/Wertyqin99331/OrionChessEngine/internal/position"
	. "github.com/Wertyqin99331/OrionChessEngine/internal/types"
)

// Searcher holds the move-ordering tables and the node counter, which
// carry over from one root search to the next: SearchBestMove clears the
// killers and halves the history table at its start. Not safe for concurrent use by more than one goroutine at a
// time; the worker that owns it is expected to run it to completion
// (or cancellation) before reusing or discarding it.
type Searcher struct {
	killers *moveorder.Killers
	history *moveorder.History
	nodes   int64
	stop    StopToken
}

// NewSearcher returns a Searcher ready to run a root search, sharing
// stop as its cancellation signal.
func NewSearcher(stop StopToken) *Searcher {
	return &Searcher{
		killers: moveorder.NewKillers(),
		history: moveorder.NewHistory(),
		stop:    stop,
	}
}

// Nodes returns the number of nodes visited so far, safe to read from
// another goroutine while the search is still running.
func (s *Searcher) Nodes() int64 {
	return atomic.LoadInt64(&s.nodes)
}

// SearchBestMove runs an iterative, fixed-depth search from pos and
// returns the best move found at the requested depth along with its
// score. ok is false only when pos has no legal move at all (checkmate
// or stalemate at the root).
func (s *Searcher) SearchBestMove(pos *position.Position, depth int) (best Move, score Value, ok bool) {
	s.killers.Clear()
	s.history.Halve()

	ml := NewMoveList()
	movegen.GenerateLegal(pos, movegen.GenAll, ml)
	if ml.Len() == 0 {
		return MoveNone, ValueZero, false
	}
	if config.Settings.Search.UseKiller || config.Settings.Search.UseHistory {
		moveorder.Score(ml, s.killers, s.history, 0, false)
	}

	alpha, beta := -Infinity, Infinity
	best = ml.At(0).Move
	for i := 0; i < ml.Len(); i++ {
		if s.stop.IsStopped() {
			break
		}
		m := ml.At(i).Move
		wasQuiet := pos.PieceAt(m.To()) == PieceNone && m.Type() != EnPassant && m.Type() != Promotion

		pos.Make(m)
		v := -s.negamax(pos, depth-1, -beta, -alpha, 1)
		pos.Unmake()

		if v > alpha {
			alpha = v
			best = m
			score = v
			if wasQuiet {
				s.killers.Store(0, m)
				s.history.Add(m.From(), m.To(), depth)
			}
		}
	}
	return best, score, true
}

// negamax searches pos to depth plies, returning a score from the
// perspective of the side to move. ply counts down from the root and
// is used for mate-distance scoring and killer-table indexing.
func (s *Searcher) negamax(pos *position.Position, depth int, alpha, beta Value, ply int) Value {
	atomic.AddInt64(&s.nodes, 1)

	if pos.HalfMoveClock() >= 100 {
		return ValueZero
	}

	ml := NewMoveList()
	movegen.GenerateLegal(pos, movegen.GenAll, ml)
	if ml.Len() == 0 {
		if pos.IsInCheck() {
			return -Mate + Value(ply)
		}
		return ValueZero
	}
	if depth <= 0 {
		return s.quiescence(pos, alpha, beta, ply)
	}
	if config.Settings.Search.UseKiller || config.Settings.Search.UseHistory {
		moveorder.Score(ml, s.killers, s.history, ply, false)
	}

	best := -Infinity
	curAlpha := alpha
	if best > curAlpha {
		curAlpha = best
	}

	for i := 0; i < ml.Len(); i++ {
		if s.stop.IsStopped() {
			if best == -Infinity {
				return alpha
			}
			return best
		}

		m := ml.At(i).Move
		wasQuiet := pos.PieceAt(m.To()) == PieceNone && m.Type() != EnPassant && m.Type() != Promotion

		pos.Make(m)
		v := -s.negamax(pos, depth-1, -beta, -curAlpha, ply+1)
		pos.Unmake()

		if v > best {
			best = v
		}
		if v > curAlpha {
			curAlpha = v
		}
		if curAlpha >= beta {
			if wasQuiet {
				s.killers.Store(ply, m)
				s.history.Add(m.From(), m.To(), depth)
			}
			break
		}
	}
	return best
}

// quiescence extends the search along capture sequences until the
// position is quiet, to avoid misjudging a leaf in the middle of a
// capture exchange.
func (s *Searcher) quiescence(pos *position.Position, alpha, beta Value, ply int) Value {
	atomic.AddInt64(&s.nodes, 1)

	standPat := eval.Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	if !config.Settings.Search.UseQuiescence {
		return alpha
	}

	ml := NewMoveList()
	movegen.GenerateLegal(pos, movegen.GenCapturesOnly, ml)
	moveorder.Score(ml, s.killers, s.history, ply, true)

	for i := 0; i < ml.Len(); i++ {
		if s.stop.IsStopped() {
			return alpha
		}
		m := ml.At(i).Move

		pos.Make(m)
		v := -s.quiescence(pos, -beta, -alpha, ply+1)
		pos.Unmake()

		if v >= beta {
			return beta
		}
		if v > alpha {
			alpha = v
		}
	}
	return alpha
}
