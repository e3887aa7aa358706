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

// Package moveorder ranks the moves a search node is about to try:
// captures by MVV-LVA, quiet moves by killer-slot membership and a
// from/to history table, so that cutoffs are found with the fewest
// nodes expanded.
package moveorder

import (
	. "github.com/Wertyqin99331/OrionChessEngine/internal/types"
)

// MaxPly bounds how deep the killer table is indexed; no search in
// this engine recurses anywhere near this many plies.
const MaxPly = 128

const (
	firstKillerScore  int32 = 90000
	secondKillerScore int32 = 80000
	captureBias       int32 = 100000
)

// Killers holds, for each ply, the two most recent quiet moves that
// produced a beta cutoff there.
type Killers struct {
	slots [MaxPly][2]Move
}

// NewKillers returns an empty killer table.
func NewKillers() *Killers {
	return &Killers{}
}

// Clear resets every slot, done once at the start of each root search.
func (k *Killers) Clear() {
	*k = Killers{}
}

// Store records mv as a killer at ply, shifting the existing first
// killer down unless mv is already the first killer.
func (k *Killers) Store(ply int, mv Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	if k.slots[ply][0] == mv {
		return
	}
	k.slots[ply][1] = k.slots[ply][0]
	k.slots[ply][0] = mv
}

// Probe returns the two killer moves stored at ply.
func (k *Killers) Probe(ply int) (first, second Move) {
	if ply < 0 || ply >= MaxPly {
		return MoveNone, MoveNone
	}
	return k.slots[ply][0], k.slots[ply][1]
}

// History is a single from/to counter table shared by both sides, not
// split per color: a quiet move that cuts off well for one side is a
// reasonable try for the other too.
type History struct {
	counts [64][64]uint32
}

// NewHistory returns an empty history table.
func NewHistory() *History {
	return &History{}
}

// Add records a quiet beta cutoff at the given depth, saturating
// rather than overflowing on pathologically long searches.
func (h *History) Add(from, to Square, depth int) {
	inc := uint32(depth * depth)
	cur := h.counts[from][to]
	if cur > ^uint32(0)-inc {
		h.counts[from][to] = ^uint32(0)
		return
	}
	h.counts[from][to] = cur + inc
}

// Get returns the current history score for a from/to pair.
func (h *History) Get(from, to Square) uint32 {
	return h.counts[from][to]
}

// Halve damps every entry, done once at the start of each root search
// so that stale information from prior searches decays rather than
// permanently biasing move order.
func (h *History) Halve() {
	for f := 0; f < 64; f++ {
		for t := 0; t < 64; t++ {
			h.counts[f][t] >>= 1
		}
	}
}

// MvvLva scores a capture by most-valuable-victim, least-valuable-
// attacker, biased above every possible quiet-move score.
func MvvLva(victim, attacker PieceType) int32 {
	return captureBias + int32(victim)*10 - int32(attacker)
}

// Score assigns ordering scores to every move in ml for the given ply.
// Moves that movegen already flagged as captures (score >= captureBias)
// are left untouched; every other move is scored 0 when onlyCaptures
// is set (quiescence has no use for killer/history ordering), or by
// killer-slot membership then history otherwise.
func Score(ml *MoveList, killers *Killers, history *History, ply int, onlyCaptures bool) {
	first, second := killers.Probe(ply)
	for i := 0; i < ml.Len(); i++ {
		sm := ml.At(i)
		if sm.Score >= captureBias {
			continue
		}
		if onlyCaptures {
			ml.SetScore(i, 0)
			continue
		}
		switch sm.Move {
		case first:
			ml.SetScore(i, firstKillerScore)
		case second:
			ml.SetScore(i, secondKillerScore)
		default:
			ml.SetScore(i, int32(history.Get(sm.Move.From(), sm.Move.To())))
		}
	}
	Sort(ml)
}

// Sort stably orders ml by descending score using insertion sort,
// appropriate given the buffer holds at most a few dozen moves.
func Sort(ml *MoveList) {
	for i := 1; i < ml.Len(); i++ {
		sm := ml.At(i)
		j := i
		for j > 0 && ml.At(j-1).Score < sm.Score {
			ml.Swap(j, j-1)
			j--
		}
	}
}
