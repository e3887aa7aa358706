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

// Package engine runs the single goroutine that owns the current game
// position: the UCI front end only ever talks to it by sending
// Requests down a channel and reading results back off BestMoves/Pongs,
// so the position and the search state it drives are never touched
// from two goroutines at once.
package engine

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/Wertyqin99331/OrionChessEngine/internal/config"
	myLogging "github.com/Wertyqin99331/OrionChessEngine/internal/logging"
	"github.com/Wertyqin99331/OrionChessEngine/internal/movegen"
	"github.com/Wertyqin99331/OrionChessEngine/internal/position"
	"github.com/Wertyqin99331/OrionChessEngine/internal/search"
	. "github.com/Wertyqin99331/OrionChessEngine/internal/types"
)

// Kind identifies the operation a Request asks the worker to perform.
type Kind int

const (
	NewGame Kind = iota
	SetPosition
	Go
	Stop
	Quit
	Ping
)

// Request is a single command sent to the worker goroutine. Only the
// fields relevant to Kind are read.
type Request struct {
	Kind Kind

	FEN   string
	Moves []string

	Depth      int
	MoveTimeMs int

	PingID uint64
}

// BestMove is the result of a completed or cancelled search.
type BestMove struct {
	Move Move
}

// Worker owns the board and drives searches on it from a single
// goroutine, per the concurrency model: the UCI layer never mutates
// position state directly.
type Worker struct {
	requests  chan Request
	bestMoves chan BestMove
	pongs     chan uint64
	done      chan struct{}

	log *myLoggerShim
}

// myLoggerShim defers to logging.GetLog() lazily so Worker doesn't pay
// for a logger on every construction in tests that never log.
type myLoggerShim struct{}

func (*myLoggerShim) debugf(format string, args ...interface{}) {
	myLogging.GetLog().Debugf(format, args...)
}

// NewWorker starts the worker goroutine and returns a handle to talk
// to it. Send a Quit request to stop it; Done is closed once it has
// returned.
func NewWorker() *Worker {
	w := &Worker{
		requests:  make(chan Request, 8),
		bestMoves: make(chan BestMove, 8),
		pongs:     make(chan uint64, 8),
		done:      make(chan struct{}),
		log:       &myLoggerShim{},
	}
	go w.run()
	return w
}

// Requests returns the channel used to send commands to the worker.
func (w *Worker) Requests() chan<- Request { return w.requests }

// BestMoves returns the channel the worker posts completed searches to.
func (w *Worker) BestMoves() <-chan BestMove { return w.bestMoves }

// Pongs returns the channel the worker echoes Ping ids to.
func (w *Worker) Pongs() <-chan uint64 { return w.pongs }

// Done is closed once the worker goroutine has returned after a Quit.
func (w *Worker) Done() <-chan struct{} { return w.done }

func (w *Worker) run() {
	defer close(w.bestMoves)
	defer close(w.pongs)
	defer close(w.done)

	board := position.NewPosition()
	stop := search.NewStopToken()
	// One Searcher serves every search, so its killer and history tables
	// live as long as the worker; SearchBestMove resets the killers and
	// halves the history at the start of each search.
	searcher := search.NewSearcher(stop)
	var searchWG sync.WaitGroup
	searching := false
	// isRunning is held for the duration of a search goroutine; Go
	// acquires it before spawning, the goroutine releases it when done.
	// It is local to run(): stopCurrentSearch's Wait already prevents
	// overlap on its own, and the Acquire in Go additionally blocks until
	// the previous search goroutine has released it.
	isRunning := semaphore.NewWeighted(1)

	// searchDone is signalled by the search goroutine once it has posted
	// its bestmove and is about to exit, so the worker notices a search
	// finished on its own even when no further request arrives to drive
	// stopCurrentSearch. Buffered by one: exactly one completion can be
	// outstanding at a time, since Go always waits out the prior search
	// first.
	searchDone := make(chan struct{}, 1)

	stopCurrentSearch := func() bool {
		if !searching {
			return false
		}
		stop.RequestStop()
		searchWG.Wait()
		select {
		case <-searchDone:
		default:
		}
		searching = false
		return true
	}

	for {
		select {
		case <-searchDone:
			searching = false

		case req, ok := <-w.requests:
			if !ok {
				return
			}
			switch req.Kind {
			case Ping:
				w.pongs <- req.PingID

			case NewGame:
				stopCurrentSearch()
				board = position.NewPosition()

			case SetPosition:
				stopCurrentSearch()
				fen := req.FEN
				if fen == "" {
					fen = position.StartFEN
				}
				b, err := position.FromFEN(fen)
				if err != nil {
					w.log.debugf("position command rejected: %v", err)
					w.bestMoves <- BestMove{Move: MoveNone}
					continue
				}
				board = b
				for _, uciMove := range req.Moves {
					m, ok := movegen.FromUci(board, uciMove)
					if !ok {
						w.log.debugf("illegal move in position command: %s", uciMove)
						break
					}
					board.Make(m)
				}

			case Go:
				stopCurrentSearch()
				stop.Reset()
				searching = true

				depth := req.Depth
				if depth <= 0 {
					depth = config.Settings.Search.DefaultDepth
				}
				moveTimeMs := req.MoveTimeMs
				if moveTimeMs <= 0 {
					moveTimeMs = config.Settings.Search.DefaultMoveTime
				}
				snapshot := board.Clone()

				timer := time.AfterFunc(time.Duration(moveTimeMs)*time.Millisecond, stop.RequestStop)

				_ = isRunning.Acquire(context.Background(), 1)
				searchWG.Add(1)
				go func() {
					defer timer.Stop()
					defer isRunning.Release(1)
					best, _, ok := searcher.SearchBestMove(snapshot, depth)
					if !ok {
						best = MoveNone
					}
					w.bestMoves <- BestMove{Move: best}
					searchDone <- struct{}{}
					searchWG.Done()
				}()

			case Stop:
				if !stopCurrentSearch() {
					w.bestMoves <- BestMove{Move: MoveNone}
				}

			case Quit:
				stopCurrentSearch()
				return
			}
		}
	}
}
