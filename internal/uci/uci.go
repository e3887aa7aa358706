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

// Package uci reads UCI protocol lines from an input stream, turns
// them into engine.Requests for the worker goroutine, and serializes
// whatever comes back (bestmove, and readyok for a pong) to an output
// stream. It holds
// no board or search state of its own.
package uci

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/op/go-logging"

	myLogging "github.com/Wertyqin99331/OrionChessEngine/internal/logging"

	"github.com/Wertyqin99331/OrionChessEngine/internal/engine"
)

// EngineName and EngineAuthor answer the UCI "uci" handshake.
const (
	EngineName   = "Orion"
	EngineAuthor = "The Orion Authors"
)

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// Handler reads UCI commands from InIo and writes responses to OutIo,
// dispatching to an engine.Worker it owns exclusively.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer
	outMu sync.Mutex

	worker *engine.Worker
	log    *logging.Logger
	uciLog *logging.Logger
}

// NewHandler returns a Handler backed by a freshly started worker.
func NewHandler() *Handler {
	return &Handler{
		worker: engine.NewWorker(),
		log:    myLogging.GetLog(),
		uciLog: myLogging.GetUCILog(),
	}
}

// Loop reads commands from InIo until "quit" is received or the input
// stream ends. Results the worker posts asynchronously (bestmove, and
// the pong that answers isready) are drained by a separate goroutine
// until the worker has closed both result channels.
func (h *Handler) Loop() {
	resultsDone := make(chan struct{})
	go func() {
		defer close(resultsDone)
		bestMoves, pongs := h.worker.BestMoves(), h.worker.Pongs()
		for bestMoves != nil || pongs != nil {
			select {
			case bm, ok := <-bestMoves:
				if !ok {
					bestMoves = nil
					continue
				}
				h.send(fmt.Sprintf("bestmove %s", bm.Move.String()))
			case _, ok := <-pongs:
				if !ok {
					pongs = nil
					continue
				}
				h.send("readyok")
			}
		}
	}()

	for h.InIo.Scan() {
		if h.dispatch(h.InIo.Text()) {
			break
		}
	}
	h.worker.Requests() <- engine.Request{Kind: engine.Quit}
	<-h.worker.Done()
	<-resultsDone
}

// dispatch handles a single input line, returning true when "quit" was
// received and the loop should stop.
func (h *Handler) dispatch(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	h.uciLog.Infof("<< %s", line)

	tokens := regexWhiteSpace.Split(line, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		h.send(fmt.Sprintf("id name %s", EngineName))
		h.send(fmt.Sprintf("id author %s", EngineAuthor))
		h.send("uciok")
	case "isready":
		h.worker.Requests() <- engine.Request{Kind: engine.Ping}
	case "ucinewgame":
		h.worker.Requests() <- engine.Request{Kind: engine.NewGame}
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.worker.Requests() <- engine.Request{Kind: engine.Stop}
	case "ponderhit":
		// pondering is not implemented; nothing to do.
	case "setoption", "debug", "register":
		// accepted but have no effect.
	default:
		h.log.Warningf("unknown command: %s", line)
	}
	return false
}

func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.log.Warningf("malformed position command: %v", tokens)
		return
	}

	req := engine.Request{Kind: engine.SetPosition}
	i := 1
	switch tokens[1] {
	case "startpos":
		i = 2
	case "fen":
		i = 2
		var fen strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			fen.WriteString(tokens[i])
			fen.WriteString(" ")
			i++
		}
		req.FEN = strings.TrimSpace(fen.String())
		if req.FEN == "" {
			h.log.Warningf("malformed position fen command: %v", tokens)
			return
		}
	default:
		h.log.Warningf("malformed position command: %v", tokens)
		return
	}

	if i < len(tokens) {
		if tokens[i] != "moves" {
			h.log.Warningf("malformed position command, expected 'moves': %v", tokens)
			return
		}
		req.Moves = tokens[i+1:]
	}

	h.worker.Requests() <- req
}

func (h *Handler) goCommand(tokens []string) {
	req := engine.Request{Kind: engine.Go}
	for i := 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "depth":
			if i+1 >= len(tokens) {
				continue
			}
			i++
			if v, err := strconv.Atoi(tokens[i]); err == nil {
				req.Depth = v
			}
		case "movetime":
			if i+1 >= len(tokens) {
				continue
			}
			i++
			if v, err := strconv.Atoi(tokens[i]); err == nil {
				req.MoveTimeMs = v
			}
		}
	}
	h.worker.Requests() <- req
}

func (h *Handler) send(line string) {
	h.outMu.Lock()
	defer h.outMu.Unlock()
	h.uciLog.Infof(">> %s", line)
	_, _ = h.OutIo.WriteString(line + "\n")
	_ = h.OutIo.Flush()
}
