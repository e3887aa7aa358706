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

// Package logging is a thin helper over "github.com/op/go-logging"
// that hands out the engine's three named loggers already wired with
// the backend, formatter and level each of them needs: a standard
// logger for startup/lifecycle, a search logger for per-iteration
// search diagnostics, and a UCI transcript logger that records every
// protocol line to both stderr and a log file.
package logging

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Wertyqin99331/OrionChessEngine/internal/config"
)

// Out is a locale-aware printer used wherever the engine formats
// large numbers (node counts, nodes per second) for a log line.
var Out = message.NewPrinter(language.English)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	uciLog      *logging.Logger
	uciLogFile  *os.File

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)

	uciLogFilePath string
)

func init() {
	programName, _ := os.Executable()
	exePath := filepath.Dir(programName)
	exeName := strings.TrimSuffix(filepath.Base(programName), ".exe")
	uciLogFilePath = exePath + "/../logs/" + exeName + "_uci.log"

	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	uciLog = logging.MustGetLogger("uci")
}

// GetLog returns the standard logger, configured from config.Settings
// on every call so a config file re-read during startup takes effect.
func GetLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stderr, "", log.Lmsgprefix)
	formatter := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(logging.Level(config.Settings.Log.Level), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetSearchLog returns the search diagnostics logger, gated to its own
// configurable level so it can be silenced during tournament play
// without touching the standard logger's verbosity.
func GetSearchLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stderr, "", log.Lmsgprefix)
	formatter := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(logging.Level(config.Settings.Log.SearchLevel), "")
	searchLog.SetBackend(leveled)
	return searchLog
}

// GetUCILog returns the UCI transcript logger, which records every
// line read from and written to the protocol stream to both stderr
// and a log file for post-mortem debugging of a GUI session.
func GetUCILog() *logging.Logger {
	uciFormat := logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)

	stderrBackend := logging.AddModuleLevel(
		logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", log.Lmsgprefix), uciFormat))
	stderrBackend.SetLevel(logging.DEBUG, "")

	logFilePath := uciLogFilePath
	if config.Settings.Log.Path != "" {
		logFilePath = filepath.Join(config.Settings.Log.Path, filepath.Base(uciLogFilePath))
	}

	var err error
	uciLogFile, err = os.OpenFile(logFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		uciLog.SetBackend(stderrBackend)
		return uciLog
	}

	fileBackend := logging.AddModuleLevel(
		logging.NewBackendFormatter(logging.NewLogBackend(uciLogFile, "", log.Lmsgprefix), uciFormat))
	fileBackend.SetLevel(logging.DEBUG, "")

	uciLog.SetBackend(logging.SetBackend(stderrBackend, fileBackend))
	return uciLog
}
