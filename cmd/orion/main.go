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

package main

import (
	"bufio"
	"flag"
	"os"
	"runtime"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Wertyqin99331/OrionChessEngine/internal/config"
	"github.com/Wertyqin99331/OrionChessEngine/internal/logging"
	"github.com/Wertyqin99331/OrionChessEngine/internal/movegen"
	"github.com/Wertyqin99331/OrionChessEngine/internal/position"
	"github.com/Wertyqin99331/OrionChessEngine/internal/uci"
)

const engineVersion = "0.1.0"

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./orion.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	logPath := flag.String("logpath", "", "path where to write log files to")
	perft := flag.Int("perft", 0, "runs perft on -fen (or the start position) up to the given depth and exits")
	fen := flag.String("fen", position.StartFEN, "fen for the -perft command")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()

	if *logPath != "" {
		config.Settings.Log.Path = *logPath
	}
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.Settings.Log.Level = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.Settings.Log.SearchLevel = lvl
	}
	// loggers are created as package-level vars before main() runs and
	// read their level at that time; reset them now that overrides from
	// the command line and config file have both been applied.
	logging.GetLog()
	logging.GetSearchLog()

	if *perft != 0 {
		var p movegen.Perft
		p.StartPerftMulti(*fen, 1, *perft)
		return
	}

	h := uci.NewHandler()
	h.InIo = bufio.NewScanner(os.Stdin)
	h.OutIo = bufio.NewWriter(os.Stdout)
	h.Loop()
}

func printVersionInfo() {
	out.Printf("Orion %s\n", engineVersion)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
