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

package config

// logConfiguration holds the log settings as read from the config
// file (the LogLvl/SearchLogLvl strings) plus the numeric Level/SearchLevel
// they resolve to, which is what the logging package actually reads.
type logConfiguration struct {
	LogLvl       string
	SearchLogLvl string
	Path         string

	Level       int
	SearchLevel int
}

// LogLevels maps the string levels accepted in the config file to the
// numeric levels github.com/op/go-logging understands.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

func init() {
	Settings.Log.LogLvl = "info"
	Settings.Log.SearchLogLvl = "info"
	Settings.Log.Path = "./logs"
}

// setupLogLvl resolves the configured level names into the numeric
// levels used by the logging package, called after the config file
// (if any) has had a chance to override the level names.
func setupLogLvl() {
	if lvl, ok := LogLevels[Settings.Log.LogLvl]; ok {
		Settings.Log.Level = lvl
	}
	if lvl, ok := LogLevels[Settings.Log.SearchLogLvl]; ok {
		Settings.Log.SearchLevel = lvl
	}
}
