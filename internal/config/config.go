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

// Package config holds the engine's globally available settings,
// populated from compiled-in defaults, optionally overridden by a
// TOML config file, and finally by command line flags.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Wertyqin99331/OrionChessEngine/internal/util"
)

// ConfFile is the path to the config file, relative to the working
// directory unless overridden by a command line flag.
var ConfFile = "./orion.toml"

// Settings is the global configuration, populated by Setup.
var Settings conf

var initialized = false

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
}

// Setup reads the config file, if any, over the compiled-in defaults
// and derives the fields that depend on it (numeric log levels). Safe
// to call more than once; only the first call has any effect.
func Setup() {
	if initialized {
		return
	}

	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("config file not found, using defaults (", err, ")")
	}

	setupLogLvl()
	setupSearch()
	initialized = true
}

// String dumps every configuration field and its current value, using
// reflection so that adding a field here never requires touching this
// method.
func (settings *conf) String() string {
	var b strings.Builder
	b.WriteString("Log Config:\n")
	writeFields(&b, reflect.ValueOf(&settings.Log).Elem())
	b.WriteString("\nSearch Config:\n")
	writeFields(&b, reflect.ValueOf(&settings.Search).Elem())
	return b.String()
}

func writeFields(b *strings.Builder, v reflect.Value) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		b.WriteString(fmt.Sprintf("%-2d: %-20s %-8s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
	}
}
