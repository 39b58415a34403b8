/*
Copyright 2026 The Devserve Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package color

import (
	"fmt"
	"io"

	fcolor "github.com/fatih/color"
	"golang.org/x/term"
)

// Color is an ANSI attribute set applied to console output.
type Color struct {
	c *fcolor.Color
}

var (
	Default = Color{}
	Green   = newColor(fcolor.FgGreen)
	Yellow  = newColor(fcolor.FgYellow)
)

func newColor(attrs ...fcolor.Attribute) Color {
	c := fcolor.New(attrs...)
	// Terminal detection happens per writer, not on os.Stdout.
	c.EnableColor()
	return Color{c: c}
}

// Sprint wraps the operands in c's ANSI escape codes.
func (c Color) Sprint(a ...interface{}) string {
	if c.c == nil {
		return fmt.Sprint(a...)
	}
	return c.c.Sprint(a...)
}

// Sprintf formats according to a format specifier and wraps the result in c's ANSI escape codes.
func (c Color) Sprintf(format string, a ...interface{}) string {
	if c.c == nil {
		return fmt.Sprintf(format, a...)
	}
	return c.c.Sprintf(format, a...)
}

// IsTerminal will check if the specified output stream is a terminal. This can be changed
// for testing to an arbitrary method.
var IsTerminal = isTerminal

func wrapTextIfTerminal(out io.Writer, c Color, a ...interface{}) string {
	if IsTerminal(out) {
		return c.Sprint(a...)
	}
	return fmt.Sprint(a...)
}

// Fprintln wraps the operands in the color ANSI escape codes, and outputs the result to
// out, followed by a newline. If out is not a terminal, the escape codes will not be added.
func Fprintln(out io.Writer, c Color, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(out, wrapTextIfTerminal(out, c, a...))
}

// Fprintf applies formats according to the format specifier, wraps the result in the color
// ANSI escape codes and outputs it to out. If out is not a terminal, the escape codes will
// not be added.
func Fprintf(out io.Writer, c Color, format string, a ...interface{}) (n int, err error) {
	var t string
	if IsTerminal(out) {
		t = c.Sprintf(format, a...)
	} else {
		t = fmt.Sprintf(format, a...)
	}
	return fmt.Fprint(out, t)
}

func isTerminal(w io.Writer) bool {
	type descriptor interface {
		Fd() uintptr
	}

	if f, ok := w.(descriptor); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
