// seehuhn.de/go/pdfcolor - color and function evaluation core for a PDF renderer
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package function

import (
	"seehuhn.de/go/pdfcolor/calculator"
	"seehuhn.de/go/pdfcolor/internal/calcerr"
)

// Type4 is a PDF PostScript calculator function: a restricted PostScript
// program evaluated over a plain numeric stack. The program is tokenized
// once and, when it reduces to pure arithmetic/logical/control flow,
// compiled into a flat calculator.Program; a program calculator.Compile
// can't reduce falls back to calculator.Evaluator, the general stack
// interpreter, so every valid Type4 program still evaluates even when it
// isn't compilable. A runtime failure of the compiled form is not retried
// with the interpreter.
type Type4 struct {
	Domain  []float64
	Range   []float64
	Program string

	tokenized bool
	tokens    []calculator.Token
	tokErr    error
	prog      *calculator.Program
}

func (f *Type4) FunctionType() int { return 4 }

func (f *Type4) Shape() (m, n int) {
	m = len(f.Domain) / 2
	n = len(f.Range) / 2
	return m, n
}

func (f *Type4) GetDomain() []float64 { return f.Domain }

// repair truncates a malformed (odd-length) Domain or Range to an even
// length and substitutes the PDF default ([0,1] for Domain, required for
// Range) when that truncation leaves it empty.
func (f *Type4) repair() {
	f.Domain = repairPairs(f.Domain, []float64{0, 1})
	f.Range = repairPairs(f.Range, []float64{0, 1})
}

func repairPairs(pairs []float64, fallback []float64) []float64 {
	if len(pairs)%2 != 0 {
		pairs = pairs[:len(pairs)-1]
	}
	if len(pairs) == 0 {
		return append([]float64(nil), fallback...)
	}
	return pairs
}

func (f *Type4) validate() error {
	if err := validateDomainRange("Type4.Domain", f.Domain); err != nil {
		return err
	}
	if err := validateDomainRange("Type4.Range", f.Range); err != nil {
		return err
	}
	if _, err := f.ensureTokens(); err != nil {
		return calcerr.NewConstructionError("Type4", err.Error())
	}
	return nil
}

// ensureTokens tokenizes f.Program once. A tokenize failure (unbalanced
// braces, a malformed number or string literal) is a genuine construction
// error: the program text itself is broken, not merely uncompilable. Once
// tokens are available, ensureTokens also attempts to compile them; a
// compile failure is recorded but not propagated here, since per the
// calculator package's "fails closed" contract it only means Apply must
// fall back to the interpreter, not that the function is invalid.
func (f *Type4) ensureTokens() ([]calculator.Token, error) {
	if !f.tokenized {
		f.tokens, f.tokErr = calculator.Tokenize(f.Program)
		if f.tokErr == nil {
			f.prog, _ = calculator.Compile(f.tokens)
		}
		f.tokenized = true
	}
	return f.tokens, f.tokErr
}

// Apply evaluates the calculator program: the compiled bytecode form when
// available, otherwise the general interpreter against the same tokens. A
// runtime failure (stack underflow, overflow, division by zero, an
// unbalanced if/ifelse), or a program that leaves fewer than n values on
// the stack, fills buf with 0 clipped to each Range pair.
func (f *Type4) Apply(buf []float64, inputs ...float64) []float64 {
	m, n := f.Shape()
	if len(buf) < n {
		buf = make([]float64, n)
	}

	tokens, err := f.ensureTokens()
	if err != nil {
		return zeroClipped(buf, f.Range, n)
	}

	init := make([]calculator.Value, m)
	for i := 0; i < m; i++ {
		x := inputs[i]
		if 2*i+1 < len(f.Domain) {
			x = clip(x, f.Domain[2*i], f.Domain[2*i+1])
		}
		init[i] = calculator.Number(x)
	}

	var stack []calculator.Value
	if f.prog != nil {
		stack, err = f.prog.Run(init)
	} else {
		ev := &calculator.Evaluator{Stack: init}
		err = ev.Run(tokens)
		stack = ev.Stack
	}
	if err != nil || len(stack) < n {
		return zeroClipped(buf, f.Range, n)
	}

	// the last n values produced are the function's outputs, per PDF spec
	// 7.10.5.3.
	result := stack[len(stack)-n:]
	for j := 0; j < n; j++ {
		y := result[j].Num()
		if 2*j+1 < len(f.Range) {
			y = clip(y, f.Range[2*j], f.Range[2*j+1])
		}
		buf[j] = y
	}
	return buf[:n]
}

func zeroClipped(buf []float64, rng []float64, n int) []float64 {
	for j := 0; j < n; j++ {
		y := 0.0
		if 2*j+1 < len(rng) {
			y = clip(y, rng[2*j], rng[2*j+1])
		}
		buf[j] = y
	}
	return buf[:n]
}
