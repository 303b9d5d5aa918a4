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
	"fmt"
	"math"
	"math/rand"
	"testing"

	"seehuhn.de/go/postscript"

	"seehuhn.de/go/pdfcolor/calculator"
)

func apply1(t *testing.T, domain, rng []float64, program string, inputs ...float64) []float64 {
	t.Helper()
	fn := &Type4{Domain: domain, Range: rng, Program: program}
	out := make([]float64, len(rng)/2)
	return fn.Apply(out, inputs...)
}

func TestType4Arithmetic(t *testing.T) {
	got := apply1(t, []float64{-1000, 1000, -1000, 1000}, []float64{-1000, 1000}, "add", 2, 3)
	if got[0] != 5 {
		t.Errorf("add: got %v, want 5", got)
	}
}

func TestType4IfElse(t *testing.T) {
	got := apply1(t, []float64{-1000, 1000}, []float64{-1000, 1000},
		"dup 0.5 gt { pop 1.0 } { pop 0.0 } ifelse", 0.7)
	if got[0] != 1 {
		t.Errorf("got %v, want 1", got)
	}
	got = apply1(t, []float64{-1000, 1000}, []float64{-1000, 1000},
		"dup 0.5 gt { pop 1.0 } { pop 0.0 } ifelse", 0.3)
	if got[0] != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestType4DoubleDotSpotFunction(t *testing.T) {
	fn := &Type4{
		Domain:  []float64{-1.0, 1.0, -1.0, 1.0},
		Range:   []float64{-1.0, 1.0},
		Program: "360 mul sin 2 div exch 360 mul sin 2 div add",
	}
	out := make([]float64, 1)
	fn.Apply(out, 0.25, 0.5)
	want := math.Sin(360*0.25*math.Pi/180)/2 + math.Sin(360*0.5*math.Pi/180)/2
	if math.Abs(out[0]-want) > 1e-9 {
		t.Errorf("got %v, want %v", out[0], want)
	}
}

func TestType4Constant(t *testing.T) {
	fn := &Type4{Domain: []float64{}, Range: []float64{0, 100}, Program: "42"}
	out := make([]float64, 1)
	fn.Apply(out)
	if out[0] != 42 {
		t.Errorf("got %v, want 42", out[0])
	}
}

func TestType4Repair(t *testing.T) {
	fn := &Type4{Domain: []float64{}, Range: []float64{}, Program: "0"}
	fn.repair()
	if len(fn.Domain) != 2 || fn.Domain[0] != 0 || fn.Domain[1] != 1 {
		t.Errorf("Domain = %v, want [0 1]", fn.Domain)
	}
	if len(fn.Range) != 2 || fn.Range[0] != 0 || fn.Range[1] != 1 {
		t.Errorf("Range = %v, want [0 1]", fn.Range)
	}
}

func TestType4RepairOddLength(t *testing.T) {
	fn := &Type4{Domain: []float64{0, 1, 2}, Range: []float64{0, 1}, Program: "0"}
	fn.repair()
	if len(fn.Domain) != 2 || fn.Domain[0] != 0 || fn.Domain[1] != 1 {
		t.Errorf("Domain = %v, want [0 1]", fn.Domain)
	}
}

func TestType4StackOverflow(t *testing.T) {
	program := "dup 2 copy 4 copy 8 copy 16 copy 32 copy 64 copy 128 copy 256 copy"
	fn := &Type4{Domain: []float64{0, 1}, Range: []float64{0, 1}, Program: program}
	result := make([]float64, 1)
	fn.Apply(result, 0.5) // must not panic

	tokens, err := calculator.Tokenize(program)
	if err != nil {
		t.Fatal(err)
	}
	prog, err := calculator.Compile(tokens)
	if err != nil {
		t.Fatal(err)
	}
	_, err = prog.Run([]calculator.Value{calculator.Number(0.5)})
	if err != calculator.ErrStackOverflow {
		t.Errorf("Program.Run() error = %v, want ErrStackOverflow", err)
	}
}

func TestType4WellFormedProgramValidates(t *testing.T) {
	fn := &Type4{Domain: []float64{0, 1}, Range: []float64{0, 1}, Program: "dup dup dup"}
	if err := fn.validate(); err != nil {
		t.Errorf("validate() of a well-formed program failed: %v", err)
	}
}

func TestType4UnbalancedBracesIsConstructionError(t *testing.T) {
	fn := &Type4{Domain: []float64{0, 1}, Range: []float64{0, 1}, Program: "{ 1 add"}
	if err := fn.validate(); err == nil {
		t.Errorf("validate() = nil, want error for unclosed procedure")
	}
}

// referenceApply evaluates a Type4 program with the full PostScript
// interpreter, restricted to the operator subset the PDF spec allows in a
// calculator function. This is the oracle TestType4VsReference checks the
// bytecode VM against.
func referenceApply(program string, inputs []float64, n int) ([]float64, error) {
	allowedOps := []string{
		"abs", "add", "atan", "ceiling", "cos", "cvi", "cvr", "div", "exp",
		"floor", "idiv", "ln", "log", "mod", "mul", "neg", "round", "sin",
		"sqrt", "sub", "truncate",
		"and", "bitshift", "eq", "ge", "gt", "le", "lt", "ne", "not", "or", "xor",
		"if", "ifelse",
		"copy", "dup", "exch", "index", "pop", "roll",
	}

	tempIntp := postscript.NewInterpreter()
	sysDict := tempIntp.SystemDict

	type4Dict := postscript.Dict{
		"true":  postscript.Boolean(true),
		"false": postscript.Boolean(false),
	}
	for _, name := range allowedOps {
		if impl, exists := sysDict[postscript.Name(name)]; exists {
			type4Dict[postscript.Name(name)] = impl
		}
	}

	intp := postscript.NewInterpreter()
	intp.DictStack = []postscript.Dict{type4Dict, {}}
	intp.SystemDict = type4Dict

	for _, input := range inputs {
		intp.Stack = append(intp.Stack, postscript.Real(input))
	}

	if err := intp.ExecuteString(program); err != nil {
		return nil, err
	}

	outputs := make([]float64, len(intp.Stack))
	for i, obj := range intp.Stack {
		switch v := obj.(type) {
		case postscript.Integer:
			outputs[i] = float64(v)
		case postscript.Real:
			outputs[i] = float64(v)
		case postscript.Boolean:
			if v {
				outputs[i] = 1
			}
		default:
			return nil, fmt.Errorf("invalid result type: %T", obj)
		}
	}

	if len(outputs) > n {
		outputs = outputs[len(outputs)-n:]
	} else {
		for len(outputs) < n {
			outputs = append(outputs, 0)
		}
	}
	return outputs, nil
}

func TestType4VsReference(t *testing.T) {
	programs := []struct {
		program string
		nIn     int
		nOut    int
	}{
		{"add", 2, 1},
		{"sub", 2, 1},
		{"mul", 2, 1},
		{"div", 2, 1},
		{"neg", 1, 1},
		{"abs", 1, 1},
		{"ceiling", 1, 1},
		{"floor", 1, 1},
		{"round", 1, 1},
		{"truncate", 1, 1},
		{"sqrt", 1, 1},
		{"ln", 1, 1},
		{"log", 1, 1},
		{"sin", 1, 1},
		{"cos", 1, 1},
		{"1 atan", 1, 1},
		{"0.5 exp", 1, 1},
		{"dup mul", 1, 1},
		{"dup 0.5 gt { pop 1.0 } { pop 0.0 } ifelse", 1, 1},
		{"exch", 2, 2},
		{"dup", 1, 2},
		{"360 mul sin 2 div exch 360 mul sin 2 div add", 2, 1},
	}

	rng := rand.New(rand.NewSource(42))
	for _, p := range programs {
		t.Run(p.program, func(t *testing.T) {
			for range 20 {
				inputs := make([]float64, p.nIn)
				for i := range inputs {
					inputs[i] = rng.Float64()*10 + 0.01
				}

				fn := &Type4{
					Domain:  make([]float64, p.nIn*2),
					Range:   make([]float64, p.nOut*2),
					Program: p.program,
				}
				for i := range p.nIn {
					fn.Domain[2*i] = -1000
					fn.Domain[2*i+1] = 1000
				}
				for i := range p.nOut {
					fn.Range[2*i] = -1000
					fn.Range[2*i+1] = 1000
				}

				got := make([]float64, p.nOut)
				fn.Apply(got, inputs...)

				ref, err := referenceApply(p.program, inputs, p.nOut)
				if err != nil {
					continue
				}

				for i := range p.nOut {
					ref[i] = clip(ref[i], fn.Range[2*i], fn.Range[2*i+1])
				}

				for i := range p.nOut {
					if math.Abs(got[i]-ref[i]) > 1e-10 {
						t.Errorf("inputs=%v: output[%d] VM=%g ref=%g",
							inputs, i, got[i], ref[i])
					}
				}
			}
		})
	}
}
