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

package calculator

import "errors"

// errUnsupportedProgram is returned by Compile when a token sequence isn't
// reducible to flat bytecode: a procedure that doesn't immediately precede
// if/ifelse, or a literal (string/array/dict/name) the calculator subset
// has no use for. Compile fails closed on this error: the caller should run
// the same tokens through Evaluator.Run instead.
var errUnsupportedProgram = errors.New("calculator: program not reducible to bytecode")

type opKind int

const (
	opPushConst opKind = iota
	opCall
	opJZ  // pop; if zero, jump to arg
	opJMP // unconditional jump to arg
)

type inst struct {
	op   opKind
	val  Value
	name string
	arg  int
}

// Program is a calculator procedure flattened into a linear instruction
// list: every procedure has been resolved into a jump (if/ifelse are the
// only constructs that consume one), so Run never re-parses tokens and
// never allocates a nested stack.
type Program struct {
	code []inst
}

// Compile flattens tokens into a Program. It only succeeds for a purely
// arithmetic/logical/control procedure (the restricted Type 4 calculator
// subset): a procedure token not immediately followed by if or ifelse, or
// any string/array/dict/literal-name token, fails the compile. Per the
// "fails closed" requirement, a Compile failure is not itself fatal to the
// caller — it should fall back to Evaluator.Run, the general interpreter,
// which accepts the same token list.
func Compile(tokens []Token) (*Program, error) {
	code, err := compileTokens(tokens)
	if err != nil {
		return nil, err
	}
	return &Program{code: code}, nil
}

func compileTokens(toks []Token) ([]inst, error) {
	var code []inst
	i := 0
	for i < len(toks) {
		tok := toks[i]
		switch tok.Kind {
		case KindNumber:
			code = append(code, inst{op: opPushConst, val: vReal(tok.Num)})
			i++
		case KindBool:
			code = append(code, inst{op: opPushConst, val: vBool(tok.Bool)})
			i++
		case KindExecName:
			code = append(code, inst{op: opCall, name: tok.Name})
			i++
		case KindProcedure:
			if i+1 < len(toks) && toks[i+1].Kind == KindExecName && toks[i+1].Name == "if" {
				body, err := compileTokens(tok.Nested)
				if err != nil {
					return nil, err
				}
				jz := inst{op: opJZ}
				code = append(code, jz)
				jzIdx := len(code) - 1
				code = append(code, body...)
				code[jzIdx].arg = len(code)
				i += 2
				continue
			}
			if i+1 < len(toks) && toks[i+1].Kind == KindProcedure &&
				i+2 < len(toks) && toks[i+2].Kind == KindExecName && toks[i+2].Name == "ifelse" {
				trueBody, err := compileTokens(tok.Nested)
				if err != nil {
					return nil, err
				}
				falseBody, err := compileTokens(toks[i+1].Nested)
				if err != nil {
					return nil, err
				}
				jz := inst{op: opJZ}
				code = append(code, jz)
				jzIdx := len(code) - 1
				code = append(code, trueBody...)
				jmp := inst{op: opJMP}
				code = append(code, jmp)
				jmpIdx := len(code) - 1
				code[jzIdx].arg = len(code)
				code = append(code, falseBody...)
				code[jmpIdx].arg = len(code)
				i += 3
				continue
			}
			return nil, errUnsupportedProgram
		default:
			return nil, errUnsupportedProgram
		}
	}
	return code, nil
}

// Run executes p against a starting stack, using the exact same operator
// dispatch as Evaluator.Run (runOperator) so the compiled and interpreted
// forms of a program agree bit-for-bit.
func (p *Program) Run(stack []Value) ([]Value, error) {
	ev := &Evaluator{Stack: append([]Value(nil), stack...)}
	pc := 0
	for pc < len(p.code) {
		in := p.code[pc]
		switch in.op {
		case opPushConst:
			ev.Stack = append(ev.Stack, in.val)
			pc++
		case opJMP:
			pc = in.arg
		case opJZ:
			v, err := ev.pop()
			if err != nil {
				return nil, err
			}
			if v.Num() == 0 {
				pc = in.arg
			} else {
				pc++
			}
		case opCall:
			if err := ev.runOperator(in.name); err != nil {
				return nil, err
			}
			pc++
		}
		if len(ev.Stack) > MaxStackDepth {
			return nil, ErrStackOverflow
		}
	}
	return ev.Stack, nil
}
