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

// Package calcerr defines the error taxonomy shared by the function, color,
// transform and shading packages: construction-time validation failures,
// runtime evaluator failures, stream decode failures and "this variant of
// the PDF object model is not supported" failures.
package calcerr

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when an index or count falls outside the
	// bounds a caller documented for it.
	ErrOutOfRange = errors.New("calcerr: value out of range")
)

// ConstructionError reports that a function, color space or transform
// component was built from malformed descriptor data.
type ConstructionError struct {
	Component string
	Reason    string
}

func NewConstructionError(component, reason string) *ConstructionError {
	return &ConstructionError{Component: component, Reason: reason}
}

func (err *ConstructionError) Error() string {
	return fmt.Sprintf("%s: %s", err.Component, err.Reason)
}

// EvaluatorError reports a runtime failure while evaluating a function or
// running a calculator program: stack underflow, division by zero, an
// unknown operator, and similar conditions that can only be detected while
// the program is running rather than while it is being parsed.
type EvaluatorError struct {
	Op  string
	Err error
}

func (err *EvaluatorError) Error() string {
	if err.Op == "" {
		return err.Err.Error()
	}
	return fmt.Sprintf("%s: %s", err.Op, err.Err.Error())
}

func (err *EvaluatorError) Unwrap() error {
	return err.Err
}

// DecodeError reports a malformed encoded payload: a sample stream that is
// too short for its declared bit depth, an ICC tag table that doesn't
// parse, a CLUT whose byte count doesn't match its declared grid shape.
type DecodeError struct {
	Source string
	Err    error
}

func (err *DecodeError) Error() string {
	return fmt.Sprintf("%s: %s", err.Source, err.Err.Error())
}

func (err *DecodeError) Unwrap() error {
	return err.Err
}

// UnsupportedVariantError reports that a syntactically valid descriptor
// selects a variant of the PDF object model this package intentionally does
// not implement (for example a shading or color space kind outside the set
// the evaluation core supports).
type UnsupportedVariantError struct {
	Kind  string
	Value any
}

func (err *UnsupportedVariantError) Error() string {
	return fmt.Sprintf("unsupported %s: %v", err.Kind, err.Value)
}
