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

// Command colorprobe loads a color/function fixture from a JSON file and
// prints its sRGB output, as a truecolor swatch when stdout is a terminal
// and as plain numbers otherwise. It exists for manual smoke-testing and
// demos, not as part of the library's API.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/pdfcolor/color"
	"seehuhn.de/go/pdfcolor/function"
)

// fixture is the on-disk probe description. Space selects which
// color.Space the Components are interpreted in; Function, if present, is
// evaluated at its own Inputs instead, and its 1 or 3 outputs are shown as
// a color.
type fixture struct {
	Space      string     `json:"space"`      // "gray", "rgb", "cmyk"
	Components []float64  `json:"components"` // raw component values for Space
	Function   *fnFixture `json:"function"`   // evaluate a bare function instead
}

type fnFixture struct {
	Type   int       `json:"type"` // only 2 is supported (Type0/Type3/Type4 are not built by this probe)
	Inputs []float64 `json:"inputs"`

	// Type 2 (exponential)
	XMin float64   `json:"xmin,omitempty"`
	XMax float64   `json:"xmax,omitempty"`
	C0   []float64 `json:"c0,omitempty"`
	C1   []float64 `json:"c1,omitempty"`
	N    float64   `json:"n,omitempty"`
}

func main() {
	path := flag.String("fixture", "", "path to a fixture JSON file")
	flag.Parse()
	if *path == "" {
		log.Fatal("colorprobe: -fixture is required")
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("colorprobe: %v", err)
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		log.Fatalf("colorprobe: invalid fixture: %v", err)
	}

	r, g, b, err := evaluate(fx)
	if err != nil {
		log.Fatalf("colorprobe: %v", err)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		printSwatch(r, g, b)
	} else {
		fmt.Printf("%.6f %.6f %.6f\n", r, g, b)
	}
}

func evaluate(fx fixture) (r, g, b float64, err error) {
	if fx.Function != nil {
		f, err := buildFunction(*fx.Function)
		if err != nil {
			return 0, 0, 0, err
		}
		out := f.Apply(nil, fx.Function.Inputs...)
		switch len(out) {
		case 1:
			return out[0], out[0], out[0], nil
		case 3:
			return out[0], out[1], out[2], nil
		default:
			return 0, 0, 0, fmt.Errorf("function produced %d outputs, want 1 or 3 to display as a color", len(out))
		}
	}

	space, err := buildSpace(fx.Space)
	if err != nil {
		return 0, 0, 0, err
	}
	c := space.New(fx.Components...)
	r, g, b = c.ToSRGB()
	return r, g, b, nil
}

func buildSpace(name string) (color.Space, error) {
	switch name {
	case "gray":
		return color.DeviceGray{}, nil
	case "rgb":
		return color.DeviceRGB{}, nil
	case "cmyk":
		return color.DeviceCMYK{}, nil
	default:
		return nil, fmt.Errorf("unknown space %q (want gray, rgb, or cmyk)", name)
	}
}

func buildFunction(fx fnFixture) (function.Function, error) {
	switch fx.Type {
	case 2:
		return &function.Type2{XMin: fx.XMin, XMax: fx.XMax, C0: fx.C0, C1: fx.C1, N: fx.N}, nil
	default:
		return nil, fmt.Errorf("unsupported function type %d for this probe (only 2 is supported)", fx.Type)
	}
}

func printSwatch(r, g, b float64) {
	fmt.Printf("\x1b[48;2;%d;%d;%dm          \x1b[0m  %.6f %.6f %.6f\n", to8(r), to8(g), to8(b), r, g, b)
}

func to8(x float64) int {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 255
	}
	return int(x*255 + 0.5)
}
