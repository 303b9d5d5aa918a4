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

package color

import (
	"seehuhn.de/go/icc"

	"seehuhn.de/go/pdfcolor/internal/calcerr"
)

// ICCBased is a PDF ICCBased color space: component values are converted
// to sRGB by decoding the embedded ICC profile and running its
// device-to-PCS transform for the requested rendering intent.
type ICCBased struct {
	N      int
	Ranges []float64

	profile   *icc.Profile
	transform *icc.Transform
}

// NewICCBased decodes profileData and builds a device-to-PCS transform for
// intent. N, when non-zero, overrides the component count the profile's
// own ColorSpace tag implies (a PDF ICCBased dict's own /N always takes
// precedence over the embedded profile, per spec 8.6.5.5, to tolerate
// profiles that disagree with the stream dictionary).
func NewICCBased(profileData []byte, n int, intent RenderingIntent) (*ICCBased, error) {
	p, err := icc.Decode(profileData)
	if err != nil {
		return nil, &calcerr.DecodeError{Source: "ICCBased profile", Err: err}
	}
	if n == 0 {
		n = p.ColorSpace.NumComponents()
	}
	t, err := icc.NewTransform(p, icc.DeviceToPCS, icc.RenderingIntent(intent))
	if err != nil {
		return nil, &calcerr.DecodeError{Source: "ICCBased transform", Err: err}
	}
	ranges := make([]float64, 2*n)
	for i := 0; i < n; i++ {
		ranges[2*i+1] = 1
	}
	return &ICCBased{N: n, Ranges: ranges, profile: p, transform: t}, nil
}

func (s *ICCBased) NumComponents() int { return s.N }

func (s *ICCBased) New(c ...float64) Color {
	comp := make([]float64, s.N)
	for i := 0; i < s.N && i < len(c); i++ {
		lo, hi := 0.0, 1.0
		if 2*i+1 < len(s.Ranges) {
			lo, hi = s.Ranges[2*i], s.Ranges[2*i+1]
		}
		comp[i] = vclamp(c[i], lo, hi)
	}
	return simpleColor{space: s, components: comp, srgb: func(c []float64) (float64, float64, float64) {
		X, Y, Z := s.transform.ToXYZ(c)
		return xyzToSRGB(X, Y, Z)
	}}
}

func (s *ICCBased) Default() Color { return s.New(make([]float64, s.N)...) }
