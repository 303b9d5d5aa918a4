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

package shading

import (
	"errors"

	"seehuhn.de/go/pdfcolor/internal/calcerr"
)

var errMeshStreamExhausted = errors.New("shading: mesh stream exhausted")

// meshBitReader unpacks a mesh shading's raw sample stream (PDF spec
// 8.7.4.5.5-7): a tightly packed, MSB-first sequence of flag, coordinate,
// and color-component bit fields, mirroring function.Type0's bit-packed
// sample extraction (function/type0.go's extractSampleAtIndex).
type meshBitReader struct {
	data   []byte
	bitPos int
}

func (r *meshBitReader) bitsLeft() int { return len(r.data)*8 - r.bitPos }

// read extracts the next n bits (0 < n <= 32) as an unsigned integer.
func (r *meshBitReader) read(n int) (uint32, error) {
	if n <= 0 || r.bitsLeft() < n {
		return 0, &calcerr.DecodeError{Source: "mesh shading stream", Err: errMeshStreamExhausted}
	}
	var v uint32
	remaining := n
	for remaining > 0 {
		byteIdx := r.bitPos / 8
		bitInByte := r.bitPos % 8
		avail := 8 - bitInByte
		take := remaining
		if take > avail {
			take = avail
		}
		b := r.data[byteIdx]
		shift := avail - take
		mask := byte((1 << take) - 1)
		chunk := (b >> shift) & mask
		v = (v << take) | uint32(chunk)
		r.bitPos += take
		remaining -= take
	}
	return v, nil
}

// decodeSample maps a raw n-bit unsigned value to its real range via a
// [lo,hi] pair from the shading's Decode array, the same linear mapping
// function.Type0 applies to its own Decode array.
func decodeSample(raw uint32, bits int, lo, hi float64) float64 {
	maxVal := float64((uint64(1) << uint(bits)) - 1)
	if maxVal == 0 {
		return lo
	}
	return lo + float64(raw)*(hi-lo)/maxVal
}

func decodeRange(decode []float64, pairIdx int) (lo, hi float64) {
	i := 2 * pairIdx
	if i+1 < len(decode) {
		return decode[i], decode[i+1]
	}
	return 0, 1
}

// readPoint reads one (x,y) coordinate pair, bits each, mapped through
// decode's first two [lo,hi] pairs (x, then y).
func (r *meshBitReader) readPoint(bits int, decode []float64) (x, y float64, err error) {
	xRaw, err := r.read(bits)
	if err != nil {
		return 0, 0, err
	}
	yRaw, err := r.read(bits)
	if err != nil {
		return 0, 0, err
	}
	xlo, xhi := decodeRange(decode, 0)
	ylo, yhi := decodeRange(decode, 1)
	return decodeSample(xRaw, bits, xlo, xhi), decodeSample(yRaw, bits, ylo, yhi), nil
}

// readColor reads n color components, bits each, mapped through decode's
// pairs starting at index 2 (after the x,y pair).
func (r *meshBitReader) readColor(bits, n int, decode []float64) ([]float64, error) {
	color := make([]float64, n)
	for i := 0; i < n; i++ {
		raw, err := r.read(bits)
		if err != nil {
			return nil, err
		}
		lo, hi := decodeRange(decode, 2+i)
		color[i] = decodeSample(raw, bits, lo, hi)
	}
	return color, nil
}
