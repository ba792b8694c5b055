// seehuhn.de/go/mask - binary segmentation masks for image annotations
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package mask

import "math"

// pixelOffset returns the position of pixel (x, y) in the column-major pixel
// order shared by [Mask] storage and all run-length data.  No other code
// computes this index.
func pixelOffset(x, y, height int) int {
	return x*height + y
}

// checkSize checks that a mask of the given size can be allocated, i.e.
// that the number of pixels is non-negative and fits into an int.
func checkSize(width, height int) error {
	if width < 0 || height < 0 {
		return shapef("negative size %dx%d", width, height)
	}
	if height != 0 && width > math.MaxInt/height {
		return shapef("size %dx%d is too large", width, height)
	}
	return nil
}

// RLE is an uncompressed run-length description of a mask.
//
// Counts alternates between background and foreground runs, starting with
// background.  The first count is zero if the first pixel is foreground.
// Runs follow the column-major pixel order, and the counts of a valid RLE
// sum to Width*Height.
type RLE struct {
	Width  int
	Height int
	Counts []uint32
}

// RLE returns the run-length description of the mask.  The result has no
// zero-length runs, except possibly for the initial background run.
func (m *Mask) RLE() RLE {
	counts := make([]uint32, 0, 8)
	var cur byte
	var run uint32
	for _, v := range m.pix {
		if v != cur {
			counts = append(counts, run)
			run = 0
			cur = v
		}
		run++
	}
	counts = append(counts, run)

	return RLE{
		Width:  m.Width,
		Height: m.Height,
		Counts: counts,
	}
}

// Validate checks that the runs cover the mask exactly.
func (r RLE) Validate() error {
	if err := checkSize(r.Width, r.Height); err != nil {
		return err
	}
	var sum uint64
	for _, n := range r.Counts {
		sum += uint64(n)
	}
	if want := uint64(r.Width) * uint64(r.Height); sum != want {
		return shapef("runs cover %d pixels, size %dx%d needs %d",
			sum, r.Width, r.Height, want)
	}
	return nil
}

// Mask expands the runs into a pixel mask.
func (r RLE) Mask() (*Mask, error) {
	if err := r.Validate(); err != nil {
		return nil, reject("RLE.Mask", err)
	}

	m := newMask(r.Width, r.Height)
	pos := 0
	for i, n := range r.Counts {
		end := pos + int(n)
		if i%2 == 1 {
			fg := m.pix[pos:end]
			for j := range fg {
				fg[j] = 1
			}
		}
		pos = end
	}
	return m, nil
}

// Area returns the number of foreground pixels, i.e. the sum of the runs at
// odd indices.
func (r RLE) Area() int {
	area := 0
	for i := 1; i < len(r.Counts); i += 2 {
		area += int(r.Counts[i])
	}
	return area
}

// BBox returns the tight bounding box of the foreground pixels.  The
// computation takes time proportional to the number of runs.  An empty mask
// has the zero bounding box.
//
// The result is only meaningful if the runs are valid, see [RLE.Validate].
func (r RLE) BBox() BBox {
	h := r.Height
	if h <= 0 {
		return BBox{}
	}

	xMin, xMax := r.Width, -1
	yMin, yMax := h, -1
	pos := 0
	for i, n := range r.Counts {
		c := int(n)
		if i%2 == 1 && c > 0 {
			first, last := pos, pos+c-1
			x0, y0 := first/h, first%h
			x1, y1 := last/h, last%h
			xMin = min(xMin, x0)
			xMax = max(xMax, x1)
			if x0 == x1 {
				yMin = min(yMin, y0)
				yMax = max(yMax, y1)
			} else {
				// the run wraps from the bottom of one column to the
				// top of the next
				yMin = 0
				yMax = h - 1
			}
		}
		pos += c
	}

	if xMax < 0 {
		return BBox{}
	}
	return BBox{
		Left:   float64(xMin),
		Top:    float64(yMin),
		Width:  float64(xMax - xMin + 1),
		Height: float64(yMax - yMin + 1),
	}
}
