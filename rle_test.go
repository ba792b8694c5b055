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

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

// randomMask returns a mask where each pixel is foreground with
// probability p.
func randomMask(rng *rand.Rand, width, height int, p float64) *Mask {
	m := newMask(width, height)
	for x := range width {
		for y := range height {
			if rng.Float64() < p {
				m.set(x, y)
			}
		}
	}
	return m
}

// scanBBox computes the bounding box pixel by pixel.
func scanBBox(m *Mask) BBox {
	xMin, xMax := m.Width, -1
	yMin, yMax := m.Height, -1
	for x := range m.Width {
		for y := range m.Height {
			if m.At(x, y) == 0 {
				continue
			}
			xMin, xMax = min(xMin, x), max(xMax, x)
			yMin, yMax = min(yMin, y), max(yMax, y)
		}
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

func TestRLESinglePixel(t *testing.T) {
	m, err := NewMask([][]byte{
		{0, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	if err != nil {
		t.Fatal(err)
	}

	r := m.RLE()
	if want := []uint32{5, 1, 10}; !slices.Equal(r.Counts, want) {
		t.Errorf("counts = %v, want %v", r.Counts, want)
	}
	if area := r.Area(); area != 1 {
		t.Errorf("area = %d, want 1", area)
	}
	if bbox, want := r.BBox(), (BBox{Left: 1, Top: 1, Width: 1, Height: 1}); bbox != want {
		t.Errorf("bbox = %v, want %v", bbox, want)
	}
}

func TestRLEFullMask(t *testing.T) {
	m, err := NewMask([][]byte{{1, 1}, {1, 1}})
	if err != nil {
		t.Fatal(err)
	}

	r := m.RLE()
	if want := []uint32{0, 4}; !slices.Equal(r.Counts, want) {
		t.Errorf("counts = %v, want %v", r.Counts, want)
	}
	if area := r.Area(); area != 4 {
		t.Errorf("area = %d, want 4", area)
	}
	if bbox, want := r.BBox(), (BBox{Left: 0, Top: 0, Width: 2, Height: 2}); bbox != want {
		t.Errorf("bbox = %v, want %v", bbox, want)
	}
}

func TestRLEColumnMajor(t *testing.T) {
	// The first column is foreground, so the first run covers it
	// completely before the second column starts.
	m, err := NewMask([][]byte{
		{1, 0, 0},
		{1, 0, 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	r := m.RLE()
	if want := []uint32{0, 2, 4}; !slices.Equal(r.Counts, want) {
		t.Errorf("counts = %v, want %v", r.Counts, want)
	}
}

func TestRLEEmpty(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {3, 0}, {0, 3}, {3, 3}} {
		m := newMask(size[0], size[1])
		r := m.RLE()
		if want := []uint32{uint32(size[0] * size[1])}; !slices.Equal(r.Counts, want) {
			t.Errorf("%dx%d: counts = %v, want %v", size[0], size[1], r.Counts, want)
		}
		if bbox := r.BBox(); bbox != (BBox{}) {
			t.Errorf("%dx%d: bbox = %v, want zero", size[0], size[1], bbox)
		}
		m2, err := r.Mask()
		if err != nil {
			t.Fatal(err)
		}
		if !m2.Equal(m) {
			t.Errorf("%dx%d: round trip failed", size[0], size[1])
		}
	}
}

func TestRLEShapeMismatch(t *testing.T) {
	cases := []RLE{
		{Width: 4, Height: 4, Counts: []uint32{5, 1, 9}},
		{Width: 4, Height: 4, Counts: []uint32{5, 1, 11}},
		{Width: 2, Height: 2},
		{Width: -1, Height: 2, Counts: []uint32{0}},
		{Width: math.MaxInt / 2, Height: 3, Counts: []uint32{0}},
		{Width: math.MaxInt/2 + 1, Height: math.MaxInt/2 + 1},
	}
	for i, r := range cases {
		if err := r.Validate(); !errors.Is(err, ErrShapeMismatch) {
			t.Errorf("%d: Validate() = %v, want ErrShapeMismatch", i, err)
		}
		if _, err := r.Mask(); !errors.Is(err, ErrShapeMismatch) {
			t.Errorf("%d: Mask() = %v, want ErrShapeMismatch", i, err)
		}
	}
}

func TestRLEWrappingRun(t *testing.T) {
	// A foreground run from the bottom of column 0 to the top of column 1
	// touches the first and last row.
	r := RLE{Width: 3, Height: 4, Counts: []uint32{3, 2, 7}}
	want := BBox{Left: 0, Top: 0, Width: 2, Height: 4}
	if bbox := r.BBox(); bbox != want {
		t.Errorf("bbox = %v, want %v", bbox, want)
	}
	m, err := r.Mask()
	if err != nil {
		t.Fatal(err)
	}
	if bbox := scanBBox(m); bbox != want {
		t.Errorf("scanned bbox = %v, want %v", bbox, want)
	}
}

func TestRLERoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := range 500 {
		w := rng.IntN(12)
		h := rng.IntN(12)
		m := randomMask(rng, w, h, rng.Float64())

		r := m.RLE()
		if err := r.Validate(); err != nil {
			t.Fatalf("%d: %v", i, err)
		}

		m2, err := r.Mask()
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		if !m2.Equal(m) {
			t.Fatalf("%d: toMask(fromMask(m)) != m", i)
		}
		if r2 := m2.RLE(); !slices.Equal(r2.Counts, r.Counts) {
			t.Fatalf("%d: fromMask(toMask(r)) = %v, want %v", i, r2.Counts, r.Counts)
		}

		if r.Area() != m.Area() {
			t.Errorf("%d: area = %d, want %d", i, r.Area(), m.Area())
		}
		if bbox, want := r.BBox(), scanBBox(m); bbox != want {
			t.Errorf("%d: bbox = %v, want %v", i, bbox, want)
		}
	}
}

func TestRLEFromCounts(t *testing.T) {
	r := RLE{
		Width:  40,
		Height: 40,
		Counts: []uint32{245, 5, 35, 5, 35, 5, 35, 5, 35, 5, 1190},
	}
	m, err := r.Mask()
	if err != nil {
		t.Fatal(err)
	}
	if m.Area() != 25 || r.Area() != 25 {
		t.Errorf("area = %d/%d, want 25", m.Area(), r.Area())
	}
	want := BBox{Left: 6, Top: 5, Width: 5, Height: 5}
	if bbox := r.BBox(); bbox != want {
		t.Errorf("bbox = %v, want %v", bbox, want)
	}
	for x := 6; x < 11; x++ {
		for y := 5; y < 10; y++ {
			if m.At(x, y) != 1 {
				t.Errorf("pixel (%d, %d) is not set", x, y)
			}
		}
	}
}

func TestRLENormalize(t *testing.T) {
	// Zero-length runs inside the list are valid input, but are merged
	// when the runs are recomputed from the mask.
	r := RLE{Width: 2, Height: 3, Counts: []uint32{2, 0, 1, 3}}
	if err := r.Validate(); err != nil {
		t.Fatal(err)
	}
	if r.Area() != 3 {
		t.Errorf("area = %d, want 3", r.Area())
	}
	m, err := r.Mask()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := m.RLE().Counts, []uint32{3, 3}; !slices.Equal(got, want) {
		t.Errorf("counts = %v, want %v", got, want)
	}
	if bbox, want := r.BBox(), (BBox{Left: 1, Top: 0, Width: 1, Height: 3}); bbox != want {
		t.Errorf("bbox = %v, want %v", bbox, want)
	}
}
