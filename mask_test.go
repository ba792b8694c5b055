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
	"image"
	"image/color"
	"testing"
)

func TestNewMask(t *testing.T) {
	rows := [][]byte{
		{0, 1, 0},
		{2, 0, 0},
	}
	m, err := NewMask(rows)
	if err != nil {
		t.Fatal(err)
	}
	if m.Width != 3 || m.Height != 2 {
		t.Fatalf("size %dx%d, want 3x2", m.Width, m.Height)
	}
	if m.At(1, 0) != 1 || m.At(0, 1) != 1 || m.At(0, 0) != 0 {
		t.Error("wrong pixels")
	}
	if m.At(-1, 0) != 0 || m.At(3, 0) != 0 || m.At(0, 2) != 0 {
		t.Error("pixels outside the mask are set")
	}

	got := m.Rows()
	want := [][]byte{{0, 1, 0}, {1, 0, 0}}
	for y := range want {
		for x := range want[y] {
			if got[y][x] != want[y][x] {
				t.Errorf("Rows()[%d][%d] = %d, want %d", y, x, got[y][x], want[y][x])
			}
		}
	}

	if _, err := NewMask([][]byte{{0, 1}, {1}}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("ragged rows: %v, want ErrShapeMismatch", err)
	}

	empty, err := NewMask(nil)
	if err != nil {
		t.Fatal(err)
	}
	if empty.Width != 0 || empty.Height != 0 || empty.Area() != 0 {
		t.Errorf("unexpected empty mask %dx%d", empty.Width, empty.Height)
	}
}

func TestMaskImage(t *testing.T) {
	m, err := NewMask([][]byte{
		{1, 0, 0, 1},
		{0, 1, 1, 0},
	})
	if err != nil {
		t.Fatal(err)
	}

	img := m.Gray()
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Fatalf("image size %v", b)
	}
	if img.GrayAt(0, 0).Y != 0xFF || img.GrayAt(1, 0).Y != 0 {
		t.Error("wrong gray values")
	}

	m2 := MaskFromImage(img)
	if !m2.Equal(m) {
		t.Error("Gray round trip failed")
	}

	// a sub-image with a non-zero origin
	sub := img.SubImage(image.Rect(1, 0, 3, 2))
	m3 := MaskFromImage(sub)
	if m3.Width != 2 || m3.Height != 2 {
		t.Fatalf("size %dx%d, want 2x2", m3.Width, m3.Height)
	}
	if m3.At(0, 0) != 0 || m3.At(0, 1) != 1 || m3.At(1, 1) != 1 {
		t.Errorf("sub-image pixels %v", m3.Rows())
	}

	rgba := image.NewRGBA(image.Rect(0, 0, 3, 1))
	rgba.Set(0, 0, color.White)
	rgba.Set(1, 0, color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xFF})
	rgba.Set(2, 0, color.RGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF})
	m4 := MaskFromImage(rgba)
	if got := m4.Rows()[0]; got[0] != 1 || got[1] != 0 || got[2] != 1 {
		t.Errorf("RGBA pixels %v, want [1 0 1]", got)
	}
}

func TestMaskEqual(t *testing.T) {
	a := newMask(2, 3)
	b := newMask(3, 2)
	if a.Equal(b) {
		t.Error("masks of different size are equal")
	}
	c := newMask(2, 3)
	if !a.Equal(c) {
		t.Error("empty masks differ")
	}
	c.set(1, 2)
	if a.Equal(c) {
		t.Error("different masks are equal")
	}

	var none *Mask
	if a.Equal(none) || none.Equal(a) {
		t.Error("nil mask equals a non-nil mask")
	}
	if !none.Equal(nil) {
		t.Error("nil masks differ")
	}
}

func TestMaskResize(t *testing.T) {
	m, err := NewMask([][]byte{
		{1, 0},
		{0, 1},
	})
	if err != nil {
		t.Fatal(err)
	}

	big := m.Resize(4, 4)
	want := [][]byte{
		{1, 1, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 1, 1},
	}
	for y, row := range big.Rows() {
		for x, v := range row {
			if v != want[y][x] {
				t.Errorf("pixel (%d, %d) = %d, want %d", x, y, v, want[y][x])
			}
		}
	}

	small := big.Resize(2, 2)
	if !small.Equal(m) {
		t.Errorf("downscaled mask %v, want %v", small.Rows(), m.Rows())
	}

	if same := m.Resize(2, 2); same != m {
		t.Error("resize to the same size copies the mask")
	}
	if zero := m.Resize(0, 5); zero.Width != 0 || zero.Height != 5 {
		t.Errorf("size %dx%d, want 0x5", zero.Width, zero.Height)
	}
}

func TestMaskBBox(t *testing.T) {
	m, err := NewMask([][]byte{
		{0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := BBox{Left: 1, Top: 1, Width: 2, Height: 2}
	if bbox := m.BBox(); bbox != want {
		t.Errorf("bbox = %v, want %v", bbox, want)
	}
	if m.Area() != 2 {
		t.Errorf("area = %d, want 2", m.Area())
	}
}
