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

// Package mask converts between the representations of binary segmentation
// masks used by image annotation formats like COCO: polygon outlines,
// uncompressed run-length counts, and compact run-length strings.
//
// Area and bounding box can be computed from every representation.  For
// run-length data this is done directly on the runs, without expanding the
// pixel grid.
//
// Pixels are stored in column-major order: within a column, the row index
// varies fastest.  All run-length data follows the same convention.
//
// All functions in this package are pure and may be called concurrently on
// independent values.
package mask

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Mask is a binary pixel mask.  A Mask is not modified after construction.
type Mask struct {
	Width  int
	Height int
	pix    []byte // 0 or 1, column-major
}

// newMask allocates an all-background mask.  Only code in this package may
// write to the result, and only before it is returned to the caller.
func newMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		pix:    make([]byte, width*height),
	}
}

// NewMask creates a mask from a row-major pixel grid, as used by array
// libraries: rows[y][x] is the pixel in row y and column x.  Non-zero values
// are foreground.
func NewMask(rows [][]byte) (*Mask, error) {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	m := newMask(width, height)
	for y, row := range rows {
		if len(row) != width {
			return nil, reject("NewMask",
				shapef("row %d has %d pixels, expected %d", y, len(row), width))
		}
		for x, v := range row {
			if v != 0 {
				m.set(x, y)
			}
		}
	}
	return m, nil
}

// MaskFromImage creates a mask from an image.  A pixel is foreground if
// its gray value is at least 50%.  For [image.Alpha] images, this is the
// alpha value.
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := newMask(b.Dx(), b.Dy())

	if gray, ok := img.(*image.Gray); ok {
		for y := range m.Height {
			row := gray.Pix[(y+b.Min.Y-gray.Rect.Min.Y)*gray.Stride:]
			for x := range m.Width {
				if row[x+b.Min.X-gray.Rect.Min.X] >= 0x80 {
					m.set(x, y)
				}
			}
		}
		return m
	}

	for y := range m.Height {
		for x := range m.Width {
			c := color.Gray16Model.Convert(img.At(x+b.Min.X, y+b.Min.Y)).(color.Gray16)
			if c.Y >= 0x8000 {
				m.set(x, y)
			}
		}
	}
	return m
}

// At returns 1 if the pixel in column x and row y is foreground, and 0
// otherwise.  Pixels outside the mask are background.
func (m *Mask) At(x, y int) byte {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return 0
	}
	return m.pix[pixelOffset(x, y, m.Height)]
}

func (m *Mask) set(x, y int) {
	m.pix[pixelOffset(x, y, m.Height)] = 1
}

// Rows returns the mask as a newly allocated row-major grid of 0/1 values.
// This is the inverse of [NewMask].
func (m *Mask) Rows() [][]byte {
	rows := make([][]byte, m.Height)
	buf := make([]byte, m.Width*m.Height)
	for y := range rows {
		rows[y] = buf[y*m.Width : (y+1)*m.Width]
		for x := range m.Width {
			rows[y][x] = m.At(x, y)
		}
	}
	return rows
}

// Gray returns the mask as a grayscale image, with 255 for foreground and 0
// for background pixels.
func (m *Mask) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for x := range m.Width {
		for y := range m.Height {
			if m.At(x, y) != 0 {
				img.Pix[y*img.Stride+x] = 0xFF
			}
		}
	}
	return img
}

// Equal reports whether two masks have the same size and pixels.
// A nil mask is only equal to another nil mask.
func (m *Mask) Equal(other *Mask) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Width != other.Width || m.Height != other.Height {
		return false
	}
	for i, v := range m.pix {
		if other.pix[i] != v {
			return false
		}
	}
	return true
}

// Area returns the number of foreground pixels.
func (m *Mask) Area() int {
	n := 0
	for _, v := range m.pix {
		n += int(v)
	}
	return n
}

// BBox returns the tight bounding box of the foreground pixels.
func (m *Mask) BBox() BBox {
	return m.RLE().BBox()
}

// Resize scales the mask to the given size using nearest neighbour
// sampling.  This is used to transfer annotations between resolutions of
// the same image.
func (m *Mask) Resize(width, height int) *Mask {
	if width == m.Width && height == m.Height {
		return m
	}
	if width <= 0 || height <= 0 || m.Width == 0 || m.Height == 0 {
		return newMask(max(width, 0), max(height, 0))
	}
	src := m.Gray()
	dst := image.NewGray(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return MaskFromImage(dst)
}
