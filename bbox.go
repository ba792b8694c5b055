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
	"encoding/json"
	"fmt"

	"seehuhn.de/go/geom/rect"
)

// BBox is an axis-aligned bounding box in pixel units.  Left and Top give
// the first foreground column and row.  In JSON, a BBox is written as
// [left, top, width, height].
type BBox struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// IsEmpty reports whether the box contains no pixels.
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Rect returns the box as a rectangle in image coordinates, i.e. with the
// y axis pointing down.
func (b BBox) Rect() rect.Rect {
	return rect.Rect{
		LLx: b.Left,
		LLy: b.Top,
		URx: b.Left + b.Width,
		URy: b.Top + b.Height,
	}
}

// MarshalJSON implements the [json.Marshaler] interface.
func (b BBox) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{b.Left, b.Top, b.Width, b.Height})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (b *BBox) UnmarshalJSON(data []byte) error {
	var v []float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if len(v) != 4 {
		return shapef("bounding box has %d values, expected 4", len(v))
	}
	*b = BBox{Left: v[0], Top: v[1], Width: v[2], Height: v[3]}
	return nil
}

func (b BBox) String() string {
	return fmt.Sprintf("[%g %g %g %g]", b.Left, b.Top, b.Width, b.Height)
}
