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

// Segmentation is one of the three segmentation representations: a
// [Polygons], [RLE] or [CompactRLE] value.  No other types implement this
// interface.
type Segmentation interface {
	// Size returns the width and height of the mask.
	Size() (width, height int)

	isSegmentation()
}

// Size implements the [Segmentation] interface.
func (ps Polygons) Size() (width, height int) { return ps.Width, ps.Height }

// Size implements the [Segmentation] interface.
func (r RLE) Size() (width, height int) { return r.Width, r.Height }

// Size implements the [Segmentation] interface.
func (c CompactRLE) Size() (width, height int) { return c.Width, c.Height }

func (Polygons) isSegmentation()   {}
func (RLE) isSegmentation()        {}
func (CompactRLE) isSegmentation() {}

// NewPolygonSegmentation converts polygons in the flat annotation file
// layout into a segmentation.  At least one polygon is required.
func NewPolygonSegmentation(coords [][]float64, width, height int) (Segmentation, error) {
	if len(coords) == 0 {
		return nil, reject("NewPolygonSegmentation", emptyf("no polygons"))
	}
	ps, err := PolygonsFromFlat(coords, width, height)
	if err != nil {
		return nil, err
	}
	if err := ps.Validate(); err != nil {
		return nil, reject("NewPolygonSegmentation", err)
	}
	return ps, nil
}

// ToMask converts a segmentation into a pixel mask.
func ToMask(s Segmentation) (*Mask, error) {
	switch s := s.(type) {
	case Polygons:
		return Rasterize(s)
	case RLE:
		return s.Mask()
	case CompactRLE:
		return s.Mask()
	case nil:
		return nil, reject("ToMask", emptyf("nil segmentation"))
	default:
		return nil, invariantf("unknown segmentation type %T", s)
	}
}

// Area returns the number of foreground pixels of a segmentation.
//
// For run-length data, the area is computed from the runs.  Polygons are
// rasterized first, so that the area agrees with the area of the
// equivalent run-length data.  The geometric area of the polygons is not
// used.
func Area(s Segmentation) (int, error) {
	switch s := s.(type) {
	case Polygons:
		m, err := Rasterize(s)
		if err != nil {
			return 0, err
		}
		return m.Area(), nil
	case RLE:
		if err := s.Validate(); err != nil {
			return 0, reject("Area", err)
		}
		return s.Area(), nil
	case CompactRLE:
		r, err := s.Decode()
		if err != nil {
			return 0, err
		}
		return r.Area(), nil
	case nil:
		return 0, reject("Area", emptyf("nil segmentation"))
	default:
		return 0, invariantf("unknown segmentation type %T", s)
	}
}

// ToBBox returns the tight bounding box of the foreground pixels of a
// segmentation.
//
// For run-length data, the box is computed from the runs.  Polygons are
// rasterized first, so that the box is consistent with the pixel mask
// rather than with the vertex coordinates.
func ToBBox(s Segmentation) (BBox, error) {
	switch s := s.(type) {
	case Polygons:
		m, err := Rasterize(s)
		if err != nil {
			return BBox{}, err
		}
		return m.BBox(), nil
	case RLE:
		if err := s.Validate(); err != nil {
			return BBox{}, reject("ToBBox", err)
		}
		return s.BBox(), nil
	case CompactRLE:
		r, err := s.Decode()
		if err != nil {
			return BBox{}, err
		}
		return r.BBox(), nil
	case nil:
		return BBox{}, reject("ToBBox", emptyf("nil segmentation"))
	default:
		return BBox{}, invariantf("unknown segmentation type %T", s)
	}
}
