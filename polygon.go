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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Polygon is a closed polygon in pixel coordinates, with the y axis pointing
// down.  The last vertex is implicitly connected to the first one.
type Polygon []vec.Vec2

// Polygons is a set of polygons on a canvas of the given size.  The
// polygons are filled using the even-odd rule and then combined by union,
// so overlapping polygons do not cancel each other.
type Polygons struct {
	Width  int
	Height int
	Polys  []Polygon
}

// PolygonsFromFlat converts polygons in the layout used by annotation
// files, where each polygon is a flat list x0, y0, x1, y1, ...
func PolygonsFromFlat(coords [][]float64, width, height int) (Polygons, error) {
	ps := Polygons{
		Width:  width,
		Height: height,
		Polys:  make([]Polygon, len(coords)),
	}
	for i, flat := range coords {
		if len(flat)%2 != 0 {
			return Polygons{}, reject("PolygonsFromFlat",
				shapef("polygon %d has an odd number of coordinates (%d)", i, len(flat)))
		}
		poly := make(Polygon, len(flat)/2)
		for j := range poly {
			poly[j] = vec.Vec2{X: flat[2*j], Y: flat[2*j+1]}
		}
		ps.Polys[i] = poly
	}
	return ps, nil
}

// Flat returns the polygons in the flat layout used by annotation files.
func (ps Polygons) Flat() [][]float64 {
	res := make([][]float64, len(ps.Polys))
	for i, poly := range ps.Polys {
		flat := make([]float64, 0, 2*len(poly))
		for _, v := range poly {
			flat = append(flat, v.X, v.Y)
		}
		res[i] = flat
	}
	return res
}

// Validate checks that all vertices lie inside the canvas.  Vertices on the
// right or bottom border of the canvas are allowed, so that a polygon can
// cover the last pixel column and row.
func (ps Polygons) Validate() error {
	if err := checkSize(ps.Width, ps.Height); err != nil {
		return err
	}
	w, h := float64(ps.Width), float64(ps.Height)
	for i, poly := range ps.Polys {
		for j, v := range poly {
			if math.IsNaN(v.X) || math.IsNaN(v.Y) ||
				v.X < 0 || v.X > w || v.Y < 0 || v.Y > h {
				return shapef("polygon %d, vertex %d (%g, %g) is outside the %dx%d canvas",
					i, j, v.X, v.Y, ps.Width, ps.Height)
			}
		}
	}
	return nil
}

// Path converts the polygon into a closed path.
func (poly Polygon) Path() *path.Data {
	p := &path.Data{}
	if len(poly) == 0 {
		return p
	}
	p = p.MoveTo(poly[0])
	for _, v := range poly[1:] {
		p = p.LineTo(v)
	}
	return p.Close()
}
