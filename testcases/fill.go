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

package testcases

import "math"

var fillCases = []TestCase{
	{
		Name:     "triangle",
		Polygons: [][]float64{{10, 50, 32, 10, 54, 50}},
		Width:    64,
		Height:   64,
		Area:     -1,
		Simple:   true,
	},
	{
		Name:     "rectangle",
		Polygons: [][]float64{rectangle(10, 10, 44, 44)},
		Width:    64,
		Height:   64,
		Area:     34 * 34,
		Simple:   true,
	},
	{
		Name:     "u_shape",
		Polygons: [][]float64{{10, 10, 20, 10, 20, 40, 40, 40, 40, 10, 50, 10, 50, 50, 10, 50}},
		Width:    64,
		Height:   64,
		Area:     40*40 - 20*30,
		Simple:   true,
	},
	{
		Name:     "circle",
		Polygons: [][]float64{regularPolygon(32, 32, 20, 64, 1)},
		Width:    64,
		Height:   64,
		Area:     -1,
		Simple:   true,
	},
	{
		// the even-odd rule leaves the central pentagon empty
		Name:     "star",
		Polygons: [][]float64{regularPolygon(32, 32, 25, 5, 2)},
		Width:    64,
		Height:   64,
		Area:     -1,
	},
	{
		// a square outline with a square hole, as a single polygon
		Name: "frame",
		Polygons: [][]float64{{
			0, 0, 10, 0, 10, 10, 0, 10, 0, 0,
			3, 3, 3, 7, 7, 7, 7, 3, 3, 3,
		}},
		Width:  10,
		Height: 10,
		Area:   10*10 - 4*4,
		Holes:  true,
	},
}

// rectangle returns the corners of an axis-aligned rectangle.
func rectangle(x0, y0, x1, y1 float64) []float64 {
	return []float64{x0, y0, x1, y0, x1, y1, x0, y1}
}

// regularPolygon returns n points on a circle, starting at the top and
// connecting every step-th point.  For step > 1 this gives a star.
func regularPolygon(cx, cy, r float64, n, step int) []float64 {
	res := make([]float64, 0, 2*n)
	for i := range n {
		angle := float64(i*step)*2*math.Pi/float64(n) - math.Pi/2
		res = append(res, cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return res
}
