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

var edgeCases = []TestCase{
	{
		// the polygon touches the right and bottom canvas border
		Name:     "full_canvas",
		Polygons: [][]float64{rectangle(0, 0, 2, 2)},
		Width:    2,
		Height:   2,
		Area:     4,
		Simple:   true,
	},
	{
		Name:     "single_pixel",
		Polygons: [][]float64{rectangle(1, 1, 2, 2)},
		Width:    4,
		Height:   4,
		Area:     1,
		Simple:   true,
	},
	{
		// pixel centres on the left and top edges are inside, centres on
		// the right and bottom edges are outside
		Name:     "centre_aligned",
		Polygons: [][]float64{rectangle(0.5, 0.5, 2.5, 2.5)},
		Width:    4,
		Height:   4,
		Area:     4,
		Simple:   true,
	},
	{
		// pixel centres on the diagonal edge are outside
		Name:     "corner_triangle",
		Polygons: [][]float64{{0, 0, 8, 0, 0, 8}},
		Width:    8,
		Height:   8,
		Area:     7 * 8 / 2,
		Simple:   true,
	},
	{
		Name:     "degenerate",
		Polygons: [][]float64{{1, 1, 5, 5}},
		Width:    8,
		Height:   8,
		Area:     0,
		Simple:   true,
	},
	{
		Name:     "sliver",
		Polygons: [][]float64{{2, 1, 2.2, 1, 2.2, 15, 2, 15}},
		Width:    8,
		Height:   16,
		Area:     0,
		Simple:   true,
	},
}
