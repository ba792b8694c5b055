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

var unionCases = []TestCase{
	{
		Name: "overlapping",
		Polygons: [][]float64{
			rectangle(10, 10, 30, 30),
			rectangle(20, 20, 40, 40),
		},
		Width:  48,
		Height: 48,
		Area:   2*20*20 - 10*10,
		Simple: true,
	},
	{
		Name: "disjoint",
		Polygons: [][]float64{
			rectangle(2, 2, 6, 6),
			rectangle(10, 2, 14, 6),
		},
		Width:  16,
		Height: 8,
		Area:   2 * 4 * 4,
		Simple: true,
	},
	{
		// the inner polygon does not cut a hole
		Name: "nested",
		Polygons: [][]float64{
			rectangle(4, 4, 28, 28),
			rectangle(10, 10, 20, 20),
		},
		Width:  32,
		Height: 32,
		Area:   24 * 24,
		Simple: true,
	},
}
