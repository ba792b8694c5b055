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

var sampleCases = []TestCase{
	{
		// an annotation from the COCO validation set
		Name: "coco_car",
		Polygons: [][]float64{{
			81.28, 87.23, 82.91, 83.96, 84.0, 76.33, 99.48, 76.22, 105.91, 84.5,
			108.09, 93.98, 98.17, 93.44, 90.33, 94.2, 85.97, 94.53, 84.0, 94.31,
		}},
		Width:  160,
		Height: 120,
		Area:   -1,
		Simple: true,
	},
}
