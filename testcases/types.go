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

// Package testcases defines named polygon annotations used to test the
// mask package.  The commands in the subdirectories export the cases as
// annotation JSON and as reference images.
package testcases

import (
	"maps"
	"slices"
)

// TestCase is a polygon annotation on a canvas of the given size.
type TestCase struct {
	Name     string      // lowercase a-z and _ only
	Polygons [][]float64 // flat x0, y0, x1, y1, ... per polygon
	Width    int         // canvas width in pixels
	Height   int         // canvas height in pixels

	// Area is the expected number of foreground pixels.  Negative values
	// mean that the area is not checked.
	Area int

	// Simple is set if no polygon intersects itself.  Only for simple
	// polygons the even-odd and nonzero fill rules agree.
	Simple bool

	// Holes is set if the filled area has holes, so that the outline
	// extracted from the mask does not reproduce the mask.
	Holes bool
}

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]TestCase{
	"fill":   fillCases,
	"edge":   edgeCases,
	"union":  unionCases,
	"sample": sampleCases,
}

// Each calls yield for every test case, in a deterministic order, with the
// full name "category_name".
func Each(yield func(name string, tc TestCase) bool) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			if !yield(category+"_"+tc.Name, tc) {
				return
			}
		}
	}
}

